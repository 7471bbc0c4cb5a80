// Package app wires the storefront client: bus, models, API client, checkout
// flow, console views, and the command shell.
package app

import (
	"context"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/weblarek/storefront/internal/checkout"
	"github.com/weblarek/storefront/internal/domain/basket"
	"github.com/weblarek/storefront/internal/domain/buyer"
	"github.com/weblarek/storefront/internal/domain/product"
	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/larekapi"
	"github.com/weblarek/storefront/internal/view"
)

// Run creates all dependencies and runs the interactive storefront until the
// shell exits or ctx is canceled. It is the single wiring point for the
// client.
func Run(ctx context.Context, lg *zap.Logger, cfg *Config) error {
	lg.Info("Starting storefront",
		zap.String("api", cfg.APIBaseURL),
		zap.String("cdn", cfg.CDNBaseURL),
	)

	bus := events.NewBus()
	catalog := product.NewCatalog(bus)
	bkt := basket.New(bus)
	byr := buyer.New(bus)

	client := larekapi.New(larekapi.Config{
		BaseURL:    cfg.APIBaseURL,
		CDNURL:     cfg.CDNBaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	})

	presenter := view.NewConsole(os.Stdout)
	flow := checkout.NewFlow(bus, catalog, bkt, byr, client, presenter, lg)
	flow.Bind(ctx)

	// The shell subscribes before the startup fetch so the catalog it
	// renders is the catalog it can address.
	shell := NewShell(bus, catalog, bkt, os.Stdin, os.Stdout)

	// Startup catalog fetch. A failure is reported and the app stays up with
	// an empty catalog; there is no retry.
	if err := flow.LoadCatalog(ctx); err != nil {
		lg.Error("Catalog fetch failed", zap.Error(err))
	}

	// The shell blocks on stdin reads, which cannot be interrupted; on
	// context cancellation the goroutine is abandoned and the process exits.
	errCh := make(chan error, 1)
	go func() { errCh <- shell.Run(ctx) }()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}
