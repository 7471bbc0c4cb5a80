//go:build integration

package integration

import (
	"context"
	"io"
	"testing"

	"go.uber.org/zap"

	"github.com/weblarek/storefront/internal/checkout"
	"github.com/weblarek/storefront/internal/domain/basket"
	"github.com/weblarek/storefront/internal/domain/buyer"
	"github.com/weblarek/storefront/internal/domain/product"
	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/larekapi"
	"github.com/weblarek/storefront/internal/view"
)

// TestClientJourney drives the full storefront stack (API client, domain
// models, checkout flow, console views) against the live backend: load the
// catalog, fill a basket, walk both checkout forms, and submit.
func TestClientJourney(t *testing.T) {
	ctx := context.Background()

	bus := events.NewBus()
	catalog := product.NewCatalog(bus)
	bkt := basket.New(bus)
	byr := buyer.New(bus)
	api := larekapi.New(larekapi.Config{
		BaseURL:    baseURL + "/api",
		CDNURL:     baseURL + "/content",
		HTTPClient: httpClient,
	})

	flow := checkout.NewFlow(bus, catalog, bkt, byr, api, view.NewConsole(io.Discard), zap.NewNop())
	flow.Bind(ctx)

	if err := flow.LoadCatalog(ctx); err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	var priced []product.Product
	for _, p := range catalog.Products() {
		if !p.Priceless() {
			priced = append(priced, p)
		}
	}
	if len(priced) < 2 {
		t.Fatalf("need at least 2 priced products, got %d", len(priced))
	}

	// Browse two cards and add them from the preview.
	for _, p := range priced[:2] {
		bus.Publish(events.CardSelected, checkout.CardSelected{ID: p.ID})
		bus.Publish(events.PreviewToggled, nil)
	}
	if bkt.Count() != 2 {
		t.Fatalf("basket count: got %d, want 2", bkt.Count())
	}

	// Basket, then the order form.
	bus.Publish(events.BasketOpened, nil)
	bus.Publish(events.CheckoutStarted, nil)
	bus.Publish(events.OrderFieldChanged, checkout.FieldChanged{Field: buyer.FieldPayment, Value: "card"})
	bus.Publish(events.OrderFieldChanged, checkout.FieldChanged{Field: buyer.FieldAddress, Value: "Spb, Nevsky 1"})
	bus.Publish(events.OrderSubmitted, nil)

	if got := flow.State().Stage; got != checkout.StageContacts {
		t.Fatalf("stage after order form: got %v, want %v", got, checkout.StageContacts)
	}

	// Contacts, then submit for real.
	bus.Publish(events.ContactsFieldChanged, checkout.FieldChanged{Field: buyer.FieldEmail, Value: "buyer@example.com"})
	bus.Publish(events.ContactsFieldChanged, checkout.FieldChanged{Field: buyer.FieldPhone, Value: "+7 900 000-00-00"})
	bus.Publish(events.ContactsSubmitted, nil)

	if got := flow.State().Stage; got != checkout.StageSuccess {
		t.Fatalf("stage after submit: got %v, want %v", got, checkout.StageSuccess)
	}
	if bkt.Count() != 0 {
		t.Errorf("basket not cleared after success: %d items", bkt.Count())
	}
	if errs := byr.Validate(); len(errs) != 4 {
		t.Errorf("buyer not cleared: %d validation errors, want 4", len(errs))
	}

	bus.Publish(events.ModalClosed, nil)
	if got := flow.State().Stage; got != checkout.StageBrowsing {
		t.Fatalf("stage after close: got %v, want %v", got, checkout.StageBrowsing)
	}
}
