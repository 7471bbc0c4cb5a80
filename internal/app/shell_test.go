package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weblarek/storefront/internal/checkout"
	"github.com/weblarek/storefront/internal/domain/basket"
	"github.com/weblarek/storefront/internal/domain/product"
	"github.com/weblarek/storefront/internal/events"
)

func runShell(t *testing.T, s *Shell) {
	t.Helper()
	require.NoError(t, s.Run(context.Background()))
}

func TestShell_OpensCardFromStartupCatalog(t *testing.T) {
	bus := events.NewBus()
	catalog := product.NewCatalog(bus)
	bkt := basket.New(bus)

	// Catalog populated before the shell is constructed, as on startup.
	catalog.SetProducts([]product.Product{
		{ID: "a", Title: "First"},
		{ID: "b", Title: "Second"},
	})

	var out bytes.Buffer
	shell := NewShell(bus, catalog, bkt, strings.NewReader("open 2\n"), &out)

	var selected []string
	events.On(bus, events.CardSelected, func(ev checkout.CardSelected) {
		selected = append(selected, ev.ID)
	})

	runShell(t, shell)
	assert.Equal(t, []string{"b"}, selected)
	assert.NotContains(t, out.String(), "no item")
}

func TestShell_FollowsCatalogReload(t *testing.T) {
	bus := events.NewBus()
	catalog := product.NewCatalog(bus)
	bkt := basket.New(bus)

	catalog.SetProducts([]product.Product{{ID: "a"}, {ID: "b"}})

	var out bytes.Buffer
	shell := NewShell(bus, catalog, bkt, strings.NewReader("open 1\n"), &out)

	// Reload after construction; display numbers must follow the new order.
	catalog.SetProducts([]product.Product{{ID: "b"}, {ID: "a"}})

	var selected []string
	events.On(bus, events.CardSelected, func(ev checkout.CardSelected) {
		selected = append(selected, ev.ID)
	})

	runShell(t, shell)
	assert.Equal(t, []string{"b"}, selected)
}

func TestShell_RemovesBasketItemByNumber(t *testing.T) {
	bus := events.NewBus()
	catalog := product.NewCatalog(bus)
	bkt := basket.New(bus)

	bkt.Add(product.Product{ID: "a", Title: "First"})
	bkt.Add(product.Product{ID: "b", Title: "Second"})

	var out bytes.Buffer
	shell := NewShell(bus, catalog, bkt, strings.NewReader("rm 1\n"), &out)

	var removed []string
	events.On(bus, events.BasketItemRemoved, func(ev checkout.ItemRemoved) {
		removed = append(removed, ev.ID)
	})

	runShell(t, shell)
	assert.Equal(t, []string{"a"}, removed)
}

func TestShell_RejectsOutOfRangeNumber(t *testing.T) {
	bus := events.NewBus()
	catalog := product.NewCatalog(bus)
	bkt := basket.New(bus)

	catalog.SetProducts([]product.Product{{ID: "a"}})

	var out bytes.Buffer
	shell := NewShell(bus, catalog, bkt, strings.NewReader("open 3\n"), &out)

	fired := false
	bus.Subscribe(events.CardSelected, func(any) { fired = true })

	runShell(t, shell)
	assert.False(t, fired)
	assert.Contains(t, out.String(), `no item "3"`)
}

func TestShell_UnknownCommand(t *testing.T) {
	bus := events.NewBus()

	var out bytes.Buffer
	shell := NewShell(bus, product.NewCatalog(bus), basket.New(bus), strings.NewReader("frobnicate\n"), &out)

	runShell(t, shell)
	assert.Contains(t, out.String(), "unknown command")
}
