// Package basket implements the shopping basket model.
package basket

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/weblarek/storefront/internal/domain/product"
	"github.com/weblarek/storefront/internal/events"
)

// ChangedEvent is the payload of events.BasketChanged, carrying the full
// basket contents after the mutation.
type ChangedEvent struct {
	Items []product.Product
}

// Model holds the buyer's current selection: an ordered product sequence with
// no duplicate ids.
type Model struct {
	bus   *events.Bus
	items []product.Product
}

// New creates an empty basket publishing to bus.
func New(bus *events.Bus) *Model {
	return &Model{bus: bus}
}

// Add appends p and publishes events.BasketChanged. Adding an id already in
// the basket is a silent no-op.
func (m *Model) Add(p product.Product) {
	if m.Contains(p.ID) {
		return
	}
	m.items = append(m.items, p)
	m.changed()
}

// Remove deletes the item with the given id and publishes
// events.BasketChanged. Removing an absent id is a no-op.
func (m *Model) Remove(id string) {
	for i, item := range m.items {
		if item.ID == id {
			m.items = slices.Delete(m.items, i, i+1)
			m.changed()
			return
		}
	}
}

// Clear empties the basket and publishes events.BasketChanged, even when the
// basket is already empty.
func (m *Model) Clear() {
	m.items = nil
	m.changed()
}

// Items returns a copy of the basket contents in insertion order.
func (m *Model) Items() []product.Product {
	return slices.Clone(m.items)
}

// Contains reports whether the basket holds an item with the given id.
func (m *Model) Contains(id string) bool {
	return slices.ContainsFunc(m.items, func(p product.Product) bool {
		return p.ID == id
	})
}

// Count returns the number of items in the basket.
func (m *Model) Count() int {
	return len(m.items)
}

// Total sums the item prices, counting priceless items as zero.
func (m *Model) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range m.items {
		total = total.Add(item.PriceOrZero())
	}
	return total
}

func (m *Model) changed() {
	m.bus.Publish(events.BasketChanged, ChangedEvent{Items: m.Items()})
}
