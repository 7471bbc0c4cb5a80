package product

import (
	"slices"

	"github.com/weblarek/storefront/internal/events"
)

// CatalogEvent is the payload of events.CatalogChanged.
type CatalogEvent struct {
	Products []Product
}

// PreviewEvent is the payload of events.PreviewChanged.
type PreviewEvent struct {
	Product Product
}

// Catalog holds the ordered product sequence known to the client, plus an
// optional preview selection. Every mutation publishes an event on the bus.
type Catalog struct {
	bus      *events.Bus
	products []Product
	preview  string
}

// NewCatalog creates an empty catalog publishing to bus.
func NewCatalog(bus *events.Bus) *Catalog {
	return &Catalog{bus: bus}
}

// SetProducts replaces the whole sequence, preserving server order, and
// publishes events.CatalogChanged.
func (c *Catalog) SetProducts(products []Product) {
	c.products = slices.Clone(products)
	c.bus.Publish(events.CatalogChanged, CatalogEvent{Products: c.Products()})
}

// Products returns a copy of the current sequence.
func (c *Catalog) Products() []Product {
	return slices.Clone(c.products)
}

// GetProduct returns the first product with the given id. Ids are expected to
// be unique but this is not enforced; on duplicates the first match wins.
func (c *Catalog) GetProduct(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// SetPreview records p as the current preview selection and publishes
// events.PreviewChanged carrying the full product.
func (c *Catalog) SetPreview(p Product) {
	c.preview = p.ID
	c.bus.Publish(events.PreviewChanged, PreviewEvent{Product: p})
}

// Preview resolves the stored preview id through the current sequence. The
// second return is false when no preview is set or when the id no longer
// resolves, e.g. after the catalog was reloaded without it.
func (c *Catalog) Preview() (Product, bool) {
	if c.preview == "" {
		return Product{}, false
	}
	return c.GetProduct(c.preview)
}
