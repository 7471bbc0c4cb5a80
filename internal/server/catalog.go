// Package server implements the development backend for the storefront: the
// REST boundary the client consumes, served from an embedded seed catalog.
// Nothing is persisted; accepted orders receive a synthesized id.
package server

import (
	"encoding/json"

	"github.com/go-faster/errors"

	"github.com/weblarek/storefront/internal/domain/product"
)

// Catalog is an immutable in-memory product store seeded at startup.
type Catalog struct {
	products []product.Product
	byID     map[string]product.Product
}

// NewCatalog decodes a JSON product list into a Catalog.
func NewCatalog(data []byte) (*Catalog, error) {
	var products []product.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, errors.Wrap(err, "decode seed catalog")
	}

	byID := make(map[string]product.Product, len(products))
	for _, p := range products {
		// First occurrence wins on duplicate ids, matching client lookups.
		if _, ok := byID[p.ID]; !ok {
			byID[p.ID] = p
		}
	}
	return &Catalog{products: products, byID: byID}, nil
}

// List returns every product in seed order.
func (c *Catalog) List() []product.Product {
	return c.products
}

// Get returns a product by id.
func (c *Catalog) Get(id string) (product.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}
