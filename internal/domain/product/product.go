// Package product defines the catalog item type and the catalog model.
package product

import (
	"github.com/shopspring/decimal"
)

// Category classifies a product. The set of categories is fixed by the
// backend.
type Category string

const (
	CategorySoftSkill  Category = "soft-skill"
	CategoryHardSkill  Category = "hard-skill"
	CategoryButton     Category = "button"
	CategoryAdditional Category = "additional"
	CategoryOther      Category = "other"
)

// Product is a single catalog item. Products are immutable once fetched.
//
// A product with an invalid (null) price is not for sale: it contributes
// nothing to basket totals and its basket actions are disabled.
type Product struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Image       string              `json:"image"`
	Category    Category            `json:"category"`
	Price       decimal.NullDecimal `json:"price"`
}

// Priceless reports whether the product has no price and thus cannot be
// purchased.
func (p Product) Priceless() bool {
	return !p.Price.Valid
}

// PriceOrZero returns the product price, or zero for priceless products.
func (p Product) PriceOrZero() decimal.Decimal {
	if !p.Price.Valid {
		return decimal.Zero
	}
	return p.Price.Decimal
}
