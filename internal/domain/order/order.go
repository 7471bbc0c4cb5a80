// Package order defines the transient order snapshot sent to the backend.
package order

import (
	"github.com/shopspring/decimal"

	"github.com/weblarek/storefront/internal/domain/buyer"
)

// Order is a snapshot of the buyer record and the basket at submission
// instant. It is built right before the API call and never stored afterward.
type Order struct {
	Payment buyer.Payment   `json:"payment"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Address string          `json:"address"`
	Total   decimal.Decimal `json:"total"`
	Items   []string        `json:"items"`
}

// Result is the backend's response to an accepted order.
type Result struct {
	ID    string          `json:"id"`
	Total decimal.Decimal `json:"total"`
}
