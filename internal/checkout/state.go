// Package checkout implements the storefront's orchestration layer: an
// explicit state machine driving the domain models, the API client, and the
// views in response to bus events.
package checkout

import (
	"github.com/shopspring/decimal"
)

// Stage enumerates the checkout flow positions. The flow starts in
// StageBrowsing and returns there from any stage on modal close.
type Stage int

const (
	StageBrowsing Stage = iota
	StagePreview
	StageBasket
	StageOrderForm
	StageContacts
	StageSubmitting
	StageSuccess
)

func (s Stage) String() string {
	switch s {
	case StageBrowsing:
		return "browsing"
	case StagePreview:
		return "preview"
	case StageBasket:
		return "basket"
	case StageOrderForm:
		return "order-form"
	case StageContacts:
		return "contacts-form"
	case StageSubmitting:
		return "submitting"
	case StageSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// State is the current flow position plus its stage-specific data.
type State struct {
	Stage Stage
	// ProductID is set while Stage == StagePreview.
	ProductID string
	// Total is set while Stage == StageSuccess: the server-confirmed order
	// total.
	Total decimal.Decimal
}
