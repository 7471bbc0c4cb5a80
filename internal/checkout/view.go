package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/weblarek/storefront/internal/domain/buyer"
	"github.com/weblarek/storefront/internal/domain/product"
)

// Preview card button labels, derived from (priceless, in basket).
const (
	ButtonAdd         = "add to basket"
	ButtonRemove      = "remove from basket"
	ButtonUnavailable = "unavailable"
)

// GalleryCard is the view model of a catalog card.
type GalleryCard struct {
	ID       string
	Title    string
	Category product.Category
	Image    string
	Price    decimal.NullDecimal
}

// PreviewCard is the view model of the detail card shown in the modal.
type PreviewCard struct {
	GalleryCard
	Description    string
	ButtonLabel    string
	ButtonDisabled bool
}

// BasketRow is one line of the basket view, numbered from 1.
type BasketRow struct {
	Index int
	ID    string
	Title string
	Price decimal.NullDecimal
}

// BasketView is the view model of the basket modal.
type BasketView struct {
	Rows            []BasketRow
	Total           decimal.Decimal
	CheckoutEnabled bool
}

// OrderFormView is the view model of the payment/address form.
type OrderFormView struct {
	Payment       buyer.Payment
	Address       string
	Errors        []string
	SubmitEnabled bool
}

// ContactsFormView is the view model of the email/phone form.
type ContactsFormView struct {
	Email         string
	Phone         string
	Errors        []string
	SubmitEnabled bool
}

// Presenter receives render side effects from the flow. Implementations are
// stateless: each call carries everything needed for the render.
type Presenter interface {
	RenderGallery(cards []GalleryCard)
	RenderBasketCount(n int)
	RenderPreview(card PreviewCard)
	RenderBasket(v BasketView)
	RenderOrderForm(v OrderFormView)
	RenderContactsForm(v ContactsFormView)
	RenderSuccess(total decimal.Decimal)
	CloseModal()
}
