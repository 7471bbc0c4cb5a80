package events

// Model topics, published by the domain models after every mutation. Payload
// types live next to the emitting model (see the product, basket, and buyer
// packages).
const (
	// CatalogChanged carries product.CatalogEvent.
	CatalogChanged Topic = "catalog:changed"
	// PreviewChanged carries product.PreviewEvent.
	PreviewChanged Topic = "preview:changed"
	// BasketChanged carries basket.ChangedEvent.
	BasketChanged Topic = "basket:changed"
	// BuyerChanged carries buyer.FieldEvent.
	BuyerChanged Topic = "buyer:changed"
	// BuyerCleared has no payload.
	BuyerCleared Topic = "buyer:cleared"
)

// View topics, published by the frontend in response to user actions and
// consumed by the checkout flow. Payload types live in the checkout package.
const (
	// CardSelected carries checkout.CardSelected.
	CardSelected Topic = "card:select"
	// PreviewToggled has no payload: the preview card's action button was
	// pressed (add to or remove from the basket).
	PreviewToggled Topic = "preview:toggle"
	// BasketOpened has no payload.
	BasketOpened Topic = "basket:open"
	// BasketItemRemoved carries checkout.ItemRemoved.
	BasketItemRemoved Topic = "basket:remove"
	// CheckoutStarted has no payload: the basket view's checkout button.
	CheckoutStarted Topic = "checkout:start"
	// OrderFieldChanged carries checkout.FieldChanged (payment or address).
	OrderFieldChanged Topic = "order:field"
	// OrderSubmitted has no payload: the order form's submit button.
	OrderSubmitted Topic = "order:submit"
	// ContactsFieldChanged carries checkout.FieldChanged (email or phone).
	ContactsFieldChanged Topic = "contacts:field"
	// ContactsSubmitted has no payload: the contacts form's submit button.
	ContactsSubmitted Topic = "contacts:submit"
	// ModalClosed has no payload.
	ModalClosed Topic = "modal:close"
)

// Flow topics, published by the checkout flow itself.
const (
	// OrderSucceeded carries checkout.OrderSucceeded. Fires exactly once per
	// accepted order, after the basket and buyer have been cleared.
	OrderSucceeded Topic = "order:success"
)
