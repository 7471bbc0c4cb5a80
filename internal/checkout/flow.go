package checkout

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/weblarek/storefront/internal/domain/basket"
	"github.com/weblarek/storefront/internal/domain/buyer"
	"github.com/weblarek/storefront/internal/domain/order"
	"github.com/weblarek/storefront/internal/domain/product"
	"github.com/weblarek/storefront/internal/events"
)

// CardSelected is the payload of events.CardSelected.
type CardSelected struct {
	ID string
}

// ItemRemoved is the payload of events.BasketItemRemoved.
type ItemRemoved struct {
	ID string
}

// FieldChanged is the payload of events.OrderFieldChanged and
// events.ContactsFieldChanged.
type FieldChanged struct {
	Field buyer.Field
	Value string
}

// OrderSucceeded is the payload of events.OrderSucceeded.
type OrderSucceeded struct {
	OrderID string
	Total   decimal.Decimal
}

// API is the slice of the backend client the flow needs.
type API interface {
	ListProducts(ctx context.Context) ([]product.Product, error)
	SubmitOrder(ctx context.Context, o order.Order) (order.Result, error)
}

// Flow is the checkout state machine. It owns the domain models for the
// lifetime of the application, subscribes to every bus topic it reacts to,
// and renders through the injected Presenter.
//
// All model mutation happens here, in bus event handlers; views never touch
// the models directly. Dispatch is single-threaded (the bus is synchronous),
// so the flow needs no internal locking.
type Flow struct {
	bus       *events.Bus
	catalog   *product.Catalog
	basket    *basket.Model
	buyer     *buyer.Model
	api       API
	presenter Presenter
	lg        *zap.Logger

	ctx   context.Context
	state State
}

// NewFlow creates the flow. Call Bind before publishing any events.
func NewFlow(
	bus *events.Bus,
	catalog *product.Catalog,
	bkt *basket.Model,
	byr *buyer.Model,
	api API,
	presenter Presenter,
	lg *zap.Logger,
) *Flow {
	return &Flow{
		bus:       bus,
		catalog:   catalog,
		basket:    bkt,
		buyer:     byr,
		api:       api,
		presenter: presenter,
		lg:        lg,
		state:     State{Stage: StageBrowsing},
	}
}

// Bind subscribes the flow to the bus. ctx bounds the API calls issued from
// event handlers (order submission).
func (f *Flow) Bind(ctx context.Context) {
	f.ctx = ctx

	events.On(f.bus, events.CatalogChanged, f.onCatalogChanged)
	events.On(f.bus, events.PreviewChanged, f.onPreviewChanged)
	events.On(f.bus, events.BasketChanged, f.onBasketChanged)
	events.On(f.bus, events.BuyerChanged, func(buyer.FieldEvent) { f.revalidateForms() })
	events.On(f.bus, events.CardSelected, f.onCardSelected)
	events.On(f.bus, events.BasketItemRemoved, f.onItemRemoved)
	events.On(f.bus, events.OrderFieldChanged, f.onFieldChanged)
	events.On(f.bus, events.ContactsFieldChanged, f.onFieldChanged)
	events.On(f.bus, events.OrderSucceeded, f.onOrderSucceeded)

	f.bus.Subscribe(events.PreviewToggled, func(any) { f.onPreviewToggled() })
	f.bus.Subscribe(events.BasketOpened, func(any) { f.openBasket() })
	f.bus.Subscribe(events.CheckoutStarted, func(any) { f.openOrderForm() })
	f.bus.Subscribe(events.OrderSubmitted, func(any) { f.onOrderSubmitted() })
	f.bus.Subscribe(events.ContactsSubmitted, func(any) { f.onContactsSubmitted() })
	f.bus.Subscribe(events.ModalClosed, func(any) { f.closeModal() })
}

// State returns the current flow position.
func (f *Flow) State() State {
	return f.state
}

// LoadCatalog fetches the product list and installs it into the catalog
// model, which re-renders the gallery through the resulting bus event.
func (f *Flow) LoadCatalog(ctx context.Context) error {
	products, err := f.api.ListProducts(ctx)
	if err != nil {
		return errors.Wrap(err, "load catalog")
	}
	f.catalog.SetProducts(products)
	return nil
}

func (f *Flow) onCatalogChanged(ev product.CatalogEvent) {
	cards := make([]GalleryCard, len(ev.Products))
	for i, p := range ev.Products {
		cards[i] = GalleryCard{
			ID:       p.ID,
			Title:    p.Title,
			Category: p.Category,
			Image:    p.Image,
			Price:    p.Price,
		}
	}
	f.presenter.RenderGallery(cards)
}

func (f *Flow) onCardSelected(ev CardSelected) {
	p, ok := f.catalog.GetProduct(ev.ID)
	if !ok {
		f.lg.Warn("Selected card is not in the catalog", zap.String("id", ev.ID))
		return
	}
	f.catalog.SetPreview(p)
}

func (f *Flow) onPreviewChanged(ev product.PreviewEvent) {
	p := ev.Product
	f.state = State{Stage: StagePreview, ProductID: p.ID}

	card := PreviewCard{
		GalleryCard: GalleryCard{
			ID:       p.ID,
			Title:    p.Title,
			Category: p.Category,
			Image:    p.Image,
			Price:    p.Price,
		},
		Description: p.Description,
	}
	switch {
	case p.Priceless():
		card.ButtonLabel = ButtonUnavailable
		card.ButtonDisabled = true
	case f.basket.Contains(p.ID):
		card.ButtonLabel = ButtonRemove
	default:
		card.ButtonLabel = ButtonAdd
	}
	f.presenter.RenderPreview(card)
}

func (f *Flow) onPreviewToggled() {
	if f.state.Stage != StagePreview {
		return
	}
	p, ok := f.catalog.Preview()
	if !ok || p.Priceless() {
		return
	}
	if f.basket.Contains(p.ID) {
		f.basket.Remove(p.ID)
	} else {
		f.basket.Add(p)
	}
	f.closeModal()
}

func (f *Flow) onBasketChanged(basket.ChangedEvent) {
	f.presenter.RenderBasketCount(f.basket.Count())
	// Removing an item while the basket modal is open re-renders it in place.
	if f.state.Stage == StageBasket {
		f.renderBasket()
	}
}

func (f *Flow) openBasket() {
	f.state = State{Stage: StageBasket}
	f.renderBasket()
}

func (f *Flow) renderBasket() {
	items := f.basket.Items()
	rows := make([]BasketRow, len(items))
	for i, p := range items {
		rows[i] = BasketRow{Index: i + 1, ID: p.ID, Title: p.Title, Price: p.Price}
	}
	f.presenter.RenderBasket(BasketView{
		Rows:            rows,
		Total:           f.basket.Total(),
		CheckoutEnabled: f.basket.Count() > 0,
	})
}

func (f *Flow) onItemRemoved(ev ItemRemoved) {
	f.basket.Remove(ev.ID)
}

func (f *Flow) openOrderForm() {
	if f.state.Stage != StageBasket || f.basket.Count() == 0 {
		return
	}
	f.state = State{Stage: StageOrderForm}
	f.renderOrderForm()
}

func (f *Flow) onFieldChanged(ev FieldChanged) {
	f.buyer.SetField(ev.Field, ev.Value)
}

// revalidateForms re-renders whichever form is currently open with fresh
// validation results. Called on every buyer change.
func (f *Flow) revalidateForms() {
	switch f.state.Stage {
	case StageOrderForm:
		f.renderOrderForm()
	case StageContacts:
		f.renderContactsForm()
	}
}

func (f *Flow) renderOrderForm() {
	data := f.buyer.Data()
	errs := f.buyer.Validate()

	var messages []string
	for _, field := range []buyer.Field{buyer.FieldPayment, buyer.FieldAddress} {
		if msg, ok := errs[field]; ok {
			messages = append(messages, msg)
		}
	}
	f.presenter.RenderOrderForm(OrderFormView{
		Payment:       data.Payment,
		Address:       data.Address,
		Errors:        messages,
		SubmitEnabled: len(messages) == 0,
	})
}

func (f *Flow) onOrderSubmitted() {
	if f.state.Stage != StageOrderForm {
		return
	}
	errs := f.buyer.Validate()
	if _, bad := errs[buyer.FieldPayment]; bad {
		return
	}
	if _, bad := errs[buyer.FieldAddress]; bad {
		return
	}
	f.state = State{Stage: StageContacts}
	f.renderContactsForm()
}

func (f *Flow) renderContactsForm() {
	data := f.buyer.Data()
	errs := f.buyer.Validate()

	var messages []string
	for _, field := range []buyer.Field{buyer.FieldEmail, buyer.FieldPhone} {
		if msg, ok := errs[field]; ok {
			messages = append(messages, msg)
		}
	}
	f.presenter.RenderContactsForm(ContactsFormView{
		Email:         data.Email,
		Phone:         data.Phone,
		Errors:        messages,
		SubmitEnabled: len(messages) == 0,
	})
}

func (f *Flow) onContactsSubmitted() {
	if f.state.Stage != StageContacts {
		return
	}
	errs := f.buyer.Validate()
	if _, bad := errs[buyer.FieldEmail]; bad {
		return
	}
	if _, bad := errs[buyer.FieldPhone]; bad {
		return
	}
	f.submitOrder()
}

// submitOrder builds the order snapshot from the current buyer and basket and
// posts it. On success the basket and buyer are cleared and the success view
// is shown. On failure the error is logged and the flow returns to the
// contacts form; there is no retry.
func (f *Flow) submitOrder() {
	data := f.buyer.Data()
	items := f.basket.Items()
	ids := make([]string, len(items))
	for i, p := range items {
		ids[i] = p.ID
	}

	snapshot := order.Order{
		Payment: data.Payment,
		Email:   data.Email,
		Phone:   data.Phone,
		Address: data.Address,
		Total:   f.basket.Total(),
		Items:   ids,
	}

	f.state = State{Stage: StageSubmitting}
	res, err := f.api.SubmitOrder(f.ctx, snapshot)
	if err != nil {
		f.lg.Error("Order submission failed", zap.Error(err))
		f.state = State{Stage: StageContacts}
		return
	}

	f.basket.Clear()
	f.buyer.Clear()
	f.bus.Publish(events.OrderSucceeded, OrderSucceeded{OrderID: res.ID, Total: res.Total})
}

func (f *Flow) onOrderSucceeded(ev OrderSucceeded) {
	f.state = State{Stage: StageSuccess, Total: ev.Total}
	f.presenter.RenderSuccess(ev.Total)
}

func (f *Flow) closeModal() {
	f.state = State{Stage: StageBrowsing}
	f.presenter.CloseModal()
}
