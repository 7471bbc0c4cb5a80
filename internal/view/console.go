// Package view renders the storefront to a terminal. Each component is a
// stateless renderer over an io.Writer; all state arrives in the view models
// passed by the checkout flow.
package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/weblarek/storefront/internal/checkout"
)

// Console implements checkout.Presenter over a single writer, framing modal
// content the way the browser UI frames its modal dialog.
type Console struct {
	w io.Writer

	header  Header
	gallery Gallery
	modal   Modal
}

// NewConsole creates a console presenter writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{
		w:       w,
		header:  Header{w: w},
		gallery: Gallery{w: w},
		modal:   Modal{w: w},
	}
}

func (c *Console) RenderGallery(cards []checkout.GalleryCard) {
	c.gallery.Render(cards)
}

func (c *Console) RenderBasketCount(n int) {
	c.header.Render(n)
}

func (c *Console) RenderPreview(card checkout.PreviewCard) {
	c.modal.Open(card.Title)
	fmt.Fprintf(c.w, "  [%s] %s\n", card.Category, formatPrice(card.Price))
	if card.Description != "" {
		fmt.Fprintf(c.w, "  %s\n", card.Description)
	}
	button := card.ButtonLabel
	if card.ButtonDisabled {
		button = strings.ToUpper(button)
	}
	fmt.Fprintf(c.w, "  ( %s )\n", button)
}

func (c *Console) RenderBasket(v checkout.BasketView) {
	c.modal.Open("Basket")
	if len(v.Rows) == 0 {
		fmt.Fprintln(c.w, "  basket is empty")
	}
	for _, row := range v.Rows {
		fmt.Fprintf(c.w, "  %d. %s — %s\n", row.Index, row.Title, formatPrice(row.Price))
	}
	fmt.Fprintf(c.w, "  total: %s\n", v.Total)
	if v.CheckoutEnabled {
		fmt.Fprintln(c.w, "  ( checkout )")
	}
}

func (c *Console) RenderOrderForm(v checkout.OrderFormView) {
	c.modal.Open("Order")
	fmt.Fprintf(c.w, "  payment: %s\n", string(v.Payment))
	fmt.Fprintf(c.w, "  address: %s\n", v.Address)
	renderFormFooter(c.w, v.Errors, v.SubmitEnabled, "next")
}

func (c *Console) RenderContactsForm(v checkout.ContactsFormView) {
	c.modal.Open("Contacts")
	fmt.Fprintf(c.w, "  email: %s\n", v.Email)
	fmt.Fprintf(c.w, "  phone: %s\n", v.Phone)
	renderFormFooter(c.w, v.Errors, v.SubmitEnabled, "pay")
}

func (c *Console) RenderSuccess(total decimal.Decimal) {
	c.modal.Open("Order placed")
	fmt.Fprintf(c.w, "  charged: %s\n", total)
}

func (c *Console) CloseModal() {
	c.modal.Close()
}

// Header shows the basket counter.
type Header struct {
	w io.Writer
}

func (h Header) Render(count int) {
	fmt.Fprintf(h.w, "== web-larek == basket(%d)\n", count)
}

// Gallery lists catalog cards.
type Gallery struct {
	w io.Writer
}

func (g Gallery) Render(cards []checkout.GalleryCard) {
	for i, card := range cards {
		fmt.Fprintf(g.w, "%2d. %-32s [%s] %s\n", i+1, card.Title, card.Category, formatPrice(card.Price))
	}
}

// Modal frames modal content with open/close markers.
type Modal struct {
	w io.Writer
}

func (m Modal) Open(title string) {
	fmt.Fprintf(m.w, "--- %s %s\n", title, strings.Repeat("-", max(0, 40-len(title))))
}

func (m Modal) Close() {
	fmt.Fprintln(m.w, strings.Repeat("-", 45))
}

func renderFormFooter(w io.Writer, errs []string, submitEnabled bool, submitLabel string) {
	for _, msg := range errs {
		fmt.Fprintf(w, "  ! %s\n", msg)
	}
	if submitEnabled {
		fmt.Fprintf(w, "  ( %s )\n", submitLabel)
	}
}

func formatPrice(price decimal.NullDecimal) string {
	if !price.Valid {
		return "priceless"
	}
	return price.Decimal.String()
}
