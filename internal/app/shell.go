package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/weblarek/storefront/internal/checkout"
	"github.com/weblarek/storefront/internal/domain/basket"
	"github.com/weblarek/storefront/internal/domain/buyer"
	"github.com/weblarek/storefront/internal/domain/product"
	"github.com/weblarek/storefront/internal/events"
)

// Shell reads commands from a terminal and translates them into bus events,
// playing the role the DOM event listeners play in the browser UI. It tracks
// gallery and basket ordering (via the model change events) so commands can
// address items by their displayed number.
type Shell struct {
	bus *events.Bus
	in  io.Reader
	out io.Writer

	catalogIDs []string
	basketIDs  []string
}

// NewShell creates a shell publishing to bus. The index-to-id maps are seeded
// from the current model contents, so a catalog loaded before the shell
// existed is still addressable, and kept current through the change topics.
func NewShell(bus *events.Bus, catalog *product.Catalog, bkt *basket.Model, in io.Reader, out io.Writer) *Shell {
	s := &Shell{bus: bus, in: in, out: out}
	s.setCatalog(catalog.Products())
	s.setBasket(bkt.Items())

	events.On(bus, events.CatalogChanged, func(ev product.CatalogEvent) {
		s.setCatalog(ev.Products)
	})
	events.On(bus, events.BasketChanged, func(ev basket.ChangedEvent) {
		s.setBasket(ev.Items)
	})
	return s
}

func (s *Shell) setCatalog(products []product.Product) {
	s.catalogIDs = s.catalogIDs[:0]
	for _, p := range products {
		s.catalogIDs = append(s.catalogIDs, p.ID)
	}
}

func (s *Shell) setBasket(items []product.Product) {
	s.basketIDs = s.basketIDs[:0]
	for _, p := range items {
		s.basketIDs = append(s.basketIDs, p.ID)
	}
}

// Run reads commands until EOF, "quit", or context cancellation.
func (s *Shell) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	s.prompt()
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return nil
		}
		if line != "" {
			s.dispatch(line)
		}
		s.prompt()
	}
	return scanner.Err()
}

func (s *Shell) prompt() {
	fmt.Fprint(s.out, "> ")
}

func (s *Shell) dispatch(line string) {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "help":
		s.help()
	case "open":
		if id, ok := s.lookup(s.catalogIDs, rest); ok {
			s.bus.Publish(events.CardSelected, checkout.CardSelected{ID: id})
		}
	case "toggle":
		s.bus.Publish(events.PreviewToggled, nil)
	case "basket":
		s.bus.Publish(events.BasketOpened, nil)
	case "rm":
		if id, ok := s.lookup(s.basketIDs, rest); ok {
			s.bus.Publish(events.BasketItemRemoved, checkout.ItemRemoved{ID: id})
		}
	case "checkout":
		s.bus.Publish(events.CheckoutStarted, nil)
	case "pay":
		s.bus.Publish(events.OrderFieldChanged, checkout.FieldChanged{Field: buyer.FieldPayment, Value: rest})
	case "address":
		s.bus.Publish(events.OrderFieldChanged, checkout.FieldChanged{Field: buyer.FieldAddress, Value: rest})
	case "next":
		s.bus.Publish(events.OrderSubmitted, nil)
	case "email":
		s.bus.Publish(events.ContactsFieldChanged, checkout.FieldChanged{Field: buyer.FieldEmail, Value: rest})
	case "phone":
		s.bus.Publish(events.ContactsFieldChanged, checkout.FieldChanged{Field: buyer.FieldPhone, Value: rest})
	case "submit":
		s.bus.Publish(events.ContactsSubmitted, nil)
	case "close":
		s.bus.Publish(events.ModalClosed, nil)
	default:
		fmt.Fprintf(s.out, "unknown command %q, try help\n", cmd)
	}
}

// lookup resolves a 1-based display number to a product id.
func (s *Shell) lookup(ids []string, arg string) (string, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(ids) {
		fmt.Fprintf(s.out, "no item %q\n", arg)
		return "", false
	}
	return ids[n-1], true
}

func (s *Shell) help() {
	fmt.Fprintln(s.out, `commands:
  open <n>        open catalog card n
  toggle          add/remove previewed product
  basket          open the basket
  rm <n>          remove basket item n
  checkout        start checkout
  pay card|cash   choose payment method
  address <text>  set delivery address
  next            submit the order form
  email <text>    set email
  phone <text>    set phone
  submit          place the order
  close           close the modal
  quit            leave`)
}
