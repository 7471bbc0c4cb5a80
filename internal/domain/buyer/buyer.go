// Package buyer implements the checkout contact, payment, and address record
// collected across the order and contacts forms.
package buyer

import (
	"strings"

	"github.com/weblarek/storefront/internal/events"
)

// Payment is the selected payment method.
type Payment string

const (
	PaymentUnset Payment = ""
	PaymentCard  Payment = "card"
	PaymentCash  Payment = "cash"
)

// Field names a single buyer field.
type Field string

const (
	FieldPayment Field = "payment"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldAddress Field = "address"
)

// FieldEvent is the payload of events.BuyerChanged.
type FieldEvent struct {
	Field Field
	Value string
}

// Data is a snapshot of the buyer record.
type Data struct {
	Payment Payment
	Email   string
	Phone   string
	Address string
}

// Model is the mutable buyer record. All fields start empty; the record is
// not persisted and is cleared after a successful order.
type Model struct {
	bus  *events.Bus
	data Data
}

// New creates an empty buyer record publishing to bus.
func New(bus *events.Bus) *Model {
	return &Model{bus: bus}
}

// SetField mutates exactly one field by name and publishes
// events.BuyerChanged with the field and value. Unknown field names are
// ignored.
func (m *Model) SetField(field Field, value string) {
	switch field {
	case FieldPayment:
		m.data.Payment = Payment(value)
	case FieldEmail:
		m.data.Email = value
	case FieldPhone:
		m.data.Phone = value
	case FieldAddress:
		m.data.Address = value
	default:
		return
	}
	m.bus.Publish(events.BuyerChanged, FieldEvent{Field: field, Value: value})
}

// Data returns a snapshot copy of the record.
func (m *Model) Data() Data {
	return m.data
}

// Clear resets every field and publishes events.BuyerCleared.
func (m *Model) Clear() {
	m.data = Data{}
	m.bus.Publish(events.BuyerCleared, nil)
}

// Validate checks every field independently and returns a message for each
// invalid one. The rules are presence-only: no email or phone format checks.
// An empty map means the record is complete.
func (m *Model) Validate() map[Field]string {
	errs := make(map[Field]string)

	if m.data.Payment == PaymentUnset {
		errs[FieldPayment] = "payment method is not selected"
	}
	if strings.TrimSpace(m.data.Address) == "" {
		errs[FieldAddress] = "delivery address is required"
	}
	if strings.TrimSpace(m.data.Email) == "" {
		errs[FieldEmail] = "email is required"
	}
	if strings.TrimSpace(m.data.Phone) == "" {
		errs[FieldPhone] = "phone number is required"
	}

	return errs
}
