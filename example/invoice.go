package example

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bizobj/interfaces"
)

// Invoice refers to its customer by id only; lines are handed to the logic
// functions as a separate collection.
type Invoice interface {
	interfaces.BusinessObject
	identified
	CustomerId() uuid.UUID
	Issued() time.Time
}

type InvoiceLine interface {
	interfaces.BusinessObject
	InvoiceId() uuid.UUID
	Description() string
	Quantity() decimal.Decimal
	UnitPrice() decimal.Decimal
}

type invoice struct {
	id         uuid.UUID
	customerId uuid.UUID
	issued     time.Time
}

func NewInvoice(customerId uuid.UUID, issued time.Time) Invoice {
	return &invoice{
		id:         uuid.New(),
		customerId: customerId,
		issued:     issued,
	}
}

func (i *invoice) Id() uuid.UUID {
	return i.id
}

func (i *invoice) CustomerId() uuid.UUID {
	return i.customerId
}

func (i *invoice) Issued() time.Time {
	return i.issued
}

func (i *invoice) ToDisplayString() string {
	return fmt.Sprintf("Invoice %s issued %s", shortId(i.id), i.issued.Format(time.DateOnly))
}

type invoiceLine struct {
	invoiceId   uuid.UUID
	description string
	quantity    decimal.Decimal
	unitPrice   decimal.Decimal
}

func NewInvoiceLine(invoiceId uuid.UUID, description string, quantity, unitPrice decimal.Decimal) InvoiceLine {
	return &invoiceLine{
		invoiceId:   invoiceId,
		description: description,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}
}

func (l *invoiceLine) InvoiceId() uuid.UUID {
	return l.invoiceId
}

func (l *invoiceLine) Description() string {
	return l.description
}

func (l *invoiceLine) Quantity() decimal.Decimal {
	return l.quantity
}

func (l *invoiceLine) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

func (l *invoiceLine) ToDisplayString() string {
	return fmt.Sprintf("%s x %s @ %s", l.quantity.String(), l.description, l.unitPrice.StringFixed(2))
}
