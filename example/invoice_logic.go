package example

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bizobj/immutable"
	"bizobj/logic"
)

func InvoiceLineAmount(line InvoiceLine) decimal.Decimal {
	return line.Quantity().Mul(line.UnitPrice())
}

// InvoiceTotal sums the lines that belong to invoice and ignores the rest.
func InvoiceTotal(invoice Invoice, lines immutable.List[InvoiceLine]) decimal.Decimal {
	total := decimal.Zero
	for line := range lines.Values() {
		if line.InvoiceId() == invoice.Id() {
			total = total.Add(InvoiceLineAmount(line))
		}
	}
	return total
}

// InvoicesOf keeps the invoices issued to customer, in their original order.
func InvoicesOf(customer Customer, invoices immutable.List[Invoice]) immutable.List[Invoice] {
	var matched []Invoice
	for inv := range invoices.Values() {
		if inv.CustomerId() == customer.Id() {
			matched = append(matched, inv)
		}
	}
	switch len(matched) {
	case 0:
		return logic.EmptyList[Invoice]()
	case 1:
		return logic.SingleEntryList(matched[0])
	default:
		return immutable.ListOf(matched...)
	}
}

func CustomerBalance(customer Customer, invoices immutable.List[Invoice], lines immutable.List[InvoiceLine]) decimal.Decimal {
	balance := decimal.Zero
	for inv := range InvoicesOf(customer, invoices).Values() {
		balance = balance.Add(InvoiceTotal(inv, lines))
	}
	return balance
}

func CustomerDirectory(customers immutable.List[Customer]) immutable.Map[uuid.UUID, Customer] {
	return logic.IndexById[uuid.UUID](customers)
}
