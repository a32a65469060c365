package interfaces

import (
	"context"

	"loja_xpto/internal/domain/entities"
)

// InvoiceIssueLine is one billed item in an issue request.
type InvoiceIssueLine struct {
	ID    string
	Name  string
	Price float64
}

// InvoiceIssueInput carries everything needed to issue an invoice: the payer
// identification plus the flattened address and the billed items.
type InvoiceIssueInput struct {
	Name       string
	Document   string
	Street     string
	Number     string
	Complement string
	City       string
	State      string
	ZipCode    string
	Items      []InvoiceIssueLine
}

// IInvoiceIssuer is the capability the checkout flow uses to issue an invoice
// after an approved payment.
type IInvoiceIssuer interface {
	GenerateInvoice(ctx context.Context, input InvoiceIssueInput) (entities.Invoice, error)
}
