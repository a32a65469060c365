package interfaces

import (
	"context"
	"errors"

	"loja_xpto/internal/domain/entities"
)

// ErrInvoiceNotFound is returned by Find when no invoice exists for the id.
// Absence is an error here, not a zero return: callers must never observe a
// half-built aggregate.
var ErrInvoiceNotFound = errors.New("invoice not found")

// IInvoiceRepository abstracts persistence for invoice aggregates.
//
// Generate must be atomic: the invoice row and all of its item rows succeed or
// fail together, partial writes are never observable.
type IInvoiceRepository interface {
	Generate(ctx context.Context, invoice entities.Invoice) (entities.Invoice, error)
	Find(ctx context.Context, id string) (entities.Invoice, error)
}
