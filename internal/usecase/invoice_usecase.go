package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidInvoiceID = errors.New("invalid invoice id")
	ErrInvoiceNotFound  = interfaces.ErrInvoiceNotFound
)

// IInvoiceUseCase exposes the invoice operations: issuing a fresh invoice and
// looking an existing one up by id.

type IInvoiceUseCase interface {
	GenerateInvoice(ctx context.Context, input interfaces.InvoiceIssueInput) (entities.Invoice, error)
	FindInvoice(ctx context.Context, id string) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo interfaces.IInvoiceRepository
}

var (
	_ IInvoiceUseCase           = (*InvoiceUseCase)(nil)
	_ interfaces.IInvoiceIssuer = (*InvoiceUseCase)(nil)
)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

// GenerateInvoice validates every line independently, then the aggregate, and
// only then touches persistence. The repository write is atomic: the invoice
// row and all item rows commit together.
func (u *InvoiceUseCase) GenerateInvoice(ctx context.Context, input interfaces.InvoiceIssueInput) (entities.Invoice, error) {
	items := make([]entities.InvoiceLine, 0, len(input.Items))
	for _, item := range input.Items {
		line, err := entities.NewInvoiceLine(item.ID, item.Name, item.Price)
		if err != nil {
			return entities.Invoice{}, err
		}
		items = append(items, line)
	}

	address := entities.Address{
		Street:     input.Street,
		Number:     input.Number,
		Complement: input.Complement,
		City:       input.City,
		State:      input.State,
		ZipCode:    input.ZipCode,
	}
	invoice, err := entities.NewInvoice("", input.Name, input.Document, address, items)
	if err != nil {
		return entities.Invoice{}, err
	}

	created, err := u.repo.Generate(ctx, invoice)
	if err != nil {
		log.Printf("[invoice][usecase] generate failed invoice_id=%s err=%v", invoice.ID, err)
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] generate success invoice_id=%s items=%d total=%.2f", created.ID, len(created.Items), created.Total())
	return created, nil
}

// FindInvoice reconstitutes a stored invoice. It never mutates stored state.
func (u *InvoiceUseCase) FindInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	return u.repo.Find(ctx, id)
}
