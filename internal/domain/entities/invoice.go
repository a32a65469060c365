package entities

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidInvoiceLine = errors.New("invalid invoice line")
	ErrInvalidInvoice     = errors.New("invalid invoice")
)

// InvoiceLine is one billed item. Lines are validated at construction and
// never mutated afterwards.
type InvoiceLine struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// NewInvoiceLine validates and builds a line. The id is generated when absent.
func NewInvoiceLine(id, name string, price float64) (InvoiceLine, error) {
	if name == "" {
		return InvoiceLine{}, fmt.Errorf("%w: name is required", ErrInvalidInvoiceLine)
	}
	if price <= 0 {
		return InvoiceLine{}, fmt.Errorf("%w: price must be greater than 0", ErrInvalidInvoiceLine)
	}
	if id == "" {
		id = NewID()
	}
	return InvoiceLine{ID: id, Name: name, Price: price}, nil
}

// Invoice is the billing aggregate persisted by the invoice repository.
//
// Storage model (DynamoDB):
//   - invoices: PK id, address flattened into columns
//   - invoice_items: PK id, GSI invoice_id-index
//
// The aggregate exclusively owns its lines; the total is computed on demand
// and never persisted as a column.
type Invoice struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Document  string        `json:"document"`
	Address   Address       `json:"address"`
	Items     []InvoiceLine `json:"items"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NewInvoice validates and builds a fresh invoice. Reconstitution from storage
// bypasses this constructor since stored aggregates were validated on the way in.
func NewInvoice(id, name, document string, address Address, items []InvoiceLine) (Invoice, error) {
	if name == "" {
		return Invoice{}, fmt.Errorf("%w: name is required", ErrInvalidInvoice)
	}
	if document == "" {
		return Invoice{}, fmt.Errorf("%w: document is required", ErrInvalidInvoice)
	}
	if len(items) == 0 {
		return Invoice{}, fmt.Errorf("%w: at least one item is required", ErrInvalidInvoice)
	}
	if id == "" {
		id = NewID()
	}
	now := time.Now().UTC()
	return Invoice{
		ID:        id,
		Name:      name,
		Document:  document,
		Address:   address,
		Items:     append([]InvoiceLine{}, items...),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Total is the sum of the item prices, computed on demand.
func (i Invoice) Total() float64 {
	total := 0.0
	for _, item := range i.Items {
		total += item.Price
	}
	return total
}
