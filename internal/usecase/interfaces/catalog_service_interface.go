package interfaces

import (
	"context"

	"loja_xpto/internal/domain/entities"
)

// ICatalogService resolves full product data (name, description, sales price)
// from the catalog bounded context.
//
// Absence is reported as a zero-value product with a nil error.
type ICatalogService interface {
	FindProduct(ctx context.Context, id string) (entities.Product, error)
}
