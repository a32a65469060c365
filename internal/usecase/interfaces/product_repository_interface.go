package interfaces

import (
	"context"

	"loja_xpto/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for products, shared by
// the inventory and catalog views.
type IProductRepository interface {
	Create(ctx context.Context, product entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
}
