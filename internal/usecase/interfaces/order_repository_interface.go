package interfaces

import (
	"context"

	"loja_xpto/internal/domain/entities"
)

// IOrderRepository abstracts persistence for checkout orders.
//
// Orders are append-only: AddOrder is called exactly once per placed order and
// there is no update or delete operation.
type IOrderRepository interface {
	AddOrder(ctx context.Context, order entities.Order) error
	GetByID(ctx context.Context, id string) (entities.Order, error)
}
