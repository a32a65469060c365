package repository

import (
	"context"
	"fmt"
	"sync"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"
)

// OrderMemoryRepository is an in-process IOrderRepository used by tests and by
// local runs without a DynamoDB endpoint. It hands out copies, so callers can
// never mutate stored state through a returned order.
type OrderMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]entities.Order
}

var _ interfaces.IOrderRepository = (*OrderMemoryRepository)(nil)

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{orders: make(map[string]entities.Order)}
}

func (r *OrderMemoryRepository) AddOrder(_ context.Context, order entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; ok {
		return fmt.Errorf("order %s already exists", order.ID)
	}
	r.orders[order.ID] = copyOrder(order)
	return nil
}

func (r *OrderMemoryRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	return copyOrder(order), nil
}

func copyOrder(order entities.Order) entities.Order {
	order.Lines = append([]entities.OrderLine{}, order.Lines...)
	return order
}
