package repository

import (
	"context"
	"testing"

	"loja_xpto/internal/domain/entities"
)

func memoryOrderFixture() entities.Order {
	return entities.Order{
		ID:     "o1",
		Client: entities.Client{ID: "1c", Name: "Client 1"},
		Lines: []entities.OrderLine{
			{ID: "1", Name: "Product 1", UnitPrice: 40},
			{ID: "2", Name: "Product 2", UnitPrice: 30},
		},
		Status: entities.OrderStatusPending,
	}
}

func TestOrderMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and retrieves an order", func(t *testing.T) {
		repo := NewOrderMemoryRepository()
		if err := repo.AddOrder(ctx, memoryOrderFixture()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := repo.GetByID(ctx, "o1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "o1" || got.Total() != 70 || len(got.Lines) != 2 {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("rejects a duplicate id", func(t *testing.T) {
		repo := NewOrderMemoryRepository()
		if err := repo.AddOrder(ctx, memoryOrderFixture()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.AddOrder(ctx, memoryOrderFixture()); err == nil {
			t.Fatal("expected duplicate error")
		}
	})

	t.Run("unknown id is a zero order with nil error", func(t *testing.T) {
		repo := NewOrderMemoryRepository()
		got, err := repo.GetByID(ctx, "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero order, got %+v", got)
		}
	})

	t.Run("returned order does not alias stored state", func(t *testing.T) {
		repo := NewOrderMemoryRepository()
		if err := repo.AddOrder(ctx, memoryOrderFixture()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, _ := repo.GetByID(ctx, "o1")
		got.Lines[0].UnitPrice = 9999

		again, _ := repo.GetByID(ctx, "o1")
		if again.Lines[0].UnitPrice != 40 {
			t.Fatalf("stored order mutated: %+v", again.Lines[0])
		}
	})
}
