package repository

import (
	"testing"

	"loja_xpto/internal/domain/entities"
)

func TestOrderItemMapping(t *testing.T) {
	order := entities.Order{
		ID: "o1",
		Client: entities.Client{
			ID:       "1c",
			Name:     "Client 1",
			Email:    "client@x.com",
			Document: "0000",
			Address: entities.Address{
				Street:     "some address",
				Number:     "1",
				Complement: "apt 42",
				City:       "some city",
				State:      "some state",
				ZipCode:    "000",
			},
		},
		Lines: []entities.OrderLine{
			{ID: "1", Name: "Product 1", Description: "d1", UnitPrice: 40},
			{ID: "2", Name: "Product 2", Description: "d2", UnitPrice: 30},
		},
		Status: entities.OrderStatusApproved,
	}

	got := fromOrderItem(toOrderItem(order))

	if got.ID != order.ID || got.Status != order.Status {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got.Client != order.Client {
		t.Fatalf("client snapshot mismatch: stored=%+v got=%+v", order.Client, got.Client)
	}
	if got.Client.Address.Complement != "apt 42" {
		t.Fatalf("expected complement to survive the round trip, got %q", got.Client.Address.Complement)
	}
	if len(got.Lines) != 2 || got.Lines[1].UnitPrice != 30 || got.Total() != 70 {
		t.Fatalf("unexpected lines: %+v", got.Lines)
	}
}
