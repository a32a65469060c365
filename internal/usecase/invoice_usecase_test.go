package usecase

import (
	"context"
	"errors"
	"testing"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"
	mock_interfaces "loja_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func invoiceIssueFixture() interfaces.InvoiceIssueInput {
	return interfaces.InvoiceIssueInput{
		Name:     "Client 1",
		Document: "0000",
		Street:   "some address",
		Number:   "1",
		City:     "some city",
		State:    "some state",
		ZipCode:  "000",
		Items: []interfaces.InvoiceIssueLine{
			{ID: "i1", Name: "Item 1", Price: 100},
			{ID: "i2", Name: "Item 2", Price: 200},
		},
	}
}

func TestInvoiceUseCase_GenerateInvoice(t *testing.T) {
	t.Run("rejects an unnamed line before touching persistence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		repo.EXPECT().Generate(gomock.Any(), gomock.Any()).Times(0)

		input := invoiceIssueFixture()
		input.Items[1].Name = ""

		_, err := NewInvoiceUseCase(repo).GenerateInvoice(context.Background(), input)
		if !errors.Is(err, entities.ErrInvalidInvoiceLine) {
			t.Fatalf("expected ErrInvalidInvoiceLine, got %v", err)
		}
	})

	t.Run("rejects a non-positive line price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		repo.EXPECT().Generate(gomock.Any(), gomock.Any()).Times(0)

		input := invoiceIssueFixture()
		input.Items[0].Price = 0

		_, err := NewInvoiceUseCase(repo).GenerateInvoice(context.Background(), input)
		if !errors.Is(err, entities.ErrInvalidInvoiceLine) {
			t.Fatalf("expected ErrInvalidInvoiceLine, got %v", err)
		}
	})

	t.Run("rejects a payer without a document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		repo.EXPECT().Generate(gomock.Any(), gomock.Any()).Times(0)

		input := invoiceIssueFixture()
		input.Document = ""

		_, err := NewInvoiceUseCase(repo).GenerateInvoice(context.Background(), input)
		if !errors.Is(err, entities.ErrInvalidInvoice) {
			t.Fatalf("expected ErrInvalidInvoice, got %v", err)
		}
	})

	t.Run("persists a valid invoice and reports its total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		repo.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, invoice entities.Invoice) (entities.Invoice, error) {
				return invoice, nil
			},
		)

		created, err := NewInvoiceUseCase(repo).GenerateInvoice(context.Background(), invoiceIssueFixture())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatal("expected a generated invoice id")
		}
		if created.Total() != 300 {
			t.Fatalf("expected total 300, got %v", created.Total())
		}
		if len(created.Items) != 2 || created.Items[0].Name != "Item 1" {
			t.Fatalf("unexpected items: %+v", created.Items)
		}
		if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
			t.Fatal("expected timestamps to be set")
		}
	})

	t.Run("finding a generated invoice returns what was stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)

		var stored entities.Invoice
		repo.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, invoice entities.Invoice) (entities.Invoice, error) {
				stored = invoice
				return invoice, nil
			},
		)
		repo.EXPECT().Find(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) (entities.Invoice, error) {
				if id != stored.ID {
					return entities.Invoice{}, interfaces.ErrInvoiceNotFound
				}
				return stored, nil
			},
		)

		uc := NewInvoiceUseCase(repo)
		created, err := uc.GenerateInvoice(context.Background(), invoiceIssueFixture())
		if err != nil {
			t.Fatalf("unexpected generate error: %v", err)
		}
		found, err := uc.FindInvoice(context.Background(), created.ID)
		if err != nil {
			t.Fatalf("unexpected find error: %v", err)
		}
		if found.ID != created.ID || found.Total() != created.Total() || len(found.Items) != len(created.Items) {
			t.Fatalf("round trip mismatch: created=%+v found=%+v", created, found)
		}
	})
}

func TestInvoiceUseCase_FindInvoice(t *testing.T) {
	t.Run("blank id is rejected without a lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		repo.EXPECT().Find(gomock.Any(), gomock.Any()).Times(0)

		_, err := NewInvoiceUseCase(repo).FindInvoice(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("unknown id surfaces not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		repo.EXPECT().Find(gomock.Any(), "missing").Return(entities.Invoice{}, interfaces.ErrInvoiceNotFound)

		_, err := NewInvoiceUseCase(repo).FindInvoice(context.Background(), "missing")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}
