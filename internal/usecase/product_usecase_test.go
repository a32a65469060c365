package usecase

import (
	"context"
	"errors"
	"testing"

	"loja_xpto/internal/domain/entities"
	mock_interfaces "loja_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProductUseCase_AddProduct(t *testing.T) {
	t.Run("rejects an unnamed product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := NewProductUseCase(repo).AddProduct(context.Background(), AddProductInput{SalesPrice: 10})
		if !errors.Is(err, ErrInvalidProductInput) {
			t.Fatalf("expected ErrInvalidProductInput, got %v", err)
		}
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := NewProductUseCase(repo).AddProduct(context.Background(), AddProductInput{Name: "Product 1", Stock: -1})
		if !errors.Is(err, ErrInvalidProductInput) {
			t.Fatalf("expected ErrInvalidProductInput, got %v", err)
		}
	})

	t.Run("creates a product with generated id and timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, product entities.Product) (entities.Product, error) {
				if product.ID == "" {
					t.Fatal("expected a generated id")
				}
				if product.CreatedAt.IsZero() {
					t.Fatal("expected timestamps to be set")
				}
				return product, nil
			},
		)

		created, err := NewProductUseCase(repo).AddProduct(context.Background(), AddProductInput{
			Name: "Product 1", Description: "d1", PurchasePrice: 25, SalesPrice: 40, Stock: 3,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.SalesPrice != 40 || created.Stock != 3 {
			t.Fatalf("unexpected product: %+v", created)
		}
	})
}

func TestProductUseCase_CheckStock(t *testing.T) {
	t.Run("reports the stored quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "1").Return(entities.Product{ID: "1", Name: "Product 1", Stock: 7}, nil)

		reading, err := NewProductUseCase(repo).CheckStock(context.Background(), "1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reading.ProductID != "1" || reading.Stock != 7 {
			t.Fatalf("unexpected reading: %+v", reading)
		}
	})

	t.Run("missing product is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Product{}, nil)

		_, err := NewProductUseCase(repo).CheckStock(context.Background(), "missing")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("blank id is rejected without a lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

		_, err := NewProductUseCase(repo).CheckStock(context.Background(), "")
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})
}

func TestProductUseCase_FindProduct(t *testing.T) {
	t.Run("absence is a zero product with nil error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Product{}, nil)

		product, err := NewProductUseCase(repo).FindProduct(context.Background(), "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if product.ID != "" {
			t.Fatalf("expected zero product, got %+v", product)
		}
	})
}

func TestProductUseCase_ListProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProductRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return([]entities.Product{{ID: "1"}, {ID: "2"}}, nil)

	products, err := NewProductUseCase(repo).ListProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
}
