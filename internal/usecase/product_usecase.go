package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrInvalidProductInput = errors.New("invalid product input")
)

// AddProductInput is the product registration payload.
type AddProductInput struct {
	ID            string
	Name          string
	Description   string
	PurchasePrice float64
	SalesPrice    float64
	Stock         int
}

// IProductUseCase exposes the product operations. CheckStock serves the
// inventory port and FindProduct the catalog port of the checkout flow.

type IProductUseCase interface {
	AddProduct(ctx context.Context, input AddProductInput) (entities.Product, error)
	CheckStock(ctx context.Context, productID string) (interfaces.StockReading, error)
	FindProduct(ctx context.Context, id string) (entities.Product, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var (
	_ IProductUseCase              = (*ProductUseCase)(nil)
	_ interfaces.IInventoryService = (*ProductUseCase)(nil)
	_ interfaces.ICatalogService   = (*ProductUseCase)(nil)
)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (u *ProductUseCase) AddProduct(ctx context.Context, input AddProductInput) (entities.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return entities.Product{}, fmt.Errorf("%w: name is required", ErrInvalidProductInput)
	}
	if input.PurchasePrice < 0 || input.SalesPrice < 0 {
		return entities.Product{}, fmt.Errorf("%w: prices must not be negative", ErrInvalidProductInput)
	}
	if input.Stock < 0 {
		return entities.Product{}, fmt.Errorf("%w: stock must not be negative", ErrInvalidProductInput)
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = entities.NewID()
	}
	now := time.Now().UTC()
	product := entities.Product{
		ID:            id,
		Name:          input.Name,
		Description:   input.Description,
		PurchasePrice: input.PurchasePrice,
		SalesPrice:    input.SalesPrice,
		Stock:         input.Stock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, product)
}

// CheckStock reports the available quantity for one product. A missing product
// is an error here: the inventory context has nothing to report about it.
func (u *ProductUseCase) CheckStock(ctx context.Context, productID string) (interfaces.StockReading, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return interfaces.StockReading{}, ErrInvalidProductID
	}
	product, err := u.repo.GetByID(ctx, productID)
	if err != nil {
		return interfaces.StockReading{}, err
	}
	if product.ID == "" {
		return interfaces.StockReading{}, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}
	return interfaces.StockReading{ProductID: product.ID, Stock: product.Stock}, nil
}

// FindProduct resolves catalog data. Absence is a zero-value product with a
// nil error, matching the ICatalogService contract.
func (u *ProductUseCase) FindProduct(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	return u.repo.GetByID(ctx, id)
}

func (u *ProductUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}
