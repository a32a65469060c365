package interfaces

import "context"

// StockReading is the answer to a single stock check.
type StockReading struct {
	ProductID string
	Stock     int
}

// IInventoryService abstracts the stock-check capability of the product
// bounded context. Checks are issued one product at a time; there is no batch
// operation and no reservation.
type IInventoryService interface {
	CheckStock(ctx context.Context, productID string) (StockReading, error)
}
