package entities

import "time"

// Product is the product record shared by the inventory and catalog contexts.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - PurchasePrice is what the store paid for the unit.
//   - SalesPrice is what the catalog advertises; order lines snapshot it.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PurchasePrice float64   `json:"purchase_price"`
	SalesPrice    float64   `json:"sales_price"`
	Stock         int       `json:"stock"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
