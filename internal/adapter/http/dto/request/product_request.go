package request

type ProductRequest struct {
	ID            string  `json:"id"`
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	PurchasePrice float64 `json:"purchasePrice"`
	SalesPrice    float64 `json:"salesPrice" binding:"required"`
	Stock         int     `json:"stock"`
}
