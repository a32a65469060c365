package response

import "loja_xpto/internal/usecase"

type CheckoutProductResponse struct {
	ProductID string `json:"productId"`
}

// CheckoutResponse mirrors the checkout result. InvoiceID is null when the
// payment was not approved.
type CheckoutResponse struct {
	ID        string                    `json:"id"`
	InvoiceID *string                   `json:"invoiceId"`
	Status    string                    `json:"status"`
	Total     float64                   `json:"total"`
	Products  []CheckoutProductResponse `json:"products"`
}

func FromPlaceOrderOutput(out usecase.PlaceOrderOutput) CheckoutResponse {
	products := make([]CheckoutProductResponse, 0, len(out.Products))
	for _, p := range out.Products {
		products = append(products, CheckoutProductResponse{ProductID: p.ProductID})
	}

	var invoiceID *string
	if out.InvoiceID != "" {
		id := out.InvoiceID
		invoiceID = &id
	}

	return CheckoutResponse{
		ID:        out.ID,
		InvoiceID: invoiceID,
		Status:    string(out.Status),
		Total:     out.Total,
		Products:  products,
	}
}
