package request

import "strings"

type CheckoutProductRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// CheckoutRequest is the order-placement payload. Product order matters: the
// response echoes the products back in the order they were requested.
type CheckoutRequest struct {
	ClientID string                   `json:"clientId" binding:"required"`
	Products []CheckoutProductRequest `json:"products"`
}

func (r CheckoutRequest) ResolveClientID() string {
	return strings.TrimSpace(r.ClientID)
}

// ResolveProductIDs returns the trimmed product ids, dropping blank entries
// while keeping the request order.
func (r CheckoutRequest) ResolveProductIDs() []string {
	ids := make([]string, 0, len(r.Products))
	for _, p := range r.Products {
		if id := strings.TrimSpace(p.ProductID); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
