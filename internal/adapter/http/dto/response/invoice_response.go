package response

import (
	"time"

	"loja_xpto/internal/domain/entities"
)

type InvoiceAddressResponse struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`
}

type InvoiceItemResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type InvoiceResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Document  string                 `json:"document"`
	Address   InvoiceAddressResponse `json:"address"`
	Items     []InvoiceItemResponse  `json:"items"`
	Total     float64                `json:"total"`
	CreatedAt time.Time              `json:"createdAt"`
}

func FromInvoice(invoice entities.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, InvoiceItemResponse{ID: item.ID, Name: item.Name, Price: item.Price})
	}
	return InvoiceResponse{
		ID:       invoice.ID,
		Name:     invoice.Name,
		Document: invoice.Document,
		Address: InvoiceAddressResponse{
			Street:     invoice.Address.Street,
			Number:     invoice.Address.Number,
			Complement: invoice.Address.Complement,
			City:       invoice.Address.City,
			State:      invoice.Address.State,
			ZipCode:    invoice.Address.ZipCode,
		},
		Items:     items,
		Total:     invoice.Total(),
		CreatedAt: invoice.CreatedAt,
	}
}
