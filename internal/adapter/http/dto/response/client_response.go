package response

import (
	"time"

	"loja_xpto/internal/domain/entities"
)

type ClientResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Document   string    `json:"document"`
	Street     string    `json:"street"`
	Number     string    `json:"number"`
	Complement string    `json:"complement"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	ZipCode    string    `json:"zipCode"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromClient(client entities.Client) ClientResponse {
	return ClientResponse{
		ID:         client.ID,
		Name:       client.Name,
		Email:      client.Email,
		Document:   client.Document,
		Street:     client.Address.Street,
		Number:     client.Address.Number,
		Complement: client.Address.Complement,
		City:       client.Address.City,
		State:      client.Address.State,
		ZipCode:    client.Address.ZipCode,
		CreatedAt:  client.CreatedAt,
		UpdatedAt:  client.UpdatedAt,
	}
}
