package interfaces

import (
	"context"

	"loja_xpto/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for the client directory.
type IClientRepository interface {
	Create(ctx context.Context, client entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
}
