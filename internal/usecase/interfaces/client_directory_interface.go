package interfaces

import (
	"context"

	"loja_xpto/internal/domain/entities"
)

// IClientDirectory is the narrow contract the checkout flow uses to resolve a
// client from the client-directory bounded context.
//
// Absence is reported as a zero-value client with a nil error; the caller
// decides what "not found" means for its own flow.
type IClientDirectory interface {
	FindClient(ctx context.Context, id string) (entities.Client, error)
}
