package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidClientID    = errors.New("invalid client id")
	ErrInvalidClientInput = errors.New("invalid client input")
)

// AddClientInput is the directory registration payload.
type AddClientInput struct {
	ID       string
	Name     string
	Email    string
	Document string
	Address  entities.Address
}

// IClientUseCase exposes the client-directory operations consumed by the API
// and, through the IClientDirectory port, by the checkout flow.

type IClientUseCase interface {
	AddClient(ctx context.Context, input AddClientInput) (entities.Client, error)
	FindClient(ctx context.Context, id string) (entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var (
	_ IClientUseCase              = (*ClientUseCase)(nil)
	_ interfaces.IClientDirectory = (*ClientUseCase)(nil)
)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) AddClient(ctx context.Context, input AddClientInput) (entities.Client, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Document) == "" {
		return entities.Client{}, ErrInvalidClientInput
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = entities.NewID()
	}
	now := time.Now().UTC()
	client := entities.Client{
		ID:        id,
		Name:      input.Name,
		Email:     input.Email,
		Document:  input.Document,
		Address:   input.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, client)
}

// FindClient resolves a directory record. Absence is a zero-value client with
// a nil error, matching the IClientDirectory contract.
func (u *ClientUseCase) FindClient(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	return u.repo.GetByID(ctx, id)
}
