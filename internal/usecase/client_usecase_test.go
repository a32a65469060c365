package usecase

import (
	"context"
	"errors"
	"testing"

	"loja_xpto/internal/domain/entities"
	mock_interfaces "loja_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClientUseCase_AddClient(t *testing.T) {
	t.Run("rejects a client without a document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := NewClientUseCase(repo).AddClient(context.Background(), AddClientInput{Name: "Client 1", Email: "c@x.com"})
		if !errors.Is(err, ErrInvalidClientInput) {
			t.Fatalf("expected ErrInvalidClientInput, got %v", err)
		}
	})

	t.Run("generates an id and timestamps on create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, client entities.Client) (entities.Client, error) {
				if client.ID == "" {
					t.Fatal("expected a generated id")
				}
				if client.CreatedAt.IsZero() || client.UpdatedAt.IsZero() {
					t.Fatal("expected timestamps to be set")
				}
				return client, nil
			},
		)

		created, err := NewClientUseCase(repo).AddClient(context.Background(), AddClientInput{
			Name:     "Client 1",
			Email:    "c@x.com",
			Document: "0000",
			Address:  entities.Address{Street: "some address", Number: "1", City: "some city", State: "some state", ZipCode: "000"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Name != "Client 1" || created.Address.City != "some city" {
			t.Fatalf("unexpected client: %+v", created)
		}
	})

	t.Run("keeps a caller-supplied id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, client entities.Client) (entities.Client, error) {
				return client, nil
			},
		)

		created, err := NewClientUseCase(repo).AddClient(context.Background(), AddClientInput{
			ID: "1c", Name: "Client 1", Email: "c@x.com", Document: "0000",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "1c" {
			t.Fatalf("expected id 1c, got %q", created.ID)
		}
	})
}

func TestClientUseCase_FindClient(t *testing.T) {
	t.Run("blank id is rejected without a lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

		_, err := NewClientUseCase(repo).FindClient(context.Background(), " ")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("absence is a zero client with nil error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Client{}, nil)

		client, err := NewClientUseCase(repo).FindClient(context.Background(), "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.ID != "" {
			t.Fatalf("expected zero client, got %+v", client)
		}
	})
}
