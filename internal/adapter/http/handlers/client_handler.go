package handlers

import (
	"errors"
	"log"
	"net/http"

	request "loja_xpto/internal/adapter/http/dto/request"
	response "loja_xpto/internal/adapter/http/dto/response"
	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase"
	"loja_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidClientPayload = pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", "Invalid client payload", http.StatusBadRequest)

// ClientHandler handles HTTP requests for the client directory.

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	client, err := h.usecase.AddClient(c.Request.Context(), usecase.AddClientInput{
		ID:       payload.ID,
		Name:     payload.Name,
		Email:    payload.Email,
		Document: payload.Document,
		Address: entities.Address{
			Street:     payload.Street,
			Number:     payload.Number,
			Complement: payload.Complement,
			City:       payload.City,
			State:      payload.State,
			ZipCode:    payload.ZipCode,
		},
	})
	if err != nil {
		log.Printf("[client][handler] create failed err=%v", err)
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[client][handler] create success client_id=%s", client.ID)

	c.JSON(http.StatusCreated, response.FromClient(client))
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	id := c.Param("id")

	client, err := h.usecase.FindClient(c.Request.Context(), id)
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if client.ID == "" {
		appErr := pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidClientInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
