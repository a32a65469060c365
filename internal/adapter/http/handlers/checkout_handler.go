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

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)

// CheckoutHandler handles HTTP requests for order placement.

type CheckoutHandler struct {
	usecase usecase.IPlaceOrderUseCase
}

func NewCheckoutHandler(uc usecase.IPlaceOrderUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// PlaceOrder runs the whole checkout: stock validation, catalog resolution,
// payment and, on approval, invoicing.
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	clientID := payload.ResolveClientID()
	if clientID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] place-order start client_id=%s products=%d", clientID, len(payload.Products))

	out, err := h.usecase.PlaceOrder(c.Request.Context(), usecase.PlaceOrderInput{
		ClientID:   clientID,
		ProductIDs: payload.ResolveProductIDs(),
	})
	if err != nil {
		log.Printf("[checkout][handler] place-order failed client_id=%s err=%v", clientID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] place-order success order_id=%s status=%s total=%.2f", out.ID, out.Status, out.Total)

	c.JSON(http.StatusCreated, response.FromPlaceOrderOutput(out))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoProductsSelected):
		return pkg.NewDomainErrorSimple("NO_PRODUCTS_SELECTED", "No products selected", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductOutOfStock):
		return pkg.NewDomainErrorSimple("PRODUCT_OUT_OF_STOCK", err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidInvoice), errors.Is(err, entities.ErrInvalidInvoiceLine):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
