package handlers

import (
	"errors"
	"log"
	"net/http"

	response "loja_xpto/internal/adapter/http/dto/response"
	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase"
	"loja_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles HTTP requests for invoice lookups.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// FindInvoice returns one stored invoice by id.
func (h *InvoiceHandler) FindInvoice(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[invoice][handler] find start invoice_id=%s", id)

	invoice, err := h.usecase.FindInvoice(c.Request.Context(), id)
	if err != nil {
		log.Printf("[invoice][handler] find failed invoice_id=%s err=%v", id, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidInvoice), errors.Is(err, entities.ErrInvalidInvoiceLine):
		return pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
