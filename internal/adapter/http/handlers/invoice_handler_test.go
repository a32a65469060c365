package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loja_xpto/internal/adapter/http/handlers/mocks"
	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInvoiceHandler_FindInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.IInvoiceUseCase) *gin.Engine {
		r := gin.New()
		r.GET("/v1/invoice/:id", NewInvoiceHandler(uc).FindInvoice)
		return r
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().FindInvoice(gomock.Any(), "missing").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoice/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := build(uc)

		now := time.Now().UTC()
		uc.EXPECT().FindInvoice(gomock.Any(), "inv-1").Return(entities.Invoice{
			ID:       "inv-1",
			Name:     "Client 1",
			Document: "0000",
			Address:  entities.Address{Street: "some address", Number: "1", City: "some city", State: "some state", ZipCode: "000"},
			Items: []entities.InvoiceLine{
				{ID: "i1", Name: "Item 1", Price: 100},
				{ID: "i2", Name: "Item 2", Price: 200},
			},
			CreatedAt: now,
			UpdatedAt: now,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoice/inv-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "inv-1" || body["total"] != 300.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapInvoiceError(t *testing.T) {
	if got := mapInvoiceError(usecase.ErrInvalidInvoiceID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapInvoiceError(usecase.ErrInvoiceNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapInvoiceError(entities.ErrInvalidInvoiceLine); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapInvoiceError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
