package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple error formats code and message", func(t *testing.T) {
		appErr := NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
		if appErr.Error() != "ORDER_NOT_FOUND: Order not found" {
			t.Fatalf("unexpected error string: %s", appErr.Error())
		}
		if appErr.HTTPStatus != http.StatusNotFound {
			t.Fatalf("unexpected status: %d", appErr.HTTPStatus)
		}
	})

	t.Run("wrapped cause stays reachable through errors.Is", func(t *testing.T) {
		cause := errors.New("conditional check failed")
		appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(appErr, cause) {
			t.Fatal("expected cause to unwrap")
		}
	})

	t.Run("wire shape omits the cause", func(t *testing.T) {
		appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", errors.New("boom"), http.StatusInternalServerError)
		httpErr := appErr.ToHTTPError()
		if httpErr.Code != "INTERNAL_ERROR" || httpErr.Message != "An internal error occurred" {
			t.Fatalf("unexpected wire error: %+v", httpErr)
		}
	})
}
