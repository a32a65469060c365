package interfaces

import (
	"context"

	"loja_xpto/internal/domain/entities"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The provider decides approval on its own; the checkout flow never retries a
// declined charge. A transport failure is returned as an error and aborts the
// whole execution.
type IPaymentGateway interface {
	Process(ctx context.Context, orderID string, amount float64) (entities.PaymentTransaction, error)
}
