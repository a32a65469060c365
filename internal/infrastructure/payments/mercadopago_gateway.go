package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// mockApprovalThreshold is the mock-mode rule: charges at or above this amount
// are approved, anything below is declined.
const mockApprovalThreshold = 100.0

// MercadoPagoGateway charges orders through Mercado Pago. With
// PAYMENT_GATEWAY_MOCK (or MERCADOPAGO_MOCK) enabled it answers locally
// without touching the provider.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// Process charges the order total and reports the provider's verdict. The
// provider status string is carried back verbatim; the checkout flow decides
// what to do with anything that is not "approved".
func (g *MercadoPagoGateway) Process(ctx context.Context, orderID string, amount float64) (entities.PaymentTransaction, error) {
	if g != nil && g.mockMode {
		return g.processMock(orderID, amount), nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.PaymentTransaction{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start order_id=%s amount=%.2f", orderID, amount)

	req := payment.Request{
		TransactionAmount: amount,
		Description:       fmt.Sprintf("order %s", orderID),
		ExternalReference: orderID,
	}
	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed order_id=%s err=%v", orderID, err)
		return entities.PaymentTransaction{}, err
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	now := time.Now().UTC()
	return entities.PaymentTransaction{
		TransactionID: strconv.Itoa(resp.ID),
		OrderID:       orderID,
		Amount:        amount,
		Status:        entities.PaymentStatus(resp.Status),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func (g *MercadoPagoGateway) processMock(orderID string, amount float64) entities.PaymentTransaction {
	status := entities.PaymentStatusDeclined
	if amount >= mockApprovalThreshold {
		status = entities.PaymentStatusApproved
	}
	log.Printf("[payment][gateway] mock create order_id=%s amount=%.2f status=%s", orderID, amount, status)

	now := time.Now().UTC()
	return entities.PaymentTransaction{
		TransactionID: strconv.FormatInt(now.UnixNano(), 10),
		OrderID:       orderID,
		Amount:        amount,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
