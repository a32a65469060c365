package entities

import "time"

// PaymentStatus is the status reported by the payment provider.
//
// The provider is an opaque oracle: anything other than "approved" is treated
// as a declined charge by the checkout flow.

type PaymentStatus string

const (
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDeclined PaymentStatus = "declined"
)

// PaymentTransaction is the provider's answer for one charge attempt.
type PaymentTransaction struct {
	TransactionID string        `json:"transaction_id"`
	OrderID       string        `json:"order_id"`
	Amount        float64       `json:"amount"`
	Status        PaymentStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Approved reports whether the provider accepted the charge.
func (t PaymentTransaction) Approved() bool {
	return t.Status == PaymentStatusApproved
}
