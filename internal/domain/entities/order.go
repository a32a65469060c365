package entities

import "errors"

// OrderStatus represents the lifecycle of a checkout order.
//
// Domain notes:
//   - Orders are born pending and move to approved exactly once, only when
//     the payment provider approves the charge.
//   - There is no update/delete path; orders are appended once.

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusApproved OrderStatus = "approved"
)

var (
	ErrOrderClientRequired    = errors.New("order client is required")
	ErrOrderAlreadyApproved   = errors.New("order already approved")
	ErrOrderLineIDRequired    = errors.New("order line id is required")
	ErrOrderLinePriceNegative = errors.New("order line unit price must not be negative")
)

// OrderLine is a catalog snapshot taken at order time.
//
// The unit price is frozen here; later catalog price changes never affect a
// placed order.
type OrderLine struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
}

// NewOrderLine builds a validated line snapshot from catalog data.
func NewOrderLine(id, name, description string, unitPrice float64) (OrderLine, error) {
	if id == "" {
		return OrderLine{}, ErrOrderLineIDRequired
	}
	if unitPrice < 0 {
		return OrderLine{}, ErrOrderLinePriceNegative
	}
	return OrderLine{ID: id, Name: name, Description: description, UnitPrice: unitPrice}, nil
}

// Order is the checkout aggregate: a client snapshot plus an ordered list of
// line snapshots. It exclusively owns both.
type Order struct {
	ID     string      `json:"id"`
	Client Client      `json:"client"`
	Lines  []OrderLine `json:"lines"`
	Status OrderStatus `json:"status"`
}

// NewOrder creates a pending order owning copies of the provided lines.
// The id is generated when absent.
func NewOrder(id string, client Client, lines []OrderLine) (Order, error) {
	if client.ID == "" {
		return Order{}, ErrOrderClientRequired
	}
	if id == "" {
		id = NewID()
	}
	return Order{
		ID:     id,
		Client: client,
		Lines:  append([]OrderLine{}, lines...),
		Status: OrderStatusPending,
	}, nil
}

// Total is the sum of the line unit prices. It is always recomputed, never
// stored independently.
func (o Order) Total() float64 {
	total := 0.0
	for _, line := range o.Lines {
		total += line.UnitPrice
	}
	return total
}

// Approve transitions pending -> approved. It is the only mutator on the
// aggregate and may succeed at most once.
func (o *Order) Approve() error {
	if o.Status == OrderStatusApproved {
		return ErrOrderAlreadyApproved
	}
	o.Status = OrderStatusApproved
	return nil
}
