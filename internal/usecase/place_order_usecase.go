package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

var (
	ErrClientNotFound              = errors.New("client not found")
	ErrNoProductsSelected          = errors.New("no products selected")
	ErrProductOutOfStock           = errors.New("product out of stock")
	ErrProductNotFound             = errors.New("product not found")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
)

// PlaceOrderInput identifies the buyer and the selected products, in the
// order the buyer picked them.
type PlaceOrderInput struct {
	ClientID   string
	ProductIDs []string
}

// PlaceOrderProduct echoes one ordered product id back to the caller.
type PlaceOrderProduct struct {
	ProductID string
}

// PlaceOrderOutput is the result of one checkout execution. InvoiceID is empty
// when the payment was not approved.
type PlaceOrderOutput struct {
	ID        string
	InvoiceID string
	Status    entities.OrderStatus
	Total     float64
	Products  []PlaceOrderProduct
}

// IPlaceOrderUseCase runs the order-placement saga.

type IPlaceOrderUseCase interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (PlaceOrderOutput, error)
}

// PlaceOrderUseCase coordinates the client directory, inventory, catalog,
// payment and invoice collaborators into one checkout transaction.
//
// There is no distributed transaction and no compensation: every failure is
// terminal for the call, and a failure between payment approval and order
// persistence leaves an approved charge with no recorded order.
type PlaceOrderUseCase struct {
	clients   interfaces.IClientDirectory
	inventory interfaces.IInventoryService
	catalog   interfaces.ICatalogService
	payments  interfaces.IPaymentGateway
	invoices  interfaces.IInvoiceIssuer
	orders    interfaces.IOrderRepository
}

var _ IPlaceOrderUseCase = (*PlaceOrderUseCase)(nil)

// NewPlaceOrderUseCase wires the saga with its six collaborators. All of them
// are required; test doubles go through the same constructor.
func NewPlaceOrderUseCase(
	clients interfaces.IClientDirectory,
	inventory interfaces.IInventoryService,
	catalog interfaces.ICatalogService,
	payments interfaces.IPaymentGateway,
	invoices interfaces.IInvoiceIssuer,
	orders interfaces.IOrderRepository,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		clients:   clients,
		inventory: inventory,
		catalog:   catalog,
		payments:  payments,
		invoices:  invoices,
		orders:    orders,
	}
}

func (u *PlaceOrderUseCase) PlaceOrder(ctx context.Context, input PlaceOrderInput) (PlaceOrderOutput, error) {
	log.Printf("[checkout][usecase] place-order start client_id=%s products=%d", input.ClientID, len(input.ProductIDs))

	// The client gates all subsequent work; nothing runs in parallel with it.
	client, err := u.clients.FindClient(ctx, input.ClientID)
	if err != nil {
		return PlaceOrderOutput{}, err
	}
	if client.ID == "" {
		log.Printf("[checkout][usecase] client not found client_id=%s", input.ClientID)
		return PlaceOrderOutput{}, ErrClientNotFound
	}

	if err := u.validateProducts(ctx, input.ProductIDs); err != nil {
		return PlaceOrderOutput{}, err
	}

	lines, err := u.resolveProducts(ctx, input.ProductIDs)
	if err != nil {
		return PlaceOrderOutput{}, err
	}

	order, err := entities.NewOrder("", client, lines)
	if err != nil {
		return PlaceOrderOutput{}, err
	}

	// The gateway may be absent when the provider token is missing at startup.
	if u.payments == nil {
		log.Printf("[checkout][usecase] payment gateway not configured order_id=%s", order.ID)
		return PlaceOrderOutput{}, ErrPaymentGatewayNotConfigured
	}

	transaction, err := u.payments.Process(ctx, order.ID, order.Total())
	if err != nil {
		log.Printf("[checkout][usecase] payment failed order_id=%s err=%v", order.ID, err)
		return PlaceOrderOutput{}, err
	}
	log.Printf("[checkout][usecase] payment processed order_id=%s status=%s", order.ID, transaction.Status)

	invoiceID := ""
	if transaction.Approved() {
		invoice, err := u.invoices.GenerateInvoice(ctx, invoiceIssueInput(client, order.Lines))
		if err != nil {
			return PlaceOrderOutput{}, err
		}
		invoiceID = invoice.ID
		if err := order.Approve(); err != nil {
			return PlaceOrderOutput{}, err
		}
	}

	// Declined orders are persisted too, still pending.
	if err := u.orders.AddOrder(ctx, order); err != nil {
		return PlaceOrderOutput{}, err
	}
	log.Printf("[checkout][usecase] place-order success order_id=%s status=%s total=%.2f invoice_id=%s", order.ID, order.Status, order.Total(), invoiceID)

	products := make([]PlaceOrderProduct, 0, len(order.Lines))
	for _, line := range order.Lines {
		products = append(products, PlaceOrderProduct{ProductID: line.ID})
	}
	return PlaceOrderOutput{
		ID:        order.ID,
		InvoiceID: invoiceID,
		Status:    order.Status,
		Total:     order.Total(),
		Products:  products,
	}, nil
}

// validateProducts checks stock for every selected product, one at a time and
// in selection order. The first exhausted product aborts the pass; products
// after it are never checked.
func (u *PlaceOrderUseCase) validateProducts(ctx context.Context, productIDs []string) error {
	if len(productIDs) == 0 {
		return ErrNoProductsSelected
	}
	for _, id := range productIDs {
		reading, err := u.inventory.CheckStock(ctx, id)
		if err != nil {
			return err
		}
		if reading.Stock <= 0 {
			log.Printf("[checkout][usecase] product out of stock product_id=%s", reading.ProductID)
			return fmt.Errorf("%w: product %s is out of stock", ErrProductOutOfStock, reading.ProductID)
		}
	}
	return nil
}

// resolveProducts fetches catalog data for every product concurrently. The
// returned lines keep the input order no matter which lookup finishes first.
func (u *PlaceOrderUseCase) resolveProducts(ctx context.Context, productIDs []string) ([]entities.OrderLine, error) {
	lines := make([]entities.OrderLine, len(productIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range productIDs {
		g.Go(func() error {
			product, err := u.catalog.FindProduct(gctx, id)
			if err != nil {
				return err
			}
			if product.ID == "" {
				return fmt.Errorf("%w: %s", ErrProductNotFound, id)
			}
			line, err := entities.NewOrderLine(product.ID, product.Name, product.Description, product.SalesPrice)
			if err != nil {
				return err
			}
			lines[i] = line
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lines, nil
}

func invoiceIssueInput(client entities.Client, lines []entities.OrderLine) interfaces.InvoiceIssueInput {
	items := make([]interfaces.InvoiceIssueLine, 0, len(lines))
	for _, line := range lines {
		items = append(items, interfaces.InvoiceIssueLine{
			ID:    line.ID,
			Name:  line.Name,
			Price: line.UnitPrice,
		})
	}
	return interfaces.InvoiceIssueInput{
		Name:       client.Name,
		Document:   client.Document,
		Street:     client.Address.Street,
		Number:     client.Address.Number,
		Complement: client.Address.Complement,
		City:       client.Address.City,
		State:      client.Address.State,
		ZipCode:    client.Address.ZipCode,
		Items:      items,
	}
}
