package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/order/domain"
	"github.com/tradepoint/oms/pkg/events"
)

// CreateOrderCommand represents the command to open a new order
type CreateOrderCommand struct {
	CustomerID int
	Notes      string
}

// CreateOrderHandler handles order creation command
type CreateOrderHandler struct {
	repo      domain.OrderRepository
	customers domain.CustomerGateway
	bus       *events.Bus
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(repo domain.OrderRepository, customers domain.CustomerGateway, bus *events.Bus) *CreateOrderHandler {
	return &CreateOrderHandler{repo: repo, customers: customers, bus: bus}
}

// Handle executes the create order command. The customer's name and
// shipping address are snapshotted onto the order; later directory edits do
// not touch it. The order starts pending with no items.
func (h *CreateOrderHandler) Handle(cmd CreateOrderCommand) (*domain.Order, error) {
	customer, err := h.customers.Customer(cmd.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}

	order := domain.NewOrder(0, customer.ID, customer.Name)
	order.ShippingAddress = customer.ShippingAddress
	order.Notes = cmd.Notes

	if err := h.repo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	h.bus.PublishOrderCreated(events.OrderCreatedEvent{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
	})
	return order, nil
}
