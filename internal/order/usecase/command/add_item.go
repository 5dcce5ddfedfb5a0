package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/order/domain"
)

// AddItemCommand represents the command to add a product line to an order
type AddItemCommand struct {
	OrderID   int
	ProductID int
	Quantity  int
}

// AddItemHandler handles add item command
type AddItemHandler struct {
	repo     domain.OrderRepository
	products domain.ProductGateway
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(repo domain.OrderRepository, products domain.ProductGateway) *AddItemHandler {
	return &AddItemHandler{repo: repo, products: products}
}

// Handle executes the add item command. Availability is checked against
// live catalog stock; nothing is reserved until the order is confirmed. The
// product's current name and price are snapshotted onto the line. Adding a
// product already on the order merges into its existing line.
func (h *AddItemHandler) Handle(cmd AddItemCommand) (*domain.Order, error) {
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	order, err := h.repo.FindByID(cmd.OrderID)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}
	if order.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: order %d is %s", domain.ErrOrderNotEditable, order.ID, order.Status)
	}

	product, err := h.products.Product(cmd.ProductID)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}
	if !h.products.IsAvailable(cmd.ProductID, cmd.Quantity) {
		return nil, fmt.Errorf("insufficient stock for product %d", cmd.ProductID)
	}

	order.AddItem(domain.NewOrderItem(product.ID, product.Name, cmd.Quantity, product.Price))

	if err := h.repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}
