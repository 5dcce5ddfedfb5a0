package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/order/domain"
)

// UpdateItemQuantityCommand represents the command to change a line's
// quantity. A quantity of zero or less removes the line.
type UpdateItemQuantityCommand struct {
	OrderID   int
	ProductID int
	Quantity  int
}

// UpdateItemQuantityHandler handles item quantity update command
type UpdateItemQuantityHandler struct {
	repo     domain.OrderRepository
	products domain.ProductGateway
}

// NewUpdateItemQuantityHandler creates a new update item quantity handler
func NewUpdateItemQuantityHandler(repo domain.OrderRepository, products domain.ProductGateway) *UpdateItemQuantityHandler {
	return &UpdateItemQuantityHandler{repo: repo, products: products}
}

// Handle executes the update item quantity command. Quantity increases are
// re-validated against live catalog stock, the same policy as adding.
func (h *UpdateItemQuantityHandler) Handle(cmd UpdateItemQuantityCommand) (*domain.Order, error) {
	order, err := h.repo.FindByID(cmd.OrderID)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}
	if order.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: order %d is %s", domain.ErrOrderNotEditable, order.ID, order.Status)
	}

	current, ok := order.Item(cmd.ProductID)
	if !ok {
		return nil, fmt.Errorf("%w: product %d", domain.ErrItemNotFound, cmd.ProductID)
	}
	if cmd.Quantity > current.Quantity && !h.products.IsAvailable(cmd.ProductID, cmd.Quantity) {
		return nil, fmt.Errorf("insufficient stock for product %d", cmd.ProductID)
	}

	order.UpdateItemQuantity(cmd.ProductID, cmd.Quantity)

	if err := h.repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}
