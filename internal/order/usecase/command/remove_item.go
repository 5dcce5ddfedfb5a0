package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/order/domain"
)

// RemoveItemCommand represents the command to drop a product line from an order
type RemoveItemCommand struct {
	OrderID   int
	ProductID int
}

// RemoveItemHandler handles remove item command
type RemoveItemHandler struct {
	repo domain.OrderRepository
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(repo domain.OrderRepository) *RemoveItemHandler {
	return &RemoveItemHandler{repo: repo}
}

// Handle executes the remove item command
func (h *RemoveItemHandler) Handle(cmd RemoveItemCommand) (*domain.Order, error) {
	order, err := h.repo.FindByID(cmd.OrderID)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}
	if order.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: order %d is %s", domain.ErrOrderNotEditable, order.ID, order.Status)
	}

	if !order.RemoveItem(cmd.ProductID) {
		return nil, fmt.Errorf("%w: product %d", domain.ErrItemNotFound, cmd.ProductID)
	}

	if err := h.repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}
