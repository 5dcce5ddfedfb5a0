package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/order/domain"
)

// ApplyDiscountCommand represents the command to apply a percentage discount
type ApplyDiscountCommand struct {
	OrderID int
	Percent float64
}

// ApplyDiscountHandler handles percentage discount commands
type ApplyDiscountHandler struct {
	repo domain.OrderRepository
}

// NewApplyDiscountHandler creates a new apply discount handler
func NewApplyDiscountHandler(repo domain.OrderRepository) *ApplyDiscountHandler {
	return &ApplyDiscountHandler{repo: repo}
}

// Handle executes the apply discount command. Percentages outside [0,100]
// leave the order untouched.
func (h *ApplyDiscountHandler) Handle(cmd ApplyDiscountCommand) (*domain.Order, error) {
	order, err := h.repo.FindByID(cmd.OrderID)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	before := order.DiscountAmount
	order.ApplyDiscount(cmd.Percent)
	if order.DiscountAmount == before {
		return order, nil
	}

	if err := h.repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}
