package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/order/domain"
)

// ApplyFixedDiscountCommand represents the command to apply a fixed discount
type ApplyFixedDiscountCommand struct {
	OrderID int
	Amount  float64
}

// ApplyFixedDiscountHandler handles fixed discount commands
type ApplyFixedDiscountHandler struct {
	repo domain.OrderRepository
}

// NewApplyFixedDiscountHandler creates a new apply fixed discount handler
func NewApplyFixedDiscountHandler(repo domain.OrderRepository) *ApplyFixedDiscountHandler {
	return &ApplyFixedDiscountHandler{repo: repo}
}

// Handle executes the apply fixed discount command. Negative amounts leave
// the order untouched.
func (h *ApplyFixedDiscountHandler) Handle(cmd ApplyFixedDiscountCommand) (*domain.Order, error) {
	order, err := h.repo.FindByID(cmd.OrderID)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	before := order.DiscountAmount
	order.SetFixedDiscount(cmd.Amount)
	if order.DiscountAmount == before {
		return order, nil
	}

	if err := h.repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}
