package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/order/domain"
)

// UpdateNotesCommand represents the command to replace an order's notes
type UpdateNotesCommand struct {
	OrderID int
	Notes   string
}

// UpdateNotesHandler handles note update commands
type UpdateNotesHandler struct {
	repo domain.OrderRepository
}

// NewUpdateNotesHandler creates a new update notes handler
func NewUpdateNotesHandler(repo domain.OrderRepository) *UpdateNotesHandler {
	return &UpdateNotesHandler{repo: repo}
}

// Handle executes the update notes command
func (h *UpdateNotesHandler) Handle(cmd UpdateNotesCommand) (*domain.Order, error) {
	order, err := h.repo.FindByID(cmd.OrderID)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	order.Notes = cmd.Notes

	if err := h.repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}
