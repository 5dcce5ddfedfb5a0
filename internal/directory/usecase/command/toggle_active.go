package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/directory/domain"
)

// ToggleActiveCommand represents the command to activate or deactivate a customer
type ToggleActiveCommand struct {
	ID     int
	Active bool
}

// ToggleActiveHandler handles customer activation command
type ToggleActiveHandler struct {
	repo domain.CustomerRepository
}

// NewToggleActiveHandler creates a new toggle active handler
func NewToggleActiveHandler(repo domain.CustomerRepository) *ToggleActiveHandler {
	return &ToggleActiveHandler{repo: repo}
}

// Handle executes the toggle active command
func (h *ToggleActiveHandler) Handle(cmd ToggleActiveCommand) error {
	customer, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return fmt.Errorf("customer not found: %w", err)
	}
	customer.IsActive = cmd.Active
	if err := h.repo.Update(customer); err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}
