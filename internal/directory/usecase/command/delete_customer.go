package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/directory/domain"
)

// DeleteCustomerCommand represents the command to delete a customer
type DeleteCustomerCommand struct {
	ID int
}

// DeleteCustomerHandler handles customer deletion command
type DeleteCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewDeleteCustomerHandler creates a new delete customer handler
func NewDeleteCustomerHandler(repo domain.CustomerRepository) *DeleteCustomerHandler {
	return &DeleteCustomerHandler{repo: repo}
}

// Handle executes the delete customer command. Existing orders keep their
// customer snapshot; no cascade is performed.
func (h *DeleteCustomerHandler) Handle(cmd DeleteCustomerCommand) error {
	if cmd.ID <= 0 {
		return fmt.Errorf("invalid customer id")
	}
	if err := h.repo.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}
