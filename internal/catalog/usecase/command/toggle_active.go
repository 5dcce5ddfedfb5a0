package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/catalog/domain"
)

// ToggleActiveCommand represents the command to activate or deactivate a product
type ToggleActiveCommand struct {
	ID     int
	Active bool
}

// ToggleActiveHandler handles product activation command
type ToggleActiveHandler struct {
	repo domain.ProductRepository
}

// NewToggleActiveHandler creates a new toggle active handler
func NewToggleActiveHandler(repo domain.ProductRepository) *ToggleActiveHandler {
	return &ToggleActiveHandler{repo: repo}
}

// Handle executes the toggle active command
func (h *ToggleActiveHandler) Handle(cmd ToggleActiveCommand) error {
	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return fmt.Errorf("product not found: %w", err)
	}
	product.IsActive = cmd.Active
	if err := h.repo.Update(product); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}
