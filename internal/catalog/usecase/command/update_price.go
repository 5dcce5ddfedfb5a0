package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/catalog/domain"
)

// UpdatePriceCommand represents the command to change a product's price
type UpdatePriceCommand struct {
	ProductID int
	Price     float64
}

// UpdatePriceHandler handles price update command
type UpdatePriceHandler struct {
	repo domain.ProductRepository
}

// NewUpdatePriceHandler creates a new update price handler
func NewUpdatePriceHandler(repo domain.ProductRepository) *UpdatePriceHandler {
	return &UpdatePriceHandler{repo: repo}
}

// Handle executes the update price command. Existing order lines keep the
// unit price they captured when the item was added.
func (h *UpdatePriceHandler) Handle(cmd UpdatePriceCommand) error {
	if cmd.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}

	product, err := h.repo.FindByID(cmd.ProductID)
	if err != nil {
		return fmt.Errorf("product not found: %w", err)
	}

	product.Price = cmd.Price
	if err := h.repo.Update(product); err != nil {
		return fmt.Errorf("failed to update price: %w", err)
	}
	return nil
}
