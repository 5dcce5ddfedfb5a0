package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/catalog/domain"
)

// UpdateStockCommand represents the command to set a product's stock level
type UpdateStockCommand struct {
	ProductID int
	Stock     int
}

// UpdateStockHandler handles stock update command
type UpdateStockHandler struct {
	repo domain.ProductRepository
}

// NewUpdateStockHandler creates a new update stock handler
func NewUpdateStockHandler(repo domain.ProductRepository) *UpdateStockHandler {
	return &UpdateStockHandler{repo: repo}
}

// Handle executes the update stock command
func (h *UpdateStockHandler) Handle(cmd UpdateStockCommand) error {
	if cmd.Stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}

	product, err := h.repo.FindByID(cmd.ProductID)
	if err != nil {
		return fmt.Errorf("product not found: %w", err)
	}

	product.Stock = cmd.Stock
	if err := h.repo.Update(product); err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}
	return nil
}
