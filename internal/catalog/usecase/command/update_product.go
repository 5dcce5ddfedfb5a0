package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/catalog/domain"
)

// UpdateProductCommand represents the command to update an existing product
type UpdateProductCommand struct {
	ID            int
	Name          string
	Description   string
	Category      string
	Price         float64
	MinStockLevel int
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	product.Name = cmd.Name
	product.Description = cmd.Description
	product.Category = cmd.Category
	product.Price = cmd.Price
	product.MinStockLevel = cmd.MinStockLevel

	if !product.IsValid() {
		return nil, fmt.Errorf("invalid product data")
	}
	if !nameUnique(h.repo, cmd.Name, cmd.ID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateName, cmd.Name)
	}

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}
