package command

import (
	"fmt"
	"strings"

	"github.com/tradepoint/oms/internal/catalog/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Name          string
	Description   string
	Category      string
	Price         float64
	Stock         int
	MinStockLevel int
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	product := &domain.Product{
		Name:          cmd.Name,
		Description:   cmd.Description,
		Category:      cmd.Category,
		Price:         cmd.Price,
		Stock:         cmd.Stock,
		MinStockLevel: cmd.MinStockLevel,
		IsActive:      true,
	}

	if !product.IsValid() {
		return nil, fmt.Errorf("invalid product data")
	}
	if !nameUnique(h.repo, cmd.Name, 0) {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateName, cmd.Name)
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// nameUnique reports whether no other product carries the name,
// case-insensitively, excluding the product with excludeID.
func nameUnique(repo domain.ProductRepository, name string, excludeID int) bool {
	products, err := repo.FindAll()
	if err != nil {
		return false
	}
	lower := strings.ToLower(name)
	for i := range products {
		if products[i].ID != excludeID && strings.ToLower(products[i].Name) == lower {
			return false
		}
	}
	return true
}
