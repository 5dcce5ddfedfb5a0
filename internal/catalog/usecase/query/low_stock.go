package query

import (
	"fmt"

	"github.com/tradepoint/oms/internal/catalog/domain"
)

// LowStockQuery represents the query for products needing replenishment.
// With OutOfStockOnly set, only products at zero stock are returned.
type LowStockQuery struct {
	OutOfStockOnly bool
}

// LowStockHandler handles low stock query
type LowStockHandler struct {
	repo domain.ProductRepository
}

// NewLowStockHandler creates a new low stock handler
func NewLowStockHandler(repo domain.ProductRepository) *LowStockHandler {
	return &LowStockHandler{repo: repo}
}

// Handle executes the low stock query. Inactive products are excluded.
func (h *LowStockHandler) Handle(query LowStockQuery) ([]domain.Product, error) {
	products, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	var results []domain.Product
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		if query.OutOfStockOnly {
			if p.Stock == 0 {
				results = append(results, p)
			}
			continue
		}
		if p.IsLowStock() {
			results = append(results, p)
		}
	}
	return results, nil
}
