package query

import (
	"fmt"
	"strings"

	"github.com/tradepoint/oms/internal/catalog/domain"
)

// ListProductsQuery represents the query to list products. All filters are
// optional and combine with AND; category and name matching is
// case-insensitive.
type ListProductsQuery struct {
	Category     string
	NameContains string
	MinPrice     float64
	MaxPrice     float64 // 0 means unbounded
	ActiveOnly   bool
	InStockOnly  bool
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(query ListProductsQuery) ([]domain.Product, error) {
	products, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	category := strings.ToLower(query.Category)
	name := strings.ToLower(query.NameContains)

	results := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if query.ActiveOnly && !p.IsActive {
			continue
		}
		if query.InStockOnly && p.Stock == 0 {
			continue
		}
		if category != "" && strings.ToLower(p.Category) != category {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(p.Name), name) {
			continue
		}
		if p.Price < query.MinPrice {
			continue
		}
		if query.MaxPrice > 0 && p.Price > query.MaxPrice {
			continue
		}
		results = append(results, p)
	}
	return results, nil
}
