package query

import (
	"fmt"

	"github.com/tradepoint/oms/internal/catalog/domain"
)

// GetStatsQuery represents the query to get catalog statistics
type GetStatsQuery struct{}

// CatalogStats represents catalog statistics
type CatalogStats struct {
	TotalProducts    int     `json:"total_products"`
	ActiveProducts   int     `json:"active_products"`
	InactiveProducts int     `json:"inactive_products"`
	LowStockProducts int     `json:"low_stock_products"`
	TotalStock       int     `json:"total_stock"`
	StockValue       float64 `json:"stock_value"`
	AveragePrice     float64 `json:"average_price"`
	TotalCategories  int     `json:"total_categories"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	repo domain.ProductRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.ProductRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(query GetStatsQuery) (*CatalogStats, error) {
	products, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	stats := &CatalogStats{TotalProducts: len(products)}
	categories := make(map[string]bool)
	var totalPrice float64

	for _, p := range products {
		if p.IsActive {
			stats.ActiveProducts++
			if p.IsLowStock() {
				stats.LowStockProducts++
			}
		}
		stats.TotalStock += p.Stock
		stats.StockValue += float64(p.Stock) * p.Price
		totalPrice += p.Price
		if p.Category != "" {
			categories[p.Category] = true
		}
	}

	stats.InactiveProducts = stats.TotalProducts - stats.ActiveProducts
	stats.TotalCategories = len(categories)
	if stats.TotalProducts > 0 {
		stats.AveragePrice = totalPrice / float64(stats.TotalProducts)
	}
	return stats, nil
}
