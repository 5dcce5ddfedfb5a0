package query

import (
	"fmt"

	"github.com/tradepoint/oms/internal/order/domain"
)

// GetStatsQuery represents the query to get order statistics
type GetStatsQuery struct{}

// OrderStats represents order book statistics. Revenue counts every order
// that was not cancelled.
type OrderStats struct {
	TotalOrders       int            `json:"total_orders"`
	StatusCounts      map[string]int `json:"status_counts"`
	TotalRevenue      float64        `json:"total_revenue"`
	AverageOrderValue float64        `json:"average_order_value"`
	TotalItemsSold    int            `json:"total_items_sold"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	repo domain.OrderRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.OrderRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(query GetStatsQuery) (*OrderStats, error) {
	orders, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	stats := &OrderStats{
		TotalOrders:  len(orders),
		StatusCounts: make(map[string]int),
	}
	counted := 0
	for _, order := range orders {
		stats.StatusCounts[string(order.Status)]++
		if order.Status == domain.StatusCancelled {
			continue
		}
		stats.TotalRevenue += order.FinalAmount
		stats.TotalItemsSold += order.ItemCount()
		counted++
	}
	if counted > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / float64(counted)
	}
	return stats, nil
}
