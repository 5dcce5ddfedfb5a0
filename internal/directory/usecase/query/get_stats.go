package query

import (
	"fmt"

	"github.com/tradepoint/oms/internal/directory/domain"
)

// GetStatsQuery represents the query to get customer statistics
type GetStatsQuery struct{}

// DirectoryStats represents customer statistics
type DirectoryStats struct {
	TotalCustomers    int            `json:"total_customers"`
	ActiveCustomers   int            `json:"active_customers"`
	InactiveCustomers int            `json:"inactive_customers"`
	CustomersByCity   map[string]int `json:"customers_by_city"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	repo domain.CustomerRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.CustomerRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(query GetStatsQuery) (*DirectoryStats, error) {
	customers, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	stats := &DirectoryStats{
		TotalCustomers:  len(customers),
		CustomersByCity: make(map[string]int),
	}
	for _, c := range customers {
		if c.IsActive {
			stats.ActiveCustomers++
		}
		if c.City != "" {
			stats.CustomersByCity[c.City]++
		}
	}
	stats.InactiveCustomers = stats.TotalCustomers - stats.ActiveCustomers
	return stats, nil
}
