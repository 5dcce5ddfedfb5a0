package query

import (
	"fmt"

	"github.com/tradepoint/oms/internal/identity/domain"
)

// GetStatsQuery represents the query to get user statistics
type GetStatsQuery struct{}

// UserStats represents user statistics
type UserStats struct {
	TotalUsers  int                 `json:"total_users"`
	ActiveUsers int                 `json:"active_users"`
	ByRole      map[domain.Role]int `json:"by_role"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	repo domain.UserRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.UserRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(query GetStatsQuery) (*UserStats, error) {
	users, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	stats := &UserStats{
		TotalUsers: len(users),
		ByRole:     make(map[domain.Role]int),
	}
	for _, u := range users {
		if u.IsActive {
			stats.ActiveUsers++
		}
		stats.ByRole[u.Role]++
	}
	return stats, nil
}
