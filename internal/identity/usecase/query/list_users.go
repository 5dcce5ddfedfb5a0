package query

import (
	"fmt"

	"github.com/tradepoint/oms/internal/identity/domain"
)

// ListUsersQuery represents the query to list users
type ListUsersQuery struct {
	Role       domain.Role // optional filter
	ActiveOnly bool
}

// ListUsersHandler handles list users query
type ListUsersHandler struct {
	repo domain.UserRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the list users query
func (h *ListUsersHandler) Handle(query ListUsersQuery) ([]domain.User, error) {
	users, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	results := make([]domain.User, 0, len(users))
	for _, u := range users {
		if query.ActiveOnly && !u.IsActive {
			continue
		}
		if query.Role != "" && u.Role != query.Role {
			continue
		}
		results = append(results, u)
	}
	return results, nil
}
