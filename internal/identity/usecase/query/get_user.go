package query

import (
	"fmt"

	"github.com/tradepoint/oms/internal/identity/domain"
)

// GetUserQuery represents the query to get a user by ID or username.
// ID takes precedence when both are set.
type GetUserQuery struct {
	ID       int
	Username string
}

// GetUserHandler handles get user query
type GetUserHandler struct {
	repo domain.UserRepository
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query
func (h *GetUserHandler) Handle(query GetUserQuery) (*domain.User, error) {
	if query.ID > 0 {
		user, err := h.repo.FindByID(query.ID)
		if err != nil {
			return nil, fmt.Errorf("user not found: %w", err)
		}
		return user, nil
	}
	if query.Username != "" {
		user, err := h.repo.FindByUsername(query.Username)
		if err != nil {
			return nil, fmt.Errorf("user not found: %w", err)
		}
		return user, nil
	}
	return nil, fmt.Errorf("invalid user query")
}
