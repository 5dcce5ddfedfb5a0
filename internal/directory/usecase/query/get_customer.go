package query

import (
	"fmt"
	"strings"

	"github.com/tradepoint/oms/internal/directory/domain"
)

// GetCustomerQuery represents the query to get a customer by ID or email.
// ID takes precedence when both are set.
type GetCustomerQuery struct {
	ID    int
	Email string
}

// GetCustomerHandler handles get customer query
type GetCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewGetCustomerHandler creates a new get customer handler
func NewGetCustomerHandler(repo domain.CustomerRepository) *GetCustomerHandler {
	return &GetCustomerHandler{repo: repo}
}

// Handle executes the get customer query
func (h *GetCustomerHandler) Handle(query GetCustomerQuery) (*domain.Customer, error) {
	if query.ID > 0 {
		customer, err := h.repo.FindByID(query.ID)
		if err != nil {
			return nil, fmt.Errorf("customer not found: %w", err)
		}
		return customer, nil
	}

	if query.Email != "" {
		customers, err := h.repo.FindAll()
		if err != nil {
			return nil, fmt.Errorf("failed to list customers: %w", err)
		}
		lower := strings.ToLower(query.Email)
		for i := range customers {
			if strings.ToLower(customers[i].Email) == lower {
				c := customers[i]
				return &c, nil
			}
		}
		return nil, fmt.Errorf("customer not found: %w", domain.ErrCustomerNotFound)
	}

	return nil, fmt.Errorf("invalid customer query")
}
