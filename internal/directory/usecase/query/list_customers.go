package query

import (
	"fmt"
	"strings"

	"github.com/tradepoint/oms/internal/directory/domain"
)

// ListCustomersQuery represents the query to list customers. Filters are
// optional; city matching is exact, name matching is a substring, both
// case-insensitive.
type ListCustomersQuery struct {
	NameContains string
	City         string
	ActiveOnly   bool
}

// ListCustomersHandler handles list customers query
type ListCustomersHandler struct {
	repo domain.CustomerRepository
}

// NewListCustomersHandler creates a new list customers handler
func NewListCustomersHandler(repo domain.CustomerRepository) *ListCustomersHandler {
	return &ListCustomersHandler{repo: repo}
}

// Handle executes the list customers query
func (h *ListCustomersHandler) Handle(query ListCustomersQuery) ([]domain.Customer, error) {
	customers, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	name := strings.ToLower(query.NameContains)
	city := strings.ToLower(query.City)

	results := make([]domain.Customer, 0, len(customers))
	for _, c := range customers {
		if query.ActiveOnly && !c.IsActive {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(c.Name), name) {
			continue
		}
		if city != "" && strings.ToLower(c.City) != city {
			continue
		}
		results = append(results, c)
	}
	return results, nil
}
