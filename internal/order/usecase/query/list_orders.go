package query

import (
	"fmt"

	"github.com/tradepoint/oms/internal/order/domain"
)

// ListOrdersQuery represents the query to list orders, optionally filtered
// by customer and status. Zero values mean no filter.
type ListOrdersQuery struct {
	CustomerID int
	Status     domain.Status
}

// ListOrdersHandler handles list orders query
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(query ListOrdersQuery) ([]domain.Order, error) {
	orders, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	filtered := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if query.CustomerID != 0 && order.CustomerID != query.CustomerID {
			continue
		}
		if query.Status != "" && order.Status != query.Status {
			continue
		}
		filtered = append(filtered, order)
	}
	return filtered, nil
}
