package query

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/tradepoint/oms/internal/order/domain"
)

// SearchOrdersQuery represents a free-text order search. A numeric term
// matches an order ID exactly; any term matches customer name or notes
// case-insensitively.
type SearchOrdersQuery struct {
	Term string
}

// SearchOrdersHandler handles order search query
type SearchOrdersHandler struct {
	repo domain.OrderRepository
}

// NewSearchOrdersHandler creates a new order search handler
func NewSearchOrdersHandler(repo domain.OrderRepository) *SearchOrdersHandler {
	return &SearchOrdersHandler{repo: repo}
}

// Handle executes the order search query
func (h *SearchOrdersHandler) Handle(query SearchOrdersQuery) ([]domain.Order, error) {
	orders, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	term := strings.ToLower(strings.TrimSpace(query.Term))
	if term == "" {
		return orders, nil
	}
	id := cast.ToInt(term)

	matched := make([]domain.Order, 0)
	for _, order := range orders {
		if id != 0 && order.ID == id {
			matched = append(matched, order)
			continue
		}
		if strings.Contains(strings.ToLower(order.CustomerName), term) ||
			strings.Contains(strings.ToLower(order.Notes), term) {
			matched = append(matched, order)
		}
	}
	return matched, nil
}
