package query

import (
	"fmt"

	"github.com/tradepoint/oms/internal/order/domain"
)

// GetOrderQuery represents the query to get an order by ID
type GetOrderQuery struct {
	OrderID int
}

// GetOrderHandler handles get order query
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(query GetOrderQuery) (*domain.Order, error) {
	order, err := h.repo.FindByID(query.OrderID)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}
	return order, nil
}
