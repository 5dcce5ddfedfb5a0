package query

import (
	"fmt"

	"github.com/tradepoint/oms/internal/order/domain"
)

// CanFulfillQuery represents the query asking whether every line of an
// order is currently on hand in the catalog.
type CanFulfillQuery struct {
	OrderID int
}

// CanFulfillHandler handles fulfillment check query
type CanFulfillHandler struct {
	repo     domain.OrderRepository
	products domain.ProductGateway
}

// NewCanFulfillHandler creates a new fulfillment check handler
func NewCanFulfillHandler(repo domain.OrderRepository, products domain.ProductGateway) *CanFulfillHandler {
	return &CanFulfillHandler{repo: repo, products: products}
}

// Handle executes the fulfillment check. The answer is a point-in-time
// snapshot of catalog stock; it reserves nothing.
func (h *CanFulfillHandler) Handle(query CanFulfillQuery) (bool, error) {
	order, err := h.repo.FindByID(query.OrderID)
	if err != nil {
		return false, fmt.Errorf("order not found: %w", err)
	}
	if order.IsEmpty() {
		return false, nil
	}
	for i := range order.Items {
		item := &order.Items[i]
		if !h.products.IsAvailable(item.ProductID, item.Quantity) {
			return false, nil
		}
	}
	return true, nil
}
