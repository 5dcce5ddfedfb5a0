package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/order/domain"
	"github.com/tradepoint/oms/pkg/events"
)

// DeleteOrderCommand represents the command to delete an order
type DeleteOrderCommand struct {
	OrderID int
}

// DeleteOrderHandler handles order deletion. Deleting requires the
// administrator override, and deleting a confirmed or processing order
// returns its committed stock to the catalog.
type DeleteOrderHandler struct {
	repo     domain.OrderRepository
	products domain.ProductGateway
	auth     domain.DeleteAuthorizer
	bus      *events.Bus
}

// NewDeleteOrderHandler creates a new delete order handler
func NewDeleteOrderHandler(repo domain.OrderRepository, products domain.ProductGateway, auth domain.DeleteAuthorizer, bus *events.Bus) *DeleteOrderHandler {
	return &DeleteOrderHandler{repo: repo, products: products, auth: auth, bus: bus}
}

// Handle executes the delete order command
func (h *DeleteOrderHandler) Handle(cmd DeleteOrderCommand) error {
	if !h.auth.CanDeleteOrders() {
		return fmt.Errorf("%w: deleting orders requires administrator access", domain.ErrNotAllowed)
	}

	order, err := h.repo.FindByID(cmd.OrderID)
	if err != nil {
		return fmt.Errorf("order not found: %w", err)
	}

	if order.Status == domain.StatusConfirmed || order.Status == domain.StatusProcessing {
		for i := range order.Items {
			item := &order.Items[i]
			_ = h.products.RestoreStock(item.ProductID, item.Quantity)
		}
	}

	if err := h.repo.Delete(cmd.OrderID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	h.bus.PublishOrderDeleted(events.OrderDeletedEvent{
		OrderID: order.ID,
		Status:  string(order.Status),
	})
	return nil
}
