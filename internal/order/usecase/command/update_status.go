package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/order/domain"
	"github.com/tradepoint/oms/pkg/events"
)

// UpdateStatusCommand represents the command to move an order to a new status
type UpdateStatusCommand struct {
	OrderID int
	Target  domain.Status
}

// UpdateStatusHandler handles status transition commands. Stock is committed
// when an order is confirmed and released when a confirmed or processing
// order is cancelled. Shipped stock is never returned.
type UpdateStatusHandler struct {
	repo     domain.OrderRepository
	products domain.ProductGateway
	bus      *events.Bus
}

// NewUpdateStatusHandler creates a new update status handler
func NewUpdateStatusHandler(repo domain.OrderRepository, products domain.ProductGateway, bus *events.Bus) *UpdateStatusHandler {
	return &UpdateStatusHandler{repo: repo, products: products, bus: bus}
}

// Handle executes the update status command
func (h *UpdateStatusHandler) Handle(cmd UpdateStatusCommand) (*domain.Order, error) {
	order, err := h.repo.FindByID(cmd.OrderID)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}
	if !order.CanChangeStatusTo(cmd.Target) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, cmd.Target)
	}

	previous := order.Status

	switch cmd.Target {
	case domain.StatusConfirmed:
		if !order.IsValid() {
			return nil, fmt.Errorf("%w: order %d", domain.ErrOrderNotValid, order.ID)
		}
		for i := range order.Items {
			item := &order.Items[i]
			if !h.products.IsAvailable(item.ProductID, item.Quantity) {
				return nil, fmt.Errorf("insufficient stock for product %d (%s)", item.ProductID, item.ProductName)
			}
		}
		for i := range order.Items {
			item := &order.Items[i]
			if err := h.products.ReduceStock(item.ProductID, item.Quantity); err != nil {
				return nil, fmt.Errorf("failed to commit stock for product %d: %w", item.ProductID, err)
			}
		}
	case domain.StatusCancelled:
		if previous == domain.StatusConfirmed || previous == domain.StatusProcessing {
			h.releaseStock(order)
		}
	}

	order.UpdateStatus(cmd.Target)

	if err := h.repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	h.bus.PublishOrderStatusChanged(events.OrderStatusChangedEvent{
		OrderID:     order.ID,
		FromStatus:  string(previous),
		ToStatus:    string(order.Status),
		FinalAmount: order.FinalAmount,
	})
	return order, nil
}

// Confirm moves a pending order to confirmed, committing its stock.
func (h *UpdateStatusHandler) Confirm(orderID int) (*domain.Order, error) {
	return h.Handle(UpdateStatusCommand{OrderID: orderID, Target: domain.StatusConfirmed})
}

// Process moves a confirmed order to processing.
func (h *UpdateStatusHandler) Process(orderID int) (*domain.Order, error) {
	return h.Handle(UpdateStatusCommand{OrderID: orderID, Target: domain.StatusProcessing})
}

// Ship moves a processing order to shipped.
func (h *UpdateStatusHandler) Ship(orderID int) (*domain.Order, error) {
	return h.Handle(UpdateStatusCommand{OrderID: orderID, Target: domain.StatusShipped})
}

// Deliver moves a shipped order to delivered.
func (h *UpdateStatusHandler) Deliver(orderID int) (*domain.Order, error) {
	return h.Handle(UpdateStatusCommand{OrderID: orderID, Target: domain.StatusDelivered})
}

// Cancel cancels an order, releasing committed stock where applicable.
func (h *UpdateStatusHandler) Cancel(orderID int) (*domain.Order, error) {
	return h.Handle(UpdateStatusCommand{OrderID: orderID, Target: domain.StatusCancelled})
}

func (h *UpdateStatusHandler) releaseStock(order *domain.Order) {
	for i := range order.Items {
		item := &order.Items[i]
		// the catalog may have dropped the product since; cancel regardless
		_ = h.products.RestoreStock(item.ProductID, item.Quantity)
	}
}
