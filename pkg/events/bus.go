package events

import (
	"time"

	evbus "github.com/asaskevich/EventBus"

	"github.com/tradepoint/oms/pkg/logger"
)

// Bus wraps the in-process event bus. Handlers run synchronously on the
// publishing goroutine, which keeps the single-threaded execution model.
type Bus struct {
	bus evbus.Bus
}

// NewBus creates a new event bus.
func NewBus() *Bus {
	return &Bus{bus: evbus.New()}
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic string, handler interface{}) error {
	return b.bus.Subscribe(topic, handler)
}

// PublishOrderCreated publishes an order created event.
func (b *Bus) PublishOrderCreated(event OrderCreatedEvent) {
	event.Timestamp = time.Now()
	b.bus.Publish(TopicOrderCreated, event)
}

// PublishOrderStatusChanged publishes an order status transition event.
func (b *Bus) PublishOrderStatusChanged(event OrderStatusChangedEvent) {
	event.Timestamp = time.Now()
	b.bus.Publish(TopicOrderStatusChanged, event)
}

// PublishOrderDeleted publishes an order deleted event.
func (b *Bus) PublishOrderDeleted(event OrderDeletedEvent) {
	event.Timestamp = time.Now()
	b.bus.Publish(TopicOrderDeleted, event)
}

// PublishStockReduced publishes a stock reduction event.
func (b *Bus) PublishStockReduced(event StockReducedEvent) {
	event.Timestamp = time.Now()
	b.bus.Publish(TopicStockReduced, event)
}

// PublishLowStock publishes a low stock warning event.
func (b *Bus) PublishLowStock(event LowStockEvent) {
	event.Timestamp = time.Now()
	b.bus.Publish(TopicLowStock, event)
}

// SubscribeAuditLog attaches a subscriber that writes every order lifecycle
// event to the structured log.
func (b *Bus) SubscribeAuditLog() error {
	if err := b.Subscribe(TopicOrderCreated, func(e OrderCreatedEvent) {
		logger.Info().
			Int("order_id", e.OrderID).
			Int("customer_id", e.CustomerID).
			Msg("Order created")
	}); err != nil {
		return err
	}
	if err := b.Subscribe(TopicOrderStatusChanged, func(e OrderStatusChangedEvent) {
		logger.Info().
			Int("order_id", e.OrderID).
			Str("from", e.FromStatus).
			Str("to", e.ToStatus).
			Float64("final_amount", e.FinalAmount).
			Msg("Order status changed")
	}); err != nil {
		return err
	}
	if err := b.Subscribe(TopicOrderDeleted, func(e OrderDeletedEvent) {
		logger.Warn().
			Int("order_id", e.OrderID).
			Str("status", e.Status).
			Msg("Order deleted by administrative override")
	}); err != nil {
		return err
	}
	if err := b.Subscribe(TopicStockReduced, func(e StockReducedEvent) {
		logger.Debug().
			Int("product_id", e.ProductID).
			Int("quantity", e.Quantity).
			Int("remaining", e.Remaining).
			Msg("Stock reduced")
	}); err != nil {
		return err
	}
	return b.Subscribe(TopicLowStock, func(e LowStockEvent) {
		logger.Warn().
			Int("product_id", e.ProductID).
			Str("product_name", e.ProductName).
			Int("stock", e.Stock).
			Int("min_stock_level", e.MinStockLevel).
			Msg("Product is at or below minimum stock level")
	})
}
