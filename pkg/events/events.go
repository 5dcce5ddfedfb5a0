package events

import "time"

// OrderCreatedEvent is published when a new order is opened for a customer.
type OrderCreatedEvent struct {
	OrderID    int       `json:"order_id"`
	CustomerID int       `json:"customer_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// OrderStatusChangedEvent is published after a successful status transition.
type OrderStatusChangedEvent struct {
	OrderID     int       `json:"order_id"`
	FromStatus  string    `json:"from_status"`
	ToStatus    string    `json:"to_status"`
	FinalAmount float64   `json:"final_amount"`
	Timestamp   time.Time `json:"timestamp"`
}

// OrderDeletedEvent is published when an order is removed by the
// administrative override.
type OrderDeletedEvent struct {
	OrderID   int       `json:"order_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// StockReducedEvent is published when catalog stock is taken for an order.
type StockReducedEvent struct {
	ProductID int       `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Remaining int       `json:"remaining"`
	Timestamp time.Time `json:"timestamp"`
}

// LowStockEvent is published when a product drops to its minimum stock level.
type LowStockEvent struct {
	ProductID     int       `json:"product_id"`
	ProductName   string    `json:"product_name"`
	Stock         int       `json:"stock"`
	MinStockLevel int       `json:"min_stock_level"`
	Timestamp     time.Time `json:"timestamp"`
}

// Topics
const (
	TopicOrderCreated       = "order.created"
	TopicOrderStatusChanged = "order.status_changed"
	TopicOrderDeleted       = "order.deleted"
	TopicStockReduced       = "stock.reduced"
	TopicLowStock           = "stock.low"
)
