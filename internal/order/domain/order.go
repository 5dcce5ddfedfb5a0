package domain

import (
	"errors"
	"time"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrItemNotFound      = errors.New("order item not found")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrOrderNotValid     = errors.New("order is not valid")
	ErrOrderNotEditable  = errors.New("order items can only be changed while pending")
	ErrNotAllowed        = errors.New("operation not permitted")
)

// DateTimeLayout is the timestamp format used in serialized records.
const DateTimeLayout = "2006-01-02 15:04:05"

// OrderItem is one product line within an order. ProductName and UnitPrice
// are snapshots captured when the item is added and never re-synced with
// the catalog.
type OrderItem struct {
	ProductID   int     `json:"product_id" csv:"-"`
	ProductName string  `json:"product_name" csv:"-"`
	Quantity    int     `json:"quantity" csv:"-"`
	UnitPrice   float64 `json:"unit_price" csv:"-"`
	TotalPrice  float64 `json:"total_price" csv:"-"`
}

// NewOrderItem builds a line with its total derived from quantity and price.
func NewOrderItem(productID int, productName string, quantity int, unitPrice float64) OrderItem {
	return OrderItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  float64(quantity) * unitPrice,
	}
}

// Order is the aggregate of line items, monetary totals and lifecycle
// status for one customer purchase. CustomerName and ShippingAddress are
// snapshots captured at creation.
type Order struct {
	ID              int         `json:"id"`
	CustomerID      int         `json:"customer_id"`
	CustomerName    string      `json:"customer_name"`
	Items           []OrderItem `json:"items"`
	Status          Status      `json:"status"`
	OrderDate       time.Time   `json:"order_date"`
	ShippingAddress string      `json:"shipping_address"`
	TotalAmount     float64     `json:"total_amount"`
	DiscountAmount  float64     `json:"discount_amount"`
	FinalAmount     float64     `json:"final_amount"`
	Notes           string      `json:"notes"`
}

// NewOrder opens an empty pending order for a customer.
func NewOrder(id, customerID int, customerName string) *Order {
	return &Order{
		ID:           id,
		CustomerID:   customerID,
		CustomerName: customerName,
		Status:       StatusPending,
		OrderDate:    time.Now(),
	}
}

// AddItem appends a line, or merges into the existing line for the same
// product by summing quantities. Totals are recomputed either way. Stock is
// the caller's concern, not the order's.
func (o *Order) AddItem(item OrderItem) {
	for i := range o.Items {
		if o.Items[i].ProductID == item.ProductID {
			o.Items[i].Quantity += item.Quantity
			o.Items[i].TotalPrice = float64(o.Items[i].Quantity) * o.Items[i].UnitPrice
			o.recalculate()
			return
		}
	}
	o.Items = append(o.Items, item)
	o.recalculate()
}

// RemoveItem drops the line for the product. It returns false, changing
// nothing, when no such line exists.
func (o *Order) RemoveItem(productID int) bool {
	for i := range o.Items {
		if o.Items[i].ProductID == productID {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			o.recalculate()
			return true
		}
	}
	return false
}

// UpdateItemQuantity sets a line's quantity. A quantity of zero or less
// removes the line. Returns false when no such line exists.
func (o *Order) UpdateItemQuantity(productID, quantity int) bool {
	if quantity <= 0 {
		return o.RemoveItem(productID)
	}
	for i := range o.Items {
		if o.Items[i].ProductID == productID {
			o.Items[i].Quantity = quantity
			o.Items[i].TotalPrice = float64(quantity) * o.Items[i].UnitPrice
			o.recalculate()
			return true
		}
	}
	return false
}

// ClearItems empties the order and zeroes the totals.
func (o *Order) ClearItems() {
	o.Items = nil
	o.recalculate()
}

// Item returns the line for the product, if present.
func (o *Order) Item(productID int) (OrderItem, bool) {
	for i := range o.Items {
		if o.Items[i].ProductID == productID {
			return o.Items[i], true
		}
	}
	return OrderItem{}, false
}

// recalculate rederives both totals from scratch. Amounts are never
// adjusted incrementally.
func (o *Order) recalculate() {
	o.calculateTotalAmount()
	o.calculateFinalAmount()
}

func (o *Order) calculateTotalAmount() {
	var total float64
	for i := range o.Items {
		total += o.Items[i].TotalPrice
	}
	o.TotalAmount = total
}

func (o *Order) calculateFinalAmount() {
	o.FinalAmount = o.TotalAmount - o.DiscountAmount
	if o.FinalAmount < 0 {
		o.FinalAmount = 0
	}
}

// ApplyDiscount sets the discount to a percentage of the current total.
// Percentages outside [0, 100] are silently ignored.
func (o *Order) ApplyDiscount(percent float64) {
	if percent < 0 || percent > 100 {
		return
	}
	o.DiscountAmount = o.TotalAmount * (percent / 100)
	o.calculateFinalAmount()
}

// SetFixedDiscount sets an absolute discount amount. Negative amounts are
// silently ignored.
func (o *Order) SetFixedDiscount(amount float64) {
	if amount < 0 {
		return
	}
	o.DiscountAmount = amount
	o.calculateFinalAmount()
}

// CanChangeStatusTo is a pure predicate over the state machine.
func (o *Order) CanChangeStatusTo(next Status) bool {
	return o.Status.CanTransitionTo(next)
}

// UpdateStatus applies the transition when the state machine allows it and
// reports whether the status changed.
func (o *Order) UpdateStatus(next Status) bool {
	if !o.CanChangeStatusTo(next) {
		return false
	}
	o.Status = next
	return true
}

// IsValid reports whether the order may progress through the lifecycle. An
// order with no items is never valid.
func (o *Order) IsValid() bool {
	return o.ID > 0 &&
		o.CustomerID > 0 &&
		o.CustomerName != "" &&
		len(o.Items) > 0 &&
		o.FinalAmount >= 0
}

// IsEmpty reports whether the order has no line items.
func (o *Order) IsEmpty() bool {
	return len(o.Items) == 0
}

// ItemCount returns the total quantity across all lines, not the line
// count.
func (o *Order) ItemCount() int {
	count := 0
	for i := range o.Items {
		count += o.Items[i].Quantity
	}
	return count
}
