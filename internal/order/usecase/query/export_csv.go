package query

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/tradepoint/oms/internal/order/domain"
)

// ExportCSVQuery represents the query to export the order book as CSV
type ExportCSVQuery struct {
	Writer io.Writer
}

// orderRow flattens an order into one CSV record.
type orderRow struct {
	ID              int     `csv:"id"`
	CustomerID      int     `csv:"customer_id"`
	CustomerName    string  `csv:"customer_name"`
	Status          string  `csv:"status"`
	OrderDate       string  `csv:"order_date"`
	ShippingAddress string  `csv:"shipping_address"`
	ItemCount       int     `csv:"item_count"`
	TotalAmount     float64 `csv:"total_amount"`
	DiscountAmount  float64 `csv:"discount_amount"`
	FinalAmount     float64 `csv:"final_amount"`
	Notes           string  `csv:"notes"`
}

// ExportCSVHandler handles CSV export query
type ExportCSVHandler struct {
	repo domain.OrderRepository
}

// NewExportCSVHandler creates a new CSV export handler
func NewExportCSVHandler(repo domain.OrderRepository) *ExportCSVHandler {
	return &ExportCSVHandler{repo: repo}
}

// Handle writes the whole order collection to the writer as CSV, one row
// per order with line items reduced to a count.
func (h *ExportCSVHandler) Handle(query ExportCSVQuery) (int, error) {
	orders, err := h.repo.FindAll()
	if err != nil {
		return 0, fmt.Errorf("failed to get orders: %w", err)
	}

	rows := make([]orderRow, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, orderRow{
			ID:              order.ID,
			CustomerID:      order.CustomerID,
			CustomerName:    order.CustomerName,
			Status:          string(order.Status),
			OrderDate:       order.OrderDate.Format(domain.DateTimeLayout),
			ShippingAddress: order.ShippingAddress,
			ItemCount:       order.ItemCount(),
			TotalAmount:     order.TotalAmount,
			DiscountAmount:  order.DiscountAmount,
			FinalAmount:     order.FinalAmount,
			Notes:           order.Notes,
		})
	}
	if err := gocsv.Marshal(rows, query.Writer); err != nil {
		return 0, fmt.Errorf("failed to export orders: %w", err)
	}
	return len(rows), nil
}
