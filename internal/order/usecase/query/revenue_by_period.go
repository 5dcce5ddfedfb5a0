package query

import (
	"fmt"
	"time"

	"github.com/tradepoint/oms/internal/order/domain"
)

// RevenueByPeriodQuery represents the query for revenue within a time range.
// The range is inclusive of From and exclusive of To.
type RevenueByPeriodQuery struct {
	From time.Time
	To   time.Time
}

// RevenueReport is the revenue summary for one period.
type RevenueReport struct {
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	OrderCount int       `json:"order_count"`
	Revenue    float64   `json:"revenue"`
	ItemsSold  int       `json:"items_sold"`
}

// RevenueByPeriodHandler handles revenue by period query
type RevenueByPeriodHandler struct {
	repo domain.OrderRepository
}

// NewRevenueByPeriodHandler creates a new revenue by period handler
func NewRevenueByPeriodHandler(repo domain.OrderRepository) *RevenueByPeriodHandler {
	return &RevenueByPeriodHandler{repo: repo}
}

// Handle executes the revenue by period query. Cancelled orders are excluded.
func (h *RevenueByPeriodHandler) Handle(query RevenueByPeriodQuery) (*RevenueReport, error) {
	orders, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	report := &RevenueReport{From: query.From, To: query.To}
	for _, order := range orders {
		if order.Status == domain.StatusCancelled {
			continue
		}
		if order.OrderDate.Before(query.From) || !order.OrderDate.Before(query.To) {
			continue
		}
		report.OrderCount++
		report.Revenue += order.FinalAmount
		report.ItemsSold += order.ItemCount()
	}
	return report, nil
}
