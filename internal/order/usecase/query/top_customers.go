package query

import (
	"fmt"
	"sort"

	"github.com/tradepoint/oms/internal/order/domain"
)

// TopCustomersQuery represents the query for the customers with the most
// orders. Limit caps the result; zero or less means all.
type TopCustomersQuery struct {
	Limit int
}

// CustomerRank is one row of the top customers report.
type CustomerRank struct {
	CustomerID   int     `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	OrderCount   int     `json:"order_count"`
	TotalSpent   float64 `json:"total_spent"`
}

// TopCustomersHandler handles top customers query
type TopCustomersHandler struct {
	repo domain.OrderRepository
}

// NewTopCustomersHandler creates a new top customers handler
func NewTopCustomersHandler(repo domain.OrderRepository) *TopCustomersHandler {
	return &TopCustomersHandler{repo: repo}
}

// Handle executes the top customers query. Cancelled orders do not count.
// Ties break toward the lower customer ID so the ordering is stable.
func (h *TopCustomersHandler) Handle(query TopCustomersQuery) ([]CustomerRank, error) {
	orders, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	byCustomer := make(map[int]*CustomerRank)
	for _, order := range orders {
		if order.Status == domain.StatusCancelled {
			continue
		}
		rank, ok := byCustomer[order.CustomerID]
		if !ok {
			rank = &CustomerRank{CustomerID: order.CustomerID, CustomerName: order.CustomerName}
			byCustomer[order.CustomerID] = rank
		}
		rank.OrderCount++
		rank.TotalSpent += order.FinalAmount
	}

	ranks := make([]CustomerRank, 0, len(byCustomer))
	for _, rank := range byCustomer {
		ranks = append(ranks, *rank)
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].OrderCount != ranks[j].OrderCount {
			return ranks[i].OrderCount > ranks[j].OrderCount
		}
		return ranks[i].CustomerID < ranks[j].CustomerID
	})

	if query.Limit > 0 && len(ranks) > query.Limit {
		ranks = ranks[:query.Limit]
	}
	return ranks, nil
}
