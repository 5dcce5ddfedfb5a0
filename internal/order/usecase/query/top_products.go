package query

import (
	"fmt"
	"sort"

	"github.com/tradepoint/oms/internal/order/domain"
)

// TopProductsQuery represents the query for the best selling products by
// quantity. Limit caps the result; zero or less means all.
type TopProductsQuery struct {
	Limit int
}

// ProductRank is one row of the top products report.
type ProductRank struct {
	ProductID    int     `json:"product_id"`
	ProductName  string  `json:"product_name"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// TopProductsHandler handles top products query
type TopProductsHandler struct {
	repo domain.OrderRepository
}

// NewTopProductsHandler creates a new top products handler
func NewTopProductsHandler(repo domain.OrderRepository) *TopProductsHandler {
	return &TopProductsHandler{repo: repo}
}

// Handle executes the top products query. Cancelled orders do not count.
// Ties break toward the lower product ID so the ordering is stable.
func (h *TopProductsHandler) Handle(query TopProductsQuery) ([]ProductRank, error) {
	orders, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	byProduct := make(map[int]*ProductRank)
	for _, order := range orders {
		if order.Status == domain.StatusCancelled {
			continue
		}
		for i := range order.Items {
			item := &order.Items[i]
			rank, ok := byProduct[item.ProductID]
			if !ok {
				rank = &ProductRank{ProductID: item.ProductID, ProductName: item.ProductName}
				byProduct[item.ProductID] = rank
			}
			rank.QuantitySold += item.Quantity
			rank.Revenue += item.TotalPrice
		}
	}

	ranks := make([]ProductRank, 0, len(byProduct))
	for _, rank := range byProduct {
		ranks = append(ranks, *rank)
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].QuantitySold != ranks[j].QuantitySold {
			return ranks[i].QuantitySold > ranks[j].QuantitySold
		}
		return ranks[i].ProductID < ranks[j].ProductID
	})

	if query.Limit > 0 && len(ranks) > query.Limit {
		ranks = ranks[:query.Limit]
	}
	return ranks, nil
}
