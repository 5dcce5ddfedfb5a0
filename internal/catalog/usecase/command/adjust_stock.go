package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/catalog/domain"
	"github.com/tradepoint/oms/pkg/events"
)

// AdjustStockCommand moves stock by a signed delta: positive receives stock,
// negative takes it out and fails when not enough is on hand.
type AdjustStockCommand struct {
	ProductID int
	Delta     int
}

// AdjustStockHandler handles stock adjustment command
type AdjustStockHandler struct {
	repo domain.ProductRepository
	bus  *events.Bus
}

// NewAdjustStockHandler creates a new adjust stock handler
func NewAdjustStockHandler(repo domain.ProductRepository, bus *events.Bus) *AdjustStockHandler {
	return &AdjustStockHandler{repo: repo, bus: bus}
}

// Handle executes the adjust stock command
func (h *AdjustStockHandler) Handle(cmd AdjustStockCommand) error {
	if cmd.Delta == 0 {
		return fmt.Errorf("delta must be non-zero")
	}

	product, err := h.repo.FindByID(cmd.ProductID)
	if err != nil {
		return fmt.Errorf("product not found: %w", err)
	}

	if cmd.Delta > 0 {
		product.AddStock(cmd.Delta)
	} else if !product.ReduceStock(-cmd.Delta) {
		return fmt.Errorf("%w: product %d", domain.ErrInsufficientStock, cmd.ProductID)
	}

	if err := h.repo.Update(product); err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}

	if cmd.Delta < 0 {
		h.bus.PublishStockReduced(events.StockReducedEvent{
			ProductID: product.ID,
			Quantity:  -cmd.Delta,
			Remaining: product.Stock,
		})
		if product.IsLowStock() {
			h.bus.PublishLowStock(events.LowStockEvent{
				ProductID:     product.ID,
				ProductName:   product.Name,
				Stock:         product.Stock,
				MinStockLevel: product.MinStockLevel,
			})
		}
	}
	return nil
}
