package gateway

import (
	"fmt"

	catalogdomain "github.com/tradepoint/oms/internal/catalog/domain"
	"github.com/tradepoint/oms/internal/order/domain"
	"github.com/tradepoint/oms/pkg/events"
)

// CatalogGateway adapts the product repository to the order engine's
// narrow catalog contract.
type CatalogGateway struct {
	repo catalogdomain.ProductRepository
	bus  *events.Bus
}

func NewCatalogGateway(repo catalogdomain.ProductRepository, bus *events.Bus) *CatalogGateway {
	return &CatalogGateway{repo: repo, bus: bus}
}

func (g *CatalogGateway) Product(id int) (domain.ProductSnapshot, error) {
	p, err := g.repo.FindByID(id)
	if err != nil {
		return domain.ProductSnapshot{}, err
	}
	return domain.ProductSnapshot{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		IsActive: p.IsActive,
	}, nil
}

func (g *CatalogGateway) IsAvailable(id, quantity int) bool {
	p, err := g.repo.FindByID(id)
	return err == nil && p.InStock(quantity)
}

func (g *CatalogGateway) ReduceStock(id, quantity int) error {
	p, err := g.repo.FindByID(id)
	if err != nil {
		return err
	}
	if !p.ReduceStock(quantity) {
		return fmt.Errorf("%w: product %d", catalogdomain.ErrInsufficientStock, id)
	}
	if err := g.repo.Update(p); err != nil {
		return err
	}

	g.bus.PublishStockReduced(events.StockReducedEvent{
		ProductID: p.ID,
		Quantity:  quantity,
		Remaining: p.Stock,
	})
	if p.IsLowStock() {
		g.bus.PublishLowStock(events.LowStockEvent{
			ProductID:     p.ID,
			ProductName:   p.Name,
			Stock:         p.Stock,
			MinStockLevel: p.MinStockLevel,
		})
	}
	return nil
}

func (g *CatalogGateway) RestoreStock(id, quantity int) error {
	p, err := g.repo.FindByID(id)
	if err != nil {
		return err
	}
	p.AddStock(quantity)
	return g.repo.Update(p)
}
