package gateway

import (
	directorydomain "github.com/tradepoint/oms/internal/directory/domain"
	"github.com/tradepoint/oms/internal/order/domain"
)

// DirectoryGateway adapts the customer repository to the order engine's
// narrow directory contract.
type DirectoryGateway struct {
	repo directorydomain.CustomerRepository
}

func NewDirectoryGateway(repo directorydomain.CustomerRepository) *DirectoryGateway {
	return &DirectoryGateway{repo: repo}
}

func (g *DirectoryGateway) Customer(id int) (domain.CustomerSnapshot, error) {
	c, err := g.repo.FindByID(id)
	if err != nil {
		return domain.CustomerSnapshot{}, err
	}
	return domain.CustomerSnapshot{
		ID:              c.ID,
		Name:            c.Name,
		ShippingAddress: c.ShippingAddress(),
		IsActive:        c.IsActive,
	}, nil
}
