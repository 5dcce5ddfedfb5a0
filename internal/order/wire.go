//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"

	catalogdomain "github.com/tradepoint/oms/internal/catalog/domain"
	directorydomain "github.com/tradepoint/oms/internal/directory/domain"
	"github.com/tradepoint/oms/internal/order/domain"
	"github.com/tradepoint/oms/pkg/events"
	"github.com/tradepoint/oms/pkg/textstore"
)

// InitializeService initializes the order service with all dependencies
func InitializeService(
	store *textstore.Store,
	bus *events.Bus,
	products catalogdomain.ProductRepository,
	customers directorydomain.CustomerRepository,
	auth domain.DeleteAuthorizer,
) (*Service, error) {
	wire.Build(ServiceSet)
	return nil, nil
}
