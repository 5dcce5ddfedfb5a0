//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	"github.com/tradepoint/oms/pkg/events"
	"github.com/tradepoint/oms/pkg/textstore"
)

// InitializeService initializes the catalog service with all dependencies
func InitializeService(store *textstore.Store, bus *events.Bus) (*Service, error) {
	wire.Build(ServiceSet)
	return nil, nil
}
