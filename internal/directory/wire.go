//go:build wireinject
// +build wireinject

package directory

import (
	"github.com/google/wire"

	"github.com/tradepoint/oms/pkg/textstore"
)

// InitializeService initializes the directory service with all dependencies
func InitializeService(store *textstore.Store) (*Service, error) {
	wire.Build(ServiceSet)
	return nil, nil
}
