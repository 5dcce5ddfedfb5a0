package catalog

import (
	"github.com/google/wire"

	"github.com/tradepoint/oms/internal/catalog/domain"
	"github.com/tradepoint/oms/internal/catalog/repository"
	"github.com/tradepoint/oms/internal/catalog/usecase/command"
	"github.com/tradepoint/oms/internal/catalog/usecase/query"
	"github.com/tradepoint/oms/pkg/events"
	"github.com/tradepoint/oms/pkg/textstore"
)

// CommandHandlers is a struct that holds all command handlers
type CommandHandlers struct {
	Create       *command.CreateProductHandler
	Update       *command.UpdateProductHandler
	Delete       *command.DeleteProductHandler
	ToggleActive *command.ToggleActiveHandler
	UpdateStock  *command.UpdateStockHandler
	AdjustStock  *command.AdjustStockHandler
	UpdatePrice  *command.UpdatePriceHandler
}

// QueryHandlers is a struct that holds all query handlers
type QueryHandlers struct {
	Get       *query.GetProductHandler
	List      *query.ListProductsHandler
	LowStock  *query.LowStockHandler
	Stats     *query.GetStatsHandler
	ExportCSV *query.ExportCSVHandler
}

// Service bundles the catalog repository and its handlers.
type Service struct {
	Repo     domain.ProductRepository
	Commands *CommandHandlers
	Queries  *QueryHandlers
}

// ProvideProductRepository provides the product repository
func ProvideProductRepository(store *textstore.Store) (domain.ProductRepository, error) {
	return repository.NewFileProductRepository(store)
}

// ProvideCommandHandlers provides all command handlers
func ProvideCommandHandlers(repo domain.ProductRepository, bus *events.Bus) *CommandHandlers {
	return &CommandHandlers{
		Create:       command.NewCreateProductHandler(repo),
		Update:       command.NewUpdateProductHandler(repo),
		Delete:       command.NewDeleteProductHandler(repo),
		ToggleActive: command.NewToggleActiveHandler(repo),
		UpdateStock:  command.NewUpdateStockHandler(repo),
		AdjustStock:  command.NewAdjustStockHandler(repo, bus),
		UpdatePrice:  command.NewUpdatePriceHandler(repo),
	}
}

// ProvideQueryHandlers provides all query handlers
func ProvideQueryHandlers(repo domain.ProductRepository) *QueryHandlers {
	return &QueryHandlers{
		Get:       query.NewGetProductHandler(repo),
		List:      query.NewListProductsHandler(repo),
		LowStock:  query.NewLowStockHandler(repo),
		Stats:     query.NewGetStatsHandler(repo),
		ExportCSV: query.NewExportCSVHandler(repo),
	}
}

// ProvideService provides the assembled catalog service
func ProvideService(repo domain.ProductRepository, commands *CommandHandlers, queries *QueryHandlers) *Service {
	return &Service{Repo: repo, Commands: commands, Queries: queries}
}

// ServiceSet is the wire provider set for the catalog service
var ServiceSet = wire.NewSet(
	ProvideProductRepository,
	ProvideCommandHandlers,
	ProvideQueryHandlers,
	ProvideService,
)
