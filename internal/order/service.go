package order

import (
	"github.com/google/wire"

	catalogdomain "github.com/tradepoint/oms/internal/catalog/domain"
	directorydomain "github.com/tradepoint/oms/internal/directory/domain"
	"github.com/tradepoint/oms/internal/order/domain"
	"github.com/tradepoint/oms/internal/order/gateway"
	"github.com/tradepoint/oms/internal/order/repository"
	"github.com/tradepoint/oms/internal/order/usecase/command"
	"github.com/tradepoint/oms/internal/order/usecase/query"
	"github.com/tradepoint/oms/pkg/events"
	"github.com/tradepoint/oms/pkg/textstore"
)

// CommandHandlers is a struct that holds all command handlers
type CommandHandlers struct {
	Create             *command.CreateOrderHandler
	AddItem            *command.AddItemHandler
	RemoveItem         *command.RemoveItemHandler
	UpdateItemQuantity *command.UpdateItemQuantityHandler
	UpdateStatus       *command.UpdateStatusHandler
	ApplyDiscount      *command.ApplyDiscountHandler
	ApplyFixedDiscount *command.ApplyFixedDiscountHandler
	UpdateNotes        *command.UpdateNotesHandler
	Delete             *command.DeleteOrderHandler
}

// QueryHandlers is a struct that holds all query handlers
type QueryHandlers struct {
	Get             *query.GetOrderHandler
	List            *query.ListOrdersHandler
	CanFulfill      *query.CanFulfillHandler
	Search          *query.SearchOrdersHandler
	Stats           *query.GetStatsHandler
	RevenueByPeriod *query.RevenueByPeriodHandler
	TopCustomers    *query.TopCustomersHandler
	TopProducts     *query.TopProductsHandler
	ExportCSV       *query.ExportCSVHandler
}

// Service bundles the order repository and its handlers.
type Service struct {
	Repo     domain.OrderRepository
	Commands *CommandHandlers
	Queries  *QueryHandlers
}

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(store *textstore.Store) (domain.OrderRepository, error) {
	return repository.NewFileOrderRepository(store)
}

// ProvideProductGateway provides the catalog-backed product gateway
func ProvideProductGateway(repo catalogdomain.ProductRepository, bus *events.Bus) domain.ProductGateway {
	return gateway.NewCatalogGateway(repo, bus)
}

// ProvideCustomerGateway provides the directory-backed customer gateway
func ProvideCustomerGateway(repo directorydomain.CustomerRepository) domain.CustomerGateway {
	return gateway.NewDirectoryGateway(repo)
}

// ProvideCommandHandlers provides all command handlers
func ProvideCommandHandlers(
	repo domain.OrderRepository,
	products domain.ProductGateway,
	customers domain.CustomerGateway,
	auth domain.DeleteAuthorizer,
	bus *events.Bus,
) *CommandHandlers {
	return &CommandHandlers{
		Create:             command.NewCreateOrderHandler(repo, customers, bus),
		AddItem:            command.NewAddItemHandler(repo, products),
		RemoveItem:         command.NewRemoveItemHandler(repo),
		UpdateItemQuantity: command.NewUpdateItemQuantityHandler(repo, products),
		UpdateStatus:       command.NewUpdateStatusHandler(repo, products, bus),
		ApplyDiscount:      command.NewApplyDiscountHandler(repo),
		ApplyFixedDiscount: command.NewApplyFixedDiscountHandler(repo),
		UpdateNotes:        command.NewUpdateNotesHandler(repo),
		Delete:             command.NewDeleteOrderHandler(repo, products, auth, bus),
	}
}

// ProvideQueryHandlers provides all query handlers
func ProvideQueryHandlers(repo domain.OrderRepository, products domain.ProductGateway) *QueryHandlers {
	return &QueryHandlers{
		Get:             query.NewGetOrderHandler(repo),
		List:            query.NewListOrdersHandler(repo),
		CanFulfill:      query.NewCanFulfillHandler(repo, products),
		Search:          query.NewSearchOrdersHandler(repo),
		Stats:           query.NewGetStatsHandler(repo),
		RevenueByPeriod: query.NewRevenueByPeriodHandler(repo),
		TopCustomers:    query.NewTopCustomersHandler(repo),
		TopProducts:     query.NewTopProductsHandler(repo),
		ExportCSV:       query.NewExportCSVHandler(repo),
	}
}

// ProvideService provides the assembled order service
func ProvideService(repo domain.OrderRepository, commands *CommandHandlers, queries *QueryHandlers) *Service {
	return &Service{Repo: repo, Commands: commands, Queries: queries}
}

// ServiceSet is the wire provider set for the order service
var ServiceSet = wire.NewSet(
	ProvideOrderRepository,
	ProvideProductGateway,
	ProvideCustomerGateway,
	ProvideCommandHandlers,
	ProvideQueryHandlers,
	ProvideService,
)
