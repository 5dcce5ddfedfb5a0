package directory

import (
	"github.com/google/wire"

	"github.com/tradepoint/oms/internal/directory/domain"
	"github.com/tradepoint/oms/internal/directory/repository"
	"github.com/tradepoint/oms/internal/directory/usecase/command"
	"github.com/tradepoint/oms/internal/directory/usecase/query"
	"github.com/tradepoint/oms/pkg/textstore"
)

// CommandHandlers is a struct that holds all command handlers
type CommandHandlers struct {
	Create       *command.CreateCustomerHandler
	Update       *command.UpdateCustomerHandler
	Delete       *command.DeleteCustomerHandler
	ToggleActive *command.ToggleActiveHandler
}

// QueryHandlers is a struct that holds all query handlers
type QueryHandlers struct {
	Get       *query.GetCustomerHandler
	List      *query.ListCustomersHandler
	Stats     *query.GetStatsHandler
	ExportCSV *query.ExportCSVHandler
}

// Service bundles the customer repository and its handlers.
type Service struct {
	Repo     domain.CustomerRepository
	Commands *CommandHandlers
	Queries  *QueryHandlers
}

// ProvideCustomerRepository provides the customer repository
func ProvideCustomerRepository(store *textstore.Store) (domain.CustomerRepository, error) {
	return repository.NewFileCustomerRepository(store)
}

// ProvideCommandHandlers provides all command handlers
func ProvideCommandHandlers(repo domain.CustomerRepository) *CommandHandlers {
	return &CommandHandlers{
		Create:       command.NewCreateCustomerHandler(repo),
		Update:       command.NewUpdateCustomerHandler(repo),
		Delete:       command.NewDeleteCustomerHandler(repo),
		ToggleActive: command.NewToggleActiveHandler(repo),
	}
}

// ProvideQueryHandlers provides all query handlers
func ProvideQueryHandlers(repo domain.CustomerRepository) *QueryHandlers {
	return &QueryHandlers{
		Get:       query.NewGetCustomerHandler(repo),
		List:      query.NewListCustomersHandler(repo),
		Stats:     query.NewGetStatsHandler(repo),
		ExportCSV: query.NewExportCSVHandler(repo),
	}
}

// ProvideService provides the assembled directory service
func ProvideService(repo domain.CustomerRepository, commands *CommandHandlers, queries *QueryHandlers) *Service {
	return &Service{Repo: repo, Commands: commands, Queries: queries}
}

// ServiceSet is the wire provider set for the directory service
var ServiceSet = wire.NewSet(
	ProvideCustomerRepository,
	ProvideCommandHandlers,
	ProvideQueryHandlers,
	ProvideService,
)
