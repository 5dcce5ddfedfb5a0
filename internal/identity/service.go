package identity

import (
	"github.com/google/wire"

	"github.com/tradepoint/oms/internal/identity/domain"
	"github.com/tradepoint/oms/internal/identity/repository"
	"github.com/tradepoint/oms/internal/identity/usecase/command"
	"github.com/tradepoint/oms/internal/identity/usecase/query"
	"github.com/tradepoint/oms/pkg/textstore"
)

// CommandHandlers is a struct that holds all command handlers
type CommandHandlers struct {
	Register       *command.RegisterUserHandler
	Login          *command.LoginUserHandler
	ChangePassword *command.ChangePasswordHandler
	ChangeRole     *command.ChangeRoleHandler
	ToggleActive   *command.ToggleActiveHandler
	Delete         *command.DeleteUserHandler
}

// QueryHandlers is a struct that holds all query handlers
type QueryHandlers struct {
	Get   *query.GetUserHandler
	List  *query.ListUsersHandler
	Stats *query.GetStatsHandler
}

// Service bundles the user repository, session and handlers.
type Service struct {
	Repo     domain.UserRepository
	Session  *domain.Session
	Commands *CommandHandlers
	Queries  *QueryHandlers
}

// ProvideUserRepository provides the user repository
func ProvideUserRepository(store *textstore.Store) (domain.UserRepository, error) {
	return repository.NewFileUserRepository(store)
}

// ProvideSession provides the process-wide session
func ProvideSession() *domain.Session {
	return domain.NewSession()
}

// ProvideCommandHandlers provides all command handlers
func ProvideCommandHandlers(repo domain.UserRepository, session *domain.Session) *CommandHandlers {
	return &CommandHandlers{
		Register:       command.NewRegisterUserHandler(repo),
		Login:          command.NewLoginUserHandler(repo, session),
		ChangePassword: command.NewChangePasswordHandler(repo),
		ChangeRole:     command.NewChangeRoleHandler(repo),
		ToggleActive:   command.NewToggleActiveHandler(repo),
		Delete:         command.NewDeleteUserHandler(repo),
	}
}

// ProvideQueryHandlers provides all query handlers
func ProvideQueryHandlers(repo domain.UserRepository) *QueryHandlers {
	return &QueryHandlers{
		Get:   query.NewGetUserHandler(repo),
		List:  query.NewListUsersHandler(repo),
		Stats: query.NewGetStatsHandler(repo),
	}
}

// ProvideService provides the assembled identity service
func ProvideService(repo domain.UserRepository, session *domain.Session, commands *CommandHandlers, queries *QueryHandlers) *Service {
	return &Service{Repo: repo, Session: session, Commands: commands, Queries: queries}
}

// ServiceSet is the wire provider set for the identity service
var ServiceSet = wire.NewSet(
	ProvideUserRepository,
	ProvideSession,
	ProvideCommandHandlers,
	ProvideQueryHandlers,
	ProvideService,
)
