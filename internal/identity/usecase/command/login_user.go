package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/identity/domain"
)

// LoginUserCommand represents the command to login a user
type LoginUserCommand struct {
	Username string
	Password string
}

// LoginUserHandler handles user login command
type LoginUserHandler struct {
	repo    domain.UserRepository
	session *domain.Session
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.UserRepository, session *domain.Session) *LoginUserHandler {
	return &LoginUserHandler{repo: repo, session: session}
}

// Handle executes the login user command. Username matching is
// case-insensitive and deactivated accounts cannot log in.
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*domain.User, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	user, err := h.repo.FindByUsername(cmd.Username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.VerifyPassword(cmd.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	user.TouchLastLogin()
	if err := h.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	h.session.Start(user)
	return user, nil
}

// Logout ends the current session.
func (h *LoginUserHandler) Logout() {
	h.session.End()
}
