package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/identity/domain"
)

// RegisterUserCommand represents the command to register a new user
type RegisterUserCommand struct {
	Username string
	Password string
	FullName string
	Email    string
	Role     domain.Role
}

// RegisterUserHandler handles user registration command
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(cmd RegisterUserCommand) (*domain.User, error) {
	if cmd.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	user := &domain.User{
		Username:     cmd.Username,
		PasswordHash: domain.HashPassword(cmd.Password),
		FullName:     cmd.FullName,
		Email:        cmd.Email,
		Role:         cmd.Role,
		IsActive:     true,
	}
	if !user.IsValid() {
		return nil, fmt.Errorf("invalid user data")
	}

	if existing, _ := h.repo.FindByUsername(cmd.Username); existing != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateUsername, cmd.Username)
	}

	if err := h.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}
