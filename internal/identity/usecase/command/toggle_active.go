package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/identity/domain"
)

// ToggleActiveCommand represents the command to activate or deactivate a user
type ToggleActiveCommand struct {
	UserID int
	Active bool
}

// ToggleActiveHandler handles user activation command
type ToggleActiveHandler struct {
	repo domain.UserRepository
}

// NewToggleActiveHandler creates a new toggle active handler
func NewToggleActiveHandler(repo domain.UserRepository) *ToggleActiveHandler {
	return &ToggleActiveHandler{repo: repo}
}

// Handle executes the toggle active command
func (h *ToggleActiveHandler) Handle(cmd ToggleActiveCommand) error {
	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}
	user.IsActive = cmd.Active
	if err := h.repo.Update(user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
