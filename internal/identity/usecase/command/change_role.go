package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/identity/domain"
)

// ChangeRoleCommand represents the command to change a user's role
type ChangeRoleCommand struct {
	UserID int
	Role   domain.Role
}

// ChangeRoleHandler handles role change command
type ChangeRoleHandler struct {
	repo domain.UserRepository
}

// NewChangeRoleHandler creates a new change role handler
func NewChangeRoleHandler(repo domain.UserRepository) *ChangeRoleHandler {
	return &ChangeRoleHandler{repo: repo}
}

// Handle executes the change role command
func (h *ChangeRoleHandler) Handle(cmd ChangeRoleCommand) error {
	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}
	user.Role = cmd.Role
	if err := h.repo.Update(user); err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	return nil
}
