package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/identity/domain"
)

// ChangePasswordCommand changes a user's own password after verifying the
// old one. Reset (by an admin) skips verification.
type ChangePasswordCommand struct {
	UserID      int
	OldPassword string
	NewPassword string
	Reset       bool
}

// ChangePasswordHandler handles password change command
type ChangePasswordHandler struct {
	repo domain.UserRepository
}

// NewChangePasswordHandler creates a new change password handler
func NewChangePasswordHandler(repo domain.UserRepository) *ChangePasswordHandler {
	return &ChangePasswordHandler{repo: repo}
}

// Handle executes the change password command
func (h *ChangePasswordHandler) Handle(cmd ChangePasswordCommand) error {
	if cmd.NewPassword == "" {
		return fmt.Errorf("new password is required")
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	if !cmd.Reset && !user.VerifyPassword(cmd.OldPassword) {
		return domain.ErrInvalidCredentials
	}

	user.PasswordHash = domain.HashPassword(cmd.NewPassword)
	if err := h.repo.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
