package ui

import (
	"github.com/tradepoint/oms/internal/identity/domain"
	"github.com/tradepoint/oms/internal/identity/usecase/command"
	"github.com/tradepoint/oms/internal/identity/usecase/query"
)

func (c *Console) userMenu() {
	for {
		c.printf("\n--- Users ---\n")
		c.printf("1. List users\n")
		c.printf("2. Register user\n")
		c.printf("3. Change role\n")
		c.printf("4. Reset password\n")
		c.printf("5. Activate/deactivate user\n")
		c.printf("6. Delete user\n")
		c.printf("7. User statistics\n")
		c.printf("0. Back\n")

		switch c.prompt("Choice") {
		case "1":
			c.listUsers()
		case "2":
			c.registerUser()
		case "3":
			c.changeUserRole()
		case "4":
			c.resetUserPassword()
		case "5":
			c.toggleUser()
		case "6":
			c.deleteUser()
		case "7":
			c.userStatsReport()
		case "0":
			return
		default:
			c.printf("Unknown option.\n")
		}
	}
}

func (c *Console) listUsers() {
	users, err := c.identity.Queries.List.Handle(query.ListUsersQuery{})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("%d user(s):\n", len(users))
	for i := range users {
		u := &users[i]
		state := "active"
		if !u.IsActive {
			state = "inactive"
		}
		c.printf("  #%d %s (%s) %s <%s> (%s)\n", u.ID, u.Username, u.Role, u.FullName, u.Email, state)
	}
}

func (c *Console) registerUser() {
	user, err := c.identity.Commands.Register.Handle(command.RegisterUserCommand{
		Username: c.prompt("Username"),
		Password: c.prompt("Password"),
		FullName: c.prompt("Full name"),
		Email:    c.prompt("Email"),
		Role:     domain.ParseRole(c.prompt("Role (Administrator/Manager/Employee)")),
	})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("User #%d (%s) registered.\n", user.ID, user.Username)
}

func (c *Console) changeUserRole() {
	err := c.identity.Commands.ChangeRole.Handle(command.ChangeRoleCommand{
		UserID: c.promptInt("User ID"),
		Role:   domain.ParseRole(c.prompt("New role")),
	})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("Role updated.\n")
}

func (c *Console) resetUserPassword() {
	err := c.identity.Commands.ChangePassword.Handle(command.ChangePasswordCommand{
		UserID:      c.promptInt("User ID"),
		NewPassword: c.prompt("New password"),
		Reset:       true,
	})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("Password reset.\n")
}

func (c *Console) toggleUser() {
	id := c.promptInt("User ID")
	active := c.promptYesNo("Set active?")
	if err := c.identity.Commands.ToggleActive.Handle(command.ToggleActiveCommand{UserID: id, Active: active}); err != nil {
		c.showError(err)
		return
	}
	c.printf("User #%d updated.\n", id)
}

func (c *Console) deleteUser() {
	id := c.promptInt("User ID")
	if current := c.identity.Session.Current(); current != nil && current.ID == id {
		c.printf("Cannot delete the logged-in user.\n")
		return
	}
	if !c.promptYesNo("Really delete?") {
		return
	}
	if err := c.identity.Commands.Delete.Handle(command.DeleteUserCommand{UserID: id}); err != nil {
		c.showError(err)
		return
	}
	c.printf("User #%d deleted.\n", id)
}

func (c *Console) userStatsReport() {
	stats, err := c.identity.Queries.Stats.Handle(query.GetStatsQuery{})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("Users: %d (%d active)\n", stats.TotalUsers, stats.ActiveUsers)
	for role, n := range stats.ByRole {
		c.printf("  %s: %d\n", role, n)
	}
}
