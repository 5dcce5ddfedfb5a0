package ui

import (
	"github.com/tradepoint/oms/internal/identity/usecase/command"
)

// loginMenu shows the pre-login options. Returns false when the user exits.
func (c *Console) loginMenu() bool {
	c.printf("\n--- Login ---\n")
	c.printf("1. Login\n")
	c.printf("0. Exit\n")

	switch c.prompt("Choice") {
	case "1":
		c.login()
	case "0":
		return false
	default:
		c.printf("Unknown option.\n")
	}
	return true
}

func (c *Console) login() {
	username := c.prompt("Username")
	password := c.prompt("Password")

	user, err := c.identity.Commands.Login.Handle(command.LoginUserCommand{
		Username: username,
		Password: password,
	})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("Welcome, %s (%s).\n", user.FullName, user.Role)
}
