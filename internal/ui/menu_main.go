package ui

// mainMenu shows the sections available to the logged-in role. Returns
// false when the user exits the program.
func (c *Console) mainMenu() bool {
	session := c.identity.Session
	user := session.Current()

	c.printf("\n--- Main Menu (%s, %s) ---\n", user.Username, user.Role)
	c.printf("1. Customers\n")
	c.printf("2. Products\n")
	c.printf("3. Orders\n")
	if session.CanViewReports() {
		c.printf("4. Reports\n")
	}
	if session.CanManageUsers() {
		c.printf("5. Users\n")
	}
	c.printf("9. Logout\n")
	c.printf("0. Exit\n")

	switch c.prompt("Choice") {
	case "1":
		c.customerMenu()
	case "2":
		c.productMenu()
	case "3":
		c.orderMenu()
	case "4":
		if session.CanViewReports() {
			c.reportsMenu()
		} else {
			c.printf("Access denied.\n")
		}
	case "5":
		if session.CanManageUsers() {
			c.userMenu()
		} else {
			c.printf("Access denied.\n")
		}
	case "9":
		c.identity.Commands.Login.Logout()
		c.printf("Logged out.\n")
	case "0":
		return false
	default:
		c.printf("Unknown option.\n")
	}
	return true
}
