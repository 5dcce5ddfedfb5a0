package ui

import (
	"os"

	"github.com/tradepoint/oms/internal/directory/domain"
	"github.com/tradepoint/oms/internal/directory/usecase/command"
	"github.com/tradepoint/oms/internal/directory/usecase/query"
)

func (c *Console) customerMenu() {
	for {
		c.printf("\n--- Customers ---\n")
		c.printf("1. List customers\n")
		c.printf("2. Find customer\n")
		c.printf("3. Add customer\n")
		c.printf("4. Update customer\n")
		c.printf("5. Activate/deactivate customer\n")
		c.printf("6. Delete customer\n")
		c.printf("7. Export CSV\n")
		c.printf("0. Back\n")

		switch c.prompt("Choice") {
		case "1":
			c.listCustomers()
		case "2":
			c.findCustomer()
		case "3":
			c.addCustomer()
		case "4":
			c.updateCustomer()
		case "5":
			c.toggleCustomer()
		case "6":
			c.deleteCustomer()
		case "7":
			c.exportCustomers()
		case "0":
			return
		default:
			c.printf("Unknown option.\n")
		}
	}
}

func (c *Console) printCustomer(customer *domain.Customer) {
	state := "active"
	if !customer.IsActive {
		state = "inactive"
	}
	c.printf("  #%d %s <%s> %s | %s (%s)\n",
		customer.ID, customer.Name, customer.Email, customer.Phone,
		customer.ShippingAddress(), state)
}

func (c *Console) listCustomers() {
	name := c.prompt("Name filter (blank for all)")
	customers, err := c.directory.Queries.List.Handle(query.ListCustomersQuery{NameContains: name})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("%d customer(s):\n", len(customers))
	for i := range customers {
		c.printCustomer(&customers[i])
	}
}

func (c *Console) findCustomer() {
	id := c.promptInt("Customer ID (0 to search by email)")
	q := query.GetCustomerQuery{ID: id}
	if id == 0 {
		q.Email = c.prompt("Email")
	}
	customer, err := c.directory.Queries.Get.Handle(q)
	if err != nil {
		c.showError(err)
		return
	}
	c.printCustomer(customer)
}

func (c *Console) addCustomer() {
	customer, err := c.directory.Commands.Create.Handle(command.CreateCustomerCommand{
		Name:    c.prompt("Name"),
		Email:   c.prompt("Email"),
		Phone:   c.prompt("Phone"),
		Address: c.prompt("Address"),
		City:    c.prompt("City"),
		Country: c.prompt("Country"),
	})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("Customer #%d created.\n", customer.ID)
}

func (c *Console) updateCustomer() {
	customer, err := c.directory.Commands.Update.Handle(command.UpdateCustomerCommand{
		ID:      c.promptInt("Customer ID"),
		Name:    c.prompt("Name"),
		Email:   c.prompt("Email"),
		Phone:   c.prompt("Phone"),
		Address: c.prompt("Address"),
		City:    c.prompt("City"),
		Country: c.prompt("Country"),
	})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("Customer #%d updated.\n", customer.ID)
}

func (c *Console) toggleCustomer() {
	id := c.promptInt("Customer ID")
	active := c.promptYesNo("Set active?")
	if err := c.directory.Commands.ToggleActive.Handle(command.ToggleActiveCommand{ID: id, Active: active}); err != nil {
		c.showError(err)
		return
	}
	c.printf("Customer #%d updated.\n", id)
}

func (c *Console) deleteCustomer() {
	id := c.promptInt("Customer ID")
	if !c.promptYesNo("Really delete?") {
		return
	}
	if err := c.directory.Commands.Delete.Handle(command.DeleteCustomerCommand{ID: id}); err != nil {
		c.showError(err)
		return
	}
	c.printf("Customer #%d deleted.\n", id)
}

func (c *Console) exportCustomers() {
	path := c.prompt("File path")
	f, err := os.Create(path)
	if err != nil {
		c.showError(err)
		return
	}
	defer f.Close()

	count, err := c.directory.Queries.ExportCSV.Handle(query.ExportCSVQuery{Writer: f})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("Exported %d customer(s) to %s.\n", count, path)
}
