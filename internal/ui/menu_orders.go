package ui

import (
	"os"

	"github.com/tradepoint/oms/internal/order/domain"
	"github.com/tradepoint/oms/internal/order/usecase/command"
	"github.com/tradepoint/oms/internal/order/usecase/query"
)

func (c *Console) orderMenu() {
	session := c.identity.Session
	manage := session.CanManageOrders()

	for {
		c.printf("\n--- Orders ---\n")
		c.printf("1. List orders\n")
		c.printf("2. Show order\n")
		c.printf("3. Search orders\n")
		if manage {
			c.printf("4. Create order\n")
			c.printf("5. Edit order items\n")
			c.printf("6. Change order status\n")
			c.printf("7. Apply discount\n")
			c.printf("8. Update notes\n")
		}
		if session.CanDeleteOrders() {
			c.printf("9. Delete order\n")
		}
		c.printf("10. Export CSV\n")
		c.printf("0. Back\n")

		choice := c.prompt("Choice")
		switch choice {
		case "1":
			c.listOrders()
		case "2":
			c.showOrder()
		case "3":
			c.searchOrders()
		case "4", "5", "6", "7", "8":
			if !manage {
				c.printf("Access denied.\n")
				continue
			}
			switch choice {
			case "4":
				c.createOrder()
			case "5":
				c.editOrderItems()
			case "6":
				c.changeOrderStatus()
			case "7":
				c.applyDiscount()
			case "8":
				c.updateOrderNotes()
			}
		case "9":
			if !session.CanDeleteOrders() {
				c.printf("Access denied.\n")
				continue
			}
			c.deleteOrder()
		case "10":
			c.exportOrders()
		case "0":
			return
		default:
			c.printf("Unknown option.\n")
		}
	}
}

func (c *Console) printOrderLine(o *domain.Order) {
	c.printf("  #%d %s | %s | %d item(s) | total %.2f, final %.2f | %s\n",
		o.ID, o.CustomerName, o.Status, o.ItemCount(),
		o.TotalAmount, o.FinalAmount, o.OrderDate.Format(domain.DateTimeLayout))
}

func (c *Console) printOrder(o *domain.Order) {
	c.printOrderLine(o)
	c.printf("  Ship to: %s\n", o.ShippingAddress)
	if o.Notes != "" {
		c.printf("  Notes: %s\n", o.Notes)
	}
	for i := range o.Items {
		item := &o.Items[i]
		c.printf("    %dx %s @ %.2f = %.2f\n", item.Quantity, item.ProductName, item.UnitPrice, item.TotalPrice)
	}
	if o.DiscountAmount > 0 {
		c.printf("  Discount: %.2f\n", o.DiscountAmount)
	}
}

func (c *Console) listOrders() {
	q := query.ListOrdersQuery{CustomerID: c.promptInt("Customer ID filter (0 for all)")}
	if status := c.prompt("Status filter (blank for all)"); status != "" {
		q.Status = domain.ParseStatus(status)
	}
	orders, err := c.orders.Queries.List.Handle(q)
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("%d order(s):\n", len(orders))
	for i := range orders {
		c.printOrderLine(&orders[i])
	}
}

func (c *Console) showOrder() {
	id := c.promptInt("Order ID")
	order, err := c.orders.Queries.Get.Handle(query.GetOrderQuery{OrderID: id})
	if err != nil {
		c.showError(err)
		return
	}
	c.printOrder(order)

	fulfillable, err := c.orders.Queries.CanFulfill.Handle(query.CanFulfillQuery{OrderID: id})
	if err == nil {
		if fulfillable {
			c.printf("  All items currently in stock.\n")
		} else {
			c.printf("  Cannot be fulfilled from current stock.\n")
		}
	}
}

func (c *Console) searchOrders() {
	term := c.prompt("Search term (ID, customer or notes)")
	orders, err := c.orders.Queries.Search.Handle(query.SearchOrdersQuery{Term: term})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("%d order(s):\n", len(orders))
	for i := range orders {
		c.printOrderLine(&orders[i])
	}
}

func (c *Console) createOrder() {
	order, err := c.orders.Commands.Create.Handle(command.CreateOrderCommand{
		CustomerID: c.promptInt("Customer ID"),
		Notes:      c.prompt("Notes (optional)"),
	})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("Order #%d opened for %s.\n", order.ID, order.CustomerName)
}

func (c *Console) editOrderItems() {
	orderID := c.promptInt("Order ID")

	for {
		c.printf("\n--- Order #%d items ---\n", orderID)
		c.printf("1. Add item\n")
		c.printf("2. Change item quantity\n")
		c.printf("3. Remove item\n")
		c.printf("0. Back\n")

		switch c.prompt("Choice") {
		case "1":
			order, err := c.orders.Commands.AddItem.Handle(command.AddItemCommand{
				OrderID:   orderID,
				ProductID: c.promptInt("Product ID"),
				Quantity:  c.promptInt("Quantity"),
			})
			if err != nil {
				c.showError(err)
				continue
			}
			c.printOrder(order)
		case "2":
			order, err := c.orders.Commands.UpdateItemQuantity.Handle(command.UpdateItemQuantityCommand{
				OrderID:   orderID,
				ProductID: c.promptInt("Product ID"),
				Quantity:  c.promptInt("New quantity (0 removes)"),
			})
			if err != nil {
				c.showError(err)
				continue
			}
			c.printOrder(order)
		case "3":
			order, err := c.orders.Commands.RemoveItem.Handle(command.RemoveItemCommand{
				OrderID:   orderID,
				ProductID: c.promptInt("Product ID"),
			})
			if err != nil {
				c.showError(err)
				continue
			}
			c.printOrder(order)
		case "0":
			return
		default:
			c.printf("Unknown option.\n")
		}
	}
}

func (c *Console) changeOrderStatus() {
	orderID := c.promptInt("Order ID")
	c.printf("Statuses:")
	for _, s := range domain.AllStatuses() {
		c.printf(" %s", s)
	}
	c.printf("\n")
	target := domain.ParseStatus(c.prompt("New status"))

	order, err := c.orders.Commands.UpdateStatus.Handle(command.UpdateStatusCommand{
		OrderID: orderID,
		Target:  target,
	})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("Order #%d is now %s.\n", order.ID, order.Status)
}

func (c *Console) applyDiscount() {
	orderID := c.promptInt("Order ID")
	if c.promptYesNo("Percentage discount?") {
		order, err := c.orders.Commands.ApplyDiscount.Handle(command.ApplyDiscountCommand{
			OrderID: orderID,
			Percent: c.promptFloat("Percent [0-100]"),
		})
		if err != nil {
			c.showError(err)
			return
		}
		c.printf("Order #%d final amount: %.2f\n", order.ID, order.FinalAmount)
		return
	}
	order, err := c.orders.Commands.ApplyFixedDiscount.Handle(command.ApplyFixedDiscountCommand{
		OrderID: orderID,
		Amount:  c.promptFloat("Amount"),
	})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("Order #%d final amount: %.2f\n", order.ID, order.FinalAmount)
}

func (c *Console) updateOrderNotes() {
	order, err := c.orders.Commands.UpdateNotes.Handle(command.UpdateNotesCommand{
		OrderID: c.promptInt("Order ID"),
		Notes:   c.prompt("Notes"),
	})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("Order #%d notes updated.\n", order.ID)
}

func (c *Console) deleteOrder() {
	id := c.promptInt("Order ID")
	if !c.promptYesNo("Really delete?") {
		return
	}
	if err := c.orders.Commands.Delete.Handle(command.DeleteOrderCommand{OrderID: id}); err != nil {
		c.showError(err)
		return
	}
	c.printf("Order #%d deleted.\n", id)
}

func (c *Console) exportOrders() {
	path := c.prompt("File path")
	f, err := os.Create(path)
	if err != nil {
		c.showError(err)
		return
	}
	defer f.Close()

	count, err := c.orders.Queries.ExportCSV.Handle(query.ExportCSVQuery{Writer: f})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("Exported %d order(s) to %s.\n", count, path)
}
