package ui

import (
	"os"

	"github.com/tradepoint/oms/internal/catalog/domain"
	"github.com/tradepoint/oms/internal/catalog/usecase/command"
	"github.com/tradepoint/oms/internal/catalog/usecase/query"
)

func (c *Console) productMenu() {
	manage := c.identity.Session.CanManageProducts()

	for {
		c.printf("\n--- Products ---\n")
		c.printf("1. List products\n")
		c.printf("2. Low stock report\n")
		if manage {
			c.printf("3. Add product\n")
			c.printf("4. Update product\n")
			c.printf("5. Adjust stock\n")
			c.printf("6. Change price\n")
			c.printf("7. Activate/deactivate product\n")
			c.printf("8. Delete product\n")
		}
		c.printf("9. Export CSV\n")
		c.printf("0. Back\n")

		choice := c.prompt("Choice")
		switch choice {
		case "1":
			c.listProducts()
		case "2":
			c.lowStockReport()
		case "3", "4", "5", "6", "7", "8":
			if !manage {
				c.printf("Access denied.\n")
				continue
			}
			switch choice {
			case "3":
				c.addProduct()
			case "4":
				c.updateProduct()
			case "5":
				c.adjustStock()
			case "6":
				c.changePrice()
			case "7":
				c.toggleProduct()
			case "8":
				c.deleteProduct()
			}
		case "9":
			c.exportProducts()
		case "0":
			return
		default:
			c.printf("Unknown option.\n")
		}
	}
}

func (c *Console) printProduct(p *domain.Product) {
	state := "active"
	if !p.IsActive {
		state = "inactive"
	}
	c.printf("  #%d %s [%s] %.2f | stock %d (min %d) (%s)\n",
		p.ID, p.Name, p.Category, p.Price, p.Stock, p.MinStockLevel, state)
}

func (c *Console) listProducts() {
	products, err := c.catalog.Queries.List.Handle(query.ListProductsQuery{
		NameContains: c.prompt("Name filter (blank for all)"),
		Category:     c.prompt("Category filter (blank for all)"),
	})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("%d product(s):\n", len(products))
	for i := range products {
		c.printProduct(&products[i])
	}
}

func (c *Console) lowStockReport() {
	products, err := c.catalog.Queries.LowStock.Handle(query.LowStockQuery{})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("%d product(s) at or below minimum stock:\n", len(products))
	for i := range products {
		c.printProduct(&products[i])
	}
}

func (c *Console) addProduct() {
	product, err := c.catalog.Commands.Create.Handle(command.CreateProductCommand{
		Name:          c.prompt("Name"),
		Description:   c.prompt("Description"),
		Category:      c.prompt("Category"),
		Price:         c.promptFloat("Price"),
		Stock:         c.promptInt("Initial stock"),
		MinStockLevel: c.promptInt("Minimum stock level"),
	})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("Product #%d created.\n", product.ID)
}

func (c *Console) updateProduct() {
	product, err := c.catalog.Commands.Update.Handle(command.UpdateProductCommand{
		ID:            c.promptInt("Product ID"),
		Name:          c.prompt("Name"),
		Description:   c.prompt("Description"),
		Category:      c.prompt("Category"),
		Price:         c.promptFloat("Price"),
		MinStockLevel: c.promptInt("Minimum stock level"),
	})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("Product #%d updated.\n", product.ID)
}

func (c *Console) adjustStock() {
	id := c.promptInt("Product ID")
	delta := c.promptInt("Adjustment (negative removes stock)")
	if err := c.catalog.Commands.AdjustStock.Handle(command.AdjustStockCommand{ProductID: id, Delta: delta}); err != nil {
		c.showError(err)
		return
	}
	c.printf("Stock adjusted.\n")
}

func (c *Console) changePrice() {
	id := c.promptInt("Product ID")
	price := c.promptFloat("New price")
	if err := c.catalog.Commands.UpdatePrice.Handle(command.UpdatePriceCommand{ProductID: id, Price: price}); err != nil {
		c.showError(err)
		return
	}
	c.printf("Price updated.\n")
}

func (c *Console) toggleProduct() {
	id := c.promptInt("Product ID")
	active := c.promptYesNo("Set active?")
	if err := c.catalog.Commands.ToggleActive.Handle(command.ToggleActiveCommand{ID: id, Active: active}); err != nil {
		c.showError(err)
		return
	}
	c.printf("Product #%d updated.\n", id)
}

func (c *Console) deleteProduct() {
	id := c.promptInt("Product ID")
	if !c.promptYesNo("Really delete?") {
		return
	}
	if err := c.catalog.Commands.Delete.Handle(command.DeleteProductCommand{ID: id}); err != nil {
		c.showError(err)
		return
	}
	c.printf("Product #%d deleted.\n", id)
}

func (c *Console) exportProducts() {
	path := c.prompt("File path")
	f, err := os.Create(path)
	if err != nil {
		c.showError(err)
		return
	}
	defer f.Close()

	count, err := c.catalog.Queries.ExportCSV.Handle(query.ExportCSVQuery{Writer: f})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("Exported %d product(s) to %s.\n", count, path)
}
