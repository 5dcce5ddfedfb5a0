package ui

import (
	"time"

	catalogquery "github.com/tradepoint/oms/internal/catalog/usecase/query"
	directoryquery "github.com/tradepoint/oms/internal/directory/usecase/query"
	"github.com/tradepoint/oms/internal/order/domain"
	orderquery "github.com/tradepoint/oms/internal/order/usecase/query"
)

func (c *Console) reportsMenu() {
	for {
		c.printf("\n--- Reports ---\n")
		c.printf("1. Order statistics\n")
		c.printf("2. Revenue by period\n")
		c.printf("3. Top customers\n")
		c.printf("4. Top products\n")
		c.printf("5. Catalog statistics\n")
		c.printf("6. Customer statistics\n")
		c.printf("0. Back\n")

		switch c.prompt("Choice") {
		case "1":
			c.orderStatsReport()
		case "2":
			c.revenueReport()
		case "3":
			c.topCustomersReport()
		case "4":
			c.topProductsReport()
		case "5":
			c.catalogStatsReport()
		case "6":
			c.directoryStatsReport()
		case "0":
			return
		default:
			c.printf("Unknown option.\n")
		}
	}
}

func (c *Console) orderStatsReport() {
	stats, err := c.orders.Queries.Stats.Handle(orderquery.GetStatsQuery{})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("Orders: %d\n", stats.TotalOrders)
	for _, status := range domain.AllStatuses() {
		if n := stats.StatusCounts[string(status)]; n > 0 {
			c.printf("  %s: %d\n", status, n)
		}
	}
	c.printf("Revenue (non-cancelled): %.2f\n", stats.TotalRevenue)
	c.printf("Average order value: %.2f\n", stats.AverageOrderValue)
	c.printf("Items sold: %d\n", stats.TotalItemsSold)
}

func (c *Console) revenueReport() {
	from, err := time.Parse("2006-01-02", c.prompt("From (YYYY-MM-DD)"))
	if err != nil {
		c.showError(err)
		return
	}
	to, err := time.Parse("2006-01-02", c.prompt("To (YYYY-MM-DD, exclusive)"))
	if err != nil {
		c.showError(err)
		return
	}

	report, err := c.orders.Queries.RevenueByPeriod.Handle(orderquery.RevenueByPeriodQuery{From: from, To: to})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("Period %s to %s: %d order(s), %d item(s), revenue %.2f\n",
		report.From.Format("2006-01-02"), report.To.Format("2006-01-02"),
		report.OrderCount, report.ItemsSold, report.Revenue)
}

func (c *Console) topCustomersReport() {
	limit := c.promptInt("How many (0 for all)")
	ranks, err := c.orders.Queries.TopCustomers.Handle(orderquery.TopCustomersQuery{Limit: limit})
	if err != nil {
		c.showError(err)
		return
	}
	for i, rank := range ranks {
		c.printf("%d. %s (#%d): %d order(s), %.2f spent\n",
			i+1, rank.CustomerName, rank.CustomerID, rank.OrderCount, rank.TotalSpent)
	}
}

func (c *Console) topProductsReport() {
	limit := c.promptInt("How many (0 for all)")
	ranks, err := c.orders.Queries.TopProducts.Handle(orderquery.TopProductsQuery{Limit: limit})
	if err != nil {
		c.showError(err)
		return
	}
	for i, rank := range ranks {
		c.printf("%d. %s (#%d): %d sold, revenue %.2f\n",
			i+1, rank.ProductName, rank.ProductID, rank.QuantitySold, rank.Revenue)
	}
}

func (c *Console) catalogStatsReport() {
	stats, err := c.catalog.Queries.Stats.Handle(catalogquery.GetStatsQuery{})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("Products: %d (%d active, %d inactive)\n",
		stats.TotalProducts, stats.ActiveProducts, stats.InactiveProducts)
	c.printf("Low stock: %d\n", stats.LowStockProducts)
	c.printf("Total stock: %d units, value %.2f\n", stats.TotalStock, stats.StockValue)
	c.printf("Average price: %.2f across %d categories\n", stats.AveragePrice, stats.TotalCategories)
}

func (c *Console) directoryStatsReport() {
	stats, err := c.directory.Queries.Stats.Handle(directoryquery.GetStatsQuery{})
	if err != nil {
		c.showError(err)
		return
	}
	c.printf("Customers: %d (%d active, %d inactive)\n",
		stats.TotalCustomers, stats.ActiveCustomers, stats.InactiveCustomers)
	for city, n := range stats.CustomersByCity {
		c.printf("  %s: %d\n", city, n)
	}
}
