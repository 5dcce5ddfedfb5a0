package query

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradepoint/oms/internal/order/domain"
)

type fakeOrderRepository struct {
	orders []domain.Order
}

func (r *fakeOrderRepository) Create(order *domain.Order) error { return nil }

func (r *fakeOrderRepository) FindByID(id int) (*domain.Order, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			return &r.orders[i], nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *fakeOrderRepository) FindAll() ([]domain.Order, error) {
	return r.orders, nil
}

func (r *fakeOrderRepository) Update(order *domain.Order) error { return nil }
func (r *fakeOrderRepository) Delete(id int) error              { return nil }
func (r *fakeOrderRepository) Count() (int, error)              { return len(r.orders), nil }

type stockedGateway struct {
	stock map[int]int
}

func (g stockedGateway) Product(id int) (domain.ProductSnapshot, error) {
	return domain.ProductSnapshot{ID: id}, nil
}

func (g stockedGateway) IsAvailable(id, quantity int) bool {
	return quantity <= g.stock[id]
}

func (g stockedGateway) ReduceStock(id, quantity int) error  { return nil }
func (g stockedGateway) RestoreStock(id, quantity int) error { return nil }

func testOrder(id, customerID int, name string, status domain.Status, date time.Time) domain.Order {
	order := domain.NewOrder(id, customerID, name)
	order.OrderDate = date
	order.AddItem(domain.NewOrderItem(100, "Laptop", 1, 999.99))
	order.Status = status
	return *order
}

func testRepo() *fakeOrderRepository {
	jan := time.Date(2026, 1, 15, 12, 0, 0, 0, time.Local)
	feb := time.Date(2026, 2, 10, 12, 0, 0, 0, time.Local)
	mar := time.Date(2026, 3, 5, 12, 0, 0, 0, time.Local)

	first := testOrder(1, 10, "Alice Martin", domain.StatusDelivered, jan)
	second := testOrder(2, 10, "Alice Martin", domain.StatusConfirmed, feb)
	second.AddItem(domain.NewOrderItem(200, "Mouse", 2, 29.99))
	third := testOrder(3, 20, "Bob Stern", domain.StatusCancelled, feb)
	fourth := testOrder(4, 20, "Bob Stern", domain.StatusPending, mar)
	fourth.Notes = "gift wrap"

	return &fakeOrderRepository{orders: []domain.Order{first, second, third, fourth}}
}

func TestGetOrder(t *testing.T) {
	repo := testRepo()
	handler := NewGetOrderHandler(repo)

	order, err := handler.Handle(GetOrderQuery{OrderID: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, order.ID)

	_, err = handler.Handle(GetOrderQuery{OrderID: 99})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestListOrders(t *testing.T) {
	handler := NewListOrdersHandler(testRepo())

	t.Run("All", func(t *testing.T) {
		orders, err := handler.Handle(ListOrdersQuery{})
		require.NoError(t, err)
		assert.Len(t, orders, 4)
	})

	t.Run("By customer", func(t *testing.T) {
		orders, err := handler.Handle(ListOrdersQuery{CustomerID: 10})
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("By status", func(t *testing.T) {
		orders, err := handler.Handle(ListOrdersQuery{Status: domain.StatusCancelled})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, 3, orders[0].ID)
	})

	t.Run("Combined filters", func(t *testing.T) {
		orders, err := handler.Handle(ListOrdersQuery{CustomerID: 20, Status: domain.StatusPending})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, 4, orders[0].ID)
	})
}

func TestCanFulfill(t *testing.T) {
	repo := testRepo()

	t.Run("All lines in stock", func(t *testing.T) {
		handler := NewCanFulfillHandler(repo, stockedGateway{stock: map[int]int{100: 5, 200: 5}})
		ok, err := handler.Handle(CanFulfillQuery{OrderID: 2})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("One line short", func(t *testing.T) {
		handler := NewCanFulfillHandler(repo, stockedGateway{stock: map[int]int{100: 5, 200: 1}})
		ok, err := handler.Handle(CanFulfillQuery{OrderID: 2})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Empty order is never fulfillable", func(t *testing.T) {
		empty := domain.NewOrder(9, 10, "Alice Martin")
		repo := &fakeOrderRepository{orders: []domain.Order{*empty}}
		handler := NewCanFulfillHandler(repo, stockedGateway{stock: map[int]int{}})
		ok, err := handler.Handle(CanFulfillQuery{OrderID: 9})
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestGetStats(t *testing.T) {
	handler := NewGetStatsHandler(testRepo())

	stats, err := handler.Handle(GetStatsQuery{})

	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalOrders)
	assert.Equal(t, 1, stats.StatusCounts["Delivered"])
	assert.Equal(t, 1, stats.StatusCounts["Cancelled"])

	// three non-cancelled orders: 999.99 + 1059.97 + 999.99
	assert.InDelta(t, 3059.95, stats.TotalRevenue, 1e-6)
	assert.InDelta(t, 3059.95/3, stats.AverageOrderValue, 1e-6)
	assert.Equal(t, 5, stats.TotalItemsSold)
}

func TestRevenueByPeriod(t *testing.T) {
	handler := NewRevenueByPeriodHandler(testRepo())

	report, err := handler.Handle(RevenueByPeriodQuery{
		From: time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local),
		To:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local),
	})

	require.NoError(t, err)
	// only the confirmed February order counts; the cancelled one is excluded
	assert.Equal(t, 1, report.OrderCount)
	assert.InDelta(t, 1059.97, report.Revenue, 1e-6)
	assert.Equal(t, 3, report.ItemsSold)
}

func TestSearchOrders(t *testing.T) {
	handler := NewSearchOrdersHandler(testRepo())

	t.Run("By customer name", func(t *testing.T) {
		orders, err := handler.Handle(SearchOrdersQuery{Term: "alice"})
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("By notes", func(t *testing.T) {
		orders, err := handler.Handle(SearchOrdersQuery{Term: "gift"})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, 4, orders[0].ID)
	})

	t.Run("By ID", func(t *testing.T) {
		orders, err := handler.Handle(SearchOrdersQuery{Term: "3"})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, 3, orders[0].ID)
	})

	t.Run("Blank term returns everything", func(t *testing.T) {
		orders, err := handler.Handle(SearchOrdersQuery{Term: "  "})
		require.NoError(t, err)
		assert.Len(t, orders, 4)
	})

	t.Run("No match", func(t *testing.T) {
		orders, err := handler.Handle(SearchOrdersQuery{Term: "zzz"})
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestTopCustomers(t *testing.T) {
	handler := NewTopCustomersHandler(testRepo())

	ranks, err := handler.Handle(TopCustomersQuery{})

	require.NoError(t, err)
	require.Len(t, ranks, 2)
	assert.Equal(t, 10, ranks[0].CustomerID)
	assert.Equal(t, 2, ranks[0].OrderCount)
	assert.InDelta(t, 2059.96, ranks[0].TotalSpent, 1e-6)
	assert.Equal(t, 20, ranks[1].CustomerID)
	assert.Equal(t, 1, ranks[1].OrderCount, "cancelled order does not count")

	t.Run("Limit", func(t *testing.T) {
		ranks, err := handler.Handle(TopCustomersQuery{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, ranks, 1)
	})
}

func TestTopProducts(t *testing.T) {
	handler := NewTopProductsHandler(testRepo())

	ranks, err := handler.Handle(TopProductsQuery{})

	require.NoError(t, err)
	require.Len(t, ranks, 2)
	assert.Equal(t, 100, ranks[0].ProductID)
	assert.Equal(t, 3, ranks[0].QuantitySold, "one laptop per non-cancelled order")
	assert.Equal(t, 200, ranks[1].ProductID)
	assert.Equal(t, 2, ranks[1].QuantitySold)
	assert.InDelta(t, 59.98, ranks[1].Revenue, 1e-6)
}

func TestExportCSV(t *testing.T) {
	handler := NewExportCSVHandler(testRepo())
	var buf bytes.Buffer

	count, err := handler.Handle(ExportCSVQuery{Writer: &buf})

	require.NoError(t, err)
	assert.Equal(t, 4, count)
	out := buf.String()
	assert.Contains(t, out, "id,customer_id,customer_name,status")
	assert.Contains(t, out, "Alice Martin")
	assert.Contains(t, out, "Cancelled")
}
