package command

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradepoint/oms/internal/order/domain"
	"github.com/tradepoint/oms/pkg/events"
)

type fakeOrderRepository struct {
	orders map[int]*domain.Order
	nextID int
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{orders: make(map[int]*domain.Order), nextID: 1}
}

func (r *fakeOrderRepository) Create(order *domain.Order) error {
	order.ID = r.nextID
	r.nextID++
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepository) FindByID(id int) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (r *fakeOrderRepository) FindAll() ([]domain.Order, error) {
	all := make([]domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		all = append(all, *order)
	}
	return all, nil
}

func (r *fakeOrderRepository) Update(order *domain.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return domain.ErrOrderNotFound
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepository) Delete(id int) error {
	if _, ok := r.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepository) Count() (int, error) {
	return len(r.orders), nil
}

type fakeProduct struct {
	snapshot domain.ProductSnapshot
	stock    int
}

type fakeProductGateway struct {
	products map[int]*fakeProduct
}

func newFakeProductGateway() *fakeProductGateway {
	return &fakeProductGateway{products: make(map[int]*fakeProduct)}
}

func (g *fakeProductGateway) add(id int, name string, price float64, stock int) {
	g.products[id] = &fakeProduct{
		snapshot: domain.ProductSnapshot{ID: id, Name: name, Price: price, IsActive: true},
		stock:    stock,
	}
}

func (g *fakeProductGateway) Product(id int) (domain.ProductSnapshot, error) {
	p, ok := g.products[id]
	if !ok {
		return domain.ProductSnapshot{}, errors.New("product not found")
	}
	return p.snapshot, nil
}

func (g *fakeProductGateway) IsAvailable(id, quantity int) bool {
	p, ok := g.products[id]
	return ok && quantity > 0 && quantity <= p.stock
}

func (g *fakeProductGateway) ReduceStock(id, quantity int) error {
	p, ok := g.products[id]
	if !ok {
		return errors.New("product not found")
	}
	if quantity > p.stock {
		return fmt.Errorf("insufficient stock for product %d", id)
	}
	p.stock -= quantity
	return nil
}

func (g *fakeProductGateway) RestoreStock(id, quantity int) error {
	p, ok := g.products[id]
	if !ok {
		return errors.New("product not found")
	}
	p.stock += quantity
	return nil
}

type fakeCustomerGateway struct {
	customers map[int]domain.CustomerSnapshot
}

func newFakeCustomerGateway() *fakeCustomerGateway {
	return &fakeCustomerGateway{customers: map[int]domain.CustomerSnapshot{
		10: {ID: 10, Name: "Alice Martin", ShippingAddress: "12 Main St, Lyon, France", IsActive: true},
	}}
}

func (g *fakeCustomerGateway) Customer(id int) (domain.CustomerSnapshot, error) {
	c, ok := g.customers[id]
	if !ok {
		return domain.CustomerSnapshot{}, errors.New("customer not found")
	}
	return c, nil
}

type allowAll struct{ allowed bool }

func (a allowAll) CanDeleteOrders() bool { return a.allowed }

type fixture struct {
	repo      *fakeOrderRepository
	products  *fakeProductGateway
	customers *fakeCustomerGateway
	bus       *events.Bus

	create   *CreateOrderHandler
	addItem  *AddItemHandler
	quantity *UpdateItemQuantityHandler
	status   *UpdateStatusHandler
}

func setup(t *testing.T) *fixture {
	t.Helper()
	repo := newFakeOrderRepository()
	products := newFakeProductGateway()
	products.add(100, "Laptop", 999.99, 10)
	products.add(200, "Mouse", 29.99, 3)
	customers := newFakeCustomerGateway()
	bus := events.NewBus()

	return &fixture{
		repo:      repo,
		products:  products,
		customers: customers,
		bus:       bus,
		create:    NewCreateOrderHandler(repo, customers, bus),
		addItem:   NewAddItemHandler(repo, products),
		quantity:  NewUpdateItemQuantityHandler(repo, products),
		status:    NewUpdateStatusHandler(repo, products, bus),
	}
}

func (f *fixture) openOrderWithItems(t *testing.T) *domain.Order {
	t.Helper()
	order, err := f.create.Handle(CreateOrderCommand{CustomerID: 10})
	require.NoError(t, err)
	_, err = f.addItem.Handle(AddItemCommand{OrderID: order.ID, ProductID: 100, Quantity: 2})
	require.NoError(t, err)
	order, err = f.addItem.Handle(AddItemCommand{OrderID: order.ID, ProductID: 200, Quantity: 1})
	require.NoError(t, err)
	return order
}

func TestCreateOrder(t *testing.T) {
	f := setup(t)

	var created []events.OrderCreatedEvent
	require.NoError(t, f.bus.Subscribe(events.TopicOrderCreated, func(e events.OrderCreatedEvent) {
		created = append(created, e)
	}))

	order, err := f.create.Handle(CreateOrderCommand{CustomerID: 10, Notes: "urgent"})

	require.NoError(t, err)
	assert.Equal(t, 1, order.ID)
	assert.Equal(t, "Alice Martin", order.CustomerName)
	assert.Equal(t, "12 Main St, Lyon, France", order.ShippingAddress)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, "urgent", order.Notes)
	assert.True(t, order.IsEmpty())

	require.Len(t, created, 1)
	assert.Equal(t, order.ID, created[0].OrderID)
	assert.False(t, created[0].Timestamp.IsZero())
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	f := setup(t)

	_, err := f.create.Handle(CreateOrderCommand{CustomerID: 999})

	assert.ErrorContains(t, err, "customer not found")
}

func TestAddItem(t *testing.T) {
	f := setup(t)
	order, err := f.create.Handle(CreateOrderCommand{CustomerID: 10})
	require.NoError(t, err)

	t.Run("Snapshots name and price", func(t *testing.T) {
		updated, err := f.addItem.Handle(AddItemCommand{OrderID: order.ID, ProductID: 100, Quantity: 2})
		require.NoError(t, err)
		require.Len(t, updated.Items, 1)
		assert.Equal(t, "Laptop", updated.Items[0].ProductName)
		assert.InDelta(t, 999.99, updated.Items[0].UnitPrice, 1e-9)
		assert.InDelta(t, 1999.98, updated.TotalAmount, 1e-9)
	})

	t.Run("Does not reserve stock", func(t *testing.T) {
		assert.Equal(t, 10, f.products.products[100].stock)
	})

	t.Run("Merges duplicate product", func(t *testing.T) {
		updated, err := f.addItem.Handle(AddItemCommand{OrderID: order.ID, ProductID: 100, Quantity: 1})
		require.NoError(t, err)
		require.Len(t, updated.Items, 1)
		assert.Equal(t, 3, updated.Items[0].Quantity)
	})

	t.Run("Rejects non-positive quantity", func(t *testing.T) {
		_, err := f.addItem.Handle(AddItemCommand{OrderID: order.ID, ProductID: 100, Quantity: 0})
		assert.ErrorContains(t, err, "quantity must be positive")
	})

	t.Run("Rejects unknown product", func(t *testing.T) {
		_, err := f.addItem.Handle(AddItemCommand{OrderID: order.ID, ProductID: 999, Quantity: 1})
		assert.ErrorContains(t, err, "product not found")
	})

	t.Run("Rejects insufficient stock", func(t *testing.T) {
		_, err := f.addItem.Handle(AddItemCommand{OrderID: order.ID, ProductID: 200, Quantity: 4})
		assert.ErrorContains(t, err, "insufficient stock")
	})
}

func TestAddItemNonPendingOrder(t *testing.T) {
	f := setup(t)
	order := f.openOrderWithItems(t)
	_, err := f.status.Confirm(order.ID)
	require.NoError(t, err)

	_, err = f.addItem.Handle(AddItemCommand{OrderID: order.ID, ProductID: 200, Quantity: 1})

	assert.ErrorIs(t, err, domain.ErrOrderNotEditable)
}

func TestUpdateItemQuantity(t *testing.T) {
	f := setup(t)
	order := f.openOrderWithItems(t)

	t.Run("Increase checks availability", func(t *testing.T) {
		_, err := f.quantity.Handle(UpdateItemQuantityCommand{OrderID: order.ID, ProductID: 200, Quantity: 5})
		assert.ErrorContains(t, err, "insufficient stock")
	})

	t.Run("Decrease always allowed", func(t *testing.T) {
		updated, err := f.quantity.Handle(UpdateItemQuantityCommand{OrderID: order.ID, ProductID: 100, Quantity: 1})
		require.NoError(t, err)
		item, ok := updated.Item(100)
		require.True(t, ok)
		assert.Equal(t, 1, item.Quantity)
	})

	t.Run("Zero removes the line", func(t *testing.T) {
		updated, err := f.quantity.Handle(UpdateItemQuantityCommand{OrderID: order.ID, ProductID: 200, Quantity: 0})
		require.NoError(t, err)
		_, ok := updated.Item(200)
		assert.False(t, ok)
	})

	t.Run("Unknown line", func(t *testing.T) {
		_, err := f.quantity.Handle(UpdateItemQuantityCommand{OrderID: order.ID, ProductID: 999, Quantity: 1})
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}

func TestRemoveItem(t *testing.T) {
	f := setup(t)
	order := f.openOrderWithItems(t)
	handler := NewRemoveItemHandler(f.repo)

	updated, err := handler.Handle(RemoveItemCommand{OrderID: order.ID, ProductID: 200})
	require.NoError(t, err)
	assert.Len(t, updated.Items, 1)

	_, err = handler.Handle(RemoveItemCommand{OrderID: order.ID, ProductID: 200})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestOrderLifecycle(t *testing.T) {
	f := setup(t)
	order := f.openOrderWithItems(t)

	discount := NewApplyDiscountHandler(f.repo)
	_, err := discount.Handle(ApplyDiscountCommand{OrderID: order.ID, Percent: 10})
	require.NoError(t, err)

	// 2x999.99 + 1x29.99 = 2029.97, minus 10%
	order, err = f.status.Confirm(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, order.Status)
	assert.InDelta(t, 202.997, order.DiscountAmount, 1e-9)
	assert.InDelta(t, 1826.973, order.FinalAmount, 1e-9)

	t.Run("Confirm commits stock", func(t *testing.T) {
		assert.Equal(t, 8, f.products.products[100].stock)
		assert.Equal(t, 2, f.products.products[200].stock)
	})

	order, err = f.status.Process(order.ID)
	require.NoError(t, err)
	order, err = f.status.Ship(order.ID)
	require.NoError(t, err)

	t.Run("Shipped order cannot be cancelled", func(t *testing.T) {
		_, err := f.status.Cancel(order.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	order, err = f.status.Deliver(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, order.Status)
}

func TestConfirmEmptyOrder(t *testing.T) {
	f := setup(t)
	order, err := f.create.Handle(CreateOrderCommand{CustomerID: 10})
	require.NoError(t, err)

	_, err = f.status.Confirm(order.ID)

	assert.ErrorIs(t, err, domain.ErrOrderNotValid)
}

func TestConfirmInsufficientStock(t *testing.T) {
	f := setup(t)
	order := f.openOrderWithItems(t)

	// stock drained between adding and confirming
	f.products.products[100].stock = 1

	_, err := f.status.Confirm(order.ID)

	assert.ErrorContains(t, err, "insufficient stock")
	stored, _ := f.repo.FindByID(order.ID)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestCancelReleasesCommittedStock(t *testing.T) {
	f := setup(t)
	order := f.openOrderWithItems(t)
	_, err := f.status.Confirm(order.ID)
	require.NoError(t, err)
	require.Equal(t, 8, f.products.products[100].stock)

	_, err = f.status.Cancel(order.ID)

	require.NoError(t, err)
	assert.Equal(t, 10, f.products.products[100].stock)
	assert.Equal(t, 3, f.products.products[200].stock)
}

func TestCancelPendingLeavesStockAlone(t *testing.T) {
	f := setup(t)
	order := f.openOrderWithItems(t)

	_, err := f.status.Cancel(order.ID)

	require.NoError(t, err)
	assert.Equal(t, 10, f.products.products[100].stock)
}

func TestStatusChangePublishesEvent(t *testing.T) {
	f := setup(t)
	order := f.openOrderWithItems(t)

	var changes []events.OrderStatusChangedEvent
	require.NoError(t, f.bus.Subscribe(events.TopicOrderStatusChanged, func(e events.OrderStatusChangedEvent) {
		changes = append(changes, e)
	}))

	_, err := f.status.Confirm(order.ID)
	require.NoError(t, err)

	require.Len(t, changes, 1)
	assert.Equal(t, "Pending", changes[0].FromStatus)
	assert.Equal(t, "Confirmed", changes[0].ToStatus)
}

func TestApplyFixedDiscountHandler(t *testing.T) {
	f := setup(t)
	order := f.openOrderWithItems(t)
	handler := NewApplyFixedDiscountHandler(f.repo)

	updated, err := handler.Handle(ApplyFixedDiscountCommand{OrderID: order.ID, Amount: 29.97})
	require.NoError(t, err)
	assert.InDelta(t, 2000, updated.FinalAmount, 1e-9)

	t.Run("Negative amount is a no-op", func(t *testing.T) {
		updated, err := handler.Handle(ApplyFixedDiscountCommand{OrderID: order.ID, Amount: -5})
		require.NoError(t, err)
		assert.InDelta(t, 29.97, updated.DiscountAmount, 1e-9)
	})
}

func TestUpdateNotesHandler(t *testing.T) {
	f := setup(t)
	order := f.openOrderWithItems(t)
	handler := NewUpdateNotesHandler(f.repo)

	updated, err := handler.Handle(UpdateNotesCommand{OrderID: order.ID, Notes: "fragile"})

	require.NoError(t, err)
	assert.Equal(t, "fragile", updated.Notes)
}

func TestDeleteOrder(t *testing.T) {
	t.Run("Requires administrator override", func(t *testing.T) {
		f := setup(t)
		order := f.openOrderWithItems(t)
		handler := NewDeleteOrderHandler(f.repo, f.products, allowAll{allowed: false}, f.bus)

		err := handler.Handle(DeleteOrderCommand{OrderID: order.ID})

		assert.ErrorIs(t, err, domain.ErrNotAllowed)
	})

	t.Run("Deletes pending order without touching stock", func(t *testing.T) {
		f := setup(t)
		order := f.openOrderWithItems(t)
		handler := NewDeleteOrderHandler(f.repo, f.products, allowAll{allowed: true}, f.bus)

		require.NoError(t, handler.Handle(DeleteOrderCommand{OrderID: order.ID}))

		_, err := f.repo.FindByID(order.ID)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
		assert.Equal(t, 10, f.products.products[100].stock)
	})

	t.Run("Deleting a confirmed order returns its stock", func(t *testing.T) {
		f := setup(t)
		order := f.openOrderWithItems(t)
		_, err := f.status.Confirm(order.ID)
		require.NoError(t, err)
		require.Equal(t, 8, f.products.products[100].stock)
		handler := NewDeleteOrderHandler(f.repo, f.products, allowAll{allowed: true}, f.bus)

		require.NoError(t, handler.Handle(DeleteOrderCommand{OrderID: order.ID}))

		assert.Equal(t, 10, f.products.products[100].stock)
	})
}
