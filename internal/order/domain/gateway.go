package domain

// ProductSnapshot is the slice of catalog state the order engine copies
// onto a line item.
type ProductSnapshot struct {
	ID       int
	Name     string
	Price    float64
	IsActive bool
}

// CustomerSnapshot is the slice of directory state the order engine copies
// onto a new order.
type CustomerSnapshot struct {
	ID              int
	Name            string
	ShippingAddress string
	IsActive        bool
}

// ProductGateway is the order engine's narrow view of the catalog.
type ProductGateway interface {
	Product(id int) (ProductSnapshot, error)
	IsAvailable(id, quantity int) bool
	// ReduceStock takes stock out of the catalog; it fails without mutating
	// when the quantity is not on hand.
	ReduceStock(id, quantity int) error
	// RestoreStock returns previously taken stock to the catalog.
	RestoreStock(id, quantity int) error
}

// CustomerGateway is the order engine's narrow view of the directory.
type CustomerGateway interface {
	Customer(id int) (CustomerSnapshot, error)
}

// DeleteAuthorizer is the permission predicate consulted before the
// administrative order delete.
type DeleteAuthorizer interface {
	CanDeleteOrders() bool
}

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	Create(order *Order) error
	FindByID(id int) (*Order, error)
	FindAll() ([]Order, error)
	Update(order *Order) error
	Delete(id int) error
	Count() (int, error)
}
