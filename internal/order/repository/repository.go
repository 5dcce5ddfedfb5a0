package repository

import (
	"fmt"

	"github.com/tradepoint/oms/internal/order/domain"
	"github.com/tradepoint/oms/pkg/logger"
	"github.com/tradepoint/oms/pkg/textstore"
)

const ordersFile = "orders.txt"

// FileOrderRepository keeps the order collection in memory, loaded
// wholesale at construction and rewritten wholesale after every mutation.
type FileOrderRepository struct {
	store  *textstore.Store
	orders []domain.Order
	nextID int
}

func NewFileOrderRepository(store *textstore.Store) (*FileOrderRepository, error) {
	r := &FileOrderRepository{store: store, nextID: 1}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileOrderRepository) load() error {
	lines, err := r.store.Load(ordersFile)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}
	r.orders = r.orders[:0]
	for _, line := range lines {
		o := domain.ParseOrder(line)
		if o.ID == 0 {
			continue
		}
		r.orders = append(r.orders, *o)
		if o.ID >= r.nextID {
			r.nextID = o.ID + 1
		}
	}
	logger.Info().Int("count", len(r.orders)).Msg("Loaded orders")
	return nil
}

func (r *FileOrderRepository) flush() {
	lines := make([]string, 0, len(r.orders))
	for i := range r.orders {
		lines = append(lines, r.orders[i].Serialize())
	}
	if err := r.store.Save(ordersFile, lines); err != nil {
		logger.Error().Err(err).Msg("Failed to save orders")
	}
}

func (r *FileOrderRepository) Create(order *domain.Order) error {
	order.ID = r.nextID
	r.nextID++
	r.orders = append(r.orders, *order)
	r.flush()
	return nil
}

func (r *FileOrderRepository) FindByID(id int) (*domain.Order, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			o := r.orders[i]
			o.Items = append([]domain.OrderItem(nil), r.orders[i].Items...)
			return &o, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *FileOrderRepository) FindAll() ([]domain.Order, error) {
	out := make([]domain.Order, len(r.orders))
	for i := range r.orders {
		out[i] = r.orders[i]
		out[i].Items = append([]domain.OrderItem(nil), r.orders[i].Items...)
	}
	return out, nil
}

func (r *FileOrderRepository) Update(order *domain.Order) error {
	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			r.orders[i] = *order
			r.orders[i].Items = append([]domain.OrderItem(nil), order.Items...)
			r.flush()
			return nil
		}
	}
	return domain.ErrOrderNotFound
}

func (r *FileOrderRepository) Delete(id int) error {
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			r.flush()
			return nil
		}
	}
	return domain.ErrOrderNotFound
}

func (r *FileOrderRepository) Count() (int, error) {
	return len(r.orders), nil
}
