package repository

import (
	"fmt"

	"github.com/tradepoint/oms/internal/directory/domain"
	"github.com/tradepoint/oms/pkg/logger"
	"github.com/tradepoint/oms/pkg/textstore"
)

const customersFile = "customers.txt"

// FileCustomerRepository keeps the customer collection in memory, loaded
// wholesale at construction and rewritten wholesale after every mutation.
type FileCustomerRepository struct {
	store     *textstore.Store
	customers []domain.Customer
	nextID    int
}

func NewFileCustomerRepository(store *textstore.Store) (*FileCustomerRepository, error) {
	r := &FileCustomerRepository{store: store, nextID: 1}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileCustomerRepository) load() error {
	lines, err := r.store.Load(customersFile)
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}
	r.customers = r.customers[:0]
	for _, line := range lines {
		c := domain.ParseCustomer(line)
		if c.ID == 0 {
			continue
		}
		r.customers = append(r.customers, c)
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
	}
	logger.Info().Int("count", len(r.customers)).Msg("Loaded customers")
	return nil
}

func (r *FileCustomerRepository) flush() {
	lines := make([]string, 0, len(r.customers))
	for i := range r.customers {
		lines = append(lines, r.customers[i].Serialize())
	}
	if err := r.store.Save(customersFile, lines); err != nil {
		logger.Error().Err(err).Msg("Failed to save customers")
	}
}

func (r *FileCustomerRepository) Create(customer *domain.Customer) error {
	customer.ID = r.nextID
	r.nextID++
	r.customers = append(r.customers, *customer)
	r.flush()
	return nil
}

func (r *FileCustomerRepository) FindByID(id int) (*domain.Customer, error) {
	for i := range r.customers {
		if r.customers[i].ID == id {
			c := r.customers[i]
			return &c, nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *FileCustomerRepository) FindAll() ([]domain.Customer, error) {
	out := make([]domain.Customer, len(r.customers))
	copy(out, r.customers)
	return out, nil
}

func (r *FileCustomerRepository) Update(customer *domain.Customer) error {
	for i := range r.customers {
		if r.customers[i].ID == customer.ID {
			r.customers[i] = *customer
			r.flush()
			return nil
		}
	}
	return domain.ErrCustomerNotFound
}

func (r *FileCustomerRepository) Delete(id int) error {
	for i := range r.customers {
		if r.customers[i].ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			r.flush()
			return nil
		}
	}
	return domain.ErrCustomerNotFound
}

func (r *FileCustomerRepository) Count() (int, error) {
	return len(r.customers), nil
}
