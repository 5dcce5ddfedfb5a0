package repository

import (
	"fmt"

	"github.com/tradepoint/oms/internal/catalog/domain"
	"github.com/tradepoint/oms/pkg/logger"
	"github.com/tradepoint/oms/pkg/textstore"
)

const productsFile = "products.txt"

// FileProductRepository keeps the product collection in memory, loaded
// wholesale from the text store at construction and rewritten wholesale
// after every mutation.
type FileProductRepository struct {
	store    *textstore.Store
	products []domain.Product
	nextID   int
}

func NewFileProductRepository(store *textstore.Store) (*FileProductRepository, error) {
	r := &FileProductRepository{store: store, nextID: 1}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileProductRepository) load() error {
	lines, err := r.store.Load(productsFile)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	r.products = r.products[:0]
	for _, line := range lines {
		p := domain.ParseProduct(line)
		if p.ID == 0 {
			// lossy recovery: skip records that did not decode
			continue
		}
		r.products = append(r.products, p)
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	logger.Info().Int("count", len(r.products)).Msg("Loaded products")
	return nil
}

// flush rewrites the backing file. A write failure is logged, not surfaced:
// the in-memory mutation stands and the views diverge until the next
// successful save.
func (r *FileProductRepository) flush() {
	lines := make([]string, 0, len(r.products))
	for i := range r.products {
		lines = append(lines, r.products[i].Serialize())
	}
	if err := r.store.Save(productsFile, lines); err != nil {
		logger.Error().Err(err).Msg("Failed to save products")
	}
}

func (r *FileProductRepository) Create(product *domain.Product) error {
	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, *product)
	r.flush()
	return nil
}

func (r *FileProductRepository) FindByID(id int) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *FileProductRepository) FindAll() ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *FileProductRepository) Update(product *domain.Product) error {
	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			r.flush()
			return nil
		}
	}
	return domain.ErrProductNotFound
}

func (r *FileProductRepository) Delete(id int) error {
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			r.flush()
			return nil
		}
	}
	return domain.ErrProductNotFound
}

func (r *FileProductRepository) Count() (int, error) {
	return len(r.products), nil
}
