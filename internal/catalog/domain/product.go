package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateName     = errors.New("product name already exists")
)

// Product represents a catalog product and its stock level.
type Product struct {
	ID            int     `json:"id" csv:"id"`
	Name          string  `json:"name" csv:"name"`
	Description   string  `json:"description" csv:"description"`
	Category      string  `json:"category" csv:"category"`
	Price         float64 `json:"price" csv:"price"`
	Stock         int     `json:"stock" csv:"stock"`
	MinStockLevel int     `json:"min_stock_level" csv:"min_stock_level"`
	IsActive      bool    `json:"is_active" csv:"is_active"`
}

// ReduceStock takes quantity out of stock. It fails rather than clamps when
// the quantity is non-positive or exceeds what is on hand.
func (p *Product) ReduceStock(quantity int) bool {
	if quantity <= 0 || quantity > p.Stock {
		return false
	}
	p.Stock -= quantity
	return true
}

// AddStock returns quantity to stock. Non-positive quantities are ignored.
func (p *Product) AddStock(quantity int) {
	if quantity > 0 {
		p.Stock += quantity
	}
}

// IsLowStock reports whether stock has dropped to the minimum level.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStockLevel
}

// InStock reports whether the requested quantity is on hand.
func (p *Product) InStock(quantity int) bool {
	return p.Stock >= quantity
}

// IsValid checks the product's field-level invariants.
func (p *Product) IsValid() bool {
	return p.Name != "" &&
		p.Category != "" &&
		p.Price >= 0 &&
		p.Stock >= 0 &&
		p.MinStockLevel >= 0
}

// Serialize renders the product as one pipe-delimited record.
func (p *Product) Serialize() string {
	return strings.Join([]string{
		strconv.Itoa(p.ID),
		p.Name,
		p.Description,
		p.Category,
		strconv.FormatFloat(p.Price, 'f', -1, 64),
		strconv.Itoa(p.Stock),
		strconv.Itoa(p.MinStockLevel),
		boolToFlag(p.IsActive),
	}, "|")
}

// ParseProduct decodes one pipe-delimited record. A record with fewer than
// eight fields yields a zero product; malformed scalar fields decode to
// their zero values rather than failing the load.
func ParseProduct(line string) Product {
	parts := strings.Split(line, "|")
	var p Product
	if len(parts) < 8 {
		return p
	}
	p.ID = cast.ToInt(parts[0])
	p.Name = parts[1]
	p.Description = parts[2]
	p.Category = parts[3]
	p.Price = cast.ToFloat64(parts[4])
	p.Stock = cast.ToInt(parts[5])
	p.MinStockLevel = cast.ToInt(parts[6])
	p.IsActive = parts[7] == "1"
	return p
}

func boolToFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (p *Product) String() string {
	return fmt.Sprintf("Product #%d %s (%s) price=%.2f stock=%d", p.ID, p.Name, p.Category, p.Price, p.Stock)
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id int) (*Product, error)
	FindAll() ([]Product, error)
	Update(product *Product) error
	Delete(id int) error
	Count() (int, error)
}
