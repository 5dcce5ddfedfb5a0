package query

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/tradepoint/oms/internal/catalog/domain"
)

// ExportCSVQuery represents the query to export the catalog as CSV
type ExportCSVQuery struct {
	Writer io.Writer
}

// ExportCSVHandler handles CSV export query
type ExportCSVHandler struct {
	repo domain.ProductRepository
}

// NewExportCSVHandler creates a new CSV export handler
func NewExportCSVHandler(repo domain.ProductRepository) *ExportCSVHandler {
	return &ExportCSVHandler{repo: repo}
}

// Handle writes the whole product collection to the writer as CSV.
func (h *ExportCSVHandler) Handle(query ExportCSVQuery) (int, error) {
	products, err := h.repo.FindAll()
	if err != nil {
		return 0, fmt.Errorf("failed to get products: %w", err)
	}
	if err := gocsv.Marshal(products, query.Writer); err != nil {
		return 0, fmt.Errorf("failed to export products: %w", err)
	}
	return len(products), nil
}
