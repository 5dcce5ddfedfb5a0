package query

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/tradepoint/oms/internal/directory/domain"
)

// ExportCSVQuery represents the query to export customers as CSV
type ExportCSVQuery struct {
	Writer io.Writer
}

// ExportCSVHandler handles CSV export query
type ExportCSVHandler struct {
	repo domain.CustomerRepository
}

// NewExportCSVHandler creates a new CSV export handler
func NewExportCSVHandler(repo domain.CustomerRepository) *ExportCSVHandler {
	return &ExportCSVHandler{repo: repo}
}

// Handle writes the whole customer collection to the writer as CSV.
func (h *ExportCSVHandler) Handle(query ExportCSVQuery) (int, error) {
	customers, err := h.repo.FindAll()
	if err != nil {
		return 0, fmt.Errorf("failed to get customers: %w", err)
	}
	if err := gocsv.Marshal(customers, query.Writer); err != nil {
		return 0, fmt.Errorf("failed to export customers: %w", err)
	}
	return len(customers), nil
}
