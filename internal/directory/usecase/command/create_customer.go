package command

import (
	"fmt"
	"strings"

	"github.com/tradepoint/oms/internal/directory/domain"
)

// CreateCustomerCommand represents the command to create a new customer
type CreateCustomerCommand struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	Country string
}

// CreateCustomerHandler handles customer creation command
type CreateCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewCreateCustomerHandler creates a new create customer handler
func NewCreateCustomerHandler(repo domain.CustomerRepository) *CreateCustomerHandler {
	return &CreateCustomerHandler{repo: repo}
}

// Handle executes the create customer command
func (h *CreateCustomerHandler) Handle(cmd CreateCustomerCommand) (*domain.Customer, error) {
	customer := &domain.Customer{
		Name:     cmd.Name,
		Email:    cmd.Email,
		Phone:    cmd.Phone,
		Address:  cmd.Address,
		City:     cmd.City,
		Country:  cmd.Country,
		IsActive: true,
	}

	if !customer.IsValid() {
		return nil, fmt.Errorf("invalid customer data")
	}
	if err := checkUnique(h.repo, cmd.Email, cmd.Phone, 0); err != nil {
		return nil, err
	}

	if err := h.repo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

// checkUnique enforces email and phone uniqueness across active and
// inactive records, excluding the customer with excludeID.
func checkUnique(repo domain.CustomerRepository, email, phone string, excludeID int) error {
	customers, err := repo.FindAll()
	if err != nil {
		return fmt.Errorf("failed to list customers: %w", err)
	}
	lowerEmail := strings.ToLower(email)
	for i := range customers {
		if customers[i].ID == excludeID {
			continue
		}
		if strings.ToLower(customers[i].Email) == lowerEmail {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateEmail, email)
		}
		if customers[i].Phone == phone {
			return fmt.Errorf("%w: %s", domain.ErrDuplicatePhone, phone)
		}
	}
	return nil
}
