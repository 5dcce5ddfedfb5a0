package command

import (
	"fmt"

	"github.com/tradepoint/oms/internal/directory/domain"
)

// UpdateCustomerCommand represents the command to update an existing customer
type UpdateCustomerCommand struct {
	ID      int
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	Country string
}

// UpdateCustomerHandler handles customer update command
type UpdateCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewUpdateCustomerHandler creates a new update customer handler
func NewUpdateCustomerHandler(repo domain.CustomerRepository) *UpdateCustomerHandler {
	return &UpdateCustomerHandler{repo: repo}
}

// Handle executes the update customer command. Orders created before the
// update keep the name and shipping address they snapshotted.
func (h *UpdateCustomerHandler) Handle(cmd UpdateCustomerCommand) (*domain.Customer, error) {
	customer, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}

	customer.Name = cmd.Name
	customer.Email = cmd.Email
	customer.Phone = cmd.Phone
	customer.Address = cmd.Address
	customer.City = cmd.City
	customer.Country = cmd.Country

	if !customer.IsValid() {
		return nil, fmt.Errorf("invalid customer data")
	}
	if err := checkUnique(h.repo, cmd.Email, cmd.Phone, cmd.ID); err != nil {
		return nil, err
	}

	if err := h.repo.Update(customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}
