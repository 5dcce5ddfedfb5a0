package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrDuplicateEmail   = errors.New("email already exists")
	ErrDuplicatePhone   = errors.New("phone already exists")
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[\d\-\(\)\+\s]{10,}$`)
)

// Customer represents a customer record.
type Customer struct {
	ID       int    `json:"id" csv:"id"`
	Name     string `json:"name" csv:"name"`
	Email    string `json:"email" csv:"email"`
	Phone    string `json:"phone" csv:"phone"`
	Address  string `json:"address" csv:"address"`
	City     string `json:"city" csv:"city"`
	Country  string `json:"country" csv:"country"`
	IsActive bool   `json:"is_active" csv:"is_active"`
}

// ShippingAddress renders the address snapshot captured onto new orders.
func (c *Customer) ShippingAddress() string {
	return fmt.Sprintf("%s, %s, %s", c.Address, c.City, c.Country)
}

// IsValid checks the customer's field-level invariants.
func (c *Customer) IsValid() bool {
	return c.Name != "" &&
		ValidEmail(c.Email) &&
		c.Phone != "" &&
		c.Address != "" &&
		c.City != "" &&
		c.Country != ""
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPhone reports whether s looks like a phone number.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// Serialize renders the customer as one pipe-delimited record.
func (c *Customer) Serialize() string {
	active := "0"
	if c.IsActive {
		active = "1"
	}
	return strings.Join([]string{
		strconv.Itoa(c.ID),
		c.Name,
		c.Email,
		c.Phone,
		c.Address,
		c.City,
		c.Country,
		active,
	}, "|")
}

// ParseCustomer decodes one pipe-delimited record; short or malformed
// records yield a zero customer.
func ParseCustomer(line string) Customer {
	parts := strings.Split(line, "|")
	var c Customer
	if len(parts) < 8 {
		return c
	}
	c.ID = cast.ToInt(parts[0])
	c.Name = parts[1]
	c.Email = parts[2]
	c.Phone = parts[3]
	c.Address = parts[4]
	c.City = parts[5]
	c.Country = parts[6]
	c.IsActive = parts[7] == "1"
	return c
}

// CustomerRepository defines the contract for customer data access
type CustomerRepository interface {
	Create(customer *Customer) error
	FindByID(id int) (*Customer, error)
	FindAll() ([]Customer, error)
	Update(customer *Customer) error
	Delete(id int) error
	Count() (int, error)
}
