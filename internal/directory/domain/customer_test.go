package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCustomer() Customer {
	return Customer{
		ID:       1,
		Name:     "Alice Martin",
		Email:    "alice@example.com",
		Phone:    "06 12 34 56 78",
		Address:  "12 Main St",
		City:     "Lyon",
		Country:  "France",
		IsActive: true,
	}
}

func TestShippingAddress(t *testing.T) {
	c := validCustomer()
	assert.Equal(t, "12 Main St, Lyon, France", c.ShippingAddress())
}

func TestCustomerIsValid(t *testing.T) {
	c := validCustomer()
	assert.True(t, c.IsValid())

	cases := []struct {
		name   string
		mutate func(*Customer)
	}{
		{"Empty name", func(c *Customer) { c.Name = "" }},
		{"Bad email", func(c *Customer) { c.Email = "not-an-email" }},
		{"Empty phone", func(c *Customer) { c.Phone = "" }},
		{"Empty address", func(c *Customer) { c.Address = "" }},
		{"Empty city", func(c *Customer) { c.City = "" }},
		{"Empty country", func(c *Customer) { c.Country = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCustomer()
			tc.mutate(&c)
			assert.False(t, c.IsValid())
		})
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("alice@example.com"))
	assert.True(t, ValidEmail("a.b+c@sub.example.org"))
	assert.False(t, ValidEmail("alice"))
	assert.False(t, ValidEmail("alice@"))
	assert.False(t, ValidEmail("@example.com"))
	assert.False(t, ValidEmail("alice@example"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("06 12 34 56 78"))
	assert.True(t, ValidPhone("+33-6-12-34-56-78"))
	assert.True(t, ValidPhone("(555) 123-4567"))
	assert.False(t, ValidPhone("12345"), "too short")
	assert.False(t, ValidPhone("call me maybe"))
}

func TestCustomerSerializeRoundTrip(t *testing.T) {
	c := validCustomer()
	parsed := ParseCustomer(c.Serialize())
	assert.Equal(t, c, parsed)
}

func TestParseCustomerShortRecord(t *testing.T) {
	c := ParseCustomer("1|Alice")
	assert.Zero(t, c.ID)
	assert.Empty(t, c.Name)
}
