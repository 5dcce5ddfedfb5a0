package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("Administrator"))
	assert.Equal(t, RoleManager, ParseRole("Manager"))
	assert.Equal(t, RoleEmployee, ParseRole("Employee"))
	assert.Equal(t, RoleGuest, ParseRole("Guest"))
	assert.Equal(t, RoleGuest, ParseRole("administrator"))
	assert.Equal(t, RoleGuest, ParseRole(""))
}

func TestPermissionPredicates(t *testing.T) {
	cases := []struct {
		role           Role
		users, prods   bool
		orders, report bool
		deleteOrders   bool
	}{
		{RoleAdmin, true, true, true, true, true},
		{RoleManager, false, true, true, true, false},
		{RoleEmployee, false, false, true, false, false},
		{RoleGuest, false, false, false, false, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			u := User{Role: tc.role}
			assert.Equal(t, tc.users, u.CanManageUsers())
			assert.Equal(t, tc.prods, u.CanManageProducts())
			assert.Equal(t, tc.orders, u.CanManageOrders())
			assert.Equal(t, tc.report, u.CanViewReports())
			assert.Equal(t, tc.deleteOrders, u.CanDeleteOrders())
		})
	}
}

func TestHashPassword(t *testing.T) {
	hash := HashPassword("secret")

	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret", hash)
	assert.Equal(t, hash, HashPassword("secret"), "hash must be deterministic")
	assert.NotEqual(t, hash, HashPassword("Secret"))
}

func TestVerifyPassword(t *testing.T) {
	u := User{PasswordHash: HashPassword("secret")}

	assert.True(t, u.VerifyPassword("secret"))
	assert.False(t, u.VerifyPassword("wrong"))
	assert.False(t, u.VerifyPassword(""))
}

func TestUserSerializeRoundTrip(t *testing.T) {
	u := User{
		ID:           2,
		Username:     "jane",
		PasswordHash: HashPassword("pw"),
		FullName:     "Jane Doe",
		Email:        "jane@example.com",
		Role:         RoleManager,
		IsActive:     true,
		LastLogin:    "2026-08-01 10:00:00",
	}

	parsed := ParseUser(u.Serialize())

	assert.Equal(t, u, parsed)
}

func TestSessionPredicates(t *testing.T) {
	session := NewSession()

	t.Run("No session denies everything", func(t *testing.T) {
		assert.False(t, session.LoggedIn())
		assert.False(t, session.CanManageUsers())
		assert.False(t, session.CanManageOrders())
		assert.False(t, session.CanDeleteOrders())
	})

	t.Run("Delegates to the logged-in user", func(t *testing.T) {
		session.Start(&User{Username: "boss", Role: RoleManager})
		assert.True(t, session.LoggedIn())
		assert.True(t, session.CanManageProducts())
		assert.False(t, session.CanManageUsers())
	})

	t.Run("End clears the session", func(t *testing.T) {
		session.End()
		assert.False(t, session.LoggedIn())
		assert.Nil(t, session.Current())
	})
}
