package domain

import (
	"errors"
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("username already exists")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Role is the access level of a user account.
type Role string

const (
	RoleAdmin    Role = "Administrator"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
	RoleGuest    Role = "Guest"
)

// ParseRole maps a stored role string; unknown values fall back to Guest.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleEmployee:
		return Role(s)
	default:
		return RoleGuest
	}
}

// User represents an application account.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	IsActive     bool   `json:"is_active"`
	LastLogin    string `json:"last_login"`
}

// Permission predicates consulted by the menus and by the order engine's
// administrative delete.

func (u *User) CanManageUsers() bool {
	return u.Role == RoleAdmin
}

func (u *User) CanManageProducts() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}

func (u *User) CanManageOrders() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager || u.Role == RoleEmployee
}

func (u *User) CanViewReports() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}

func (u *User) CanDeleteOrders() bool {
	return u.Role == RoleAdmin
}

// VerifyPassword checks a plaintext password against the stored hash.
func (u *User) VerifyPassword(password string) bool {
	return HashPassword(password) == u.PasswordHash
}

// TouchLastLogin stamps the account with the current time.
func (u *User) TouchLastLogin() {
	u.LastLogin = time.Now().Format("2006-01-02 15:04:05")
}

// IsValid checks the user's field-level invariants.
func (u *User) IsValid() bool {
	return u.Username != "" &&
		u.PasswordHash != "" &&
		u.FullName != "" &&
		emailPattern.MatchString(u.Email)
}

// HashPassword is a deliberately weak placeholder hash kept for
// compatibility with the stored account format. It is not a security
// boundary.
func HashPassword(password string) string {
	h := fnv.New64a()
	h.Write([]byte(password + "salt"))
	return strconv.FormatUint(h.Sum64(), 10)
}

// Serialize renders the user as one pipe-delimited record.
func (u *User) Serialize() string {
	active := "0"
	if u.IsActive {
		active = "1"
	}
	return strings.Join([]string{
		strconv.Itoa(u.ID),
		u.Username,
		u.PasswordHash,
		u.FullName,
		u.Email,
		string(u.Role),
		active,
		u.LastLogin,
	}, "|")
}

// ParseUser decodes one pipe-delimited record; short or malformed records
// yield a zero user.
func ParseUser(line string) User {
	parts := strings.Split(line, "|")
	var u User
	if len(parts) < 8 {
		return u
	}
	u.ID = cast.ToInt(parts[0])
	u.Username = parts[1]
	u.PasswordHash = parts[2]
	u.FullName = parts[3]
	u.Email = parts[4]
	u.Role = ParseRole(parts[5])
	u.IsActive = parts[6] == "1"
	u.LastLogin = parts[7]
	return u
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(user *User) error
	FindByID(id int) (*User, error)
	FindByUsername(username string) (*User, error)
	FindAll() ([]User, error)
	Update(user *User) error
	Delete(id int) error
	Count() (int, error)
}
