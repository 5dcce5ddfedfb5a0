package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradepoint/oms/internal/identity/domain"
)

type fakeUserRepository struct {
	users  map[int]*domain.User
	nextID int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[int]*domain.User), nextID: 1}
}

func (r *fakeUserRepository) Create(user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	u := *user
	r.users[u.ID] = &u
	return nil
}

func (r *fakeUserRepository) FindByID(id int) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepository) FindByUsername(username string) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepository) FindAll() ([]domain.User, error) {
	all := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, *u)
	}
	return all, nil
}

func (r *fakeUserRepository) Update(user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	u := *user
	r.users[u.ID] = &u
	return nil
}

func (r *fakeUserRepository) Delete(id int) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepository) Count() (int, error) {
	return len(r.users), nil
}

func registeredRepo(t *testing.T) *fakeUserRepository {
	t.Helper()
	repo := newFakeUserRepository()
	register := NewRegisterUserHandler(repo)
	_, err := register.Handle(RegisterUserCommand{
		Username: "jane",
		Password: "secret",
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Role:     domain.RoleManager,
	})
	require.NoError(t, err)
	return repo
}

func TestRegisterUser(t *testing.T) {
	repo := newFakeUserRepository()
	handler := NewRegisterUserHandler(repo)

	user, err := handler.Handle(RegisterUserCommand{
		Username: "jane",
		Password: "secret",
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Role:     domain.RoleEmployee,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.True(t, user.IsActive)
	assert.Equal(t, domain.HashPassword("secret"), user.PasswordHash)

	t.Run("Duplicate username is case-insensitive", func(t *testing.T) {
		_, err := handler.Handle(RegisterUserCommand{
			Username: "JANE",
			Password: "other",
			FullName: "Jane Imposter",
			Email:    "jane2@example.com",
			Role:     domain.RoleEmployee,
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	})
}

func TestLogin(t *testing.T) {
	repo := registeredRepo(t)
	session := domain.NewSession()
	handler := NewLoginUserHandler(repo, session)

	t.Run("Success starts the session and stamps last login", func(t *testing.T) {
		user, err := handler.Handle(LoginUserCommand{Username: "jane", Password: "secret"})
		require.NoError(t, err)
		assert.True(t, session.LoggedIn())
		assert.NotEmpty(t, user.LastLogin)
	})

	t.Run("Username is case-insensitive", func(t *testing.T) {
		_, err := handler.Handle(LoginUserCommand{Username: "JANE", Password: "secret"})
		assert.NoError(t, err)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := handler.Handle(LoginUserCommand{Username: "jane", Password: "nope"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Unknown user gets the same error", func(t *testing.T) {
		_, err := handler.Handle(LoginUserCommand{Username: "ghost", Password: "secret"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Deactivated account cannot log in", func(t *testing.T) {
		u, err := repo.FindByUsername("jane")
		require.NoError(t, err)
		u.IsActive = false
		require.NoError(t, repo.Update(u))

		_, err = handler.Handle(LoginUserCommand{Username: "jane", Password: "secret"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Logout ends the session", func(t *testing.T) {
		handler.Logout()
		assert.False(t, session.LoggedIn())
	})
}

func TestChangePassword(t *testing.T) {
	repo := registeredRepo(t)
	handler := NewChangePasswordHandler(repo)

	t.Run("Requires the old password", func(t *testing.T) {
		err := handler.Handle(ChangePasswordCommand{UserID: 1, OldPassword: "wrong", NewPassword: "next"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Success", func(t *testing.T) {
		err := handler.Handle(ChangePasswordCommand{UserID: 1, OldPassword: "secret", NewPassword: "next"})
		require.NoError(t, err)
		u, _ := repo.FindByID(1)
		assert.True(t, u.VerifyPassword("next"))
	})

	t.Run("Admin reset skips the old password check", func(t *testing.T) {
		err := handler.Handle(ChangePasswordCommand{UserID: 1, NewPassword: "reset", Reset: true})
		require.NoError(t, err)
		u, _ := repo.FindByID(1)
		assert.True(t, u.VerifyPassword("reset"))
	})
}

func TestChangeRole(t *testing.T) {
	repo := registeredRepo(t)
	handler := NewChangeRoleHandler(repo)

	require.NoError(t, handler.Handle(ChangeRoleCommand{UserID: 1, Role: domain.RoleAdmin}))

	u, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)

	assert.ErrorContains(t, handler.Handle(ChangeRoleCommand{UserID: 99, Role: domain.RoleAdmin}), "not found")
}

func TestToggleActiveAndDelete(t *testing.T) {
	repo := registeredRepo(t)

	require.NoError(t, NewToggleActiveHandler(repo).Handle(ToggleActiveCommand{UserID: 1, Active: false}))
	u, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.False(t, u.IsActive)

	require.NoError(t, NewDeleteUserHandler(repo).Handle(DeleteUserCommand{UserID: 1}))
	_, err = repo.FindByID(1)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
