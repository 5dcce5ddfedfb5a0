package repository

import (
	"fmt"
	"strings"

	"github.com/tradepoint/oms/internal/identity/domain"
	"github.com/tradepoint/oms/pkg/logger"
	"github.com/tradepoint/oms/pkg/textstore"
)

const usersFile = "users.txt"

// FileUserRepository keeps the user collection in memory, loaded wholesale
// at construction and rewritten wholesale after every mutation. An empty
// store is seeded with a default admin account.
type FileUserRepository struct {
	store  *textstore.Store
	users  []domain.User
	nextID int
}

func NewFileUserRepository(store *textstore.Store) (*FileUserRepository, error) {
	r := &FileUserRepository{store: store, nextID: 1}
	if err := r.load(); err != nil {
		return nil, err
	}
	if len(r.users) == 0 {
		r.seedDefaultAdmin()
	}
	return r, nil
}

func (r *FileUserRepository) load() error {
	lines, err := r.store.Load(usersFile)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	r.users = r.users[:0]
	for _, line := range lines {
		u := domain.ParseUser(line)
		if u.ID == 0 {
			continue
		}
		r.users = append(r.users, u)
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}
	logger.Info().Int("count", len(r.users)).Msg("Loaded users")
	return nil
}

func (r *FileUserRepository) seedDefaultAdmin() {
	admin := domain.User{
		ID:           r.nextID,
		Username:     "admin",
		PasswordHash: domain.HashPassword("admin"),
		FullName:     "System Administrator",
		Email:        "admin@orderms.com",
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	r.nextID++
	r.users = append(r.users, admin)
	r.flush()
	logger.Info().Msg("Created default admin user")
}

func (r *FileUserRepository) flush() {
	lines := make([]string, 0, len(r.users))
	for i := range r.users {
		lines = append(lines, r.users[i].Serialize())
	}
	if err := r.store.Save(usersFile, lines); err != nil {
		logger.Error().Err(err).Msg("Failed to save users")
	}
}

func (r *FileUserRepository) Create(user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, *user)
	r.flush()
	return nil
}

func (r *FileUserRepository) FindByID(id int) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *FileUserRepository) FindByUsername(username string) (*domain.User, error) {
	lower := strings.ToLower(username)
	for i := range r.users {
		if strings.ToLower(r.users[i].Username) == lower {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *FileUserRepository) FindAll() ([]domain.User, error) {
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *FileUserRepository) Update(user *domain.User) error {
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = *user
			r.flush()
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *FileUserRepository) Delete(id int) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			r.flush()
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *FileUserRepository) Count() (int, error) {
	return len(r.users), nil
}
