package repositories

import (
	"fmt"

	"moviedb/internal/models"
	"moviedb/internal/storage"

	"github.com/google/uuid"
)

// KVUserRepository stores all users as one ordered list under Keys.Users.
type KVUserRepository struct {
	store storage.Store
	keys  Keys
}

// NewKVUserRepository creates a new instance of KVUserRepository.
func NewKVUserRepository(store storage.Store, keys Keys) *KVUserRepository {
	return &KVUserRepository{
		store: store,
		keys:  keys,
	}
}

// GetAll returns every user in registration order.
func (r *KVUserRepository) GetAll() ([]models.User, error) {
	users := []models.User{}
	if _, err := storage.GetJSON(r.store, r.keys.Users(), &users); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}

// Create appends user to the list and persists it.
func (r *KVUserRepository) Create(user *models.User) error {
	users, err := r.GetAll()
	if err != nil {
		return err
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	for _, u := range users {
		if u.ID == user.ID {
			return fmt.Errorf("user with ID %s already exists", user.ID)
		}
	}

	users = append(users, *user)
	if err := storage.SetJSON(r.store, r.keys.Users(), users); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByUsername retrieves the user with the exact username.
func (r *KVUserRepository) GetByUsername(username string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Username == username })
}

// GetByEmail retrieves the user with the exact email.
func (r *KVUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email })
}

// GetByID retrieves the user with the given ID.
func (r *KVUserRepository) GetByID(id string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.ID == id })
}

func (r *KVUserRepository) find(match func(models.User) bool) (*models.User, error) {
	users, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if match(users[i]) {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}
