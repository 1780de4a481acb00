package repositories

import (
	"fmt"

	"moviedb/internal/models"
	"moviedb/internal/storage"
)

// KVSessionRepository stores the signed-in user under Keys.CurrentUser.
type KVSessionRepository struct {
	store storage.Store
	keys  Keys
}

// NewKVSessionRepository creates a new instance of KVSessionRepository.
func NewKVSessionRepository(store storage.Store, keys Keys) *KVSessionRepository {
	return &KVSessionRepository{
		store: store,
		keys:  keys,
	}
}

// Get returns the persisted user, or nil when nobody is signed in.
func (r *KVSessionRepository) Get() (*models.User, error) {
	var user models.User
	found, err := storage.GetJSON(r.store, r.keys.CurrentUser(), &user)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

// Set persists user as the signed-in user.
func (r *KVSessionRepository) Set(user *models.User) error {
	if err := storage.SetJSON(r.store, r.keys.CurrentUser(), user); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear removes the signed-in user.
func (r *KVSessionRepository) Clear() error {
	if err := r.store.Remove(r.keys.CurrentUser()); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
