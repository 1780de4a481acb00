package repositories

import (
	"errors"

	"moviedb/internal/models"
)

// ErrUserNotFound is returned by lookups that match no user.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll() ([]models.User, error)
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}

// SessionRepository persists the signed-in user pointer.
type SessionRepository interface {
	Get() (*models.User, error)
	Set(user *models.User) error
	Clear() error
}

// UserDataRepository persists per-user watchlists and ratings.
type UserDataRepository interface {
	GetWatchlist(userID string) ([]int, error)
	SaveWatchlist(userID string, watchlist []int) error
	GetRatings(userID string) (map[int]int, error)
	SaveRatings(userID string, ratings map[int]int) error
}
