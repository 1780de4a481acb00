package repositories

import (
	"fmt"

	"moviedb/internal/storage"
)

// KVUserDataRepository stores watchlists and ratings under per-user keys.
type KVUserDataRepository struct {
	store storage.Store
	keys  Keys
}

// NewKVUserDataRepository creates a new instance of KVUserDataRepository.
func NewKVUserDataRepository(store storage.Store, keys Keys) *KVUserDataRepository {
	return &KVUserDataRepository{
		store: store,
		keys:  keys,
	}
}

// GetWatchlist returns the user's watchlist, empty when none was saved.
func (r *KVUserDataRepository) GetWatchlist(userID string) ([]int, error) {
	watchlist := []int{}
	if _, err := storage.GetJSON(r.store, r.keys.Watchlist(userID), &watchlist); err != nil {
		return nil, fmt.Errorf("failed to load watchlist for user %s: %w", userID, err)
	}
	return watchlist, nil
}

// SaveWatchlist persists the user's watchlist.
func (r *KVUserDataRepository) SaveWatchlist(userID string, watchlist []int) error {
	if watchlist == nil {
		watchlist = []int{}
	}
	if err := storage.SetJSON(r.store, r.keys.Watchlist(userID), watchlist); err != nil {
		return fmt.Errorf("failed to save watchlist for user %s: %w", userID, err)
	}
	return nil
}

// GetRatings returns the user's ratings, empty when none were saved.
func (r *KVUserDataRepository) GetRatings(userID string) (map[int]int, error) {
	ratings := map[int]int{}
	if _, err := storage.GetJSON(r.store, r.keys.Ratings(userID), &ratings); err != nil {
		return nil, fmt.Errorf("failed to load ratings for user %s: %w", userID, err)
	}
	return ratings, nil
}

// SaveRatings persists the user's ratings. Movie ids are written as string keys.
func (r *KVUserDataRepository) SaveRatings(userID string, ratings map[int]int) error {
	if ratings == nil {
		ratings = map[int]int{}
	}
	if err := storage.SetJSON(r.store, r.keys.Ratings(userID), ratings); err != nil {
		return fmt.Errorf("failed to save ratings for user %s: %w", userID, err)
	}
	return nil
}
