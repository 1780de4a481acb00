package services

import (
	"fmt"

	"moviedb/internal/logging"
	"moviedb/internal/models"
	"moviedb/internal/repositories"

	"github.com/rs/zerolog"
)

// UserDataService owns per-user watchlists and ratings.
//
// It is storage only: callers must make sure userID belongs to the signed-in
// user. Nothing here checks that.
type UserDataService struct {
	repo repositories.UserDataRepository
	log  zerolog.Logger
}

// NewUserDataService creates a new UserDataService.
func NewUserDataService(repo repositories.UserDataRepository) *UserDataService {
	return &UserDataService{
		repo: repo,
		log:  logging.Component("userdata"),
	}
}

// LoadUserData returns the stored watchlist and ratings, empty when nothing is stored.
func (s *UserDataService) LoadUserData(userID string) (models.UserData, error) {
	watchlist, err := s.repo.GetWatchlist(userID)
	if err != nil {
		return models.UserData{}, err
	}
	ratings, err := s.repo.GetRatings(userID)
	if err != nil {
		return models.UserData{}, err
	}

	data := models.EmptyUserData()
	data.Watchlist = append(data.Watchlist, watchlist...)
	for id, r := range ratings {
		data.Ratings[id] = r
	}
	return data, nil
}

// ToggleWatchlist removes movieID if present, appends it otherwise, and returns the new list.
func (s *UserDataService) ToggleWatchlist(userID string, movieID int) ([]int, error) {
	current, err := s.repo.GetWatchlist(userID)
	if err != nil {
		return nil, err
	}

	updated := make([]int, 0, len(current)+1)
	removed := false
	for _, id := range current {
		if id == movieID {
			removed = true
			continue
		}
		updated = append(updated, id)
	}
	if !removed {
		updated = append(updated, movieID)
	}

	if err := s.repo.SaveWatchlist(userID, updated); err != nil {
		return nil, fmt.Errorf("failed to toggle movie %d: %w", movieID, err)
	}

	s.log.Debug().Str("user_id", userID).Int("movie_id", movieID).Bool("added", !removed).Msg("watchlist toggled")
	return updated, nil
}

// SetRating stores rating for movieID verbatim, replacing any earlier rating,
// and returns the full ratings map. The value is not range checked here.
func (s *UserDataService) SetRating(userID string, movieID, rating int) (map[int]int, error) {
	ratings, err := s.repo.GetRatings(userID)
	if err != nil {
		return nil, err
	}

	updated := make(map[int]int, len(ratings)+1)
	for id, r := range ratings {
		updated[id] = r
	}
	updated[movieID] = rating

	if err := s.repo.SaveRatings(userID, updated); err != nil {
		return nil, fmt.Errorf("failed to rate movie %d: %w", movieID, err)
	}

	s.log.Debug().Str("user_id", userID).Int("movie_id", movieID).Int("rating", rating).Msg("rating set")
	return updated, nil
}
