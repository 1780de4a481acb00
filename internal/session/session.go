// Package session is the explicit session context the presentation layer
// drives: who is signed in, their cached watchlist and ratings, and the
// current view inputs.
package session

import (
	"errors"
	"fmt"
	"math/rand"

	"moviedb/internal/catalog"
	"moviedb/internal/logging"
	"moviedb/internal/models"
	"moviedb/internal/repositories"
	"moviedb/internal/services"
	"moviedb/internal/view"

	"github.com/rs/zerolog"
)

var (
	// ErrNotSignedIn is returned by per-user actions when nobody is signed in.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrRatingOutOfRange is returned by Rate for ratings outside 1-10.
	ErrRatingOutOfRange = fmt.Errorf("rating must be between %d and %d", models.MinUserRating, models.MaxUserRating)
)

// Session is a single-slot signed-in context. It is not safe for concurrent use.
type Session struct {
	accounts *services.AccountService
	userData *services.UserDataService
	movies   []models.Movie
	rng      *rand.Rand
	log      zerolog.Logger

	user *models.User
	data models.UserData
	view view.State
}

// New creates a signed-out session over the seed catalog.
func New(accounts *services.AccountService, userData *services.UserDataService) *Session {
	return &Session{
		accounts: accounts,
		userData: userData,
		movies:   catalog.Movies(),
		log:      logging.Component("session"),
		data:     models.EmptyUserData(),
		view:     view.NewState(),
	}
}

// WithRand sets the random source used by RandomMovie.
func (s *Session) WithRand(rng *rand.Rand) *Session {
	s.rng = rng
	return s
}

// Restore signs back in the persisted user, if any. Call once at startup.
func (s *Session) Restore() error {
	user, err := s.accounts.GetSession()
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	if user == nil {
		return nil
	}
	err = s.signIn(user)
	if errors.Is(err, repositories.ErrUserNotFound) {
		s.log.Warn().Str("user_id", user.ID).Msg("persisted session refers to unknown user, clearing")
		return s.accounts.SetSession(nil)
	}
	return err
}

// Login authenticates and signs the user in.
func (s *Session) Login(identifier, password string) (*models.User, error) {
	user, err := s.accounts.Authenticate(identifier, password)
	if err != nil {
		return nil, err
	}
	if err := s.signIn(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Register creates the account and signs it in.
func (s *Session) Register(username, email, password string) (*models.User, error) {
	user, err := s.accounts.RegisterUser(models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	if err := s.signIn(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Session) signIn(user *models.User) error {
	if err := s.accounts.SetSession(user); err != nil {
		return err
	}
	data, err := s.userData.LoadUserData(user.ID)
	if err != nil {
		return err
	}

	s.user = user
	s.data = data
	s.view = view.NewState()
	s.log.Info().Str("user_id", user.ID).Msg("signed in")
	return nil
}

// Logout clears the persisted session and the cached user data.
func (s *Session) Logout() error {
	if err := s.accounts.SetSession(nil); err != nil {
		return err
	}
	if s.user != nil {
		s.log.Info().Str("user_id", s.user.ID).Msg("signed out")
	}
	s.user = nil
	s.data = models.EmptyUserData()
	return nil
}

// User returns the signed-in user, or nil.
func (s *Session) User() *models.User {
	return s.user
}

// UserData returns the signed-in user's watchlist and ratings.
func (s *Session) UserData() models.UserData {
	return s.data
}

// ToggleWatchlist flips movieID on the signed-in user's watchlist.
func (s *Session) ToggleWatchlist(movieID int) ([]int, error) {
	if s.user == nil {
		return nil, ErrNotSignedIn
	}
	watchlist, err := s.userData.ToggleWatchlist(s.user.ID, movieID)
	if err != nil {
		return nil, err
	}
	s.data.Watchlist = watchlist
	return watchlist, nil
}

// Rate sets the signed-in user's rating for movieID.
func (s *Session) Rate(movieID, rating int) (map[int]int, error) {
	if s.user == nil {
		return nil, ErrNotSignedIn
	}
	if !models.ValidUserRating(rating) {
		return nil, ErrRatingOutOfRange
	}
	ratings, err := s.userData.SetRating(s.user.ID, movieID, rating)
	if err != nil {
		return nil, err
	}
	s.data.Ratings = ratings
	return ratings, nil
}

// ChangeView switches view mode, resetting search and genre.
func (s *Session) ChangeView(mode models.ViewMode) error {
	return s.view.ChangeView(mode)
}

// SetSearch sets the title search text.
func (s *Session) SetSearch(text string) {
	s.view.SetSearch(text)
}

// SetGenre sets the genre filter.
func (s *Session) SetGenre(genre string) {
	s.view.SetGenre(genre)
}

// SetSort sets the sort order.
func (s *Session) SetSort(option models.SortOption) error {
	return s.view.SetSort(option)
}

// Query returns the current view inputs.
func (s *Session) Query() view.Query {
	return s.view.Query()
}

// Title returns the heading for the current view.
func (s *Session) Title() string {
	return view.PageTitle(s.view.Query().Mode)
}

// Movies computes the current view.
func (s *Session) Movies() []models.Movie {
	return view.ComputeView(s.movies, s.view.Query(), s.data.Watchlist, s.data.Ratings)
}

// Cards computes the current view decorated with the user's data.
func (s *Session) Cards() []view.Card {
	return view.Decorate(s.Movies(), s.data.Watchlist, s.data.Ratings)
}

// Genres returns the genre filter options.
func (s *Session) Genres() []string {
	return catalog.Genres()
}

// RandomMovie picks any catalog movie, ignoring the current filters.
func (s *Session) RandomMovie() models.Movie {
	return catalog.Random(s.rng)
}
