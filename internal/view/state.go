package view

import (
	"fmt"

	"moviedb/internal/models"
)

// State is the calling layer's current view inputs. The zero value is not
// ready for use; start from NewState.
type State struct {
	mode   models.ViewMode
	search string
	genre  string
	sort   models.SortOption
}

// NewState returns the initial inputs: home view, no search, all genres, rating descending.
func NewState() State {
	return State{
		mode:  models.ViewHome,
		genre: models.AllGenres,
		sort:  models.SortRatingDesc,
	}
}

// ChangeView switches the view mode and resets search and genre.
// Entering the top rated view also forces rating descending order.
func (s *State) ChangeView(mode models.ViewMode) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown view mode %q", mode)
	}
	s.mode = mode
	s.search = ""
	s.genre = models.AllGenres
	if mode == models.ViewTopRated {
		s.sort = models.SortRatingDesc
	}
	return nil
}

// SetSearch sets the title search text.
func (s *State) SetSearch(text string) {
	s.search = text
}

// SetGenre sets the genre filter; an empty genre means all.
func (s *State) SetGenre(genre string) {
	if genre == "" {
		genre = models.AllGenres
	}
	s.genre = genre
}

// SetSort sets the sort order.
func (s *State) SetSort(option models.SortOption) error {
	if !option.Valid() {
		return fmt.Errorf("unknown sort option %q", option)
	}
	s.sort = option
	return nil
}

// Query returns the inputs for ComputeView.
func (s State) Query() Query {
	return Query{
		Mode:   s.mode,
		Search: s.search,
		Genre:  s.genre,
		Sort:   s.sort,
	}
}

// PageTitle is the heading shown above a view.
func PageTitle(mode models.ViewMode) string {
	switch mode {
	case models.ViewWatchlist:
		return "Your Watchlist"
	case models.ViewTopRated:
		return "Top Rated Movies"
	default:
		return "Popular Movies"
	}
}
