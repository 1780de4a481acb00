package models

// ViewMode is the mutually exclusive top-level filter context.
type ViewMode string

const (
	ViewHome      ViewMode = "home"
	ViewWatchlist ViewMode = "watchlist"
	ViewTopRated  ViewMode = "top_rated"
)

// Valid reports whether v is a known view mode.
func (v ViewMode) Valid() bool {
	switch v {
	case ViewHome, ViewWatchlist, ViewTopRated:
		return true
	}
	return false
}

// SortOption selects the total order applied to a view.
type SortOption string

const (
	SortRatingDesc SortOption = "rating_desc"
	SortYearDesc   SortOption = "year_desc"
	SortTitleAsc   SortOption = "title_asc"
)

// Valid reports whether s is a known sort option.
func (s SortOption) Valid() bool {
	switch s {
	case SortRatingDesc, SortYearDesc, SortTitleAsc:
		return true
	}
	return false
}

// AllGenres is the genre filter sentinel that disables genre filtering.
const AllGenres = "All"

// TopRatedThreshold is the inclusive canonical rating floor of the top rated view.
const TopRatedThreshold = 8.5
