// Package view derives the ordered list of movies to render from the catalog
// and the current view inputs. Everything here is recomputed from scratch on
// each call and never mutates its inputs.
package view

import (
	"cmp"
	"slices"
	"strings"

	"moviedb/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Query is the set of view inputs chosen by the user.
type Query struct {
	Mode   models.ViewMode
	Search string
	Genre  string
	Sort   models.SortOption
}

// Card is a movie decorated with the signed-in user's data.
type Card struct {
	models.Movie
	InWatchlist bool
	UserRating  int // 0 when unrated
}

// ComputeView filters by view mode, then title search, then genre, and stable-sorts the result.
// ratings is accepted for symmetry with Decorate; no filter depends on it.
func ComputeView(catalog []models.Movie, q Query, watchlist []int, ratings map[int]int) []models.Movie {
	inWatchlist := make(map[int]bool, len(watchlist))
	for _, id := range watchlist {
		inWatchlist[id] = true
	}
	search := strings.ToLower(q.Search)

	result := make([]models.Movie, 0, len(catalog))
	for _, m := range catalog {
		switch q.Mode {
		case models.ViewWatchlist:
			if !inWatchlist[m.ID] {
				continue
			}
		case models.ViewTopRated:
			if m.Rating < models.TopRatedThreshold {
				continue
			}
		}
		if search != "" && !strings.Contains(strings.ToLower(m.Title), search) {
			continue
		}
		if q.Genre != "" && q.Genre != models.AllGenres && !m.HasGenre(q.Genre) {
			continue
		}
		result = append(result, m)
	}

	sortMovies(result, q.Sort)
	return result
}

func sortMovies(movies []models.Movie, option models.SortOption) {
	switch option {
	case models.SortRatingDesc:
		slices.SortStableFunc(movies, func(a, b models.Movie) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	case models.SortYearDesc:
		slices.SortStableFunc(movies, func(a, b models.Movie) int {
			return cmp.Compare(b.Year, a.Year)
		})
	case models.SortTitleAsc:
		// Collators keep scratch buffers, so each call gets its own.
		c := collate.New(language.English)
		slices.SortStableFunc(movies, func(a, b models.Movie) int {
			return c.CompareString(a.Title, b.Title)
		})
	}
}

// Decorate attaches watchlist membership and personal ratings to each movie.
func Decorate(movies []models.Movie, watchlist []int, ratings map[int]int) []Card {
	inWatchlist := make(map[int]bool, len(watchlist))
	for _, id := range watchlist {
		inWatchlist[id] = true
	}

	cards := make([]Card, len(movies))
	for i, m := range movies {
		cards[i] = Card{
			Movie:       m,
			InWatchlist: inWatchlist[m.ID],
			UserRating:  ratings[m.ID],
		}
	}
	return cards
}
