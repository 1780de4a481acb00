package models

// Rating bounds accepted from users.
const (
	MinUserRating = 1
	MaxUserRating = 10
)

// UserData is the per-user watchlist and personal ratings.
type UserData struct {
	Watchlist []int       `json:"watchlist"`
	Ratings   map[int]int `json:"ratings"` // movie id -> rating
}

// EmptyUserData returns a UserData with a non-nil empty watchlist and ratings map.
func EmptyUserData() UserData {
	return UserData{
		Watchlist: []int{},
		Ratings:   map[int]int{},
	}
}

// InWatchlist reports whether movieID is on the watchlist.
func (d UserData) InWatchlist(movieID int) bool {
	for _, id := range d.Watchlist {
		if id == movieID {
			return true
		}
	}
	return false
}

// ValidUserRating reports whether r is within [MinUserRating, MaxUserRating].
func ValidUserRating(r int) bool {
	return r >= MinUserRating && r <= MaxUserRating
}
