package repositories

// DefaultNamespace prefixes every key written by the repositories.
const DefaultNamespace = "moviedb_"

// Keys builds the persisted key layout under a namespace.
type Keys struct {
	Namespace string
}

// Users is the key of the ordered user list.
func (k Keys) Users() string { return k.Namespace + "users" }

// CurrentUser is the key of the signed-in user.
func (k Keys) CurrentUser() string { return k.Namespace + "current_user" }

// Watchlist is the key of a user's watchlist.
func (k Keys) Watchlist(userID string) string { return k.Namespace + "watchlist_" + userID }

// Ratings is the key of a user's ratings.
func (k Keys) Ratings(userID string) string { return k.Namespace + "ratings_" + userID }
