package models

// Movie is a catalog entry. Movies are seeded once and never modified.
type Movie struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Year           int      `json:"year"`
	Rating         float64  `json:"rating"` // canonical rating, one fraction digit
	Genres         []string `json:"genres"`
	Duration       string   `json:"duration"`
	Description    string   `json:"description"`
	Cast           []string `json:"cast"`
	PosterGradient string   `json:"posterGradient"`
}

// HasGenre reports whether the movie is tagged with the exact genre.
func (m Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if g == genre {
			return true
		}
	}
	return false
}
