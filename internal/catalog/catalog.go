// Package catalog holds the static seed catalog.
package catalog

import (
	"math/rand"

	"moviedb/internal/models"
)

// genres lists the genre filter options, sentinel first.
var genres = []string{
	models.AllGenres, "Action", "Drama", "Comedy", "Sci-Fi", "Thriller", "Adventure", "Fantasy", "Crime",
}

var movies = []models.Movie{
	{
		ID:             1,
		Title:          "Inception",
		Year:           2010,
		Rating:         8.8,
		Genres:         []string{"Action", "Sci-Fi", "Thriller"},
		Duration:       "2h 28m",
		Description:    "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
		Cast:           []string{"Leonardo DiCaprio", "Joseph Gordon-Levitt", "Elliot Page"},
		PosterGradient: "from-blue-600 to-gray-900",
	},
	{
		ID:             2,
		Title:          "The Dark Knight",
		Year:           2008,
		Rating:         9.0,
		Genres:         []string{"Action", "Crime", "Drama"},
		Duration:       "2h 32m",
		Description:    "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
		Cast:           []string{"Christian Bale", "Heath Ledger", "Aaron Eckhart"},
		PosterGradient: "from-gray-700 to-black",
	},
	{
		ID:             3,
		Title:          "Interstellar",
		Year:           2014,
		Rating:         8.6,
		Genres:         []string{"Adventure", "Drama", "Sci-Fi"},
		Duration:       "2h 49m",
		Description:    "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
		Cast:           []string{"Matthew McConaughey", "Anne Hathaway", "Jessica Chastain"},
		PosterGradient: "from-indigo-900 to-purple-900",
	},
	{
		ID:             4,
		Title:          "Parasite",
		Year:           2019,
		Rating:         8.5,
		Genres:         []string{"Drama", "Thriller", "Comedy"},
		Duration:       "2h 12m",
		Description:    "Greed and class discrimination threaten the newly formed symbiotic relationship between the wealthy Park family and the destitute Kim clan.",
		Cast:           []string{"Kang-ho Song", "Sun-kyun Lee", "Yeo-jeong Cho"},
		PosterGradient: "from-green-800 to-black",
	},
	{
		ID:             5,
		Title:          "The Matrix",
		Year:           1999,
		Rating:         8.7,
		Genres:         []string{"Action", "Sci-Fi"},
		Duration:       "2h 16m",
		Description:    "When a beautiful stranger leads computer hacker Neo to a forbidding underworld, he discovers the shocking truth--the life he knows is the elaborate deception of an evil cyber-intelligence.",
		Cast:           []string{"Keanu Reeves", "Laurence Fishburne", "Carrie-Anne Moss"},
		PosterGradient: "from-green-600 to-gray-900",
	},
	{
		ID:             6,
		Title:          "Pulp Fiction",
		Year:           1994,
		Rating:         8.9,
		Genres:         []string{"Crime", "Drama"},
		Duration:       "2h 34m",
		Description:    "The lives of two mob hitmen, a boxer, a gangster and his wife, and a pair of diner bandits intertwine in four tales of violence and redemption.",
		Cast:           []string{"John Travolta", "Uma Thurman", "Samuel L. Jackson"},
		PosterGradient: "from-red-800 to-yellow-900",
	},
	{
		ID:             7,
		Title:          "The Grand Budapest Hotel",
		Year:           2014,
		Rating:         8.1,
		Genres:         []string{"Adventure", "Comedy", "Crime"},
		Duration:       "1h 39m",
		Description:    "A writer encounters the owner of an aging high-class hotel, who tells him of his early years serving as a lobby boy in the hotel's glorious years under an exceptional concierge.",
		Cast:           []string{"Ralph Fiennes", "F. Murray Abraham", "Mathieu Amalric"},
		PosterGradient: "from-pink-700 to-purple-800",
	},
	{
		ID:             8,
		Title:          "Dune: Part Two",
		Year:           2024,
		Rating:         8.6,
		Genres:         []string{"Action", "Adventure", "Sci-Fi"},
		Duration:       "2h 46m",
		Description:    "Paul Atreides unites with Chani and the Fremen while on a warpath of revenge against the conspirators who destroyed his family.",
		Cast:           []string{"Timothée Chalamet", "Zendaya", "Rebecca Ferguson"},
		PosterGradient: "from-orange-700 to-yellow-900",
	},
	{
		ID:             9,
		Title:          "Spirited Away",
		Year:           2001,
		Rating:         8.6,
		Genres:         []string{"Adventure", "Family", "Fantasy"},
		Duration:       "2h 5m",
		Description:    "During her family's move to the suburbs, a sullen 10-year-old girl wanders into a world ruled by gods, witches, and spirits, and where humans are changed into beasts.",
		Cast:           []string{"Daveigh Chase", "Suzanne Pleshette", "Miyu Irino"},
		PosterGradient: "from-teal-600 to-blue-800",
	},
	{
		ID:             10,
		Title:          "Fight Club",
		Year:           1999,
		Rating:         8.8,
		Genres:         []string{"Drama"},
		Duration:       "2h 19m",
		Description:    "An insomniac office worker and a devil-may-care soap maker form an underground fight club that evolves into much more.",
		Cast:           []string{"Brad Pitt", "Edward Norton", "Meat Loaf"},
		PosterGradient: "from-pink-900 to-red-900",
	},
	{
		ID:             11,
		Title:          "Gladiator",
		Year:           2000,
		Rating:         8.5,
		Genres:         []string{"Action", "Adventure", "Drama"},
		Duration:       "2h 35m",
		Description:    "A former Roman General sets out to exact vengeance against the corrupt emperor who murdered his family and sent him into slavery.",
		Cast:           []string{"Russell Crowe", "Joaquin Phoenix", "Connie Nielsen"},
		PosterGradient: "from-yellow-700 to-orange-900",
	},
	{
		ID:             12,
		Title:          "Avengers: Endgame",
		Year:           2019,
		Rating:         8.4,
		Genres:         []string{"Action", "Adventure", "Drama"},
		Duration:       "3h 1m",
		Description:    "After the devastating events of Infinity War, the universe is in ruins. With the help of remaining allies, the Avengers assemble once more in order to reverse Thanos' actions.",
		Cast:           []string{"Robert Downey Jr.", "Chris Evans", "Mark Ruffalo"},
		PosterGradient: "from-purple-800 to-blue-900",
	},
}

// Movies returns the catalog in seed order. The returned slice is a copy;
// the genre and cast slices of each movie are shared and must not be modified.
func Movies() []models.Movie {
	out := make([]models.Movie, len(movies))
	copy(out, movies)
	return out
}

// Genres returns the genre filter options with the "All" sentinel first.
func Genres() []string {
	out := make([]string, len(genres))
	copy(out, genres)
	return out
}

// ByID looks up a catalog movie.
func ByID(id int) (models.Movie, bool) {
	for _, m := range movies {
		if m.ID == id {
			return m, true
		}
	}
	return models.Movie{}, false
}

// Random picks a movie uniformly from the catalog.
func Random(rng *rand.Rand) models.Movie {
	if rng == nil {
		return movies[rand.Intn(len(movies))]
	}
	return movies[rng.Intn(len(movies))]
}
