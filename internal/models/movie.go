package models

// Content types conocidos en el catálogo.
const (
	ContentTypeMovie = "movie"
	ContentTypeTV    = "tv"
)

// MovieRecord es una fila del catálogo (colección movies). Los nombres de
// campo siguen el esquema que escribe el scraper batch.
//
// title NO es único: existen títulos repetidos con otro año/url, por eso la
// identidad real es la url o la tupla (title, release_year, runtime).
type MovieRecord struct {
	MovieID               int      `json:"movie_id" bson:"movie_id"`
	URL                   string   `json:"url" bson:"url"`
	Title                 string   `json:"title" bson:"title"`
	ReleaseYear           int      `json:"release_year" bson:"release_year"`
	Runtime               int      `json:"runtime" bson:"runtime"`
	CountryOfOrigin       int      `json:"country_of_origin" bson:"country_of_origin"`
	ContentType           string   `json:"content_type" bson:"content_type"`
	LetterboxdRating      *float64 `json:"letterboxd_rating" bson:"letterboxd_rating"`
	LetterboxdRatingCount int      `json:"letterboxd_rating_count" bson:"letterboxd_rating_count"`
	Genres                int      `json:"genres" bson:"genres"` // máscara de 19 bits, ver internal/genres
	Poster                string   `json:"poster" bson:"poster"`
}

// IsMovie binariza content_type (feature is_movie del modelo).
func (m *MovieRecord) IsMovie() int {
	if m.ContentType == ContentTypeMovie {
		return 1
	}
	return 0
}
