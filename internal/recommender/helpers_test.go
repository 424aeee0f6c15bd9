package recommender

import (
	"fmt"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/genres"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
)

// mkMovie arma una película de catálogo para tests.
func mkMovie(id int, title string, year, runtime int, rating float64, count int, genreLabels ...string) models.MovieRecord {
	selected := make(map[string]bool, len(genreLabels))
	for _, g := range genreLabels {
		selected[g] = true
	}
	return models.MovieRecord{
		MovieID:               id,
		URL:                   fmt.Sprintf("/film/movie-%d/", id),
		Title:                 title,
		ReleaseYear:           year,
		Runtime:               runtime,
		CountryOfOrigin:       1,
		ContentType:           models.ContentTypeMovie,
		LetterboxdRating:      &rating,
		LetterboxdRatingCount: count,
		Genres:                genres.Encode(selected),
		Poster:                fmt.Sprintf("poster-%d.jpg", id),
	}
}

// mkRow arma una fila procesada (película + rating del usuario).
func mkRow(username string, m models.MovieRecord, userRating float64) models.ProcessedUserRow {
	row := models.ProcessedUserRow{
		MovieRecord: m,
		UserRating:  userRating,
		Username:    username,
	}
	if m.LetterboxdRating != nil {
		diff := userRating - *m.LetterboxdRating
		row.RatingDiff = &diff
	}
	return row
}

// allFilters son opciones que dejan pasar cualquier película del catálogo
// de test; cada caso aprieta lo que le interesa.
func allFilters() FilterOptions {
	genreSet := make(map[string]bool, len(genres.Labels))
	for _, g := range genres.Labels {
		genreSet[g] = true
	}
	return FilterOptions{
		Genres:         genreSet,
		ContentTypes:   map[string]bool{models.ContentTypeMovie: true, models.ContentTypeTV: true},
		MinReleaseYear: 1900,
		MaxReleaseYear: 2100,
		MinRuntime:     0,
		MaxRuntime:     1000,
	}
}

// stubModel devuelve predicciones fijas, en orden.
type stubModel struct {
	pred []float64
}

func (s *stubModel) Predict(X [][]float64) []float64 {
	return s.pred[:len(X)]
}
