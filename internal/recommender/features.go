package recommender

import (
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/genres"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
)

// NumFeatures es el ancho fijo de la matriz: 5 numéricas + 19 géneros +
// is_movie. El orden es idéntico en entrenamiento e inferencia; si alguna
// vez difiere, el modelo predice basura sin avisar, por eso el preparador
// es el único punto que arma filas.
const NumFeatures = 5 + genres.NumGenres + 1

// MinTrainingRows es el mínimo de filas procesadas para entrenar un modelo
// personalizado. Con menos, el entrenamiento rechaza el perfil; el modelo
// general no tiene mínimo porque no entrena nada por usuario.
const MinTrainingRows = 5

// FeatureNames devuelve los nombres de columna en orden.
func FeatureNames() []string {
	names := []string{
		"release_year",
		"runtime",
		"country_of_origin",
		"letterboxd_rating",
		"letterboxd_rating_count",
	}
	for _, g := range genres.Labels {
		names = append(names, "is_"+g)
	}
	return append(names, "is_movie")
}

// movieFeatures arma la fila de features de una película del catálogo.
// Una fila sin rating agregado es drift de esquema (snapshot de catálogo
// viejo), no un caso recuperable acá.
func movieFeatures(m *models.MovieRecord) ([]float64, error) {
	if m.LetterboxdRating == nil {
		return nil, &MissingFeatureError{Field: "letterboxd_rating", URL: m.URL}
	}

	row := make([]float64, 0, NumFeatures)
	row = append(row,
		float64(m.ReleaseYear),
		float64(m.Runtime),
		float64(m.CountryOfOrigin),
		*m.LetterboxdRating,
		float64(m.LetterboxdRatingCount),
	)
	flags := genres.Flags(m.Genres)
	row = append(row, flags[:]...)
	return append(row, float64(m.IsMovie())), nil
}

// PrepareMovieMatrix arma la matriz de inferencia para un pool de películas.
func PrepareMovieMatrix(pool []models.MovieRecord) ([][]float64, error) {
	X := make([][]float64, 0, len(pool))
	for i := range pool {
		row, err := movieFeatures(&pool[i])
		if err != nil {
			return nil, err
		}
		X = append(X, row)
	}
	return X, nil
}

// PrepareTrainingMatrix arma la matriz de entrenamiento y el target
// user_rating a partir de las filas procesadas del usuario. Mismo contrato
// de columnas que PrepareMovieMatrix.
func PrepareTrainingMatrix(rows []models.ProcessedUserRow) ([][]float64, []float64, error) {
	X := make([][]float64, 0, len(rows))
	y := make([]float64, 0, len(rows))
	for i := range rows {
		feat, err := movieFeatures(&rows[i].MovieRecord)
		if err != nil {
			return nil, nil, err
		}
		X = append(X, feat)
		y = append(y, rows[i].UserRating)
	}
	return X, y, nil
}
