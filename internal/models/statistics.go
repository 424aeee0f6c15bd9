package models

import "time"

// MeanStd es un par media / desviación estándar redondeado a 3 decimales.
type MeanStd struct {
	Mean any `json:"mean" bson:"mean"`
	Std  any `json:"std,omitempty" bson:"std,omitempty"`
}

// GenreAverage es el promedio de ratings del usuario dentro de un género.
// Los valores son float64 o el string "N/A" cuando el usuario no tiene
// películas de ese género.
type GenreAverage struct {
	MeanUserRating any `json:"mean_user_rating" bson:"mean_user_rating"`
	MeanRatingDiff any `json:"mean_rating_differential" bson:"mean_rating_differential"`
}

// UserStatistics son las estadísticas simples del perfil.
type UserStatistics struct {
	UserRating            MeanStd                 `json:"user_rating" bson:"user_rating"`
	LetterboxdRating      MeanStd                 `json:"letterboxd_rating" bson:"letterboxd_rating"`
	RatingDiff            MeanStd                 `json:"rating_differential" bson:"rating_differential"`
	LetterboxdRatingCount MeanStd                 `json:"letterboxd_rating_count" bson:"letterboxd_rating_count"`
	GenreAverages         map[string]GenreAverage `json:"genre_averages" bson:"genre_averages"`
}

// UserStatisticsDoc es el documento persistido en user-statistics, usado
// para calcular percentiles contra la población.
type UserStatisticsDoc struct {
	Username                  string    `json:"username" bson:"username"`
	MeanUserRating            float64   `json:"mean_user_rating" bson:"mean_user_rating"`
	MeanLetterboxdRating      float64   `json:"mean_letterboxd_rating" bson:"mean_letterboxd_rating"`
	MeanRatingDiff            float64   `json:"mean_rating_differential" bson:"mean_rating_differential"`
	MeanLetterboxdRatingCount float64   `json:"mean_letterboxd_rating_count" bson:"mean_letterboxd_rating_count"`
	UpdatedAt                 time.Time `json:"updatedAt" bson:"updatedAt"`
}

// StatisticsResponse es la respuesta completa de /api/get-statistics.
type StatisticsResponse struct {
	SimpleStats  UserStatistics     `json:"simple_stats"`
	Distribution RatingDistribution `json:"distribution"`
	Percentiles  map[string]float64 `json:"percentiles"`
}

// RatingDistribution alimenta los histogramas del frontend.
type RatingDistribution struct {
	UserRatingValues       []float64 `json:"user_rating_values"`
	LetterboxdRatingValues []float64 `json:"letterboxd_rating_values"`
}

// CompatibilityResult es la respuesta de /api/get-compatibility.
type CompatibilityResult struct {
	Username1          string `json:"username_1"`
	Username2          string `json:"username_2"`
	CompatibilityScore int    `json:"compatibility_score"`
}
