package models

// UserRatingRecord es lo que guarda el scraper por (usuario, película).
type UserRatingRecord struct {
	MovieID    int     `json:"movie_id" bson:"movie_id"`
	URL        string  `json:"url" bson:"url"`
	UserRating float64 `json:"user_rating" bson:"user_rating"` // escala 0.5 .. 5.0 en pasos de 0.5
	Liked      bool    `json:"liked" bson:"liked"`             // no se usa como feature
	Username   string  `json:"username" bson:"username"`
}

// ProcessedUserRow es el join de UserRatingRecord con MovieRecord sobre
// (movie_id, url), más el diferencial contra el rating agregado. Es la
// unidad de entrenamiento y de estadísticas.
type ProcessedUserRow struct {
	MovieRecord `bson:",inline"`
	UserRating  float64  `json:"user_rating" bson:"user_rating"`
	Liked       bool     `json:"liked" bson:"liked"`
	Username    string   `json:"username" bson:"username"`
	RatingDiff  *float64 `json:"rating_differential" bson:"rating_differential"`
}

// UserProfile agrupa las filas procesadas de un usuario junto con las
// películas vistas pero no puntuadas (cuentan como vistas, no entrenan).
type UserProfile struct {
	Username string             `json:"username"`
	Rows     []ProcessedUserRow `json:"rows"`
	Unrated  []int              `json:"unrated"` // movie_ids loggeados sin rating
}
