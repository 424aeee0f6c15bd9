package models

// RecommendationItem es la unidad de salida del scorer. predicted_rating va
// como string con 2 decimales fijos para que el frontend no sufra drift de
// formato de floats.
type RecommendationItem struct {
	Title           string `json:"title"`
	Poster          string `json:"poster"`
	ReleaseYear     int    `json:"release_year"`
	PredictedRating string `json:"predicted_rating"`
	URL             string `json:"url"`
}

// RecommendationSet son las recomendaciones rankeadas de un usuario.
type RecommendationSet struct {
	Username string               `json:"username"`
	Items    []RecommendationItem `json:"recommendations"`
}

// ModelMetrics son las métricas de la evaluación held-out del modelo
// personalizado (RMSE normal y con predicciones redondeadas a 0.5).
type ModelMetrics struct {
	RMSETest        float64 `json:"rmse_test"`
	RoundedRMSETest float64 `json:"rounded_rmse_test"`
	RMSEVal         float64 `json:"rmse_val"`
	RoundedRMSEVal  float64 `json:"rounded_rmse_val"`
}
