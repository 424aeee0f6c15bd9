package handler

import "net/http"

// @Summary Healthcheck
// @Tags health
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "letterboxd-movie-recommendations",
	})
}
