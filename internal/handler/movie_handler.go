package handler

import (
	"net/http"
	"strconv"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/service"
)

type MovieHandler struct {
	svc *service.MovieService
}

func NewMovieHandler(svc *service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

// @Summary Búsqueda en el catálogo
// @Tags movies
// @Produce json
// @Param q query string false "Título (regex case-insensitive)"
// @Param contentType query string false "movie o tv"
// @Param yearFrom query int false "Año mínimo"
// @Param yearTo query int false "Año máximo"
// @Param limit query int false "Máximo de resultados (default 20, máx 100)"
// @Param offset query int false "Offset de paginación"
// @Success 200 {array} models.MovieRecord
// @Failure 500 {string} string "error interno"
// @Router /api/movies/search [get]
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	contentType := r.URL.Query().Get("contentType")
	yearFrom, _ := strconv.Atoi(r.URL.Query().Get("yearFrom"))
	yearTo, _ := strconv.Atoi(r.URL.Query().Get("yearTo"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	movies, err := h.svc.Search(r.Context(), q, contentType, yearFrom, yearTo, limit, offset)
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, movies)
}

// @Summary Top del catálogo
// @Tags movies
// @Produce json
// @Param metric query string false "popular (default) o rating"
// @Param limit query int false "Máximo de resultados (default 20, máx 100)"
// @Success 200 {array} models.MovieRecord
// @Failure 500 {string} string "error interno"
// @Router /api/movies/top [get]
func (h *MovieHandler) Top(w http.ResponseWriter, r *http.Request) {
	metric := r.URL.Query().Get("metric")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	movies, err := h.svc.Top(r.Context(), metric, limit)
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, movies)
}
