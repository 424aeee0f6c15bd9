package handler

import (
	"encoding/json"
	"net/http"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/service"
)

type StatsHandler struct {
	svc   *service.StatsService
	users *service.UserService
}

func NewStatsHandler(svc *service.StatsService, users *service.UserService) *StatsHandler {
	return &StatsHandler{svc: svc, users: users}
}

type statisticsBody struct {
	Username string `json:"username"`
}

// @Summary Estadísticas de perfil de un usuario
// @Description Stats simples, distribución de ratings y percentiles contra la población de usuarios conocidos.
// @Tags statistics
// @Accept json
// @Produce json
// @Param body body handler.statisticsBody true "Username"
// @Success 200 {object} models.StatisticsResponse
// @Failure 400 {string} string "body inválido"
// @Failure 500 {string} string "error interno"
// @Router /api/get-statistics [post]
func (h *StatsHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	var body statisticsBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}
	if body.Username == "" {
		http.Error(w, "se necesita un username", http.StatusBadRequest)
		return
	}

	stats, err := h.svc.GetStatistics(r.Context(), body.Username)
	if err != nil {
		http.Error(w, safeErrorMessage(err), http.StatusInternalServerError)
		return
	}

	h.users.LogUsage(body.Username)
	writeJSON(w, http.StatusOK, stats)
}

type compatibilityBody struct {
	Username1 string `json:"username_1"`
	Username2 string `json:"username_2"`
}

// @Summary Compatibilidad entre dos usuarios
// @Description Compara los vectores de preferencias de ambos perfiles. 0 es oposición total, 100 gustos idénticos.
// @Tags statistics
// @Accept json
// @Produce json
// @Param body body handler.compatibilityBody true "Los dos usernames"
// @Success 200 {object} models.CompatibilityResult
// @Failure 400 {string} string "body inválido"
// @Failure 500 {string} string "error interno"
// @Router /api/get-compatibility [post]
func (h *StatsHandler) GetCompatibility(w http.ResponseWriter, r *http.Request) {
	var body compatibilityBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}
	if body.Username1 == "" || body.Username2 == "" {
		http.Error(w, "se necesitan dos usernames", http.StatusBadRequest)
		return
	}

	result, err := h.svc.Compatibility(r.Context(), body.Username1, body.Username2)
	if err != nil {
		http.Error(w, safeErrorMessage(err), http.StatusInternalServerError)
		return
	}

	h.users.LogUsage(body.Username1)
	h.users.LogUsage(body.Username2)
	writeJSON(w, http.StatusOK, result)
}
