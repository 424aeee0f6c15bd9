package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/service"

	"github.com/go-chi/chi/v5"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

type reportBody struct {
	URL      string `json:"url"`
	Username string `json:"username"`
}

// @Summary Reportar una película faltante
// @Description Registra una url de Letterboxd que todavía no está en el catálogo para que el scraper batch la levante.
// @Tags reports
// @Accept json
// @Produce json
// @Param body body handler.reportBody true "Url de la película y username opcional"
// @Success 200 {object} models.MissingMovieReport
// @Failure 400 {string} string "url inválida o ya catalogada"
// @Failure 500 {string} string "error interno"
// @Router /api/report-missing-movie [post]
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	var body reportBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}
	if body.URL == "" {
		http.Error(w, "se necesita una url", http.StatusBadRequest)
		return
	}

	report, err := h.svc.Report(r.Context(), body.URL, body.Username)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// @Summary Listar reportes de películas faltantes
// @Tags reports
// @Produce json
// @Param status query string false "pending, resolved o rejected (vacío = todos)"
// @Param limit query int false "Máximo de resultados (default 100)"
// @Success 200 {array} models.MissingMovieReport
// @Failure 500 {string} string "error interno"
// @Router /admin/missing-movie-reports [get]
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	reports, err := h.svc.List(r.Context(), status, limit)
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

// @Summary Resolver un reporte
// @Tags reports
// @Param id path string true "Id del reporte"
// @Success 204
// @Failure 400 {string} string "id inválido"
// @Router /admin/missing-movie-reports/{id}/resolve [post]
func (h *ReportHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.ReportStatusResolved)
}

// @Summary Rechazar un reporte
// @Tags reports
// @Param id path string true "Id del reporte"
// @Success 204
// @Failure 400 {string} string "id inválido"
// @Router /admin/missing-movie-reports/{id}/reject [post]
func (h *ReportHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.ReportStatusRejected)
}

func (h *ReportHandler) setStatus(w http.ResponseWriter, r *http.Request, status string) {
	id := chi.URLParam(r, "id")
	if err := h.svc.Resolve(r.Context(), id, status); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
