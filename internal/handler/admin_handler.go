package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/service"

	"github.com/go-chi/chi/v5"
)

// AdminHandler expone el mantenimiento operativo: modelo general, caches
// y nodos de recomendación.
type AdminHandler struct {
	svc *service.AdminService
}

func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// @Summary Estado del modelo general
// @Tags admin-maintenance
// @Produce json
// @Success 200 {object} models.GeneralModelStatus
// @Router /admin/general-model/status [get]
func (h *AdminHandler) GetGeneralModelStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.GeneralModelStatus())
}

// @Summary Reentrenar el modelo general
// @Description Reentrena el random forest general con los ratings de toda la base, lo persiste y recarga la copia en memoria.
// @Tags admin-maintenance
// @Accept json
// @Produce json
// @Param body body models.RetrainGeneralRequest true "Parámetros de entrenamiento"
// @Success 200 {object} models.RetrainGeneralResult
// @Failure 400 {string} string "body inválido"
// @Failure 500 {string} string "error interno"
// @Router /admin/general-model/retrain [post]
func (h *AdminHandler) PostRetrainGeneral(w http.ResponseWriter, r *http.Request) {
	var req models.RetrainGeneralRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}

	res, err := h.svc.RetrainGeneral(r.Context(), req)
	if err != nil {
		log.Printf("[admin] reentrenamiento falló: %v", err)
		http.Error(w, "no se pudo reentrenar el modelo general", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// @Summary Recargar el modelo general desde disco
// @Tags admin-maintenance
// @Success 204
// @Router /admin/general-model/reload [post]
func (h *AdminHandler) PostReloadGeneral(w http.ResponseWriter, r *http.Request) {
	h.svc.ReloadGeneral()
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Invalidar el snapshot del catálogo
// @Description El próximo request vuelve a leer el catálogo completo de Mongo. Usar después de una corrida del scraper.
// @Tags admin-maintenance
// @Success 204
// @Router /admin/cache/catalog [delete]
func (h *AdminHandler) DeleteCatalogCache(w http.ResponseWriter, r *http.Request) {
	h.svc.InvalidateCatalog()
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Invalidar el cache de ratings de un usuario
// @Tags admin-maintenance
// @Param username path string true "Username de Letterboxd"
// @Success 204
// @Failure 500 {string} string "error interno"
// @Router /admin/cache/profiles/{username} [delete]
func (h *AdminHandler) DeleteProfileCache(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if err := h.svc.InvalidateProfile(r.Context(), username); err != nil {
		log.Printf("[admin] no pude invalidar el cache de %s: %v", username, err)
		http.Error(w, "no se pudo invalidar el cache del perfil", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Ping a los nodos de recomendación
// @Tags admin-maintenance
// @Produce json
// @Success 200 {array} models.NodePingResult
// @Router /admin/nodes/ping [get]
func (h *AdminHandler) GetNodesPing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.PingNodes(r.Context()))
}

// Utilidad pequeña para respuestas JSON.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeInternalError loggea la falla completa y responde un cuerpo
// genérico: el detalle interno no viaja al cliente.
func writeInternalError(w http.ResponseWriter, err error) {
	log.Printf("[handler] falla interna: %v", err)
	http.Error(w, "error interno", http.StatusInternalServerError)
}

// Helper para montar rutas en main.go
func MountAdminRoutes(r chi.Router, h *AdminHandler, reports *ReportHandler) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/general-model/status", h.GetGeneralModelStatus)
		r.Post("/general-model/retrain", h.PostRetrainGeneral)
		r.Post("/general-model/reload", h.PostReloadGeneral)

		r.Delete("/cache/catalog", h.DeleteCatalogCache)
		r.Delete("/cache/profiles/{username}", h.DeleteProfileCache)

		r.Get("/nodes/ping", h.GetNodesPing)

		r.Get("/missing-movie-reports", reports.List)
		r.Post("/missing-movie-reports/{id}/resolve", reports.Resolve)
		r.Post("/missing-movie-reports/{id}/reject", reports.Reject)
	})
}
