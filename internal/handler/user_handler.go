package handler

import (
	"net/http"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// @Summary Lista de usuarios conocidos
// @Description Todos los usernames que alguna vez pidieron algo al sistema, ordenados alfabéticamente.
// @Tags users
// @Produce json
// @Success 200 {array} string
// @Failure 500 {string} string "error interno"
// @Router /api/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// @Summary Métricas de uso de la aplicación
// @Description Usuarios distintos y usos totales acumulados del log de uso.
// @Tags users
// @Produce json
// @Success 200 {object} models.ApplicationMetrics
// @Failure 500 {string} string "error interno"
// @Router /api/get-application-metrics [get]
func (h *UserHandler) GetApplicationMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.svc.ApplicationMetrics(r.Context())
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}
