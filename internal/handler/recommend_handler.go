package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/recommender"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/service"

	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc   *service.RecommendService
	users *service.UserService
}

func NewRecommendHandler(svc *service.RecommendService, users *service.UserService) *RecommendHandler {
	return &RecommendHandler{svc: svc, users: users}
}

// el frontend manda el query envuelto en currentQuery
type recommendBody struct {
	CurrentQuery service.RecRequest `json:"currentQuery"`
}

// @Summary Recomendaciones para uno o varios usuarios
// @Description Con un username devuelve sus recomendaciones; con varios mergea la intersección de las listas.
// @Tags recommend
// @Accept json
// @Produce json
// @Param body body handler.recommendBody true "Query de recomendaciones"
// @Success 200 {array} models.RecommendationItem
// @Failure 400 {string} string "body inválido"
// @Failure 406 {string} string "los filtros no dejaron candidatos"
// @Failure 500 {string} string "error interno"
// @Router /api/get-recommendations [post]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	var body recommendBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}
	req := body.CurrentQuery
	if len(req.Usernames) == 0 {
		http.Error(w, "se necesita al menos un username", http.StatusBadRequest)
		return
	}

	items, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		writeRecommendError(w, err)
		return
	}

	for _, username := range req.Usernames {
		h.users.LogUsage(username)
	}
	writeJSON(w, http.StatusOK, items)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones en tiempo real (WebSocket)
// @Description El cliente manda el query como primer frame JSON y recibe frames de progreso por usuario y un frame final con la lista mergeada.
// @Tags recommend
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/ws/get-recommendations [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "no se pudo abrir el WebSocket", http.StatusBadRequest)
		return
	}
	defer conn.Close()

	var body recommendBody
	if err := conn.ReadJSON(&body); err != nil {
		conn.WriteJSON(map[string]any{"type": "error", "error": "query inválido"})
		return
	}
	req := body.CurrentQuery
	if len(req.Usernames) == 0 {
		conn.WriteJSON(map[string]any{"type": "error", "error": "se necesita al menos un username"})
		return
	}
	if req.NumRecs <= 0 {
		req.NumRecs = service.DefaultNumRecs
	} else if req.NumRecs > service.MaxNumRecs {
		req.NumRecs = service.MaxNumRecs
	}

	conn.WriteJSON(map[string]any{
		"type":  "start",
		"users": req.Usernames,
	})

	results, _, err := h.svc.RecommendPerUser(r.Context(), req)
	if err != nil {
		conn.WriteJSON(map[string]any{"type": "error", "error": safeErrorMessage(err)})
		return
	}

	var sets []models.RecommendationSet
	for _, res := range results {
		if res.Err != nil {
			conn.WriteJSON(map[string]any{
				"type":     "user_error",
				"username": res.Set.Username,
				"error":    safeErrorMessage(res.Err),
			})
			continue
		}
		conn.WriteJSON(map[string]any{
			"type":     "user_done",
			"username": res.Set.Username,
			"count":    len(res.Set.Items),
		})
		sets = append(sets, res.Set)
	}

	if len(sets) == 0 {
		conn.WriteJSON(map[string]any{"type": "error", "error": "ningún pipeline produjo resultados"})
		return
	}

	items := sets[0].Items
	if len(sets) > 1 {
		items = recommender.Merge(req.NumRecs, sets)
	} else if len(items) > req.NumRecs {
		items = items[:req.NumRecs]
	}

	for _, username := range req.Usernames {
		h.users.LogUsage(username)
	}
	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"items":       items,
		"generatedAt": time.Now(),
	})
}

type predictBody struct {
	Username string   `json:"username"`
	URLs     []string `json:"urls"`
}

// @Summary Predicción de rating para urls puntuales
// @Description Puntúa entre 1 y 10 urls de Letterboxd con el modelo personalizado del usuario.
// @Tags recommend
// @Accept json
// @Produce json
// @Param body body handler.predictBody true "Username y urls"
// @Success 200 {array} models.RecommendationItem
// @Failure 400 {string} string "body inválido"
// @Failure 406 {string} string "ninguna url está en el catálogo"
// @Failure 500 {string} string "error interno"
// @Router /api/get-predictions [post]
func (h *RecommendHandler) GetPredictions(w http.ResponseWriter, r *http.Request) {
	var body predictBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}
	if body.Username == "" {
		http.Error(w, "se necesita un username", http.StatusBadRequest)
		return
	}
	if len(body.URLs) < recommender.MinPredictionURLs || len(body.URLs) > recommender.MaxPredictionURLs {
		http.Error(w, "se aceptan entre 1 y 10 urls", http.StatusBadRequest)
		return
	}

	items, err := h.svc.Predict(r.Context(), body.Username, body.URLs)
	if err != nil {
		writeRecommendError(w, err)
		return
	}

	h.users.LogUsage(body.Username)
	writeJSON(w, http.StatusOK, items)
}

// safeErrorMessage decide qué mensaje puede viajar al cliente: los errores
// de la taxonomía (filtros, perfiles) son mensajes pensados para el usuario
// y van tal cual; cualquier otra falla se loggea completa y se enmascara
// con un cuerpo genérico.
func safeErrorMessage(err error) string {
	var profileErr *recommender.UserProfileError
	if service.IsUserCorrectable(err) || errors.As(err, &profileErr) {
		return err.Error()
	}
	log.Printf("[handler] falla interna: %v", err)
	return "error interno generando la respuesta"
}

// writeRecommendError mapea la taxonomía de errores del pipeline a HTTP:
// filtros muy agresivos son 406 (el usuario puede aflojarlos), el resto 500.
func writeRecommendError(w http.ResponseWriter, err error) {
	if service.IsUserCorrectable(err) {
		http.Error(w, err.Error(), http.StatusNotAcceptable)
		return
	}
	http.Error(w, safeErrorMessage(err), http.StatusInternalServerError)
}
