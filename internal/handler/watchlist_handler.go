package handler

import (
	"encoding/json"
	"net/http"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/service"
)

type WatchlistHandler struct {
	svc   *service.WatchlistService
	users *service.UserService
}

func NewWatchlistHandler(svc *service.WatchlistService, users *service.UserService) *WatchlistHandler {
	return &WatchlistHandler{svc: svc, users: users}
}

// el frontend manda el query envuelto en data, con sus propios nombres
type watchlistBody struct {
	Data struct {
		UserList []string `json:"userList"`
		Overlap  string   `json:"overlap"`
		PickType string   `json:"pickType"`
		NumPicks int      `json:"numPicks"`
	} `json:"data"`
}

// @Summary Picks de watchlist
// @Description Elige películas de las watchlists de uno o varios usuarios, al azar o rankeadas por el modelo de cada uno.
// @Tags watchlist
// @Accept json
// @Produce json
// @Param body body handler.watchlistBody true "Usuarios, overlap, tipo de pick y cantidad"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {string} string "body inválido"
// @Failure 406 {string} string "no hay películas en común"
// @Failure 500 {string} string "error interno"
// @Router /api/get-watchlist-picks [post]
func (h *WatchlistHandler) GetWatchlistPicks(w http.ResponseWriter, r *http.Request) {
	var body watchlistBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}
	data := body.Data
	if len(data.UserList) == 0 {
		http.Error(w, "se necesita al menos un username", http.StatusBadRequest)
		return
	}

	picks, items, err := h.svc.GetPicks(r.Context(), service.PicksRequest{
		Usernames: data.UserList,
		Overlap:   data.Overlap,
		PickType:  data.PickType,
		NumPicks:  data.NumPicks,
	})
	if err != nil {
		writeRecommendError(w, err)
		return
	}

	for _, username := range data.UserList {
		h.users.LogUsage(username)
	}

	if items != nil {
		writeJSON(w, http.StatusOK, items)
		return
	}
	writeJSON(w, http.StatusOK, picks)
}
