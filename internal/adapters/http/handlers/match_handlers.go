package handlers

import (
	"encoding/json"
	"net/http"
	"trilhaquiz/internal/adapters/http/middlewares"
	"trilhaquiz/internal/application/usecases"

	"github.com/go-chi/chi/v5"
)

// MatchHandler agrupa os handlers de partidas ao vivo.
type MatchHandler struct {
	matchUC *usecases.MatchUseCases
}

func NewMatchHandler(matchUC *usecases.MatchUseCases) *MatchHandler {
	return &MatchHandler{matchUC: matchUC}
}

// CreateMatch godoc
// @Summary Cria uma partida
// @Description Cria uma nova partida do jogo de trilha usando as preferências do anfitrião.
// @Tags Matches
// @Produce json
// @Security BearerAuth
// @Success 201 {object} game.SessionStateDTO
// @Failure 400 "Sem perguntas disponíveis"
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(middlewares.UserIDKey).(string)

	match, err := h.matchUC.CreateMatch(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(match.GetStateSnapshot())
}

// GetMatch godoc
// @Summary Obtém o estado da partida
// @Description Retorna o snapshot público da partida (sem respostas canônicas).
// @Tags Matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} game.SessionStateDTO
// @Failure 404 "Partida não encontrada"
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "id")

	match, err := h.matchUC.GetMatch(r.Context(), matchID)
	if err != nil || match == nil {
		http.Error(w, "Partida não encontrada", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(match.GetStateSnapshot())
}
