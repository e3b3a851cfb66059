package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"trilhaquiz/internal/adapters/http/middlewares"
	"trilhaquiz/internal/application/usecases"

	"github.com/go-chi/chi/v5"
)

type ReportHandler struct {
	historyUC *usecases.HistoryUseCases
}

func NewReportHandler(historyUC *usecases.HistoryUseCases) *ReportHandler {
	return &ReportHandler{historyUC: historyUC}
}

// ListMatches godoc
// @Summary Histórico de Partidas
// @Description Lista partidas finalizadas do anfitrião logado.
// @Tags Reports
// @Produce json
// @Param page query int false "Página (default 1)"
// @Param limit query int false "Limite (default 20)"
// @Success 200 {array} history.MatchHistory
// @Security BearerAuth
// @Router /reports/matches [get]
func (h *ReportHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(middlewares.UserIDKey).(string)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 20
	}

	matches, err := h.historyUC.ListMatches(r.Context(), userID, page, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(matches)
}

// GetMatchDetail godoc
// @Summary Detalhe da Partida
// @Description Retorna detalhes completos de uma partida finalizada, incluindo stats por jogador.
// @Tags Reports
// @Produce json
// @Param id path string true "History Match ID"
// @Success 200 {object} history.MatchHistory
// @Failure 404 "Partida não encontrada"
// @Security BearerAuth
// @Router /reports/matches/{id} [get]
func (h *ReportHandler) GetMatchDetail(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(middlewares.UserIDKey).(string)
	id := chi.URLParam(r, "id")

	match, err := h.historyUC.GetMatchDetail(r.Context(), id, userID)
	if err != nil {
		// Tratamento de erro simples: assume 404 se não encontrado ou não autorizado
		http.Error(w, "Partida não encontrada ou acesso negado", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(match)
}

// GetSubjectStats godoc
// @Summary Estatísticas por Assunto
// @Description Retorna métricas agregadas das partidas que usaram um assunto.
// @Tags Reports
// @Produce json
// @Param subject path string true "Assunto"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /reports/subjects/{subject} [get]
func (h *ReportHandler) GetSubjectStats(w http.ResponseWriter, r *http.Request) {
	_ = r.Context().Value(middlewares.UserIDKey).(string)
	subject := chi.URLParam(r, "subject")

	stats, err := h.historyUC.GetSubjectStats(r.Context(), subject)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(stats)
}
