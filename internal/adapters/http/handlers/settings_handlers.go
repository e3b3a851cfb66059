package handlers

import (
	"encoding/json"
	"net/http"
	"trilhaquiz/internal/adapters/http/middlewares"
	"trilhaquiz/internal/application/usecases"
	"trilhaquiz/internal/domain/settings"
)

// SettingsHandler agrupa os handlers de preferências do anfitrião.
type SettingsHandler struct {
	settingsUC *usecases.SettingsUseCases
}

func NewSettingsHandler(settingsUC *usecases.SettingsUseCases) *SettingsHandler {
	return &SettingsHandler{settingsUC: settingsUC}
}

// GetSettings godoc
// @Summary Obtém as preferências do anfitrião
// @Description Retorna as preferências salvas (ou os padrões, se nunca salvas).
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} settings.Settings
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(middlewares.UserIDKey).(string)

	s, err := h.settingsUC.GetSettings(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(s)
}

// SaveSettings godoc
// @Summary Salva as preferências do anfitrião
// @Description Substitui as preferências de assuntos, dificuldade padrão e som.
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body settings.Settings true "Preferências"
// @Success 200 {object} settings.Settings
// @Failure 400 {object} map[string]string "Erro de validação"
// @Router /settings [put]
func (h *SettingsHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(middlewares.UserIDKey).(string)

	var s settings.Settings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	if err := h.settingsUC.SaveSettings(r.Context(), userID, &s); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	json.NewEncoder(w).Encode(s)
}
