package handlers

import (
	"encoding/json"
	"net/http"
	"trilhaquiz/internal/adapters/http/middlewares"
	"trilhaquiz/internal/application/usecases"
	"trilhaquiz/internal/domain/question"

	"github.com/go-chi/chi/v5"
)

// QuestionHandler agrupa os handlers do banco de perguntas.
type QuestionHandler struct {
	questionUC *usecases.QuestionUseCases
}

func NewQuestionHandler(questionUC *usecases.QuestionUseCases) *QuestionHandler {
	return &QuestionHandler{questionUC: questionUC}
}

// CreateQuestion godoc
// @Summary Cria uma pergunta
// @Description Adiciona uma pergunta de resposta livre ao banco do anfitrião.
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body usecases.QuestionInput true "Dados da pergunta"
// @Success 201 {object} question.Question
// @Failure 400 {object} map[string]string "Erro de validação"
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(middlewares.UserIDKey).(string)

	var input usecases.QuestionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	q, err := h.questionUC.CreateQuestion(r.Context(), userID, input)
	if err != nil {
		if err == question.ErrEnunciadoObrigatorio || err == question.ErrRespostaObrigatoria || err == question.ErrAssuntoObrigatorio {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(q)
}

// ListQuestions godoc
// @Summary Lista as perguntas do anfitrião
// @Tags Questions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} question.Question
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(middlewares.UserIDKey).(string)

	questions, err := h.questionUC.ListQuestions(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(questions)
}

// ListSubjects godoc
// @Summary Lista os assuntos disponíveis
// @Description Retorna os assuntos distintos com pelo menos uma pergunta cadastrada.
// @Tags Questions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Router /questions/subjects [get]
func (h *QuestionHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.questionUC.ListSubjects(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(subjects)
}

// UpdateQuestion godoc
// @Summary Atualiza uma pergunta
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Param body body usecases.QuestionInput true "Dados da pergunta"
// @Success 200 {object} question.Question
// @Failure 404 "Pergunta não encontrada"
// @Router /questions/{id} [put]
func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(middlewares.UserIDKey).(string)
	questionID := chi.URLParam(r, "id")

	var input usecases.QuestionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	q, err := h.questionUC.UpdateQuestion(r.Context(), userID, questionID, input)
	if err != nil {
		if err == usecases.ErrPerguntaNaoEncontrada || err == usecases.ErrNaoAutorizado {
			http.Error(w, "Pergunta não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	json.NewEncoder(w).Encode(q)
}

// DeleteQuestion godoc
// @Summary Remove uma pergunta
// @Tags Questions
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Success 204 "Removida"
// @Failure 404 "Pergunta não encontrada"
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(middlewares.UserIDKey).(string)
	questionID := chi.URLParam(r, "id")

	if err := h.questionUC.DeleteQuestion(r.Context(), userID, questionID); err != nil {
		if err == usecases.ErrPerguntaNaoEncontrada || err == usecases.ErrNaoAutorizado {
			http.Error(w, "Pergunta não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
