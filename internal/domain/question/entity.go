package question

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEnunciadoObrigatorio = errors.New("o enunciado (prompt) é obrigatório")
	ErrRespostaObrigatoria  = errors.New("a resposta canônica é obrigatória")
	ErrAssuntoObrigatorio   = errors.New("o assunto é obrigatório")
)

// Question representa uma pergunta de resposta livre do banco de
// perguntas. A resposta canônica é comparada com a resposta do jogador
// pelo verificador (internal/domain/answer).
type Question struct {
	ID        string    `json:"id"`
	HostID    string    `json:"hostId"` // Owner
	Prompt    string    `json:"prompt"` // Enunciado
	Answer    string    `json:"answer"`
	Subject   string    `json:"subject"` // Assunto (ex: História)
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewQuestion cria uma nova pergunta.
func NewQuestion(hostID, prompt, answer, subject string) (*Question, error) {
	q := &Question{
		ID:        uuid.NewString(),
		HostID:    hostID,
		Prompt:    strings.TrimSpace(prompt),
		Answer:    strings.TrimSpace(answer),
		Subject:   strings.TrimSpace(subject),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	return q, nil
}

// Validate verifica se a pergunta é válida.
func (q *Question) Validate() error {
	if q.Prompt == "" {
		return ErrEnunciadoObrigatorio
	}
	if q.Answer == "" {
		return ErrRespostaObrigatoria
	}
	if q.Subject == "" {
		return ErrAssuntoObrigatorio
	}
	return nil
}

// Update atualiza os dados da pergunta.
func (q *Question) Update(prompt, answer, subject string) error {
	q.Prompt = strings.TrimSpace(prompt)
	q.Answer = strings.TrimSpace(answer)
	q.Subject = strings.TrimSpace(subject)
	q.UpdatedAt = time.Now()

	return q.Validate()
}
