package host

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNomeObrigatorio = errors.New("o nome é obrigatório")
	ErrEmailInvalido   = errors.New("o email é inválido")
	ErrSenhaCurta      = errors.New("a senha deve ter no mínimo 6 caracteres")
)

// Host representa o dono de um banco de perguntas, que pode criar
// partidas e consultar relatórios.
type Host struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Oculta o hash da senha no JSON
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewHost cria uma nova instância de Host com validações.
func NewHost(name, email, password string) (*Host, error) {
	if name == "" {
		return nil, ErrNomeObrigatorio
	}
	if !isEmailValid(email) {
		return nil, ErrEmailInvalido
	}
	if len(password) < 6 {
		return nil, ErrSenhaCurta
	}

	return &Host{
		ID:        uuid.NewString(), // Gera UUID v4
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		// PasswordHash deve ser definido externamente via serviço de hash
	}, nil
}

// SetPassword define o hash da senha.
func (h *Host) SetPassword(hash string) {
	h.PasswordHash = hash
}

// Validação simples de email usando regex.
func isEmailValid(email string) bool {
	regex := `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`
	match, _ := regexp.MatchString(regex, email)
	return match
}
