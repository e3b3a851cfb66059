package settings

import (
	"errors"

	"trilhaquiz/internal/domain/bot"
)

var ErrDificuldadePadraoInvalida = errors.New("a dificuldade padrão de bot é inválida")

// Settings guarda as preferências de um host: os assuntos selecionados
// para as partidas, a dificuldade padrão de bots e o som da interface.
// O núcleo do jogo lê os assuntos no início da partida e a dificuldade
// ao adicionar um bot; o som é apenas repassado ao cliente.
type Settings struct {
	SelectedSubjects     []string `json:"selectedSubjects"`
	BotDifficultyDefault string   `json:"botDifficultyDefault"`
	SoundEnabled         bool     `json:"soundEnabled"`
}

// Default retorna as preferências iniciais de um host recém-criado.
func Default() *Settings {
	return &Settings{
		SelectedSubjects:     []string{},
		BotDifficultyDefault: bot.DifficultyMedium,
		SoundEnabled:         true,
	}
}

// Validate verifica a consistência das preferências.
func (s *Settings) Validate() error {
	if !bot.ValidDifficulty(s.BotDifficultyDefault) {
		return ErrDificuldadePadraoInvalida
	}
	return nil
}
