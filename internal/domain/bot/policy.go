package bot

import (
	"errors"
	"math/rand"
	"time"
)

// Dificuldades possíveis para um jogador bot.
const (
	DifficultyEasy   = "EASY"
	DifficultyMedium = "MEDIUM"
	DifficultyHard   = "HARD"
)

var ErrDificuldadeInvalida = errors.New("dificuldade de bot inválida")

// Probabilidade de acerto por dificuldade. Tabela canônica única:
// a variante legada com 0.9 para HARD foi descartada.
var accuracyByDifficulty = map[string]float64{
	DifficultyEasy:   0.3,
	DifficultyMedium: 0.6,
	DifficultyHard:   0.8,
}

// Tempo simulado de "pensamento" antes do bot responder. É apenas um
// atraso de agendamento, não computação adicional.
var thinkTimeByDifficulty = map[string]time.Duration{
	DifficultyEasy:   2000 * time.Millisecond,
	DifficultyMedium: 1500 * time.Millisecond,
	DifficultyHard:   1000 * time.Millisecond,
}

// Decision é o resultado da política do bot para uma pergunta.
type Decision struct {
	Correct   bool
	ThinkTime time.Duration
}

// ValidDifficulty indica se o valor é uma dificuldade conhecida.
func ValidDifficulty(difficulty string) bool {
	_, ok := accuracyByDifficulty[difficulty]
	return ok
}

// Decide sorteia se o bot acerta a pergunta (Bernoulli com a
// probabilidade da dificuldade) e retorna o tempo de pensamento.
// O gerador é injetado para permitir testes determinísticos.
func Decide(rng *rand.Rand, difficulty string) (Decision, error) {
	accuracy, ok := accuracyByDifficulty[difficulty]
	if !ok {
		return Decision{}, ErrDificuldadeInvalida
	}

	return Decision{
		Correct:   rng.Float64() < accuracy,
		ThinkTime: thinkTimeByDifficulty[difficulty],
	}, nil
}
