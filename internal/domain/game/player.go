package game

import "math"

// Tipos de jogador. Um bot carrega a dificuldade; um humano não.
const (
	KindHuman = "HUMAN"
	KindBot   = "BOT"
)

// MaxPlayers é o limite de jogadores simultâneos em uma partida.
const MaxPlayers = 4

// Paleta fixa de cores dos tokens, atribuída em rodízio pela ordem de
// registro.
var colorPalette = [MaxPlayers]string{"#e63946", "#457b9d", "#2a9d8f", "#e9c46a"}

// Player representa um jogador na partida (humano ou bot).
type Player struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Kind              string `json:"kind"`                 // HUMAN | BOT
	Difficulty        string `json:"difficulty,omitempty"` // apenas bots
	Color             string `json:"color"`
	Position          int    `json:"position"` // 0..119
	QuestionsAnswered int    `json:"questionsAnswered"`
	CorrectAnswers    int    `json:"correctAnswers"`
	SkipTurns         int    `json:"skipTurns"`
}

// IsBot indica se o jogador é controlado pela política de bot.
func (p *Player) IsBot() bool {
	return p.Kind == KindBot
}

// Accuracy retorna o percentual de acerto arredondado (0 se o jogador
// ainda não respondeu nenhuma pergunta).
func (p *Player) Accuracy() int {
	if p.QuestionsAnswered == 0 {
		return 0
	}
	return int(math.Round(100 * float64(p.CorrectAnswers) / float64(p.QuestionsAnswered)))
}

// resetProgress zera o progresso do jogador (posição, contadores e
// obrigações de pular vez), preservando identidade e cor.
func (p *Player) resetProgress() {
	p.Position = 0
	p.QuestionsAnswered = 0
	p.CorrectAnswers = 0
	p.SkipTurns = 0
}
