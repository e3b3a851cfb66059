package history

import "time"

// MatchHistory representa o registro persistente de uma partida
// encerrada.
type MatchHistory struct {
	ID             string    `json:"id"`
	MatchID        string    `json:"matchId"`
	HostID         string    `json:"hostId"`
	WinnerName     string    `json:"winnerName"`
	TurnCount      int       `json:"turnCount"`
	TotalPlayers   int       `json:"totalPlayers"`
	Subjects       string    `json:"subjects"` // assuntos separados por vírgula
	StartedAt      time.Time `json:"startedAt"`
	FinishedAt     time.Time `json:"finishedAt"`
	CreatedAt      time.Time `json:"createdAt"`

	Players []PlayerStats `json:"players,omitempty"`
}

// PlayerStats é o desempenho de um jogador em uma partida arquivada.
type PlayerStats struct {
	ID                string `json:"id"`
	MatchHistoryID    string `json:"matchHistoryId"`
	Name              string `json:"name"`
	Kind              string `json:"kind"` // HUMAN | BOT
	FinalPosition     int    `json:"finalPosition"`
	QuestionsAnswered int    `json:"questionsAnswered"`
	CorrectAnswers    int    `json:"correctAnswers"`
	Accuracy          int    `json:"accuracy"`
	IsWinner          bool   `json:"isWinner"`
}
