package usecases

import (
	"context"
	"strings"
	"time"

	"trilhaquiz/internal/domain/game"
	"trilhaquiz/internal/domain/history"
	"trilhaquiz/internal/ports"

	"github.com/google/uuid"
)

type HistoryUseCases struct {
	historyRepo ports.HistoryRepository
}

func NewHistoryUseCases(historyRepo ports.HistoryRepository) *HistoryUseCases {
	return &HistoryUseCases{historyRepo: historyRepo}
}

// ArchiveMatch converte uma partida encerrada em histórico persistente.
func (uc *HistoryUseCases) ArchiveMatch(ctx context.Context, match *game.Session) error {
	snap := match.GetStateSnapshot()

	h := &history.MatchHistory{
		ID:           uuid.NewString(),
		MatchID:      match.ID,
		HostID:       match.HostID,
		TurnCount:    snap.TurnCounter,
		TotalPlayers: len(snap.Players),
		Subjects:     strings.Join(match.Subjects, ","),
		StartedAt:    match.StartedAt,
		FinishedAt:   match.FinishedAt,
		CreatedAt:    time.Now(),
	}
	if snap.Winner != nil {
		h.WinnerName = snap.Winner.Name
	}

	for _, p := range snap.Players {
		h.Players = append(h.Players, history.PlayerStats{
			ID:                uuid.NewString(),
			MatchHistoryID:    h.ID,
			Name:              p.Name,
			Kind:              p.Kind,
			FinalPosition:     p.Position,
			QuestionsAnswered: p.QuestionsAnswered,
			CorrectAnswers:    p.CorrectAnswers,
			Accuracy:          p.Accuracy(),
			IsWinner:          snap.Winner != nil && snap.Winner.ID == p.ID,
		})
	}

	return uc.historyRepo.SaveHistory(ctx, h)
}

// ------ REPORT METHODS ------

func (uc *HistoryUseCases) ListMatches(ctx context.Context, hostID string, page, limit int) ([]*history.MatchHistory, error) {
	offset := (page - 1) * limit
	return uc.historyRepo.ListByHostID(ctx, hostID, limit, offset)
}

func (uc *HistoryUseCases) GetMatchDetail(ctx context.Context, id, hostID string) (*history.MatchHistory, error) {
	h, err := uc.historyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Valida ownership
	if h.HostID != hostID {
		return nil, ErrNaoAutorizado
	}
	return h, nil
}

func (uc *HistoryUseCases) GetSubjectStats(ctx context.Context, subject string) (map[string]interface{}, error) {
	return uc.historyRepo.GetSubjectStats(ctx, subject)
}
