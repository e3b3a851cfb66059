package persistence

import (
	"context"
	"database/sql"
	"time"

	"trilhaquiz/internal/domain/history"
)

type SQLiteHistoryRepository struct {
	db *sql.DB
}

func NewSQLiteHistoryRepository(db *sql.DB) *SQLiteHistoryRepository {
	return &SQLiteHistoryRepository{db: db}
}

// SaveHistory salva o histórico completo de uma partida (transactional).
func (r *SQLiteHistoryRepository) SaveHistory(ctx context.Context, h *history.MatchHistory) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Save Match History
	queryMatch := `
		INSERT INTO matches_history (id, match_id, host_id, winner_name, turn_count, total_players, subjects, started_at, finished_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, queryMatch,
		h.ID, h.MatchID, h.HostID, h.WinnerName, h.TurnCount,
		h.TotalPlayers, h.Subjects, h.StartedAt, h.FinishedAt, h.CreatedAt,
	)
	if err != nil {
		return err
	}

	// 2. Save Match Players
	queryPlayer := `
		INSERT INTO match_players (id, match_history_id, name, kind, final_position, questions_answered, correct_answers, accuracy, is_winner, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for _, p := range h.Players {
		_, err = tx.ExecContext(ctx, queryPlayer,
			p.ID, h.ID, p.Name, p.Kind, p.FinalPosition,
			p.QuestionsAnswered, p.CorrectAnswers, p.Accuracy, p.IsWinner, time.Now(),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListByHostID lista histórico paginado.
func (r *SQLiteHistoryRepository) ListByHostID(ctx context.Context, hostID string, limit, offset int) ([]*history.MatchHistory, error) {
	query := `
		SELECT id, match_id, host_id, winner_name, turn_count, total_players, subjects, started_at, finished_at, created_at
		FROM matches_history
		WHERE host_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`
	rows, err := r.db.QueryContext(ctx, query, hostID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var histories []*history.MatchHistory
	for rows.Next() {
		var h history.MatchHistory
		if err := rows.Scan(
			&h.ID, &h.MatchID, &h.HostID, &h.WinnerName, &h.TurnCount,
			&h.TotalPlayers, &h.Subjects, &h.StartedAt, &h.FinishedAt, &h.CreatedAt,
		); err != nil {
			return nil, err
		}
		histories = append(histories, &h)
	}
	return histories, rows.Err()
}

// GetByID busca histórico detalhado, incluindo os jogadores.
func (r *SQLiteHistoryRepository) GetByID(ctx context.Context, id string) (*history.MatchHistory, error) {
	query := `
		SELECT id, match_id, host_id, winner_name, turn_count, total_players, subjects, started_at, finished_at, created_at
		FROM matches_history
		WHERE id = ?
	`
	row := r.db.QueryRowContext(ctx, query, id)

	var h history.MatchHistory
	if err := row.Scan(
		&h.ID, &h.MatchID, &h.HostID, &h.WinnerName, &h.TurnCount,
		&h.TotalPlayers, &h.Subjects, &h.StartedAt, &h.FinishedAt, &h.CreatedAt,
	); err != nil {
		return nil, err
	}

	// Carrega Players
	pRows, err := r.db.QueryContext(ctx,
		"SELECT id, name, kind, final_position, questions_answered, correct_answers, accuracy, is_winner FROM match_players WHERE match_history_id = ?", h.ID)
	if err != nil {
		return nil, err
	}
	defer pRows.Close()

	for pRows.Next() {
		var p history.PlayerStats
		p.MatchHistoryID = h.ID
		if err := pRows.Scan(&p.ID, &p.Name, &p.Kind, &p.FinalPosition, &p.QuestionsAnswered, &p.CorrectAnswers, &p.Accuracy, &p.IsWinner); err != nil {
			return nil, err
		}
		h.Players = append(h.Players, p)
	}

	return &h, pRows.Err()
}

// GetSubjectStats retorna estatísticas agregadas de um assunto.
func (r *SQLiteHistoryRepository) GetSubjectStats(ctx context.Context, subject string) (map[string]interface{}, error) {
	// Assuntos são guardados como lista separada por vírgula
	query := `
		SELECT COUNT(id)
		FROM matches_history
		WHERE ',' || subjects || ',' LIKE '%,' || ? || ',%'
	`

	var totalMatches sql.NullInt64
	if err := r.db.QueryRowContext(ctx, query, subject).Scan(&totalMatches); err != nil {
		return nil, err
	}

	queryPlayers := `
		SELECT COUNT(p.id), COALESCE(AVG(p.accuracy), 0)
		FROM match_players p
		JOIN matches_history h ON p.match_history_id = h.id
		WHERE ',' || h.subjects || ',' LIKE '%,' || ? || ',%'
	`

	var totalPlayers int
	var avgAccuracy float64
	if err := r.db.QueryRowContext(ctx, queryPlayers, subject).Scan(&totalPlayers, &avgAccuracy); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"subject":      subject,
		"totalMatches": totalMatches.Int64,
		"totalPlayers": totalPlayers,
		"avgAccuracy":  avgAccuracy,
	}, nil
}
