package persistence

import (
	"context"
	"database/sql"
	"encoding/json"

	"trilhaquiz/internal/domain/settings"
)

type SQLiteSettingsRepository struct {
	db *sql.DB
}

func NewSQLiteSettingsRepository(db *sql.DB) *SQLiteSettingsRepository {
	return &SQLiteSettingsRepository{db: db}
}

// Get retorna as preferências do host, ou os padrões se nunca salvas.
func (r *SQLiteSettingsRepository) Get(ctx context.Context, hostID string) (*settings.Settings, error) {
	query := `
		SELECT selected_subjects, bot_difficulty_default, sound_enabled
		FROM host_settings
		WHERE host_id = ?
	`
	row := r.db.QueryRowContext(ctx, query, hostID)

	var subjectsJSON string
	s := &settings.Settings{}
	if err := row.Scan(&subjectsJSON, &s.BotDifficultyDefault, &s.SoundEnabled); err != nil {
		if err == sql.ErrNoRows {
			return settings.Default(), nil
		}
		return nil, err
	}

	if err := json.Unmarshal([]byte(subjectsJSON), &s.SelectedSubjects); err != nil {
		// Dado corrompido degrada para nenhuma seleção
		s.SelectedSubjects = []string{}
	}
	return s, nil
}

// Save faz upsert das preferências do host.
func (r *SQLiteSettingsRepository) Save(ctx context.Context, hostID string, s *settings.Settings) error {
	subjectsJSON, err := json.Marshal(s.SelectedSubjects)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO host_settings (host_id, selected_subjects, bot_difficulty_default, sound_enabled)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(host_id) DO UPDATE SET
			selected_subjects = excluded.selected_subjects,
			bot_difficulty_default = excluded.bot_difficulty_default,
			sound_enabled = excluded.sound_enabled
	`
	_, err = r.db.ExecContext(ctx, query, hostID, string(subjectsJSON), s.BotDifficultyDefault, s.SoundEnabled)
	return err
}
