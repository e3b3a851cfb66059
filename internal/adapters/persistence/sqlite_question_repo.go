package persistence

import (
	"context"
	"database/sql"

	"trilhaquiz/internal/domain/question"
)

type SQLiteQuestionRepository struct {
	db *sql.DB
}

func NewSQLiteQuestionRepository(db *sql.DB) *SQLiteQuestionRepository {
	return &SQLiteQuestionRepository{db: db}
}

func (r *SQLiteQuestionRepository) Save(ctx context.Context, q *question.Question) error {
	query := `
		INSERT INTO questions (id, host_id, prompt, answer, subject, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		q.ID, q.HostID, q.Prompt, q.Answer, q.Subject, q.CreatedAt, q.UpdatedAt,
	)
	return err
}

func (r *SQLiteQuestionRepository) FindByID(ctx context.Context, id string) (*question.Question, error) {
	query := `
		SELECT id, host_id, prompt, answer, subject, created_at, updated_at
		FROM questions
		WHERE id = ?
	`
	row := r.db.QueryRowContext(ctx, query, id)

	var q question.Question
	if err := row.Scan(&q.ID, &q.HostID, &q.Prompt, &q.Answer, &q.Subject, &q.CreatedAt, &q.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *SQLiteQuestionRepository) FindByHostID(ctx context.Context, hostID string) ([]*question.Question, error) {
	query := `
		SELECT id, host_id, prompt, answer, subject, created_at, updated_at
		FROM questions
		WHERE host_id = ?
		ORDER BY subject, created_at
	`
	return r.queryQuestions(ctx, query, hostID)
}

// FindBySubject retorna as perguntas de um assunto, de todos os hosts.
func (r *SQLiteQuestionRepository) FindBySubject(ctx context.Context, subject string) ([]*question.Question, error) {
	query := `
		SELECT id, host_id, prompt, answer, subject, created_at, updated_at
		FROM questions
		WHERE subject = ?
	`
	return r.queryQuestions(ctx, query, subject)
}

func (r *SQLiteQuestionRepository) ListSubjects(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT DISTINCT subject FROM questions ORDER BY subject")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, nil
}

func (r *SQLiteQuestionRepository) Update(ctx context.Context, q *question.Question) error {
	query := `
		UPDATE questions
		SET prompt = ?, answer = ?, subject = ?, updated_at = ?
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query, q.Prompt, q.Answer, q.Subject, q.UpdatedAt, q.ID)
	return err
}

func (r *SQLiteQuestionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM questions WHERE id = ?", id)
	return err
}

func (r *SQLiteQuestionRepository) queryQuestions(ctx context.Context, query string, args ...interface{}) ([]*question.Question, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []*question.Question
	for rows.Next() {
		var q question.Question
		if err := rows.Scan(&q.ID, &q.HostID, &q.Prompt, &q.Answer, &q.Subject, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, &q)
	}
	return questions, rows.Err()
}
