package persistence

import (
	"context"
	"database/sql"

	"trilhaquiz/internal/domain/host"
)

type SQLiteHostRepository struct {
	db *sql.DB
}

func NewSQLiteHostRepository(db *sql.DB) *SQLiteHostRepository {
	return &SQLiteHostRepository{db: db}
}

func (r *SQLiteHostRepository) Create(ctx context.Context, h *host.Host) error {
	query := `
		INSERT INTO hosts (id, name, email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		h.ID, h.Name, h.Email, h.PasswordHash, h.CreatedAt, h.UpdatedAt,
	)
	return err
}

func (r *SQLiteHostRepository) FindByEmail(ctx context.Context, email string) (*host.Host, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM hosts
		WHERE email = ?
	`
	row := r.db.QueryRowContext(ctx, query, email)

	var h host.Host
	if err := row.Scan(&h.ID, &h.Name, &h.Email, &h.PasswordHash, &h.CreatedAt, &h.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Não encontrado (sem erro)
		}
		return nil, err
	}
	return &h, nil
}

func (r *SQLiteHostRepository) FindByID(ctx context.Context, id string) (*host.Host, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM hosts
		WHERE id = ?
	`
	row := r.db.QueryRowContext(ctx, query, id)

	var h host.Host
	if err := row.Scan(&h.ID, &h.Name, &h.Email, &h.PasswordHash, &h.CreatedAt, &h.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}
