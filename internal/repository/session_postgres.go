package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

type pgSession struct {
	pool *pgxpool.Pool
}

// NewPostgresSessionRepository stores blobs in the sessions table created by storage.PostgresStorage.Init.
func NewPostgresSessionRepository(pool *pgxpool.Pool) SessionRepository {
	return &pgSession{
		pool: pool,
	}
}

func (that *pgSession) Load(ctx context.Context, id string) ([]byte, error) {
	query := `SELECT blob FROM sessions WHERE id = $1`

	var blob []byte

	err := that.pool.QueryRow(ctx, query, id).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return blob, nil
}

func (that *pgSession) Save(ctx context.Context, id string, blob []byte) error {
	query := `INSERT INTO sessions (id, blob, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET blob = EXCLUDED.blob, updated_at = EXCLUDED.updated_at`

	if _, err := that.pool.Exec(ctx, query, id, blob); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (that *pgSession) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sessions WHERE id = $1`

	if _, err := that.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
