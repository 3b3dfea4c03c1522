package store

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS high_scores (
    id UUID PRIMARY KEY,
    session_id UUID NOT NULL,
    car TEXT NOT NULL DEFAULT '',
    score INTEGER NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_high_scores_score ON high_scores(score DESC);
`

// PostgresStore implements HighScoreStore using PostgreSQL. Every finished
// session is kept as a row; Load returns the best MaxEntries.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to PostgreSQL and initializes the schema.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// Load returns the top scores, or an empty list if the query fails.
func (s *PostgresStore) Load(ctx context.Context) []int {
	rows, err := s.pool.Query(ctx,
		`SELECT score FROM high_scores ORDER BY score DESC, created_at ASC LIMIT $1`, MaxEntries)
	if err != nil {
		slog.Warn("failed to load high scores", "error", err)
		return []int{}
	}

	scores, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		slog.Warn("failed to read high scores", "error", err)
		return []int{}
	}
	return normalize(scores)
}

// AddAndPersist records the session and returns existing with its score inserted.
// An entry whose session ID is not a UUID is kept in the returned list only.
func (s *PostgresStore) AddAndPersist(ctx context.Context, e Entry, existing []int) []int {
	sessionID, err := uuid.Parse(e.SessionID)
	if err != nil {
		slog.Warn("invalid session id, high score not saved", "session", e.SessionID, "error", err)
		return Insert(existing, e.Score)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO high_scores (id, session_id, car, score) VALUES ($1, $2, $3, $4)`,
		uuid.New(), sessionID, e.Car, e.Score)
	if err != nil {
		slog.Warn("failed to save high score", "session", e.SessionID, "error", err)
	}
	return Insert(existing, e.Score)
}

// Close releases database resources.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
