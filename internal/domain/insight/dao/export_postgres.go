package dao

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vadim/neo-insights/internal/domain/insight/entity"
)

// PostgresSource reads export documents the pipeline stores in the
// insight_exports table (name text, payload jsonb, exported_at timestamptz)
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource creates a new PostgreSQL export source
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// Fetch returns the most recent payload stored under name
func (s *PostgresSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	query := `
		SELECT payload
		FROM insight_exports
		WHERE name = $1
		ORDER BY exported_at DESC
		LIMIT 1
	`

	var payload []byte
	err := s.pool.QueryRow(ctx, query, name).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", name, entity.ErrSourceNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying export %s: %w", name, err)
	}

	return payload, nil
}
