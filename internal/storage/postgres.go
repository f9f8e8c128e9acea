package storage

import (
	"context"
	"database/sql"
	"errors"
)

// PostgresGateway stores snapshots in a single key/value table.
type PostgresGateway struct {
	db *sql.DB
}

// NewPostgresGateway creates a Postgres-backed gateway.
func NewPostgresGateway(db *sql.DB) *PostgresGateway {
	return &PostgresGateway{db: db}
}

var _ Gateway = (*PostgresGateway)(nil)

// EnsureSchema creates the snapshot table if it does not exist.
func (g *PostgresGateway) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS snapshots (
			name       TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	_, err := g.db.ExecContext(ctx, query)
	return err
}

// Load retrieves the snapshot stored under key.
func (g *PostgresGateway) Load(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT data FROM snapshots WHERE name = $1`

	var data []byte
	err := g.db.QueryRowContext(ctx, query, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	return data, nil
}

// Save stores the snapshot under key, replacing any previous value.
func (g *PostgresGateway) Save(ctx context.Context, key string, data []byte) error {
	query := `
		INSERT INTO snapshots (name, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
	`
	// lib/pq would encode []byte as bytea, which does not cast to jsonb.
	_, err := g.db.ExecContext(ctx, query, key, string(data))
	return err
}

// Delete removes the snapshot stored under key.
func (g *PostgresGateway) Delete(ctx context.Context, key string) error {
	_, err := g.db.ExecContext(ctx, `DELETE FROM snapshots WHERE name = $1`, key)
	return err
}
