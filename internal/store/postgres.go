package store

import (
	"context"
	"errors"

	"github.com/Karnakarj/areahunt/internal/db"
	"github.com/jackc/pgx/v5"
)

// Postgres persists records as rows of a single key/value table.
type Postgres struct {
	records
	db db.Querier
}

func NewPostgres(q db.Querier) *Postgres {
	p := &Postgres{db: q}
	p.records = records{kv: p}
	return p
}

// EnsureSchema creates the state table when missing. Called once at
// startup.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := p.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS app_state (
			key   TEXT PRIMARY KEY,
			value JSONB NOT NULL
		)
	`)
	return err
}

func (p *Postgres) set(ctx context.Context, key string, value []byte) error {
	_, err := p.db.Exec(ctx, `
		INSERT INTO app_state (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, key, value)
	return err
}

func (p *Postgres) get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := p.db.QueryRow(ctx, `SELECT value FROM app_state WHERE key=$1`, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (p *Postgres) del(ctx context.Context, keys ...string) error {
	_, err := p.db.Exec(ctx, `DELETE FROM app_state WHERE key = ANY($1)`, keys)
	return err
}
