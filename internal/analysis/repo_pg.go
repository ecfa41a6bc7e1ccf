package analysis

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a record.
func (r *PGRepo) Create(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO analyses (id, ticker, question, succeeded, text, error, artifact_key, duration_ms, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.Ticker,
		rec.Question,
		rec.Succeeded,
		rec.Text,
		rec.Error,
		rec.ArtifactKey,
		rec.DurationMs,
		rec.CreatedAt,
	)
	return err
}

// ListByTicker returns records for ticker, newest first.
func (r *PGRepo) ListByTicker(ctx context.Context, ticker string, limit int) ([]Record, error) {
	const query = `
SELECT id, ticker, question, succeeded, text, error, artifact_key, duration_ms, created_at
FROM analyses
WHERE ticker = $1
ORDER BY created_at DESC
LIMIT $2`
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.DB.QueryContext(ctx, query, ticker, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID,
			&rec.Ticker,
			&rec.Question,
			&rec.Succeeded,
			&rec.Text,
			&rec.Error,
			&rec.ArtifactKey,
			&rec.DurationMs,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
