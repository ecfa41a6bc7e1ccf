package analysis

import "context"

// Repo persists analysis history.
type Repo interface {
	Create(ctx context.Context, rec Record) error
	ListByTicker(ctx context.Context, ticker string, limit int) ([]Record, error)
}
