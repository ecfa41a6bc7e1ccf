package analysis

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores analysis history in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu       sync.RWMutex
	byTicker map[string][]Record
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byTicker: make(map[string][]Record)}
}

// Create stores the record.
func (r *MemoryRepo) Create(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byTicker[rec.Ticker] = append(r.byTicker[rec.Ticker], rec)
	return nil
}

// ListByTicker returns records for ticker, newest first.
func (r *MemoryRepo) ListByTicker(ctx context.Context, ticker string, limit int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	items := append([]Record(nil), r.byTicker[ticker]...)
	r.mu.RUnlock()

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
