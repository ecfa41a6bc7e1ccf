package statements

import (
	"context"
)

// Service runs fetch, parse and filter for a single statement.
type Service struct {
	Fetcher *Fetcher
}

// NewService constructs a Service.
func NewService(fetcher *Fetcher) *Service {
	return &Service{Fetcher: fetcher}
}

// Load returns the filtered table for ticker and rt. A missing statement
// yields an empty table and no error.
func (s *Service) Load(ctx context.Context, ticker string, rt ReportType) (Table, error) {
	key, err := NewKey(ticker, rt)
	if err != nil {
		return Table{}, err
	}

	raw, err := s.Fetcher.Fetch(ctx, key)
	if err != nil {
		return Table{}, err
	}
	if !raw.Exists {
		return EmptyTable(), nil
	}

	table, err := ParseTable(raw.Content)
	if err != nil {
		return Table{}, err
	}
	return FilterTable(table, rt)
}
