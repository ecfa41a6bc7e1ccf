package statements

import (
	"context"
	"errors"
	"fmt"

	"stonkie-backend/internal/shared/metrics"
	"stonkie-backend/internal/shared/storage/object"
	"stonkie-backend/internal/shared/telemetry"
)

// Fetcher resolves statement keys against a blob store. A nil Store means
// storage is not configured and every fetch reports a missing statement.
type Fetcher struct {
	Store object.BlobStore
}

// NewFetcher constructs a Fetcher.
func NewFetcher(store object.BlobStore) *Fetcher {
	return &Fetcher{Store: store}
}

// Fetch checks existence before reading. Missing blobs and an unconfigured
// store are not errors; transport failures are.
func (f *Fetcher) Fetch(ctx context.Context, key Key) (RawStatement, error) {
	if !key.ReportType.Valid() {
		return RawStatement{}, fmt.Errorf("%w: %q", ErrUnknownReportType, string(key.ReportType))
	}
	metrics.IncStatementFetch(string(key.ReportType))
	name := key.ObjectName()

	if f == nil || f.Store == nil {
		metrics.IncStatementMissing()
		telemetry.Warn("statement.store_unconfigured", map[string]any{
			"ticker":      key.Ticker,
			"report_type": string(key.ReportType),
		})
		return RawStatement{Key: key}, nil
	}

	ok, err := f.Store.Exists(ctx, name)
	if err != nil {
		metrics.IncStatementError()
		return RawStatement{}, fmt.Errorf("fetch %s: %w", name, err)
	}
	if !ok {
		metrics.IncStatementMissing()
		telemetry.Info("statement.missing", map[string]any{
			"ticker":      key.Ticker,
			"report_type": string(key.ReportType),
			"object":      name,
		})
		return RawStatement{Key: key}, nil
	}

	data, err := f.Store.Read(ctx, name)
	if err != nil {
		// Deleted between the existence check and the read.
		if errors.Is(err, object.ErrNotFound) {
			metrics.IncStatementMissing()
			return RawStatement{Key: key}, nil
		}
		metrics.IncStatementError()
		return RawStatement{}, fmt.Errorf("fetch %s: %w", name, err)
	}

	telemetry.Info("statement.fetched", map[string]any{
		"ticker":      key.Ticker,
		"report_type": string(key.ReportType),
		"bytes":       len(data),
	})
	return RawStatement{Key: key, Exists: true, Content: data}, nil
}
