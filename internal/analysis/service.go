package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"stonkie-backend/internal/shared/metrics"
	"stonkie-backend/internal/shared/storage/object"
	"stonkie-backend/internal/shared/telemetry"
	"stonkie-backend/internal/statements"
)

// Service runs the analysis pipeline for a ticker and keeps its history.
type Service struct {
	Fetcher   *statements.Fetcher
	Invoker   *Invoker
	Repo      Repo
	Artifacts object.BlobStore

	now func() time.Time
}

// NewService constructs a Service.
func NewService(fetcher *statements.Fetcher, invoker *Invoker, repo Repo, artifacts object.BlobStore) *Service {
	return &Service{
		Fetcher:   fetcher,
		Invoker:   invoker,
		Repo:      repo,
		Artifacts: artifacts,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Analyze fetches every statement for ticker, assembles the payload and
// invokes the generator. The returned error is non-nil only for storage
// transport failures; generation failures are reported in the Result.
func (s *Service) Analyze(ctx context.Context, ticker, question string) (Result, error) {
	ticker = statements.NormalizeTicker(ticker)
	start := s.now()
	metrics.IncAnalysisStarted()

	segments, err := s.statementSegments(ctx, ticker)
	if err != nil {
		metrics.IncAnalysisFailed()
		return Result{}, err
	}

	var res Result
	if len(segments) == 0 {
		res = Result{
			Succeeded: false,
			Error:     fmt.Sprintf("financial statements for %s not found", strings.ToUpper(ticker)),
		}
	} else {
		if strings.TrimSpace(question) != "" {
			segments = append(segments, QuestionSegment(question))
		}
		res = s.Invoker.Invoke(ctx, ticker, Assemble(ticker, segments))
	}

	elapsed := s.now().Sub(start)
	metrics.ObserveAnalysisDurationMs(float64(elapsed.Milliseconds()))
	if res.Succeeded {
		metrics.IncAnalysisCompleted()
	} else {
		metrics.IncAnalysisFailed()
	}

	s.record(ctx, Record{
		ID:          uuid.NewString(),
		Ticker:      ticker,
		Question:    question,
		Succeeded:   res.Succeeded,
		Text:        res.Text,
		Error:       res.Error,
		ArtifactKey: res.ArtifactKey,
		DurationMs:  elapsed.Milliseconds(),
		CreatedAt:   start,
	})

	telemetry.Info("analysis.complete", map[string]any{
		"ticker":      ticker,
		"succeeded":   res.Succeeded,
		"duration_ms": elapsed.Milliseconds(),
	})
	return res, nil
}

// statementSegments returns one segment per existing statement, in report
// type order, plus computed income statement growth when available.
func (s *Service) statementSegments(ctx context.Context, ticker string) ([]Segment, error) {
	var segments []Segment
	var growth *Segment

	for _, rt := range statements.ReportTypes() {
		key, err := statements.NewKey(ticker, rt)
		if err != nil {
			return nil, err
		}
		raw, err := s.Fetcher.Fetch(ctx, key)
		if err != nil {
			return nil, err
		}
		if !raw.Exists {
			continue
		}
		segments = append(segments, StatementSegment(rt.Title(), raw.Content))

		if rt != statements.IncomeStatement {
			continue
		}
		if seg, ok := incomeGrowth(ticker, raw.Content); ok {
			growth = &seg
		}
	}

	if growth != nil {
		segments = append(segments, *growth)
	}
	return segments, nil
}

func incomeGrowth(ticker string, content []byte) (Segment, bool) {
	table, err := statements.ParseTable(content)
	if err != nil {
		telemetry.Warn("analysis.income_parse_failed", map[string]any{
			"ticker": ticker,
			"error":  err,
		})
		return Segment{}, false
	}
	filtered, err := statements.FilterTable(table, statements.IncomeStatement)
	if err != nil {
		return Segment{}, false
	}
	return GrowthSegment(filtered)
}

func (s *Service) record(ctx context.Context, rec Record) {
	if s.Repo == nil {
		return
	}
	if err := s.Repo.Create(context.WithoutCancel(ctx), rec); err != nil {
		telemetry.Warn("analysis.record_failed", map[string]any{
			"ticker": rec.Ticker,
			"error":  err,
		})
	}
}

// Artifact returns the stored analysis text for ticker.
func (s *Service) Artifact(ctx context.Context, ticker string) (string, error) {
	if s.Artifacts == nil {
		return "", ErrNotFound
	}
	data, err := s.Artifacts.Read(ctx, ArtifactKey(statements.NormalizeTicker(ticker)))
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read artifact: %w", err)
	}
	return string(data), nil
}

// History lists persisted analyses for ticker, newest first.
func (s *Service) History(ctx context.Context, ticker string, limit int) ([]Record, error) {
	if s.Repo == nil {
		return []Record{}, nil
	}
	items, err := s.Repo.ListByTicker(ctx, statements.NormalizeTicker(ticker), limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Record{}
	}
	return items, nil
}
