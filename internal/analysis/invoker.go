package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stonkie-backend/internal/llm"
	"stonkie-backend/internal/shared/storage/object"
	"stonkie-backend/internal/shared/telemetry"
)

const (
	defaultTimeout = 120 * time.Second
	msgNoAnalysis  = "no analysis generated"
)

// Invoker submits payloads to the generator and converts every outcome into
// a Result. Artifacts may be nil, in which case nothing is persisted.
type Invoker struct {
	Generator llm.Generator
	Artifacts object.BlobStore
	Timeout   time.Duration
}

type generation struct {
	text string
	err  error
}

// Invoke makes one synchronous generation call bounded by Timeout.
func (inv *Invoker) Invoke(ctx context.Context, ticker string, payload Payload) Result {
	timeout := inv.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := llm.Request{System: payload.SystemInstruction, Parts: payload.Parts()}

	done := make(chan generation, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- generation{err: fmt.Errorf("generator panic: %v", r)}
			}
		}()
		text, err := inv.Generator.Generate(ctx, req)
		done <- generation{text: text, err: err}
	}()

	var gen generation
	select {
	case gen = <-done:
	case <-ctx.Done():
		gen = generation{err: ctx.Err()}
	}

	if gen.err != nil {
		msg := gen.err.Error()
		if errors.Is(gen.err, context.DeadlineExceeded) {
			msg = fmt.Sprintf("analysis timed out after %s", timeout)
		}
		telemetry.Error("analysis.generate_failed", map[string]any{
			"ticker": ticker,
			"error":  gen.err,
		})
		return Result{Succeeded: false, Error: msg}
	}

	text := strings.TrimSpace(gen.text)
	if text == "" {
		return Result{Succeeded: false, Error: msgNoAnalysis}
	}

	res := Result{Text: text, Succeeded: true}
	if key, ok := inv.persist(context.WithoutCancel(ctx), ticker, text); ok {
		res.ArtifactKey = key
	}
	return res
}

func (inv *Invoker) persist(ctx context.Context, ticker, text string) (string, bool) {
	if inv.Artifacts == nil {
		return "", false
	}
	key := ArtifactKey(ticker)
	if _, err := inv.Artifacts.Write(ctx, key, "text/plain; charset=utf-8", strings.NewReader(text)); err != nil {
		telemetry.Warn("analysis.artifact_write_failed", map[string]any{
			"ticker": ticker,
			"key":    key,
			"error":  err,
		})
		return "", false
	}
	return key, true
}
