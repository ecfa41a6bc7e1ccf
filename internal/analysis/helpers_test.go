package analysis

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"stonkie-backend/internal/llm"
	"stonkie-backend/internal/shared/storage/object/local"
	"stonkie-backend/internal/statements"
)

const incomeCSV = `,2023-12-31,2022-12-31
Total Revenue,120,100
Cost Of Revenue,60,50
Net Income,10,20
`

const balanceCSV = `,2023-12-31,2022-12-31
Total Assets,500,400
`

type recordingGenerator struct {
	mu   sync.Mutex
	reqs []llm.Request
	text string
	err  error
}

func (g *recordingGenerator) Generate(ctx context.Context, req llm.Request) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reqs = append(g.reqs, req)
	return g.text, g.err
}

func (g *recordingGenerator) last() llm.Request {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.reqs) == 0 {
		return llm.Request{}
	}
	return g.reqs[len(g.reqs)-1]
}

func blockingGenerator() llm.Generator {
	return llm.GeneratorFunc(func(ctx context.Context, req llm.Request) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
}

type failingWriter struct{ *local.Store }

func (failingWriter) Write(ctx context.Context, key, contentType string, r io.Reader) (int64, error) {
	return 0, errors.New("disk full")
}

func newStatementStore(t *testing.T, objects map[string]string) *local.Store {
	t.Helper()
	store := local.New(t.TempDir())
	for k, v := range objects {
		if _, err := store.Write(context.Background(), k, "text/csv", strings.NewReader(v)); err != nil {
			t.Fatalf("seed %s: %v", k, err)
		}
	}
	return store
}

func newTestService(t *testing.T, gen llm.Generator, objects map[string]string) (*Service, *local.Store) {
	t.Helper()
	stmts := newStatementStore(t, objects)
	artifacts := local.New(t.TempDir())
	inv := &Invoker{Generator: gen, Artifacts: artifacts}
	svc := NewService(statements.NewFetcher(stmts), inv, NewMemoryRepo(), artifacts)
	return svc, artifacts
}
