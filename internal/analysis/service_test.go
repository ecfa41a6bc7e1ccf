package analysis

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestAnalyzeAssemblesStatementsInOrder(t *testing.T) {
	gen := &recordingGenerator{text: "Solid growth."}
	svc, _ := newTestService(t, gen, map[string]string{
		"tsla_income_statement.csv": incomeCSV,
		"tsla_balance_sheet.csv":    balanceCSV,
	})

	res, err := svc.Analyze(context.Background(), "TSLA", "Is revenue growing?")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !res.Succeeded || res.Text != "Solid growth." {
		t.Fatalf("unexpected result %+v", res)
	}

	parts := gen.last().Parts
	joined := strings.Join(parts, "\n")
	order := []string{
		"Analyze these financial statements for TSLA:",
		"This is the income statement.",
		"This is the balance sheet.",
		"Total Revenue 2023-12-31 vs 2022-12-31: +20.00%",
		"Is revenue growing?",
		"year over year growth rates",
	}
	pos := -1
	for _, want := range order {
		idx := strings.Index(joined, want)
		if idx < 0 {
			t.Fatalf("missing %q in payload:\n%s", want, joined)
		}
		if idx <= pos {
			t.Fatalf("%q out of order", want)
		}
		pos = idx
	}
	if strings.Contains(joined, "cash flow statement") {
		t.Fatalf("missing cash flow statement should not be labeled")
	}
	if !strings.Contains(joined, incomeCSV) {
		t.Fatalf("statement content not passed verbatim")
	}

	history, err := svc.History(context.Background(), "tsla", 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || !history[0].Succeeded || history[0].Question != "Is revenue growing?" {
		t.Fatalf("unexpected history %+v", history)
	}

	text, err := svc.Artifact(context.Background(), "TSLA")
	if err != nil {
		t.Fatalf("artifact: %v", err)
	}
	if text != "Solid growth." {
		t.Fatalf("unexpected artifact %q", text)
	}
}

func TestAnalyzeWithoutStatements(t *testing.T) {
	gen := &recordingGenerator{text: "unused"}
	svc, _ := newTestService(t, gen, nil)

	res, err := svc.Analyze(context.Background(), "nvda", "q")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.Succeeded || res.Error != "financial statements for NVDA not found" {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(gen.reqs) != 0 {
		t.Fatalf("generator should not be called")
	}
}

func TestArtifactMissing(t *testing.T) {
	svc, _ := newTestService(t, &recordingGenerator{}, nil)
	if _, err := svc.Artifact(context.Background(), "tsla"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if err := repo.Create(context.Background(), Record{ID: string(rune('a' + i)), Ticker: "tsla", CreatedAt: base.Add(time.Duration(i) * time.Hour)}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	items, err := repo.ListByTicker(context.Background(), "tsla", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].ID != "c" || items[1].ID != "b" {
		t.Fatalf("unexpected order %+v", items)
	}
}
