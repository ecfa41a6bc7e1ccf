package statements

import (
	"context"
	"errors"
	"testing"
)

func TestFetchMissingBlob(t *testing.T) {
	store := newMemStore(nil)
	f := NewFetcher(store)

	key, err := NewKey("TSLA", BalanceSheet)
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	raw, err := f.Fetch(context.Background(), key)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if raw.Exists || len(raw.Content) != 0 {
		t.Fatalf("expected missing statement, got %+v", raw)
	}
	if store.reads != 0 {
		t.Fatalf("expected no read after failed existence check")
	}
}

func TestFetchExistingBlob(t *testing.T) {
	f := NewFetcher(newMemStore(map[string]string{"tsla_income_statement.csv": incomeCSV}))

	key, _ := NewKey(" Tsla ", IncomeStatement)
	if key.ObjectName() != "tsla_income_statement.csv" {
		t.Fatalf("unexpected object name %q", key.ObjectName())
	}
	raw, err := f.Fetch(context.Background(), key)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !raw.Exists || string(raw.Content) != incomeCSV {
		t.Fatalf("unexpected statement %+v", raw)
	}
}

func TestFetchUnconfiguredStore(t *testing.T) {
	f := NewFetcher(nil)
	key, _ := NewKey("aapl", CashFlow)

	raw, err := f.Fetch(context.Background(), key)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if raw.Exists {
		t.Fatalf("expected missing statement")
	}
}

func TestFetchTransportError(t *testing.T) {
	store := newMemStore(nil)
	store.err = errors.New("permission denied")
	f := NewFetcher(store)
	key, _ := NewKey("aapl", CashFlow)

	if _, err := f.Fetch(context.Background(), key); err == nil {
		t.Fatalf("expected transport error")
	}
}

func TestNewKeyRejectsUnknownType(t *testing.T) {
	if _, err := NewKey("aapl", ReportType("cashflow")); !errors.Is(err, ErrUnknownReportType) {
		t.Fatalf("expected ErrUnknownReportType, got %v", err)
	}
}

func TestNewKeyRejectsUnsafeTickers(t *testing.T) {
	for _, ticker := range []string{"", "../etc", "a/b", "tsla..x", "waytoolongtickersymbol"} {
		if _, err := NewKey(ticker, IncomeStatement); !errors.Is(err, ErrInvalidTicker) {
			t.Fatalf("%q: expected ErrInvalidTicker, got %v", ticker, err)
		}
	}
	for _, ticker := range []string{"TSLA", "brk.b", "BF-B", "^GSPC"} {
		if _, err := NewKey(ticker, IncomeStatement); err != nil {
			t.Fatalf("%q: unexpected error %v", ticker, err)
		}
	}
}
