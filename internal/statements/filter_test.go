package statements

import (
	"errors"
	"reflect"
	"testing"
)

func TestFilterKeepsWhitelistedRowsInOrder(t *testing.T) {
	table, err := ParseTable([]byte(incomeCSV))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	filtered, err := FilterTable(table, IncomeStatement)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(filtered.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(filtered.Rows))
	}
	if filtered.Rows[0].Label() != "Total Revenue" || filtered.Rows[1].Label() != "NET INCOME" {
		t.Fatalf("unexpected rows: %q, %q", filtered.Rows[0].Label(), filtered.Rows[1].Label())
	}
	if !reflect.DeepEqual(filtered.Columns, table.Columns) {
		t.Fatalf("columns changed: %v vs %v", filtered.Columns, table.Columns)
	}
	if len(table.Rows) != 5 {
		t.Fatalf("source table mutated")
	}
}

func TestFilterIsIdempotentAndNeverGrows(t *testing.T) {
	table, err := ParseTable([]byte(incomeCSV))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	for _, rt := range ReportTypes() {
		once, err := FilterTable(table, rt)
		if err != nil {
			t.Fatalf("%s: filter: %v", rt, err)
		}
		twice, err := FilterTable(once, rt)
		if err != nil {
			t.Fatalf("%s: refilter: %v", rt, err)
		}
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("%s: filter not idempotent", rt)
		}
		if len(once.Rows) > len(table.Rows) {
			t.Fatalf("%s: filter increased rows", rt)
		}
		if !reflect.DeepEqual(once.Columns, table.Columns) {
			t.Fatalf("%s: filter altered columns", rt)
		}
	}
}

func TestFilterMatchesCaseInsensitiveExactOnly(t *testing.T) {
	cols := []string{"metric", "2023"}
	table := Table{Columns: cols, Rows: []Row{
		NewRow(cols, "  Total Revenue ", 1.0),
		NewRow(cols, "total revenue growth", 2.0),
		NewRow(cols, "revenue", 3.0),
	}}

	filtered, err := FilterTable(table, IncomeStatement)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(filtered.Rows) != 1 || filtered.Rows[0].Label() != "  Total Revenue " {
		t.Fatalf("unexpected rows: %+v", filtered.Rows)
	}
}

func TestFilterZeroMatches(t *testing.T) {
	cols := []string{"metric", "2023"}
	table := Table{Columns: cols, Rows: []Row{NewRow(cols, "Mystery", 1.0)}}

	filtered, err := FilterTable(table, CashFlow)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if filtered.Rows == nil || len(filtered.Rows) != 0 {
		t.Fatalf("expected empty non-nil rows, got %#v", filtered.Rows)
	}
	if !reflect.DeepEqual(filtered.Columns, cols) {
		t.Fatalf("columns changed")
	}
}

func TestFilterRejectsUnknownReportType(t *testing.T) {
	_, err := FilterTable(Table{}, ReportType("cashflow"))
	if !errors.Is(err, ErrUnknownReportType) {
		t.Fatalf("expected ErrUnknownReportType, got %v", err)
	}
	if _, err := ParseReportType("cashflow"); !errors.Is(err, ErrUnknownReportType) {
		t.Fatalf("expected parse to reject cashflow, got %v", err)
	}
}

func TestWhitelistsAreDisjointAndLowercase(t *testing.T) {
	owner := map[string]ReportType{}
	for _, rt := range ReportTypes() {
		labels, err := Metrics(rt)
		if err != nil {
			t.Fatalf("%s: %v", rt, err)
		}
		if len(labels) == 0 {
			t.Fatalf("%s: empty whitelist", rt)
		}
		for _, l := range labels {
			if l != normalizeLabel(l) {
				t.Fatalf("%s: label %q not normalized", rt, l)
			}
			if prev, dup := owner[l]; dup {
				t.Fatalf("label %q in both %s and %s", l, prev, rt)
			}
			owner[l] = rt
		}
	}
}
