package metrics

import (
	"strings"
	"testing"
)

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	var b strings.Builder
	snap := h.Snapshot()
	var cumulative uint64
	for i := range snap.buckets {
		cumulative += snap.counts[i]
		b.WriteString(formatFloat(snap.buckets[i]))
		b.WriteString("=")
		b.WriteString(formatFloat(float64(cumulative)))
		b.WriteString(";")
	}
	if got := b.String(); got != "10=1;100=2;" {
		t.Fatalf("unexpected cumulative buckets %q", got)
	}
	if snap.count != 3 {
		t.Fatalf("expected count 3, got %d", snap.count)
	}
}

func TestRenderIncludesStatementCounters(t *testing.T) {
	IncStatementFetch("balance_sheet")
	IncStatementMissing()

	out := Render()
	for _, want := range []string{
		"statement_fetch_total",
		`statement_fetch_by_report_total{report_type="balance_sheet"}`,
		"statement_missing_total",
		"analysis_duration_ms_bucket{le=\"+Inf\"}",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in metrics output:\n%s", want, out)
		}
	}
}
