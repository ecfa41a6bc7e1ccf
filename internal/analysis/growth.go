package analysis

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"stonkie-backend/internal/statements"
)

var hundred = decimal.NewFromInt(100)

// GrowthLine is one computed period-over-period change for a metric.
type GrowthLine struct {
	Metric  string
	Current string
	Prior   string
	Percent decimal.Decimal
}

// String renders e.g. "Total Revenue 2023-12-31 vs 2022-12-31: +18.80%".
func (g GrowthLine) String() string {
	sign := ""
	if g.Percent.IsPositive() {
		sign = "+"
	}
	return fmt.Sprintf("%s %s vs %s: %s%s%%", g.Metric, g.Current, g.Prior, sign, g.Percent.StringFixed(2))
}

// ComputeGrowth compares each pair of adjacent period columns, newest first.
// Pairs with a missing, non-numeric or zero prior value are skipped.
func ComputeGrowth(t statements.Table) []GrowthLine {
	if len(t.Columns) < 3 {
		return nil
	}
	periods := t.Columns[1:]

	var lines []GrowthLine
	for _, row := range t.Rows {
		for i := 0; i+1 < len(periods); i++ {
			cur, ok := numeric(row, periods[i])
			if !ok {
				continue
			}
			prior, ok := numeric(row, periods[i+1])
			if !ok || prior.IsZero() {
				continue
			}
			pct := cur.Sub(prior).Div(prior.Abs()).Mul(hundred).Round(2)
			lines = append(lines, GrowthLine{
				Metric:  strings.TrimSpace(row.Label()),
				Current: periods[i],
				Prior:   periods[i+1],
				Percent: pct,
			})
		}
	}
	return lines
}

// GrowthSegment renders ComputeGrowth as a prompt segment. ok is false when
// nothing could be computed.
func GrowthSegment(t statements.Table) (Segment, bool) {
	lines := ComputeGrowth(t)
	if len(lines) == 0 {
		return Segment{}, false
	}
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l.String())
	}
	return Segment{
		Label:   "These are year-over-year growth rates computed from the income statement.",
		Content: b.String(),
	}, true
}

func numeric(row statements.Row, column string) (decimal.Decimal, bool) {
	v, ok := row.Value(column)
	if !ok {
		return decimal.Decimal{}, false
	}
	f, ok := v.(float64)
	if !ok {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(f), true
}
