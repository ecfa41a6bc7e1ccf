package statements

import (
	"fmt"
	"strings"
)

// FilterTable keeps rows whose normalized label is in the whitelist for rt.
// Columns and relative row order are preserved; the input is not modified.
func FilterTable(t Table, rt ReportType) (Table, error) {
	metrics, err := metricsFor(rt)
	if err != nil {
		return Table{}, fmt.Errorf("%w: %q", ErrUnknownReportType, string(rt))
	}

	out := Table{Columns: t.Columns, Rows: make([]Row, 0, len(t.Rows))}
	for _, row := range t.Rows {
		if metrics.contains(normalizeLabel(row.Label())) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out, nil
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
