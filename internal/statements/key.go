package statements

import (
	"fmt"
	"regexp"
	"strings"
)

// Covers symbols such as "tsla", "brk.b", "bf-b" and "^gspc".
var tickerPattern = regexp.MustCompile(`^[a-z0-9^][a-z0-9.=-]{0,15}$`)

// Key addresses a single statement blob.
type Key struct {
	Ticker     string
	ReportType ReportType
}

// NewKey normalizes the ticker and validates the report type.
func NewKey(ticker string, rt ReportType) (Key, error) {
	if !rt.Valid() {
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownReportType, string(rt))
	}
	normalized := NormalizeTicker(ticker)
	if !ValidTicker(normalized) {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidTicker, ticker)
	}
	return Key{Ticker: normalized, ReportType: rt}, nil
}

// ValidTicker reports whether a normalized ticker is safe to use in object names.
func ValidTicker(normalized string) bool {
	return tickerPattern.MatchString(normalized) && !strings.Contains(normalized, "..")
}

// NormalizeTicker lowercases and trims a ticker symbol.
func NormalizeTicker(ticker string) string {
	return strings.ToLower(strings.TrimSpace(ticker))
}

// ObjectName is the blob name, e.g. "tsla_balance_sheet.csv".
func (k Key) ObjectName() string {
	return k.Ticker + "_" + string(k.ReportType) + ".csv"
}

// RawStatement is the result of a fetch. Exists=false is a valid terminal state.
type RawStatement struct {
	Key     Key
	Exists  bool
	Content []byte
}
