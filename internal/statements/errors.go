package statements

import "errors"

var (
	// ErrUnknownReportType is returned for report types outside the closed set.
	ErrUnknownReportType = errors.New("unknown report type")
	// ErrMalformedInput is returned when statement content cannot be parsed as a table.
	ErrMalformedInput = errors.New("malformed statement content")
	// ErrInvalidTicker is returned for tickers that cannot form a safe object name.
	ErrInvalidTicker = errors.New("invalid ticker")
)
