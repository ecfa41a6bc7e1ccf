package statements

import (
	"fmt"
	"strings"
)

// ReportType identifies one of the three financial statement categories.
type ReportType string

const (
	IncomeStatement ReportType = "income_statement"
	BalanceSheet    ReportType = "balance_sheet"
	CashFlow        ReportType = "cash_flow"
)

var reportTypes = []ReportType{IncomeStatement, BalanceSheet, CashFlow}

// ReportTypes returns the valid report types in canonical order.
func ReportTypes() []ReportType {
	out := make([]ReportType, len(reportTypes))
	copy(out, reportTypes)
	return out
}

// ReportTypeNames returns the valid report type tokens.
func ReportTypeNames() []string {
	out := make([]string, 0, len(reportTypes))
	for _, rt := range reportTypes {
		out = append(out, string(rt))
	}
	return out
}

// ParseReportType accepts only exact tokens; "cashflow" or "Cash_Flow" are rejected.
func ParseReportType(raw string) (ReportType, error) {
	rt := ReportType(raw)
	if !rt.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownReportType, raw)
	}
	return rt, nil
}

// Valid reports whether rt is a member of the closed set.
func (rt ReportType) Valid() bool {
	switch rt {
	case IncomeStatement, BalanceSheet, CashFlow:
		return true
	default:
		return false
	}
}

// Title returns a human label used in prompt segments.
func (rt ReportType) Title() string {
	switch rt {
	case IncomeStatement:
		return "income statement"
	case BalanceSheet:
		return "balance sheet"
	case CashFlow:
		return "cash flow statement"
	default:
		return strings.ReplaceAll(string(rt), "_", " ")
	}
}

func (rt ReportType) String() string {
	return string(rt)
}
