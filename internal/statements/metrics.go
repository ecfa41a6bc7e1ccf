package statements

import "sort"

var (
	incomeStatementMetrics = newWhitelist(
		"total revenue",
		"operating revenue",
		"cost of revenue",
		"gross profit",
		"operating expense",
		"research and development",
		"selling general and administration",
		"operating income",
		"interest expense",
		"pretax income",
		"tax provision",
		"net income",
		"net income common stockholders",
		"basic eps",
		"diluted eps",
		"ebit",
		"ebitda",
	)

	balanceSheetMetrics = newWhitelist(
		"total assets",
		"current assets",
		"cash and cash equivalents",
		"accounts receivable",
		"inventory",
		"total liabilities net minority interest",
		"current liabilities",
		"accounts payable",
		"total debt",
		"long term debt",
		"net debt",
		"working capital",
		"stockholders equity",
		"common stock equity",
		"retained earnings",
		"total equity gross minority interest",
		"invested capital",
		"tangible book value",
	)

	cashFlowMetrics = newWhitelist(
		"operating cash flow",
		"investing cash flow",
		"financing cash flow",
		"free cash flow",
		"capital expenditure",
		"depreciation and amortization",
		"stock based compensation",
		"issuance of debt",
		"repayment of debt",
		"repurchase of capital stock",
		"cash dividends paid",
		"beginning cash position",
		"end cash position",
		"changes in cash",
	)
)

type whitelist map[string]struct{}

func newWhitelist(labels ...string) whitelist {
	w := make(whitelist, len(labels))
	for _, l := range labels {
		w[l] = struct{}{}
	}
	return w
}

func (w whitelist) contains(label string) bool {
	_, ok := w[label]
	return ok
}

func metricsFor(rt ReportType) (whitelist, error) {
	switch rt {
	case IncomeStatement:
		return incomeStatementMetrics, nil
	case BalanceSheet:
		return balanceSheetMetrics, nil
	case CashFlow:
		return cashFlowMetrics, nil
	default:
		return nil, ErrUnknownReportType
	}
}

// Metrics returns the canonical labels retained for rt.
func Metrics(rt ReportType) ([]string, error) {
	w, err := metricsFor(rt)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(w))
	for l := range w {
		out = append(out, l)
	}
	sort.Strings(out)
	return out, nil
}
