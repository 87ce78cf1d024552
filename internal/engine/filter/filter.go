package filter

import (
	"github.com/wonny/qvscreen/internal/contracts"
	"github.com/wonny/qvscreen/internal/criteria"
)

// Apply evaluates every active gate and returns the names of those that
// failed, in a fixed order. A nil threshold is inactive. An active threshold
// checked against an unknown value fails closed: a stock never passes a gate
// on data it does not have. An empty slice means the stock passed.
func Apply(m contracts.StockMetrics, baseMoS, overall contracts.Metric, f criteria.Filters) []string {
	var failed []string

	check := func(name string, value contracts.Metric, pass func(v float64) bool) {
		v, ok := value.Float()
		if !ok || !pass(v) {
			failed = append(failed, name)
		}
	}

	if f.MaxPERatio != nil {
		check("max_pe_ratio", m.PERatio, func(v float64) bool { return v > 0 && v <= *f.MaxPERatio })
	}
	if f.MaxPBRatio != nil {
		check("max_pb_ratio", m.PBRatio, func(v float64) bool { return v > 0 && v <= *f.MaxPBRatio })
	}
	if f.MinCurrentRatio != nil {
		check("min_current_ratio", m.CurrentRatio, func(v float64) bool { return v >= *f.MinCurrentRatio })
	}
	if f.MaxDebtToEquity != nil {
		check("max_debt_to_equity", m.DebtToEquity, func(v float64) bool { return v >= 0 && v <= *f.MaxDebtToEquity })
	}
	if f.MinInterestCoverage != nil {
		check("min_interest_coverage", m.InterestCoverage, func(v float64) bool { return v >= *f.MinInterestCoverage })
	}
	if f.MinROE != nil {
		check("min_roe", m.ROE, func(v float64) bool { return v >= *f.MinROE })
	}
	if f.MinROIC != nil {
		check("min_roic", m.ROIC, func(v float64) bool { return v >= *f.MinROIC })
	}
	if f.MinOperatingMargin != nil {
		check("min_operating_margin", m.OperatingMargin, func(v float64) bool { return v >= *f.MinOperatingMargin })
	}
	if f.MinEarningsGrowth != nil {
		check("min_earnings_growth", m.EarningsGrowth, func(v float64) bool { return v >= *f.MinEarningsGrowth })
	}
	if f.MinRevenueGrowth != nil {
		check("min_revenue_growth", m.RevenueGrowth, func(v float64) bool { return v >= *f.MinRevenueGrowth })
	}
	if f.MinDividendYield != nil {
		check("min_dividend_yield", m.DividendYield, func(v float64) bool { return v >= *f.MinDividendYield })
	}
	if f.RequireDividend && !m.PaysDividend {
		failed = append(failed, "require_dividend")
	}
	if f.MinMarginOfSafety != nil {
		check("min_margin_of_safety", baseMoS, func(v float64) bool { return v >= *f.MinMarginOfSafety })
	}
	if f.MinOverallScore != nil {
		check("min_overall_score", overall, func(v float64) bool { return v >= *f.MinOverallScore })
	}

	return failed
}
