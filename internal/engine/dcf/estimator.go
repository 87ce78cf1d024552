package dcf

import (
	"math"

	"github.com/wonny/qvscreen/internal/contracts"
	"github.com/wonny/qvscreen/internal/criteria"
)

// Estimate computes the bull, base and bear intrinsic-value scenarios for one
// stock. Missing free cash flow or share count leaves every scenario's
// estimate unknown; a degenerate assumption set (discount rate at or below
// terminal growth) leaves that one scenario unknown.
func Estimate(m contracts.StockMetrics, cfg criteria.DCF) []contracts.ValuationScenario {
	return []contracts.ValuationScenario{
		estimate(contracts.ScenarioBull, cfg.Bull, cfg.HorizonYears, m),
		estimate(contracts.ScenarioBase, cfg.Base, cfg.HorizonYears, m),
		estimate(contracts.ScenarioBear, cfg.Bear, cfg.HorizonYears, m),
	}
}

// BaseMarginOfSafety extracts the base-scenario margin of safety from a
// scenario slice produced by Estimate.
func BaseMarginOfSafety(scenarios []contracts.ValuationScenario) contracts.Metric {
	for _, s := range scenarios {
		if s.Label == contracts.ScenarioBase {
			return s.MarginOfSafety
		}
	}
	return contracts.Unknown()
}

func estimate(label string, s criteria.Scenario, horizon int, m contracts.StockMetrics) contracts.ValuationScenario {
	out := contracts.ValuationScenario{
		Label:          label,
		GrowthRate:     s.GrowthRate,
		DiscountRate:   s.DiscountRate,
		TerminalGrowth: s.TerminalGrowth,
	}

	// Gordon growth is undefined at r <= g. Validation rejects such criteria
	// up front, so this only guards direct library callers.
	if s.DiscountRate <= s.TerminalGrowth || horizon < 1 {
		return out
	}

	fcf, okFCF := m.FreeCashFlow.Float()
	shares, okShares := m.SharesOutstanding.Float()
	if !okFCF || !okShares || shares <= 0 {
		return out
	}

	fcfPerShare := fcf / shares

	// Project per-share FCF over the horizon, with growth fading linearly
	// from the scenario rate in year 1 to the terminal rate in the final
	// year. Discount each year and the Gordon terminal value back to today.
	var pv float64
	projected := fcfPerShare
	for year := 1; year <= horizon; year++ {
		projected *= 1 + fadeGrowth(s.GrowthRate, s.TerminalGrowth, year, horizon)
		pv += projected / math.Pow(1+s.DiscountRate, float64(year))
	}

	terminal := projected * (1 + s.TerminalGrowth) / (s.DiscountRate - s.TerminalGrowth)
	pv += terminal / math.Pow(1+s.DiscountRate, float64(horizon))

	out.IntrinsicValue = contracts.Known(pv)

	// Margin of safety needs both a positive intrinsic value and a price.
	price, okPrice := m.Price.Float()
	if pv > 0 && okPrice {
		out.MarginOfSafety = contracts.Known((pv - price) / pv)
	}

	return out
}

// fadeGrowth interpolates the growth rate for one projection year: the first
// year uses the scenario rate, the last year the terminal rate.
func fadeGrowth(start, terminal float64, year, horizon int) float64 {
	if horizon <= 1 {
		return start
	}
	t := float64(year-1) / float64(horizon-1)
	return start + (terminal-start)*t
}
