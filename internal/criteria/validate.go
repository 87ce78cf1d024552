package criteria

import (
	"fmt"
	"math"
)

// ValidationError is a criteria configuration failure. It is the only error
// class that aborts a screening run, and it is raised before any stock is
// scored.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid criteria: %s: %s", e.Field, e.Message)
}

// Validate checks the criteria before a run. Invalid values are rejected, not
// clamped; the caller owns the fix.
func Validate(c *Criteria) error {
	// Weights: non-negative, at least one positive. They do not need to sum
	// to 1, the composite scorer renormalizes.
	weights := []struct {
		field string
		value float64
	}{
		{"weights.valuation", c.Weights.Valuation},
		{"weights.financial_health", c.Weights.FinancialHealth},
		{"weights.profitability", c.Weights.Profitability},
		{"weights.growth", c.Weights.Growth},
		{"weights.management", c.Weights.Management},
		{"weights.ethics", c.Weights.Ethics},
	}
	for _, w := range weights {
		if w.value < 0 {
			return ValidationError{w.field, "must be >= 0"}
		}
	}
	if c.Weights.Sum() <= 0 {
		return ValidationError{"weights", "at least one weight must be > 0"}
	}

	// Bands: anchors must be distinct or interpolation degenerates.
	bands := []struct {
		field string
		band  Band
	}{
		{"valuation.pe_ratio", c.Valuation.PERatio},
		{"valuation.pb_ratio", c.Valuation.PBRatio},
		{"valuation.ps_ratio", c.Valuation.PSRatio},
		{"valuation.peg_ratio", c.Valuation.PEGRatio},
		{"valuation.margin_of_safety", c.Valuation.MarginOfSafety},
		{"financial_health.current_ratio", c.FinancialHealth.CurrentRatio},
		{"financial_health.quick_ratio", c.FinancialHealth.QuickRatio},
		{"financial_health.debt_to_equity", c.FinancialHealth.DebtToEquity},
		{"financial_health.interest_coverage", c.FinancialHealth.InterestCoverage},
		{"profitability.roe", c.Profitability.ROE},
		{"profitability.roic", c.Profitability.ROIC},
		{"profitability.roa", c.Profitability.ROA},
		{"profitability.operating_margin", c.Profitability.OperatingMargin},
		{"profitability.net_margin", c.Profitability.NetMargin},
		{"growth.earnings_growth", c.Growth.EarningsGrowth},
		{"growth.revenue_growth", c.Growth.RevenueGrowth},
		{"growth.quarterly_momentum", c.Growth.QuarterlyMomentum},
		{"management.insider_ownership", c.Management.InsiderOwnership},
		{"management.efficiency_roe", c.Management.EfficiencyROE},
		{"ethics.esg_score", c.Ethics.ESGScore},
		{"ethics.governance_score", c.Ethics.GovernanceScore},
	}
	for _, b := range bands {
		if b.band.Excellent == b.band.Poor {
			return ValidationError{b.field, "excellent and poor anchors must differ"}
		}
	}

	if c.Management.InstitutionalRange.Low > c.Management.InstitutionalRange.High {
		return ValidationError{"management.institutional_range", "low must be <= high"}
	}
	if c.Management.InstitutionalSlack <= 0 {
		return ValidationError{"management.institutional_slack", "must be > 0"}
	}

	switch c.EthicalProfile {
	case ProfileModerate, ProfileConservative, ProfileFlexible:
	default:
		return ValidationError{"ethical_profile", "must be moderate, conservative or flexible"}
	}

	// Active filter thresholds must be finite. A NaN comparison is always
	// false, so a NaN gate would silently fail every stock.
	filters := []struct {
		field string
		value *float64
	}{
		{"filters.max_pe_ratio", c.Filters.MaxPERatio},
		{"filters.max_pb_ratio", c.Filters.MaxPBRatio},
		{"filters.min_current_ratio", c.Filters.MinCurrentRatio},
		{"filters.max_debt_to_equity", c.Filters.MaxDebtToEquity},
		{"filters.min_interest_coverage", c.Filters.MinInterestCoverage},
		{"filters.min_roe", c.Filters.MinROE},
		{"filters.min_roic", c.Filters.MinROIC},
		{"filters.min_operating_margin", c.Filters.MinOperatingMargin},
		{"filters.min_earnings_growth", c.Filters.MinEarningsGrowth},
		{"filters.min_revenue_growth", c.Filters.MinRevenueGrowth},
		{"filters.min_dividend_yield", c.Filters.MinDividendYield},
		{"filters.min_margin_of_safety", c.Filters.MinMarginOfSafety},
		{"filters.min_overall_score", c.Filters.MinOverallScore},
	}
	for _, f := range filters {
		if f.value != nil && (math.IsNaN(*f.value) || math.IsInf(*f.value, 0)) {
			return ValidationError{f.field, "must be a finite number"}
		}
	}

	// DCF: discount rate must exceed terminal growth for every scenario, or
	// the Gordon-growth terminal value is undefined.
	if c.DCF.HorizonYears < 1 {
		return ValidationError{"dcf.horizon_years", "must be >= 1"}
	}
	scenarios := []struct {
		field string
		s     Scenario
	}{
		{"dcf.bull", c.DCF.Bull},
		{"dcf.base", c.DCF.Base},
		{"dcf.bear", c.DCF.Bear},
	}
	for _, sc := range scenarios {
		if sc.s.DiscountRate <= sc.s.TerminalGrowth {
			return ValidationError{sc.field, fmt.Sprintf(
				"discount_rate (%.4f) must be > terminal_growth (%.4f)",
				sc.s.DiscountRate, sc.s.TerminalGrowth)}
		}
		if sc.s.DiscountRate <= 0 {
			return ValidationError{sc.field + ".discount_rate", "must be > 0"}
		}
	}

	return nil
}
