package criteria

import "github.com/wonny/qvscreen/internal/contracts"

// Criteria is the complete configuration for one screening run: score bands,
// category weights, DCF assumptions and active filter gates. It is immutable
// for the run's duration and read-only to the engine; there is no ambient
// default, callers pass one value into every call.
type Criteria struct {
	Name string `yaml:"name" json:"name"`

	Weights Weights `yaml:"weights" json:"weights"`

	Valuation       ValuationBands       `yaml:"valuation" json:"valuation"`
	FinancialHealth FinancialHealthBands `yaml:"financial_health" json:"financial_health"`
	Profitability   ProfitabilityBands   `yaml:"profitability" json:"profitability"`
	Growth          GrowthBands          `yaml:"growth" json:"growth"`
	Management      ManagementBands      `yaml:"management" json:"management"`
	Ethics          EthicsBands          `yaml:"ethics" json:"ethics"`

	// EthicalProfile adjusts the ethics score: moderate (neutral),
	// conservative (stricter), flexible (more lenient).
	EthicalProfile string `yaml:"ethical_profile" json:"ethical_profile"`

	DCF     DCF     `yaml:"dcf" json:"dcf"`
	Filters Filters `yaml:"filters" json:"filters"`
}

// Weights holds the six category weights. They must be non-negative but need
// not sum to 1; the composite scorer renormalizes over available categories.
type Weights struct {
	Valuation       float64 `yaml:"valuation" json:"valuation"`
	FinancialHealth float64 `yaml:"financial_health" json:"financial_health"`
	Profitability   float64 `yaml:"profitability" json:"profitability"`
	Growth          float64 `yaml:"growth" json:"growth"`
	Management      float64 `yaml:"management" json:"management"`
	Ethics          float64 `yaml:"ethics" json:"ethics"`
}

// For returns the weight for one category.
func (w Weights) For(c contracts.Category) float64 {
	switch c {
	case contracts.CategoryValuation:
		return w.Valuation
	case contracts.CategoryFinancialHealth:
		return w.FinancialHealth
	case contracts.CategoryProfitability:
		return w.Profitability
	case contracts.CategoryGrowth:
		return w.Growth
	case contracts.CategoryManagement:
		return w.Management
	case contracts.CategoryEthics:
		return w.Ethics
	default:
		return 0
	}
}

// Sum returns the total of all six weights.
func (w Weights) Sum() float64 {
	return w.Valuation + w.FinancialHealth + w.Profitability + w.Growth + w.Management + w.Ethics
}

// Band anchors the linear sub-score curve for one metric: a value at or
// better than Excellent scores 100, at or worse than Poor scores 0, linear in
// between. The Excellent anchor always maps to 100, so a lower-is-better
// metric simply places Excellent below Poor.
type Band struct {
	Excellent float64 `yaml:"excellent" json:"excellent"`
	Poor      float64 `yaml:"poor" json:"poor"`
}

// Range is a closed interval.
type Range struct {
	Low  float64 `yaml:"low" json:"low"`
	High float64 `yaml:"high" json:"high"`
}

// ValuationBands configures the valuation category.
type ValuationBands struct {
	PERatio        Band `yaml:"pe_ratio" json:"pe_ratio"`
	PBRatio        Band `yaml:"pb_ratio" json:"pb_ratio"`
	PSRatio        Band `yaml:"ps_ratio" json:"ps_ratio"`
	PEGRatio       Band `yaml:"peg_ratio" json:"peg_ratio"`
	MarginOfSafety Band `yaml:"margin_of_safety" json:"margin_of_safety"`
}

// FinancialHealthBands configures the financial-health category.
type FinancialHealthBands struct {
	CurrentRatio     Band `yaml:"current_ratio" json:"current_ratio"`
	QuickRatio       Band `yaml:"quick_ratio" json:"quick_ratio"`
	DebtToEquity     Band `yaml:"debt_to_equity" json:"debt_to_equity"`
	InterestCoverage Band `yaml:"interest_coverage" json:"interest_coverage"`
}

// ProfitabilityBands configures the profitability category. All anchors are
// fractions (0.20 = 20%).
type ProfitabilityBands struct {
	ROE             Band `yaml:"roe" json:"roe"`
	ROIC            Band `yaml:"roic" json:"roic"`
	ROA             Band `yaml:"roa" json:"roa"`
	OperatingMargin Band `yaml:"operating_margin" json:"operating_margin"`
	NetMargin       Band `yaml:"net_margin" json:"net_margin"`
}

// GrowthBands configures the growth category. Anchors are fractions.
type GrowthBands struct {
	EarningsGrowth    Band `yaml:"earnings_growth" json:"earnings_growth"`
	RevenueGrowth     Band `yaml:"revenue_growth" json:"revenue_growth"`
	QuarterlyMomentum Band `yaml:"quarterly_momentum" json:"quarterly_momentum"`
}

// ManagementBands configures the management category. Institutional ownership
// is scored by distance from the optimal range: inside the range scores 100,
// and the score falls linearly to 0 at InstitutionalSlack beyond either edge.
type ManagementBands struct {
	InsiderOwnership   Band    `yaml:"insider_ownership" json:"insider_ownership"`
	InstitutionalRange Range   `yaml:"institutional_range" json:"institutional_range"`
	InstitutionalSlack float64 `yaml:"institutional_slack" json:"institutional_slack"`
	EfficiencyROE      Band    `yaml:"efficiency_roe" json:"efficiency_roe"`
}

// EthicsBands configures the ethics category. ESG scores are on the provider's
// 0-100 scale, not fractions.
type EthicsBands struct {
	ESGScore        Band `yaml:"esg_score" json:"esg_score"`
	GovernanceScore Band `yaml:"governance_score" json:"governance_score"`
}

// Scenario is one set of DCF assumptions. All rates are fractions per year.
type Scenario struct {
	GrowthRate     float64 `yaml:"growth_rate" json:"growth_rate"`
	DiscountRate   float64 `yaml:"discount_rate" json:"discount_rate"`
	TerminalGrowth float64 `yaml:"terminal_growth" json:"terminal_growth"`
}

// DCF configures the intrinsic-value estimator.
type DCF struct {
	HorizonYears int      `yaml:"horizon_years" json:"horizon_years"`
	Bull         Scenario `yaml:"bull" json:"bull"`
	Base         Scenario `yaml:"base" json:"base"`
	Bear         Scenario `yaml:"bear" json:"bear"`
}

// Filters are the pass/fail gates. A nil threshold is inactive; an active
// threshold applied to an unknown value fails closed.
type Filters struct {
	MaxPERatio          *float64 `yaml:"max_pe_ratio,omitempty" json:"max_pe_ratio,omitempty"`
	MaxPBRatio          *float64 `yaml:"max_pb_ratio,omitempty" json:"max_pb_ratio,omitempty"`
	MinCurrentRatio     *float64 `yaml:"min_current_ratio,omitempty" json:"min_current_ratio,omitempty"`
	MaxDebtToEquity     *float64 `yaml:"max_debt_to_equity,omitempty" json:"max_debt_to_equity,omitempty"`
	MinInterestCoverage *float64 `yaml:"min_interest_coverage,omitempty" json:"min_interest_coverage,omitempty"`
	MinROE              *float64 `yaml:"min_roe,omitempty" json:"min_roe,omitempty"`
	MinROIC             *float64 `yaml:"min_roic,omitempty" json:"min_roic,omitempty"`
	MinOperatingMargin  *float64 `yaml:"min_operating_margin,omitempty" json:"min_operating_margin,omitempty"`
	MinEarningsGrowth   *float64 `yaml:"min_earnings_growth,omitempty" json:"min_earnings_growth,omitempty"`
	MinRevenueGrowth    *float64 `yaml:"min_revenue_growth,omitempty" json:"min_revenue_growth,omitempty"`
	MinDividendYield    *float64 `yaml:"min_dividend_yield,omitempty" json:"min_dividend_yield,omitempty"`
	RequireDividend     bool     `yaml:"require_dividend" json:"require_dividend"`
	MinMarginOfSafety   *float64 `yaml:"min_margin_of_safety,omitempty" json:"min_margin_of_safety,omitempty"` // base scenario
	MinOverallScore     *float64 `yaml:"min_overall_score,omitempty" json:"min_overall_score,omitempty"`
}

// Ethical profiles.
const (
	ProfileModerate     = "moderate"
	ProfileConservative = "conservative"
	ProfileFlexible     = "flexible"
)
