package contracts

// Units of percentage-like fields in a raw payload.
const (
	UnitsPercent  = "percent"  // 15.0 means 15%
	UnitsFraction = "fraction" // 0.15 means 15%
)

// RawMetrics is the fetch-boundary payload for one stock. Pointer fields let
// absent JSON keys stay nil instead of decoding to zero; the normalizer turns
// nil into an unknown Metric.
type RawMetrics struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
	Market string `json:"market"`

	// Units declares how percentage-like fields are scaled. Empty defaults
	// to "percent", which is what the upstream fundamentals APIs emit.
	Units string `json:"units,omitempty"`

	Price     *float64 `json:"price,omitempty"`
	MarketCap *float64 `json:"market_cap,omitempty"`

	// Valuation ratios
	PERatio  *float64 `json:"pe_ratio,omitempty"`
	PBRatio  *float64 `json:"pb_ratio,omitempty"`
	PSRatio  *float64 `json:"ps_ratio,omitempty"`
	PEGRatio *float64 `json:"peg_ratio,omitempty"`

	// Liquidity / leverage
	CurrentRatio     *float64 `json:"current_ratio,omitempty"`
	QuickRatio       *float64 `json:"quick_ratio,omitempty"`
	DebtToEquity     *float64 `json:"debt_to_equity,omitempty"`
	InterestCoverage *float64 `json:"interest_coverage,omitempty"`

	// Profitability (percentage-like)
	ROE             *float64 `json:"roe,omitempty"`
	ROIC            *float64 `json:"roic,omitempty"`
	ROA             *float64 `json:"roa,omitempty"`
	OperatingMargin *float64 `json:"operating_margin,omitempty"`
	NetMargin       *float64 `json:"net_margin,omitempty"`
	GrossMargin     *float64 `json:"gross_margin,omitempty"`

	// Growth (percentage-like)
	EarningsGrowth          *float64 `json:"earnings_growth,omitempty"`
	RevenueGrowth           *float64 `json:"revenue_growth,omitempty"`
	EarningsQuarterlyGrowth *float64 `json:"earnings_quarterly_growth,omitempty"`

	// Ownership (percentage-like)
	InsiderOwnership       *float64 `json:"insider_ownership,omitempty"`
	InstitutionalOwnership *float64 `json:"institutional_ownership,omitempty"`

	// ESG, 0-100 scales
	ESGScore        *float64 `json:"esg_score,omitempty"`
	GovernanceScore *float64 `json:"governance_score,omitempty"`

	// Dividends
	DividendYield *float64 `json:"dividend_yield,omitempty"` // percentage-like
	PayoutRatio   *float64 `json:"payout_ratio,omitempty"`   // percentage-like
	PaysDividend  *bool    `json:"pays_dividend,omitempty"`

	// DCF inputs
	FreeCashFlow      *float64 `json:"free_cash_flow,omitempty"`
	SharesOutstanding *float64 `json:"shares_outstanding,omitempty"`
}

// StockMetrics is the canonical per-stock snapshot consumed by the engine.
// Every percentage-like field is a fraction (0.15 = 15%) without exception;
// the normalizer is the only place that converts units.
type StockMetrics struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
	Market string `json:"market"`

	Price     Metric `json:"price"`
	MarketCap Metric `json:"market_cap"`

	PERatio  Metric `json:"pe_ratio"`
	PBRatio  Metric `json:"pb_ratio"`
	PSRatio  Metric `json:"ps_ratio"`
	PEGRatio Metric `json:"peg_ratio"`

	CurrentRatio     Metric `json:"current_ratio"`
	QuickRatio       Metric `json:"quick_ratio"`
	DebtToEquity     Metric `json:"debt_to_equity"`
	InterestCoverage Metric `json:"interest_coverage"`

	ROE             Metric `json:"roe"`
	ROIC            Metric `json:"roic"`
	ROA             Metric `json:"roa"`
	OperatingMargin Metric `json:"operating_margin"`
	NetMargin       Metric `json:"net_margin"`
	GrossMargin     Metric `json:"gross_margin"`

	EarningsGrowth          Metric `json:"earnings_growth"`
	RevenueGrowth           Metric `json:"revenue_growth"`
	EarningsQuarterlyGrowth Metric `json:"earnings_quarterly_growth"`

	InsiderOwnership       Metric `json:"insider_ownership"`
	InstitutionalOwnership Metric `json:"institutional_ownership"`

	ESGScore        Metric `json:"esg_score"`
	GovernanceScore Metric `json:"governance_score"`

	DividendYield Metric `json:"dividend_yield"`
	PayoutRatio   Metric `json:"payout_ratio"`
	PaysDividend  bool   `json:"pays_dividend"`

	FreeCashFlow      Metric `json:"free_cash_flow"`
	SharesOutstanding Metric `json:"shares_outstanding"`
}

// MetricsPayload is one screening run's input: raw metrics keyed by symbol.
type MetricsPayload map[string]RawMetrics
