package contracts

import "time"

// Scenario labels for the DCF estimator.
const (
	ScenarioBull = "bull"
	ScenarioBase = "base"
	ScenarioBear = "bear"
)

// ValuationScenario is one DCF computation under a named assumption set.
// IntrinsicValue and MarginOfSafety stay unknown when an input is missing or
// the assumptions are degenerate (discount rate <= terminal growth).
type ValuationScenario struct {
	Label          string  `json:"label"`
	GrowthRate     float64 `json:"growth_rate"`
	DiscountRate   float64 `json:"discount_rate"`
	TerminalGrowth float64 `json:"terminal_growth"`
	IntrinsicValue Metric  `json:"intrinsic_value"`
	MarginOfSafety Metric  `json:"margin_of_safety"`
}

// ScreeningResult is the full scored outcome for one stock. Created once per
// run and never mutated afterwards.
type ScreeningResult struct {
	Symbol    string              `json:"symbol"`
	Name      string              `json:"name"`
	Sector    string              `json:"sector"`
	Metrics   StockMetrics        `json:"metrics"`
	Scores    []CategoryScore     `json:"scores"` // canonical category order
	Overall   Metric              `json:"overall"`
	Grade     Grade               `json:"grade"`
	Scenarios []ValuationScenario `json:"scenarios"` // bull, base, bear

	Passed         bool     `json:"passed"`
	FailedCriteria []string `json:"failed_criteria,omitempty"`
}

// CategoryScoreFor returns the score for one category, unknown if absent.
func (r *ScreeningResult) CategoryScoreFor(c Category) Metric {
	for _, s := range r.Scores {
		if s.Category == c {
			return s.Score
		}
	}
	return Unknown()
}

// ScenarioFor returns the scenario with the given label.
func (r *ScreeningResult) ScenarioFor(label string) (ValuationScenario, bool) {
	for _, s := range r.Scenarios {
		if s.Label == label {
			return s, true
		}
	}
	return ValuationScenario{}, false
}

// StockError records a stock that could not be scored. One bad stock never
// aborts the batch; the runner collects these alongside the results.
type StockError struct {
	Symbol  string `json:"symbol"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// RunReport is the complete output of one screening run: ranked passing
// stocks, filtered-out stocks for diagnostics, and per-stock failures.
type RunReport struct {
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
	CriteriaName string    `json:"criteria_name"`
	CriteriaHash string    `json:"criteria_hash"`
	Universe     int       `json:"universe"`

	Passed   []ScreeningResult `json:"passed"`   // sorted by overall desc, symbol asc
	Filtered []ScreeningResult `json:"filtered"` // rejected by a gate, or nothing scorable
	Errors   []StockError      `json:"errors"`
}
