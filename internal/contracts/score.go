package contracts

// Category identifies one of the six fundamental scoring dimensions.
type Category string

const (
	CategoryValuation       Category = "valuation"
	CategoryFinancialHealth Category = "financial_health"
	CategoryProfitability   Category = "profitability"
	CategoryGrowth          Category = "growth"
	CategoryManagement      Category = "management"
	CategoryEthics          Category = "ethics"
)

// Categories lists all six categories in their canonical order.
func Categories() []Category {
	return []Category{
		CategoryValuation,
		CategoryFinancialHealth,
		CategoryProfitability,
		CategoryGrowth,
		CategoryManagement,
		CategoryEthics,
	}
}

// CategoryScore is the outcome of scoring one category for one stock.
// Score is unknown when no sub-metric had data; a stock is never punished
// with a zero for data the source did not have.
type CategoryScore struct {
	Category Category           `json:"category"`
	Score    Metric             `json:"score"`
	Parts    map[string]float64 `json:"parts"`   // sub-metric name -> sub-score (0-100)
	Skipped  int                `json:"skipped"` // sub-metrics excluded for missing data
}

// Grade is the fixed letter mapping of an overall score.
type Grade string

const (
	GradeA    Grade = "A"
	GradeB    Grade = "B"
	GradeC    Grade = "C"
	GradeD    Grade = "D"
	GradeNone Grade = ""
)

// GradeFor maps an overall score to its letter grade. The bands are fixed,
// not criteria configuration.
func GradeFor(overall Metric) Grade {
	if !overall.Known {
		return GradeNone
	}
	switch {
	case overall.Value >= 90:
		return GradeA
	case overall.Value >= 80:
		return GradeB
	case overall.Value >= 70:
		return GradeC
	default:
		return GradeD
	}
}
