package scorers

import (
	"github.com/wonny/qvscreen/internal/contracts"
	"github.com/wonny/qvscreen/internal/criteria"
)

// ScoreAll runs all six category scorers and returns their scores in the
// canonical category order. baseMoS is the base-scenario margin of safety
// feeding the valuation category.
func ScoreAll(m contracts.StockMetrics, baseMoS contracts.Metric, c *criteria.Criteria) []contracts.CategoryScore {
	return []contracts.CategoryScore{
		Valuation(m, baseMoS, c),
		FinancialHealth(m, c),
		Profitability(m, c),
		Growth(m, c),
		Management(m, c),
		Ethics(m, c),
	}
}
