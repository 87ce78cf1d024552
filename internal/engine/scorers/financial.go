package scorers

import (
	"github.com/wonny/qvscreen/internal/contracts"
	"github.com/wonny/qvscreen/internal/criteria"
)

// FinancialHealth scores liquidity and leverage. Negative debt-to-equity
// signals negative shareholder equity and is floored at 0.
func FinancialHealth(m contracts.StockMetrics, c *criteria.Criteria) contracts.CategoryScore {
	p := newPartSet()

	p.add("current_ratio", m.CurrentRatio, c.FinancialHealth.CurrentRatio)
	p.add("quick_ratio", m.QuickRatio, c.FinancialHealth.QuickRatio)

	if v, ok := m.DebtToEquity.Float(); ok {
		if v < 0 {
			p.addScore("debt_to_equity", 0)
		} else {
			p.addScore("debt_to_equity", linearScore(v, c.FinancialHealth.DebtToEquity))
		}
	} else {
		p.skip()
	}

	p.add("interest_coverage", m.InterestCoverage, c.FinancialHealth.InterestCoverage)

	return p.result(contracts.CategoryFinancialHealth)
}
