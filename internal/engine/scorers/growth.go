package scorers

import (
	"github.com/wonny/qvscreen/internal/contracts"
	"github.com/wonny/qvscreen/internal/criteria"
)

// Growth scores annual earnings and revenue growth plus quarterly earnings
// momentum. All inputs and anchors are fractions.
func Growth(m contracts.StockMetrics, c *criteria.Criteria) contracts.CategoryScore {
	p := newPartSet()

	p.add("earnings_growth", m.EarningsGrowth, c.Growth.EarningsGrowth)
	p.add("revenue_growth", m.RevenueGrowth, c.Growth.RevenueGrowth)
	p.add("quarterly_momentum", m.EarningsQuarterlyGrowth, c.Growth.QuarterlyMomentum)

	return p.result(contracts.CategoryGrowth)
}
