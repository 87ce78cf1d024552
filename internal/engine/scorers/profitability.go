package scorers

import (
	"github.com/wonny/qvscreen/internal/contracts"
	"github.com/wonny/qvscreen/internal/criteria"
)

// Profitability scores returns on capital and margins. All inputs and anchors
// are fractions.
func Profitability(m contracts.StockMetrics, c *criteria.Criteria) contracts.CategoryScore {
	p := newPartSet()

	p.add("roe", m.ROE, c.Profitability.ROE)
	p.add("roic", m.ROIC, c.Profitability.ROIC)
	p.add("roa", m.ROA, c.Profitability.ROA)
	p.add("operating_margin", m.OperatingMargin, c.Profitability.OperatingMargin)
	p.add("net_margin", m.NetMargin, c.Profitability.NetMargin)

	return p.result(contracts.CategoryProfitability)
}
