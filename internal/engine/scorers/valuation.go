package scorers

import (
	"github.com/wonny/qvscreen/internal/contracts"
	"github.com/wonny/qvscreen/internal/criteria"
)

// Valuation scores price multiples plus the base-scenario margin of safety.
// Non-positive PE, PB, PS and PEG are floored at 0 instead of riding the
// lower-is-better curve to 100: a negative multiple means losses or negative
// equity, not a bargain.
func Valuation(m contracts.StockMetrics, baseMoS contracts.Metric, c *criteria.Criteria) contracts.CategoryScore {
	p := newPartSet()

	addMultiple(p, "pe_ratio", m.PERatio, c.Valuation.PERatio)
	addMultiple(p, "pb_ratio", m.PBRatio, c.Valuation.PBRatio)
	addMultiple(p, "ps_ratio", m.PSRatio, c.Valuation.PSRatio)
	addMultiple(p, "peg_ratio", m.PEGRatio, c.Valuation.PEGRatio)

	if v, ok := baseMoS.Float(); ok {
		p.addScore("margin_of_safety", linearScore(v, c.Valuation.MarginOfSafety))
	} else {
		p.skip()
	}

	return p.result(contracts.CategoryValuation)
}

func addMultiple(p *partSet, name string, m contracts.Metric, b criteria.Band) {
	v, ok := m.Float()
	if !ok {
		p.skip()
		return
	}
	if v <= 0 {
		p.addScore(name, 0)
		return
	}
	p.addScore(name, linearScore(v, b))
}
