package scorers

import (
	"github.com/wonny/qvscreen/internal/contracts"
	"github.com/wonny/qvscreen/internal/criteria"
)

// Ethics scores ESG and governance ratings on the provider's 0-100 scale,
// then applies the ethical-profile multiplier. Conservative profiles discount
// the score, flexible profiles boost it, and the result stays within 0-100.
func Ethics(m contracts.StockMetrics, c *criteria.Criteria) contracts.CategoryScore {
	p := newPartSet()

	p.add("esg_score", m.ESGScore, c.Ethics.ESGScore)
	p.add("governance_score", m.GovernanceScore, c.Ethics.GovernanceScore)

	cs := p.result(contracts.CategoryEthics)
	cs.Score = cs.Score.Map(func(s float64) float64 {
		s *= profileMultiplier(c.EthicalProfile)
		return 100 * clamp01(s/100)
	})
	return cs
}

func profileMultiplier(profile string) float64 {
	switch profile {
	case criteria.ProfileConservative:
		return 0.9
	case criteria.ProfileFlexible:
		return 1.1
	default:
		return 1.0
	}
}
