package scorers

import (
	"github.com/wonny/qvscreen/internal/contracts"
	"github.com/wonny/qvscreen/internal/criteria"
)

// Management scores ownership structure and capital efficiency. Institutional
// ownership is scored by distance from the optimal range: too little suggests
// no professional conviction, too much crowds the float.
func Management(m contracts.StockMetrics, c *criteria.Criteria) contracts.CategoryScore {
	p := newPartSet()

	p.add("insider_ownership", m.InsiderOwnership, c.Management.InsiderOwnership)

	if v, ok := m.InstitutionalOwnership.Float(); ok {
		p.addScore("institutional_ownership", rangeScore(v, c.Management.InstitutionalRange, c.Management.InstitutionalSlack))
	} else {
		p.skip()
	}

	p.add("efficiency_roe", m.ROE, c.Management.EfficiencyROE)

	return p.result(contracts.CategoryManagement)
}
