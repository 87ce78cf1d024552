package composite

import (
	"github.com/wonny/qvscreen/internal/contracts"
	"github.com/wonny/qvscreen/internal/criteria"
)

// Overall combines category scores into the weighted composite. Categories
// with an unknown score or a zero weight are excluded and the remaining
// weights renormalized, so missing data shifts emphasis instead of dragging
// the composite toward zero. With nothing scorable the composite is unknown.
func Overall(scores []contracts.CategoryScore, w criteria.Weights) contracts.Metric {
	var weightedSum, weightSum float64

	for _, cs := range scores {
		s, ok := cs.Score.Float()
		if !ok {
			continue
		}
		weight := w.For(cs.Category)
		if weight <= 0 {
			continue
		}
		weightedSum += s * weight
		weightSum += weight
	}

	if weightSum == 0 {
		return contracts.Unknown()
	}
	return contracts.Known(weightedSum / weightSum)
}
