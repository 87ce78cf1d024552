package scorers

import (
	"github.com/wonny/qvscreen/internal/contracts"
	"github.com/wonny/qvscreen/internal/criteria"
)

// linearScore maps v onto 0..100 along the band: the Excellent anchor scores
// 100, the Poor anchor scores 0, linear between, clamped outside. Works for
// both orientations since the curve follows the anchors.
func linearScore(v float64, b criteria.Band) float64 {
	t := (v - b.Poor) / (b.Excellent - b.Poor)
	return 100 * clamp01(t)
}

// rangeScore scores distance from a closed interval: inside scores 100 and
// the score falls linearly to 0 at slack beyond either edge.
func rangeScore(v float64, r criteria.Range, slack float64) float64 {
	var dist float64
	switch {
	case v < r.Low:
		dist = r.Low - v
	case v > r.High:
		dist = v - r.High
	default:
		return 100
	}
	return 100 * clamp01(1-dist/slack)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// partSet accumulates sub-scores for one category. Unknown metrics are
// counted as skipped, never folded in as zero.
type partSet struct {
	parts   map[string]float64
	skipped int
}

func newPartSet() *partSet {
	return &partSet{parts: make(map[string]float64)}
}

// add scores a known metric against its band and records it under name.
func (p *partSet) add(name string, m contracts.Metric, b criteria.Band) {
	v, ok := m.Float()
	if !ok {
		p.skipped++
		return
	}
	p.parts[name] = linearScore(v, b)
}

// addScore records an already-computed sub-score.
func (p *partSet) addScore(name string, score float64) {
	p.parts[name] = score
}

func (p *partSet) skip() {
	p.skipped++
}

// result averages the recorded parts into a CategoryScore. With no parts the
// score is unknown.
func (p *partSet) result(cat contracts.Category) contracts.CategoryScore {
	cs := contracts.CategoryScore{
		Category: cat,
		Parts:    p.parts,
		Skipped:  p.skipped,
	}
	if len(p.parts) == 0 {
		return cs
	}

	var sum float64
	for _, s := range p.parts {
		sum += s
	}
	cs.Score = contracts.Known(sum / float64(len(p.parts)))
	return cs
}
