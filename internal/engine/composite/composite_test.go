package composite

import (
	"math"
	"testing"

	"github.com/wonny/qvscreen/internal/contracts"
	"github.com/wonny/qvscreen/internal/criteria"
)

func score(cat contracts.Category, v float64) contracts.CategoryScore {
	return contracts.CategoryScore{Category: cat, Score: contracts.Known(v)}
}

func unknownScore(cat contracts.Category) contracts.CategoryScore {
	return contracts.CategoryScore{Category: cat}
}

func TestOverallWeightedMean(t *testing.T) {
	w := criteria.Default().Weights

	scores := []contracts.CategoryScore{
		score(contracts.CategoryValuation, 80),       // 0.25
		score(contracts.CategoryFinancialHealth, 60), // 0.20
		score(contracts.CategoryProfitability, 90),   // 0.20
		score(contracts.CategoryGrowth, 70),          // 0.15
		score(contracts.CategoryManagement, 50),      // 0.10
		score(contracts.CategoryEthics, 100),         // 0.10
	}

	want := 80*0.25 + 60*0.20 + 90*0.20 + 70*0.15 + 50*0.10 + 100*0.10
	got, ok := Overall(scores, w).Float()
	if !ok || math.Abs(got-want) > 1e-9 {
		t.Errorf("Overall = %v known=%v, want %v", got, ok, want)
	}
}

func TestOverallRenormalizesOverKnownCategories(t *testing.T) {
	w := criteria.Default().Weights

	// Only valuation (0.25) and growth (0.15) have data.
	scores := []contracts.CategoryScore{
		score(contracts.CategoryValuation, 80),
		unknownScore(contracts.CategoryFinancialHealth),
		unknownScore(contracts.CategoryProfitability),
		score(contracts.CategoryGrowth, 40),
		unknownScore(contracts.CategoryManagement),
		unknownScore(contracts.CategoryEthics),
	}

	want := (80*0.25 + 40*0.15) / 0.40
	got, ok := Overall(scores, w).Float()
	if !ok || math.Abs(got-want) > 1e-9 {
		t.Errorf("Overall = %v known=%v, want %v", got, ok, want)
	}
}

func TestOverallInvariantToWeightScale(t *testing.T) {
	w := criteria.Default().Weights
	doubled := criteria.Weights{
		Valuation:       w.Valuation * 2,
		FinancialHealth: w.FinancialHealth * 2,
		Profitability:   w.Profitability * 2,
		Growth:          w.Growth * 2,
		Management:      w.Management * 2,
		Ethics:          w.Ethics * 2,
	}

	scores := []contracts.CategoryScore{
		score(contracts.CategoryValuation, 80),
		score(contracts.CategoryGrowth, 40),
		unknownScore(contracts.CategoryEthics),
	}

	a, okA := Overall(scores, w).Float()
	b, okB := Overall(scores, doubled).Float()
	if !okA || !okB || math.Abs(a-b) > 1e-9 {
		t.Errorf("Overall changed with weight scale: %v vs %v", a, b)
	}
}

func TestOverallZeroWeightCategoryIgnored(t *testing.T) {
	w := criteria.Weights{Valuation: 1} // everything else zero

	scores := []contracts.CategoryScore{
		score(contracts.CategoryValuation, 75),
		score(contracts.CategoryEthics, 5), // weight 0, must not move the result
	}

	got, ok := Overall(scores, w).Float()
	if !ok || got != 75 {
		t.Errorf("Overall = %v known=%v, want 75", got, ok)
	}
}

func TestOverallAllUnknown(t *testing.T) {
	w := criteria.Default().Weights

	scores := []contracts.CategoryScore{
		unknownScore(contracts.CategoryValuation),
		unknownScore(contracts.CategoryGrowth),
	}

	if m := Overall(scores, w); m.Known {
		t.Errorf("Overall = %+v, want unknown with no scorable category", m)
	}
	if m := Overall(nil, w); m.Known {
		t.Errorf("Overall(nil) = %+v, want unknown", m)
	}
}
