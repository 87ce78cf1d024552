package dcf

import (
	"math"
	"testing"

	"github.com/wonny/qvscreen/internal/contracts"
	"github.com/wonny/qvscreen/internal/criteria"
)

func metrics(price, fcf, shares float64) contracts.StockMetrics {
	return contracts.StockMetrics{
		Symbol:            "TEST",
		Price:             contracts.Known(price),
		FreeCashFlow:      contracts.Known(fcf),
		SharesOutstanding: contracts.Known(shares),
	}
}

func onlyScenario(s criteria.Scenario, horizon int) criteria.DCF {
	return criteria.DCF{HorizonYears: horizon, Bull: s, Base: s, Bear: s}
}

func TestEstimateSingleYearHorizon(t *testing.T) {
	// FCF/share 10, one year at 10% growth, 10% discount, 5% terminal:
	// year-1 FCF 11, PV 10; terminal 11*1.05/0.05 = 231, PV 210; total 220.
	cfg := onlyScenario(criteria.Scenario{
		GrowthRate:     0.10,
		DiscountRate:   0.10,
		TerminalGrowth: 0.05,
	}, 1)

	scenarios := Estimate(metrics(110, 1000, 100), cfg)
	base, _ := findScenario(scenarios, contracts.ScenarioBase)

	if iv, ok := base.IntrinsicValue.Float(); !ok || math.Abs(iv-220) > 1e-9 {
		t.Errorf("intrinsic value = %v known=%v, want 220", iv, ok)
	}
	if mos, ok := base.MarginOfSafety.Float(); !ok || math.Abs(mos-0.5) > 1e-9 {
		t.Errorf("margin of safety = %v known=%v, want 0.5", mos, ok)
	}
}

func TestEstimateGrowthFadesToTerminal(t *testing.T) {
	// Two-year horizon: year 1 grows at the scenario rate, year 2 at the
	// terminal rate. 10 -> 11 -> 11.55; PVs 10 + 9.5454..; terminal
	// 11.55*1.05/0.05 = 242.55, PV 200.4545..; total 220.
	cfg := onlyScenario(criteria.Scenario{
		GrowthRate:     0.10,
		DiscountRate:   0.10,
		TerminalGrowth: 0.05,
	}, 2)

	scenarios := Estimate(metrics(110, 1000, 100), cfg)
	base, _ := findScenario(scenarios, contracts.ScenarioBase)

	if iv, ok := base.IntrinsicValue.Float(); !ok || math.Abs(iv-220) > 1e-9 {
		t.Errorf("intrinsic value = %v known=%v, want 220", iv, ok)
	}
}

func TestEstimateDegenerateAssumptions(t *testing.T) {
	cfg := onlyScenario(criteria.Scenario{
		GrowthRate:     0.08,
		DiscountRate:   0.03,
		TerminalGrowth: 0.03, // r == g, Gordon undefined
	}, 5)

	for _, s := range Estimate(metrics(100, 1000, 100), cfg) {
		if s.IntrinsicValue.Known || s.MarginOfSafety.Known {
			t.Errorf("%s: degenerate assumptions must stay unknown", s.Label)
		}
	}
}

func TestEstimateMissingInputs(t *testing.T) {
	cfg := criteria.Default().DCF

	cases := []struct {
		name string
		m    contracts.StockMetrics
	}{
		{"no fcf", contracts.StockMetrics{
			Price:             contracts.Known(100),
			SharesOutstanding: contracts.Known(100),
		}},
		{"no shares", contracts.StockMetrics{
			Price:        contracts.Known(100),
			FreeCashFlow: contracts.Known(1000),
		}},
		{"zero shares", metrics(100, 1000, 0)},
	}
	for _, tc := range cases {
		for _, s := range Estimate(tc.m, cfg) {
			if s.IntrinsicValue.Known {
				t.Errorf("%s/%s: intrinsic value known, want unknown", tc.name, s.Label)
			}
		}
	}
}

func TestEstimateNegativeFCFHasNoMarginOfSafety(t *testing.T) {
	cfg := onlyScenario(criteria.Scenario{
		GrowthRate:     0.10,
		DiscountRate:   0.10,
		TerminalGrowth: 0.05,
	}, 1)

	scenarios := Estimate(metrics(110, -1000, 100), cfg)
	base, _ := findScenario(scenarios, contracts.ScenarioBase)

	if iv, ok := base.IntrinsicValue.Float(); !ok || iv >= 0 {
		t.Errorf("intrinsic value = %v known=%v, want known negative", iv, ok)
	}
	if base.MarginOfSafety.Known {
		t.Error("margin of safety must be unknown for non-positive intrinsic value")
	}
}

func TestEstimateScenarioOrderAndAssumptions(t *testing.T) {
	cfg := criteria.Default().DCF
	scenarios := Estimate(metrics(100, 1000, 100), cfg)

	wantLabels := []string{contracts.ScenarioBull, contracts.ScenarioBase, contracts.ScenarioBear}
	if len(scenarios) != 3 {
		t.Fatalf("got %d scenarios, want 3", len(scenarios))
	}
	for i, label := range wantLabels {
		if scenarios[i].Label != label {
			t.Errorf("scenarios[%d] = %s, want %s", i, scenarios[i].Label, label)
		}
	}

	// Bull must value the same stock at least as high as bear.
	bull, _ := scenarios[0].IntrinsicValue.Float()
	bear, _ := scenarios[2].IntrinsicValue.Float()
	if bull <= bear {
		t.Errorf("bull IV %v not above bear IV %v", bull, bear)
	}
}

func TestBaseMarginOfSafety(t *testing.T) {
	cfg := criteria.Default().DCF
	scenarios := Estimate(metrics(50, 1000, 100), cfg)

	mos := BaseMarginOfSafety(scenarios)
	base, _ := findScenario(scenarios, contracts.ScenarioBase)
	if mos != base.MarginOfSafety {
		t.Errorf("BaseMarginOfSafety = %+v, want %+v", mos, base.MarginOfSafety)
	}

	if m := BaseMarginOfSafety(nil); m.Known {
		t.Error("empty scenario slice must yield unknown")
	}
}

func findScenario(scenarios []contracts.ValuationScenario, label string) (contracts.ValuationScenario, bool) {
	for _, s := range scenarios {
		if s.Label == label {
			return s, true
		}
	}
	return contracts.ValuationScenario{}, false
}
