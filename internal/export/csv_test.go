package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/wonny/qvscreen/internal/contracts"
)

func TestWriteCSV(t *testing.T) {
	results := []contracts.ScreeningResult{
		{
			Symbol:  "AAPL",
			Name:    "Apple Inc.",
			Sector:  "Information Technology",
			Overall: contracts.Known(87.5),
			Grade:   contracts.GradeB,
			Scores: []contracts.CategoryScore{
				{Category: contracts.CategoryValuation, Score: contracts.Known(72)},
			},
			Scenarios: []contracts.ValuationScenario{
				{Label: contracts.ScenarioBull, IntrinsicValue: contracts.Known(220.4567)},
				{Label: contracts.ScenarioBase, IntrinsicValue: contracts.Known(180), MarginOfSafety: contracts.Known(0.125)},
				{Label: contracts.ScenarioBear},
			},
			Metrics:        contracts.StockMetrics{Price: contracts.Known(157.5)},
			Passed:         false,
			FailedCriteria: []string{"max_pe_ratio", "min_roe"},
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, results); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(rows))
	}

	header, row := rows[0], rows[1]
	get := func(col string) string {
		for i, h := range header {
			if h == col {
				return row[i]
			}
		}
		t.Fatalf("missing column %q", col)
		return ""
	}

	if got := get("overall"); got != "87.5" {
		t.Errorf("overall = %q", got)
	}
	if got := get("grade"); got != "B" {
		t.Errorf("grade = %q", got)
	}
	if got := get("valuation"); got != "72.0" {
		t.Errorf("valuation = %q", got)
	}
	// Unscored categories and unknown scenario values render empty.
	if got := get("growth"); got != "" {
		t.Errorf("growth = %q, want empty", got)
	}
	if got := get("intrinsic_value_bear"); got != "" {
		t.Errorf("bear IV = %q, want empty", got)
	}
	if got := get("intrinsic_value_bull"); got != "220.46" {
		t.Errorf("bull IV = %q", got)
	}
	if got := get("margin_of_safety_base"); got != "0.1250" {
		t.Errorf("base MoS = %q", got)
	}
	if got := get("failed_criteria"); got != "max_pe_ratio;min_roe" {
		t.Errorf("failed_criteria = %q", got)
	}
	if got := get("passed"); got != "false" {
		t.Errorf("passed = %q", got)
	}
}

func TestWriteCSVEmptyResults(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("got %d lines, want header only", len(lines))
	}
}
