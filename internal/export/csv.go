package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/wonny/qvscreen/internal/contracts"
)

// WriteCSV writes screening results as CSV. Unknown values render as empty
// cells so spreadsheets do not mistake missing data for zero.
func WriteCSV(w io.Writer, results []contracts.ScreeningResult) error {
	cw := csv.NewWriter(w)

	header := []string{"symbol", "name", "sector", "overall", "grade"}
	for _, cat := range contracts.Categories() {
		header = append(header, string(cat))
	}
	header = append(header,
		"price",
		"intrinsic_value_bull", "intrinsic_value_base", "intrinsic_value_bear",
		"margin_of_safety_base",
		"passed", "failed_criteria",
	)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range results {
		row := []string{
			r.Symbol,
			r.Name,
			r.Sector,
			cell(r.Overall, 1),
			string(r.Grade),
		}
		for _, cat := range contracts.Categories() {
			row = append(row, cell(r.CategoryScoreFor(cat), 1))
		}

		row = append(row, cell(r.Metrics.Price, 2))
		for _, label := range []string{contracts.ScenarioBull, contracts.ScenarioBase, contracts.ScenarioBear} {
			s, _ := r.ScenarioFor(label)
			row = append(row, cell(s.IntrinsicValue, 2))
		}
		base, _ := r.ScenarioFor(contracts.ScenarioBase)
		row = append(row, cell(base.MarginOfSafety, 4))

		row = append(row,
			strconv.FormatBool(r.Passed),
			strings.Join(r.FailedCriteria, ";"),
		)

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row for %s: %w", r.Symbol, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes screening results to a file.
func WriteCSVFile(path string, results []contracts.ScreeningResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := WriteCSV(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func cell(m contracts.Metric, decimals int) string {
	v, ok := m.Float()
	if !ok {
		return ""
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
