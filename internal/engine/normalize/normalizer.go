package normalize

import (
	"fmt"

	"github.com/wonny/qvscreen/internal/contracts"
)

// Normalize converts one raw payload into the canonical StockMetrics form.
// Absent fields become unknown metrics, NaN/Inf are rejected, and
// percentage-like fields are converted to fractions exactly once, driven by
// the payload's declared units.
func Normalize(raw contracts.RawMetrics) (contracts.StockMetrics, error) {
	scale, err := percentScale(raw.Units)
	if err != nil {
		return contracts.StockMetrics{}, err
	}

	m := contracts.StockMetrics{
		Symbol: raw.Symbol,
		Name:   raw.Name,
		Sector: raw.Sector,
		Market: raw.Market,

		Price:     metric(raw.Price),
		MarketCap: metric(raw.MarketCap),

		PERatio:  metric(raw.PERatio),
		PBRatio:  metric(raw.PBRatio),
		PSRatio:  metric(raw.PSRatio),
		PEGRatio: metric(raw.PEGRatio),

		CurrentRatio:     metric(raw.CurrentRatio),
		QuickRatio:       metric(raw.QuickRatio),
		DebtToEquity:     metric(raw.DebtToEquity),
		InterestCoverage: metric(raw.InterestCoverage),

		ROE:             percentMetric(raw.ROE, scale),
		ROIC:            percentMetric(raw.ROIC, scale),
		ROA:             percentMetric(raw.ROA, scale),
		OperatingMargin: percentMetric(raw.OperatingMargin, scale),
		NetMargin:       percentMetric(raw.NetMargin, scale),
		GrossMargin:     percentMetric(raw.GrossMargin, scale),

		EarningsGrowth:          percentMetric(raw.EarningsGrowth, scale),
		RevenueGrowth:           percentMetric(raw.RevenueGrowth, scale),
		EarningsQuarterlyGrowth: percentMetric(raw.EarningsQuarterlyGrowth, scale),

		InsiderOwnership:       percentMetric(raw.InsiderOwnership, scale),
		InstitutionalOwnership: percentMetric(raw.InstitutionalOwnership, scale),

		// ESG scores stay on their native 0-100 scale.
		ESGScore:        metric(raw.ESGScore),
		GovernanceScore: metric(raw.GovernanceScore),

		DividendYield: percentMetric(raw.DividendYield, scale),
		PayoutRatio:   percentMetric(raw.PayoutRatio, scale),

		FreeCashFlow:      metric(raw.FreeCashFlow),
		SharesOutstanding: metric(raw.SharesOutstanding),
	}

	if raw.PaysDividend != nil {
		m.PaysDividend = *raw.PaysDividend
	} else if y, ok := m.DividendYield.Float(); ok && y > 0 {
		m.PaysDividend = true
	}

	return m, nil
}

// NormalizeAll normalizes a whole payload, returning metrics in payload order
// by symbol alongside per-symbol failures.
func NormalizeAll(payload contracts.MetricsPayload) ([]contracts.StockMetrics, []contracts.StockError) {
	metrics := make([]contracts.StockMetrics, 0, len(payload))
	var errs []contracts.StockError

	for symbol, raw := range payload {
		if raw.Symbol == "" {
			raw.Symbol = symbol
		}
		m, err := Normalize(raw)
		if err != nil {
			errs = append(errs, contracts.StockError{
				Symbol:  symbol,
				Stage:   "normalize",
				Message: err.Error(),
			})
			continue
		}
		metrics = append(metrics, m)
	}

	return metrics, errs
}

// percentScale maps the declared units to a divisor for percentage-like
// fields. The conversion happens here and nowhere else, so re-normalizing an
// already-fraction payload cannot shrink values a second time.
func percentScale(units string) (float64, error) {
	switch units {
	case "", contracts.UnitsPercent:
		return 100, nil
	case contracts.UnitsFraction:
		return 1, nil
	default:
		return 0, fmt.Errorf("unrecognized units %q", units)
	}
}

func metric(v *float64) contracts.Metric {
	if v == nil {
		return contracts.Unknown()
	}
	return contracts.Known(*v)
}

func percentMetric(v *float64, scale float64) contracts.Metric {
	if v == nil {
		return contracts.Unknown()
	}
	return contracts.Known(*v / scale)
}
