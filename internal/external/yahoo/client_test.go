package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wonny/qvscreen/internal/contracts"
	"github.com/wonny/qvscreen/pkg/httputil"
	"github.com/wonny/qvscreen/pkg/logger"
)

const sampleQuoteSummary = `{
  "quoteSummary": {
    "result": [{
      "price": {
        "longName": "Apple Inc.",
        "regularMarketPrice": {"raw": 190.5, "fmt": "190.50"},
        "marketCap": {"raw": 2950000000000}
      },
      "summaryDetail": {
        "trailingPE": {"raw": 29.4},
        "priceToSalesTrailing12Months": {"raw": 7.6},
        "dividendYield": {"raw": 0.0051},
        "payoutRatio": {"raw": 0.147}
      },
      "financialData": {
        "currentRatio": {"raw": 0.99},
        "debtToEquity": {"raw": 152.3},
        "returnOnEquity": {"raw": 1.56},
        "operatingMargins": {"raw": 0.302},
        "freeCashflow": {"raw": 99800000000}
      },
      "defaultKeyStatistics": {
        "priceToBook": {"raw": 47.2},
        "heldPercentInsiders": {"raw": 0.00071},
        "sharesOutstanding": {"raw": 15550000000}
      },
      "esgScores": {
        "totalEsg": {"raw": 17.2}
      }
    }],
    "error": null
  }
}`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	httpClient := httputil.New(logger.NewNop(), 5*time.Second).DisableRetry()
	return NewClient(httpClient, logger.NewNop(), srv.URL)
}

func TestFetchMetrics(t *testing.T) {
	var gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(sampleQuoteSummary))
	})

	raw, err := c.FetchMetrics(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("FetchMetrics: %v", err)
	}

	if gotPath != "/AAPL" {
		t.Errorf("path = %q, want /AAPL", gotPath)
	}
	if raw.Name != "Apple Inc." {
		t.Errorf("name = %q", raw.Name)
	}
	if raw.Units != contracts.UnitsFraction {
		t.Errorf("units = %q, want fraction", raw.Units)
	}
	if raw.Price == nil || *raw.Price != 190.5 {
		t.Errorf("price = %v, want 190.5", raw.Price)
	}
	if raw.DebtToEquity == nil || *raw.DebtToEquity != 1.523 {
		t.Errorf("debt_to_equity = %v, want 1.523 (percent converted)", raw.DebtToEquity)
	}
	if raw.PaysDividend == nil || !*raw.PaysDividend {
		t.Error("pays_dividend should be set from positive yield")
	}
	if raw.QuickRatio != nil {
		t.Errorf("quick_ratio = %v, want nil for absent field", raw.QuickRatio)
	}
	if raw.InterestCoverage != nil {
		t.Error("interest_coverage is never reported and must stay nil")
	}
}

func TestFetchMetricsTranslatesClassShares(t *testing.T) {
	var gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(sampleQuoteSummary))
	})

	if _, err := c.FetchMetrics(context.Background(), "BRK.B"); err != nil {
		t.Fatalf("FetchMetrics: %v", err)
	}
	if gotPath != "/BRK-B" {
		t.Errorf("path = %q, want /BRK-B", gotPath)
	}
}

func TestFetchMetricsAPIError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteSummary":{"result":null,"error":{"code":"Not Found","description":"Quote not found"}}}`))
	})

	if _, err := c.FetchMetrics(context.Background(), "NOPE"); err == nil {
		t.Fatal("expected error for API error payload")
	}
}

func TestFetchAllSkipsFailures(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/BAD" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Write([]byte(sampleQuoteSummary))
	})

	payload, errs := c.FetchAll(context.Background(), []string{"AAPL", "BAD", "MSFT"})

	if len(payload) != 2 {
		t.Errorf("payload size = %d, want 2", len(payload))
	}
	if len(errs) != 1 || errs[0].Symbol != "BAD" || errs[0].Stage != "fetch" {
		t.Errorf("errs = %+v, want one fetch error for BAD", errs)
	}
}
