package wikipedia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wonny/qvscreen/pkg/httputil"
	"github.com/wonny/qvscreen/pkg/logger"
)

const samplePage = `<html><body>
<table id="constituents">
<tbody>
<tr><th>Symbol</th><th>Security</th><th>GICS Sector</th></tr>
<tr><td>MMM</td><td>3M</td><td>Industrials</td></tr>
<tr><td>AAPL</td><td>Apple Inc.</td><td>Information Technology</td></tr>
<tr><td>BRK.B</td><td>Berkshire Hathaway</td><td>Financials</td></tr>
</tbody>
</table>
</body></html>`

func TestFetchConstituents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	httpClient := httputil.New(logger.NewNop(), 5*time.Second).DisableRetry()
	c := NewClient(httpClient, logger.NewNop(), srv.URL)

	constituents, err := c.FetchConstituents(context.Background())
	if err != nil {
		t.Fatalf("FetchConstituents: %v", err)
	}

	if len(constituents) != 3 {
		t.Fatalf("got %d constituents, want 3", len(constituents))
	}
	want := Constituent{Symbol: "AAPL", Name: "Apple Inc.", Sector: "Information Technology"}
	if constituents[1] != want {
		t.Errorf("constituents[1] = %+v, want %+v", constituents[1], want)
	}
	if constituents[2].Symbol != "BRK.B" {
		t.Errorf("symbol = %q, want dot convention preserved", constituents[2].Symbol)
	}
}

func TestFetchConstituentsEmptyTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>moved</p></body></html>"))
	}))
	defer srv.Close()

	httpClient := httputil.New(logger.NewNop(), 5*time.Second).DisableRetry()
	c := NewClient(httpClient, logger.NewNop(), srv.URL)

	if _, err := c.FetchConstituents(context.Background()); err == nil {
		t.Fatal("expected error for a page without the constituents table")
	}
}
