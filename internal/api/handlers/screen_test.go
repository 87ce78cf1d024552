package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/qvscreen/internal/contracts"
	"github.com/wonny/qvscreen/internal/engine/runner"
	"github.com/wonny/qvscreen/internal/external/wikipedia"
	"github.com/wonny/qvscreen/pkg/config"
	"github.com/wonny/qvscreen/pkg/logger"
)

type stubFetcher struct {
	payload contracts.MetricsPayload
	errs    []contracts.StockError
	called  []string
}

func (s *stubFetcher) FetchAll(ctx context.Context, symbols []string) (contracts.MetricsPayload, []contracts.StockError) {
	s.called = symbols
	return s.payload, s.errs
}

type stubUniverse struct {
	constituents []wikipedia.Constituent
	err          error
}

func (s *stubUniverse) FetchConstituents(ctx context.Context) ([]wikipedia.Constituent, error) {
	return s.constituents, s.err
}

func fv(v float64) *float64 { return &v }

func inlinePayload() contracts.MetricsPayload {
	return contracts.MetricsPayload{
		"AAPL": {
			Symbol: "AAPL",
			Units:  contracts.UnitsFraction,
			ROE:    fv(0.25),
			ROA:    fv(0.12),
		},
	}
}

func newHandler(fetcher *stubFetcher, universe *stubUniverse) *ScreenHandler {
	cfg := &config.Config{
		Screen: config.ScreenConfig{Workers: 2},
		Fetch:  config.FetchConfig{UniverseLimit: 2},
	}
	return NewScreenHandler(
		runner.NewRunner(logger.NewNop()),
		fetcher,
		universe,
		nil,
		cfg,
		logger.NewNop(),
	)
}

func TestScreenInlineMetrics(t *testing.T) {
	fetcher := &stubFetcher{}
	h := newHandler(fetcher, &stubUniverse{})

	body, _ := json.Marshal(ScreenRequest{Metrics: inlinePayload()})
	req := httptest.NewRequest(http.MethodPost, "/api/screen", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Screen(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ScreenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Report)
	assert.Equal(t, 1, resp.Report.Universe)
	require.Len(t, resp.Report.Passed, 1)
	assert.Equal(t, "AAPL", resp.Report.Passed[0].Symbol)
	assert.Nil(t, fetcher.called, "inline metrics must not trigger a fetch")
}

func TestScreenFallsBackToUniverse(t *testing.T) {
	fetcher := &stubFetcher{payload: inlinePayload()}
	universe := &stubUniverse{constituents: []wikipedia.Constituent{
		{Symbol: "AAPL"}, {Symbol: "MSFT"}, {Symbol: "GOOG"},
	}}
	h := newHandler(fetcher, universe)

	req := httptest.NewRequest(http.MethodPost, "/api/screen", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()

	h.Screen(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// UniverseLimit 2 trims the constituent list.
	assert.Equal(t, []string{"AAPL", "MSFT"}, fetcher.called)
}

func TestScreenInvalidBody(t *testing.T) {
	h := newHandler(&stubFetcher{}, &stubUniverse{})

	req := httptest.NewRequest(http.MethodPost, "/api/screen", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	h.Screen(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScreenInvalidCriteriaOverride(t *testing.T) {
	h := newHandler(&stubFetcher{}, &stubUniverse{})

	body, _ := json.Marshal(ScreenRequest{
		Metrics:  inlinePayload(),
		Criteria: json.RawMessage(`{"ethical_profile":"ruthless"}`),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/screen", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Screen(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ethical_profile")
}

func TestScreenCriteriaOverrideApplied(t *testing.T) {
	h := newHandler(&stubFetcher{}, &stubUniverse{})

	// Demand a dividend; the inline stock pays none.
	body, _ := json.Marshal(ScreenRequest{
		Metrics:  inlinePayload(),
		Criteria: json.RawMessage(`{"filters":{"require_dividend":true}}`),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/screen", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Screen(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ScreenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Report.Filtered, 1)
	assert.Contains(t, resp.Report.Filtered[0].FailedCriteria, "require_dividend")
}

func TestDefaultCriteriaEndpoint(t *testing.T) {
	h := newHandler(&stubFetcher{}, &stubUniverse{})

	req := httptest.NewRequest(http.MethodGet, "/api/criteria/default", nil)
	rec := httptest.NewRecorder()

	h.DefaultCriteria(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "quality-value-default", got["name"])
}
