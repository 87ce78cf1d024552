package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/wonny/qvscreen/internal/contracts"
	"github.com/wonny/qvscreen/pkg/httputil"
	"github.com/wonny/qvscreen/pkg/logger"
)

const quoteModules = "price,summaryDetail,financialData,defaultKeyStatistics,esgScores"

// Client fetches stock fundamentals from the Yahoo Finance quote-summary API.
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

// NewClient creates a Yahoo Finance client.
func NewClient(httpClient *httputil.Client, log *logger.Logger, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log.WithField("module", "yahoo"),
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// FetchMetrics fetches the fundamentals for one symbol. Fields the API does
// not report stay nil. All percentage-like values are emitted as fractions.
func (c *Client) FetchMetrics(ctx context.Context, symbol string) (contracts.RawMetrics, error) {
	// Class shares use a dash on Yahoo (BRK.B -> BRK-B).
	apiSymbol := strings.ReplaceAll(symbol, ".", "-")
	endpoint := fmt.Sprintf("%s/%s?modules=%s", c.baseURL, url.PathEscape(apiSymbol), quoteModules)

	var payload quoteSummaryResponse
	if err := c.httpClient.GetJSON(ctx, endpoint, &payload); err != nil {
		return contracts.RawMetrics{}, fmt.Errorf("fetch %s: %w", symbol, err)
	}

	if payload.QuoteSummary.Error != nil {
		return contracts.RawMetrics{}, fmt.Errorf("fetch %s: %s", symbol, payload.QuoteSummary.Error.Description)
	}
	if len(payload.QuoteSummary.Result) == 0 {
		return contracts.RawMetrics{}, fmt.Errorf("fetch %s: empty result", symbol)
	}

	raw := payload.QuoteSummary.Result[0].toRawMetrics(symbol)

	c.logger.WithField("symbol", symbol).Debug("Fetched fundamentals")
	return raw, nil
}

// FetchAll fetches fundamentals for every symbol, skipping failures. The
// client's rate limiter paces the requests; callers get the per-symbol
// failures alongside the payload.
func (c *Client) FetchAll(ctx context.Context, symbols []string) (contracts.MetricsPayload, []contracts.StockError) {
	payload := make(contracts.MetricsPayload, len(symbols))
	var errs []contracts.StockError

	for _, symbol := range symbols {
		select {
		case <-ctx.Done():
			errs = append(errs, contracts.StockError{
				Symbol:  symbol,
				Stage:   "fetch",
				Message: ctx.Err().Error(),
			})
			return payload, errs
		default:
		}

		raw, err := c.FetchMetrics(ctx, symbol)
		if err != nil {
			c.logger.WithError(err).WithField("symbol", symbol).Warn("Failed to fetch fundamentals")
			errs = append(errs, contracts.StockError{
				Symbol:  symbol,
				Stage:   "fetch",
				Message: err.Error(),
			})
			continue
		}
		payload[symbol] = raw
	}

	c.logger.WithFields(map[string]interface{}{
		"fetched": len(payload),
		"failed":  len(errs),
	}).Info("Fundamentals fetch completed")

	return payload, errs
}
