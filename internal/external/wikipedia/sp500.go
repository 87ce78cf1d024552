package wikipedia

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/wonny/qvscreen/pkg/httputil"
	"github.com/wonny/qvscreen/pkg/logger"
)

// Constituent is one S&P 500 index member.
type Constituent struct {
	Symbol string
	Name   string
	Sector string
}

// Client scrapes the S&P 500 constituents list from Wikipedia.
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	url        string
}

// NewClient creates a Wikipedia universe client.
func NewClient(httpClient *httputil.Client, log *logger.Logger, url string) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log.WithField("module", "wikipedia"),
		url:        url,
	}
}

// FetchConstituents returns the current S&P 500 members in page order.
// Symbols use the dot convention (BRK.B), matching the quote API after
// translation there.
func (c *Client) FetchConstituents(ctx context.Context) ([]Constituent, error) {
	resp, err := c.httpClient.Get(ctx, c.url)
	if err != nil {
		return nil, fmt.Errorf("fetch constituents page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, c.url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse constituents page: %w", err)
	}

	var constituents []Constituent
	doc.Find("table#constituents tbody tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}

		symbol := strings.TrimSpace(cells.Eq(0).Text())
		if symbol == "" {
			return
		}

		constituents = append(constituents, Constituent{
			Symbol: symbol,
			Name:   strings.TrimSpace(cells.Eq(1).Text()),
			Sector: strings.TrimSpace(cells.Eq(2).Text()),
		})
	})

	if len(constituents) == 0 {
		return nil, fmt.Errorf("no constituents found at %s, page layout may have changed", c.url)
	}

	c.logger.WithField("count", len(constituents)).Info("Fetched S&P 500 constituents")
	return constituents, nil
}
