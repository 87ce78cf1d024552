package commands

import (
	"fmt"

	"github.com/wonny/qvscreen/internal/criteria"
	"github.com/wonny/qvscreen/internal/external/wikipedia"
	"github.com/wonny/qvscreen/internal/external/yahoo"
	"github.com/wonny/qvscreen/pkg/config"
	"github.com/wonny/qvscreen/pkg/httputil"
	"github.com/wonny/qvscreen/pkg/logger"
)

// loadConfig loads config and applies global flag overrides.
func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if criteriaPath != "" {
		cfg.Screen.CriteriaPath = criteriaPath
	}

	return cfg, logger.New(cfg), nil
}

// loadCriteria resolves the run criteria: the configured YAML file when set,
// otherwise the built-in defaults.
func loadCriteria(cfg *config.Config) (*criteria.Criteria, error) {
	if cfg.Screen.CriteriaPath == "" {
		c := criteria.Default()
		return &c, nil
	}

	c, err := criteria.Load(cfg.Screen.CriteriaPath)
	if err != nil {
		return nil, fmt.Errorf("load criteria %s: %w", cfg.Screen.CriteriaPath, err)
	}
	return c, nil
}

// buildFetchers wires the rate-limited HTTP client into the upstream clients.
func buildFetchers(cfg *config.Config, log *logger.Logger) (*yahoo.Client, *wikipedia.Client) {
	httpClient := httputil.New(log, cfg.Fetch.RequestTimeout).
		WithRateLimit(cfg.Fetch.RequestsPerSec).
		WithUserAgent("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36")

	yahooClient := yahoo.NewClient(httpClient, log, cfg.Fetch.QuoteBaseURL)
	wikiClient := wikipedia.NewClient(httpClient, log, cfg.Fetch.UniverseURL)

	return yahooClient, wikiClient
}
