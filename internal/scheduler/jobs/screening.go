package jobs

import (
	"context"
	"fmt"

	"github.com/wonny/qvscreen/internal/contracts"
	"github.com/wonny/qvscreen/internal/criteria"
	"github.com/wonny/qvscreen/internal/engine/runner"
	"github.com/wonny/qvscreen/internal/external/wikipedia"
	"github.com/wonny/qvscreen/internal/store"
	"github.com/wonny/qvscreen/pkg/config"
	"github.com/wonny/qvscreen/pkg/logger"
)

// MetricsFetcher retrieves raw fundamentals for a batch of symbols.
type MetricsFetcher interface {
	FetchAll(ctx context.Context, symbols []string) (contracts.MetricsPayload, []contracts.StockError)
}

// UniverseFetcher retrieves the default screening universe.
type UniverseFetcher interface {
	FetchConstituents(ctx context.Context) ([]wikipedia.Constituent, error)
}

// ScreeningJob runs the full pipeline on a schedule: fetch the universe,
// fetch fundamentals, screen, persist the report.
type ScreeningJob struct {
	runner   *runner.Runner
	fetcher  MetricsFetcher
	universe UniverseFetcher
	runs     *store.RunRepository
	criteria *criteria.Criteria
	config   *config.Config
	logger   *logger.Logger
}

// NewScreeningJob creates the scheduled screening job.
func NewScreeningJob(
	r *runner.Runner,
	fetcher MetricsFetcher,
	universe UniverseFetcher,
	runs *store.RunRepository,
	crit *criteria.Criteria,
	cfg *config.Config,
	log *logger.Logger,
) *ScreeningJob {
	return &ScreeningJob{
		runner:   r,
		fetcher:  fetcher,
		universe: universe,
		runs:     runs,
		criteria: crit,
		config:   cfg,
		logger:   log.WithField("job", "screening"),
	}
}

// Name implements scheduler.Job.
func (j *ScreeningJob) Name() string {
	return "screening"
}

// Schedule implements scheduler.Job.
func (j *ScreeningJob) Schedule() string {
	return j.config.Scheduler.CronSpec
}

// Run implements scheduler.Job.
func (j *ScreeningJob) Run(ctx context.Context) error {
	constituents, err := j.universe.FetchConstituents(ctx)
	if err != nil {
		return fmt.Errorf("fetch universe: %w", err)
	}

	limit := j.config.Fetch.UniverseLimit
	var symbols []string
	for i, con := range constituents {
		if limit > 0 && i >= limit {
			break
		}
		symbols = append(symbols, con.Symbol)
	}

	payload, fetchErrs := j.fetcher.FetchAll(ctx, symbols)
	if len(payload) == 0 {
		return fmt.Errorf("no fundamentals fetched for %d symbols", len(symbols))
	}

	report, err := j.runner.Run(ctx, payload, j.criteria, runner.Config{
		Workers: j.config.Screen.Workers,
	})
	if err != nil {
		return fmt.Errorf("screening run: %w", err)
	}
	report.Errors = append(fetchErrs, report.Errors...)

	if j.runs != nil {
		id, err := j.runs.Save(ctx, report)
		if err != nil {
			return fmt.Errorf("persist run: %w", err)
		}
		j.logger.WithFields(map[string]interface{}{
			"run_id": id,
			"passed": len(report.Passed),
		}).Info("Scheduled screening run stored")
	}

	return nil
}
