package runner

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/wonny/qvscreen/internal/contracts"
	"github.com/wonny/qvscreen/internal/criteria"
	"github.com/wonny/qvscreen/internal/engine/composite"
	"github.com/wonny/qvscreen/internal/engine/dcf"
	"github.com/wonny/qvscreen/internal/engine/filter"
	"github.com/wonny/qvscreen/internal/engine/normalize"
	"github.com/wonny/qvscreen/internal/engine/scorers"
	"github.com/wonny/qvscreen/pkg/logger"
)

// Runner orchestrates one screening run: normalize, value, score, gate and
// rank every stock in the payload.
type Runner struct {
	logger *logger.Logger
}

// Config holds per-run settings.
type Config struct {
	Workers int

	// OnProgress, when set, is called after each stock finishes. done counts
	// both scored and failed stocks.
	OnProgress func(done, total int, symbol string)
}

// NewRunner creates a Runner.
func NewRunner(log *logger.Logger) *Runner {
	return &Runner{logger: log.WithField("module", "runner")}
}

type stockOutcome struct {
	result *contracts.ScreeningResult
	err    *contracts.StockError
}

// Run screens the whole payload against the criteria. Invalid criteria abort
// before any stock is touched; after that, one bad stock only adds to the
// report's error list. The report is deterministic for a given payload and
// criteria regardless of worker interleaving.
func (r *Runner) Run(ctx context.Context, payload contracts.MetricsPayload, crit *criteria.Criteria, cfg Config) (*contracts.RunReport, error) {
	if err := criteria.Validate(crit); err != nil {
		return nil, err
	}
	hash, err := criteria.Hash(crit)
	if err != nil {
		return nil, fmt.Errorf("hash criteria: %w", err)
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	report := &contracts.RunReport{
		StartedAt:    time.Now().UTC(),
		CriteriaName: crit.Name,
		CriteriaHash: hash,
		Universe:     len(payload),
	}

	r.logger.WithFields(map[string]interface{}{
		"universe": len(payload),
		"criteria": crit.Name,
		"workers":  workers,
	}).Info("Starting screening run")

	metrics, normErrs := normalize.NormalizeAll(payload)
	report.Errors = append(report.Errors, normErrs...)

	// Normalize failures count toward progress like any other outcome, so a
	// stream consumer sees one event per stock in the payload.
	done := 0
	total := len(payload)
	for _, e := range normErrs {
		done++
		if cfg.OnProgress != nil {
			cfg.OnProgress(done, total, e.Symbol)
		}
	}

	stockCh := make(chan contracts.StockMetrics, len(metrics))
	outcomeCh := make(chan stockOutcome, len(metrics))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			r.worker(ctx, workerID, stockCh, outcomeCh, crit)
		}(i)
	}

	for _, m := range metrics {
		stockCh <- m
	}
	close(stockCh)

	go func() {
		wg.Wait()
		close(outcomeCh)
	}()

	for out := range outcomeCh {
		done++
		var symbol string
		if out.err != nil {
			report.Errors = append(report.Errors, *out.err)
			symbol = out.err.Symbol
		} else {
			if out.result.Passed {
				report.Passed = append(report.Passed, *out.result)
			} else {
				report.Filtered = append(report.Filtered, *out.result)
			}
			symbol = out.result.Symbol
		}
		if cfg.OnProgress != nil {
			cfg.OnProgress(done, total, symbol)
		}
	}

	filter.Rank(report.Passed)
	filter.Rank(report.Filtered)
	sort.Slice(report.Errors, func(i, j int) bool {
		return report.Errors[i].Symbol < report.Errors[j].Symbol
	})

	report.FinishedAt = time.Now().UTC()

	r.logger.WithFields(map[string]interface{}{
		"passed":   len(report.Passed),
		"filtered": len(report.Filtered),
		"errors":   len(report.Errors),
		"duration": report.FinishedAt.Sub(report.StartedAt),
	}).Info("Screening run completed")

	return report, nil
}

func (r *Runner) worker(ctx context.Context, workerID int, stockCh <-chan contracts.StockMetrics, outcomeCh chan<- stockOutcome, crit *criteria.Criteria) {
	for m := range stockCh {
		select {
		case <-ctx.Done():
			outcomeCh <- stockOutcome{err: &contracts.StockError{
				Symbol:  m.Symbol,
				Stage:   "score",
				Message: ctx.Err().Error(),
			}}
			continue
		default:
		}

		result, stockErr := r.scoreStock(m, crit)
		if stockErr != nil {
			r.logger.WithFields(map[string]interface{}{
				"worker": workerID,
				"symbol": stockErr.Symbol,
				"stage":  stockErr.Stage,
			}).Error(stockErr.Message)
			outcomeCh <- stockOutcome{err: stockErr}
			continue
		}

		outcomeCh <- stockOutcome{result: result}
	}
}

// scoreStock runs the full pipeline for one stock. A panic in any scorer is
// converted into a StockError so the batch keeps going.
func (r *Runner) scoreStock(m contracts.StockMetrics, crit *criteria.Criteria) (result *contracts.ScreeningResult, stockErr *contracts.StockError) {
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			stockErr = &contracts.StockError{
				Symbol:  m.Symbol,
				Stage:   "score",
				Message: fmt.Sprintf("panic: %v", rec),
			}
		}
	}()

	scenarios := dcf.Estimate(m, crit.DCF)
	baseMoS := dcf.BaseMarginOfSafety(scenarios)

	scores := scorers.ScoreAll(m, baseMoS, crit)
	overall := composite.Overall(scores, crit.Weights)

	failed := filter.Apply(m, baseMoS, overall, crit.Filters)

	// A stock with no scorable category has no rank. It stays out of the
	// passing list even when every gate is inactive.
	passed := len(failed) == 0 && overall.Known

	return &contracts.ScreeningResult{
		Symbol:         m.Symbol,
		Name:           m.Name,
		Sector:         m.Sector,
		Metrics:        m,
		Scores:         scores,
		Overall:        overall,
		Grade:          contracts.GradeFor(overall),
		Scenarios:      scenarios,
		Passed:         passed,
		FailedCriteria: failed,
	}, nil
}
