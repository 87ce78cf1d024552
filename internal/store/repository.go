package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/qvscreen/internal/contracts"
)

// RunSummary is the list view of one stored screening run.
type RunSummary struct {
	ID            int64     `json:"id"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
	CriteriaName  string    `json:"criteria_name"`
	CriteriaHash  string    `json:"criteria_hash"`
	Universe      int       `json:"universe"`
	PassedCount   int       `json:"passed_count"`
	FilteredCount int       `json:"filtered_count"`
	ErrorCount    int       `json:"error_count"`
}

// RunRepository stores screening run history. The full report is kept as
// JSONB; the summary columns exist for listing without deserializing it.
type RunRepository struct {
	pool *pgxpool.Pool
}

// NewRunRepository creates a run repository.
func NewRunRepository(pool *pgxpool.Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

// Migrate creates the run-history table if it does not exist.
func (r *RunRepository) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS screening_runs (
			id             BIGSERIAL PRIMARY KEY,
			started_at     TIMESTAMPTZ NOT NULL,
			finished_at    TIMESTAMPTZ NOT NULL,
			criteria_name  TEXT NOT NULL,
			criteria_hash  TEXT NOT NULL,
			universe       INT NOT NULL,
			passed_count   INT NOT NULL,
			filtered_count INT NOT NULL,
			error_count    INT NOT NULL,
			report         JSONB NOT NULL
		)
	`
	_, err := r.pool.Exec(ctx, query)
	return err
}

// Save stores one run report and returns its id.
func (r *RunRepository) Save(ctx context.Context, report *contracts.RunReport) (int64, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("marshal report: %w", err)
	}

	query := `
		INSERT INTO screening_runs
			(started_at, finished_at, criteria_name, criteria_hash, universe, passed_count, filtered_count, error_count, report)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id int64
	err = r.pool.QueryRow(ctx, query,
		report.StartedAt, report.FinishedAt,
		report.CriteriaName, report.CriteriaHash,
		report.Universe, len(report.Passed), len(report.Filtered), len(report.Errors),
		reportJSON,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// List returns the most recent runs, newest first.
func (r *RunRepository) List(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, started_at, finished_at, criteria_name, criteria_hash,
		       universe, passed_count, filtered_count, error_count
		FROM screening_runs
		ORDER BY started_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var s RunSummary
		if err := rows.Scan(
			&s.ID, &s.StartedAt, &s.FinishedAt, &s.CriteriaName, &s.CriteriaHash,
			&s.Universe, &s.PassedCount, &s.FilteredCount, &s.ErrorCount,
		); err != nil {
			return nil, err
		}
		runs = append(runs, s)
	}
	return runs, rows.Err()
}

// Get returns one stored run report by id.
func (r *RunRepository) Get(ctx context.Context, id int64) (*contracts.RunReport, error) {
	query := `SELECT report FROM screening_runs WHERE id = $1`

	var reportJSON []byte
	if err := r.pool.QueryRow(ctx, query, id).Scan(&reportJSON); err != nil {
		return nil, err
	}

	var report contracts.RunReport
	if err := json.Unmarshal(reportJSON, &report); err != nil {
		return nil, fmt.Errorf("unmarshal report %d: %w", id, err)
	}
	return &report, nil
}
