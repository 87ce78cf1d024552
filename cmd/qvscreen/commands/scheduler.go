package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonny/qvscreen/internal/engine/runner"
	"github.com/wonny/qvscreen/internal/scheduler"
	"github.com/wonny/qvscreen/internal/scheduler/jobs"
	"github.com/wonny/qvscreen/internal/store"
	"github.com/wonny/qvscreen/pkg/database"
)

var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Run scheduled screening",
	Long: `Runs the cron-driven screening pipeline: fetch the universe and
fundamentals on schedule, screen them, and store the run report.

The schedule comes from SCHEDULER_CRON (seconds field included, default
weekday 18:00).

Example:
  qvscreen scheduler
  qvscreen scheduler --now`,
	RunE: runScheduler,
}

var schedulerRunNow bool

func init() {
	rootCmd.AddCommand(schedulerCmd)

	schedulerCmd.Flags().BoolVar(&schedulerRunNow, "now", false, "also trigger one run immediately")
}

func runScheduler(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	crit, err := loadCriteria(cfg)
	if err != nil {
		return err
	}

	var runs *store.RunRepository
	if cfg.Database.URL != "" {
		db, err := database.New(cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		runs = store.NewRunRepository(db.Pool)
		if err := runs.Migrate(context.Background()); err != nil {
			return fmt.Errorf("migrate run history: %w", err)
		}
	} else {
		log.Warn("DATABASE_URL not set, scheduled runs will not be stored")
	}

	yahooClient, wikiClient := buildFetchers(cfg, log)

	job := jobs.NewScreeningJob(
		runner.NewRunner(log),
		yahooClient,
		wikiClient,
		runs,
		crit,
		cfg,
		log,
	)

	sched := scheduler.New(log)
	if err := sched.AddJob(job); err != nil {
		return err
	}

	sched.Start()
	defer sched.Stop()

	if schedulerRunNow {
		if err := sched.RunJob(job.Name()); err != nil {
			return err
		}
	}

	fmt.Printf("Scheduler running (cron %q)\nPress Ctrl+C to stop\n", cfg.Scheduler.CronSpec)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	return nil
}
