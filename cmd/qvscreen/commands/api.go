package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/qvscreen/internal/api"
	"github.com/wonny/qvscreen/internal/api/handlers"
	"github.com/wonny/qvscreen/internal/engine/runner"
	"github.com/wonny/qvscreen/internal/store"
	"github.com/wonny/qvscreen/pkg/database"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST API server.

Endpoints:
  GET  /health                - Health check
  POST /api/screen            - Run a screening pass
  GET  /api/screen/stream     - Screening with websocket progress
  GET  /api/criteria/default  - Built-in criteria
  GET  /api/runs              - Run history
  GET  /api/runs/{id}         - One stored run

Run history needs DATABASE_URL; without it those endpoints return 503.

Example:
  qvscreen api --port 8090`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (default from config)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if apiPort != "" {
		cfg.Port = apiPort
	}

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// Run history is optional: no DATABASE_URL means no persistence.
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
		log.Info("Connected to database")
	} else {
		log.Warn("DATABASE_URL not set, run history disabled")
	}

	yahooClient, wikiClient := buildFetchers(cfg, log)

	screenHandler := handlers.NewScreenHandler(
		runner.NewRunner(log),
		yahooClient,
		wikiClient,
		runs,
		cfg,
		log,
	)
	runsHandler := handlers.NewRunsHandler(runs, log)

	router := api.NewRouter(screenHandler, runsHandler, log)
	server := api.New(cfg, log, router)

	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	fmt.Printf("Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
