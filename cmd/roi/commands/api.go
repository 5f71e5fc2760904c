package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/api"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/api/handlers"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/interpret"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/roi"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/scenario"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/scheduler"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/scheduler/jobs"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/config"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/database"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/logger"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/redis"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST and WebSocket API server.

This command:
- Serves calculation and sensitivity endpoints
- Serves scenario persistence endpoints
- Hosts live what-if sessions over WebSocket
- Runs the draft retention job when the scheduler is enabled

Endpoints:
  GET  /health               - Health check
  GET  /ws/roi               - Live what-if session (WebSocket)
  GET  /api/roi/defaults     - Canonical default inputs
  POST /api/roi/calculate    - Full metric set for one scenario
  POST /api/sensitivity      - Parameter sweeps
  POST /api/scenarios        - Save a scenario
  GET  /api/scenarios        - List saved scenarios
  GET  /api/scenarios/{id}   - Fetch one scenario
  DEL  /api/scenarios/{id}   - Delete a scenario

Example:
  go run ./cmd/roi api
  go run ./cmd/roi api --port 8080`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides config)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== AnyRoad ROI Calculator API Server ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	log.Info("Connected to database")

	// 4. Connect to Redis; the API degrades to uncached reads without it
	rdb, err := redis.New(cfg)
	if err != nil {
		log.WithError(err).Warn("Redis unavailable; scenario cache disabled")
		offline := *cfg
		offline.Redis.Enabled = false
		rdb, err = redis.New(&offline)
		if err != nil {
			return fmt.Errorf("init redis client: %w", err)
		}
	}
	defer rdb.Close()

	// 5. Create scenario store
	cache := redis.NewCache(rdb, "roi")
	store := scenario.NewStore(scenario.NewRepository(db.Pool), cache, cfg.Scenario.CacheTTL, log)

	// 6. Create calculation engine
	formatter := interpret.NewFormatter(cfg.Interpretation.Locale, cfg.Interpretation.CurrencySymbol)
	engine := roi.NewEngine(interpret.NewGenerator(formatter))

	// 7. Create handlers
	roiHandler := handlers.NewROIHandler(engine, log)
	scenarioHandler := handlers.NewScenarioHandler(store, engine, log)

	// 8. Create live session handler
	live := api.NewLiveHandler(engine, log)

	// 9. Create router
	limiter := api.NewRateLimiter(cfg, log)
	router := api.NewRouter(roiHandler, scenarioHandler, live, limiter, log)

	// 10. Create server
	server := api.New(cfg, log, router)

	// 11. Start the draft retention scheduler
	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched = scheduler.New(log)
		prune := jobs.NewScenarioPruneJob(store, cfg.Scenario.DraftRetentionDays, cfg.Scheduler.PruneSchedule, log)
		if err := sched.AddJob(prune); err != nil {
			return fmt.Errorf("register prune job: %w", err)
		}
		sched.Start()
	}

	// 12. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET  /health")
	fmt.Println("  GET  /ws/roi")
	fmt.Println("  GET  /api/roi/defaults")
	fmt.Println("  POST /api/roi/calculate")
	fmt.Println("  POST /api/sensitivity")
	fmt.Println("  POST /api/scenarios")
	fmt.Println("  GET  /api/scenarios")
	fmt.Println("  GET  /api/scenarios/{id}")
	fmt.Println("  DEL  /api/scenarios/{id}")
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if sched != nil {
		sched.Stop()
	}

	log.Info("Server stopped")
	return nil
}
