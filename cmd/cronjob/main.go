package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"booklend-backend/internal/config"
	"booklend-backend/internal/jobs"
	"booklend-backend/internal/logger"
	"booklend-backend/internal/repository/postgres"
	"booklend-backend/internal/scheduler"
	"booklend-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'compensate-overdue-loans')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Booklend Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	emailService := service.NewEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
	)

	issuer := service.NewRewardIssuer(store.ParticipantRepository, store.NotificationRepository)
	settlementService := service.NewSettlementService(
		store,
		store.BookRepository,
		store.LoanRepository,
		store.ParticipantRepository,
		store.LedgerRepository,
		store.PickupPointRepository,
		store.NotificationRepository,
		issuer,
		service.RewardPolicy{
			LenderUnits:      cfg.Lending.LenderRewardUnits,
			BorrowerUnits:    cfg.Lending.BorrowerRewardUnits,
			PickupPointCents: cfg.Lending.PickupRewardCents,
		},
		nil,
	)

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(
		settlementService,
		emailService,
		store.LoanRepository,
		store.BookRepository,
		store.ParticipantRepository,
		cfg,
	)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "compensate-overdue-loans":
		jobRunner.CompensateOverdueLoans()
	case "send-overdue-reminders":
		jobRunner.SendOverdueReminders()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - compensate-overdue-loans\n")
		fmt.Printf("  - send-overdue-reminders\n")
		os.Exit(1)
	}
}
