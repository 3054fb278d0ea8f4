package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "booklend-backend/internal/api/http"
	"booklend-backend/internal/config"
	"booklend-backend/internal/logger"
	"booklend-backend/internal/repository/postgres"
	"booklend-backend/internal/security"
	"booklend-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Booklend Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
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

	if err := postgres.EnsureSchema(db); err != nil {
		logger.Error("Failed to ensure database schema", "error", err)
		log.Fatalf("Failed to ensure database schema: %v", err)
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	pickupSvc := service.NewPickupPointService(store.PickupPointRepository, store.NotificationRepository)
	identitySvc := service.NewIdentityService(store, store.ParticipantRepository)
	catalogSvc := service.NewCatalogService(store.BookRepository, pickupSvc)
	rankingSvc := service.NewRankingService(store.ParticipantRepository)
	ledgerSvc := service.NewLedgerService(store, store.LedgerRepository, store.ParticipantRepository, store.BookRepository, store.LoanRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// The reward issuer capability is handed to the settlement engine only.
	issuer := service.NewRewardIssuer(store.ParticipantRepository, store.NotificationRepository)
	settlementSvc := service.NewSettlementService(
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

	// Seed the initial pickup points
	if err := pickupSvc.Seed(context.Background(), cfg.Lending.SeedPickupPoints); err != nil {
		logger.Error("Failed to seed pickup points", "error", err)
		log.Fatalf("Failed to seed pickup points: %v", err)
	}

	// Initialize HTTP handlers
	bookHandler := httpapi.NewBookHandler(catalogSvc)
	loanHandler := httpapi.NewLoanHandler(settlementSvc)
	participantHandler := httpapi.NewParticipantHandler(identitySvc, rankingSvc, ledgerSvc, noteSvc)
	adminHandler := httpapi.NewAdminHandler(pickupSvc, settlementSvc, ledgerSvc, tokenManager, cfg.Admin)

	router := httpapi.NewRouter(bookHandler, loanHandler, participantHandler, adminHandler, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
