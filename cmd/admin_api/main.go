package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matka-slot-ledger/internal/admin_api"
	"github.com/matka-slot-ledger/internal/admin_api/service"
	"github.com/matka-slot-ledger/internal/config"
	"github.com/matka-slot-ledger/internal/data/mongo"
	"github.com/matka-slot-ledger/internal/data/postgres"
	"github.com/matka-slot-ledger/internal/logger"
	"github.com/matka-slot-ledger/internal/platform/persistence"
)

func main() {
	// Create base context with cancellation
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	// Initialize configuration
	cfg, err := config.LoadConfig("admin_api")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	log.Info("Starting Admin API",
		"app_name", cfg.Application.Name,
		"env", cfg.Application.Env,
	)

	// Slot boundaries and date partitions are computed in the board's zone
	loc, err := time.LoadLocation(cfg.Application.Timezone)
	if err != nil {
		log.Error("Invalid timezone", "timezone", cfg.Application.Timezone, "error", err)
		os.Exit(1)
	}

	// Initialize databases with app context
	postgresDB, err := persistence.NewPostgresDB(appCtx, log, &cfg.Postgres)
	if err != nil {
		log.Error("Failed to initialize PostgreSQL", "error", err)
		os.Exit(1)
	}

	mongoDB, err := persistence.NewMongoDB(appCtx, log, &cfg.MongoDB)
	if err != nil {
		log.Error("Failed to initialize MongoDB", "error", err)
		os.Exit(1)
	}

	if err := mongoDB.EnsureEntryIndexes(appCtx, mongo.EntryCollectionName); err != nil {
		log.Error("Failed to ensure entry store indexes", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	actorRepo := postgres.NewActorRepository(log, postgresDB)
	entryRepo := mongo.NewEntryRepository(log, mongoDB.Database(), loc)

	// Initialize services
	entryService := service.NewEntryService(entryRepo, actorRepo, loc)
	summaryService := service.NewSummaryService(entryRepo, loc)
	actorService := service.NewActorService(actorRepo)

	// Initialize REST server
	server := admin_api.NewServer(log, cfg, entryService, summaryService, actorService)
	log.Info("REST server initialized")

	// Create error channel for server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Cancel the application context
	cancelAppCtx()

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	// Graceful shutdown sequence
	log.Info("Starting graceful shutdown...")

	// Shutdown postgres connection pool
	postgresDB.Close()

	// Shutdown HTTP server
	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	if err = mongoDB.Close(shutdownCtx); err != nil {
		log.Error("Error closing MongoDB connection", "error", err)
	}

	// Final status
	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	}
	if err != nil {
		log.Error("Server shutdown completed with errors")
	} else {
		log.Info("Server shutdown completed successfully")
	}
}
