package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/matka-slot-ledger/internal/config"
	"github.com/matka-slot-ledger/internal/data/mongo"
	"github.com/matka-slot-ledger/internal/logger"
	"github.com/matka-slot-ledger/internal/platform/locking"
	"github.com/matka-slot-ledger/internal/platform/messaging/producers"
	"github.com/matka-slot-ledger/internal/platform/metrics"
	"github.com/matka-slot-ledger/internal/platform/persistence"
	"github.com/matka-slot-ledger/internal/settlement/scheduler"
	"github.com/matka-slot-ledger/internal/settlement/service"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Create base context with cancellation
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	// Initialize configuration
	cfg, err := config.LoadConfig("settlement_worker")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	log.Info("Starting Settlement Worker",
		"app_name", cfg.Application.Name,
		"env", cfg.Application.Env,
	)

	// Slot boundaries and date partitions are computed in the board's zone
	loc, err := time.LoadLocation(cfg.Application.Timezone)
	if err != nil {
		log.Error("Invalid timezone", "timezone", cfg.Application.Timezone, "error", err)
		os.Exit(1)
	}

	// Initialize the entry store
	mongoDB, err := persistence.NewMongoDB(appCtx, log, &cfg.MongoDB)
	if err != nil {
		log.Error("Failed to initialize MongoDB", "error", err)
		os.Exit(1)
	}

	if err := mongoDB.EnsureEntryIndexes(appCtx, mongo.EntryCollectionName); err != nil {
		log.Error("Failed to ensure entry store indexes", "error", err)
		os.Exit(1)
	}

	entryRepo := mongo.NewEntryRepository(log, mongoDB.Database(), loc)

	// Initialize Redis-backed slot lock
	redisClient, err := locking.ConnectRedis(cfg.Redis.Addr)
	if err != nil {
		log.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	owner, _ := os.Hostname()
	slotLock := locking.NewSlotLock(log, redisClient, cfg.Redis.LockTTL, owner)

	// Initialize Kafka producers
	settlementProducer, err := producers.NewSettlementEventProducer(appCtx, log, &cfg.Kafka)
	if err != nil {
		log.Error("Failed to initialize settlement event producer", "error", err)
		os.Exit(1)
	}

	dlqProducer, err := producers.NewDLQProducer(appCtx, log, &cfg.Kafka)
	if err != nil {
		log.Error("Failed to initialize DLQ producer", "error", err)
		os.Exit(1)
	}
	// dlqProducer is nil when no DLQ topic is configured; the settlement
	// service tolerates that.

	// Initialize metrics and the /metrics + /healthz endpoint
	workerMetrics := metrics.NewSettlementMetrics(prometheus.DefaultRegisterer)
	metricsServer := metrics.StartMetricsServer(cfg.Metrics.Port, func(ctx context.Context) error {
		return mongoDB.Ping(ctx)
	})
	log.Info("Metrics server listening", "port", cfg.Metrics.Port)

	// Initialize settlement services
	baseSettler := service.NewSettlementService(log, entryRepo, settlementProducer, dlqWrapper(dlqProducer))

	pooledSettler, err := service.NewWorkerPoolSettler(baseSettler, service.WorkerPoolConfig{Size: cfg.WorkerPool.Size}, log)
	if err != nil {
		log.Error("Failed to initialize worker pool", "error", err)
		os.Exit(1)
	}

	promotionService := service.NewPromotionService(log, entryRepo, pooledSettler)

	// Initialize the scheduler
	promotionScheduler := scheduler.NewPromotionScheduler(
		log,
		promotionService,
		slotLock,
		workerMetrics,
		cfg.Scheduler.TickInterval,
		loc,
	)

	// Create wait group for graceful shutdown
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		promotionScheduler.Start(appCtx)
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	<-quit
	log.Info("Shutdown signal received")

	// Cancel the application context
	cancelAppCtx()

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	// Graceful shutdown sequence
	log.Info("Starting graceful shutdown...")

	wgChan := make(chan struct{})
	go func() {
		wg.Wait()
		close(wgChan)
	}()

	select {
	case <-wgChan:
		log.Info("Scheduler stopped")
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout reached, forcing exit")
	}

	pooledSettler.Shutdown()

	if err = settlementProducer.Close(); err != nil {
		log.Error("Error closing settlement event producer", "error", err)
	}

	if dlqProducer != nil {
		if err = dlqProducer.Close(); err != nil {
			log.Error("Error closing DLQ producer", "error", err)
		}
	}

	if err = metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Error closing metrics server", "error", err)
	}

	if err = redisClient.Close(); err != nil {
		log.Error("Error closing Redis client", "error", err)
	}

	if err = mongoDB.Close(shutdownCtx); err != nil {
		log.Error("Error closing MongoDB connection", "error", err)
	}

	log.Info("Settlement Worker shutdown completed")
}

// dlqWrapper keeps a nil *DLQProducer from becoming a non-nil interface
func dlqWrapper(p *producers.DLQProducer) producers.DeadLetterPublisher {
	if p == nil {
		return nil
	}
	return p
}
