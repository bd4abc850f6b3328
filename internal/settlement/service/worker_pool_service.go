package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/matka-slot-ledger/internal/domain/bet"
	"github.com/panjf2000/ants/v2"
)

// WorkerPoolSettler wraps an EntrySettler with a bounded worker pool.
// Callers still get synchronous semantics; the pool caps how many
// settlements run against the store at once.
type WorkerPoolSettler struct {
	baseSettler EntrySettler
	pool        *ants.Pool
	logger      *slog.Logger
	// Protects the in-flight results map
	mu      sync.Mutex
	results map[string]chan settleResult
}

type settleResult struct {
	promoted bool
	err      error
}

// WorkerPoolConfig sizes the settlement worker pool
type WorkerPoolConfig struct {
	Size int
}

func NewWorkerPoolSettler(
	baseSettler EntrySettler,
	config WorkerPoolConfig,
	logger *slog.Logger,
) (*WorkerPoolSettler, error) {
	pool, err := ants.NewPool(config.Size)
	if err != nil {
		return nil, err
	}

	return &WorkerPoolSettler{
		baseSettler: baseSettler,
		pool:        pool,
		logger:      logger,
		results:     make(map[string]chan settleResult),
	}, nil
}

// SettleEntry submits the settlement to the worker pool and waits for
// its outcome
func (s *WorkerPoolSettler) SettleEntry(ctx context.Context, entry *bet.Entry) (bool, error) {
	resultChan := make(chan settleResult, 1)

	entryID := entry.ID.String()
	s.mu.Lock()
	s.results[entryID] = resultChan
	s.mu.Unlock()

	err := s.pool.Submit(func() {
		promoted, settleErr := s.baseSettler.SettleEntry(ctx, entry)

		resultChan <- settleResult{promoted: promoted, err: settleErr}

		s.mu.Lock()
		delete(s.results, entryID)
		close(resultChan)
		s.mu.Unlock()
	})

	if err != nil {
		s.mu.Lock()
		delete(s.results, entryID)
		close(resultChan)
		s.mu.Unlock()

		s.logger.Error("Failed to submit settlement to worker pool",
			"entry_id", entryID,
			"error", err,
		)
		return false, err
	}

	result := <-resultChan
	return result.promoted, result.err
}

// Shutdown gracefully shuts down the worker pool
func (s *WorkerPoolSettler) Shutdown() {
	s.logger.Info("Shutting down settlement worker pool", "running_workers", s.pool.Running())
	s.pool.Release()
}

// Running returns the number of running workers in the pool
func (s *WorkerPoolSettler) Running() int {
	return s.pool.Running()
}

// Capacity returns the capacity of the worker pool
func (s *WorkerPoolSettler) Capacity() int {
	return s.pool.Cap()
}
