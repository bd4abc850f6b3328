// Package scheduler drives promotion cycles off the wall clock. A
// ticker fires well below the slot width; each tick checks whether a
// 15-minute boundary has been crossed since the last handled one and, if
// so, promotes the slot that just closed.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/matka-slot-ledger/internal/platform/metrics"
	"github.com/matka-slot-ledger/internal/settlement/service"
	"github.com/matka-slot-ledger/internal/timeslot"
)

// SlotLocker serializes promotion of one slot across worker instances
type SlotLocker interface {
	Acquire(ctx context.Context, slotKey time.Time) (bool, error)
}

// PromotionScheduler owns the recurring settlement timer
type PromotionScheduler struct {
	promoter service.PromotionService
	lock     SlotLocker
	metrics  *metrics.SettlementMetrics
	logger   *slog.Logger
	tick     time.Duration
	loc      *time.Location
	now      func() time.Time

	// last boundary this instance handled; the re-arm guard
	lastKey time.Time
}

// NewPromotionScheduler creates a new scheduler. Boundaries are evaluated
// in the given location.
func NewPromotionScheduler(
	logger *slog.Logger,
	promoter service.PromotionService,
	lock SlotLocker,
	m *metrics.SettlementMetrics,
	tick time.Duration,
	loc *time.Location,
) *PromotionScheduler {
	return &PromotionScheduler{
		promoter: promoter,
		lock:     lock,
		metrics:  m,
		logger:   logger,
		tick:     tick,
		loc:      loc,
		now:      time.Now,
	}
}

// Start runs the scheduler until the context is canceled. The first
// evaluation happens immediately, so a worker that boots shortly after a
// boundary still settles the slot that just closed.
func (s *PromotionScheduler) Start(ctx context.Context) {
	s.logger.Info("Starting promotion scheduler",
		"tick_interval", s.tick.String(),
		"timezone", s.loc.String(),
	)

	s.evaluate(ctx)

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Promotion scheduler stopping due to context cancellation")
			return
		case <-ticker.C:
			s.evaluate(ctx)
		}
	}
}

// evaluate checks for an unhandled boundary crossing and runs the
// promotion cycle for the slot that closed at it
func (s *PromotionScheduler) evaluate(ctx context.Context) {
	now := s.now().In(s.loc)
	boundary := timeslot.Current(now).Start

	// Nothing crossed since the last handled boundary
	if !boundary.After(s.lastKey) {
		return
	}

	// Re-arm regardless of the outcome below: a failed cycle is retried
	// by the idempotent settlement path on the next boundary, not by
	// hammering the same one every tick.
	s.lastKey = boundary

	acquired, err := s.lock.Acquire(ctx, boundary)
	if err != nil {
		s.logger.Error("Failed to acquire slot lock", "boundary", boundary, "error", err)
		s.metrics.ErrorsTotal.WithLabelValues("lock").Inc()
		return
	}
	if !acquired {
		s.logger.Info("Slot already being promoted by another instance", "boundary", boundary)
		s.metrics.SkippedTotal.Inc()
		return
	}

	slot := timeslot.Previous(now)
	date := timeslot.FormatDate(slot.Start)

	s.logger.Info("Boundary crossed, promoting slot",
		"boundary", boundary,
		"slot", slot.Label,
		"date", date,
	)

	s.metrics.CyclesTotal.Inc()
	started := time.Now()

	result, err := s.promoter.PromoteSlot(ctx, date, slot)

	s.metrics.CycleDuration.Observe(time.Since(started).Seconds())
	s.metrics.PromotedTotal.Add(float64(result.Promoted))
	if err != nil {
		s.logger.Error("Promotion cycle reported errors", "slot", slot.Label, "error", err)
		s.metrics.ErrorsTotal.WithLabelValues("promote").Inc()
	}
	if result.Failed > 0 {
		s.metrics.ErrorsTotal.WithLabelValues("settle").Add(float64(result.Failed))
	}
}
