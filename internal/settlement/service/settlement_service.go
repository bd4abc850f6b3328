package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/matka-slot-ledger/internal/domain/bet"
	"github.com/matka-slot-ledger/internal/domain/shared"
	"github.com/matka-slot-ledger/internal/platform/messaging/producers"
)

// SettlementServiceImpl implements the EntrySettler interface. Promotion
// is copy-and-flag: a new settled record is inserted, the pending
// original is never touched.
type SettlementServiceImpl struct {
	entryRepo bet.Repository
	publisher producers.MessagePublisher
	dlq       producers.DeadLetterPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewSettlementService creates a new settlement service. dlq may be nil
// when no dead-letter topic is configured.
func NewSettlementService(
	logger *slog.Logger,
	entryRepo bet.Repository,
	publisher producers.MessagePublisher,
	dlq producers.DeadLetterPublisher,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		entryRepo: entryRepo,
		publisher: publisher,
		dlq:       dlq,
		logger:    logger,
		now:       time.Now,
	}
}

// SettleEntry promotes one pending entry. The settled-counterpart check
// makes the operation re-entrant: a second run over the same entry finds
// the existing copy and does nothing, so overlapping cycles and retries
// cannot double-promote.
func (s *SettlementServiceImpl) SettleEntry(ctx context.Context, entry *bet.Entry) (bool, error) {
	existing, err := s.entryRepo.GetSettledBySource(ctx, entry.ID)
	if err != nil {
		return false, fmt.Errorf("failed to check settled counterpart for entry %s: %w", entry.ID, err)
	}
	if existing != nil {
		s.logger.Debug("Entry already settled, skipping",
			"entry_id", entry.ID.String(),
			"settled_id", existing.ID.String(),
		)
		return false, nil
	}

	settled := entry.SettledCopy(s.now())
	if err := s.entryRepo.Create(ctx, settled); err != nil {
		return false, fmt.Errorf("failed to insert settled copy for entry %s: %w", entry.ID, err)
	}

	s.logger.Info("Promoted entry",
		"entry_id", entry.ID.String(),
		"settled_id", settled.ID.String(),
		"number", settled.Number,
		"type", string(settled.Variant),
	)

	s.publishSettlementEvent(ctx, settled)
	return true, nil
}

// publishSettlementEvent emits the downstream event for a settled copy.
// The entry is already settled in the store at this point, so a publish
// failure routes to the DLQ instead of failing the promotion.
func (s *SettlementServiceImpl) publishSettlementEvent(ctx context.Context, settled *bet.Entry) {
	slot := settled.Slot()
	event := shared.SettlementEvent{
		EntryID:   settled.ID,
		SourceID:  settled.SourceID,
		Number:    settled.Number,
		Amount:    settled.Amount,
		Variant:   settled.Variant,
		Date:      settled.Date,
		SlotStart: slot.Start,
		SlotEnd:   slot.End,
		SettledAt: *settled.SettledAt,
	}

	key := settled.Date + ":" + string(settled.Variant) + ":" + settled.Number
	if err := s.publisher.Publish(ctx, key, event); err != nil {
		s.logger.Error("Failed to publish settlement event",
			"entry_id", settled.ID.String(),
			"error", err,
		)
		s.routeToDLQ(ctx, key, event, err)
	}
}

func (s *SettlementServiceImpl) routeToDLQ(ctx context.Context, key string, event shared.SettlementEvent, cause error) {
	if s.dlq == nil {
		s.logger.Warn("No DLQ configured, settlement event dropped", "key", key)
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("Failed to marshal settlement event for DLQ", "key", key, "error", err)
		return
	}

	if err := s.dlq.PublishToDLQ(ctx, key, payload, cause.Error()); err != nil {
		s.logger.Error("Failed to publish settlement event to DLQ", "key", key, "error", err)
	}
}
