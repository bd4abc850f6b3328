package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/matka-slot-ledger/internal/domain/bet"
	"github.com/matka-slot-ledger/internal/domain/shared"
	"github.com/matka-slot-ledger/internal/timeslot"
)

var promotedVariants = []shared.Variant{shared.VariantJodi, shared.VariantSingle}

// PromotionServiceImpl implements the PromotionService interface
type PromotionServiceImpl struct {
	entryRepo bet.Repository
	settler   EntrySettler
	logger    *slog.Logger
}

// NewPromotionService creates a new promotion service
func NewPromotionService(logger *slog.Logger, entryRepo bet.Repository, settler EntrySettler) *PromotionServiceImpl {
	return &PromotionServiceImpl{
		entryRepo: entryRepo,
		settler:   settler,
		logger:    logger,
	}
}

// PromoteSlot settles every pending entry of the slot window for both
// variants. A store error on one entry aborts that entry only; the rest
// of the cycle proceeds, and the next cycle over the same slot retries
// the failed ones safely.
func (s *PromotionServiceImpl) PromoteSlot(ctx context.Context, date string, slot timeslot.Slot) (PromotionResult, error) {
	var result PromotionResult
	var listErr error

	for _, variant := range promotedVariants {
		entries, err := s.entryRepo.ListPendingInWindow(ctx, date, variant, slot.Start, slot.End)
		if err != nil {
			s.logger.Error("Failed to list pending entries for slot",
				"date", date,
				"slot", slot.Label,
				"type", string(variant),
				"error", err,
			)
			listErr = fmt.Errorf("failed to list pending %s entries: %w", variant, err)
			continue
		}

		result.Scanned += len(entries)
		s.settleAll(ctx, entries, &result)
	}

	s.logger.Info("Promotion cycle finished",
		"date", date,
		"slot", slot.Label,
		"scanned", result.Scanned,
		"promoted", result.Promoted,
		"already_settled", result.AlreadySettled,
		"failed", result.Failed,
	)

	return result, listErr
}

// settleAll runs the settlements concurrently and waits for all of them.
// Actual parallelism is bounded by the settler's worker pool.
func (s *PromotionServiceImpl) settleAll(ctx context.Context, entries []*bet.Entry, result *PromotionResult) {
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, entry := range entries {
		wg.Add(1)
		go func(e *bet.Entry) {
			defer wg.Done()

			promoted, err := s.settler.SettleEntry(ctx, e)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				s.logger.Error("Entry settlement failed", "entry_id", e.ID.String(), "error", err)
				result.Failed++
			case promoted:
				result.Promoted++
			default:
				result.AlreadySettled++
			}
		}(entry)
	}

	wg.Wait()
}
