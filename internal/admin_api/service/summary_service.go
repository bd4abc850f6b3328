package service

import (
	"context"
	"fmt"
	"time"

	"github.com/matka-slot-ledger/internal/aggregate"
	"github.com/matka-slot-ledger/internal/domain/bet"
	"github.com/matka-slot-ledger/internal/domain/shared"
	"github.com/matka-slot-ledger/internal/timeslot"
)

// SummaryServiceImpl implements the SummaryService interface. Summaries
// are recomputed from the store on every call, never cached.
type SummaryServiceImpl struct {
	entryRepo bet.Repository
	loc       *time.Location
	now       func() time.Time
}

// NewSummaryService creates a new summary service
func NewSummaryService(entryRepo bet.Repository, loc *time.Location) SummaryService {
	return &SummaryServiceImpl{
		entryRepo: entryRepo,
		loc:       loc,
		now:       time.Now,
	}
}

// DaySummary folds all of the date's settled entries into one item per
// legal number of the variant
func (s *SummaryServiceImpl) DaySummary(ctx context.Context, date string, variant shared.Variant) ([]aggregate.SummaryItem, error) {
	if _, err := timeslot.ParseDate(date, s.loc); err != nil {
		return nil, shared.ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}

	entries, err := s.entryRepo.ListSettled(ctx, date, variant)
	if err != nil {
		return nil, fmt.Errorf("failed to list settled entries: %w", err)
	}

	return aggregate.Summarize(variant, entries), nil
}

// SlotSummaries folds the date's settled entries per slot, most recent
// slot first, attaching each slot's least-bet triple
func (s *SummaryServiceImpl) SlotSummaries(ctx context.Context, date string, variant shared.Variant) ([]SlotReport, error) {
	day, err := timeslot.ParseDate(date, s.loc)
	if err != nil {
		return nil, shared.ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}

	entries, err := s.entryRepo.ListSettled(ctx, date, variant)
	if err != nil {
		return nil, fmt.Errorf("failed to list settled entries: %w", err)
	}

	summaries := aggregate.BySlot(day, variant, entries)

	reports := make([]SlotReport, 0, len(summaries))
	for _, summary := range summaries {
		reports = append(reports, SlotReport{
			Slot:     summary.Slot,
			Items:    summary.Items,
			LeastBet: aggregate.LeastBet(summary.Items),
		})
	}
	return reports, nil
}

// CurrentSlotPreview folds everything recorded in the live slot, pending
// entries included. This is the only read path where unsettled entries
// are visible.
func (s *SummaryServiceImpl) CurrentSlotPreview(ctx context.Context, variant shared.Variant) (*SlotReport, string, error) {
	now := s.now().In(s.loc)
	slot := timeslot.Current(now)
	date := timeslot.FormatDate(now)

	entries, err := s.entryRepo.ListInWindow(ctx, date, variant, slot.Start, slot.End)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list current slot entries: %w", err)
	}

	items := aggregate.Summarize(variant, entries)
	return &SlotReport{
		Slot:     slot,
		Items:    items,
		LeastBet: aggregate.LeastBet(items),
	}, date, nil
}
