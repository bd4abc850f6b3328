package service

import (
	"context"

	"github.com/matka-slot-ledger/internal/domain/bet"
	"github.com/matka-slot-ledger/internal/timeslot"
)

// EntrySettler promotes a single pending entry into its settled copy.
// Returns true when a new settled copy was inserted, false when the
// entry already had a settled counterpart.
type EntrySettler interface {
	SettleEntry(ctx context.Context, entry *bet.Entry) (bool, error)
}

// PromotionResult summarizes one promotion cycle
type PromotionResult struct {
	Scanned        int // pending entries found in the slot window
	Promoted       int // settled copies inserted
	AlreadySettled int // entries skipped because a counterpart existed
	Failed         int // entries whose settlement errored
}

// PromotionService runs a full promotion cycle over one elapsed slot
type PromotionService interface {
	// PromoteSlot settles every pending entry recorded in the slot's
	// window for the given date, across both variants. The call returns
	// only when all entry settlements have completed.
	PromoteSlot(ctx context.Context, date string, slot timeslot.Slot) (PromotionResult, error)
}
