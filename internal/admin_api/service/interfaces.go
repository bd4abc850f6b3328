package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/matka-slot-ledger/internal/aggregate"
	"github.com/matka-slot-ledger/internal/domain/actor"
	"github.com/matka-slot-ledger/internal/domain/bet"
	"github.com/matka-slot-ledger/internal/domain/shared"
	"github.com/matka-slot-ledger/internal/timeslot"
)

// EntryService defines the interface for bet entry operations
type EntryService interface {
	// SubmitEntry validates and stores a new pending bet entry.
	// Returns shared.ValidationError before any store interaction when the
	// submission breaks format rules; username, when given, must resolve to
	// a registered active actor.
	SubmitEntry(ctx context.Context, number string, amount int64, username, variant, date string) (*bet.Entry, error)

	// PendingEntries returns all not-yet-settled entries for the date and variant
	PendingEntries(ctx context.Context, date string, variant shared.Variant) ([]*bet.Entry, error)
}

// SlotReport is one slot's summary with its least-bet triple
type SlotReport struct {
	Slot     timeslot.Slot
	Items    []aggregate.SummaryItem
	LeastBet []string
}

// SummaryService defines the interface for aggregate read operations
type SummaryService interface {
	// DaySummary aggregates the date's settled entries across the whole day
	DaySummary(ctx context.Context, date string, variant shared.Variant) ([]aggregate.SummaryItem, error)

	// SlotSummaries aggregates the date's settled entries per slot, most
	// recent slot first, omitting slots without entries
	SlotSummaries(ctx context.Context, date string, variant shared.Variant) ([]SlotReport, error)

	// CurrentSlotPreview aggregates the live current slot, pending entries
	// included. Returns the slot report and today's date partition.
	CurrentSlotPreview(ctx context.Context, variant shared.Variant) (*SlotReport, string, error)
}

// ActorService defines the interface for actor registry operations
type ActorService interface {
	// RegisterActor creates a new actor.
	// Returns actor.ErrDuplicateUsername when the username is taken.
	RegisterActor(ctx context.Context, username string) (*actor.Actor, error)

	// GetActorByID retrieves an actor by id.
	// Returns actor.ErrActorNotFound if the actor doesn't exist.
	GetActorByID(ctx context.Context, id uuid.UUID) (*actor.Actor, error)
}
