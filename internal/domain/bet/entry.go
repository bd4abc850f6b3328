package bet

import (
	"time"

	"github.com/google/uuid"
	"github.com/matka-slot-ledger/internal/domain/shared"
	"github.com/matka-slot-ledger/internal/numberspace"
	"github.com/matka-slot-ledger/internal/timeslot"
)

// Entry represents one submitted bet in the entry store.
//
// Entries are append-only: a submission creates a pending record, and
// settlement inserts a settled copy referencing the original through
// SourceID. Nothing is ever updated or deleted; pending originals remain
// as an audit trail after promotion.
//
// Date is the caller-supplied calendar partition and is not required to
// agree with CreatedAt's own day; all reads filter on Date.
type Entry struct {
	ID        uuid.UUID      `json:"entry_id" bson:"entry_id"`
	Number    string         `json:"number" bson:"number"`
	Amount    int64          `json:"amount" bson:"amount"` // Stored in minor units
	ActorID   string         `json:"actor_id,omitempty" bson:"actor_id,omitempty"`
	Variant   shared.Variant `json:"type" bson:"type"`
	Date      string         `json:"date" bson:"date"` // YYYY-MM-DD
	Settled   bool           `json:"settled" bson:"settled"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
	SettledAt *time.Time     `json:"settled_at,omitempty" bson:"settled_at,omitempty"`
	SourceID  uuid.UUID      `json:"source_id,omitempty" bson:"source_id,omitempty"`
}

// NewPendingEntry validates a submission and builds the pending record.
// The number must be in the variant's legal domain (single: one digit
// 1-9; jodi: two zero-padded digits, value 1-99) and the amount strictly
// positive. Validation happens here, before any store interaction.
func NewPendingEntry(number string, amount int64, actorID string, variant shared.Variant, date string, createdAt time.Time) (*Entry, error) {
	if _, err := shared.ParseVariant(string(variant)); err != nil {
		return nil, shared.ValidationError{Field: "variant", Reason: "must be jodi or single"}
	}
	if !numberspace.Contains(variant, number) {
		return nil, shared.ValidationError{Field: "number", Reason: "not a legal " + string(variant) + " number"}
	}
	if amount <= 0 {
		return nil, shared.ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	if _, err := timeslot.ParseDate(date, createdAt.Location()); err != nil {
		return nil, shared.ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}

	return &Entry{
		ID:        uuid.New(),
		Number:    number,
		Amount:    amount,
		ActorID:   actorID,
		Variant:   variant,
		Date:      date,
		Settled:   false,
		CreatedAt: createdAt,
	}, nil
}

// SettledCopy builds the settled counterpart of a pending entry. All bet
// fields are carried over; the copy gets its own id, the promotion
// timestamp, and a SourceID pointing at the original. The original is
// left untouched.
func (e *Entry) SettledCopy(at time.Time) *Entry {
	settledAt := at
	return &Entry{
		ID:        uuid.New(),
		Number:    e.Number,
		Amount:    e.Amount,
		ActorID:   e.ActorID,
		Variant:   e.Variant,
		Date:      e.Date,
		Settled:   true,
		CreatedAt: e.CreatedAt,
		SettledAt: &settledAt,
		SourceID:  e.ID,
	}
}

// Slot returns the slot this entry belongs to, derived from CreatedAt
func (e *Entry) Slot() timeslot.Slot {
	return timeslot.SlotFor(e.CreatedAt)
}
