package bet

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/matka-slot-ledger/internal/domain/shared"
)

// Repository manages bet entry persistence. The store is append-only:
// Create is the only mutation; promotion inserts new settled copies
// rather than updating pending originals.
type Repository interface {
	Create(ctx context.Context, entry *Entry) error

	// ListSettled returns all settled entries filed under the given
	// date and variant, newest first.
	ListSettled(ctx context.Context, date string, variant shared.Variant) ([]*Entry, error)

	// ListPending returns all pending entries filed under the given
	// date and variant, newest first.
	ListPending(ctx context.Context, date string, variant shared.Variant) ([]*Entry, error)

	// ListPendingInWindow returns pending entries whose CreatedAt falls
	// within [start, end) for the given date and variant.
	ListPendingInWindow(ctx context.Context, date string, variant shared.Variant, start, end time.Time) ([]*Entry, error)

	// ListInWindow returns entries in [start, end) regardless of settled
	// state. This backs the live current-slot preview, the one read path
	// where pending entries are intentionally visible.
	ListInWindow(ctx context.Context, date string, variant shared.Variant, start, end time.Time) ([]*Entry, error)

	// GetSettledBySource returns the settled counterpart of a pending
	// entry, or nil if the entry has not been promoted. This lookup makes
	// promotion re-entrant safe.
	GetSettledBySource(ctx context.Context, sourceID uuid.UUID) (*Entry, error)
}

// ErrEntryNotFound indicates a missing bet entry
type ErrEntryNotFound struct {
	EntryID uuid.UUID
}

func (e ErrEntryNotFound) Error() string {
	return "bet entry not found: " + e.EntryID.String()
}

// Is implements the errors.Is interface for ErrEntryNotFound
func (e ErrEntryNotFound) Is(target error) bool {
	t, ok := target.(ErrEntryNotFound)
	if !ok {
		return false
	}
	// An empty target id matches any ErrEntryNotFound
	if t.EntryID == uuid.Nil {
		return true
	}
	return e.EntryID == t.EntryID
}
