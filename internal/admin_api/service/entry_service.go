package service

import (
	"context"
	"fmt"
	"time"

	"github.com/matka-slot-ledger/internal/domain/actor"
	"github.com/matka-slot-ledger/internal/domain/bet"
	"github.com/matka-slot-ledger/internal/domain/shared"
	"github.com/matka-slot-ledger/internal/timeslot"
)

// EntryServiceImpl implements the EntryService interface
type EntryServiceImpl struct {
	entryRepo bet.Repository
	actorRepo actor.Repository
	loc       *time.Location
	now       func() time.Time
}

// NewEntryService creates a new entry service. Slot assignment and date
// validation use the given location.
func NewEntryService(entryRepo bet.Repository, actorRepo actor.Repository, loc *time.Location) EntryService {
	return &EntryServiceImpl{
		entryRepo: entryRepo,
		actorRepo: actorRepo,
		loc:       loc,
		now:       time.Now,
	}
}

// SubmitEntry validates the submission and appends a pending entry to the
// store. Format failures come back as shared.ValidationError without any
// store interaction.
func (s *EntryServiceImpl) SubmitEntry(ctx context.Context, number string, amount int64, username, variant, date string) (*bet.Entry, error) {
	v, err := shared.ParseVariant(variant)
	if err != nil {
		return nil, shared.ValidationError{Field: "type", Reason: "must be jodi or single"}
	}

	actorID, err := s.resolveActor(ctx, username)
	if err != nil {
		return nil, err
	}

	entry, err := bet.NewPendingEntry(number, amount, actorID, v, date, s.now().In(s.loc))
	if err != nil {
		return nil, err
	}

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to store entry: %w", err)
	}

	return entry, nil
}

// resolveActor maps an optional username to an actor id. Unknown usernames
// are a validation failure; empty usernames stay anonymous.
func (s *EntryServiceImpl) resolveActor(ctx context.Context, username string) (string, error) {
	if username == "" {
		return "", nil
	}

	a, err := s.actorRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to resolve actor: %w", err)
	}
	if a == nil {
		return "", shared.ValidationError{Field: "username", Reason: "no actor registered with this username"}
	}
	if !a.Active {
		return "", shared.ValidationError{Field: "username", Reason: "actor is deactivated"}
	}

	return a.ID.String(), nil
}

// PendingEntries lists the date's not-yet-settled entries, newest first
func (s *EntryServiceImpl) PendingEntries(ctx context.Context, date string, variant shared.Variant) ([]*bet.Entry, error) {
	if _, err := timeslot.ParseDate(date, s.loc); err != nil {
		return nil, shared.ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}

	entries, err := s.entryRepo.ListPending(ctx, date, variant)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending entries: %w", err)
	}
	return entries, nil
}
