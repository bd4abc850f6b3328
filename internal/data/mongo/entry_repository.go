package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matka-slot-ledger/internal/domain/bet"
	"github.com/matka-slot-ledger/internal/domain/shared"
)

const (
	// EntryCollectionName is the name of the bet entry collection in MongoDB
	EntryCollectionName = "bet_entries"
)

// EntryRepository implements the bet.Repository interface for MongoDB
type EntryRepository struct {
	db     *mongo.Database
	logger *slog.Logger
	loc    *time.Location
}

// NewEntryRepository creates a new MongoDB bet entry repository. Decoded
// timestamps are shifted into loc so that slot labels derived from them
// match the board zone; the driver hands them back in UTC.
func NewEntryRepository(logger *slog.Logger, db *mongo.Database, loc *time.Location) bet.Repository {
	if loc == nil {
		loc = time.UTC
	}
	return &EntryRepository{
		db:     db,
		logger: logger,
		loc:    loc,
	}
}

// classify maps a driver error onto the store failure taxonomy. Command
// rejections (e.g. a missing composite index on a filtered query) are
// distinguished from transport failures for logging, but callers treat
// both as a generic fetch failure.
func classify(op string, err error) error {
	kind := shared.ErrStoreUnavailable
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		kind = shared.ErrQueryRejected
	}
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

// Create appends one immutable entry record. The store has no update or
// delete path; settled copies are separate inserts.
func (r *EntryRepository) Create(ctx context.Context, entry *bet.Entry) error {
	collection := r.db.Collection(EntryCollectionName)

	_, err := collection.InsertOne(ctx, entry)
	if err != nil {
		r.logger.Error("Failed to create bet entry",
			"entry_id", entry.ID.String(),
			"error", err)
		return classify("failed to create bet entry", err)
	}

	return nil
}

// ListSettled retrieves all settled entries for a date and variant,
// newest first.
func (r *EntryRepository) ListSettled(ctx context.Context, date string, variant shared.Variant) ([]*bet.Entry, error) {
	filter := bson.M{
		"date":    date,
		"type":    variant,
		"settled": true,
	}
	return r.list(ctx, filter, "failed to list settled entries")
}

// ListPending retrieves all pending entries for a date and variant,
// newest first.
func (r *EntryRepository) ListPending(ctx context.Context, date string, variant shared.Variant) ([]*bet.Entry, error) {
	filter := bson.M{
		"date":    date,
		"type":    variant,
		"settled": false,
	}
	return r.list(ctx, filter, "failed to list pending entries")
}

// ListPendingInWindow retrieves pending entries created within [start, end).
// This is the settlement read: the window is the slot that just elapsed.
func (r *EntryRepository) ListPendingInWindow(ctx context.Context, date string, variant shared.Variant, start, end time.Time) ([]*bet.Entry, error) {
	filter := bson.M{
		"date":    date,
		"type":    variant,
		"settled": false,
		"created_at": bson.M{
			"$gte": start,
			"$lt":  end,
		},
	}
	return r.list(ctx, filter, "failed to list pending entries in window")
}

// ListInWindow retrieves entries created within [start, end) regardless of
// settled state. Backs the live current-slot preview, where pending
// entries are intentionally visible.
func (r *EntryRepository) ListInWindow(ctx context.Context, date string, variant shared.Variant, start, end time.Time) ([]*bet.Entry, error) {
	filter := bson.M{
		"date": date,
		"type": variant,
		"created_at": bson.M{
			"$gte": start,
			"$lt":  end,
		},
	}
	return r.list(ctx, filter, "failed to list entries in window")
}

// GetSettledBySource retrieves the settled counterpart of a pending entry.
// Returns nil if the entry has not been promoted yet, enabling idempotent
// promotion.
func (r *EntryRepository) GetSettledBySource(ctx context.Context, sourceID uuid.UUID) (*bet.Entry, error) {
	if sourceID == uuid.Nil {
		return nil, errors.New("source id cannot be empty")
	}

	collection := r.db.Collection(EntryCollectionName)

	filter := bson.M{"source_id": sourceID, "settled": true}
	var entry bet.Entry
	err := collection.FindOne(ctx, filter).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil // Not promoted yet
		}
		r.logger.Error("Failed to get settled counterpart",
			"source_id", sourceID.String(),
			"error", err)
		return nil, classify("failed to get settled counterpart", err)
	}

	r.localize(&entry)
	return &entry, nil
}

// localize rebases an entry's timestamps into the repository zone.
func (r *EntryRepository) localize(e *bet.Entry) {
	e.CreatedAt = e.CreatedAt.In(r.loc)
	if e.SettledAt != nil {
		t := e.SettledAt.In(r.loc)
		e.SettledAt = &t
	}
}

func (r *EntryRepository) list(ctx context.Context, filter bson.M, op string) ([]*bet.Entry, error) {
	collection := r.db.Collection(EntryCollectionName)

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}) // Newest first

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Error("Failed to query bet entries", "filter", fmt.Sprintf("%v", filter), "error", err)
		return nil, classify(op, err)
	}
	defer cursor.Close(ctx)

	var entries []*bet.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		r.logger.Error("Failed to decode bet entries", "error", err)
		return nil, classify(op, err)
	}

	for _, e := range entries {
		r.localize(e)
	}
	return entries, nil
}
