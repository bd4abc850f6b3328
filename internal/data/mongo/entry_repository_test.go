package mongo

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/matka-slot-ledger/internal/domain/bet"
	"github.com/matka-slot-ledger/internal/domain/shared"
)

func TestNewEntryRepository(t *testing.T) {
	db := &mongo.Database{}
	logger := slog.Default()

	repo := NewEntryRepository(logger, db, time.UTC)

	assert.NotNil(t, repo)
	assert.IsType(t, &EntryRepository{}, repo)
}

func TestLocalize_RebasesDecodedTimestampsIntoBoardZone(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	repo := &EntryRepository{logger: slog.Default(), loc: ist}

	// the driver decodes timestamps in UTC; 06:35Z is 12:05 on the board
	createdAt := time.Date(2025, 3, 14, 6, 35, 0, 0, time.UTC)
	settledAt := time.Date(2025, 3, 14, 6, 45, 0, 0, time.UTC)
	entry := &bet.Entry{CreatedAt: createdAt, SettledAt: &settledAt}

	repo.localize(entry)

	assert.Equal(t, ist, entry.CreatedAt.Location())
	assert.True(t, entry.CreatedAt.Equal(createdAt), "rebasing must not move the instant")
	assert.Equal(t, ist, entry.SettledAt.Location())
	assert.Equal(t, "12:00 - 12:15", entry.Slot().Label)
}

func TestClassify(t *testing.T) {
	t.Run("TransportFailure", func(t *testing.T) {
		err := classify("failed to list pending entries", errors.New("connection refused"))

		assert.ErrorIs(t, err, shared.ErrStoreUnavailable)
		assert.NotErrorIs(t, err, shared.ErrQueryRejected)
		assert.Contains(t, err.Error(), "failed to list pending entries")
	})

	t.Run("CommandRejection", func(t *testing.T) {
		cmdErr := mongo.CommandError{Code: 291, Message: "error processing query: no matching index"}
		err := classify("failed to list settled entries", cmdErr)

		assert.ErrorIs(t, err, shared.ErrQueryRejected)
		assert.NotErrorIs(t, err, shared.ErrStoreUnavailable)
	})

	t.Run("OriginalErrorPreserved", func(t *testing.T) {
		cause := errors.New("socket timeout")
		err := classify("failed to create bet entry", cause)

		assert.ErrorIs(t, err, cause)
	})
}

func TestGetSettledBySource_EmptySourceID(t *testing.T) {
	repo := &EntryRepository{db: &mongo.Database{}, logger: slog.Default()}

	entry, err := repo.GetSettledBySource(context.Background(), uuid.Nil)

	require.Error(t, err)
	assert.Nil(t, entry)
	assert.Contains(t, err.Error(), "source id")
}
