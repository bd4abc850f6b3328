package aggregate

import (
	"math/rand"
	"testing"
	"time"

	"github.com/matka-slot-ledger/internal/domain/bet"
	"github.com/matka-slot-ledger/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(t *testing.T, number string, amount int64, actorID string, variant shared.Variant, createdAt time.Time) *bet.Entry {
	t.Helper()
	e, err := bet.NewPendingEntry(number, amount, actorID, variant, "2025-03-14", createdAt)
	require.NoError(t, err)
	return e
}

func TestSummarize_EmptyInput(t *testing.T) {
	t.Run("Jodi", func(t *testing.T) {
		items := Summarize(shared.VariantJodi, nil)

		require.Len(t, items, 99, "every legal number must be present")
		assert.Equal(t, "01", items[0].Number)
		assert.Equal(t, "99", items[98].Number)
		for _, it := range items {
			assert.Zero(t, it.Total)
			assert.Zero(t, it.UserCount)
			assert.Zero(t, it.MinAmount)
		}
	})

	t.Run("Single", func(t *testing.T) {
		items := Summarize(shared.VariantSingle, nil)
		require.Len(t, items, 9)
	})
}

func TestSummarize_Fold(t *testing.T) {
	at := time.Date(2025, 3, 14, 12, 3, 0, 0, time.UTC)
	entries := []*bet.Entry{
		entryAt(t, "05", 100, "user-a", shared.VariantJodi, at),
		entryAt(t, "05", 300, "user-b", shared.VariantJodi, at),
		entryAt(t, "05", 200, "user-a", shared.VariantJodi, at), // same user again
		entryAt(t, "07", 50, "", shared.VariantJodi, at),        // anonymous
		entryAt(t, "07", 50, "", shared.VariantJodi, at),        // another anonymous
	}

	items := Summarize(shared.VariantJodi, entries)
	byNumber := make(map[string]SummaryItem, len(items))
	for _, it := range items {
		byNumber[it.Number] = it
	}

	assert.Equal(t, int64(600), byNumber["05"].Total)
	assert.Equal(t, 2, byNumber["05"].UserCount, "repeat bets by the same user count once")
	assert.Equal(t, int64(100), byNumber["05"].MinAmount)

	assert.Equal(t, int64(100), byNumber["07"].Total)
	assert.Equal(t, 2, byNumber["07"].UserCount, "anonymous entries are never coalesced")
	assert.Equal(t, int64(50), byNumber["07"].MinAmount)

	assert.Zero(t, byNumber["42"].Total, "untouched numbers stay zero-valued")
}

func TestSummarize_OrderIndependent(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 20, 0, 0, time.UTC)
	entries := []*bet.Entry{
		entryAt(t, "1", 10, "a", shared.VariantSingle, at),
		entryAt(t, "2", 20, "b", shared.VariantSingle, at),
		entryAt(t, "1", 30, "c", shared.VariantSingle, at),
		entryAt(t, "9", 5, "a", shared.VariantSingle, at),
		entryAt(t, "2", 15, "b", shared.VariantSingle, at),
	}

	want := Summarize(shared.VariantSingle, entries)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]*bet.Entry, len(entries))
		copy(shuffled, entries)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		assert.Equal(t, want, Summarize(shared.VariantSingle, shuffled),
			"shuffling input entries must not change the summary")
	}
}

func TestSummarize_OutputOrderIsDomainOrder(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 20, 0, 0, time.UTC)
	// arrival order deliberately reversed relative to the domain
	entries := []*bet.Entry{
		entryAt(t, "9", 10, "a", shared.VariantSingle, at),
		entryAt(t, "1", 10, "b", shared.VariantSingle, at),
	}

	items := Summarize(shared.VariantSingle, entries)

	require.Len(t, items, 9)
	for i, it := range items {
		assert.Equal(t, byte('1'+i), it.Number[0])
	}
}

func TestBySlot(t *testing.T) {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	entries := []*bet.Entry{
		entryAt(t, "7", 100, "a", shared.VariantSingle, day.Add(9*time.Hour+5*time.Minute)),   // slot 09:00-09:15
		entryAt(t, "3", 200, "b", shared.VariantSingle, day.Add(9*time.Hour+14*time.Minute)),  // same slot
		entryAt(t, "7", 300, "a", shared.VariantSingle, day.Add(15*time.Hour+30*time.Minute)), // slot 15:30-15:45
	}

	summaries := BySlot(day, shared.VariantSingle, entries)

	require.Len(t, summaries, 2, "empty slots are omitted")

	// most recent slot first
	assert.Equal(t, "15:30 - 15:45", summaries[0].Slot.Label)
	assert.Equal(t, "09:00 - 09:15", summaries[1].Slot.Label)

	morning := make(map[string]SummaryItem)
	for _, it := range summaries[1].Items {
		morning[it.Number] = it
	}
	assert.Equal(t, int64(100), morning["7"].Total)
	assert.Equal(t, int64(200), morning["3"].Total)
}

func TestBySlot_EntriesStoredInUTCLandOnZonedBoard(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	day := time.Date(2025, 3, 14, 0, 0, 0, 0, ist)
	// 06:35 UTC is 12:05 in Asia/Kolkata: slot 12:00-12:15 on the board
	entries := []*bet.Entry{
		entryAt(t, "7", 100, "a", shared.VariantSingle, time.Date(2025, 3, 14, 6, 35, 0, 0, time.UTC)),
	}

	summaries := BySlot(day, shared.VariantSingle, entries)

	require.Len(t, summaries, 1)
	assert.Equal(t, "12:00 - 12:15", summaries[0].Slot.Label)
}

func TestBySlot_BoundaryEntryFallsIntoOpeningSlot(t *testing.T) {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	// exactly on the 12:15 boundary: belongs to 12:15-12:30, not 12:00-12:15
	entries := []*bet.Entry{
		entryAt(t, "5", 100, "a", shared.VariantSingle, day.Add(12*time.Hour+15*time.Minute)),
	}

	summaries := BySlot(day, shared.VariantSingle, entries)

	require.Len(t, summaries, 1)
	assert.Equal(t, "12:15 - 12:30", summaries[0].Slot.Label)
}
