// Package timeslot implements the 15-minute slot calculus that drives
// aggregation and settlement. A day is partitioned into exactly 96 slots;
// every entry belongs to the slot whose end boundary is the smallest
// multiple of 15 minutes strictly greater than its creation minute.
package timeslot

import (
	"fmt"
	"time"
)

// Width is the fixed slot length
const Width = 15 * time.Minute

// SlotsPerDay is the number of slots partitioning a calendar day
const SlotsPerDay = 96

// DateLayout is the calendar-day partition key format
const DateLayout = "2006-01-02"

// Slot is a half-open 15-minute interval [Start, End) anchored to a
// calendar day. Immutable once computed.
type Slot struct {
	Start time.Time
	End   time.Time
	Label string
}

// Key returns the slot identity: its end boundary.
func (s Slot) Key() time.Time {
	return s.End
}

// Contains reports whether ts falls within [Start, End)
func (s Slot) Contains(ts time.Time) bool {
	return !ts.Before(s.Start) && ts.Before(s.End)
}

func label(start, end time.Time) string {
	return fmt.Sprintf("%02d:%02d - %02d:%02d", start.Hour(), start.Minute(), end.Hour(), end.Minute())
}

func newSlot(start time.Time) Slot {
	end := start.Add(Width)
	return Slot{Start: start, End: end, Label: label(start, end)}
}

// floor truncates ts to the start of its slot: minute floored to the
// nearest multiple of 15, seconds and sub-seconds zeroed.
func floor(ts time.Time) time.Time {
	m := ts.Minute()
	return time.Date(ts.Year(), ts.Month(), ts.Day(), ts.Hour(), m-m%15, 0, 0, ts.Location())
}

// Current returns the slot covering now
func Current(now time.Time) Slot {
	return newSlot(floor(now))
}

// Previous returns the slot immediately preceding the one covering now.
// This is the slot a settlement cycle promotes right after a boundary
// crossing.
func Previous(now time.Time) Slot {
	return newSlot(floor(now).Add(-Width))
}

// KeyFor returns the identity of the slot an entry created at ts belongs
// to: the smallest multiple-of-15-minutes boundary strictly greater than
// ts's minute. A timestamp sitting exactly on a boundary belongs to the
// slot opening there, not the one closing there (12:15:00 keys to 12:30,
// never 12:15).
func KeyFor(ts time.Time) time.Time {
	return floor(ts).Add(Width)
}

// SlotFor returns the full slot an entry created at ts belongs to
func SlotFor(ts time.Time) Slot {
	return newSlot(floor(ts))
}

// ForDay returns the 96 contiguous slots covering the calendar day of
// dayStart, most recent first. The descending order is a contract:
// display and "most recent settled slot" logic both rely on it.
func ForDay(dayStart time.Time) []Slot {
	midnight := time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), 0, 0, 0, 0, dayStart.Location())
	slots := make([]Slot, 0, SlotsPerDay)
	for i := SlotsPerDay - 1; i >= 0; i-- {
		slots = append(slots, newSlot(midnight.Add(time.Duration(i)*Width)))
	}
	return slots
}

// ParseDate parses a YYYY-MM-DD partition key into the midnight of that
// day in the given location
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// FormatDate renders the partition key for a point in time
func FormatDate(ts time.Time) string {
	return ts.Format(DateLayout)
}
