// Package aggregate folds bet entries into per-number summaries, groups
// them by time slot, and derives the least-bet ranking.
package aggregate

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/matka-slot-ledger/internal/domain/bet"
	"github.com/matka-slot-ledger/internal/domain/shared"
	"github.com/matka-slot-ledger/internal/numberspace"
	"github.com/matka-slot-ledger/internal/timeslot"
)

// SummaryItem is the per-number aggregate for one scope (a slot or a
// full day). Recomputed on every query, never persisted.
type SummaryItem struct {
	Number    string `json:"number"`
	Total     int64  `json:"total_amount"`
	UserCount int    `json:"distinct_users"`
	MinAmount int64  `json:"min_amount"` // 0 when the number received no bets
}

// SlotSummary pairs a slot with its per-number aggregates
type SlotSummary struct {
	Slot  timeslot.Slot `json:"slot"`
	Items []SummaryItem `json:"items"`
}

type accumulator struct {
	total int64
	users map[string]struct{}
	min   int64
}

// Summarize folds entries into one SummaryItem per legal number of the
// variant, in number-space order. Every legal number is present in the
// output even with zero activity. Entries without an actor id each count
// as a distinct anonymous user. The fold is commutative: entry order
// never affects the result.
func Summarize(variant shared.Variant, entries []*bet.Entry) []SummaryItem {
	domain := numberspace.Legal(variant)

	acc := make(map[string]*accumulator, len(domain))
	for _, n := range domain {
		acc[n] = &accumulator{users: make(map[string]struct{}), min: math.MaxInt64}
	}

	for _, e := range entries {
		a, ok := acc[e.Number]
		if !ok {
			// outside the legal domain, not representable in a summary
			continue
		}
		a.total += e.Amount

		user := e.ActorID
		if user == "" {
			// every anonymous entry is its own user
			user = "anon:" + uuid.NewString()
		}
		a.users[user] = struct{}{}

		if e.Amount > 0 && e.Amount < a.min {
			a.min = e.Amount
		}
	}

	items := make([]SummaryItem, 0, len(domain))
	for _, n := range domain {
		a := acc[n]
		min := a.min
		if min == math.MaxInt64 {
			min = 0
		}
		items = append(items, SummaryItem{
			Number:    n,
			Total:     a.total,
			UserCount: len(a.users),
			MinAmount: min,
		})
	}
	return items
}

// BySlot groups entries by the slot their CreatedAt keys into and
// summarizes each group. Slots are emitted most recent first, matching
// timeslot.ForDay; slots that received no entries are omitted.
// Entries are shifted into the day's zone before keying, and groups are
// keyed by instant, so stored UTC timestamps land in the right slot of a
// board kept in a different zone.
func BySlot(day time.Time, variant shared.Variant, entries []*bet.Entry) []SlotSummary {
	loc := day.Location()
	bySlot := make(map[int64][]*bet.Entry)
	for _, e := range entries {
		key := timeslot.KeyFor(e.CreatedAt.In(loc)).UnixNano()
		bySlot[key] = append(bySlot[key], e)
	}

	summaries := make([]SlotSummary, 0, len(bySlot))
	for _, slot := range timeslot.ForDay(day) {
		group, ok := bySlot[slot.Key().UnixNano()]
		if !ok {
			continue
		}
		summaries = append(summaries, SlotSummary{
			Slot:  slot,
			Items: Summarize(variant, group),
		})
	}
	return summaries
}
