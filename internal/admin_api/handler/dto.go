package handler

import "github.com/matka-slot-ledger/internal/aggregate"

// SubmitEntryRequest represents a request to submit a new bet entry.
// Number, amount, and date formats are validated by the domain layer so
// every format failure surfaces through the same taxonomy.
type SubmitEntryRequest struct {
	Number   string `json:"number" binding:"required"`
	Amount   int64  `json:"amount"`
	Type     string `json:"type" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Username string `json:"username,omitempty"`
}

// EntryResponse represents a bet entry in API responses
type EntryResponse struct {
	EntryID   string `json:"entry_id"`
	Number    string `json:"number"`
	Amount    int64  `json:"amount"`
	ActorID   string `json:"actor_id,omitempty"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	Settled   bool   `json:"settled"`
	Slot      string `json:"slot"`
	CreatedAt string `json:"created_at"`
	SettledAt string `json:"settled_at,omitempty"`
}

// EntryListResponse represents a list of bet entries in API responses
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// DaySummaryResponse represents a full-day aggregate in API responses
type DaySummaryResponse struct {
	Date  string                  `json:"date"`
	Type  string                  `json:"type"`
	Items []aggregate.SummaryItem `json:"items"`
}

// SlotSummaryResponse represents one slot's aggregate in API responses
type SlotSummaryResponse struct {
	Slot     string                  `json:"slot"`
	Start    string                  `json:"start"`
	End      string                  `json:"end"`
	Items    []aggregate.SummaryItem `json:"items"`
	LeastBet []string                `json:"least_bet"`
}

// SlotSummariesResponse represents the per-slot breakdown of a day
type SlotSummariesResponse struct {
	Date  string                `json:"date"`
	Type  string                `json:"type"`
	Slots []SlotSummaryResponse `json:"slots"`
}

// CurrentSlotResponse represents the live current-slot preview
type CurrentSlotResponse struct {
	Date string              `json:"date"`
	Type string              `json:"type"`
	Slot SlotSummaryResponse `json:"slot"`
}

// RegisterActorRequest represents a request to register a new actor
type RegisterActorRequest struct {
	Username string `json:"username" binding:"required"`
}

// ActorResponse represents an actor in API responses
type ActorResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
}
