package shared

import (
	"time"

	"github.com/google/uuid"
)

// SettlementEvent defines a Kafka message emitted once a pending bet entry
// has been promoted into its settled copy
type SettlementEvent struct {
	EntryID   uuid.UUID `json:"entry_id"`  // id of the settled copy
	SourceID  uuid.UUID `json:"source_id"` // id of the originating pending entry
	Number    string    `json:"number"`
	Amount    int64     `json:"amount"` // Stored in minor units
	Variant   Variant   `json:"variant"`
	Date      string    `json:"date"` // YYYY-MM-DD partition the entry is filed under
	SlotStart time.Time `json:"slot_start"`
	SlotEnd   time.Time `json:"slot_end"`
	SettledAt time.Time `json:"settled_at"`
}
