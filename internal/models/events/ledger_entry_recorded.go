package events

import (
	"encoding/json"
	"time"
)

// LedgerEntryRecorded is emitted once an entry has been stored.
type LedgerEntryRecorded struct {
	EventID          string      `json:"eventId"`
	EntryID          int64       `json:"entryId"`
	Type             string      `json:"type"`
	Amount           json.Number `json:"amount"`
	NotificationSent bool        `json:"notificationSent"`
	OccurredAt       time.Time   `json:"occurredAt"`
}
