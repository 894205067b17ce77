package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction mirrors the CHECK-constrained direction column.
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// LedgerEntry is the row stored in ledger_entries.
type LedgerEntry struct {
	ID               int64           `db:"id"`
	Name             string          `db:"name"`
	Mobile           string          `db:"mobile"`
	Remark           *string         `db:"remark"` // Nullable
	Amount           decimal.Decimal `db:"amount"` // NUMERIC(10,2)
	Direction        Direction       `db:"direction"`
	NotificationSent bool            `db:"notification_sent"`
	AuditFields
}

// AuditFields holds the row timestamps.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
