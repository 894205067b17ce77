package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Direction indicates whether money was received (IN) or paid out (OUT).
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// AmountScale is the number of fractional digits stored for an amount (NUMERIC(10,2)).
const AmountScale = 2

// maxAmount is the first value that no longer fits NUMERIC(10,2).
var maxAmount = decimal.New(1, 8)

var mobilePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// IsValid reports whether d is one of the known directions.
func (d Direction) IsValid() bool {
	return d == DirectionIn || d == DirectionOut
}

// LedgerEntry is one inbound or outbound money movement. Entries are append-only.
type LedgerEntry struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Mobile           string          `json:"mobile"`
	Remark           *string         `json:"remark"`
	Amount           decimal.Decimal `json:"amount"`
	Direction        Direction       `json:"type"`
	NotificationSent bool            `json:"notificationSent"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// Validate checks the invariants every stored entry must satisfy.
func (e *LedgerEntry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return apperrors.NewValidationError("name is required")
	}
	if strings.TrimSpace(e.Mobile) == "" {
		return apperrors.NewValidationError("mobile is required")
	}
	if !IsMobileNumber(e.Mobile) {
		return apperrors.NewValidationError("mobile %q is not a valid phone number", e.Mobile)
	}
	if !e.Direction.IsValid() {
		return apperrors.NewValidationError("invalid type %q, allowed values: IN, OUT", e.Direction)
	}
	return ValidateAmount(e.Amount)
}

// ValidateAmount rejects amounts that cannot be stored without losing precision.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.Exponent() < -AmountScale && !amount.Equal(amount.Truncate(AmountScale)) {
		return apperrors.NewValidationError("amount %s has more than %d fractional digits", amount.String(), AmountScale)
	}
	if amount.Abs().GreaterThanOrEqual(maxAmount) {
		return apperrors.NewValidationError("amount %s exceeds the maximum of 99999999.99", amount.String())
	}
	return nil
}

// IsMobileNumber reports whether s looks like a phone number.
func IsMobileNumber(s string) bool {
	return mobilePattern.MatchString(strings.TrimSpace(s))
}
