package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/apperrors"
	"github.com/SscSPs/cashbook_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validEntry() domain.LedgerEntry {
	return domain.LedgerEntry{
		Name:      "Asha",
		Mobile:    "+910000000000",
		Amount:    decimal.RequireFromString("500.00"),
		Direction: domain.DirectionIn,
		CreatedAt: time.Now(),
	}
}

func TestLedgerEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *domain.LedgerEntry)
		wantErr bool
	}{
		{name: "valid IN", mutate: func(e *domain.LedgerEntry) {}},
		{name: "valid OUT", mutate: func(e *domain.LedgerEntry) { e.Direction = domain.DirectionOut }},
		{name: "zero amount", mutate: func(e *domain.LedgerEntry) { e.Amount = decimal.Zero }},
		{name: "negative amount is not enforced", mutate: func(e *domain.LedgerEntry) { e.Amount = decimal.RequireFromString("-10.50") }},
		{name: "largest storable amount", mutate: func(e *domain.LedgerEntry) { e.Amount = decimal.RequireFromString("99999999.99") }},
		{name: "trailing zeros beyond scale", mutate: func(e *domain.LedgerEntry) { e.Amount = decimal.RequireFromString("1.2300") }},
		{name: "blank name", mutate: func(e *domain.LedgerEntry) { e.Name = "  " }, wantErr: true},
		{name: "missing mobile", mutate: func(e *domain.LedgerEntry) { e.Mobile = "" }, wantErr: true},
		{name: "mobile with letters", mutate: func(e *domain.LedgerEntry) { e.Mobile = "98765abc10" }, wantErr: true},
		{name: "mobile too short", mutate: func(e *domain.LedgerEntry) { e.Mobile = "12345" }, wantErr: true},
		{name: "lowercase direction", mutate: func(e *domain.LedgerEntry) { e.Direction = "in" }, wantErr: true},
		{name: "empty direction", mutate: func(e *domain.LedgerEntry) { e.Direction = "" }, wantErr: true},
		{name: "three fractional digits", mutate: func(e *domain.LedgerEntry) { e.Amount = decimal.RequireFromString("1.005") }, wantErr: true},
		{name: "too large", mutate: func(e *domain.LedgerEntry) { e.Amount = decimal.RequireFromString("100000000") }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntry()
			tt.mutate(&e)
			err := e.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDirection_IsValid(t *testing.T) {
	assert.True(t, domain.DirectionIn.IsValid())
	assert.True(t, domain.DirectionOut.IsValid())
	assert.False(t, domain.Direction("TRANSFER").IsValid())
}
