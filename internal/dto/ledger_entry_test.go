package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/core/domain"
	"github.com/SscSPs/cashbook_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToListLedgerEntriesResponse_RendersAmountsAsNumbers(t *testing.T) {
	entries := []domain.LedgerEntry{{
		ID:        7,
		Name:      "Asha",
		Mobile:    "+910000000000",
		Amount:    decimal.RequireFromString("500"),
		Direction: domain.DirectionIn,
		CreatedAt: time.Date(2025, 3, 10, 5, 0, 0, 0, time.UTC),
	}}
	stats := &domain.AggregateStats{InCount: 1, TotalNet: decimal.RequireFromString("-120.5")}

	body, err := json.Marshal(dto.ToListLedgerEntriesResponse(entries, stats))
	require.NoError(t, err)

	s := string(body)
	assert.Contains(t, s, `"amount":500.00`)
	assert.Contains(t, s, `"totalAmount":-120.50`)
	assert.Contains(t, s, `"todaysTotalAmount":0.00`)
	assert.Contains(t, s, `"remark":null`)
	assert.Contains(t, s, `"type":"IN"`)
}

func TestToListLedgerEntriesResponse_EmptyListIsArray(t *testing.T) {
	body, err := json.Marshal(dto.ToListLedgerEntriesResponse(nil, nil))
	require.NoError(t, err)

	assert.Contains(t, string(body), `"forms":[]`)
	assert.Contains(t, string(body), `"inCount":0`)
}
