package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(direction domain.Direction, amount string, at time.Time) domain.LedgerEntry {
	return domain.LedgerEntry{Direction: direction, Amount: decimal.RequireFromString(amount), CreatedAt: at}
}

func TestComputeStats_NoEntries(t *testing.T) {
	stats := domain.ComputeStats(nil, time.Now())

	assert.Zero(t, stats.InCount)
	assert.Zero(t, stats.OutCount)
	assert.Equal(t, "0.00", domain.FormatAmount(stats.TotalNet))
	assert.Equal(t, "0.00", domain.FormatAmount(stats.TodayNet))
	assert.Equal(t, "0.00", domain.FormatAmount(stats.TodayInAmount))
	assert.Equal(t, "0.00", domain.FormatAmount(stats.TodayOutAmount))
}

func TestComputeStats_TodayBoundaryIsInclusive(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	todayStart := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)

	entries := []domain.LedgerEntry{
		entryAt(domain.DirectionIn, "10.00", todayStart),
		entryAt(domain.DirectionIn, "20.00", todayStart.Add(-time.Nanosecond)),
		entryAt(domain.DirectionOut, "0.10", todayStart.Add(8*time.Hour)),
	}
	stats := domain.ComputeStats(entries, todayStart)

	assert.Equal(t, int64(2), stats.InCount)
	assert.Equal(t, int64(1), stats.TodayInCount)
	assert.Equal(t, int64(1), stats.TodayOutCount)
	assert.Equal(t, "9.90", domain.FormatAmount(stats.TodayNet))
	assert.Equal(t, "29.90", domain.FormatAmount(stats.TotalNet))
}

func TestComputeStats_NoFloatDrift(t *testing.T) {
	var entries []domain.LedgerEntry
	for i := 0; i < 10; i++ {
		entries = append(entries, entryAt(domain.DirectionIn, "0.10", time.Unix(0, 0)))
	}
	stats := domain.ComputeStats(entries, time.Now())

	assert.True(t, decimal.NewFromInt(1).Equal(stats.TotalNet))
}

func TestComputeWindowTotals(t *testing.T) {
	from := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	entries := []domain.LedgerEntry{
		entryAt(domain.DirectionIn, "100.00", from),
		entryAt(domain.DirectionOut, "30.00", from.Add(time.Hour)),
		entryAt(domain.DirectionIn, "500.00", to),
		entryAt(domain.DirectionOut, "1.00", from.Add(-time.Second)),
	}

	totals := domain.ComputeWindowTotals(entries, from, to)

	assert.Equal(t, "100.00", domain.FormatAmount(totals.InAmount))
	assert.Equal(t, "30.00", domain.FormatAmount(totals.OutAmount))
	assert.Equal(t, "70.00", domain.FormatAmount(totals.Net()))
	assert.False(t, totals.IsEmpty())
	assert.True(t, domain.ComputeWindowTotals(nil, from, to).IsEmpty())
}
