package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/core/domain"
)

// ReportingRepository defines the aggregate queries over ledger entries
type ReportingRepository interface {
	// GetAggregateStats computes all-time and since-todayStart counts and sums.
	GetAggregateStats(ctx context.Context, todayStart time.Time) (*domain.AggregateStats, error)

	// GetWindowTotals sums IN and OUT amounts for entries with from <= created_at < to.
	GetWindowTotals(ctx context.Context, from, to time.Time) (*domain.WindowTotals, error)
}
