package services

import (
	"context"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/core/domain"
)

// ReportingService computes aggregate statistics over ledger entries
type ReportingService interface {
	// Stats returns all-time and same-day aggregates, "today" being asOf's
	// calendar day in the business time zone.
	Stats(ctx context.Context, asOf time.Time) (*domain.AggregateStats, error)

	// WindowTotals returns IN/OUT sums for entries with from <= createdAt < to.
	WindowTotals(ctx context.Context, from, to time.Time) (*domain.WindowTotals, error)
}

// SummarySvc produces the daily administrator summary.
type SummarySvc interface {
	// SendDailySummary summarizes the business day before now and notifies every
	// admin recipient. Days with no movement are skipped.
	SendDailySummary(ctx context.Context, now time.Time) (*domain.DailySummaryResult, error)
}
