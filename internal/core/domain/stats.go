package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AggregateStats is the snapshot returned alongside the entry listing.
// "Today" fields cover entries created on or after the start of the current
// business day.
type AggregateStats struct {
	InCount        int64
	OutCount       int64
	TotalNet       decimal.Decimal
	TodayInCount   int64
	TodayOutCount  int64
	TodayNet       decimal.Decimal
	TodayInAmount  decimal.Decimal
	TodayOutAmount decimal.Decimal
}

// WindowTotals are the IN/OUT sums over a half-open time window.
type WindowTotals struct {
	From      time.Time
	To        time.Time
	InAmount  decimal.Decimal
	OutAmount decimal.Decimal
}

// Net is InAmount - OutAmount.
func (w WindowTotals) Net() decimal.Decimal {
	return w.InAmount.Sub(w.OutAmount)
}

// IsEmpty reports whether nothing moved in either direction.
func (w WindowTotals) IsEmpty() bool {
	return w.InAmount.IsZero() && w.OutAmount.IsZero()
}

// ComputeStats folds entries into AggregateStats. It is the in-process
// counterpart of the SQL aggregate used by the postgres repository.
func ComputeStats(entries []LedgerEntry, todayStart time.Time) AggregateStats {
	var stats AggregateStats
	inTotal, outTotal := decimal.Zero, decimal.Zero
	todayInTotal, todayOutTotal := decimal.Zero, decimal.Zero

	for _, e := range entries {
		today := !e.CreatedAt.Before(todayStart)
		switch e.Direction {
		case DirectionIn:
			stats.InCount++
			inTotal = inTotal.Add(e.Amount)
			if today {
				stats.TodayInCount++
				todayInTotal = todayInTotal.Add(e.Amount)
			}
		case DirectionOut:
			stats.OutCount++
			outTotal = outTotal.Add(e.Amount)
			if today {
				stats.TodayOutCount++
				todayOutTotal = todayOutTotal.Add(e.Amount)
			}
		}
	}

	stats.TotalNet = inTotal.Sub(outTotal)
	stats.TodayInAmount = todayInTotal
	stats.TodayOutAmount = todayOutTotal
	stats.TodayNet = todayInTotal.Sub(todayOutTotal)
	return stats
}

// ComputeWindowTotals sums entries with from <= createdAt < to.
func ComputeWindowTotals(entries []LedgerEntry, from, to time.Time) WindowTotals {
	totals := WindowTotals{From: from, To: to, InAmount: decimal.Zero, OutAmount: decimal.Zero}
	for _, e := range entries {
		if e.CreatedAt.Before(from) || !e.CreatedAt.Before(to) {
			continue
		}
		switch e.Direction {
		case DirectionIn:
			totals.InAmount = totals.InAmount.Add(e.Amount)
		case DirectionOut:
			totals.OutAmount = totals.OutAmount.Add(e.Amount)
		}
	}
	return totals
}
