package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cashbook_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Empty sums are coalesced to 0; the start of today is bound as $1.
const aggregateStatsQuery = `
	SELECT
		COUNT(*) FILTER (WHERE direction = 'IN') AS in_count,
		COUNT(*) FILTER (WHERE direction = 'OUT') AS out_count,
		COALESCE(SUM(CASE WHEN direction = 'IN' THEN amount ELSE -amount END), 0) AS total_net,
		COUNT(*) FILTER (WHERE direction = 'IN' AND created_at >= $1) AS today_in_count,
		COUNT(*) FILTER (WHERE direction = 'OUT' AND created_at >= $1) AS today_out_count,
		COALESCE(SUM(CASE WHEN direction = 'IN' AND created_at >= $1 THEN amount ELSE 0 END), 0) AS today_in_amount,
		COALESCE(SUM(CASE WHEN direction = 'OUT' AND created_at >= $1 THEN amount ELSE 0 END), 0) AS today_out_amount
	FROM ledger_entries;
`

// Half-open window, bounds bound as $1 and $2.
const windowTotalsQuery = `
	SELECT
		COALESCE(SUM(CASE WHEN direction = 'IN' THEN amount ELSE 0 END), 0) AS in_amount,
		COALESCE(SUM(CASE WHEN direction = 'OUT' THEN amount ELSE 0 END), 0) AS out_amount
	FROM ledger_entries
	WHERE created_at >= $1 AND created_at < $2;
`

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetAggregateStats computes every counter in one pass over ledger_entries.
func (r *reportingRepository) GetAggregateStats(ctx context.Context, todayStart time.Time) (*domain.AggregateStats, error) {
	var stats domain.AggregateStats
	err := r.Pool.QueryRow(ctx, aggregateStatsQuery, todayStart).Scan(
		&stats.InCount,
		&stats.OutCount,
		&stats.TotalNet,
		&stats.TodayInCount,
		&stats.TodayOutCount,
		&stats.TodayInAmount,
		&stats.TodayOutAmount,
	)
	if err != nil {
		return nil, r.storageError("error querying aggregate stats", err)
	}
	stats.TodayNet = stats.TodayInAmount.Sub(stats.TodayOutAmount)

	return &stats, nil
}

// GetWindowTotals sums amounts per direction for from <= created_at < to.
func (r *reportingRepository) GetWindowTotals(ctx context.Context, from, to time.Time) (*domain.WindowTotals, error) {
	totals := domain.WindowTotals{From: from, To: to}
	if err := r.Pool.QueryRow(ctx, windowTotalsQuery, from, to).Scan(&totals.InAmount, &totals.OutAmount); err != nil {
		return nil, r.storageError("error querying window totals", err)
	}

	return &totals, nil
}
