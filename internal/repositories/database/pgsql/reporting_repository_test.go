package pgsql

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cashbook_backend/internal/core/ports/repositories"
	"github.com/SscSPs/cashbook_backend/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestAggregateQueries_AreParameterizedAndCoalesced(t *testing.T) {
	for name, query := range map[string]string{
		"aggregate stats": aggregateStatsQuery,
		"window totals":   windowTotalsQuery,
	} {
		t.Run(name, func(t *testing.T) {
			assert.NotContains(t, query, "%", "bounds must not be formatted into the SQL")
			assert.NotContains(t, query, "SUM(amount)", "sums must be coalesced")
			assert.Equal(t, strings.Count(query, "SUM("), strings.Count(query, "COALESCE(SUM("))
		})
	}

	assert.Contains(t, aggregateStatsQuery, "created_at >= $1")
	assert.NotContains(t, aggregateStatsQuery, "$2")
	assert.Contains(t, windowTotalsQuery, "created_at >= $1 AND created_at < $2")
}

// ReportingRepositoryTestSuite runs against a real database when PGSQL_TEST_URL is set.
type ReportingRepositoryTestSuite struct {
	suite.Suite
	pool      *pgxpool.Pool
	entries   portsrepo.LedgerEntryRepositoryFacade
	reporting portsrepo.ReportingRepository
	loc       *time.Location
}

func (suite *ReportingRepositoryTestSuite) SetupSuite() {
	url := os.Getenv("PGSQL_TEST_URL")
	if url == "" {
		suite.T().Skip("PGSQL_TEST_URL not set")
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	suite.Require().NoError(database.RunMigrations(url, "file://../../../../migrations", logger))
	pool, err := database.NewPgxPool(context.Background(), url, logger)
	suite.Require().NoError(err)

	suite.pool = pool
	suite.entries = newPgxLedgerEntryRepository(pool)
	suite.reporting = newReportingRepository(pool)
	suite.loc, err = time.LoadLocation("Asia/Kolkata")
	suite.Require().NoError(err)
}

func (suite *ReportingRepositoryTestSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *ReportingRepositoryTestSuite) SetupTest() {
	_, err := suite.pool.Exec(context.Background(), "TRUNCATE ledger_entries RESTART IDENTITY")
	suite.Require().NoError(err)
}

func (suite *ReportingRepositoryTestSuite) save(direction domain.Direction, amount string, at time.Time) domain.LedgerEntry {
	saved, err := suite.entries.SaveLedgerEntry(context.Background(), domain.LedgerEntry{
		Name:      "Asha",
		Mobile:    "+910000000000",
		Amount:    decimal.RequireFromString(amount),
		Direction: direction,
		CreatedAt: at,
		UpdatedAt: at,
	})
	suite.Require().NoError(err)
	return *saved
}

func (suite *ReportingRepositoryTestSuite) TestAggregateStats_EmptyTableIsZero() {
	stats, err := suite.reporting.GetAggregateStats(context.Background(), time.Now())
	suite.Require().NoError(err)

	suite.Zero(stats.InCount)
	suite.Equal("0.00", domain.FormatAmount(stats.TotalNet))
	suite.Equal("0.00", domain.FormatAmount(stats.TodayInAmount))
}

func (suite *ReportingRepositoryTestSuite) TestAggregateStats_MatchesInProcessFold() {
	todayStart := time.Date(2025, 3, 10, 0, 0, 0, 0, suite.loc)
	saved := []domain.LedgerEntry{
		suite.save(domain.DirectionIn, "30.00", todayStart.Add(-time.Minute)),
		suite.save(domain.DirectionOut, "100.00", todayStart.Add(time.Minute)),
		suite.save(domain.DirectionOut, "50.00", todayStart.Add(2*time.Hour)),
	}

	stats, err := suite.reporting.GetAggregateStats(context.Background(), todayStart)
	suite.Require().NoError(err)
	want := domain.ComputeStats(saved, todayStart)

	suite.Equal(want.InCount, stats.InCount)
	suite.Equal(want.TodayOutCount, stats.TodayOutCount)
	suite.Equal("-120.00", domain.FormatAmount(stats.TotalNet))
	suite.Equal("-150.00", domain.FormatAmount(stats.TodayNet))
	suite.True(want.TodayOutAmount.Equal(stats.TodayOutAmount))
}

func (suite *ReportingRepositoryTestSuite) TestWindowTotals_HalfOpen() {
	from := time.Date(2025, 3, 9, 0, 0, 0, 0, suite.loc)
	to := from.AddDate(0, 0, 1)
	suite.save(domain.DirectionIn, "10.00", from)
	suite.save(domain.DirectionIn, "99.00", to)
	suite.save(domain.DirectionOut, "2.50", to.Add(-time.Second))

	totals, err := suite.reporting.GetWindowTotals(context.Background(), from, to)
	suite.Require().NoError(err)

	suite.Equal("10.00", domain.FormatAmount(totals.InAmount))
	suite.Equal("2.50", domain.FormatAmount(totals.OutAmount))
}

func TestReportingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingRepositoryTestSuite))
}
