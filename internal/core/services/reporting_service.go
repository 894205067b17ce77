package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cashbook_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashbook_backend/internal/core/ports/services"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	location      *time.Location
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingLocation sets the business time zone that defines "today".
func WithReportingLocation(loc *time.Location) ReportingServiceOption {
	return func(s *reportingService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: repo,
		location:      time.UTC,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// Stats returns the aggregate snapshot, "today" starting at midnight of asOf in the business zone.
func (s *reportingService) Stats(ctx context.Context, asOf time.Time) (*domain.AggregateStats, error) {
	todayStart := domain.StartOfDay(asOf, s.location)

	stats, err := s.reportingRepo.GetAggregateStats(ctx, todayStart)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve aggregate stats",
			slog.String("todayStart", todayStart.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve aggregate stats: %w", err)
	}

	s.LogDebug(ctx, "Aggregate stats computed",
		slog.String("todayStart", todayStart.Format(time.RFC3339)),
		slog.Int64("in_count", stats.InCount),
		slog.Int64("out_count", stats.OutCount))
	return stats, nil
}

// WindowTotals returns IN/OUT sums over [from, to).
func (s *reportingService) WindowTotals(ctx context.Context, from, to time.Time) (*domain.WindowTotals, error) {
	if !from.Before(to) {
		return &domain.WindowTotals{From: from, To: to}, nil
	}

	totals, err := s.reportingRepo.GetWindowTotals(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve window totals",
			slog.String("from", from.Format(time.RFC3339)),
			slog.String("to", to.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve window totals: %w", err)
	}
	return totals, nil
}
