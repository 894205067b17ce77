package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/apperrors"
	"github.com/SscSPs/cashbook_backend/internal/core/domain"
	portssvc "github.com/SscSPs/cashbook_backend/internal/core/ports/services"
)

type summaryService struct {
	BaseService
	reporting     portssvc.ReportingService
	notifier      portssvc.NotificationSender
	recipients    []string
	template      string
	label         string
	location      *time.Location
	notifyTimeout time.Duration
}

// SummaryServiceConfig carries the admin summary settings.
type SummaryServiceConfig struct {
	Recipients    []string
	Template      string
	Label         string
	Location      *time.Location
	NotifyTimeout time.Duration
}

// NewSummaryService creates the daily admin summary service.
func NewSummaryService(reporting portssvc.ReportingService, notifier portssvc.NotificationSender, cfg SummaryServiceConfig) portssvc.SummarySvc {
	svc := &summaryService{
		reporting:     reporting,
		notifier:      notifier,
		recipients:    append([]string(nil), cfg.Recipients...),
		template:      cfg.Template,
		label:         cfg.Label,
		location:      cfg.Location,
		notifyTimeout: cfg.NotifyTimeout,
	}
	if svc.template == "" {
		svc.template = domain.DefaultTemplates.AdminSummary
	}
	if svc.label == "" {
		svc.label = "Admin"
	}
	if svc.location == nil {
		svc.location = time.UTC
	}
	if svc.notifyTimeout <= 0 {
		svc.notifyTimeout = defaultNotifyTimeout
	}
	return svc
}

var _ portssvc.SummarySvc = (*summaryService)(nil)

// SendDailySummary sums the business day before now and messages each admin in turn.
// A failed delivery is logged and the next recipient is still attempted.
func (s *summaryService) SendDailySummary(ctx context.Context, now time.Time) (*domain.DailySummaryResult, error) {
	from, to := domain.PreviousDayWindow(now, s.location)

	totals, err := s.reporting.WindowTotals(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: daily summary for %s: %w", apperrors.ErrScheduler,
			domain.FormatDisplayDate(from, s.location), err)
	}

	result := &domain.DailySummaryResult{
		Totals:     *totals,
		Recipients: len(s.recipients),
	}

	if totals.IsEmpty() {
		result.Skipped = true
		s.LogInfo(ctx, "No activity in previous day, skipping admin summary",
			slog.String("date", domain.FormatDisplayDate(from, s.location)))
		return result, nil
	}

	params := domain.SummaryNotificationParams(s.label, *totals, s.location)
	for _, recipient := range s.recipients {
		if ctx.Err() != nil {
			result.Failed += len(s.recipients) - result.Delivered - result.Failed
			break
		}
		if err := s.send(ctx, recipient, params); err != nil {
			result.Failed++
			s.LogWarn(ctx, err, "Admin summary delivery failed", slog.String("template", s.template))
			continue
		}
		result.Delivered++
	}

	s.LogInfo(ctx, "Admin summary sent",
		slog.String("date", params[1]),
		slog.String("in", params[2]),
		slog.String("out", params[3]),
		slog.String("net", params[4]),
		slog.Int("delivered", result.Delivered),
		slog.Int("failed", result.Failed))
	return result, nil
}

func (s *summaryService) send(ctx context.Context, recipient string, params []string) error {
	sendCtx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()
	return s.notifier.Send(sendCtx, recipient, s.template, params)
}
