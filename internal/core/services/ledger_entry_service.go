package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/apperrors"
	"github.com/SscSPs/cashbook_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cashbook_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashbook_backend/internal/core/ports/services"
	"github.com/SscSPs/cashbook_backend/internal/dto"
)

const defaultNotifyTimeout = 10 * time.Second

type ledgerEntryService struct {
	BaseService
	repo          portsrepo.LedgerEntryRepositoryFacade
	notifier      portssvc.NotificationSender
	publisher     portssvc.EventPublisher
	templates     domain.Templates
	location      *time.Location
	notifyTimeout time.Duration
	now           func() time.Time
}

// LedgerEntryServiceOption is a functional option for configuring the ledger entry service
type LedgerEntryServiceOption func(*ledgerEntryService)

// WithEventPublisher sets the publisher that announces recorded entries.
func WithEventPublisher(publisher portssvc.EventPublisher) LedgerEntryServiceOption {
	return func(s *ledgerEntryService) {
		s.publisher = publisher
	}
}

// WithTemplates overrides the notification template names.
func WithTemplates(templates domain.Templates) LedgerEntryServiceOption {
	return func(s *ledgerEntryService) {
		s.templates = templates
	}
}

// WithLocation sets the business time zone used to render dates.
func WithLocation(loc *time.Location) LedgerEntryServiceOption {
	return func(s *ledgerEntryService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithNotifyTimeout bounds each customer notification attempt.
func WithNotifyTimeout(timeout time.Duration) LedgerEntryServiceOption {
	return func(s *ledgerEntryService) {
		if timeout > 0 {
			s.notifyTimeout = timeout
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) LedgerEntryServiceOption {
	return func(s *ledgerEntryService) {
		s.now = now
	}
}

// NewLedgerEntryService creates the service that records and lists entries.
func NewLedgerEntryService(repo portsrepo.LedgerEntryRepositoryFacade, notifier portssvc.NotificationSender, options ...LedgerEntryServiceOption) portssvc.LedgerEntrySvcFacade {
	svc := &ledgerEntryService{
		repo:          repo,
		notifier:      notifier,
		templates:     domain.DefaultTemplates,
		location:      time.UTC,
		notifyTimeout: defaultNotifyTimeout,
		now:           time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.LedgerEntrySvcFacade = (*ledgerEntryService)(nil)

// CreateEntry validates the request, notifies the customer and persists the entry
// once with the notification outcome. Publishing the event is best effort.
func (s *ledgerEntryService) CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	if req.Amount == nil {
		return nil, apperrors.NewValidationError("amount is required")
	}

	now := s.now()
	entry := domain.LedgerEntry{
		Name:      strings.TrimSpace(req.Name),
		Mobile:    strings.TrimSpace(req.Mobile),
		Remark:    normalizeRemark(req.Remark),
		Amount:    *req.Amount,
		Direction: req.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := entry.Validate(); err != nil {
		s.LogDebug(ctx, "Rejected ledger entry", slog.String("reason", err.Error()))
		return nil, err
	}

	// Once the gateway may have messaged the customer the entry must be stored,
	// so a caller that goes away does not cancel the rest of the sequence.
	ctx = context.WithoutCancel(ctx)
	entry.NotificationSent = s.notify(ctx, &entry)

	saved, err := s.repo.SaveLedgerEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to save ledger entry",
			slog.String("type", string(entry.Direction)),
			slog.Bool("notification_sent", entry.NotificationSent))
		return nil, fmt.Errorf("failed to save ledger entry: %w", err)
	}

	s.publish(ctx, *saved)

	s.LogInfo(ctx, "Ledger entry recorded",
		slog.Int64("entry_id", saved.ID),
		slog.String("type", string(saved.Direction)),
		slog.String("amount", domain.FormatAmount(saved.Amount)),
		slog.Bool("notification_sent", saved.NotificationSent))
	return saved, nil
}

// ListEntries returns all entries, newest first.
func (s *ledgerEntryService) ListEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	entries, err := s.repo.ListLedgerEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries")
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	return entries, nil
}

// notify makes one bounded attempt to message the customer and reports whether it was accepted.
func (s *ledgerEntryService) notify(ctx context.Context, entry *domain.LedgerEntry) bool {
	if s.notifier == nil {
		return false
	}

	notifyCtx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()

	template := s.templates.For(entry.Direction)
	params := domain.EntryNotificationParams(entry, s.location)
	if err := s.notifier.Send(notifyCtx, entry.Mobile, template, params); err != nil {
		s.LogWarn(ctx, err, "Customer notification failed",
			slog.String("template", template),
			slog.String("type", string(entry.Direction)))
		return false
	}
	return true
}

func (s *ledgerEntryService) publish(ctx context.Context, entry domain.LedgerEntry) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEntryRecorded(ctx, entry); err != nil {
		s.LogWarn(ctx, err, "Failed to publish ledger entry event", slog.Int64("entry_id", entry.ID))
	}
}

func normalizeRemark(remark *string) *string {
	if remark == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*remark)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
