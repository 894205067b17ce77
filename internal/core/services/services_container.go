package services

import (
	"github.com/SscSPs/cashbook_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cashbook_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashbook_backend/internal/core/ports/services"
	"github.com/SscSPs/cashbook_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifier portssvc.NotificationSender, publisher portssvc.EventPublisher) *portssvc.ServiceContainer {
	templates := domain.Templates{
		Inbound:      cfg.TemplateInbound,
		Outbound:     cfg.TemplateOutbound,
		AdminSummary: cfg.TemplateAdminSummary,
	}

	container := &portssvc.ServiceContainer{}

	container.Reporting = NewReportingService(repos.ReportingRepo, WithReportingLocation(cfg.BusinessLocation))

	container.LedgerEntry = NewLedgerEntryService(
		repos.LedgerEntryRepo,
		notifier,
		WithEventPublisher(publisher),
		WithTemplates(templates),
		WithLocation(cfg.BusinessLocation),
		WithNotifyTimeout(cfg.NotifierTimeout),
	)

	container.Summary = NewSummaryService(container.Reporting, notifier, SummaryServiceConfig{
		Recipients:    cfg.AdminRecipients,
		Template:      templates.AdminSummary,
		Label:         cfg.AdminSummaryLabel,
		Location:      cfg.BusinessLocation,
		NotifyTimeout: cfg.NotifierTimeout,
	})

	container.Auth = NewAuthService(AuthConfig{
		AdminUsername:     cfg.AdminUsername,
		AdminPasswordHash: cfg.AdminPasswordHash,
		JWTSecret:         cfg.JWTSecret,
		JWTExpiry:         cfg.JWTExpiryDuration,
		JWTIssuer:         cfg.JWTIssuer,
	})

	return container
}
