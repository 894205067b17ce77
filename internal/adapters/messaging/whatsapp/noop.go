package whatsapp

import (
	"context"
	"errors"
	"log/slog"

	portssvc "github.com/SscSPs/cashbook_backend/internal/core/ports/services"
	"github.com/SscSPs/cashbook_backend/internal/middleware"
)

var errNotConfigured = errors.New("messaging gateway not configured")

// NoopSender stands in when no gateway credentials are configured. Every send
// fails so callers record the message as not delivered.
type NoopSender struct{}

var _ portssvc.NotificationSender = NoopSender{}

func (NoopSender) Send(ctx context.Context, phoneNumber, templateName string, params []string) error {
	middleware.GetLoggerFromCtx(ctx).Debug("Skipping WhatsApp message, gateway not configured",
		slog.String("template", templateName))
	return &NotificationError{Template: templateName, Err: errNotConfigured}
}
