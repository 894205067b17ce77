package services

import (
	"context"

	"github.com/SscSPs/cashbook_backend/internal/core/domain"
)

// NotificationSender delivers a templated message to a phone number.
// Implementations report failures but never retry.
type NotificationSender interface {
	Send(ctx context.Context, phoneNumber, templateName string, params []string) error
}

// EventPublisher announces recorded entries to downstream consumers.
type EventPublisher interface {
	PublishEntryRecorded(ctx context.Context, entry domain.LedgerEntry) error
	Close() error
}
