package services

import (
	"context"

	"github.com/SscSPs/cashbook_backend/internal/core/domain"
	"github.com/SscSPs/cashbook_backend/internal/dto"
)

// LedgerEntryCreatorSvc records new entries.
type LedgerEntryCreatorSvc interface {
	// CreateEntry validates the request, attempts the customer notification and
	// persists the entry with the notification outcome.
	CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error)
}

// LedgerEntryReaderSvc lists entries.
type LedgerEntryReaderSvc interface {
	// ListEntries returns all entries, newest first.
	ListEntries(ctx context.Context) ([]domain.LedgerEntry, error)
}

// LedgerEntrySvcFacade combines the ledger entry service interfaces.
type LedgerEntrySvcFacade interface {
	LedgerEntryCreatorSvc
	LedgerEntryReaderSvc
}
