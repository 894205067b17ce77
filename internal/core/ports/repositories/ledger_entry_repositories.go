package repositories

import (
	"context"

	"github.com/SscSPs/cashbook_backend/internal/core/domain"
)

// LedgerEntryReader defines read operations for ledger entries
type LedgerEntryReader interface {
	// ListLedgerEntries returns every entry, newest first.
	ListLedgerEntries(ctx context.Context) ([]domain.LedgerEntry, error)

	// CountLedgerEntries returns the number of stored entries.
	CountLedgerEntries(ctx context.Context) (int64, error)
}

// LedgerEntryWriter defines write operations for ledger entries
type LedgerEntryWriter interface {
	// SaveLedgerEntry appends a new entry and returns it with its assigned ID.
	SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)
}

// LedgerEntryRepositoryFacade combines all ledger entry repository interfaces
type LedgerEntryRepositoryFacade interface {
	LedgerEntryReader
	LedgerEntryWriter
}
