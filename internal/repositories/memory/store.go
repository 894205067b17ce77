// Package memory provides a process-local ledger store used when no
// PostgreSQL URL is configured, and as a fake in tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cashbook_backend/internal/core/ports/repositories"
)

// Store keeps ledger entries in an append-only slice guarded by a RWMutex.
type Store struct {
	mu      sync.RWMutex
	entries []domain.LedgerEntry
	nextID  int64
}

var (
	_ portsrepo.LedgerEntryRepositoryFacade = (*Store)(nil)
	_ portsrepo.ReportingRepository         = (*Store)(nil)
)

// NewStore returns an empty store whose first entry gets ID 1.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// NewRepositoryProvider exposes one Store through both repository ports.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerEntryRepo: store,
		ReportingRepo:   store,
	}
}

func (s *Store) SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.nextID
	s.nextID++
	s.entries = append(s.entries, entry)

	saved := entry
	return &saved, nil
}

// ListLedgerEntries returns a copy of all entries, newest first.
func (s *Store) ListLedgerEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make([]domain.LedgerEntry, len(s.entries))
	copy(out, s.entries)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) CountLedgerEntries(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.entries)), nil
}

func (s *Store) GetAggregateStats(ctx context.Context, todayStart time.Time) (*domain.AggregateStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := domain.ComputeStats(s.entries, todayStart)
	return &stats, nil
}

func (s *Store) GetWindowTotals(ctx context.Context, from, to time.Time) (*domain.WindowTotals, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	totals := domain.ComputeWindowTotals(s.entries, from, to)
	return &totals, nil
}
