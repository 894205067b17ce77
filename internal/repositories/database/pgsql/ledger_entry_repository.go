package pgsql

import (
	"context"

	"github.com/SscSPs/cashbook_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cashbook_backend/internal/core/ports/repositories"
	"github.com/SscSPs/cashbook_backend/internal/models"
	"github.com/SscSPs/cashbook_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerEntryRepository struct {
	BaseRepository
}

// newPgxLedgerEntryRepository creates a new repository for ledger entries.
func newPgxLedgerEntryRepository(pool *pgxpool.Pool) portsrepo.LedgerEntryRepositoryFacade {
	return &PgxLedgerEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerEntryRepositoryFacade = (*PgxLedgerEntryRepository)(nil)

const ledgerEntryColumns = `id, name, mobile, remark, amount, direction, notification_sent, created_at, updated_at`

// SaveLedgerEntry inserts the entry in a single statement; the database assigns the ID.
func (r *PgxLedgerEntryRepository) SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	m := mapping.ToModelLedgerEntry(entry)

	query := `
		INSERT INTO ledger_entries (name, mobile, remark, amount, direction, notification_sent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.Name,
		m.Mobile,
		m.Remark,
		m.Amount,
		m.Direction,
		m.NotificationSent,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&m.ID)
	if err != nil {
		return nil, r.storageError("failed to save ledger entry", err)
	}

	saved := mapping.ToDomainLedgerEntry(m)
	return &saved, nil
}

// ListLedgerEntries returns all entries, newest first.
func (r *PgxLedgerEntryRepository) ListLedgerEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerEntryColumns + ` FROM ledger_entries ORDER BY created_at DESC, id DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, r.storageError("failed to query ledger entries", err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, scanLedgerEntry)
	if err != nil {
		return nil, r.storageError("failed to scan ledger entries", err)
	}

	return mapping.ToDomainLedgerEntrySlice(modelEntries), nil
}

// CountLedgerEntries returns the number of stored entries.
func (r *PgxLedgerEntryRepository) CountLedgerEntries(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM ledger_entries;`).Scan(&count); err != nil {
		return 0, r.storageError("failed to count ledger entries", err)
	}
	return count, nil
}

func scanLedgerEntry(row pgx.CollectableRow) (models.LedgerEntry, error) {
	var e models.LedgerEntry
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Mobile,
		&e.Remark,
		&e.Amount,
		&e.Direction,
		&e.NotificationSent,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}
