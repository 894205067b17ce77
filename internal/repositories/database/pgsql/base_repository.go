package pgsql

import (
	"github.com/SscSPs/cashbook_backend/internal/apperrors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// storageError wraps a driver error so callers can match it with apperrors.ErrStorage.
func (r *BaseRepository) storageError(message string, err error) error {
	return apperrors.NewAppError(500, message, err)
}
