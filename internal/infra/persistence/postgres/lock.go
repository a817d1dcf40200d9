package postgres

import (
	"context"
	"hash/fnv"

	"tempo/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const sessionIngestLockPrefix = "session-ingest:"

// GenLockID derives a Postgres advisory lock key from name.
func GenLockID(name string) int64 {
	hash := fnv.New64()
	_, _ = hash.Write([]byte(name))

	return int64(hash.Sum64())
}

// advisoryUserLocker serializes ingestion per user with transaction-scoped advisory locks.
type advisoryUserLocker struct {
	tx *gorm.DB
}

func newAdvisoryUserLocker(tx *gorm.DB) repository.UserLocker {
	return &advisoryUserLocker{tx: tx}
}

// LockUser blocks until the calling transaction holds the user's lock. It is released on commit or rollback.
func (l *advisoryUserLocker) LockUser(ctx context.Context, userID uuid.UUID) error {
	lockID := GenLockID(sessionIngestLockPrefix + userID.String())
	if err := l.tx.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", lockID).Error; err != nil {
		return errors.Wrap(err, "failed to acquire user advisory lock")
	}

	return nil
}
