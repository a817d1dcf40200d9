// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"tempo/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// NewDeviceRepository creates a new device repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewDeviceRepository() repository.DeviceRepository {
	return NewDeviceRepository(f.tx)
}

// NewAppRepository creates a new app repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewAppRepository() repository.AppRepository {
	return NewAppRepository(f.tx)
}

// NewUsageRepository creates a new usage repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewUsageRepository() repository.UsageRepository {
	return NewUsageRepository(f.tx)
}

// NewTimelineRepository creates a new timeline repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewTimelineRepository() repository.TimelineRepository {
	return NewTimelineRepository(f.tx)
}

// NewUserLocker creates a user locker bound to the transaction.
func (f *gormRepositoryFactory) NewUserLocker() repository.UserLocker {
	return newAdvisoryUserLocker(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Roll back if the callback panics, then re-panic for Fx or the echo recover middleware.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	// A deadline that expired during fn must not be committed.
	if ctxErr := ctx.Err(); ctxErr != nil {
		tx.Rollback()

		return fmt.Errorf("transaction aborted: %w", ctxErr)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
