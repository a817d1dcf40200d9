package repository

import (
	"context"

	"github.com/google/uuid"
)

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// UserLocker serializes writers per user for the lifetime of the current transaction.
type UserLocker interface {
	// LockUser blocks until no other transaction holds the lock for userID.
	LockUser(ctx context.Context, userID uuid.UUID) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	NewDeviceRepository() DeviceRepository
	NewAppRepository() AppRepository
	NewUsageRepository() UsageRepository
	NewTimelineRepository() TimelineRepository
	NewUserLocker() UserLocker
}
