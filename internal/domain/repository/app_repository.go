package repository

import (
	"context"

	"tempo/internal/domain/entity"
	"tempo/internal/errors"

	"github.com/google/uuid"
)

// ErrAppNotFound is returned when no app matches the lookup.
var ErrAppNotFound = errors.New("app not found")

// AppRepository manages the global app dictionary.
type AppRepository interface {
	// FindOrCreate returns the app named name, creating an uncategorized one when missing.
	// created is true only for the call that inserted the row.
	FindOrCreate(ctx context.Context, name string) (app *entity.App, created bool, err error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.App, error)

	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.App, error)

	// UpdateCategory overwrites the category and its auto-suggested flag.
	UpdateCategory(ctx context.Context, id uuid.UUID, category entity.Category, autoSuggested bool) error

	// ApplySuggestion sets an auto-suggested category only while the app is still uncategorized.
	// It reports whether the row changed.
	ApplySuggestion(ctx context.Context, id uuid.UUID, category entity.Category) (bool, error)
}
