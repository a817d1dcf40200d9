package usecase

import (
	"context"

	"tempo/internal/domain/categorize"
	"tempo/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateCategoryInput changes an app's category.
type UpdateCategoryInput struct {
	AppID         uuid.UUID
	Category      string
	AutoSuggested bool
}

// AppUsecase manages the app dictionary.
type AppUsecase interface {
	// UpdateCategory sets the category chosen by a user or a suggestion.
	UpdateCategory(ctx context.Context, input *UpdateCategoryInput) (*entity.App, error)

	// SuggestCategory runs the keyword rules without persisting anything.
	SuggestCategory(ctx context.Context, appName, url string) categorize.Suggestion

	// AutoCategorize applies a suggestion to an app that nobody has categorized yet.
	// It reports whether the app changed.
	AutoCategorize(ctx context.Context, appID uuid.UUID) (bool, error)
}
