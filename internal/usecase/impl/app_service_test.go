package impl

import (
	"context"
	"testing"

	"tempo/internal/domain/entity"
	domainerrors "tempo/internal/domain/errors"
	"tempo/internal/domain/repository"
	mockRepo "tempo/internal/mocks/repository"
	"tempo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// appServiceFixtures holds all test dependencies for app service tests.
type appServiceFixtures struct {
	service usecase.AppUsecase
	appRepo *mockRepo.MockAppRepository
}

func createTestAppService(t *testing.T) appServiceFixtures {
	appRepo := mockRepo.NewMockAppRepository(t)

	return appServiceFixtures{
		service: NewAppService(AppServiceParams{AppRepo: appRepo, Logger: discardLogger()}),
		appRepo: appRepo,
	}
}

func TestAppService_UpdateCategory_Success(t *testing.T) {
	fx := createTestAppService(t)
	ctx := context.Background()
	appID := uuid.New()

	fx.appRepo.EXPECT().UpdateCategory(ctx, appID, entity.CategoryProductive, false).Return(nil)
	fx.appRepo.EXPECT().FindByID(ctx, appID).Return(&entity.App{
		ID:       appID,
		Name:     "Xcode",
		Category: entity.CategoryProductive,
	}, nil)

	app, err := fx.service.UpdateCategory(ctx, &usecase.UpdateCategoryInput{AppID: appID, Category: " Productive "})

	require.NoError(t, err)
	assert.Equal(t, entity.CategoryProductive, app.Category)
	assert.False(t, app.AutoSuggested)
}

func TestAppService_UpdateCategory_InvalidCategory(t *testing.T) {
	fx := createTestAppService(t)

	_, err := fx.service.UpdateCategory(context.Background(), &usecase.UpdateCategoryInput{AppID: uuid.New(), Category: "fun"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCategory)
}

func TestAppService_UpdateCategory_NotFound(t *testing.T) {
	fx := createTestAppService(t)
	ctx := context.Background()
	appID := uuid.New()

	fx.appRepo.EXPECT().UpdateCategory(ctx, appID, entity.CategoryNeutral, false).Return(repository.ErrAppNotFound)

	_, err := fx.service.UpdateCategory(ctx, &usecase.UpdateCategoryInput{AppID: appID, Category: "neutral"})

	require.ErrorIs(t, err, domainerrors.ErrAppNotFound)
}

func TestAppService_UpdateCategory_StorageError(t *testing.T) {
	fx := createTestAppService(t)
	ctx := context.Background()
	appID := uuid.New()

	fx.appRepo.EXPECT().UpdateCategory(ctx, appID, entity.CategoryNeutral, true).Return(errors.New("db error"))

	_, err := fx.service.UpdateCategory(ctx, &usecase.UpdateCategoryInput{AppID: appID, Category: "neutral", AutoSuggested: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update app category")
}

func TestAppService_SuggestCategory(t *testing.T) {
	fx := createTestAppService(t)

	suggestion := fx.service.SuggestCategory(context.Background(), "Google Chrome", "https://www.youtube.com/watch?v=1")

	assert.Equal(t, entity.CategoryDistracting, suggestion.Category)
}

func TestAppService_AutoCategorize(t *testing.T) {
	tests := []struct {
		name        string
		app         *entity.App
		expectApply bool
		applied     bool
		want        bool
	}{
		{
			name:        "uncategorized known app",
			app:         &entity.App{Name: "Visual Studio Code", Category: entity.CategoryUncategorized},
			expectApply: true,
			applied:     true,
			want:        true,
		},
		{
			name:        "user categorized in the meantime",
			app:         &entity.App{Name: "Slack", Category: entity.CategoryUncategorized},
			expectApply: true,
			applied:     false,
			want:        false,
		},
		{
			name: "already categorized",
			app:  &entity.App{Name: "Slack", Category: entity.CategoryDistracting},
			want: false,
		},
		{
			name: "no rule matches",
			app:  &entity.App{Name: "Qzxv", Category: entity.CategoryUncategorized},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAppService(t)
			ctx := context.Background()
			tt.app.ID = uuid.New()

			fx.appRepo.EXPECT().FindByID(ctx, tt.app.ID).Return(tt.app, nil)
			if tt.expectApply {
				fx.appRepo.EXPECT().ApplySuggestion(ctx, tt.app.ID, entity.CategoryProductive).Return(tt.applied, nil)
			}

			changed, err := fx.service.AutoCategorize(ctx, tt.app.ID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, changed)
		})
	}
}

func TestAppService_AutoCategorize_NotFound(t *testing.T) {
	fx := createTestAppService(t)
	ctx := context.Background()
	appID := uuid.New()

	fx.appRepo.EXPECT().FindByID(ctx, appID).Return(nil, repository.ErrAppNotFound)

	_, err := fx.service.AutoCategorize(ctx, appID)

	require.ErrorIs(t, err, domainerrors.ErrAppNotFound)
}
