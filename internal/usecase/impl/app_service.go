package impl

import (
	"context"
	"log/slog"

	deliverycontext "tempo/internal/delivery/context"
	"tempo/internal/domain/categorize"
	"tempo/internal/domain/entity"
	domainerrors "tempo/internal/domain/errors"
	"tempo/internal/domain/repository"
	"tempo/internal/errors"
	"tempo/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// AppServiceParams holds dependencies for the app service, injected by Fx.
type AppServiceParams struct {
	fx.In

	AppRepo repository.AppRepository
	Logger  *slog.Logger
}

type appService struct {
	appRepo repository.AppRepository
	logger  *slog.Logger
}

// NewAppService is the constructor for appService.
func NewAppService(params AppServiceParams) usecase.AppUsecase {
	return &appService{
		appRepo: params.AppRepo,
		logger:  params.Logger,
	}
}

// UpdateCategory overwrites an app's category.
func (srv *appService) UpdateCategory(ctx context.Context, input *usecase.UpdateCategoryInput) (*entity.App, error) {
	category, ok := entity.ParseCategory(input.Category)
	if !ok {
		return nil, domainerrors.ErrInvalidCategory.WithDetails(input.Category)
	}

	if err := srv.appRepo.UpdateCategory(ctx, input.AppID, category, input.AutoSuggested); err != nil {
		if errors.Is(err, repository.ErrAppNotFound) {
			return nil, domainerrors.ErrAppNotFound
		}

		return nil, errors.Wrap(err, "failed to update app category")
	}

	app, err := srv.appRepo.FindByID(ctx, input.AppID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload app")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("App category updated",
		slog.String("app_id", app.ID.String()),
		slog.String("category", app.Category.String()),
		slog.Bool("auto_suggested", app.AutoSuggested),
	)

	return app, nil
}

// SuggestCategory runs the keyword rules without persisting anything.
func (srv *appService) SuggestCategory(_ context.Context, appName, url string) categorize.Suggestion {
	return categorize.Suggest(appName, url)
}

// AutoCategorize applies a suggestion while the app is still uncategorized.
func (srv *appService) AutoCategorize(ctx context.Context, appID uuid.UUID) (bool, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	app, err := srv.appRepo.FindByID(ctx, appID)
	if err != nil {
		if errors.Is(err, repository.ErrAppNotFound) {
			return false, domainerrors.ErrAppNotFound
		}

		return false, errors.Wrap(err, "failed to find app")
	}

	if app.Category != entity.CategoryUncategorized {
		logger.Debug("App already categorized", slog.String("app_id", appID.String()))

		return false, nil
	}

	suggestion := categorize.Suggest(app.Name, "")
	if suggestion.Category == entity.CategoryUncategorized {
		return false, nil
	}

	changed, err := srv.appRepo.ApplySuggestion(ctx, appID, suggestion.Category)
	if err != nil {
		return false, errors.Wrap(err, "failed to apply category suggestion")
	}

	if changed {
		logger.Info("App auto-categorized",
			slog.String("app_id", appID.String()),
			slog.String("category", suggestion.Category.String()),
			slog.Float64("confidence", suggestion.Confidence),
		)
	}

	return changed, nil
}
