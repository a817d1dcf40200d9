package postgres

import (
	"context"
	"database/sql/driver"

	"tempo/internal/domain/entity"
	domainerrors "tempo/internal/domain/errors"
	"tempo/internal/domain/repository"
	"tempo/internal/infra/persistence/model"
	"tempo/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// appRepository implements the repository.AppRepository interface.
type appRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewAppRepository is the constructor for appRepository.
func NewAppRepository(db *gorm.DB) repository.AppRepository {
	return &appRepository{
		db: db,
		q:  query.Use(db),
	}
}

// FindOrCreate inserts the app unless the name exists, then loads the stored row.
func (repo *appRepository) FindOrCreate(ctx context.Context, name string) (*entity.App, bool, error) {
	appM := fromAppDomain(entity.NewApp(name))

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(appM)
	if result.Error != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create app")
	}

	if result.RowsAffected == 1 {
		return toAppDomain(appM), true, nil
	}

	existing, err := repo.q.AppModel.WithContext(ctx).
		Where(repo.q.AppModel.Name.Eq(name)).
		First()
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to find app by name")
	}

	return toAppDomain(existing), false, nil
}

// FindByID retrieves an app by its ID.
func (repo *appRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.App, error) {
	appM, err := repo.q.AppModel.WithContext(ctx).
		Where(repo.q.AppModel.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAppNotFound
		}

		return nil, errors.Wrap(err, "failed to find app by ID")
	}

	return toAppDomain(appM), nil
}

// FindByIDs retrieves every app whose ID is listed. Unknown IDs are skipped.
func (repo *appRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.App, error) {
	if len(ids) == 0 {
		return []*entity.App{}, nil
	}

	values := make([]driver.Valuer, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}

	appModels, err := repo.q.AppModel.WithContext(ctx).
		Where(repo.q.AppModel.ID.In(values...)).
		Order(repo.q.AppModel.Name.Asc()).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find apps by IDs")
	}

	apps := make([]*entity.App, 0, len(appModels))
	for _, appM := range appModels {
		apps = append(apps, toAppDomain(appM))
	}

	return apps, nil
}

// UpdateCategory overwrites the category of an app.
func (repo *appRepository) UpdateCategory(ctx context.Context, id uuid.UUID, category entity.Category, autoSuggested bool) error {
	result, err := repo.q.AppModel.WithContext(ctx).
		Where(repo.q.AppModel.ID.Eq(id)).
		Updates(map[string]any{
			"category":       category.String(),
			"auto_suggested": autoSuggested,
		})

	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidCategory.WithDetails(category.String())
		}

		return errors.Wrap(err, "failed to update app category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAppNotFound
	}

	return nil
}

// ApplySuggestion sets an auto-suggested category if nobody categorized the app meanwhile.
func (repo *appRepository) ApplySuggestion(ctx context.Context, id uuid.UUID, category entity.Category) (bool, error) {
	result, err := repo.q.AppModel.WithContext(ctx).
		Where(
			repo.q.AppModel.ID.Eq(id),
			repo.q.AppModel.Category.Eq(entity.CategoryUncategorized.String()),
		).
		Updates(map[string]any{
			"category":       category.String(),
			"auto_suggested": true,
		})

	if err != nil {
		return false, errors.Wrap(err, "failed to apply category suggestion")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

func toAppDomain(data *model.AppModel) *entity.App {
	if data == nil {
		return nil
	}

	return &entity.App{
		ID:            data.ID,
		Name:          data.Name,
		Category:      entity.Category(data.Category),
		AutoSuggested: data.AutoSuggested,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromAppDomain(data *entity.App) *model.AppModel {
	if data == nil {
		return nil
	}

	return &model.AppModel{
		ID:            data.ID,
		Name:          data.Name,
		Category:      data.Category.String(),
		AutoSuggested: data.AutoSuggested,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
