package memory

import (
	"context"
	"testing"
	"time"

	"tempo/internal/domain/entity"
	"tempo/internal/domain/interval"
	"tempo/internal/domain/repository"
	"tempo/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

// seedUsage creates a device, daily activity, app and usage in one transaction.
func seedUsage(t *testing.T, store *Store, userID uuid.UUID, externalID string, platform entity.Platform, appName string) *entity.AppUsage {
	t.Helper()

	var usage *entity.AppUsage
	err := NewTransactionManager(store).Execute(context.Background(), func(f repository.RepositoryFactory) error {
		ctx := context.Background()
		owner := userID
		device := &entity.Device{ExternalID: externalID, Platform: platform, UserID: &owner}
		if err := f.NewDeviceRepository().Create(ctx, device); err != nil {
			return err
		}
		daily, err := f.NewUsageRepository().FindOrCreateDailyActivity(ctx, device.ID, base)
		if err != nil {
			return err
		}
		app, _, err := f.NewAppRepository().FindOrCreate(ctx, appName)
		if err != nil {
			return err
		}
		usage, err = f.NewUsageRepository().FindOrCreateAppUsage(ctx, daily.ID, app.ID)

		return err
	})
	require.NoError(t, err)

	return usage
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	store := NewStore()
	boom := errors.New("boom")

	err := NewTransactionManager(store).Execute(context.Background(), func(f repository.RepositoryFactory) error {
		_, _, err := f.NewAppRepository().FindOrCreate(context.Background(), "Slack")
		require.NoError(t, err)

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, created, err := NewAppRepository(store).FindOrCreate(context.Background(), "Slack")
	require.NoError(t, err)
	assert.True(t, created, "rolled back app must not be visible")
}

func TestTransactionManager_DiscardsWorkWhenContextExpires(t *testing.T) {
	store := NewStore()
	ctx, cancel := context.WithCancel(context.Background())

	err := NewTransactionManager(store).Execute(ctx, func(f repository.RepositoryFactory) error {
		_, _, err := f.NewAppRepository().FindOrCreate(ctx, "Figma")
		cancel()

		return err
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, store.AppUsages())

	_, created, err := NewAppRepository(store).FindOrCreate(context.Background(), "Figma")
	require.NoError(t, err)
	assert.True(t, created)
}

func TestDeviceRepository_Claim(t *testing.T) {
	store := NewStore()
	repo := NewDeviceRepository(store)
	ctx := context.Background()

	device := &entity.Device{ExternalID: "dev-1", Platform: entity.PlatformLinux}
	require.NoError(t, repo.Create(ctx, device))
	require.ErrorIs(t, repo.Create(ctx, &entity.Device{ExternalID: "dev-1", Platform: entity.PlatformLinux}), repository.ErrDuplicateDevice)

	owner := uuid.New()
	require.NoError(t, repo.Claim(ctx, device.ID, owner))
	require.ErrorIs(t, repo.Claim(ctx, device.ID, uuid.New()), repository.ErrDeviceAlreadyOwned)
	require.ErrorIs(t, repo.Claim(ctx, uuid.New(), owner), repository.ErrDeviceNotFound)

	found, err := repo.FindByExternalID(ctx, "dev-1")
	require.NoError(t, err)
	assert.True(t, found.OwnedBy(owner))

	devices, err := repo.FindByUser(ctx, owner)
	require.NoError(t, err)
	require.Len(t, devices, 1)

	_, err = repo.FindByExternalID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestAppRepository_ApplySuggestionOnlyWhenUncategorized(t *testing.T) {
	store := NewStore()
	repo := NewAppRepository(store)
	ctx := context.Background()

	app, created, err := repo.FindOrCreate(ctx, "YouTube")
	require.NoError(t, err)
	require.True(t, created)

	again, created, err := repo.FindOrCreate(ctx, "YouTube")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, app.ID, again.ID)

	changed, err := repo.ApplySuggestion(ctx, app.ID, entity.CategoryDistracting)
	require.NoError(t, err)
	assert.True(t, changed)

	require.NoError(t, repo.UpdateCategory(ctx, app.ID, entity.CategoryProductive, false))
	changed, err = repo.ApplySuggestion(ctx, app.ID, entity.CategoryDistracting)
	require.NoError(t, err)
	assert.False(t, changed)

	stored, err := repo.FindByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryProductive, stored.Category)
	assert.False(t, stored.AutoSuggested)

	assert.ErrorIs(t, repo.UpdateCategory(ctx, uuid.New(), entity.CategoryNeutral, false), repository.ErrAppNotFound)
}

func TestTimelineRepository_FindOverlappingByDeviceClass(t *testing.T) {
	store := NewStore()
	userID := uuid.New()
	webUsage := seedUsage(t, store, userID, "ext-web", entity.PlatformWeb, "youtube.com")
	nativeUsage := seedUsage(t, store, userID, "ext-mac", entity.PlatformMacOS, "Xcode")
	strangerUsage := seedUsage(t, store, uuid.New(), "ext-other", entity.PlatformWeb, "reddit.com")

	repo := NewTimelineRepository(store)
	ctx := context.Background()
	window := interval.MustNew(base, base.Add(time.Hour))
	_, err := repo.Create(ctx, webUsage.ID, []interval.Interval{window})
	require.NoError(t, err)
	_, err = repo.Create(ctx, nativeUsage.ID, []interval.Interval{window})
	require.NoError(t, err)
	_, err = repo.Create(ctx, strangerUsage.ID, []interval.Interval{window})
	require.NoError(t, err)

	web, err := repo.FindOverlapping(ctx, repository.OverlapQuery{UserID: userID, Window: window, Class: repository.DeviceClassWeb})
	require.NoError(t, err)
	require.Len(t, web, 1)
	assert.Equal(t, "youtube.com", web[0].App.Name)

	native, err := repo.FindOverlapping(ctx, repository.OverlapQuery{UserID: userID, Window: window, Class: repository.DeviceClassNative})
	require.NoError(t, err)
	require.Len(t, native, 1)
	assert.Equal(t, entity.PlatformMacOS, native[0].DevicePlatform)

	touching := interval.MustNew(base.Add(time.Hour), base.Add(2*time.Hour))
	none, err := repo.FindOverlapping(ctx, repository.OverlapQuery{UserID: userID, Window: touching, Class: repository.DeviceClassWeb})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTimelineRepository_FindForStatsFiltersDatesAndSince(t *testing.T) {
	store := NewStore()
	userID := uuid.New()
	usage := seedUsage(t, store, userID, "ext-win", entity.PlatformWindows, "Word")

	repo := NewTimelineRepository(store)
	ctx := context.Background()
	_, err := repo.Create(ctx, usage.ID, []interval.Interval{
		interval.MustNew(base, base.Add(10*time.Minute)),
		interval.MustNew(base.Add(20*time.Minute), base.Add(30*time.Minute)),
	})
	require.NoError(t, err)

	day := entity.LocalDate(base, time.UTC)
	all, err := repo.FindForStats(ctx, repository.StatsQuery{UserID: userID, FromDate: day, ToDate: day})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].Interval.Start.Before(all[1].Interval.Start))

	since := base.Add(10 * time.Minute)
	later, err := repo.FindForStats(ctx, repository.StatsQuery{UserID: userID, FromDate: day, ToDate: day, Since: &since})
	require.NoError(t, err)
	require.Len(t, later, 1)

	nextDay := day.AddDate(0, 0, 1)
	none, err := repo.FindForStats(ctx, repository.StatsQuery{UserID: userID, FromDate: nextDay, ToDate: nextDay})
	require.NoError(t, err)
	assert.Empty(t, none)

	total, err := repo.SumByAppUsage(ctx, usage.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(20*60*1000), total)

	require.NoError(t, repo.Delete(ctx, all[0].TimelineID))
	assert.ErrorIs(t, repo.Delete(ctx, all[0].TimelineID), repository.ErrTimelineNotFound)
}
