package memory

import (
	"bytes"
	"context"
	"sort"
	"time"

	"tempo/internal/domain/entity"
	"tempo/internal/domain/interval"
	"tempo/internal/domain/repository"

	"github.com/google/uuid"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	b backend
}

func copyDevice(d *entity.Device) *entity.Device {
	copied := *d
	if d.UserID != nil {
		owner := *d.UserID
		copied.UserID = &owner
	}

	return &copied
}

func (repo *deviceRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.Device, error) {
	var found *entity.Device
	err := repo.b.read(func(st *state) error {
		id, ok := st.deviceByExternal[externalID]
		if !ok {
			return repository.ErrDeviceNotFound
		}
		found = copyDevice(st.devices[id])

		return nil
	})

	return found, err
}

func (repo *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	return repo.b.write(func(st *state) error {
		if _, exists := st.deviceByExternal[device.ExternalID]; exists {
			return repository.ErrDuplicateDevice
		}

		now := repo.b.now()
		if device.ID == uuid.Nil {
			device.ID = uuid.New()
		}
		device.CreatedAt = now
		device.UpdatedAt = now

		st.devices[device.ID] = copyDevice(device)
		st.deviceByExternal[device.ExternalID] = device.ID

		return nil
	})
}

func (repo *deviceRepository) Claim(ctx context.Context, deviceID, userID uuid.UUID) error {
	return repo.b.write(func(st *state) error {
		device, ok := st.devices[deviceID]
		if !ok {
			return repository.ErrDeviceNotFound
		}
		if device.IsClaimed() {
			return repository.ErrDeviceAlreadyOwned
		}

		owner := userID
		device.UserID = &owner
		device.UpdatedAt = repo.b.now()

		return nil
	})
}

func (repo *deviceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	devices := []*entity.Device{}
	err := repo.b.read(func(st *state) error {
		for _, device := range st.devices {
			if device.OwnedBy(userID) {
				devices = append(devices, copyDevice(device))
			}
		}

		return nil
	})

	sort.Slice(devices, func(i, j int) bool {
		if !devices[i].CreatedAt.Equal(devices[j].CreatedAt) {
			return devices[i].CreatedAt.After(devices[j].CreatedAt)
		}

		return devices[i].ExternalID < devices[j].ExternalID
	})

	return devices, err
}

// appRepository implements the repository.AppRepository interface.
type appRepository struct {
	b backend
}

func copyApp(a *entity.App) *entity.App {
	copied := *a

	return &copied
}

func (repo *appRepository) FindOrCreate(ctx context.Context, name string) (*entity.App, bool, error) {
	var app *entity.App
	var created bool
	err := repo.b.write(func(st *state) error {
		if id, ok := st.appByName[name]; ok {
			app = copyApp(st.apps[id])

			return nil
		}

		now := repo.b.now()
		stored := entity.NewApp(name)
		stored.ID = uuid.New()
		stored.CreatedAt = now
		stored.UpdatedAt = now
		st.apps[stored.ID] = stored
		st.appByName[name] = stored.ID

		app = copyApp(stored)
		created = true

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return app, created, nil
}

func (repo *appRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.App, error) {
	var app *entity.App
	err := repo.b.read(func(st *state) error {
		stored, ok := st.apps[id]
		if !ok {
			return repository.ErrAppNotFound
		}
		app = copyApp(stored)

		return nil
	})

	return app, err
}

func (repo *appRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.App, error) {
	apps := []*entity.App{}
	err := repo.b.read(func(st *state) error {
		for _, id := range ids {
			if stored, ok := st.apps[id]; ok {
				apps = append(apps, copyApp(stored))
			}
		}

		return nil
	})

	sort.Slice(apps, func(i, j int) bool { return apps[i].Name < apps[j].Name })

	return apps, err
}

func (repo *appRepository) UpdateCategory(ctx context.Context, id uuid.UUID, category entity.Category, autoSuggested bool) error {
	return repo.b.write(func(st *state) error {
		stored, ok := st.apps[id]
		if !ok {
			return repository.ErrAppNotFound
		}
		stored.Category = category
		stored.AutoSuggested = autoSuggested
		stored.UpdatedAt = repo.b.now()

		return nil
	})
}

func (repo *appRepository) ApplySuggestion(ctx context.Context, id uuid.UUID, category entity.Category) (bool, error) {
	var changed bool
	err := repo.b.write(func(st *state) error {
		stored, ok := st.apps[id]
		if !ok || stored.Category != entity.CategoryUncategorized {
			return nil
		}
		stored.Category = category
		stored.AutoSuggested = true
		stored.UpdatedAt = repo.b.now()
		changed = true

		return nil
	})

	return changed, err
}

// usageRepository implements the repository.UsageRepository interface.
type usageRepository struct {
	b backend
}

func (repo *usageRepository) FindOrCreateDailyActivity(ctx context.Context, deviceID uuid.UUID, date time.Time) (*entity.DailyActivity, error) {
	date = entity.LocalDate(date, time.UTC)
	key := dailyKey{deviceID: deviceID, date: date.Format(entity.DateLayout)}

	var daily *entity.DailyActivity
	err := repo.b.write(func(st *state) error {
		if _, ok := st.devices[deviceID]; !ok {
			return repository.ErrDeviceNotFound
		}
		if id, ok := st.dailyByKey[key]; ok {
			copied := *st.daily[id]
			daily = &copied

			return nil
		}

		stored := &entity.DailyActivity{
			ID:        uuid.New(),
			DeviceID:  deviceID,
			Date:      date,
			CreatedAt: repo.b.now(),
		}
		st.daily[stored.ID] = stored
		st.dailyByKey[key] = stored.ID

		copied := *stored
		daily = &copied

		return nil
	})

	return daily, err
}

func (repo *usageRepository) FindOrCreateAppUsage(ctx context.Context, dailyActivityID, appID uuid.UUID) (*entity.AppUsage, error) {
	key := usageKey{dailyActivityID: dailyActivityID, appID: appID}

	var usage *entity.AppUsage
	err := repo.b.write(func(st *state) error {
		if id, ok := st.usageByKey[key]; ok {
			copied := *st.usages[id]
			usage = &copied

			return nil
		}

		now := repo.b.now()
		stored := &entity.AppUsage{
			ID:              uuid.New(),
			DailyActivityID: dailyActivityID,
			AppID:           appID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		st.usages[stored.ID] = stored
		st.usageByKey[key] = stored.ID

		copied := *stored
		usage = &copied

		return nil
	})

	return usage, err
}

func (repo *usageRepository) AddTotalTime(ctx context.Context, appUsageID uuid.UUID, deltaMs int64) error {
	return repo.b.write(func(st *state) error {
		stored, ok := st.usages[appUsageID]
		if !ok {
			return repository.ErrAppUsageNotFound
		}
		stored.TotalTimeMs += deltaMs
		stored.UpdatedAt = repo.b.now()

		return nil
	})
}

func (repo *usageRepository) FindAppUsage(ctx context.Context, id uuid.UUID) (*entity.AppUsage, error) {
	var usage *entity.AppUsage
	err := repo.b.read(func(st *state) error {
		stored, ok := st.usages[id]
		if !ok {
			return repository.ErrAppUsageNotFound
		}
		copied := *stored
		usage = &copied

		return nil
	})

	return usage, err
}

// timelineRepository implements the repository.TimelineRepository interface.
type timelineRepository struct {
	b backend
}

// detail joins a timeline with its owners. ok is false for orphaned rows.
func (st *state) detail(tl *entity.UsageTimeline) (*entity.TimelineDetail, *entity.Device, bool) {
	usage, ok := st.usages[tl.AppUsageID]
	if !ok {
		return nil, nil, false
	}
	daily, ok := st.daily[usage.DailyActivityID]
	if !ok {
		return nil, nil, false
	}
	device, ok := st.devices[daily.DeviceID]
	if !ok {
		return nil, nil, false
	}
	app, ok := st.apps[usage.AppID]
	if !ok {
		return nil, nil, false
	}

	return &entity.TimelineDetail{
		TimelineID:     tl.ID,
		AppUsageID:     usage.ID,
		DeviceID:       device.ID,
		DevicePlatform: device.Platform,
		App:            *app,
		Date:           daily.Date,
		Interval:       tl.Interval,
	}, device, true
}

func sortDetails(details []*entity.TimelineDetail) {
	sort.Slice(details, func(i, j int) bool {
		a, b := details[i], details[j]
		if !a.Interval.Start.Equal(b.Interval.Start) {
			return a.Interval.Start.Before(b.Interval.Start)
		}

		return bytes.Compare(a.TimelineID[:], b.TimelineID[:]) < 0
	})
}

func (repo *timelineRepository) FindOverlapping(ctx context.Context, query repository.OverlapQuery) ([]*entity.TimelineDetail, error) {
	details := []*entity.TimelineDetail{}
	err := repo.b.read(func(st *state) error {
		for _, tl := range st.timelines {
			if !interval.Overlaps(tl.Interval, query.Window) {
				continue
			}
			detail, device, ok := st.detail(tl)
			if !ok || !device.OwnedBy(query.UserID) {
				continue
			}
			if device.Platform.IsWeb() != (query.Class == repository.DeviceClassWeb) {
				continue
			}
			details = append(details, detail)
		}

		return nil
	})
	sortDetails(details)

	return details, err
}

func (repo *timelineRepository) FindForStats(ctx context.Context, query repository.StatsQuery) ([]*entity.TimelineDetail, error) {
	from := entity.LocalDate(query.FromDate, time.UTC)
	to := entity.LocalDate(query.ToDate, time.UTC)

	details := []*entity.TimelineDetail{}
	err := repo.b.read(func(st *state) error {
		for _, tl := range st.timelines {
			if query.Since != nil && !tl.Interval.End.After(*query.Since) {
				continue
			}
			detail, device, ok := st.detail(tl)
			if !ok || !device.OwnedBy(query.UserID) {
				continue
			}
			if detail.Date.Before(from) || detail.Date.After(to) {
				continue
			}
			details = append(details, detail)
		}

		return nil
	})
	sortDetails(details)

	return details, err
}

func (repo *timelineRepository) Create(ctx context.Context, appUsageID uuid.UUID, segments []interval.Interval) ([]*entity.UsageTimeline, error) {
	created := make([]*entity.UsageTimeline, 0, len(segments))
	err := repo.b.write(func(st *state) error {
		if _, ok := st.usages[appUsageID]; !ok {
			return repository.ErrAppUsageNotFound
		}

		now := repo.b.now()
		for _, segment := range segments {
			stored := &entity.UsageTimeline{
				ID:         uuid.New(),
				AppUsageID: appUsageID,
				Interval:   interval.Interval{Start: segment.Start.UTC(), End: segment.End.UTC()},
				CreatedAt:  now,
			}
			st.timelines[stored.ID] = stored

			copied := *stored
			created = append(created, &copied)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (repo *timelineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.b.write(func(st *state) error {
		if _, ok := st.timelines[id]; !ok {
			return repository.ErrTimelineNotFound
		}
		delete(st.timelines, id)

		return nil
	})
}

func (repo *timelineRepository) SumByAppUsage(ctx context.Context, appUsageID uuid.UUID) (int64, error) {
	var total int64
	err := repo.b.read(func(st *state) error {
		for _, tl := range st.timelines {
			if tl.AppUsageID == appUsageID {
				total += tl.Interval.Duration().Milliseconds()
			}
		}

		return nil
	})

	return total, err
}
