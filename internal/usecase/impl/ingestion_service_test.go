package impl

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"tempo/config"
	"tempo/internal/domain/classification"
	"tempo/internal/domain/entity"
	domainerrors "tempo/internal/domain/errors"
	"tempo/internal/domain/interval"
	"tempo/internal/domain/repository"
	"tempo/internal/domain/service"
	"tempo/internal/infra/persistence/memory"
	mockSvc "tempo/internal/mocks/service"
	"tempo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// ingestionFixtures wires the ingestion service to an in-memory ledger.
type ingestionFixtures struct {
	service   usecase.IngestionUsecase
	store     *memory.Store
	browsers  *classification.BrowserTable
	publisher *mockSvc.MockEventPublisher
}

func createMemoryIngestionService(t *testing.T) ingestionFixtures {
	t.Helper()

	store := memory.NewStore()
	browsers := classification.NewBrowserTable(nil)
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishAppDiscovered(mock.Anything, mock.Anything).Return(nil).Maybe()

	cfg := &config.Config{}
	cfg.Ingestion.Timeout = 5 * time.Second

	svc := NewIngestionService(IngestionServiceParams{
		TxManager: memory.NewTransactionManager(store),
		Browsers:  browsers,
		Publisher: publisher,
		Recorder:  service.NoopIngestionRecorder{},
		Config:    cfg,
		Logger:    discardLogger(),
	})

	return ingestionFixtures{
		service:   svc,
		store:     store,
		browsers:  browsers,
		publisher: publisher,
	}
}

func report(userID uuid.UUID, device string, platform entity.Platform, app string, start, end time.Time) *usecase.IngestSessionInput {
	return &usecase.IngestSessionInput{
		DeviceExternalID: device,
		DevicePlatform:   platform.String(),
		AppName:          app,
		StartTime:        start,
		EndTime:          end,
		TimeZone:         "UTC",
		UserID:           userID,
	}
}

func (f ingestionFixtures) ingest(t *testing.T, input *usecase.IngestSessionInput) *usecase.IngestSessionResult {
	t.Helper()

	result, err := f.service.IngestSession(context.Background(), input)
	require.NoError(t, err)
	require.True(t, result.Success)

	return result
}

// timelines returns every timeline of userID, web and native alike.
func (f ingestionFixtures) timelines(t *testing.T, userID uuid.UUID) []*entity.TimelineDetail {
	t.Helper()

	details, err := memory.NewTimelineRepository(f.store).FindForStats(context.Background(), repository.StatsQuery{
		UserID:   userID,
		FromDate: day.AddDate(0, 0, -3),
		ToDate:   day.AddDate(0, 0, 3),
	})
	require.NoError(t, err)

	return details
}

func intervalsOf(details []*entity.TimelineDetail, platform entity.Platform) []interval.Interval {
	var out []interval.Interval
	for _, d := range details {
		if d.DevicePlatform == platform {
			out = append(out, d.Interval)
		}
	}

	return out
}

// assertLedgerConsistent checks that every counter equals the sum of its timelines.
func (f ingestionFixtures) assertLedgerConsistent(t *testing.T) {
	t.Helper()

	timelines := memory.NewTimelineRepository(f.store)
	for _, usage := range f.store.AppUsages() {
		sum, err := timelines.SumByAppUsage(context.Background(), usage.ID)
		require.NoError(t, err)
		require.Equal(t, sum, usage.TotalTimeMs, "app usage %s", usage.ID)
		require.GreaterOrEqual(t, usage.TotalTimeMs, int64(0))
	}
}

// assertNoDoubleCounting checks that no web timeline overlaps a native, non-browser timeline.
func (f ingestionFixtures) assertNoDoubleCounting(t *testing.T, userID uuid.UUID) {
	t.Helper()

	details := f.timelines(t, userID)
	for _, web := range details {
		if !web.DevicePlatform.IsWeb() {
			continue
		}
		for _, native := range details {
			if native.DevicePlatform.IsWeb() || f.browsers.MatchesApp(native.App.Name) {
				continue
			}
			require.False(t, interval.Overlaps(web.Interval, native.Interval),
				"web %v (%s) overlaps native %v (%s)", web.Interval, web.App.Name, native.Interval, native.App.Name)
		}
	}
}

func TestIngestionService_WebFullyCoveredByNativeIsFiltered(t *testing.T) {
	fx := createMemoryIngestionService(t)
	userID := uuid.New()

	fx.ingest(t, report(userID, "mac-1", entity.PlatformMacOS, "Xcode", at(10, 0), at(11, 0)))
	result := fx.ingest(t, report(userID, "ext-1", entity.PlatformWeb, "github.com", at(10, 15), at(10, 45)))

	assert.True(t, result.Filtered)
	assert.Equal(t, int64(0), result.DurationAddedMs)

	devices, err := memory.NewDeviceRepository(fx.store).FindByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, devices, 1, "a filtered report must not register its device")
	assert.Empty(t, intervalsOf(fx.timelines(t, userID), entity.PlatformWeb))
	fx.assertLedgerConsistent(t)
}

func TestIngestionService_WebPartiallyCoveredKeepsRemainder(t *testing.T) {
	fx := createMemoryIngestionService(t)
	userID := uuid.New()

	fx.ingest(t, report(userID, "win-1", entity.PlatformWindows, "Word", at(10, 0), at(10, 30)))
	result := fx.ingest(t, report(userID, "ext-1", entity.PlatformWeb, "docs.google.com", at(10, 15), at(11, 0)))

	assert.False(t, result.Filtered)
	assert.Equal(t, int64(30*60*1000), result.DurationAddedMs)
	assert.Equal(t, []interval.Interval{interval.MustNew(at(10, 30), at(11, 0))}, intervalsOf(fx.timelines(t, userID), entity.PlatformWeb))
	fx.assertLedgerConsistent(t)
}

func TestIngestionService_WebWithoutNativeIsStoredWhole(t *testing.T) {
	fx := createMemoryIngestionService(t)
	userID := uuid.New()

	result := fx.ingest(t, report(userID, "ext-1", entity.PlatformWeb, "youtube.com", at(9, 0), at(9, 40)))

	assert.False(t, result.Filtered)
	assert.Equal(t, int64(40*60*1000), result.DurationAddedMs)
	fx.assertLedgerConsistent(t)
}

func TestIngestionService_NativeSplitsWebTimeline(t *testing.T) {
	fx := createMemoryIngestionService(t)
	userID := uuid.New()

	fx.ingest(t, report(userID, "ext-1", entity.PlatformWeb, "youtube.com", at(10, 0), at(11, 0)))
	result := fx.ingest(t, report(userID, "mac-1", entity.PlatformMacOS, "Keynote", at(10, 20), at(10, 40)))

	assert.Equal(t, int64(20*60*1000), result.DurationAddedMs)
	web := intervalsOf(fx.timelines(t, userID), entity.PlatformWeb)
	assert.Equal(t, []interval.Interval{
		interval.MustNew(at(10, 0), at(10, 20)),
		interval.MustNew(at(10, 40), at(11, 0)),
	}, web)

	totals := make([]int64, 0, 2)
	for _, usage := range fx.store.AppUsages() {
		totals = append(totals, usage.TotalTimeMs)
	}
	assert.ElementsMatch(t, []int64{40 * 60 * 1000, 20 * 60 * 1000}, totals)
	fx.assertLedgerConsistent(t)
}

func TestIngestionService_NativeRemovesCoveredWebTimeline(t *testing.T) {
	fx := createMemoryIngestionService(t)
	userID := uuid.New()

	fx.ingest(t, report(userID, "ext-1", entity.PlatformWeb, "reddit.com", at(10, 15), at(10, 45)))
	fx.ingest(t, report(userID, "linux-1", entity.PlatformLinux, "vim", at(10, 0), at(11, 0)))

	assert.Empty(t, intervalsOf(fx.timelines(t, userID), entity.PlatformWeb))
	fx.assertLedgerConsistent(t)
	fx.assertNoDoubleCounting(t, userID)
}

func TestIngestionService_NativeBrowserNeitherPrunesNorBlocks(t *testing.T) {
	fx := createMemoryIngestionService(t)
	userID := uuid.New()

	fx.ingest(t, report(userID, "ext-1", entity.PlatformWeb, "github.com", at(10, 0), at(11, 0)))
	fx.ingest(t, report(userID, "mac-1", entity.PlatformMacOS, "Google Chrome", at(10, 0), at(11, 0)))
	result := fx.ingest(t, report(userID, "ext-1", entity.PlatformWeb, "github.com", at(11, 0), at(11, 30)))

	assert.False(t, result.Filtered)
	assert.Len(t, intervalsOf(fx.timelines(t, userID), entity.PlatformWeb), 2)
	fx.assertLedgerConsistent(t)
}

func TestIngestionService_OtherUsersAreIsolated(t *testing.T) {
	fx := createMemoryIngestionService(t)
	alice, bob := uuid.New(), uuid.New()

	fx.ingest(t, report(alice, "alice-mac", entity.PlatformMacOS, "Xcode", at(10, 0), at(11, 0)))
	result := fx.ingest(t, report(bob, "bob-ext", entity.PlatformWeb, "github.com", at(10, 0), at(11, 0)))

	assert.False(t, result.Filtered)
	assert.Equal(t, int64(60*60*1000), result.DurationAddedMs)
}

func TestIngestionService_RejectsInvalidReports(t *testing.T) {
	userID := uuid.New()
	tests := []struct {
		name    string
		mutate  func(in *usecase.IngestSessionInput)
		wantErr error
	}{
		{"empty interval", func(in *usecase.IngestSessionInput) { in.EndTime = in.StartTime }, domainerrors.ErrInvalidRange},
		{"inverted interval", func(in *usecase.IngestSessionInput) { in.EndTime = in.StartTime.Add(-time.Minute) }, domainerrors.ErrInvalidRange},
		{"sub-millisecond interval", func(in *usecase.IngestSessionInput) { in.EndTime = in.StartTime.Add(500 * time.Microsecond) }, domainerrors.ErrInvalidRange},
		{"longer than a day", func(in *usecase.IngestSessionInput) { in.EndTime = in.StartTime.Add(24*time.Hour + time.Millisecond) }, domainerrors.ErrDurationTooLarge},
		{"unknown zone", func(in *usecase.IngestSessionInput) { in.TimeZone = "Mars/Olympus_Mons" }, domainerrors.ErrInvalidTimeZone},
		{"missing zone", func(in *usecase.IngestSessionInput) { in.TimeZone = "" }, domainerrors.ErrInvalidTimeZone},
		{"unknown platform", func(in *usecase.IngestSessionInput) { in.DevicePlatform = "beos" }, domainerrors.ErrInvalidPlatform},
		{"missing device", func(in *usecase.IngestSessionInput) { in.DeviceExternalID = " " }, domainerrors.ErrValidationFailed},
		{"missing app", func(in *usecase.IngestSessionInput) { in.AppName = "" }, domainerrors.ErrValidationFailed},
		{"anonymous", func(in *usecase.IngestSessionInput) { in.UserID = uuid.Nil }, domainerrors.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createMemoryIngestionService(t)
			input := report(userID, "mac-1", entity.PlatformMacOS, "Xcode", at(10, 0), at(11, 0))
			tt.mutate(input)

			result, err := fx.service.IngestSession(context.Background(), input)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
			assert.Empty(t, fx.store.AppUsages())
		})
	}
}

func TestIngestionService_ExactlyOneDayIsAccepted(t *testing.T) {
	fx := createMemoryIngestionService(t)

	result := fx.ingest(t, report(uuid.New(), "mac-1", entity.PlatformMacOS, "Xcode", at(0, 0), at(24, 0)))

	assert.Equal(t, int64(24*60*60*1000), result.DurationAddedMs)
}

func TestIngestionService_DeviceOwnedByAnotherUser(t *testing.T) {
	fx := createMemoryIngestionService(t)
	owner, intruder := uuid.New(), uuid.New()

	fx.ingest(t, report(owner, "mac-1", entity.PlatformMacOS, "Xcode", at(8, 0), at(9, 0)))
	usagesBefore := len(fx.store.AppUsages())

	_, err := fx.service.IngestSession(context.Background(), report(intruder, "mac-1", entity.PlatformMacOS, "Slack", at(10, 0), at(11, 0)))

	require.ErrorIs(t, err, domainerrors.ErrDeviceConflict)
	assert.False(t, domainerrors.IsRetryable(err))
	assert.Len(t, fx.store.AppUsages(), usagesBefore)
	assert.Empty(t, fx.timelines(t, intruder))
}

func TestIngestionService_DeviceConflictReportedEvenWhenFiltered(t *testing.T) {
	fx := createMemoryIngestionService(t)
	owner, intruder := uuid.New(), uuid.New()

	fx.ingest(t, report(owner, "ext-1", entity.PlatformWeb, "github.com", at(8, 0), at(9, 0)))
	fx.ingest(t, report(intruder, "mac-9", entity.PlatformMacOS, "Xcode", at(10, 0), at(11, 0)))

	_, err := fx.service.IngestSession(context.Background(), report(intruder, "ext-1", entity.PlatformWeb, "github.com", at(10, 0), at(11, 0)))

	require.ErrorIs(t, err, domainerrors.ErrDeviceConflict)
}

func TestIngestionService_ClaimsUnownedDevice(t *testing.T) {
	fx := createMemoryIngestionService(t)
	userID := uuid.New()
	devices := memory.NewDeviceRepository(fx.store)
	require.NoError(t, devices.Create(context.Background(), &entity.Device{ExternalID: "android-1", Platform: entity.PlatformAndroid}))

	fx.ingest(t, report(userID, "android-1", entity.PlatformAndroid, "Spotify", at(7, 0), at(7, 30)))

	device, err := devices.FindByExternalID(context.Background(), "android-1")
	require.NoError(t, err)
	assert.True(t, device.OwnedBy(userID))
}

func TestIngestionService_RegisteredPlatformWins(t *testing.T) {
	fx := createMemoryIngestionService(t)
	userID := uuid.New()

	fx.ingest(t, report(userID, "ext-1", entity.PlatformWeb, "github.com", at(10, 0), at(11, 0)))
	// Same device id, now claiming to be native: it is still treated as web.
	fx.ingest(t, report(userID, "mac-1", entity.PlatformMacOS, "Xcode", at(12, 0), at(13, 0)))
	result := fx.ingest(t, report(userID, "ext-1", entity.PlatformMacOS, "github.com", at(12, 0), at(12, 30)))

	assert.True(t, result.Filtered)
}

func TestIngestionService_TruncatesToMilliseconds(t *testing.T) {
	fx := createMemoryIngestionService(t)
	userID := uuid.New()

	start := at(10, 0).Add(123456 * time.Nanosecond)
	end := at(10, 1).Add(999999 * time.Nanosecond)
	result := fx.ingest(t, report(userID, "mac-1", entity.PlatformMacOS, "Xcode", start, end))

	assert.Equal(t, int64(60*1000), result.DurationAddedMs)
	details := fx.timelines(t, userID)
	require.Len(t, details, 1)
	assert.True(t, details[0].Interval.Start.Equal(at(10, 0)))
}

func TestIngestionService_DailyActivityUsesReportZone(t *testing.T) {
	fx := createMemoryIngestionService(t)
	userID := uuid.New()
	input := report(userID, "mac-1", entity.PlatformMacOS, "Xcode", at(20, 0), at(21, 0))
	input.TimeZone = "Asia/Tokyo" // 05:00 on the next local day

	fx.ingest(t, input)

	details := fx.timelines(t, userID)
	require.Len(t, details, 1)
	assert.Equal(t, day.AddDate(0, 0, 1), details[0].Date)
}

func TestIngestionService_PublishesOnlyNewApps(t *testing.T) {
	store := memory.NewStore()
	publisher := mockSvc.NewMockEventPublisher(t)
	cfg := &config.Config{}
	cfg.Ingestion.Timeout = time.Second
	svc := NewIngestionService(IngestionServiceParams{
		TxManager: memory.NewTransactionManager(store),
		Browsers:  classification.NewBrowserTable(nil),
		Publisher: publisher,
		Config:    cfg,
		Logger:    discardLogger(),
	})
	userID := uuid.New()

	publisher.EXPECT().
		PublishAppDiscovered(mock.Anything, mock.MatchedBy(func(event *service.AppDiscoveredEvent) bool {
			return event.AppName == "Figma" && event.Platform == "windows"
		})).
		Return(nil).
		Once()

	_, err := svc.IngestSession(context.Background(), report(userID, "win-1", entity.PlatformWindows, "Figma", at(9, 0), at(10, 0)))
	require.NoError(t, err)
	_, err = svc.IngestSession(context.Background(), report(userID, "win-1", entity.PlatformWindows, "Figma", at(10, 0), at(11, 0)))
	require.NoError(t, err)
}

func TestIngestionService_ExpiredDeadlineRollsBack(t *testing.T) {
	fx := createMemoryIngestionService(t)
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := fx.service.IngestSession(ctx, report(uuid.New(), "mac-1", entity.PlatformMacOS, "Xcode", at(10, 0), at(11, 0)))

	require.ErrorIs(t, err, domainerrors.ErrIngestionTimeout)
	assert.True(t, domainerrors.IsRetryable(err))
	assert.Empty(t, fx.store.AppUsages())
}

func TestIngestionService_RandomSequencesKeepLedgerConsistent(t *testing.T) {
	fx := createMemoryIngestionService(t)
	rng := rand.New(rand.NewSource(7))

	type deviceSpec struct {
		externalID string
		platform   entity.Platform
	}
	users := []uuid.UUID{uuid.New(), uuid.New()}
	devices := map[uuid.UUID][]deviceSpec{
		users[0]: {{"a-ext", entity.PlatformWeb}, {"a-mac", entity.PlatformMacOS}, {"a-win", entity.PlatformWindows}},
		users[1]: {{"b-ext", entity.PlatformWeb}, {"b-linux", entity.PlatformLinux}},
	}
	apps := []string{"Xcode", "Slack", "Google Chrome", "youtube.com", "github.com", "Firefox"}
	zones := []string{"UTC", "Asia/Tokyo", "America/New_York"}

	const checkEvery = 25
	for i := 1; i <= 300; i++ {
		userID := users[rng.Intn(len(users))]
		device := devices[userID][rng.Intn(len(devices[userID]))]
		start := day.Add(time.Duration(rng.Intn(24*60)) * time.Minute).Add(time.Duration(rng.Intn(1000)) * time.Millisecond)
		end := start.Add(time.Duration(1+rng.Intn(180)) * time.Minute)

		input := report(userID, device.externalID, device.platform, apps[rng.Intn(len(apps))], start, end)
		input.TimeZone = zones[rng.Intn(len(zones))]

		result := fx.ingest(t, input)
		require.GreaterOrEqual(t, result.DurationAddedMs, int64(0))
		if result.Filtered {
			require.Zero(t, result.DurationAddedMs)
		}

		if i%checkEvery == 0 {
			fx.assertLedgerConsistent(t)
			fx.assertNoDoubleCounting(t, userID)
			if t.Failed() {
				t.Fatalf("ledger diverged by report %d (%s on %s)", i, input.AppName, device.externalID)
			}
		}
	}

	fx.assertLedgerConsistent(t)
	for _, userID := range users {
		fx.assertNoDoubleCounting(t, userID)
	}
}

func TestIngestionService_ConcurrentReportsOfOneUser(t *testing.T) {
	fx := createMemoryIngestionService(t)
	userID := uuid.New()

	var eg errgroup.Group
	for worker := 0; worker < 8; worker++ {
		eg.Go(func() error {
			for i := 0; i < 10; i++ {
				start := at(9, 0).Add(time.Duration(worker*7+i*3) * time.Minute)
				device, platform, app := "ext-1", entity.PlatformWeb, "github.com"
				if (worker+i)%2 == 0 {
					device, platform, app = fmt.Sprintf("mac-%d", worker%2), entity.PlatformMacOS, "Xcode"
				}
				if _, err := fx.service.IngestSession(context.Background(), report(userID, device, platform, app, start, start.Add(20*time.Minute))); err != nil {
					return err
				}
			}

			return nil
		})
	}
	require.NoError(t, eg.Wait())

	fx.assertLedgerConsistent(t)
	fx.assertNoDoubleCounting(t, userID)
}
