// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tempo/config"
	deliverycontext "tempo/internal/delivery/context"
	"tempo/internal/domain/aggregation"
	"tempo/internal/domain/classification"
	"tempo/internal/domain/entity"
	domainerrors "tempo/internal/domain/errors"
	"tempo/internal/domain/interval"
	"tempo/internal/domain/repository"
	"tempo/internal/domain/service"
	"tempo/internal/errors"
	"tempo/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// IngestionServiceParams holds dependencies for the ingestion service, injected by Fx.
type IngestionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Browsers  *classification.BrowserTable
	Publisher service.EventPublisher
	Recorder  service.IngestionRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// ingestionService implements the IngestionUsecase interface.
type ingestionService struct {
	txManager repository.TransactionManager
	browsers  *classification.BrowserTable
	publisher service.EventPublisher
	recorder  service.IngestionRecorder
	timeout   time.Duration
	logger    *slog.Logger
}

// NewIngestionService is the constructor for ingestionService.
func NewIngestionService(params IngestionServiceParams) usecase.IngestionUsecase {
	recorder := params.Recorder
	if recorder == nil {
		recorder = service.NoopIngestionRecorder{}
	}

	return &ingestionService{
		txManager: params.TxManager,
		browsers:  params.Browsers,
		publisher: params.Publisher,
		recorder:  recorder,
		timeout:   params.Config.Ingestion.Timeout,
		logger:    params.Logger,
	}
}

// sessionReport is a validated and normalized IngestSessionInput.
type sessionReport struct {
	externalID string
	platform   entity.Platform
	appName    string
	window     interval.Interval
	location   *time.Location
	userID     uuid.UUID
}

// ingestionOutcome collects what a committed transaction did.
type ingestionOutcome struct {
	filtered        bool
	addedMs         int64
	prunedMs        int64
	prunedTimelines int
	platform        entity.Platform
	discoveredApp   *entity.App
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *ingestionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IngestSession validates the report, reconciles it against the user's other devices and
// stores the result in a single transaction.
func (srv *ingestionService) IngestSession(ctx context.Context, input *usecase.IngestSessionInput) (*usecase.IngestSessionResult, error) {
	began := time.Now()

	report, err := srv.validate(input)
	if err != nil {
		srv.recorder.ObserveIngestion(service.IngestionObservation{
			Outcome:  service.OutcomeRejected,
			Platform: platformLabel(input),
			Latency:  time.Since(began),
		})

		return nil, err
	}

	if srv.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, srv.timeout)
		defer cancel()
	}

	var outcome ingestionOutcome
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		outcome = ingestionOutcome{}

		return srv.reconcile(ctx, repoFactory, report, &outcome)
	})
	if err != nil {
		srv.recorder.ObserveIngestion(service.IngestionObservation{
			Outcome:  service.OutcomeFailed,
			Platform: report.platform.String(),
			Latency:  time.Since(began),
		})

		return nil, srv.mapTransactionError(ctx, err, report)
	}

	outcomeLabel := service.OutcomeRecorded
	if outcome.filtered {
		outcomeLabel = service.OutcomeFiltered
	}
	srv.recorder.ObserveIngestion(service.IngestionObservation{
		Outcome:         outcomeLabel,
		Platform:        outcome.platform.String(),
		DurationAddedMs: outcome.addedMs,
		PrunedMs:        outcome.prunedMs,
		PrunedTimelines: outcome.prunedTimelines,
		Latency:         time.Since(began),
	})

	srv.log(ctx).Debug("Session ingested",
		slog.String("device_external_id", report.externalID),
		slog.String("platform", outcome.platform.String()),
		slog.String("app", report.appName),
		slog.Bool("filtered", outcome.filtered),
		slog.Int64("added_ms", outcome.addedMs),
		slog.Int("pruned_timelines", outcome.prunedTimelines),
	)

	if outcome.discoveredApp != nil {
		srv.announceApp(ctx, outcome.discoveredApp, outcome.platform)
	}

	return &usecase.IngestSessionResult{
		Success:         true,
		Filtered:        outcome.filtered,
		DurationAddedMs: outcome.addedMs,
	}, nil
}

// validate fails fast on request errors before anything touches storage.
func (srv *ingestionService) validate(input *usecase.IngestSessionInput) (*sessionReport, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing session report")
	}
	if input.UserID == uuid.Nil {
		return nil, domainerrors.ErrUnauthorized
	}

	start := truncateMillis(input.StartTime)
	end := truncateMillis(input.EndTime)
	window, err := interval.New(start, end)
	if err != nil {
		return nil, domainerrors.ErrInvalidRange
	}
	if window.Duration() > usecase.MaxSessionDuration {
		return nil, domainerrors.ErrDurationTooLarge
	}

	location, ok := aggregation.ResolveZone(input.TimeZone)
	if !ok {
		return nil, domainerrors.ErrInvalidTimeZone.WithDetails(input.TimeZone)
	}

	platform, ok := entity.ParsePlatform(input.DevicePlatform)
	if !ok {
		return nil, domainerrors.ErrInvalidPlatform.WithDetails(input.DevicePlatform)
	}

	externalID := strings.TrimSpace(input.DeviceExternalID)
	if externalID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("device id is required")
	}
	appName := strings.TrimSpace(input.AppName)
	if appName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("app name is required")
	}

	return &sessionReport{
		externalID: externalID,
		platform:   platform,
		appName:    appName,
		window:     window,
		location:   location,
		userID:     input.UserID,
	}, nil
}

// reconcile runs the whole persistence sequence inside the caller's transaction.
func (srv *ingestionService) reconcile(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	report *sessionReport,
	outcome *ingestionOutcome,
) error {
	deviceRepo := repoFactory.NewDeviceRepository()
	timelineRepo := repoFactory.NewTimelineRepository()

	// 1. Serialize with every other ingestion of this user
	if err := repoFactory.NewUserLocker().LockUser(ctx, report.userID); err != nil {
		return errors.Wrap(err, "failed to lock user for ingestion")
	}

	// 2. Check device ownership before deciding anything
	device, err := deviceRepo.FindByExternalID(ctx, report.externalID)
	if err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
		return errors.Wrap(err, "failed to find device")
	}
	if device != nil && device.IsClaimed() && !device.OwnedBy(report.userID) {
		return domainerrors.ErrDeviceConflict
	}

	platform := report.platform
	if device != nil && device.Platform != report.platform {
		srv.log(ctx).Warn("Reported platform differs from registered device platform",
			slog.String("device_external_id", report.externalID),
			slog.String("reported", report.platform.String()),
			slog.String("registered", device.Platform.String()),
		)
		platform = device.Platform
	}
	outcome.platform = platform

	// 3. Web reports lose every instant a native app already accounts for
	segments := []interval.Interval{report.window}
	if platform.IsWeb() {
		segments, err = srv.filterAgainstNative(ctx, timelineRepo, report)
		if err != nil {
			return err
		}
		if len(segments) == 0 {
			outcome.filtered = true

			return nil
		}
	}

	// 4. Resolve the dimensional rows
	device, err = srv.ensureDevice(ctx, deviceRepo, device, report, platform)
	if err != nil {
		return err
	}

	usageRepo := repoFactory.NewUsageRepository()
	daily, err := usageRepo.FindOrCreateDailyActivity(ctx, device.ID, entity.LocalDate(report.window.Start, report.location))
	if err != nil {
		return errors.Wrap(err, "failed to resolve daily activity")
	}

	app, created, err := repoFactory.NewAppRepository().FindOrCreate(ctx, report.appName)
	if err != nil {
		return errors.Wrap(err, "failed to resolve app")
	}
	if created {
		outcome.discoveredApp = app
	}

	appUsage, err := usageRepo.FindOrCreateAppUsage(ctx, daily.ID, app.ID)
	if err != nil {
		return errors.Wrap(err, "failed to resolve app usage")
	}

	// 5. Native activity wins over whatever browsers recorded for the same window
	if !srv.browsers.IsBrowserLike(platform, report.appName) {
		if err := srv.pruneWebTimelines(ctx, timelineRepo, usageRepo, report, outcome); err != nil {
			return err
		}
	}

	// 6. Store the surviving segments and bump the counter by exactly what was stored
	if _, err := timelineRepo.Create(ctx, appUsage.ID, segments); err != nil {
		return errors.Wrap(err, "failed to insert usage timelines")
	}

	outcome.addedMs = interval.TimelineSet(segments).TotalMillis()
	if err := usageRepo.AddTotalTime(ctx, appUsage.ID, outcome.addedMs); err != nil {
		return errors.Wrap(err, "failed to update app usage total")
	}

	return nil
}

// ensureDevice creates an unseen device or claims an unowned one.
func (srv *ingestionService) ensureDevice(
	ctx context.Context,
	deviceRepo repository.DeviceRepository,
	device *entity.Device,
	report *sessionReport,
	platform entity.Platform,
) (*entity.Device, error) {
	userID := report.userID

	if device == nil {
		device = &entity.Device{
			ExternalID: report.externalID,
			Platform:   platform,
			UserID:     &userID,
		}
		if err := deviceRepo.Create(ctx, device); err != nil {
			return nil, errors.Wrap(err, "failed to create device")
		}
		srv.log(ctx).Info("Registered new device",
			slog.String("device_id", device.ID.String()),
			slog.String("platform", platform.String()),
		)

		return device, nil
	}

	if !device.IsClaimed() {
		if err := deviceRepo.Claim(ctx, device.ID, userID); err != nil {
			if errors.Is(err, repository.ErrDeviceAlreadyOwned) {
				return nil, domainerrors.ErrDeviceConflict
			}

			return nil, errors.Wrap(err, "failed to claim device")
		}
		device.UserID = &userID
		srv.log(ctx).Info("Claimed device", slog.String("device_id", device.ID.String()))
	}

	return device, nil
}

// filterAgainstNative subtracts the user's overlapping native, non-browser timelines from the report.
func (srv *ingestionService) filterAgainstNative(
	ctx context.Context,
	timelineRepo repository.TimelineRepository,
	report *sessionReport,
) ([]interval.Interval, error) {
	native, err := timelineRepo.FindOverlapping(ctx, repository.OverlapQuery{
		UserID: report.userID,
		Window: report.window,
		Class:  repository.DeviceClassNative,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load native timelines")
	}

	blockers := make([]interval.Interval, 0, len(native))
	for _, tl := range native {
		if srv.browsers.MatchesApp(tl.App.Name) {
			continue
		}
		blockers = append(blockers, tl.Interval)
	}

	return interval.SubtractAll([]interval.Interval{report.window}, blockers), nil
}

// pruneWebTimelines cuts the report window out of every overlapping web timeline of the user.
func (srv *ingestionService) pruneWebTimelines(
	ctx context.Context,
	timelineRepo repository.TimelineRepository,
	usageRepo repository.UsageRepository,
	report *sessionReport,
	outcome *ingestionOutcome,
) error {
	web, err := timelineRepo.FindOverlapping(ctx, repository.OverlapQuery{
		UserID: report.userID,
		Window: report.window,
		Class:  repository.DeviceClassWeb,
	})
	if err != nil {
		return errors.Wrap(err, "failed to load web timelines")
	}

	for _, tl := range web {
		overlap, ok := interval.Overlap(tl.Interval, report.window)
		if !ok {
			continue
		}

		if err := timelineRepo.Delete(ctx, tl.TimelineID); err != nil {
			return errors.Wrap(err, "failed to delete pruned timeline")
		}

		remnants := interval.Subtract([]interval.Interval{tl.Interval}, report.window)
		if len(remnants) > 0 {
			if _, err := timelineRepo.Create(ctx, tl.AppUsageID, remnants); err != nil {
				return errors.Wrap(err, "failed to insert timeline remnants")
			}
		}

		removedMs := overlap.Duration().Milliseconds()
		if err := usageRepo.AddTotalTime(ctx, tl.AppUsageID, -removedMs); err != nil {
			return errors.Wrap(err, "failed to decrement pruned app usage")
		}

		outcome.prunedMs += removedMs
		outcome.prunedTimelines++
	}

	return nil
}

// mapTransactionError keeps request errors as they are and turns everything else into a retryable storage error.
func (srv *ingestionService) mapTransactionError(ctx context.Context, err error, report *sessionReport) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && !domainerrors.IsRetryable(err) {
		srv.log(ctx).Info("Session rejected",
			slog.String("device_external_id", report.externalID),
			slog.String("code", appErr.ErrorCode()),
		)

		return err
	}

	srv.log(ctx).Error("Session ingestion failed",
		slog.String("device_external_id", report.externalID),
		slog.Any("error", err),
	)

	if errors.IsAny(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domainerrors.ErrIngestionTimeout
	}

	return domainerrors.ErrTransactionFailed
}

// announceApp publishes the discovery of a new app. Failures are logged only; the session is already committed.
func (srv *ingestionService) announceApp(ctx context.Context, app *entity.App, platform entity.Platform) {
	if srv.publisher == nil {
		return
	}

	event := &service.AppDiscoveredEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		AppID:        app.ID.String(),
		AppName:      app.Name,
		Platform:     platform.String(),
		DiscoveredAt: time.Now().UTC().Format(time.RFC3339),
	}

	publishCtx := context.WithoutCancel(ctx)
	if err := srv.publisher.PublishAppDiscovered(publishCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish app discovered event",
			slog.String("app_id", event.AppID),
			slog.Any("error", err),
		)
	}
}

// platformLabel keeps metric label values bounded to the supported platforms.
func platformLabel(input *usecase.IngestSessionInput) string {
	if input == nil {
		return "unknown"
	}
	if platform, ok := entity.ParsePlatform(input.DevicePlatform); ok {
		return platform.String()
	}

	return "unknown"
}

func truncateMillis(t time.Time) time.Time {
	return t.Truncate(time.Millisecond)
}
