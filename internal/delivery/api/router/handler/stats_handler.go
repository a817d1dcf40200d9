package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tempo/internal/delivery/api/middleware"
	"tempo/internal/delivery/api/response"
	"tempo/internal/domain/entity"
	"tempo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Query parameters of GET /api/v1/stats.
const (
	QueryFrom        = "from"
	QueryTo          = "to"
	QueryTimeZone    = "time_zone"
	QuerySince       = "since"
	QueryKnownAppIDs = "known_app_ids"
)

// StatsHandlerParams holds dependencies for StatsHandler, injected by Fx.
type StatsHandlerParams struct {
	fx.In

	StatsUC usecase.StatsUsecase
	Logger  *slog.Logger
}

// StatsHandler serves hourly usage aggregates.
type StatsHandler struct {
	statsUC usecase.StatsUsecase
	logger  *slog.Logger
}

// NewStatsHandler is the constructor for StatsHandler
func NewStatsHandler(params StatsHandlerParams) *StatsHandler {
	return &StatsHandler{
		statsUC: params.StatsUC,
		logger:  params.Logger,
	}
}

// GetStats handles GET /api/v1/stats.
//
// from and to accept YYYY-MM-DD (a local date in time_zone) or RFC 3339. since is RFC 3339.
// known_app_ids may be repeated or comma separated.
func (h *StatsHandler) GetStats(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	query := &usecase.StatsQuery{
		UserID:   userID,
		TimeZone: c.QueryParam(QueryTimeZone),
	}

	var err error
	if query.FromDate, query.From, err = parseDateParam(c.QueryParam(QueryFrom)); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "from must be YYYY-MM-DD or RFC 3339")
	}
	if query.ToDate, query.To, err = parseDateParam(c.QueryParam(QueryTo)); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "to must be YYYY-MM-DD or RFC 3339")
	}
	if raw := c.QueryParam(QuerySince); raw != "" {
		since, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "since must be RFC 3339")
		}
		query.Since = &since
	}
	if query.KnownAppIDs, err = parseIDList(c.QueryParams()[QueryKnownAppIDs]); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "known_app_ids must be UUIDs")
	}

	stats, err := h.statsUC.GetStats(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// parseDateParam keeps calendar dates as text so the stats service reads them in the zone it resolves.
func parseDateParam(raw string) (string, *time.Time, error) {
	if raw == "" {
		return "", nil, nil
	}

	if _, err := time.Parse(entity.DateLayout, raw); err == nil {
		return raw, nil, nil
	}

	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return "", nil, err
	}

	return "", &t, nil
}

func parseIDList(values []string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := uuid.Parse(part)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
	}

	return ids, nil
}
