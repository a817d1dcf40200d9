package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tempo/internal/delivery/api/middleware"
	"tempo/internal/delivery/api/response"
	deliverycontext "tempo/internal/delivery/context"
	"tempo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	IngestionUC usecase.IngestionUsecase
	Logger      *slog.Logger
}

// SessionHandler receives session reports from agents.
type SessionHandler struct {
	ingestionUC usecase.IngestionUsecase
	logger      *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		ingestionUC: params.IngestionUC,
		logger:      params.Logger,
	}
}

// IngestSessionRequest is one reported usage interval.
type IngestSessionRequest struct {
	DeviceExternalID string    `json:"device_external_id" validate:"required,notblank,max=255"`
	DevicePlatform   string    `json:"device_platform" validate:"required"`
	AppName          string    `json:"app_name" validate:"required,notblank,max=512"`
	StartTime        time.Time `json:"start_time" validate:"required"`
	EndTime          time.Time `json:"end_time" validate:"required"`
	TimeZone         string    `json:"time_zone" validate:"required"`
}

// IngestSession handles POST /api/v1/sessions.
// Platform, zone and range problems are left to the usecase so they surface with their own error codes.
func (h *SessionHandler) IngestSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req IngestSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid session report")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}
	deliverycontext.SetDevice(c, req.DeviceExternalID)

	result, err := h.ingestionUC.IngestSession(c.Request().Context(), &usecase.IngestSessionInput{
		DeviceExternalID: req.DeviceExternalID,
		DevicePlatform:   req.DevicePlatform,
		AppName:          req.AppName,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		TimeZone:         req.TimeZone,
		UserID:           userID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
