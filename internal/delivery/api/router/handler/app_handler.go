package handler

import (
	"log/slog"
	"net/http"

	"tempo/internal/delivery/api/response"
	"tempo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AppHandlerParams holds dependencies for AppHandler, injected by Fx.
type AppHandlerParams struct {
	fx.In

	AppUC  usecase.AppUsecase
	Logger *slog.Logger
}

// AppHandler manages the shared app dictionary.
type AppHandler struct {
	appUC  usecase.AppUsecase
	logger *slog.Logger
}

// NewAppHandler is the constructor for AppHandler
func NewAppHandler(params AppHandlerParams) *AppHandler {
	return &AppHandler{
		appUC:  params.AppUC,
		logger: params.Logger,
	}
}

// UpdateCategoryRequest represents the request body for changing an app's category
type UpdateCategoryRequest struct {
	Category      string `json:"category" validate:"required"`
	AutoSuggested bool   `json:"auto_suggested"`
}

// SuggestCategoryRequest represents the request body for a category suggestion
type SuggestCategoryRequest struct {
	AppName string `json:"app_name" validate:"required,notblank"`
	URL     string `json:"url" validate:"omitempty,url"`
}

// UpdateCategory handles PATCH /api/v1/apps/:id/category
func (h *AppHandler) UpdateCategory(c echo.Context) error {
	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid app ID")
	}

	var req UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	app, err := h.appUC.UpdateCategory(c.Request().Context(), &usecase.UpdateCategoryInput{
		AppID:         appID,
		Category:      req.Category,
		AutoSuggested: req.AutoSuggested,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, app)
}

// SuggestCategory handles POST /api/v1/apps/suggest
func (h *AppHandler) SuggestCategory(c echo.Context) error {
	var req SuggestCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid suggestion input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.appUC.SuggestCategory(c.Request().Context(), req.AppName, req.URL))
}
