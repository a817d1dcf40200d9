package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tempo/config"
	deliverycontext "tempo/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func logLines(t *testing.T, buf *bytes.Buffer) map[string]map[string]any {
	t.Helper()

	lines := make(map[string]map[string]any)
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines[line["msg"].(string)] = line
	}

	return lines
}

func TestLoggerMiddleware_CarriesUserAndDevice(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(&buf, true)
	userID := uuid.New()

	authenticate := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetUserID(c, userID)

			return next(c)
		}
	}
	e.POST("/sessions", func(c echo.Context) error {
		deliverycontext.SetDevice(c, "mac-1")
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("ingesting")

		return c.NoContent(http.StatusAccepted)
	}, authenticate)

	req := httptest.NewRequest(http.MethodPost, "/sessions", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))

	lines := logLines(t, &buf)
	for _, msg := range []string{"ingesting", "HTTP Request"} {
		line, ok := lines[msg]
		require.True(t, ok, msg)
		assert.Equal(t, "req-42", line["request_id"], msg)
		assert.Equal(t, userID.String(), line["user_id"], msg)
		assert.Equal(t, "mac-1", line["device_id"], msg)
	}
	assert.Equal(t, float64(http.StatusAccepted), lines["HTTP Request"]["status"])
	assert.Equal(t, "/sessions", lines["HTTP Request"]["route"])
	assert.Equal(t, "INFO", lines["HTTP Request"]["level"])
}

func TestLoggerMiddleware_QuietWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(&buf, false)
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String())
}

func TestRequestIDMiddleware_ReplacesUnusableIDs(t *testing.T) {
	cases := map[string]string{
		"missing":   "",
		"too long":  strings.Repeat("a", maxRequestIDLength+1),
		"has space": "req 1",
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newLoggedEcho(&buf, false)
			var seen string
			e.GET("/", func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			_, err := uuid.Parse(seen)
			require.NoError(t, err)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
		})
	}
}

func TestAccessLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, accessLevel(http.StatusOK))
	assert.Equal(t, slog.LevelWarn, accessLevel(http.StatusNotFound))
	assert.Equal(t, slog.LevelError, accessLevel(http.StatusBadGateway))
}
