package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID carries the request id across HTTP hops and push deliveries.
const HeaderXRequestID = "X-Request-Id"

const echoScopeKey = "tempo.scope"

type scopeKey struct{}

// Scope is the identity of one request as it becomes known. The request id is
// fixed on entry, the user after authentication and the device once a handler
// has parsed the report. Loggers derived from a scope carry all three.
type Scope struct {
	RequestID string
	UserID    uuid.UUID
	Device    string

	base *slog.Logger
}

// NewScope starts a scope for requestID. base may be nil, in which case callers
// fall back to their own logger.
func NewScope(requestID string, base *slog.Logger) *Scope {
	return &Scope{RequestID: requestID, base: base}
}

// Attrs lists the identity attributes known so far.
func (s *Scope) Attrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, 3)
	if s.RequestID != "" {
		attrs = append(attrs, slog.String("request_id", s.RequestID))
	}
	if s.UserID != uuid.Nil {
		attrs = append(attrs, slog.String("user_id", s.UserID.String()))
	}
	if s.Device != "" {
		attrs = append(attrs, slog.String("device_id", s.Device))
	}

	return attrs
}

// Logger returns the scope's base logger, or fallback, annotated with Attrs.
func (s *Scope) Logger(fallback *slog.Logger) *slog.Logger {
	logger := s.base
	if logger == nil {
		logger = fallback
	}
	if logger == nil {
		return nil
	}

	args := make([]any, 0, 3)
	for _, attr := range s.Attrs() {
		args = append(args, attr)
	}

	return logger.With(args...)
}

// WithScope returns ctx carrying s.
func WithScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// FromContext returns the scope stored in ctx, or nil.
func FromContext(ctx context.Context) *Scope {
	s, _ := ctx.Value(scopeKey{}).(*Scope)

	return s
}

// Bind attaches s to both the echo.Context and its request context.
func Bind(c echo.Context, s *Scope) {
	c.Set(echoScopeKey, s)
	c.SetRequest(c.Request().WithContext(WithScope(c.Request().Context(), s)))
}

// FromEcho returns the scope bound to c, binding an empty one when absent.
func FromEcho(c echo.Context) *Scope {
	if s, ok := c.Get(echoScopeKey).(*Scope); ok {
		return s
	}

	s := NewScope("", nil)
	Bind(c, s)

	return s
}

// GetRequestID returns the request id bound to c, or an empty string.
func GetRequestID(c echo.Context) string {
	if s, ok := c.Get(echoScopeKey).(*Scope); ok {
		return s.RequestID
	}

	return ""
}

// GetRequestIDFromContext returns the request id carried by ctx, or an empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if s := FromContext(ctx); s != nil {
		return s.RequestID
	}

	return ""
}

// GetLoggerOrDefault returns the scoped logger of ctx, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if s := FromContext(ctx); s != nil {
		if logger := s.Logger(fallback); logger != nil {
			return logger
		}
	}

	return fallback
}

// SetUserID records the authenticated user.
func SetUserID(c echo.Context, userID uuid.UUID) {
	FromEcho(c).UserID = userID
}

// GetUserID returns the authenticated user, if any.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	s, ok := c.Get(echoScopeKey).(*Scope)
	if !ok || s.UserID == uuid.Nil {
		return uuid.Nil, false
	}

	return s.UserID, true
}

// SetDevice records the agent-supplied device identifier of the request.
func SetDevice(c echo.Context, externalID string) {
	FromEcho(c).Device = externalID
}
