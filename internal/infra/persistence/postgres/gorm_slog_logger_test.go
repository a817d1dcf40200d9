package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"tempo/config"
	deliverycontext "tempo/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBufferedGormLogger(t *testing.T, debug bool) (*gormSlogLogger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.Storage.SlowQueryThreshold = 50 * time.Millisecond

	l, ok := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg).(*gormSlogLogger)
	require.True(t, ok)

	return l, &buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var line map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &line))

	return line
}

func statement(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_AttributesQueriesToRequest(t *testing.T) {
	l, buf := newBufferedGormLogger(t, false)
	scope := deliverycontext.NewScope("req-3", nil)
	scope.UserID = uuid.New()
	ctx := deliverycontext.WithScope(context.Background(), scope)

	l.Trace(ctx, time.Now(), statement(`UPDATE "app_usages" SET total_time_ms = total_time_ms + 1`), errors.New("conn reset"))

	line := lastLine(t, buf)
	assert.Equal(t, "GORM query failed", line["msg"])
	assert.Equal(t, "ERROR", line["level"])
	assert.Equal(t, "UPDATE", line["statement"])
	assert.Equal(t, "req-3", line["request_id"])
	assert.Equal(t, scope.UserID.String(), line["user_id"])
}

func TestGormSlogLogger_HandledSQLStatesAreWarnings(t *testing.T) {
	l, buf := newBufferedGormLogger(t, false)
	err := errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation}, "insert device")

	l.Trace(context.Background(), time.Now(), statement(`INSERT INTO "devices"`), err)

	line := lastLine(t, buf)
	assert.Equal(t, "GORM query rejected", line["msg"])
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "unique_violation", line["sqlstate"])
}

func TestGormSlogLogger_SkipsNotFoundAndFastQueries(t *testing.T) {
	l, buf := newBufferedGormLogger(t, false)

	l.Trace(context.Background(), time.Now(), statement(`SELECT * FROM "apps"`), gorm.ErrRecordNotFound)
	l.Trace(context.Background(), time.Now(), statement(`SELECT * FROM "apps"`), nil)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowAndDebugQueries(t *testing.T) {
	l, buf := newBufferedGormLogger(t, true)

	l.Trace(context.Background(), time.Now().Add(-time.Second), statement(`select 1`), nil)
	line := lastLine(t, buf)
	assert.Equal(t, "GORM slow query", line["msg"])
	assert.Equal(t, "SELECT", line["statement"])

	l.Trace(context.Background(), time.Now(), statement(`DELETE FROM "usage_timelines"`), nil)
	line = lastLine(t, buf)
	assert.Equal(t, "GORM query", line["msg"])
	assert.Equal(t, "DEBUG", line["level"])
}

func TestStatementKind(t *testing.T) {
	assert.Equal(t, "WITH", statementKind("  with x as (select 1) select * from x"))
	assert.Empty(t, statementKind("   "))
}
