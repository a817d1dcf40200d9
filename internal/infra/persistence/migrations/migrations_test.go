package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"testing"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	integrationEnv  = "TEMPO_PG_INTEGRATION"
	integrationPort = 55433
)

func TestEmbeddedFiles_PairUpAndDown(t *testing.T) {
	source, err := iofs.New(migrations, "files")
	require.NoError(t, err)
	defer source.Close()

	version, err := source.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	up, _, err := source.ReadUp(version)
	require.NoError(t, err)
	require.NoError(t, up.Close())

	down, _, err := source.ReadDown(version)
	require.NoError(t, err)
	require.NoError(t, down.Close())
}

func openSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	if os.Getenv(integrationEnv) != "1" {
		t.Skipf("set %s=1 to run PostgreSQL integration tests", integrationEnv)
	}

	dir := t.TempDir()
	ep := embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(integrationPort).
			Database("tempo").
			DataPath(dir + "/data").
			RuntimePath(dir + "/runtime").
			Logger(io.Discard),
	)
	require.NoError(t, ep.Start())
	t.Cleanup(func() {
		_ = ep.Stop()
	})

	dsn := fmt.Sprintf("host=localhost port=%d user=postgres password=postgres dbname=tempo sslmode=disable", integrationPort)
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return sqlDB
}

func TestUpDownStatus_KeepCallerConnectionOpen(t *testing.T) {
	db := openSQLDB(t)
	ctx := context.Background()

	status, err := CurrentStatus(ctx, db)
	require.NoError(t, err)
	assert.False(t, status.Applied)

	require.NoError(t, Up(ctx, db))
	require.NoError(t, Up(ctx, db), "up-to-date schema")

	status, err = CurrentStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, Status{Version: 1, Applied: true}, status)

	var tables int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT count(*) FROM information_schema.tables WHERE table_name = 'usage_timelines'`).Scan(&tables))
	assert.Equal(t, 1, tables)

	require.NoError(t, Down(ctx, db))
	status, err = CurrentStatus(ctx, db)
	require.NoError(t, err)
	assert.False(t, status.Applied)

	require.NoError(t, db.PingContext(ctx))
}
