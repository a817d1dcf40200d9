// Package migrations embeds the schema and applies it with golang-migrate.
package migrations

import (
	"context"
	"database/sql"
	"embed"

	"tempo/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const migrationsTable = "schema_migrations"

//go:embed files/*.sql
var migrations embed.FS

// Status describes the schema version of a database.
type Status struct {
	Version uint
	Dirty   bool
	Applied bool
}

// setup binds the migrator to a dedicated connection so closing it leaves db open.
func setup(ctx context.Context, db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations, "files")
	if err != nil {
		return nil, errors.Wrap(err, "create migration source")
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "acquire migration connection")
	}

	driver, err := migratepg.WithConnection(ctx, conn, &migratepg.Config{MigrationsTable: migrationsTable})
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = driver.Close()

		return nil, errors.Wrap(err, "new migrate instance")
	}

	return m, nil
}

// Up applies every pending migration. An up-to-date schema is not an error.
func Up(ctx context.Context, db *sql.DB) error {
	m, err := setup(ctx, db)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "apply migrations")
	}

	return nil
}

// Down reverts the most recent migration.
func Down(ctx context.Context, db *sql.DB) error {
	m, err := setup(ctx, db)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "revert migration")
	}

	return nil
}

// CurrentStatus reports the applied schema version.
func CurrentStatus(ctx context.Context, db *sql.DB) (Status, error) {
	m, err := setup(ctx, db)
	if err != nil {
		return Status{}, err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return Status{}, nil
	}
	if err != nil {
		return Status{}, errors.Wrap(err, "read migration version")
	}

	return Status{Version: version, Dirty: dirty, Applied: true}, nil
}
