package main

import (
	"context"
	"database/sql"
	"fmt"

	"tempo/config"
	"tempo/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd.Context(), func(ctx context.Context, db *sql.DB) error {
					if err := migrations.Up(ctx, db); err != nil {
						return err
					}

					return printStatus(ctx, cmd, db)
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Revert the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd.Context(), func(ctx context.Context, db *sql.DB) error {
					if err := migrations.Down(ctx, db); err != nil {
						return err
					}

					return printStatus(ctx, cmd, db)
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the applied schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd.Context(), func(ctx context.Context, db *sql.DB) error {
					return printStatus(ctx, cmd, db)
				})
			},
		},
	)

	return cmd
}

func withDatabase(ctx context.Context, fn func(ctx context.Context, db *sql.DB) error) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cfg.Postgres == nil {
		return errors.New("postgres section is missing from the config")
	}

	gormDB, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db, err := gormDB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}

	return fn(ctx, db)
}

func printStatus(ctx context.Context, cmd *cobra.Command, db *sql.DB) error {
	status, err := migrations.CurrentStatus(ctx, db)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !status.Applied {
		fmt.Fprintln(out, "No migrations applied")

		return nil
	}

	fmt.Fprintf(out, "Schema version %d", status.Version)
	if status.Dirty {
		fmt.Fprint(out, " (dirty)")
	}
	fmt.Fprintln(out)

	return nil
}
