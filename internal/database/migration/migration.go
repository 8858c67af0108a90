package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_images",
		SQL: `CREATE TABLE IF NOT EXISTS images (
  id                 BIGSERIAL PRIMARY KEY,
  location           TEXT      NOT NULL UNIQUE,
  width              INTEGER   NOT NULL CHECK (width > 0),
  height             INTEGER   NOT NULL CHECK (height > 0),
  number_of_channels INTEGER   NOT NULL CHECK (number_of_channels > 0)
);`,
	},
	{
		Name: "create_table_pdfs",
		SQL: `CREATE TABLE IF NOT EXISTS pdfs (
  id              BIGSERIAL        PRIMARY KEY,
  location        TEXT             NOT NULL UNIQUE,
  width           DOUBLE PRECISION NOT NULL CHECK (width > 0),
  height          DOUBLE PRECISION NOT NULL CHECK (height > 0),
  number_of_pages INTEGER          NOT NULL CHECK (number_of_pages > 0)
);`,
	},
}

// EnsureMigrated checks if the 'pdfs' table exists and runs migrations if it doesn't.
// The pdfs table is created last, so its presence means every step has run.
func EnsureMigrated(ctx context.Context, db *sql.DB, log zerolog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("db_host", dbHost).Logger()

	log.Info().Str("event", "db_migration_check").Str("status", "starting").Send()

	var exists bool
	query := "SELECT to_regclass('public.pdfs') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error().
			Str("event", "db_migration_failed").
			Str("status", "error").
			Str("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Send()
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	log.Info().Str("event", "db_migration_start").Str("status", "in_progress").Send()

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Str("error_message", err.Error()).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Send()
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Send()
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()

	return nil
}
