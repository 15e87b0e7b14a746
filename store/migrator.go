package store

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
)

// The migration system is intentionally small: a fresh database is
// bootstrapped from migration/{driver}/LATEST.sql, which always holds the
// full current schema. Incremental upgrades are appended to the same file
// as idempotent statements.

//go:embed migration
var migrationFS embed.FS

// LatestSchemaFileName is the name of the latest schema file.
const LatestSchemaFileName = "LATEST.sql"

// Migrate initializes the database schema if it has not been applied yet.
func (s *Store) Migrate(ctx context.Context) error {
	initialized, err := s.driver.IsInitialized(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to check if database is initialized")
	}
	if initialized {
		return nil
	}

	filePath := fmt.Sprintf("migration/%s/%s", s.profile.Driver, LatestSchemaFileName)
	buf, err := migrationFS.ReadFile(filePath)
	if err != nil {
		return errors.Wrapf(err, "failed to read latest schema file %s", filePath)
	}

	tx, err := s.driver.GetDB().BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, string(buf)); err != nil {
		return errors.Wrapf(err, "failed to execute latest schema")
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	slog.Info("database schema initialized", slog.String("driver", s.profile.Driver))
	return nil
}
