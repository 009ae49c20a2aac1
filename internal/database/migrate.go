package database

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/yukikurage/todo-api/internal/config"
)

//go:embed migrations
var migrationFiles embed.FS

// Migrate applies every pending migration for the configured dialect.
func Migrate(cfg config.DatabaseConfig, log *slog.Logger) error {
	src, err := migrationSource(cfg.Driver)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.URL())
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			log.Warn("failed to close migrator", slog.Any("source_error", srcErr), slog.Any("database_error", dbErr))
		}
	}()

	log.Info("running database migrations", slog.String("driver", cfg.Driver))
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("database schema is up to date")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err == nil {
		log.Info("database migrations completed", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	}
	return nil
}

func migrationSource(driver string) (source.Driver, error) {
	switch driver {
	case "postgres", "mysql":
	default:
		return nil, fmt.Errorf("no migrations for database driver %q", driver)
	}

	src, err := iofs.New(migrationFiles, "migrations/"+driver)
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}
	return src, nil
}
