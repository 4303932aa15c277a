package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/config"
)

// Migration directions accepted by Migrate.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// Migrate applies, rolls back or reports the schema migrations of the
// configured backend. Status lines are written to out.
func Migrate(ctx context.Context, cfg *config.Config, direction string, out io.Writer) error {
	logger := NewLogger(cfg.Log)

	store, err := openStorage(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.close()

	provider, err := store.migrator()
	if err != nil {
		return err
	}

	switch direction {
	case MigrateUp:
		return migrateUp(ctx, provider, logger)
	case MigrateDown:
		res, err := provider.Down(ctx)
		if err != nil {
			if errors.Is(err, goose.ErrNoNextVersion) {
				logger.InfoContext(ctx, "no migrations to roll back")
				return nil
			}
			return fmt.Errorf("migrate down: %w", err)
		}
		logMigration(ctx, logger, res)
		return nil
	case MigrateStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
		for _, st := range statuses {
			applied := "pending"
			if st.State == goose.StateApplied {
				applied = "applied " + st.AppliedAt.UTC().Format("2006-01-02 15:04:05")
			}
			fmt.Fprintf(out, "%05d  %-40s %s\n", st.Source.Version, st.Source.Path, applied)
		}
		return nil
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}
}

func migrateUp(ctx context.Context, provider *goose.Provider, logger *slog.Logger) error {
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	if len(results) == 0 {
		logger.InfoContext(ctx, "schema is up to date")
	}
	for _, res := range results {
		logMigration(ctx, logger, res)
	}
	return nil
}

func logMigration(ctx context.Context, logger *slog.Logger, res *goose.MigrationResult) {
	logger.InfoContext(ctx, "migration applied",
		slog.Int64("version", res.Source.Version),
		slog.String("path", res.Source.Path),
		slog.String("direction", res.Direction),
		slog.Duration("duration", res.Duration),
	)
}
