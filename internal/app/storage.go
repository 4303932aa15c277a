package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/adapter/postgres"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/adapter/postgres/flashcard"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/adapter/postgres/reviewevent"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/adapter/postgres/sessionsummary"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/adapter/sqlite"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/config"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/service/study"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/service/study/srs"
)

// storage is one opened card store backend.
type storage struct {
	driver string
	ping   func(ctx context.Context) error
	sqlDB  *sql.DB

	newMigrator func(db *sql.DB) (*goose.Provider, error)
	newService  func(log *slog.Logger, params srs.Parameters, opts study.Options) (*study.Service, error)
	close       func()
}

// openStorage connects to the backend selected by cfg.Driver.
func openStorage(ctx context.Context, cfg config.DatabaseConfig) (*storage, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		sqlDB := postgres.OpenDB(pool)
		cards, events, summaries := flashcard.New(pool), reviewevent.New(pool), sessionsummary.New(pool)
		tx := postgres.NewTxManager(pool)

		return &storage{
			driver:      cfg.Driver,
			ping:        pool.Ping,
			sqlDB:       sqlDB,
			newMigrator: postgres.NewMigrator,
			newService: func(log *slog.Logger, params srs.Parameters, opts study.Options) (*study.Service, error) {
				return study.NewService(log, cards, events, summaries, tx, params, opts)
			},
			close: func() {
				_ = sqlDB.Close()
				pool.Close()
			},
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		cards, events, summaries := sqlite.NewCardRepo(db), sqlite.NewEventRepo(db), sqlite.NewSummaryRepo(db)
		tx := sqlite.NewTxManager(db)

		return &storage{
			driver:      cfg.Driver,
			ping:        db.PingContext,
			sqlDB:       db,
			newMigrator: sqlite.NewMigrator,
			newService: func(log *slog.Logger, params srs.Parameters, opts study.Options) (*study.Service, error) {
				return study.NewService(log, cards, events, summaries, tx, params, opts)
			},
			close: func() { _ = db.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func (s *storage) migrator() (*goose.Provider, error) {
	return s.newMigrator(s.sqlDB)
}
