// Package database contains the concrete implementation of the persistence layer using GORM.
// SQLite (in-memory by default) and PostgreSQL are supported.
package database

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"sampleapp/config"
	"sampleapp/internal/domain/lifecycle"
	"sampleapp/internal/errors"
	"sampleapp/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the GORM client for the configured driver
func New(params Params) (*gorm.DB, error) {
	db, err := open(params.Config)
	if err != nil {
		return nil, err
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// The unit of work opens one explicit transaction per SaveChanges.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping %s", params.Config.Database.Driver)
			}

			if err := Migrate(db.WithContext(ctx)); err != nil {
				return err
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := pgLib.New(cfg.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}

		return db, nil
	default:
		db, err := gorm.Open(sqlite.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
		if err != nil {
			return nil, errors.Wrap(err, "failed to open SQLite database")
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
		}
		// An in-memory database lives as long as its last connection, and
		// SQLite serialises writers anyway.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)

		return db, nil
	}
}

// Migrate creates or updates the tables of every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate models")
	}

	return nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			logPoolWait(ctx, logger, prev, cur)
			prev = cur
		}
	}
}

func logPoolWait(ctx context.Context, logger *slog.Logger, prev, cur sql.DBStats) {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return
	}
	waitDurationDelta := cur.WaitDuration - prev.WaitDuration

	attrs := []slog.Attr{
		slog.Int64("waitCountDelta", waitDelta),
		slog.Duration("waitDurationDelta", waitDurationDelta),
		slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	}
	if waitDurationDelta >= dbPoolWarnDurationThreshold {
		logger.LogAttrs(ctx, slog.LevelWarn, "Database pool wait detected", attrs...)
	} else {
		logger.LogAttrs(ctx, slog.LevelDebug, "Database pool wait observed", attrs...)
	}
}
