package database

import (
	"context"
	"log/slog"

	domainerrors "sampleapp/internal/domain/errors"
	"sampleapp/internal/domain/repository"
	"sampleapp/internal/errors"
	logs "sampleapp/internal/infra/log"

	"gorm.io/gorm"
)

// gormUnitOfWork implements the domain's UnitOfWork interface using GORM.
type gormUnitOfWork struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewUnitOfWork is the constructor for gormUnitOfWork.
// This function will be used as an Fx provider.
func NewUnitOfWork(db *gorm.DB, logger *slog.Logger) repository.UnitOfWork {
	return &gormUnitOfWork{db: db, logger: logger}
}

// SaveChanges flushes the scope carried by ctx inside a single transaction.
func (u *gormUnitOfWork) SaveChanges(ctx context.Context) (int, error) {
	s, ok := scopeFrom(ctx)
	if !ok {
		return 0, errNoScope
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.pending()
	if len(entries) == 0 {
		return 0, nil
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return 0, domainerrors.ErrTransactionFailed.WithDetails(tx.Error.Error())
	}

	// Roll back if a flush panics, then let the panic continue to the recover middleware.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	var affected int64
	for _, e := range entries {
		n, err := e.flush(tx)
		if err != nil {
			if rbErr := tx.Rollback().Error; rbErr != nil {
				logs.FromContext(ctx, u.logger).ErrorContext(ctx, "transaction rollback failed",
					slog.Any("error", rbErr),
					slog.Any("cause", err),
				)
			}

			return 0, err
		}
		affected += n
	}

	if err := tx.Commit().Error; err != nil {
		return 0, errors.Wrap(domainerrors.ErrTransactionFailed.WithDetails(err.Error()), "failed to commit transaction")
	}

	s.acceptAll(entries)

	return int(affected), nil
}
