package database

import (
	"strings"

	domainerrors "sampleapp/internal/domain/errors"
	"sampleapp/internal/errors"

	"gorm.io/gorm"
)

// Helper functions for constraint error checking. GORM translates driver
// errors when the dialector supports it; the message patterns cover the rest.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "not null constraint") ||
		strings.Contains(errMsg, "null value in column") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation
}

// translateWriteError maps an insert/update failure onto the domain error model.
func translateWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrConflict.WithDetails(details + ": duplicate key")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrInvalidArgument.WithDetails(details + ": missing required value")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
