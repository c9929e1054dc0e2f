package postgres

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"net"
	"strings"

	"eventradar/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for database error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Drivers without error translation still report the violation in the message
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "sqlstate 23505")
}

func isNotNullConstraintViolation(err error) bool {
	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null constraint") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

// isConnectionError reports whether err means the database could not be reached.
func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "database is closed") ||
		strings.Contains(errMsg, "sqlstate 08") // PostgreSQL connection_exception class
}

// wrapDBError converts a driver error into a domain error, keeping the cause in the chain.
func wrapDBError(err error, message string) error {
	if isConnectionError(err) {
		return fmt.Errorf("%s: %w: %w", message, repository.ErrStorageUnavailable, err)
	}

	return errors.Wrap(err, message)
}
