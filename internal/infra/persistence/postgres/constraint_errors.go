package postgres

import (
	"context"
	"database/sql/driver"
	"net"
	"strings"

	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SQLSTATE codes of the integrity constraint violation class.
const (
	sqlStateNotNullViolation    = "23502"
	sqlStateForeignKeyViolation = "23503"
	sqlStateUniqueViolation     = "23505"
	sqlStateCheckViolation      = "23514"

	sqlStateLockNotAvailable = "55P03"
)

// SQLSTATE classes a later attempt may get past: connection exception, insufficient
// resources, operator intervention and transaction rollback (serialization, deadlock).
var transientSQLStateClasses = []string{"08", "40", "53", "57"}

// sqlState extracts the SQLSTATE from a pgx (gorm) or lib/pq (migrations) error.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || sqlState(err) == sqlStateUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || sqlState(err) == sqlStateForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	return sqlState(err) == sqlStateNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || sqlState(err) == sqlStateCheckViolation
}

// markTransient marks store failures that a later attempt may get past as retryable.
// Domain errors, constraint violations and other statement errors are left final.
func markTransient(err error) error {
	if err == nil || errors.IsRetryable(err) || domainerrors.IsDomainError(err) {
		return err
	}
	if isTransient(err) {
		return errors.NewRetryable(err)
	}

	return err
}

func isTransient(err error) bool {
	if state := sqlState(err); state != "" {
		if state == sqlStateLockNotAvailable {
			return true
		}
		for _, class := range transientSQLStateClasses {
			if strings.HasPrefix(state, class) {
				return true
			}
		}

		return false
	}

	var connectErr *pgconn.ConnectError
	var netErr net.Error

	return errors.As(err, &connectErr) ||
		errors.As(err, &netErr) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) ||
		pgconn.Timeout(err) ||
		pgconn.SafeToRetry(err)
}
