package database

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// MySQL server error numbers.
const (
	mysqlErrDuplicateEntry = 1062
	mysqlErrLockDeadlock   = 1213
)

// OnConflictDoNothing returns the clause that turns an INSERT into a no-op when a row
// with the same unique key exists.
func OnConflictDoNothing(driverName string, conflictColumns ...string) string {
	if driverName == pgxDriverName {
		return "ON CONFLICT (" + strings.Join(conflictColumns, ", ") + ") DO NOTHING"
	}
	return "ON DUPLICATE KEY UPDATE id = id"
}

// IsDuplicateKey reports whether err is a unique constraint violation.
func IsDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrDuplicateEntry
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}

// IsSerializationFailure reports whether err aborted a transaction that may succeed when retried.
func IsSerializationFailure(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrLockDeadlock
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected
	}
	return false
}
