package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestOnConflictDoNothing(t *testing.T) {
	assert.Equal(t, "ON DUPLICATE KEY UPDATE id = id", OnConflictDoNothing("mysql", "user_id", "word_id"))
	assert.Equal(t, "ON CONFLICT (user_id, word_id) DO NOTHING", OnConflictDoNothing("pgx", "user_id", "word_id"))
}

func TestIsDuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "mysql duplicate entry", err: &mysql.MySQLError{Number: 1062}, want: true},
		{name: "wrapped mysql duplicate entry", err: fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062}), want: true},
		{name: "mysql deadlock", err: &mysql.MySQLError{Number: 1213}, want: false},
		{name: "postgres unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: true},
		{name: "postgres foreign key violation", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, want: false},
		{name: "other error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateKey(tt.err))
		})
	}
}

func TestIsSerializationFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "mysql deadlock", err: &mysql.MySQLError{Number: 1213}, want: true},
		{name: "mysql duplicate entry", err: &mysql.MySQLError{Number: 1062}, want: false},
		{name: "postgres serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: true},
		{name: "wrapped postgres deadlock", err: fmt.Errorf("update: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), want: true},
		{name: "postgres unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: false},
		{name: "other error", err: errors.New("boom"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSerializationFailure(tt.err))
		})
	}
}

func TestMigrationDriver(t *testing.T) {
	assert.Equal(t, DriverPostgres, migrationDriver("pgx"))
	assert.Equal(t, DriverMySQL, migrationDriver("mysql"))
}
