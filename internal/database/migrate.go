package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/vocabreview/schemas"
)

// NewMigrator returns a migrator applying the embedded schema for the driver of db.
func NewMigrator(db *sqlx.DB) (*migrate.Migrate, error) {
	dir, err := schemas.Dir(migrationDriver(db.DriverName()))
	if err != nil {
		return nil, err
	}
	src, err := iofs.New(schemas.Migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations(%s): %w", dir, err)
	}

	var (
		driver     migratedb.Driver
		driverName string
	)
	switch db.DriverName() {
	case pgxDriverName:
		driverName = DriverPostgres
		driver, err = migratepgx.WithInstance(db.DB, &migratepgx.Config{})
	default:
		driverName = DriverMySQL
		driver, err = migratemysql.WithInstance(db.DB, &migratemysql.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("create %s migration driver: %w", driverName, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driverName, driver)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}

// MigrateUp applies all pending migrations. It is a no-op when the schema is current.
func MigrateUp(m *migrate.Migrate) error {
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// MigrateDown rolls back the given number of migrations.
func MigrateDown(m *migrate.Migrate, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive: %d", steps)
	}
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("roll back migrations: %w", err)
	}
	return nil
}

func migrationDriver(driverName string) string {
	if driverName == pgxDriverName {
		return DriverPostgres
	}
	return DriverMySQL
}
