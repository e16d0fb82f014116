// Package schemas provides embedded SQL migration files.
package schemas

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

// Migrations contains the SQL migration files of every supported driver,
// one directory per driver under migrations/.
//
//go:embed migrations/*/*.sql
var Migrations embed.FS

// Dir returns the migrations directory of a driver inside Migrations.
func Dir(driver string) (string, error) {
	dir := path.Join("migrations", driver)
	entries, err := fs.ReadDir(Migrations, dir)
	if err != nil {
		return "", fmt.Errorf("no migrations for driver %q: %w", driver, err)
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("no migrations for driver %q", driver)
	}
	return dir, nil
}
