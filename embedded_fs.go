package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed internal/db/migrations
var migrationsFS embed.FS

// MigrationsFS returns the embedded filesystem holding the SQL migration
// scripts, baked into the binary so deployment never depends on a
// filesystem layout around the executable.
func MigrationsFS() (fs.FS, error) {
	_, err := fs.Stat(migrationsFS, "internal/db/migrations")
	if err != nil && os.IsNotExist(err) {
		return nil, fmt.Errorf("migrations directory does not exist in the embedded filesystem")
	}

	return migrationsFS, nil
}
