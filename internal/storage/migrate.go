package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrateUp applies pending up migrations in numeric order. The applied
// count is tracked in PRAGMA user_version, so running it on every launch
// only executes what the database has not seen yet.
func MigrateUp(db *sql.DB) error {
	ups, err := migrationNames(".up.sql")
	if err != nil {
		return err
	}
	version, err := schemaVersion(db)
	if err != nil {
		return err
	}
	for i := version; i < len(ups); i++ {
		if err := applyMigration(db, ups[i], i+1); err != nil {
			return err
		}
	}
	return nil
}

// MigrateDown rolls back every applied migration, newest first.
func MigrateDown(db *sql.DB) error {
	downs, err := migrationNames(".down.sql")
	if err != nil {
		return err
	}
	version, err := schemaVersion(db)
	if err != nil {
		return err
	}
	if version > len(downs) {
		version = len(downs)
	}
	for i := version - 1; i >= 0; i-- {
		if err := applyMigration(db, downs[i], i); err != nil {
			return err
		}
	}
	return nil
}

func migrationNames(suffix string) ([]string, error) {
	names, err := fs.Glob(migrationFiles, "migrations/*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

func applyMigration(db *sql.DB, name string, toVersion int) error {
	sqlBytes, err := migrationFiles.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read migration %s: %w", name, err)
	}
	if _, err := db.Exec(string(sqlBytes)); err != nil {
		return fmt.Errorf("apply migration %s: %w", name, err)
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", toVersion)); err != nil {
		return fmt.Errorf("set schema version after %s: %w", name, err)
	}
	return nil
}

func schemaVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}
