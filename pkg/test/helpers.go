package test

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"todos/internal/adapter/database/sqlite"
)

// findProjectRoot walks up from this file until it finds go.mod, so tests
// resolve the migrations directory regardless of which package runs them.
func findProjectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	log.Fatal("Could not find project root directory")
	return ""
}

// InitTestDB opens a fresh in-memory sqlite database with the schema
// applied. Each call is an isolated database.
func InitTestDB() *sqlite.DB {
	db, err := sql.Open("sqlite3", ":memory:")

	if err != nil {
		log.Fatal(err)
	}

	// A second pooled connection would see its own empty :memory: database.
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		log.Fatal(err)
	}

	migrationsPath := filepath.Join(findProjectRoot(), "db", "migrations")
	sqlite.RunMigrations(db, migrationsPath)

	return sqlite.Wrap(db)
}
