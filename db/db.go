package db

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const dbDriver = "sqlite3"

// DB is the global database connection pool.
var DB *sql.DB

// InitDB opens the SQLite database at the given path and creates tables if
// they don't exist.
func InitDB(source string) error {
	if dir := filepath.Dir(source); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create database directory: %w", err)
		}
	}

	var err error
	DB, err = sql.Open(dbDriver, source)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// createTables is defined in migrate.go
	if err := createTables(); err != nil {
		return err
	}

	log.Println("Database connection initialized successfully.")
	return nil
}
