// db.go
//
// Database helpers for the solver service.
// Responsibilities:
//   - Opening SQLite database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying migrations from ./sql/*.sql (idempotent, recorded in _migrations).
//
// The schema holds users, session history rows, and persisted score tables
// (word → score, keyed by candidate-list fingerprint).
//
// Note: This file assumes SQLite but can be adapted for other backends.

package main

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// openDB opens (and creates if missing) a SQLite database file.
//
//   - Ensures the parent directory exists for relative DSNs (e.g. ./data/app.db).
//   - Configures busy timeout and WAL journaling mode.
//   - Enforces foreign keys.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies SQL migrations from the ./sql directory.
//
//   - Uses a _migrations table to track applied files.
//   - Executes each *.sql file in lexical order.
//   - Skips files already applied.
//   - Detects "self-managed" scripts (with BEGIN TRANSACTION or PRAGMA
//     FOREIGN_KEYS=OFF) and runs them outside of an outer transaction.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	root := "sql"
	var files []string
	if err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk sql dir: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Info().Str("migration", f).Msg("already applied")
			continue
		}
		if err != nil && err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		sqlText := string(sqlBytes)

		upper := strings.ToUpper(sqlText)
		selfManaged := strings.Contains(upper, "BEGIN TRANSACTION") ||
			strings.Contains(upper, "PRAGMA FOREIGN_KEYS=OFF") ||
			strings.Contains(upper, "PRAGMA FOREIGN_KEYS = OFF")

		if selfManaged {
			if _, err := db.Exec(sqlText); err != nil {
				return fmt.Errorf("apply %s: %w", f, err)
			}
			if _, err := db.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
				return fmt.Errorf("record %s: %w", f, err)
			}
			log.Info().Str("migration", f).Msg("applied (self-managed)")
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(sqlText); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}
