package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaFS embed.FS

func appDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	base := filepath.Join(home, ".local", "share", "boardcal")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return "", err
	}
	return base, nil
}

// Open opens (creating if needed) the meeting database in the user's
// data directory and applies the schema.
func Open() (*sql.DB, error) {
	dir, err := appDataDir()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, "boardcal.db")
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		path,
	)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := EnsureLegacyColumns(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func migrate(db *sql.DB) error {
	b, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	if _, err := db.Exec(string(b)); err != nil {
		return errors.Join(fmt.Errorf("schema apply failed"), err)
	}
	return nil
}

// EnsureLegacyColumns upgrades databases created before meetings grew a
// calendar date: older rows carry only a Monday-first weekday index.
// Idempotent; safe to run on every open.
func EnsureLegacyColumns(db *sql.DB) error {
	needDate := true
	needDayIndex := true

	rows, err := db.Query(`PRAGMA table_info(meetings)`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return err
		}
		switch strings.ToLower(name) {
		case "date":
			needDate = false
		case "day_index":
			needDayIndex = false
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if needDate {
		if _, err := tx.Exec(`ALTER TABLE meetings ADD COLUMN date TEXT`); err != nil {
			return fmt.Errorf("add date: %w", err)
		}
	}
	if needDayIndex {
		if _, err := tx.Exec(`ALTER TABLE meetings ADD COLUMN day_index INTEGER`); err != nil {
			return fmt.Errorf("add day_index: %w", err)
		}
	}
	if _, err := tx.Exec(`CREATE INDEX IF NOT EXISTS idx_meetings_date ON meetings(date)`); err != nil {
		return err
	}
	return tx.Commit()
}
