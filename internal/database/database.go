package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"skyedit/internal/log"
)

// ErrNotOpen is returned when the history database is used before Open
var ErrNotOpen = errors.New("database not open")

// Database records which save files were opened and saved
type Database interface {
	// Core database operations
	OpenDatabase(filename string) error
	CloseDatabase() error
	GetDatabaseOpen() bool

	// History operations
	RecordOpen(path, pilot string) error
	RecordSave(path string, changedLines int, saveErr error) error
	RecentFiles(limit int) ([]RecentFile, error)
	SaveEvents(path string, limit int) ([]SaveEvent, error)

	// Internal access for advanced operations
	GetDB() *sql.DB
}

// SQLiteDatabase implements Database using SQLite
type SQLiteDatabase struct {
	db       *sql.DB
	dbOpen   bool
	filename string
	now      func() time.Time

	// Prepared statements
	recordOpenStmt *sql.Stmt
	recordSaveStmt *sql.Stmt
}

// NewDatabase creates a new SQLite history database instance
func NewDatabase() *SQLiteDatabase {
	return &SQLiteDatabase{now: time.Now}
}

// OpenDatabase opens or creates the database file and applies migrations.
// ":memory:" opens a private in-memory database.
func (d *SQLiteDatabase) OpenDatabase(filename string) error {
	if d.dbOpen {
		return fmt.Errorf("database already open")
	}

	log.Debug("opening history database", "file", filename)

	var err error
	d.db, err = sql.Open("sqlite", filename)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases coherent
	d.db.SetMaxOpenConns(1)

	if err = d.db.Ping(); err != nil {
		d.db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err = d.runMigrations(); err != nil {
		d.db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err = d.prepareStatements(); err != nil {
		d.db.Close()
		return fmt.Errorf("failed to prepare statements: %w", err)
	}

	d.filename = filename
	d.dbOpen = true
	return nil
}

func (d *SQLiteDatabase) prepareStatements() error {
	var err error
	d.recordOpenStmt, err = d.db.Prepare(`
		INSERT INTO recent_files (path, pilot, opened_at) VALUES (?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET pilot = excluded.pilot, opened_at = excluded.opened_at;`)
	if err != nil {
		return fmt.Errorf("failed to prepare record open: %w", err)
	}

	d.recordSaveStmt, err = d.db.Prepare(`
		INSERT INTO save_events (path, saved_at, changed_lines, ok, error) VALUES (?, ?, ?, ?, ?);`)
	if err != nil {
		return fmt.Errorf("failed to prepare record save: %w", err)
	}
	return nil
}

// CloseDatabase closes the database connection
func (d *SQLiteDatabase) CloseDatabase() error {
	if !d.dbOpen {
		return nil
	}

	if d.recordOpenStmt != nil {
		d.recordOpenStmt.Close()
	}
	if d.recordSaveStmt != nil {
		d.recordSaveStmt.Close()
	}

	if err := d.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	d.dbOpen = false
	d.filename = ""
	return nil
}

// GetDatabaseOpen reports whether the database is open
func (d *SQLiteDatabase) GetDatabaseOpen() bool {
	return d.dbOpen
}

// GetDB returns the underlying connection pool
func (d *SQLiteDatabase) GetDB() *sql.DB {
	return d.db
}

// RecordOpen remembers that path was opened, replacing an older entry
func (d *SQLiteDatabase) RecordOpen(path, pilot string) error {
	if !d.dbOpen {
		return ErrNotOpen
	}
	if _, err := d.recordOpenStmt.Exec(path, pilot, d.now().UTC()); err != nil {
		return fmt.Errorf("failed to record open of %s: %w", path, err)
	}
	return nil
}

// RecordSave appends a save attempt for path
func (d *SQLiteDatabase) RecordSave(path string, changedLines int, saveErr error) error {
	if !d.dbOpen {
		return ErrNotOpen
	}

	message := ""
	if saveErr != nil {
		message = saveErr.Error()
	}
	if _, err := d.recordSaveStmt.Exec(path, d.now().UTC(), changedLines, saveErr == nil, message); err != nil {
		return fmt.Errorf("failed to record save of %s: %w", path, err)
	}
	return nil
}

// RecentFiles returns the most recently opened files, newest first
func (d *SQLiteDatabase) RecentFiles(limit int) ([]RecentFile, error) {
	if !d.dbOpen {
		return nil, ErrNotOpen
	}

	rows, err := d.db.Query(`
		SELECT path, pilot, opened_at FROM recent_files
		ORDER BY opened_at DESC, path LIMIT ?;`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent files: %w", err)
	}
	defer rows.Close()

	var files []RecentFile
	for rows.Next() {
		var f RecentFile
		if err := rows.Scan(&f.Path, &f.Pilot, &f.OpenedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent file: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// SaveEvents returns the save attempts for path, newest first
func (d *SQLiteDatabase) SaveEvents(path string, limit int) ([]SaveEvent, error) {
	if !d.dbOpen {
		return nil, ErrNotOpen
	}

	rows, err := d.db.Query(`
		SELECT id, path, saved_at, changed_lines, ok, error FROM save_events
		WHERE path = ? ORDER BY id DESC LIMIT ?;`, path, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query save events: %w", err)
	}
	defer rows.Close()

	var events []SaveEvent
	for rows.Next() {
		var e SaveEvent
		if err := rows.Scan(&e.ID, &e.Path, &e.SavedAt, &e.ChangedLines, &e.OK, &e.Error); err != nil {
			return nil, fmt.Errorf("failed to scan save event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
