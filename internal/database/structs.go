package database

import "time"

// RecentFile is a save file the user opened
type RecentFile struct {
	Path     string    `json:"path"`
	Pilot    string    `json:"pilot"`
	OpenedAt time.Time `json:"opened_at"`
}

// SaveEvent is one attempt to write a save file
type SaveEvent struct {
	ID           int64     `json:"id"`
	Path         string    `json:"path"`
	SavedAt      time.Time `json:"saved_at"`
	ChangedLines int       `json:"changed_lines"`
	OK           bool      `json:"ok"`
	Error        string    `json:"error,omitempty"`
}
