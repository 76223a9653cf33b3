package session

import (
	"errors"
	"fmt"

	"skyedit/internal/log"
	"skyedit/internal/savefile"
	"skyedit/internal/thumbnail"
)

// ErrUnknownEntry is returned when an edit names a line that holds no
// reputation entry
var ErrUnknownEntry = errors.New("no reputation entry on that line")

// Recorder keeps a history of opened and saved files. It is optional.
type Recorder interface {
	RecordOpen(path, pilot string) error
	RecordSave(path string, changedLines int, saveErr error) error
}

// Options configures a session
type Options struct {
	// InstallPath is the game installation folder used for ship images
	InstallPath string
	// CheckImages stats every resolved ship image and warns when missing
	CheckImages bool
	// History records opens and saves when set
	History Recorder
}

// Snapshot is what the display layer shows for the open save file
type Snapshot struct {
	Path       string                     `json:"path" yaml:"path"`
	Pilot      savefile.PilotInfo         `json:"pilot" yaml:"pilot"`
	Reputation []savefile.ReputationEntry `json:"reputation" yaml:"reputation"`
	Ships      []savefile.ShipRecord      `json:"ships" yaml:"ships"`
	Warnings   []string                   `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Dirty      bool                       `json:"-" yaml:"-"`
}

// Session owns one loaded save file and the values being edited
type Session struct {
	path string
	opts Options

	doc      *savefile.Document
	contents savefile.Contents

	pilot      savefile.PilotInfo
	reputation map[int]savefile.ReputationEdit
}

// Open loads the save file at path. A missing file returns an error
// wrapping savefile.ErrNotFound.
func Open(path string, opts Options) (*Session, error) {
	s := &Session{path: path, opts: opts}
	if err := s.Reload(); err != nil {
		return nil, err
	}

	if opts.History != nil {
		if err := opts.History.RecordOpen(path, s.pilot.Name); err != nil {
			log.Warn("failed to record opened save", "path", path, "error", err)
		}
	}
	return s, nil
}

// Reload re-reads the file, discarding unsaved edits
func (s *Session) Reload() error {
	doc, err := savefile.Load(s.path)
	if err != nil {
		return err
	}
	s.setDocument(doc)
	log.Info("loaded save file", "path", s.path, "lines", doc.Len(),
		"factions", len(s.contents.Reputation), "ships", len(s.contents.Ships))
	return nil
}

func (s *Session) setDocument(doc *savefile.Document) {
	s.doc = doc
	s.contents = savefile.Extract(doc, s.opts.InstallPath)
	s.pilot = s.contents.Pilot
	s.reputation = make(map[int]savefile.ReputationEdit)

	if s.opts.CheckImages && s.opts.InstallPath != "" {
		for _, ship := range s.contents.Ships {
			if ship.ImagePath == "" {
				continue
			}
			if err := thumbnail.Check(ship.ImagePath); err != nil {
				s.contents.Warnings = append(s.contents.Warnings,
					fmt.Sprintf("image not found for spaceship: %s", ship.Model))
			}
		}
	}
}

// Path returns the save file path
func (s *Session) Path() string {
	return s.path
}

// Document returns the loaded document
func (s *Session) Document() *savefile.Document {
	return s.doc
}

// Pilot returns the current pilot values, including unsaved edits
func (s *Session) Pilot() savefile.PilotInfo {
	return s.pilot
}

// SetPilot replaces the pilot values. Presence flags from the loaded file
// are kept so fields that were never found are not written unless the
// caller marks them present.
func (s *Session) SetPilot(p savefile.PilotInfo) {
	loaded := s.contents.Pilot
	p.HasName = p.HasName || loaded.HasName
	p.HasDate = p.HasDate || loaded.HasDate
	p.HasSystem = p.HasSystem || loaded.HasSystem
	p.HasPlanet = p.HasPlanet || loaded.HasPlanet
	s.pilot = p
}

// SetReputation edits the entry loaded from line
func (s *Session) SetReputation(line int, faction string, value int) error {
	if _, ok := s.entry(line); !ok {
		return fmt.Errorf("%w: line %d", ErrUnknownEntry, line)
	}
	s.reputation[line] = savefile.ReputationEdit{Faction: faction, Value: value}
	return nil
}

// FindFaction returns the first entry for faction
func (s *Session) FindFaction(faction string) (savefile.ReputationEntry, bool) {
	for _, entry := range s.contents.Reputation {
		if entry.Faction == faction {
			return entry, true
		}
	}
	return savefile.ReputationEntry{}, false
}

func (s *Session) entry(line int) (savefile.ReputationEntry, bool) {
	for _, entry := range s.contents.Reputation {
		if entry.Line == line {
			return entry, true
		}
	}
	return savefile.ReputationEntry{}, false
}

// Edits returns the edit set a save would apply. Pilot values are always
// submitted, as the editing form does.
func (s *Session) Edits() savefile.Edits {
	pilot := s.pilot
	reputation := make(map[int]savefile.ReputationEdit, len(s.reputation))
	for line, edit := range s.reputation {
		reputation[line] = edit
	}
	return savefile.Edits{Pilot: &pilot, Reputation: reputation}
}

// Dirty reports whether saving would change the file
func (s *Session) Dirty() bool {
	return len(s.doc.Changed(savefile.Apply(s.doc, s.Edits()))) > 0
}

// Snapshot returns the values to display, with unsaved edits applied
func (s *Session) Snapshot() Snapshot {
	reputation := make([]savefile.ReputationEntry, len(s.contents.Reputation))
	for i, entry := range s.contents.Reputation {
		if edit, ok := s.reputation[entry.Line]; ok {
			entry.Faction = edit.Faction
			entry.Value = edit.Value
		}
		reputation[i] = entry
	}

	return Snapshot{
		Path:       s.path,
		Pilot:      s.pilot,
		Reputation: reputation,
		Ships:      append([]savefile.ShipRecord(nil), s.contents.Ships...),
		Warnings:   append([]string(nil), s.contents.Warnings...),
		Dirty:      s.Dirty(),
	}
}

// Save writes the edited values back to the file. On failure the in-memory
// state is kept so the user can retry; the file itself may already be
// partially written.
func (s *Session) Save() error {
	out := savefile.Apply(s.doc, s.Edits())
	changed := len(s.doc.Changed(out))

	err := out.Save(s.path)
	if s.opts.History != nil {
		if herr := s.opts.History.RecordSave(s.path, changed, err); herr != nil {
			log.Warn("failed to record save", "path", s.path, "error", herr)
		}
	}
	if err != nil {
		log.Error("failed to save changes", "path", s.path, "error", err)
		return fmt.Errorf("failed to save changes: %w", err)
	}

	log.Info("saved changes", "path", s.path, "changed_lines", changed)
	s.setDocument(out)
	return nil
}
