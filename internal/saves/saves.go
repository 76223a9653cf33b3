package saves

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrNoFolder is returned when the save folder is unset or not a directory
var ErrNoFolder = errors.New("save folder is invalid or does not exist")

// Extension of save files written by the game
const Extension = ".txt"

// Entry is one save file in the save folder
type Entry struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// Describe renders size and age for list views, e.g. "12 kB, 3 minutes ago"
func (e Entry) Describe(now time.Time) string {
	return humanize.Bytes(uint64(e.Size)) + ", " + humanize.RelTime(e.ModTime, now, "ago", "from now")
}

// IsSave reports whether name looks like a save file
func IsSave(name string) bool {
	return strings.EqualFold(filepath.Ext(name), Extension) && !strings.HasPrefix(name, ".")
}

// List returns the save files in dir sorted by name using an English
// collator, so "Jane 2" sorts before "Jane 10" and case does not matter
func List(dir string) ([]Entry, error) {
	if dir == "" {
		return nil, ErrNoFolder
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNoFolder, dir)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load save files: %w", err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() || !IsSave(de.Name()) {
			continue
		}
		fi, err := de.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Name:    de.Name(),
			Path:    filepath.Join(dir, de.Name()),
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})
	}

	sortEntries(entries)
	return entries, nil
}

func sortEntries(entries []Entry) {
	c := collate.New(language.English, collate.IgnoreCase, collate.Numeric)
	c.Sort(byName(entries))
}

// byName adapts []Entry to collate.Lister
type byName []Entry

func (b byName) Len() int           { return len(b) }
func (b byName) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }
func (b byName) Bytes(i int) []byte { return []byte(b[i].Name) }
