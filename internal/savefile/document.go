package savefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ErrNotFound is returned by Load when the save file does not exist
var ErrNotFound = errors.New("save file not found")

// Document holds a save file as an ordered list of raw lines.
// Each line keeps its own terminator ("\n", "\r\n", or none for an
// unterminated final line) so writing the lines back reproduces the file.
type Document struct {
	lines []string
}

// NewDocument creates a document from raw lines. The slice is copied.
func NewDocument(lines []string) *Document {
	return &Document{lines: append([]string(nil), lines...)}
}

// Parse splits raw bytes into a document
func Parse(data []byte) *Document {
	if len(data) == 0 {
		return &Document{}
	}
	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return &Document{lines: lines}
}

// Read reads a whole document from r
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read save data: %w", err)
	}
	return Parse(data), nil
}

// Load reads the save file at path
func Load(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open save file: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// Save overwrites the file at path with the document lines verbatim.
// The write is not atomic: a failure part way leaves the file truncated.
func (d *Document) Save(path string) error {
	if err := os.WriteFile(path, d.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	return nil
}

// WriteTo writes the document lines to w
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range d.lines {
		n, err := io.WriteString(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Bytes returns the concatenated document content
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	d.WriteTo(&buf)
	return buf.Bytes()
}

// Len returns the number of lines
func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns raw line i including its terminator, or "" when out of range
func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i]
}

// Text returns line i without its terminator
func (d *Document) Text(i int) string {
	line := d.Line(i)
	return line[:len(line)-len(terminator(line))]
}

// Lines returns a copy of the raw lines
func (d *Document) Lines() []string {
	return append([]string(nil), d.lines...)
}

// Clone returns an independent copy of the document
func (d *Document) Clone() *Document {
	return NewDocument(d.lines)
}

// Changed returns the indexes of lines that differ between d and other.
// Lines present in only one of the two documents count as changed.
func (d *Document) Changed(other *Document) []int {
	n := max(d.Len(), other.Len())
	var changed []int
	for i := 0; i < n; i++ {
		if i >= d.Len() || i >= other.Len() || d.lines[i] != other.lines[i] {
			changed = append(changed, i)
		}
	}
	return changed
}

// setText replaces the content of line i, keeping its terminator
func (d *Document) setText(i int, text string) {
	if i < 0 || i >= len(d.lines) {
		return
	}
	d.lines[i] = text + terminator(d.lines[i])
}

func terminator(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	}
	return ""
}
