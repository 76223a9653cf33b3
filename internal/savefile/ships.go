package savefile

import (
	"path/filepath"
	"strings"
)

// ShipRecord describes one owned ship. Ships are read-only: nothing in a
// ShipRecord is written back by the serializer.
type ShipRecord struct {
	Model     string   `json:"model" yaml:"model"`
	Name      string   `json:"name,omitempty" yaml:"name,omitempty"`
	HasName   bool     `json:"-" yaml:"-"`
	Thumbnail string   `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	ImagePath string   `json:"image_path,omitempty" yaml:"image_path,omitempty"`
	Outfits   []string `json:"outfits,omitempty" yaml:"outfits,omitempty"`
	Line      int      `json:"line" yaml:"line"`
}

// DisplayName returns the ship name or a placeholder for unnamed ships
func (s ShipRecord) DisplayName() string {
	if !s.HasName || s.Name == "" {
		return "- No name -"
	}
	return s.Name
}

// ImagePath maps a thumbnail value to <install>/images/<thumbnail>.png.
// It returns "" when the installation path is unknown.
func ImagePath(installPath, thumbnail string) string {
	if installPath == "" || thumbnail == "" {
		return ""
	}
	return filepath.Join(installPath, "images", thumbnail+".png")
}

// ExtractShips decodes the ship blocks listed after "# What you own:".
// A block opens on a "ship <model>" line and closes once both its name and
// thumbnail were seen, or when the next ship, a licenses line or the end
// of the document is reached. Scanning stops at the licenses line.
func ExtractShips(doc *Document, installPath string) []ShipRecord {
	marker := findOwnershipMarker(doc)
	if marker < 0 {
		return nil
	}

	var ships []ShipRecord
	i := marker + 1
	for i < doc.Len() {
		text := cleanShipLine(doc.Text(i))
		if isToken(text, LicensesToken) {
			break
		}
		model, ok := markerValue(text, ShipToken)
		if !ok {
			i++
			continue
		}

		ship, next := readShipBlock(doc, i+1, installPath)
		ship.Model = model
		ship.Line = i
		ships = append(ships, ship)
		i = next
	}
	return ships
}

// readShipBlock accumulates ship sub-fields from line start. It returns the
// ship and the index at which the outer scan resumes. Once name and
// thumbnail are both seen the block is closed, but an outfits list that
// follows is still collected until the next line at or above the ship's
// own indentation.
func readShipBlock(doc *Document, start int, installPath string) (ShipRecord, int) {
	var ship ShipRecord
	hasThumbnail := false
	closed := false
	outfitDepth := -1
	shipDepth := 0
	if start > 0 {
		shipDepth = indentDepth(doc.Text(start - 1))
	}

	i := start
	for ; i < doc.Len(); i++ {
		raw := doc.Text(i)
		text := cleanShipLine(raw)
		if isToken(text, LicensesToken) {
			return ship, i
		}
		if _, ok := markerValue(text, ShipToken); ok {
			return ship, i
		}

		depth := indentDepth(raw)
		if closed && text != "" && depth <= shipDepth {
			return ship, i
		}
		if outfitDepth >= 0 {
			if depth > outfitDepth && text != "" {
				ship.Outfits = append(ship.Outfits, text)
				continue
			}
			outfitDepth = -1
		}

		switch {
		case isToken(text, "outfits"):
			outfitDepth = depth
		case closed:
		case !ship.HasName && strings.HasPrefix(text, "name "):
			ship.Name = strings.TrimPrefix(text, "name ")
			ship.HasName = true
		case !hasThumbnail && strings.HasPrefix(text, "thumbnail "):
			ship.Thumbnail = strings.TrimPrefix(text, "thumbnail ")
			ship.ImagePath = ImagePath(installPath, ship.Thumbnail)
			hasThumbnail = true
		}

		closed = ship.HasName && hasThumbnail
	}
	return ship, i
}

func indentDepth(raw string) int {
	return len(raw) - len(strings.TrimLeft(raw, " \t"))
}

func cleanShipLine(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, `"`, ""))
}

func isToken(text, token string) bool {
	return text == token || strings.HasPrefix(text, token+" ")
}
