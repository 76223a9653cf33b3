package savefile

import "strings"

// PilotInfo holds the pilot identity and current location.
// The Has* flags report whether the matching marker line was found.
type PilotInfo struct {
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Date   string `json:"date,omitempty" yaml:"date,omitempty"`
	System string `json:"system,omitempty" yaml:"system,omitempty"`
	Planet string `json:"planet,omitempty" yaml:"planet,omitempty"`

	HasName   bool `json:"-" yaml:"-"`
	HasDate   bool `json:"-" yaml:"-"`
	HasSystem bool `json:"-" yaml:"-"`
	HasPlanet bool `json:"-" yaml:"-"`
}

// ExtractPilot decodes the pilot, date, system and planet fields.
// Missing or misplaced markers leave the field unset.
func ExtractPilot(doc *Document) PilotInfo {
	var info PilotInfo

	if doc.Len() > pilotLine {
		info.Name, info.HasName = markerValue(doc.Text(pilotLine), PilotToken)
	}
	if doc.Len() > dateLine {
		info.Date, info.HasDate = markerValue(doc.Text(dateLine), DateToken)
	}

	if i := findMarker(doc, SystemToken); i >= 0 {
		info.System, _ = markerValue(doc.Text(i), SystemToken)
		info.HasSystem = true
	}
	if i := findMarker(doc, PlanetToken); i >= 0 {
		planet, _ := markerValue(doc.Text(i), PlanetToken)
		info.Planet = unquote(strings.TrimSpace(planet))
		info.HasPlanet = true
	}

	return info
}

func unquote(s string) string {
	return strings.Trim(s, `"`)
}

func quote(s string) string {
	return `"` + s + `"`
}
