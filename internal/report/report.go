package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"skyedit/internal/session"
)

// Format is an output format for a save file report
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json or yaml)", name)
}

// Write renders snap to w
func Write(w io.Writer, snap session.Snapshot, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return writeText(w, snap)
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeText(w io.Writer, snap session.Snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	p := snap.Pilot

	fmt.Fprintf(tw, "File:\t%s\n", snap.Path)
	if p.HasName {
		fmt.Fprintf(tw, "Pilot Name:\t%s\n", p.Name)
	}
	if p.HasDate {
		fmt.Fprintf(tw, "Date:\t%s\n", p.Date)
	}
	if p.HasSystem {
		fmt.Fprintf(tw, "System:\t%s\n", p.System)
	}
	if p.HasPlanet {
		fmt.Fprintf(tw, "Planet:\t%s\n", p.Planet)
	}

	if len(snap.Reputation) > 0 {
		fmt.Fprintf(tw, "\nReputation\t\n")
		for _, entry := range snap.Reputation {
			fmt.Fprintf(tw, "  %s\t%d\n", entry.Faction, entry.Value)
		}
	}

	if len(snap.Ships) > 0 {
		fmt.Fprintf(tw, "\nShips\t\n")
		for _, ship := range snap.Ships {
			fmt.Fprintf(tw, "  %s\t%s\n", ship.DisplayName(), ship.Model)
		}
	}

	for _, warning := range snap.Warnings {
		fmt.Fprintf(tw, "\nwarning:\t%s\n", warning)
	}
	return tw.Flush()
}
