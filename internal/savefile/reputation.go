package savefile

import (
	"regexp"
	"strconv"
	"strings"

	"skyedit/internal/log"
)

// reputationPattern matches `"<faction>" <value>` with optional quotes
var reputationPattern = regexp.MustCompile(`^\s*"?([^"]+)"?\s+(-?\d+)`)

// ReputationEntry is one faction row of the reputation table.
// Line is the index of the source line and is what the serializer rewrites.
type ReputationEntry struct {
	Faction string `json:"faction" yaml:"faction"`
	Value   int    `json:"value" yaml:"value"`
	Line    int    `json:"line" yaml:"line"`
}

// ExtractReputation decodes the tab-indented rows following the
// "reputation with" header. Rows that do not match the faction pattern are
// skipped. A document without the header yields nil.
func ExtractReputation(doc *Document) []ReputationEntry {
	start, end, ok := reputationSection(doc)
	if !ok {
		return nil
	}

	var entries []ReputationEntry
	for i := start; i < end; i++ {
		faction, value, ok := parseReputationRow(doc.Text(i))
		if !ok {
			log.Debug("skipping malformed reputation row", "line", i, "text", doc.Text(i))
			continue
		}
		entries = append(entries, ReputationEntry{Faction: faction, Value: value, Line: i})
	}
	return entries
}

func parseReputationRow(text string) (string, int, bool) {
	match := reputationPattern.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return "", 0, false
	}
	value, err := strconv.Atoi(match[2])
	if err != nil {
		return "", 0, false
	}
	return strings.TrimSpace(match[1]), value, true
}

// formatReputationRow renders a reputation row without terminator
func formatReputationRow(faction string, value int) string {
	return "\t" + quote(faction) + " " + strconv.Itoa(value)
}
