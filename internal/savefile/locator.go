package savefile

import "strings"

// Marker tokens and headers of the save format
const (
	PilotToken       = "pilot"
	DateToken        = "date"
	SystemToken      = "system"
	PlanetToken      = "planet"
	ReputationHeader = `"reputation with"`
	OwnershipMarker  = "# What you own:"
	ShipToken        = "ship"
	LicensesToken    = "licenses"

	pilotLine = 0
	dateLine  = 1
)

// markerValue returns the text after "<token> " on a trimmed line
func markerValue(text, token string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	prefix := token + " "
	if !strings.HasPrefix(trimmed, prefix) {
		return "", false
	}
	return trimmed[len(prefix):], true
}

// findMarker returns the index of the first line carrying token, or -1
func findMarker(doc *Document, token string) int {
	for i := 0; i < doc.Len(); i++ {
		if _, ok := markerValue(doc.Text(i), token); ok {
			return i
		}
	}
	return -1
}

// findReputationHeader returns the index of the "reputation with" header, or -1
func findReputationHeader(doc *Document) int {
	for i := 0; i < doc.Len(); i++ {
		if strings.TrimSpace(doc.Line(i)) == ReputationHeader {
			return i
		}
	}
	return -1
}

// reputationSection returns the line range [start, end) of the tab-indented
// run that follows the reputation header. ok is false without a header.
func reputationSection(doc *Document) (start, end int, ok bool) {
	header := findReputationHeader(doc)
	if header < 0 {
		return 0, 0, false
	}
	start = header + 1
	end = start
	for end < doc.Len() && strings.HasPrefix(doc.Line(end), "\t") {
		end++
	}
	return start, end, true
}

// findOwnershipMarker returns the index of the "# What you own:" line, or -1
func findOwnershipMarker(doc *Document) int {
	for i := 0; i < doc.Len(); i++ {
		if doc.Text(i) == OwnershipMarker {
			return i
		}
	}
	return -1
}

// indentation splits text into its leading whitespace, content and trailing whitespace
func indentation(text string) (lead, body, trail string) {
	body = strings.TrimLeft(text, " \t")
	lead = text[:len(text)-len(body)]
	trimmed := strings.TrimRight(body, " \t\r")
	trail = body[len(trimmed):]
	return lead, trimmed, trail
}
