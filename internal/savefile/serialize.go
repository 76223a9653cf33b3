package savefile

// ReputationEdit is the edited value of one reputation row
type ReputationEdit struct {
	Faction string
	Value   int
}

// Edits is the set of field values to write back. Reputation edits are
// keyed by the source line index of the entry they replace.
type Edits struct {
	Pilot      *PilotInfo
	Reputation map[int]ReputationEdit
}

// Empty reports whether the edit set would leave a document unchanged
func (e Edits) Empty() bool {
	return e.Pilot == nil && len(e.Reputation) == 0
}

// Apply returns a copy of doc with the edits written in place.
// Only the pilot, date, system, planet and edited reputation lines are
// touched; every other line is copied byte for byte.
//
// Lines 0 and 1 are overwritten with the pilot and date values without
// re-checking their markers, but only when HasName and HasDate are set.
// Callers that want the unconditional overwrite of a file lacking those
// markers set the flags themselves.
func Apply(doc *Document, edits Edits) *Document {
	out := doc.Clone()

	if p := edits.Pilot; p != nil {
		if p.HasName {
			out.setText(pilotLine, PilotToken+" "+p.Name)
		}
		if p.HasDate {
			out.setText(dateLine, DateToken+" "+p.Date)
		}
		if p.HasSystem {
			rewriteMarker(out, SystemToken, p.System)
		}
		if p.HasPlanet {
			rewriteMarker(out, PlanetToken, quote(p.Planet))
		}
	}

	if len(edits.Reputation) > 0 {
		if start, end, ok := reputationSection(out); ok {
			for i := start; i < end; i++ {
				if edit, found := edits.Reputation[i]; found {
					out.setText(i, formatReputationRow(edit.Faction, edit.Value))
				}
			}
		}
	}

	return out
}

// rewriteMarker overwrites the first line carrying token, keeping the
// line's surrounding whitespace
func rewriteMarker(doc *Document, token, value string) {
	i := findMarker(doc, token)
	if i < 0 {
		return
	}
	lead, _, trail := indentation(doc.Text(i))
	doc.setText(i, lead+token+" "+value+trail)
}
