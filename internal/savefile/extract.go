package savefile

// WarnNoInstallPath is reported when ship thumbnails cannot be resolved
const WarnNoInstallPath = "installation path is not set; ship images are unavailable"

// Contents is everything decoded from one document
type Contents struct {
	Pilot      PilotInfo         `json:"pilot" yaml:"pilot"`
	Reputation []ReputationEntry `json:"reputation" yaml:"reputation"`
	Ships      []ShipRecord      `json:"ships" yaml:"ships"`
	Warnings   []string          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Extract runs every extractor over doc
func Extract(doc *Document, installPath string) Contents {
	contents := Contents{
		Pilot:      ExtractPilot(doc),
		Reputation: ExtractReputation(doc),
		Ships:      ExtractShips(doc, installPath),
	}

	if installPath == "" {
		for _, ship := range contents.Ships {
			if ship.Thumbnail != "" {
				contents.Warnings = append(contents.Warnings, WarnNoInstallPath)
				break
			}
		}
	}
	return contents
}
