package components

import (
	"github.com/rivo/tview"

	"skyedit/internal/savefile"
	"skyedit/internal/theme"
)

const (
	labelPilot  = "Pilot Name:"
	labelDate   = "Date:"
	labelSystem = "System:"
	labelPlanet = "Planet:"
)

// PilotForm edits the pilot and location fields of a save file. Fields the
// file does not carry are left off the form.
type PilotForm struct {
	form     *tview.Form
	pilot    savefile.PilotInfo
	onChange func(savefile.PilotInfo)
}

// NewPilotForm creates an empty pilot form
func NewPilotForm(onChange func(savefile.PilotInfo)) *PilotForm {
	pf := &PilotForm{
		form:     theme.NewForm(),
		onChange: onChange,
	}
	pf.form.SetTitle(" Pilot ")
	pf.form.SetTitleAlign(tview.AlignLeft)
	return pf
}

// SetPilot rebuilds the form for p
func (pf *PilotForm) SetPilot(p savefile.PilotInfo) {
	pf.pilot = p
	pf.form.Clear(false)

	pf.addField(p.HasName, labelPilot, p.Name, func(text string) { pf.pilot.Name = text })
	pf.addField(p.HasDate, labelDate, p.Date, func(text string) { pf.pilot.Date = text })
	pf.addField(p.HasSystem, labelSystem, p.System, func(text string) { pf.pilot.System = text })
	pf.addField(p.HasPlanet, labelPlanet, p.Planet, func(text string) { pf.pilot.Planet = text })

	if pf.form.GetFormItemCount() == 0 {
		pf.form.AddTextView("", "No pilot fields found in this file.", 40, 1, true, false)
	}
}

func (pf *PilotForm) addField(present bool, label, value string, set func(string)) {
	if !present {
		return
	}
	pf.form.AddInputField(label, value, 40, nil, func(text string) {
		set(text)
		if pf.onChange != nil {
			pf.onChange(pf.pilot)
		}
	})
}

// Pilot returns the form values
func (pf *PilotForm) Pilot() savefile.PilotInfo {
	return pf.pilot
}

// AddButton adds a button below the fields
func (pf *PilotForm) AddButton(label string, selected func()) {
	pf.form.AddButton(label, selected)
}

// GetForm returns the internal form component
func (pf *PilotForm) GetForm() *tview.Form {
	return pf.form
}
