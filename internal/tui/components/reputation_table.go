package components

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"skyedit/internal/savefile"
	"skyedit/internal/theme"
)

// ReputationTable lists faction standings, one row per entry
type ReputationTable struct {
	table    *tview.Table
	entries  []savefile.ReputationEntry
	onSelect func(savefile.ReputationEntry)
}

// NewReputationTable creates the table. onSelect runs when Enter is pressed
// on a row.
func NewReputationTable(onSelect func(savefile.ReputationEntry)) *ReputationTable {
	rt := &ReputationTable{
		table:    theme.NewTable(),
		onSelect: onSelect,
	}
	rt.table.SetTitle(" Reputation ")
	rt.table.SetTitleAlign(tview.AlignLeft)
	rt.table.SetSelectable(true, false)
	rt.table.SetFixed(1, 0)
	rt.table.SetSelectedFunc(func(row, column int) {
		if entry, ok := rt.entryAt(row); ok && rt.onSelect != nil {
			rt.onSelect(entry)
		}
	})
	return rt
}

// SetEntries replaces the table contents, keeping the selected row
func (rt *ReputationTable) SetEntries(entries []savefile.ReputationEntry) {
	selected, _ := rt.table.GetSelection()
	rt.entries = entries
	rt.table.Clear()

	colors := theme.Current().PanelColors()
	header := func(text string) *tview.TableCell {
		return tview.NewTableCell(text).
			SetTextColor(colors.HeaderFg).
			SetBackgroundColor(colors.HeaderBg).
			SetSelectable(false).
			SetExpansion(1)
	}
	rt.table.SetCell(0, 0, header("Faction"))
	rt.table.SetCell(0, 1, header("Value"))

	if len(entries) == 0 {
		rt.table.SetCell(1, 0, tview.NewTableCell("No reputation section").
			SetTextColor(colors.Foreground).
			SetSelectable(false))
		return
	}

	for i, entry := range entries {
		valueColor := colors.Foreground
		switch {
		case entry.Value < 0:
			valueColor = colors.Negative
		case entry.Value > 0:
			valueColor = colors.Positive
		}
		rt.table.SetCell(i+1, 0, tview.NewTableCell(entry.Faction).SetTextColor(colors.Foreground))
		rt.table.SetCell(i+1, 1, tview.NewTableCell(strconv.Itoa(entry.Value)).
			SetTextColor(valueColor).
			SetAlign(tview.AlignRight))
	}

	if selected < 1 || selected > len(entries) {
		selected = 1
	}
	rt.table.Select(selected, 0)
}

func (rt *ReputationTable) entryAt(row int) (savefile.ReputationEntry, bool) {
	if row < 1 || row > len(rt.entries) {
		return savefile.ReputationEntry{}, false
	}
	return rt.entries[row-1], true
}

// Selected returns the entry under the cursor
func (rt *ReputationTable) Selected() (savefile.ReputationEntry, bool) {
	row, _ := rt.table.GetSelection()
	return rt.entryAt(row)
}

// GetView returns the table primitive
func (rt *ReputationTable) GetView() *tview.Table {
	return rt.table
}

// ReputationDialog edits the faction name and value of one entry
type ReputationDialog struct {
	form     *tview.Form
	entry    savefile.ReputationEntry
	callback func(line int, faction string, value int)
}

// NewReputationDialog creates a dialog prefilled with entry
func NewReputationDialog(entry savefile.ReputationEntry, callback func(line int, faction string, value int), cancel func()) *ReputationDialog {
	rd := &ReputationDialog{
		form:     theme.NewForm(),
		entry:    entry,
		callback: callback,
	}

	rd.form.SetTitle(" Edit Reputation ")
	rd.form.SetTitleAlign(tview.AlignCenter)

	rd.form.AddInputField("Faction:", entry.Faction, 30, nil, nil)
	rd.form.AddInputField("Value:", strconv.Itoa(entry.Value), 12, acceptInteger, nil)

	rd.form.AddButton("OK", rd.submit)
	rd.form.AddButton("Cancel", func() {
		if cancel != nil {
			cancel()
		}
	})
	rd.form.SetFocus(1)
	return rd
}

// acceptInteger allows a leading minus sign while typing
func acceptInteger(text string, lastChar rune) bool {
	if text == "" || text == "-" {
		return true
	}
	_, err := strconv.Atoi(text)
	return err == nil
}

func (rd *ReputationDialog) submit() {
	faction := rd.form.GetFormItem(0).(*tview.InputField).GetText()
	value, err := strconv.Atoi(rd.form.GetFormItem(1).(*tview.InputField).GetText())
	if err != nil || faction == "" {
		rd.form.SetFocus(1)
		rd.form.SetBorderColor(tcell.ColorRed)
		return
	}
	if rd.callback != nil {
		rd.callback(rd.entry.Line, faction, value)
	}
}

// GetView returns the dialog centered on the screen
func (rd *ReputationDialog) GetView() tview.Primitive {
	return centered(rd.form, 50, 9)
}

// GetForm returns the internal form component
func (rd *ReputationDialog) GetForm() *tview.Form {
	return rd.form
}

// SetDoneFunc sets the function to call when ESC is pressed
func (rd *ReputationDialog) SetDoneFunc(handler func()) InputDialog {
	rd.form.SetCancelFunc(handler)
	return rd
}
