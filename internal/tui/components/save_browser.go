package components

import (
	"time"

	"github.com/rivo/tview"

	"skyedit/internal/saves"
	"skyedit/internal/theme"
)

// SaveBrowser lists the save files of a folder
type SaveBrowser struct {
	list     *tview.List
	entries  []saves.Entry
	onSelect func(saves.Entry)
	now      func() time.Time
}

// NewSaveBrowser creates the browser. onSelect runs when Enter is pressed
// on a save.
func NewSaveBrowser(onSelect func(saves.Entry)) *SaveBrowser {
	sb := &SaveBrowser{
		list:     theme.NewList(),
		onSelect: onSelect,
		now:      time.Now,
	}
	sb.list.SetTitleAlign(tview.AlignLeft)
	sb.list.ShowSecondaryText(true)
	sb.list.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		if index >= 0 && index < len(sb.entries) && sb.onSelect != nil {
			sb.onSelect(sb.entries[index])
		}
	})
	sb.SetFolder("")
	return sb
}

// SetFolder sets the title
func (sb *SaveBrowser) SetFolder(dir string) {
	if dir == "" {
		sb.list.SetTitle(" Saves ")
		return
	}
	sb.list.SetTitle(" Saves: " + tview.Escape(dir) + " ")
}

// SetEntries replaces the listed saves, keeping the cursor on the same file
// when it is still present
func (sb *SaveBrowser) SetEntries(entries []saves.Entry) {
	current, hasCurrent := sb.Selected()
	sb.entries = entries
	sb.list.Clear()

	now := sb.now()
	selected := 0
	for i, entry := range entries {
		sb.list.AddItem(tview.Escape(entry.Name), entry.Describe(now), 0, nil)
		if hasCurrent && entry.Path == current.Path {
			selected = i
		}
	}
	if len(entries) > 0 {
		sb.list.SetCurrentItem(selected)
	}
}

// Entries returns the listed saves
func (sb *SaveBrowser) Entries() []saves.Entry {
	return sb.entries
}

// Selected returns the save under the cursor
func (sb *SaveBrowser) Selected() (saves.Entry, bool) {
	index := sb.list.GetCurrentItem()
	if index < 0 || index >= len(sb.entries) {
		return saves.Entry{}, false
	}
	return sb.entries[index], true
}

// GetList returns the list primitive
func (sb *SaveBrowser) GetList() *tview.List {
	return sb.list
}
