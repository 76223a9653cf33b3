package components

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestKeyEventToString(t *testing.T) {
	tests := []struct {
		name     string
		event    *tcell.EventKey
		expected string
	}{
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), "ctrl+s"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "esc"},
		{"function key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "f5"},
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), "q"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "alt+x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, keyEventToString(tt.event))
		})
	}
}

func TestShortcutManager_HandleKeyEvent(t *testing.T) {
	sm := NewShortcutManager()
	saved := 0
	sm.RegisterShortcut("Ctrl+S", "Save", func() { saved++ })

	assert.True(t, sm.HandleKeyEvent(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)))
	assert.False(t, sm.HandleKeyEvent(tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl)))
	assert.Equal(t, 1, saved)

	sm.UnregisterShortcut("ctrl+s")
	assert.False(t, sm.HandleKeyEvent(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)))
}

func TestShortcutManager_Help(t *testing.T) {
	sm := NewShortcutManager()
	sm.RegisterShortcut("Esc", "Back", func() {})
	sm.RegisterShortcut("Ctrl+S", "Save", func() {})

	assert.Equal(t, []string{"Ctrl+S Save", "Esc Back"}, sm.Help())
}

func TestParseShortcut(t *testing.T) {
	ctrl, alt, shift, key := ParseShortcut("Ctrl+Shift+P")
	assert.True(t, ctrl)
	assert.False(t, alt)
	assert.True(t, shift)
	assert.Equal(t, "p", key)
}
