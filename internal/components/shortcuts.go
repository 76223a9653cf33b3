package components

import (
	"sort"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Shortcut is a registered key binding
type Shortcut struct {
	Keys        string
	Description string
	callback    func()
}

// ShortcutManager maps key strings like "ctrl+s" to callbacks
type ShortcutManager struct {
	shortcuts map[string]Shortcut
	mutex     sync.RWMutex
}

// NewShortcutManager creates a new shortcut manager
func NewShortcutManager() *ShortcutManager {
	return &ShortcutManager{
		shortcuts: make(map[string]Shortcut),
	}
}

// RegisterShortcut registers a shortcut with its callback
func (sm *ShortcutManager) RegisterShortcut(shortcut, description string, callback func()) {
	if shortcut == "" {
		return
	}

	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	sm.shortcuts[normalizeShortcut(shortcut)] = Shortcut{
		Keys:        shortcut,
		Description: description,
		callback:    callback,
	}
}

// UnregisterShortcut removes a shortcut
func (sm *ShortcutManager) UnregisterShortcut(shortcut string) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	delete(sm.shortcuts, normalizeShortcut(shortcut))
}

// HandleKeyEvent runs the callback bound to event. It returns true when the
// event was handled.
func (sm *ShortcutManager) HandleKeyEvent(event *tcell.EventKey) bool {
	key := keyEventToString(event)
	if key == "" {
		return false
	}

	sm.mutex.RLock()
	shortcut, exists := sm.shortcuts[key]
	sm.mutex.RUnlock()

	if !exists || shortcut.callback == nil {
		return false
	}
	shortcut.callback()
	return true
}

// Help returns "Keys Description" pairs sorted by key for the status line
func (sm *ShortcutManager) Help() []string {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	help := make([]string, 0, len(sm.shortcuts))
	for _, shortcut := range sm.shortcuts {
		help = append(help, shortcut.Keys+" "+shortcut.Description)
	}
	sort.Strings(help)
	return help
}

var specialKeys = map[tcell.Key]string{
	tcell.KeyF1:         "f1",
	tcell.KeyF2:         "f2",
	tcell.KeyF3:         "f3",
	tcell.KeyF4:         "f4",
	tcell.KeyF5:         "f5",
	tcell.KeyF6:         "f6",
	tcell.KeyF7:         "f7",
	tcell.KeyF8:         "f8",
	tcell.KeyF9:         "f9",
	tcell.KeyF10:        "f10",
	tcell.KeyF11:        "f11",
	tcell.KeyF12:        "f12",
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "backtab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pageup",
	tcell.KeyPgDn:       "pagedown",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
}

// keyEventToString converts a tcell.EventKey to a shortcut string
func keyEventToString(event *tcell.EventKey) string {
	var parts []string
	key := event.Key()

	if name, ok := specialKeys[key]; ok {
		if event.Modifiers()&tcell.ModCtrl != 0 {
			parts = append(parts, "ctrl")
		}
		if event.Modifiers()&tcell.ModAlt != 0 {
			parts = append(parts, "alt")
		}
		if event.Modifiers()&tcell.ModShift != 0 {
			parts = append(parts, "shift")
		}
		return strings.Join(append(parts, name), "+")
	}

	// Control letters arrive as their own key codes
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		if event.Modifiers()&tcell.ModAlt != 0 {
			parts = append(parts, "alt")
		}
		letter := string(rune('a' + key - tcell.KeyCtrlA))
		return strings.Join(append([]string{"ctrl"}, append(parts, letter)...), "+")
	}

	if key == tcell.KeyRune {
		if event.Modifiers()&tcell.ModAlt != 0 {
			parts = append(parts, "alt")
		}
		return strings.Join(append(parts, strings.ToLower(string(event.Rune()))), "+")
	}

	return ""
}

// normalizeShortcut converts a shortcut string to the form keyEventToString produces
func normalizeShortcut(shortcut string) string {
	hasCtrl, hasAlt, hasShift, key := ParseShortcut(shortcut)

	var parts []string
	if hasCtrl {
		parts = append(parts, "ctrl")
	}
	if hasAlt {
		parts = append(parts, "alt")
	}
	if hasShift {
		parts = append(parts, "shift")
	}
	if key == "escape" {
		key = "esc"
	}
	return strings.Join(append(parts, key), "+")
}

// ParseShortcut parses a shortcut string (like "Ctrl+O") and returns the constituent parts
func ParseShortcut(shortcut string) (hasCtrl, hasAlt, hasShift bool, key string) {
	parts := strings.Split(strings.ToLower(shortcut), "+")

	for _, part := range parts {
		part = strings.TrimSpace(part)
		switch part {
		case "ctrl":
			hasCtrl = true
		case "alt":
			hasAlt = true
		case "shift":
			hasShift = true
		default:
			key = part
		}
	}

	return
}
