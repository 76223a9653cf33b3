package theme

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
)

// DialogColors defines color scheme for dialogs, forms and modals
type DialogColors struct {
	Background tcell.Color
	Foreground tcell.Color
	Border     tcell.Color
	Title      tcell.Color
	SelectedBg tcell.Color
	SelectedFg tcell.Color
	ButtonBg   tcell.Color
	ButtonFg   tcell.Color
	FieldBg    tcell.Color // Input field background
	FieldFg    tcell.Color // Input field text
}

// StatusColors defines color scheme for the status bar
type StatusColors struct {
	Background tcell.Color
	Foreground tcell.Color
	ErrorFg    tcell.Color
	WarningFg  tcell.Color
	SuccessFg  tcell.Color
	DirtyFg    tcell.Color // Unsaved changes marker
}

// PanelColors defines color scheme for list and table panels
type PanelColors struct {
	Background tcell.Color
	Foreground tcell.Color
	Border     tcell.Color
	Title      tcell.Color
	HeaderBg   tcell.Color
	HeaderFg   tcell.Color
	Negative   tcell.Color // Hostile reputation values
	Positive   tcell.Color // Friendly reputation values
}

// Theme defines all theming properties
type Theme interface {
	// Name returns the theme name
	Name() string

	DialogColors() DialogColors
	StatusColors() StatusColors
	PanelColors() PanelColors
}

// ThemeManager manages theme selection
type ThemeManager struct {
	currentTheme Theme
	themes       map[string]Theme
}

// NewThemeManager creates a theme manager with the built-in themes
func NewThemeManager() *ThemeManager {
	tm := &ThemeManager{
		themes: make(map[string]Theme),
	}

	tm.RegisterTheme(NewClassicTheme())
	tm.RegisterTheme(NewMonoTheme())
	tm.SetTheme("classic")

	return tm
}

// RegisterTheme registers a new theme
func (tm *ThemeManager) RegisterTheme(theme Theme) {
	tm.themes[theme.Name()] = theme
}

// SetTheme sets the current theme by name
func (tm *ThemeManager) SetTheme(name string) error {
	if theme, exists := tm.themes[name]; exists {
		tm.currentTheme = theme
		return nil
	}
	return fmt.Errorf("theme '%s' not found", name)
}

// Current returns the current theme
func (tm *ThemeManager) Current() Theme {
	return tm.currentTheme
}

// Available returns the sorted list of theme names
func (tm *ThemeManager) Available() []string {
	names := make([]string, 0, len(tm.themes))
	for name := range tm.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultThemeManager = NewThemeManager()

// Current returns the current theme from the global manager
func Current() Theme {
	return defaultThemeManager.Current()
}

// SetTheme selects the global theme by name
func SetTheme(name string) error {
	return defaultThemeManager.SetTheme(name)
}

// Available lists the global theme names
func Available() []string {
	return defaultThemeManager.Available()
}
