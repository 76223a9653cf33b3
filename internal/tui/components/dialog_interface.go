package components

import "github.com/rivo/tview"

// InputDialog defines the interface that all input dialogs must implement
// This provides a consistent way for the TUI to handle different types of input dialogs
type InputDialog interface {
	// GetView returns the main view component for display
	GetView() tview.Primitive

	// GetForm returns the underlying form component for focus management
	GetForm() *tview.Form

	// SetDoneFunc sets the function to call when the dialog should be closed (ESC key, etc.)
	SetDoneFunc(handler func()) InputDialog
}

// centered wraps p in proportional spacers with a fixed width and height
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false). // Top spacer (proportional)
		AddItem(tview.NewFlex().
			AddItem(nil, 0, 1, false). // Left spacer (proportional)
			AddItem(p, width, 0, true).
			AddItem(nil, 0, 1, false), height, 0, true).
		AddItem(nil, 0, 1, false) // Bottom spacer (proportional)
}
