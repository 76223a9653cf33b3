package components

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rivo/tview"

	"skyedit/internal/theme"
)

// MessageKind selects the color of a status message
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// StatusComponent manages the bottom status bar
type StatusComponent struct {
	wrapper *tview.TextView
	file    string
	dirty   bool
	message string
	kind    MessageKind
	hints   string
}

// NewStatusComponent creates a new status bar component
func NewStatusComponent() *StatusComponent {
	statusBar := theme.NewStatusBar().
		SetTextAlign(tview.AlignLeft).
		SetWrap(false)

	sc := &StatusComponent{wrapper: statusBar}
	sc.UpdateStatus()
	return sc
}

// GetWrapper returns the status bar TextView
func (sc *StatusComponent) GetWrapper() *tview.TextView {
	return sc.wrapper
}

// SetFile sets the open save file and whether it has unsaved edits
func (sc *StatusComponent) SetFile(path string, dirty bool) {
	sc.file = path
	sc.dirty = dirty
	sc.UpdateStatus()
}

// SetMessage shows a one-line message until the next call
func (sc *StatusComponent) SetMessage(kind MessageKind, message string) {
	sc.kind = kind
	sc.message = message
	sc.UpdateStatus()
}

// SetHints sets the key help shown at the end of the bar
func (sc *StatusComponent) SetHints(hints []string) {
	sc.hints = strings.Join(hints, "  ")
	sc.UpdateStatus()
}

// Text returns the status bar contents with color tags
func (sc *StatusComponent) Text() string {
	colors := theme.Current().StatusColors()
	var statusText strings.Builder

	statusText.WriteString(" ")
	if sc.file == "" {
		statusText.WriteString("No file open")
	} else {
		statusText.WriteString(tview.Escape(filepath.Base(sc.file)))
		if sc.dirty {
			statusText.WriteString(fmt.Sprintf(" [%s]*modified*[-]", colors.DirtyFg.String()))
		}
	}

	if sc.message != "" {
		color := colors.Foreground
		switch sc.kind {
		case MessageSuccess:
			color = colors.SuccessFg
		case MessageWarning:
			color = colors.WarningFg
		case MessageError:
			color = colors.ErrorFg
		}
		statusText.WriteString(fmt.Sprintf(" | [%s]%s[-]", color.String(), tview.Escape(sc.message)))
	}

	if sc.hints != "" {
		statusText.WriteString(" | " + tview.Escape(sc.hints))
	}
	return statusText.String()
}

// UpdateStatus updates the status bar display
func (sc *StatusComponent) UpdateStatus() {
	sc.wrapper.SetText(sc.Text())
}
