package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"skyedit/internal/components"
	"skyedit/internal/config"
	"skyedit/internal/database"
	"skyedit/internal/log"
	"skyedit/internal/saves"
	"skyedit/internal/session"
	"skyedit/internal/theme"
	"skyedit/internal/thumbnail"
	ui "skyedit/internal/tui/components"
)

const (
	pageBrowser = "browser"
	pageEditor  = "editor"
	pageDialog  = "dialog"
	pageModal   = "modal"
)

// Options configures the editor application
type Options struct {
	Config config.Config
	// History backs the recent files list; nil disables it
	History database.Database
	// Protocol is used to preview ship thumbnails
	Protocol thumbnail.Protocol
}

// SkyEditApp represents the main tview application
type SkyEditApp struct {
	app  *tview.Application
	opts Options

	// Layout
	pages  *tview.Pages
	root   *tview.Flex
	editor *tview.Grid

	// UI Components
	browser    *ui.SaveBrowser
	pilotForm  *ui.PilotForm
	reputation *ui.ReputationTable
	ships      *ui.ShipPanel
	status     *ui.StatusComponent

	// Input handling
	shortcuts    *components.ShortcutManager
	modalVisible bool

	// State
	session *session.Session
	watcher *saves.Watcher
	// savedMod is the modification time of the file after our last save
	savedMod time.Time
}

// NewApplication creates and configures the tview application
func NewApplication(opts Options) *SkyEditApp {
	if opts.Config.Theme != "" {
		if err := theme.SetTheme(opts.Config.Theme); err != nil {
			log.Warn("unknown theme, using default", "theme", opts.Config.Theme, "available", theme.Available())
		}
	}

	sa := &SkyEditApp{
		app:       tview.NewApplication(),
		opts:      opts,
		shortcuts: components.NewShortcutManager(),
	}

	sa.setupUI()
	sa.setupShortcuts()
	return sa
}

// setupUI configures the user interface layout
func (sa *SkyEditApp) setupUI() {
	sa.status = ui.NewStatusComponent()
	sa.browser = ui.NewSaveBrowser(func(entry saves.Entry) {
		sa.openFile(entry.Path)
	})
	sa.pilotForm = ui.NewPilotForm(sa.pilotChanged)
	sa.pilotForm.AddButton("Save", sa.save)
	sa.pilotForm.AddButton("Reload", sa.reload)
	sa.pilotForm.AddButton("Back", sa.back)
	sa.reputation = ui.NewReputationTable(sa.editReputation)
	sa.ships = ui.NewShipPanel(sa.previewShip)

	// Pilot form and ships on the left, reputation on the right
	sa.editor = tview.NewGrid().
		SetRows(13, 0).
		SetColumns(0, 40).
		SetBorders(false)
	sa.editor.AddItem(sa.pilotForm.GetForm(), 0, 0, 1, 1, 0, 0, true)
	sa.editor.AddItem(sa.ships.GetWrapper(), 1, 0, 1, 1, 0, 0, false)
	sa.editor.AddItem(sa.reputation.GetView(), 0, 1, 2, 1, 0, 0, false)

	sa.pages = tview.NewPages()
	sa.pages.AddPage(pageBrowser, sa.browser.GetList(), true, true)
	sa.pages.AddPage(pageEditor, sa.editor, true, false)

	sa.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(sa.pages, 0, 1, true).
		AddItem(sa.status.GetWrapper(), 1, 0, false)

	sa.app.SetRoot(sa.root, true)
}

// setupShortcuts registers the global key bindings
func (sa *SkyEditApp) setupShortcuts() {
	sa.shortcuts.RegisterShortcut("Ctrl+S", "Save", sa.save)
	sa.shortcuts.RegisterShortcut("Ctrl+R", "Reload", sa.reload)
	sa.shortcuts.RegisterShortcut("Ctrl+O", "Recent", sa.showRecentFiles)
	sa.shortcuts.RegisterShortcut("Ctrl+Q", "Quit", sa.quit)
	sa.shortcuts.RegisterShortcut("Esc", "Back", sa.back)
	sa.shortcuts.RegisterShortcut("F2", "Pilot", func() { sa.focusEditor(sa.pilotForm.GetForm()) })
	sa.shortcuts.RegisterShortcut("F3", "Reputation", func() { sa.focusEditor(sa.reputation.GetView()) })
	sa.shortcuts.RegisterShortcut("F4", "Ships", func() { sa.focusEditor(sa.ships.GetList()) })
	sa.shortcuts.RegisterShortcut("F5", "Refresh", sa.loadFolder)
	sa.status.SetHints(sa.shortcuts.Help())

	sa.app.SetInputCapture(sa.handleKeyEvent)
}

// handleKeyEvent routes keys to the shortcut manager unless a dialog is open
func (sa *SkyEditApp) handleKeyEvent(event *tcell.EventKey) *tcell.EventKey {
	if sa.modalVisible {
		return event
	}
	if sa.shortcuts.HandleKeyEvent(event) {
		return nil
	}
	return event
}

// Run starts the TUI application, opening initialFile first when set
func (sa *SkyEditApp) Run(initialFile string) error {
	sa.loadFolder()
	sa.startWatcher()
	defer sa.stopWatcher()

	if initialFile != "" {
		sa.openFile(initialFile)
	}
	return sa.app.Run()
}

// quit shuts down the application, asking first when edits are unsaved
func (sa *SkyEditApp) quit() {
	if sa.session != nil && sa.session.Dirty() {
		sa.confirm("Quit without saving changes?", "Quit", sa.app.Stop)
		return
	}
	sa.app.Stop()
}

func (sa *SkyEditApp) focusEditor(p tview.Primitive) {
	if sa.session == nil {
		return
	}
	sa.app.SetFocus(p)
}
