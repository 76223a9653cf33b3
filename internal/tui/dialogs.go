package tui

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"skyedit/internal/log"
	"skyedit/internal/savefile"
	"skyedit/internal/theme"
	"skyedit/internal/thumbnail"
	ui "skyedit/internal/tui/components"
)

// Preview size in pixels
const (
	previewWidth  = 480
	previewHeight = 360
)

// showMessage displays a modal with a single OK button
func (sa *SkyEditApp) showMessage(title, text string) {
	modal := theme.NewModal().
		SetText(title + "\n\n" + text).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			sa.closeModal()
		})

	sa.modalVisible = true
	sa.pages.AddPage(pageModal, modal, true, true)
	sa.app.SetFocus(modal)
}

// confirm asks before running action
func (sa *SkyEditApp) confirm(text, label string, action func()) {
	modal := theme.NewModal().
		SetText(text).
		AddButtons([]string{label, "Cancel"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			sa.closeModal()
			if buttonLabel == label {
				action()
			}
		})

	sa.modalVisible = true
	sa.pages.AddPage(pageModal, modal, true, true)
	sa.app.SetFocus(modal)
}

// closeModal closes the currently displayed modal
func (sa *SkyEditApp) closeModal() {
	sa.pages.RemovePage(pageModal)
	sa.modalVisible = sa.pages.HasPage(pageDialog)
	sa.restoreFocus()
}

// showDialog displays an input dialog over the editor
func (sa *SkyEditApp) showDialog(dialog ui.InputDialog) {
	sa.modalVisible = true
	sa.pages.AddPage(pageDialog, dialog.GetView(), true, true)
	sa.app.SetFocus(dialog.GetForm())
}

// closeDialog closes the current input dialog
func (sa *SkyEditApp) closeDialog() {
	sa.pages.RemovePage(pageDialog)
	sa.modalVisible = sa.pages.HasPage(pageModal)
	sa.restoreFocus()
}

func (sa *SkyEditApp) restoreFocus() {
	if sa.modalVisible {
		return
	}
	if sa.session != nil {
		sa.app.SetFocus(sa.pilotForm.GetForm())
		return
	}
	sa.app.SetFocus(sa.browser.GetList())
}

// previewShip suspends the UI and draws the ship thumbnail inline
func (sa *SkyEditApp) previewShip(ship savefile.ShipRecord) {
	if ship.ImagePath == "" {
		if sa.opts.Config.InstallPath == "" {
			sa.status.SetMessage(ui.MessageWarning, msgNoInstallPath)
			return
		}
		sa.status.SetMessage(ui.MessageInfo, "No thumbnail for "+ship.DisplayName())
		return
	}
	if sa.opts.Protocol == thumbnail.ProtocolNone {
		sa.status.SetMessage(ui.MessageWarning, thumbnail.ErrNoProtocol.Error())
		return
	}

	var renderErr error
	sa.app.Suspend(func() {
		fmt.Print("\033[2J\033[H")
		fmt.Printf("%s (%s)\n\n", ship.DisplayName(), ship.Model)
		renderErr = thumbnail.Render(os.Stdout, ship.ImagePath, previewWidth, previewHeight, sa.opts.Protocol)
		if renderErr != nil {
			return
		}
		fmt.Print("\n\nPress Enter to return...")
		bufio.NewReader(os.Stdin).ReadString('\n')
	})

	if renderErr != nil {
		log.Warn("failed to preview ship", "model", ship.Model, "path", ship.ImagePath, "error", renderErr)
		if errors.Is(renderErr, thumbnail.ErrImageNotFound) {
			sa.status.SetMessage(ui.MessageWarning, "Image not found for spaceship: "+ship.Model)
			return
		}
		sa.status.SetMessage(ui.MessageError, renderErr.Error())
	}
}
