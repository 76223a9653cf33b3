package components

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"skyedit/internal/savefile"
	"skyedit/internal/theme"
)

// ShipPanel shows the owned ships as a list with a detail card for the
// selected one
type ShipPanel struct {
	list      *tview.List
	card      *tview.TextView
	wrapper   *tview.Flex
	ships     []savefile.ShipRecord
	onPreview func(savefile.ShipRecord)
}

// NewShipPanel creates the ship panel. onPreview runs when Enter is pressed
// on a ship.
func NewShipPanel(onPreview func(savefile.ShipRecord)) *ShipPanel {
	sp := &ShipPanel{
		list:      theme.NewList(),
		card:      theme.NewPanelView(),
		onPreview: onPreview,
	}

	sp.list.SetTitle(" Ships ")
	sp.list.SetTitleAlign(tview.AlignLeft)
	sp.list.ShowSecondaryText(true)
	sp.list.SetChangedFunc(func(index int, _, _ string, _ rune) {
		sp.showCard(index)
	})
	sp.list.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		if index >= 0 && index < len(sp.ships) && sp.onPreview != nil {
			sp.onPreview(sp.ships[index])
		}
	})

	sp.card.SetTitle(" Ship ")
	sp.card.SetTitleAlign(tview.AlignLeft)

	sp.wrapper = tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(sp.list, 0, 1, true).
		AddItem(sp.card, 0, 1, false)

	return sp
}

// SetShips replaces the listed ships
func (sp *ShipPanel) SetShips(ships []savefile.ShipRecord) {
	sp.ships = ships
	sp.list.Clear()

	if len(ships) == 0 {
		sp.card.SetText("[::d]No ships found[-:-:-]")
		return
	}

	for _, ship := range ships {
		sp.list.AddItem(tview.Escape(ship.DisplayName()), tview.Escape(ship.Model), 0, nil)
	}
	sp.showCard(0)
}

func (sp *ShipPanel) showCard(index int) {
	if index < 0 || index >= len(sp.ships) {
		sp.card.Clear()
		return
	}
	sp.card.SetText(ShipCard(sp.ships[index]))
	sp.card.ScrollToBeginning()
}

// ShipCard renders the detail text for ship
func ShipCard(ship savefile.ShipRecord) string {
	var info strings.Builder
	info.WriteString(fmt.Sprintf("[yellow]%s[-]\n\n", tview.Escape(ship.DisplayName())))
	info.WriteString(fmt.Sprintf("Model: %s\n", tview.Escape(ship.Model)))

	if ship.Thumbnail != "" {
		info.WriteString(fmt.Sprintf("Thumbnail: %s\n", tview.Escape(ship.Thumbnail)))
	}
	if ship.ImagePath != "" {
		info.WriteString(fmt.Sprintf("Image: %s\n", tview.Escape(ship.ImagePath)))
		info.WriteString("\n[::d]Enter to preview[-:-:-]\n")
	}

	if len(ship.Outfits) > 0 {
		info.WriteString(fmt.Sprintf("\n[cyan]Outfits (%d)[-]\n", len(ship.Outfits)))
		for _, outfit := range ship.Outfits {
			info.WriteString("  " + tview.Escape(outfit) + "\n")
		}
	}
	return info.String()
}

// Selected returns the ship under the cursor
func (sp *ShipPanel) Selected() (savefile.ShipRecord, bool) {
	index := sp.list.GetCurrentItem()
	if index < 0 || index >= len(sp.ships) {
		return savefile.ShipRecord{}, false
	}
	return sp.ships[index], true
}

// GetList returns the list for focus handling
func (sp *ShipPanel) GetList() *tview.List {
	return sp.list
}

// GetWrapper returns the panel layout
func (sp *ShipPanel) GetWrapper() *tview.Flex {
	return sp.wrapper
}
