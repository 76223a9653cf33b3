package components

import (
	"github.com/rivo/tview"

	"skyedit/internal/theme"
)

// ModalItem is one choice in a ModalList
type ModalItem struct {
	Label  string
	Detail string
	Value  string
}

// ModalList represents a DOS-style modal list component
type ModalList struct {
	list     *tview.List
	title    string
	items    []ModalItem
	callback func(ModalItem)
	view     tview.Primitive
}

// NewModalList creates a new DOS-style modal list
func NewModalList(title string, items []ModalItem, callback func(ModalItem)) *ModalList {
	ml := &ModalList{
		title:    title,
		items:    items,
		callback: callback,
	}

	ml.setupComponents()
	return ml
}

// setupComponents initializes the modal and list components
func (ml *ModalList) setupComponents() {
	ml.list = theme.NewList()
	ml.list.SetTitle(" " + ml.title + " ")
	ml.list.SetTitleAlign(tview.AlignLeft)
	ml.list.ShowSecondaryText(true)

	for _, item := range ml.items {
		ml.list.AddItem(tview.Escape(item.Label), tview.Escape(item.Detail), 0, nil)
	}
	ml.list.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		if ml.callback != nil && index >= 0 && index < len(ml.items) {
			ml.callback(ml.items[index])
		}
	})

	// Two rows per item plus the border
	height := 2*len(ml.items) + 2
	if height > 20 {
		height = 20
	}
	ml.view = centered(ml.list, 70, height)
}

// GetView returns the centered list
func (ml *ModalList) GetView() tview.Primitive {
	return ml.view
}

// GetList returns the list for focus handling
func (ml *ModalList) GetList() *tview.List {
	return ml.list
}

// SetDoneFunc sets the function to call when ESC is pressed
func (ml *ModalList) SetDoneFunc(handler func()) *ModalList {
	ml.list.SetDoneFunc(handler)
	return ml
}
