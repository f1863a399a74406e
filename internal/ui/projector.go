package ui

import (
	"time"

	"github.com/rivo/tview"

	"github.com/vcrini/lazynechronica/internal/catalog"
	"github.com/vcrini/lazynechronica/internal/nav"
	"github.com/vcrini/lazynechronica/internal/settings"
)

const clickFeedbackDelay = 200 * time.Millisecond

// sync projects the controller state onto the widget tree. A nil focus picks
// the natural focus for the state.
func (ui *tviewUI) sync(focus tview.Primitive) {
	s := ui.ctrl.State()
	ui.pages.SwitchToPage(s.Top.String())
	ui.dbPages.SwitchToPage(s.Database.String())

	ui.dollPanel.Clear()
	ui.dollPanel.AddItem(ui.dollList, 34, 0, true)
	if s.Dropdown != nav.NoDropdown && s.Dropdown.Owner() == nav.Doll {
		ui.fillDropdown(s.Dropdown)
		ui.dollPanel.AddItem(ui.dollDrop, 32, 0, false)
	}
	ui.dollPanel.AddItem(nil, 0, 1, false)

	ui.necroLeft.Clear()
	ui.necroLeft.AddItem(ui.necroList, len(ui.catalog.Necromancer.Buttons)+3, 0, true)
	if s.Dropdown == nav.EnemyData {
		ui.necroLeft.AddItem(ui.enemyList, 0, 1, false)
	} else {
		ui.necroLeft.AddItem(nil, 0, 1, false)
	}
	ui.necroPanel.Clear()
	ui.necroPanel.AddItem(ui.necroLeft, 34, 0, true)
	if s.ViewerVisible {
		ui.necroPanel.AddItem(ui.viewer, 0, 1, false)
	} else {
		ui.necroPanel.AddItem(nil, 0, 1, false)
	}

	if focus == nil {
		focus = ui.defaultFocus(s)
	}
	ui.app.SetFocus(focus)
	ui.refreshStatus()
}

func (ui *tviewUI) defaultFocus(s nav.State) tview.Primitive {
	switch s.Top {
	case nav.Options:
		return ui.optionsForm
	case nav.Database:
	default:
		return ui.mainMenu
	}
	switch s.Database {
	case nav.Doll:
		if s.Dropdown != nav.NoDropdown {
			return ui.dollDrop
		}
		return ui.dollList
	case nav.Necromancer:
		switch {
		case s.ViewerVisible:
			return ui.viewer
		case s.Dropdown == nav.EnemyData:
			return ui.enemyList
		}
		return ui.necroList
	}
	return ui.categoriesList
}

// focusables lists the visible panels in tab order.
func (ui *tviewUI) focusables() []tview.Primitive {
	s := ui.ctrl.State()
	switch s.Top {
	case nav.Main:
		return []tview.Primitive{ui.mainMenu}
	case nav.Options:
		return []tview.Primitive{ui.optionsForm}
	}
	switch s.Database {
	case nav.Doll:
		if s.Dropdown != nav.NoDropdown {
			return []tview.Primitive{ui.dollList, ui.dollDrop}
		}
		return []tview.Primitive{ui.dollList}
	case nav.Necromancer:
		out := []tview.Primitive{ui.necroList}
		if s.Dropdown == nav.EnemyData {
			out = append(out, ui.enemyList)
		}
		if s.ViewerVisible {
			out = append(out, ui.viewer)
		}
		return out
	}
	return []tview.Primitive{ui.categoriesList}
}

func (ui *tviewUI) focusNext(step int) {
	order := ui.focusables()
	current := ui.app.GetFocus()
	idx := 0
	for i, p := range order {
		if p == current || (p == ui.viewer && ui.viewer.HasFocus()) {
			idx = i
			break
		}
	}
	idx = (idx + step + len(order)) % len(order)
	ui.app.SetFocus(order[idx])
	ui.refreshStatus()
}

func (ui *tviewUI) dropdownItems(d nav.Dropdown) []string {
	switch d {
	case nav.Positions:
		return ui.catalog.Doll.Positions
	case nav.ReinforcementParts:
		return ui.catalog.Doll.ReinforcementParts
	case nav.Classes:
		return ui.catalog.Doll.Classes
	}
	return nil
}

func (ui *tviewUI) fillDropdown(d nav.Dropdown) {
	items := ui.dropdownItems(d)
	ui.dropItems = items
	ui.dollDrop.Clear()
	for _, item := range items {
		ui.dollDrop.AddItem(catalog.Label(item), "", 0, nil)
	}
	titles := map[nav.Dropdown]string{
		nav.Positions:          " Positions ",
		nav.ReinforcementParts: " Reinforcement Parts ",
		nav.Classes:            " Classes ",
	}
	ui.dollDrop.SetTitle(titles[d])
}

func (ui *tviewUI) pickDropdownItem(index int) {
	if index < 0 || index >= len(ui.dropItems) {
		return
	}
	label := catalog.Label(ui.dropItems[index])
	ui.ctrl.SelectDropdownItem(label)
	ui.flashItem(ui.dollDrop, index, label)
	ui.refreshStatus()
}

// flashItem highlights a list entry and restores it after a short delay.
func (ui *tviewUI) flashItem(list *tview.List, index int, label string) {
	list.SetItemText(index, "[black:gold]"+tview.Escape(label)+"[-:-]", "")
	time.AfterFunc(clickFeedbackDelay, func() {
		ui.app.QueueUpdateDraw(func() {
			if index < list.GetItemCount() {
				text, _ := list.GetItemText(index)
				if text != label {
					list.SetItemText(index, label, "")
				}
			}
		})
	})
}

// windowSize maps the persisted display settings onto terminal cells. One
// cell stands for 8x16 pixels. full reports that the shell fills the screen.
func windowSize(s settings.Settings) (cols, rows int, full bool) {
	if s.Fullscreen() {
		return 0, 0, true
	}
	w, h, ok := settings.ParseResolution(s.Resolution)
	if !ok {
		w, h, _ = settings.ParseResolution(settings.Defaults().Resolution)
	}
	return w / 8, h / 16, false
}

func (ui *tviewUI) applySettings() {
	cols, rows, full := windowSize(ui.settings)
	var content tview.Primitive = ui.shell
	if !full {
		ui.shell.SetBorder(true).SetTitle(" " + ui.settings.Resolution + " ")
		content = tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(tview.NewFlex().SetDirection(tview.FlexColumn).
				AddItem(nil, 0, 1, false).
				AddItem(ui.shell, cols, 0, true).
				AddItem(nil, 0, 1, false), rows, 0, true).
			AddItem(nil, 0, 1, false)
	} else {
		ui.shell.SetBorder(false).SetTitle("")
	}
	ui.root.RemovePage("shell")
	ui.root.AddPage("shell", content, true, true)
	ui.root.SendToBack("shell")
}
