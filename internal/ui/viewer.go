package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/vcrini/lazynechronica/internal/statblock"
)

// showEnemy is the controller's selection hook: load the record and lay the
// editor cells out as a form.
func (ui *tviewUI) showEnemy(id string) {
	r := ui.enemies.Load()
	ui.editor.Render(&r)
	ui.buildViewerForm()
	ui.log.Infof("showing statblock for %s", id)
}

func (ui *tviewUI) buildViewerForm() {
	f := ui.viewer
	f.Clear(true)
	if !ui.editor.HasRecord() {
		f.AddTextView("", noEnemyDataNotice, 0, 1, false, false)
		f.AddButton(backToEnemyData, ui.hideViewer)
		return
	}

	addCell := func(label string, c *statblock.Cell) {
		if c == nil {
			return
		}
		switch {
		case c.ReadOnly:
			f.AddTextView(label, tview.Escape(c.Get()), 0, 1, true, false)
		case c.Multiline:
			f.AddTextArea(label, c.Get(), 0, 5, 0, func(text string) { c.Set(text) })
		default:
			f.AddInputField(label, c.Get(), 0, nil, func(text string) { c.Set(text) })
		}
	}

	for _, key := range []statblock.FieldKey{
		statblock.FieldID,
		statblock.FieldName,
		statblock.FieldThreatBase,
		statblock.FieldThreatPerSpawnGroup,
		statblock.FieldMaxActionPoints,
	} {
		c := ui.editor.Cell(key)
		if c != nil {
			addCell(c.Label(), c)
		}
	}

	for i, m := range ui.editor.Maneuvers() {
		f.AddTextView("", fmt.Sprintf("[gold::b]Maneuver %d[-::-]", i+1), 0, 1, true, false)
		addCell("  ID", m.ID)
		addCell("  Timing", m.Timing)
		addCell("  Cost", m.Cost)
		addCell("  Range", m.Range)
		addCell("  Description", m.Description)
		if m.HasDamage() {
			addCell("  Base Damage", m.BaseDamage)
			addCell("  Effect", m.Effect)
			addCell("  Formula", m.Formula)
		}
	}

	if c := ui.editor.Cell(statblock.FieldFlavorText); c != nil {
		f.AddTextArea(c.Label(), c.Get(), 0, 12, 0, func(text string) { c.Set(text) })
	}
	f.AddButton("Save Changes", ui.saveStatblock)
	f.AddButton(backToEnemyData, ui.hideViewer)
	f.SetFocus(0)
}

func (ui *tviewUI) saveStatblock() {
	if !ui.ctrl.State().ViewerVisible {
		return
	}
	if _, err := ui.editor.CollectAndSave(); err != nil {
		ui.message = fmt.Sprintf("Error saving enemy data: %v", err)
	} else {
		ui.message = fmt.Sprintf("Enemy data saved to %s.", ui.enemies.Path())
	}
	ui.refreshStatus()
}

func (ui *tviewUI) hideViewer() {
	ui.ctrl.HideViewer()
	ui.sync(ui.enemyList)
}
