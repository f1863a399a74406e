package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/vcrini/diceroll"

	"github.com/vcrini/lazynechronica/internal/nav"
)

const defaultRoll = "1d10"

func (ui *tviewUI) handleGlobalKeys(ev *tcell.EventKey) *tcell.EventKey {
	focus := ui.app.GetFocus()
	focusIsInput := isTextEntry(focus)

	if ui.helpVisible {
		if ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && (ev.Rune() == '?' || ev.Rune() == 'q')) {
			ui.closeHelpOverlay()
			return nil
		}
		return ev
	}
	if ui.modalVisible {
		if ev.Key() == tcell.KeyEscape {
			ui.closeModal()
			ui.sync(nil)
			return nil
		}
		return ev
	}

	switch ev.Key() {
	case tcell.KeyCtrlC:
		ui.app.Stop()
		return nil
	case tcell.KeyEscape:
		ui.back()
		return nil
	case tcell.KeyCtrlS:
		if ui.ctrl.State().ViewerVisible {
			ui.saveStatblock()
			return nil
		}
	case tcell.KeyCtrlR:
		ui.openRollModal()
		return nil
	case tcell.KeyTAB:
		if ui.inForm() {
			return ev
		}
		ui.focusNext(1)
		return nil
	case tcell.KeyBacktab:
		if ui.inForm() {
			return ev
		}
		ui.focusNext(-1)
		return nil
	}

	if ev.Key() != tcell.KeyRune || focusIsInput {
		return ev
	}
	switch ev.Rune() {
	case '?':
		ui.openHelpOverlay(focus)
		return nil
	case 'q':
		ui.app.Stop()
		return nil
	}
	return ev
}

func isTextEntry(p tview.Primitive) bool {
	switch p.(type) {
	case *tview.InputField, *tview.TextArea, *tview.DropDown:
		return true
	}
	return false
}

func (ui *tviewUI) inForm() bool {
	return ui.viewer.HasFocus() || ui.optionsForm.HasFocus()
}

// back closes the innermost visible panel.
func (ui *tviewUI) back() {
	s := ui.ctrl.State()
	switch {
	case s.Top == nav.Options:
		ui.ctrl.ShowTopView(nav.Main)
	case s.Top != nav.Database:
		return
	case s.ViewerVisible:
		ui.ctrl.HideViewer()
	case s.Dropdown != nav.NoDropdown:
		ui.ctrl.ToggleDropdown(s.Dropdown)
	case s.Database != nav.MainCategories:
		ui.ctrl.ShowDatabaseMain()
	default:
		ui.ctrl.ShowTopView(nav.Main)
	}
	ui.sync(nil)
}

func (ui *tviewUI) openRollModal() {
	input := tview.NewInputField().SetLabel(" Dice ").SetFieldWidth(24)
	input.SetText(defaultRoll)
	input.SetBorder(true).SetTitle("Roll")
	returnFocus := ui.app.GetFocus()

	modal := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexColumn).
			AddItem(nil, 0, 1, false).
			AddItem(input, 42, 0, true).
			AddItem(nil, 0, 1, false), 3, 0, true).
		AddItem(nil, 0, 1, false)

	ui.modalVisible = true
	ui.modalName = "roll"
	ui.root.AddPage(ui.modalName, modal, true, true)
	ui.app.SetFocus(input)

	input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEsc {
			ui.closeModal()
			ui.app.SetFocus(returnFocus)
			return
		}
		if key != tcell.KeyEnter {
			return
		}
		msg, err := rollDice(input.GetText())
		if err != nil {
			ui.message = fmt.Sprintf("invalid dice expression: %v", err)
			ui.refreshStatus()
			return
		}
		ui.log.Infof("rolled %s", msg)
		ui.closeModal()
		ui.app.SetFocus(returnFocus)
		ui.refreshStatus()
	})
}

// rollDice rolls every expression of a batch such as "1d10" or "3x2d6" and
// returns one line per roll.
func rollDice(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		input = defaultRoll
	}
	exprs, err := diceroll.ExpandRollInput(input)
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		total, breakdown, err := diceroll.RollExpression(expr)
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("%s = %d (%s)", expr, total, breakdown))
	}
	return strings.Join(parts, "; "), nil
}

func (ui *tviewUI) openHelpOverlay(focus tview.Primitive) {
	if ui.helpVisible {
		return
	}
	ui.helpVisible = true
	ui.helpReturnFocus = focus

	text := tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	text.SetBorder(true).SetTitle("Help")
	text.SetText(ui.buildHelpContent())

	modal := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexColumn).
			AddItem(nil, 0, 1, false).
			AddItem(text, 0, 2, true).
			AddItem(nil, 0, 1, false), 0, 2, true).
		AddItem(nil, 0, 1, false)

	ui.root.AddPage("help", modal, true, true)
	ui.app.SetFocus(text)
}

func (ui *tviewUI) buildHelpContent() string {
	var b strings.Builder
	b.WriteString("LazyNechronica - shortcuts\n\n")

	s := ui.ctrl.State()
	panel := "Menu"
	var panelLines []string
	switch {
	case s.Top == nav.Options:
		panel = "Options"
		panelLines = []string{
			"- choose resolution and display mode, then Save Settings",
			"- windowed mode draws the shell in a box sized from the resolution",
		}
	case s.Top == nav.Database && s.ViewerVisible:
		panel = "Statblock"
		panelLines = []string{
			"- edit fields in place, tab / shift+tab moves between them",
			"- ctrl+s or Save Changes: write the enemy data file",
			"- flavor text keeps the Description: / Tactics: / Roleplay: headers",
		}
	case s.Top == nav.Database && s.Database == nav.Doll:
		panel = "Doll"
		panelLines = []string{
			"- enter on Positions / Reinforcement Parts / Classes toggles the list",
		}
	case s.Top == nav.Database && s.Database == nav.Necromancer:
		panel = "Necromancer"
		panelLines = []string{
			"- enter on Enemy Data toggles the enemy list",
			"- enter on an enemy opens its statblock",
		}
	case s.Top == nav.Database:
		panel = "Database"
		panelLines = []string{"- enter on Doll or Necromancer opens the section"}
	default:
		panelLines = []string{"- enter on Database or Options"}
	}

	b.WriteString("[yellow]" + panel + "[-]\n")
	for _, line := range panelLines {
		b.WriteString(line + "\n")
	}

	b.WriteString("\n[yellow]Global[-]\n")
	b.WriteString("- q: quit\n")
	b.WriteString("- ?: open/close help\n")
	b.WriteString("- esc: back one level\n")
	b.WriteString("- tab / shift+tab: change focus\n")
	b.WriteString("- ctrl+r: roll dice (e.g. 1d10, 2d6+1)\n")
	b.WriteString("\nEsc/?/q to close")
	return b.String()
}

func (ui *tviewUI) closeHelpOverlay() {
	if !ui.helpVisible {
		return
	}
	ui.helpVisible = false
	ui.root.RemovePage("help")
	if ui.helpReturnFocus != nil {
		ui.app.SetFocus(ui.helpReturnFocus)
	}
}

func (ui *tviewUI) closeModal() {
	if !ui.modalVisible {
		return
	}
	if ui.modalName != "" {
		ui.root.RemovePage(ui.modalName)
	}
	ui.modalVisible = false
	ui.modalName = ""
}
