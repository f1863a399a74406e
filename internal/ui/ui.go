package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/vcrini/lazynechronica/internal/catalog"
	"github.com/vcrini/lazynechronica/internal/diag"
	"github.com/vcrini/lazynechronica/internal/enemy"
	"github.com/vcrini/lazynechronica/internal/nav"
	"github.com/vcrini/lazynechronica/internal/settings"
	"github.com/vcrini/lazynechronica/internal/statblock"
)

const helpText = " [black:gold]q[-:-] quit  [black:gold]?[-:-] help  [black:gold]esc[-:-] back  [black:gold]tab/shift+tab[-:-] focus  [black:gold]ctrl+s[-:-] save statblock  [black:gold]ctrl+r[-:-] roll dice "

const (
	backLabel         = "❮ Back"
	backToDatabase    = "❮ Back to Database"
	backToEnemyData   = "❮ Back to Enemy Data"
	enemyDataButton   = "Enemy Data"
	noEnemyDataNotice = "No enemy data to display."
)

// Deps are the collaborators the shell drives.
type Deps struct {
	Catalog  catalog.Catalog
	Settings *settings.Store
	Enemies  *enemy.Store
	// EnemyID is the one enemy list entry with backing data.
	EnemyID string
	Log     diag.Sink
}

type tviewUI struct {
	app    *tview.Application
	root   *tview.Pages
	shell  *tview.Flex
	pages  *tview.Pages
	status *tview.TextView

	mainMenu    *tview.List
	optionsForm *tview.Form

	dbPages        *tview.Pages
	categoriesList *tview.List
	dollList       *tview.List
	dollDrop       *tview.List
	dollPanel      *tview.Flex
	necroList      *tview.List
	enemyList      *tview.List
	necroLeft      *tview.Flex
	necroPanel     *tview.Flex
	viewer         *tview.Form

	catalog   catalog.Catalog
	ctrl      *nav.Controller
	editor    *statblock.Editor
	enemies   *enemy.Store
	settingsS *settings.Store
	log       diag.Sink

	settings  settings.Settings
	pending   settings.Settings
	dropItems []string
	message   string

	helpVisible     bool
	helpReturnFocus tview.Primitive

	modalVisible bool
	modalName    string
}

// Run builds the shell and blocks until the user quits.
func Run(deps Deps) error {
	tview.Styles.PrimitiveBackgroundColor = tcell.ColorBlack
	tview.Styles.ContrastBackgroundColor = tcell.ColorDarkSlateGray
	tview.Styles.MoreContrastBackgroundColor = tcell.ColorBlack
	tview.Styles.BorderColor = tcell.ColorGold
	tview.Styles.TitleColor = tcell.ColorGold
	tview.Styles.GraphicsColor = tcell.ColorGold
	tview.Styles.PrimaryTextColor = tcell.ColorWhite
	tview.Styles.SecondaryTextColor = tcell.ColorLightGray
	tview.Styles.TertiaryTextColor = tcell.ColorAqua
	tview.Styles.InverseTextColor = tcell.ColorBlack
	tview.Styles.ContrastSecondaryTextColor = tcell.ColorBlack

	ui, err := newTViewUI(deps)
	if err != nil {
		return err
	}
	return ui.app.SetRoot(ui.root, true).EnableMouse(true).Run()
}

func newTViewUI(deps Deps) (*tviewUI, error) {
	if deps.Settings == nil || deps.Enemies == nil {
		return nil, errors.New("ui needs a settings store and an enemy store")
	}
	next := deps.Log
	if next == nil {
		next = diag.Nop
	}
	ui := &tviewUI{
		app:       tview.NewApplication(),
		catalog:   deps.Catalog,
		enemies:   deps.Enemies,
		settingsS: deps.Settings,
		message:   "Ready.",
	}
	ui.log = &statusSink{next: next, ui: ui}
	ui.ctrl = nav.NewController(deps.EnemyID, ui.log)
	ui.ctrl.OnEnemySelected(ui.showEnemy)
	ui.editor = statblock.NewEditor(deps.Enemies, ui.log)
	ui.settings = deps.Settings.Load()
	ui.pending = ui.settings

	ui.build()
	ui.applySettings()
	ui.sync(nil)
	return ui, nil
}

func (ui *tviewUI) build() {
	title := ui.catalog.Title
	if title == "" {
		title = "Nechronica"
	}
	banner := tview.NewTextView().SetTextAlign(tview.AlignCenter).SetDynamicColors(true).
		SetText("\n[gold::b]" + tview.Escape(title) + "[-::-]")

	ui.mainMenu = tview.NewList().ShowSecondaryText(false)
	for _, item := range ui.catalog.MainMenu {
		ui.mainMenu.AddItem(item, "", 0, nil)
	}
	ui.mainMenu.SetSelectedFunc(func(_ int, text, _ string, _ rune) {
		ui.pressMainMenu(text)
	})
	ui.mainMenu.SetBorder(true).SetTitle(" Menu ")
	mainPage := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(banner, 3, 0, false).
		AddItem(centeredColumn(ui.mainMenu, 30), 0, 1, true)

	ui.buildOptions()
	optionsPage := centeredColumn(ui.optionsForm, 56)

	ui.categoriesList = tview.NewList().ShowSecondaryText(false)
	for _, c := range ui.catalog.Categories {
		ui.categoriesList.AddItem(c, "", 0, nil)
	}
	ui.categoriesList.AddItem(backLabel, "", 0, nil)
	ui.categoriesList.SetSelectedFunc(func(_ int, text, _ string, _ rune) {
		ui.pressCategory(text)
	})
	ui.categoriesList.SetBorder(true).SetTitle(" Database ")

	ui.dollList = tview.NewList().ShowSecondaryText(false)
	for _, b := range ui.catalog.Doll.Buttons {
		ui.dollList.AddItem(b, "", 0, nil)
	}
	ui.dollList.AddItem(backToDatabase, "", 0, nil)
	ui.dollList.SetSelectedFunc(func(_ int, text, _ string, _ rune) {
		ui.pressDollButton(text)
	})
	ui.dollList.SetBorder(true).SetTitle(" Doll ")

	ui.dollDrop = tview.NewList().ShowSecondaryText(false)
	ui.dollDrop.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		ui.pickDropdownItem(index)
	})
	ui.dollDrop.SetBorder(true)
	ui.dollPanel = tview.NewFlex().SetDirection(tview.FlexColumn)

	ui.necroList = tview.NewList().ShowSecondaryText(false)
	for _, b := range ui.catalog.Necromancer.Buttons {
		ui.necroList.AddItem(b, "", 0, nil)
	}
	ui.necroList.AddItem(backToDatabase, "", 0, nil)
	ui.necroList.SetSelectedFunc(func(_ int, text, _ string, _ rune) {
		ui.pressNecromancerButton(text)
	})
	ui.necroList.SetBorder(true).SetTitle(" Necromancer ")

	ui.enemyList = tview.NewList().ShowSecondaryText(false)
	for _, e := range ui.catalog.Necromancer.Enemies {
		ui.enemyList.AddItem(catalog.Label(e.Name), "", 0, nil)
	}
	ui.enemyList.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		ui.selectEnemy(index)
	})
	ui.enemyList.SetBorder(true).SetTitle(" " + enemyDataButton + " ")

	ui.viewer = tview.NewForm()
	ui.viewer.SetBorder(true).SetTitle(" Statblock ")
	ui.necroLeft = tview.NewFlex().SetDirection(tview.FlexRow)
	ui.necroPanel = tview.NewFlex().SetDirection(tview.FlexColumn)

	ui.dbPages = tview.NewPages().
		AddPage(nav.MainCategories.String(), centeredColumn(ui.categoriesList, 30), true, true).
		AddPage(nav.Doll.String(), ui.dollPanel, true, false).
		AddPage(nav.Necromancer.String(), ui.necroPanel, true, false)

	ui.pages = tview.NewPages().
		AddPage(nav.Main.String(), mainPage, true, true).
		AddPage(nav.Options.String(), optionsPage, true, false).
		AddPage(nav.Database.String(), ui.dbPages, true, false)

	ui.status = tview.NewTextView().SetDynamicColors(true).SetText(helpText)
	ui.status.SetBackgroundColor(tcell.ColorBlack)

	ui.shell = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(ui.pages, 0, 1, true).
		AddItem(ui.status, 1, 0, false)

	ui.root = tview.NewPages()
	ui.app.SetInputCapture(ui.handleGlobalKeys)
}

func (ui *tviewUI) buildOptions() {
	ui.optionsForm = tview.NewForm()
	ui.optionsForm.SetBorder(true).SetTitle(" Options ")
	ui.optionsForm.AddTextView("", "[::b]Display Settings[::-]", 0, 1, true, false)
	ui.optionsForm.AddDropDown("Screen Resolution", settings.Resolutions, indexOf(settings.Resolutions, ui.settings.Resolution), func(option string, _ int) {
		ui.pending.Resolution = option
	})
	ui.optionsForm.AddDropDown("Display Mode", settings.Modes, indexOf(settings.Modes, ui.settings.Mode), func(option string, _ int) {
		ui.pending.Mode = option
	})
	ui.optionsForm.AddButton("Save Settings", ui.saveSettings)
	ui.optionsForm.AddButton("Back", func() {
		ui.ctrl.ShowTopView(nav.Main)
		ui.sync(nil)
	})
}

func (ui *tviewUI) pressMainMenu(item string) {
	switch item {
	case "Database":
		ui.ctrl.ShowTopView(nav.Database)
	case "Options":
		ui.ctrl.ShowTopView(nav.Options)
	default:
		ui.log.Infof("%s button clicked", item)
	}
	ui.sync(nil)
}

func (ui *tviewUI) pressCategory(item string) {
	if item == backLabel {
		ui.ctrl.ShowTopView(nav.Main)
	} else {
		ui.ctrl.PressCategory(item)
	}
	ui.sync(nil)
}

func (ui *tviewUI) pressDollButton(item string) {
	switch item {
	case "Classes":
		ui.ctrl.ToggleDropdown(nav.Classes)
	case "Reinforcement Parts":
		ui.ctrl.ToggleDropdown(nav.ReinforcementParts)
	case "Positions":
		ui.ctrl.ToggleDropdown(nav.Positions)
	case backToDatabase:
		ui.ctrl.ShowDatabaseMain()
	default:
		ui.log.Infof("%s clicked", item)
	}
	ui.sync(nil)
}

func (ui *tviewUI) pressNecromancerButton(item string) {
	switch item {
	case enemyDataButton:
		ui.ctrl.ToggleDropdown(nav.EnemyData)
	case backToDatabase:
		ui.ctrl.ShowDatabaseMain()
	default:
		ui.log.Infof("%s clicked", item)
	}
	ui.sync(nil)
}

func (ui *tviewUI) selectEnemy(index int) {
	entries := ui.catalog.Necromancer.Enemies
	if index < 0 || index >= len(entries) {
		return
	}
	ui.ctrl.SelectEnemyFromList(entries[index].ID)
	if ui.ctrl.State().ViewerVisible {
		ui.sync(ui.viewer)
		return
	}
	ui.sync(ui.enemyList)
}

func (ui *tviewUI) saveSettings() {
	ui.settings = ui.pending
	if err := ui.settingsS.Save(ui.settings); err != nil {
		ui.message = fmt.Sprintf("Error saving settings: %v", err)
	} else {
		ui.message = fmt.Sprintf("Settings saved: %s, %s.", ui.settings.Resolution, ui.settings.Mode)
	}
	ui.applySettings()
	ui.sync(ui.optionsForm)
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return -1
}

func centeredColumn(p tview.Primitive, width int) *tview.Flex {
	return tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(nil, 0, 1, false).
		AddItem(p, width, 0, true).
		AddItem(nil, 0, 1, false)
}
