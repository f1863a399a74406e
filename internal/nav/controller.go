package nav

import "github.com/vcrini/lazynechronica/internal/diag"

// Controller owns the navigation State. Every transition first collapses
// whatever it replaces, so partial states never stack.
type Controller struct {
	state           State
	enemyID         string
	onEnemySelected func(id string)
	log             diag.Sink
}

// NewController starts in the main menu. enemyID is the one list entry that
// has backing data.
func NewController(enemyID string, log diag.Sink) *Controller {
	if log == nil {
		log = diag.Nop
	}
	return &Controller{enemyID: enemyID, log: log}
}

// OnEnemySelected registers the fetch-and-render hook run when the modeled
// enemy is picked from the list.
func (c *Controller) OnEnemySelected(fn func(id string)) {
	c.onEnemySelected = fn
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) ShowTopView(v TopView) {
	if v < Main || v > Database {
		c.log.Warnf("unknown view %d ignored", v)
		return
	}
	if c.state.Top == v {
		return
	}
	if c.state.Top == Database {
		c.collapseDatabase()
	}
	c.state.Top = v
	if v == Database {
		c.state.Database = MainCategories
	}
	c.log.Infof("showing %s", v)
}

// ShowDatabaseCategory accepts only the categories that have sub-menus.
func (c *Controller) ShowDatabaseCategory(v DatabaseView) {
	if c.state.Top != Database {
		c.log.Warnf("database category %s requested outside the database view", v)
		return
	}
	if v != Doll && v != Necromancer {
		c.log.Warnf("database category %s has no sub-menu", v)
		return
	}
	c.closeDropdown()
	c.state.Database = v
	c.log.Infof("showing database category %s", v)
}

// PressCategory handles a main-category button by label. Categories without
// a sub-menu only produce a notice.
func (c *Controller) PressCategory(name string) {
	switch name {
	case "Doll":
		c.ShowDatabaseCategory(Doll)
	case "Necromancer":
		c.ShowDatabaseCategory(Necromancer)
	default:
		c.log.Infof("%s button clicked", name)
	}
}

func (c *Controller) ShowDatabaseMain() {
	if c.state.Top != Database {
		return
	}
	c.collapseDatabase()
	c.log.Infof("showing database categories")
}

func (c *Controller) ToggleDropdown(d Dropdown) {
	if d <= NoDropdown || d > EnemyData {
		return
	}
	if c.state.Top != Database || c.state.Database != d.Owner() {
		c.log.Warnf("dropdown %s is not available from %s", d, c.state.Database)
		return
	}
	if c.state.Dropdown == d {
		c.closeDropdown()
		return
	}
	c.closeDropdown()
	c.state.Dropdown = d
}

// SelectEnemyFromList shows the viewer for the modeled enemy. Entries without
// backing data are reported and otherwise ignored.
func (c *Controller) SelectEnemyFromList(id string) {
	if c.state.Top != Database || c.state.Dropdown != EnemyData {
		c.log.Warnf("enemy %q selected while the enemy list is closed", id)
		return
	}
	c.log.Infof("enemy selected: %s", id)
	if id != c.enemyID {
		c.log.Infof("no statblock for %q yet", id)
		return
	}
	c.state.ViewerVisible = true
	if c.onEnemySelected != nil {
		c.onEnemySelected(id)
	}
}

// SelectDropdownItem only reports the pick; dropdown entries have no data.
func (c *Controller) SelectDropdownItem(item string) {
	c.log.Infof("%s selected", item)
}

// HideViewer never collapses the necromancer panel or its open list.
func (c *Controller) HideViewer() {
	c.state.ViewerVisible = false
}

func (c *Controller) closeDropdown() {
	c.state.Dropdown = NoDropdown
	c.state.ViewerVisible = false
}

func (c *Controller) collapseDatabase() {
	c.closeDropdown()
	c.state.Database = MainCategories
}
