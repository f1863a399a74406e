package nav

type TopView int

const (
	Main TopView = iota
	Options
	Database
)

func (v TopView) String() string {
	switch v {
	case Main:
		return "main"
	case Options:
		return "options"
	case Database:
		return "database"
	default:
		return "unknown"
	}
}

type DatabaseView int

const (
	MainCategories DatabaseView = iota
	Doll
	Necromancer
)

func (v DatabaseView) String() string {
	switch v {
	case MainCategories:
		return "categories"
	case Doll:
		return "doll"
	case Necromancer:
		return "necromancer"
	default:
		return "unknown"
	}
}

type Dropdown int

const (
	NoDropdown Dropdown = iota
	Positions
	ReinforcementParts
	Classes
	EnemyData
)

func (d Dropdown) String() string {
	switch d {
	case NoDropdown:
		return "none"
	case Positions:
		return "positions"
	case ReinforcementParts:
		return "reinforcement_parts"
	case Classes:
		return "classes"
	case EnemyData:
		return "enemy_data"
	default:
		return "unknown"
	}
}

// Owner is the database sub-view a dropdown is drawn under.
func (d Dropdown) Owner() DatabaseView {
	switch d {
	case Positions, ReinforcementParts, Classes:
		return Doll
	case EnemyData:
		return Necromancer
	default:
		return MainCategories
	}
}

// State is the whole visibility tree. The zero value is the start state.
type State struct {
	Top           TopView
	Database      DatabaseView
	Dropdown      Dropdown
	ViewerVisible bool
}

// Valid reports whether s satisfies the single-visible-view rules: one top
// view, one database sub-view, at most one dropdown owned by that sub-view,
// and a viewer only under an open enemy list.
func (s State) Valid() bool {
	if s.Top < Main || s.Top > Database {
		return false
	}
	if s.Database < MainCategories || s.Database > Necromancer {
		return false
	}
	if s.Dropdown < NoDropdown || s.Dropdown > EnemyData {
		return false
	}
	if s.Top != Database {
		return s.Database == MainCategories && s.Dropdown == NoDropdown && !s.ViewerVisible
	}
	if s.Dropdown != NoDropdown && s.Dropdown.Owner() != s.Database {
		return false
	}
	if s.ViewerVisible && (s.Database != Necromancer || s.Dropdown != EnemyData) {
		return false
	}
	return true
}

// Visible lists the names of every visible panel, outermost first.
func (s State) Visible() []string {
	out := []string{s.Top.String()}
	if s.Top != Database {
		return out
	}
	out = append(out, s.Database.String())
	if s.Dropdown != NoDropdown {
		out = append(out, s.Dropdown.String())
	}
	if s.ViewerVisible {
		out = append(out, "viewer")
	}
	return out
}
