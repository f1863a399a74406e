package statblock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vcrini/lazynechronica/internal/diag"
	"github.com/vcrini/lazynechronica/internal/enemy"
)

// ErrNoRecord is returned by CollectAndSave while the placeholder is shown.
var ErrNoRecord = errors.New("no enemy data to save")

type FieldKey string

const (
	FieldID                  FieldKey = "id"
	FieldName                FieldKey = "name"
	FieldThreatBase          FieldKey = "threatLevel_base"
	FieldThreatPerSpawnGroup FieldKey = "threatLevel_per_spawn_group"
	FieldMaxActionPoints     FieldKey = "maximumActionPoints"
	FieldFlavorText          FieldKey = "flavor_text"
)

// Saver persists a whole record.
type Saver interface {
	Save(enemy.Record) error
}

// ManeuverCells groups the cells of one maneuver. The damage cells are nil
// when the source maneuver has no damage block, Formula also when it has no
// formula.
type ManeuverCells struct {
	ID          *Cell
	Timing      *Cell
	Cost        *Cell
	Range       *Cell
	Description *Cell
	BaseDamage  *Cell
	Effect      *Cell
	Formula     *Cell
}

func (m ManeuverCells) HasDamage() bool {
	return m.BaseDamage != nil || m.Effect != nil || m.Formula != nil
}

// Editor binds a record to a flat set of cells and turns them back into a
// record on save.
type Editor struct {
	record    *enemy.Record
	fields    map[FieldKey]*Cell
	maneuvers []ManeuverCells
	saver     Saver
	log       diag.Sink
}

func NewEditor(saver Saver, log diag.Sink) *Editor {
	if log == nil {
		log = diag.Nop
	}
	return &Editor{saver: saver, log: log, fields: map[FieldKey]*Cell{}}
}

// Render replaces every cell. A nil record leaves the editor with no cells.
func (e *Editor) Render(r *enemy.Record) {
	e.fields = map[FieldKey]*Cell{}
	e.maneuvers = nil
	if r == nil {
		e.record = nil
		e.log.Infof("no enemy data to display")
		return
	}
	cur := r.Clone()
	e.record = &cur

	e.fields[FieldID] = newCell("ID", cur.ID)
	e.fields[FieldName] = newCell("Name", cur.Name)
	e.fields[FieldThreatBase] = newCell("Threat Level (Base)", strconv.Itoa(cur.ThreatLevel.Base))
	e.fields[FieldThreatPerSpawnGroup] = newCell("Threat Level (Per Spawn Group)", strconv.Itoa(cur.ThreatLevel.PerSpawnGroup))
	e.fields[FieldMaxActionPoints] = newCell("Max Action Points", strconv.Itoa(cur.MaximumActionPoints))

	for _, m := range cur.Maneuvers {
		mc := ManeuverCells{
			ID:          newCell("ID", m.ID),
			Timing:      newCell("Timing", m.Timing),
			Cost:        newCell("Cost", strconv.Itoa(m.Cost)),
			Range:       newCell("Range", strconv.Itoa(m.Range)),
			Description: newCell("Description", m.Description),
		}
		mc.ID.ReadOnly = true
		mc.Description.Multiline = true
		if m.Damage != nil {
			mc.BaseDamage = newCell("Base Damage", strconv.Itoa(m.Damage.BaseDamage))
			mc.Effect = newCell("Effect", m.Damage.Effect)
			if m.Damage.Formula != nil {
				mc.Formula = newCell("Formula", *m.Damage.Formula)
			}
		}
		e.maneuvers = append(e.maneuvers, mc)
	}

	flavor := newCell("Flavor Text", FlavorText(cur.Flavor))
	flavor.Multiline = true
	e.fields[FieldFlavorText] = flavor
}

func (e *Editor) HasRecord() bool {
	return e.record != nil
}

// Record returns a copy of the current record, or nil for the placeholder.
func (e *Editor) Record() *enemy.Record {
	if e.record == nil {
		return nil
	}
	r := e.record.Clone()
	return &r
}

// Cell returns the cell for a top-level field, nil if it does not exist.
func (e *Editor) Cell(key FieldKey) *Cell {
	return e.fields[key]
}

func (e *Editor) Maneuvers() []ManeuverCells {
	return e.maneuvers
}

// CellCount is the number of live cells, zero for the placeholder.
func (e *Editor) CellCount() int {
	n := len(e.fields)
	for _, m := range e.maneuvers {
		for _, c := range []*Cell{m.ID, m.Timing, m.Cost, m.Range, m.Description, m.BaseDamage, m.Effect, m.Formula} {
			if c != nil {
				n++
			}
		}
	}
	return n
}

// Collect builds a record from the cells. Numeric text that does not parse
// becomes 0 with a warning; it never fails the whole collection.
func (e *Editor) Collect() (enemy.Record, error) {
	if e.record == nil {
		return enemy.Record{}, ErrNoRecord
	}
	out := enemy.Record{
		ID:       e.fields[FieldID].Get(),
		Name:     e.fields[FieldName].Get(),
		Portrait: e.record.Portrait,
		ThreatLevel: enemy.ThreatLevel{
			Base:          e.atoi(e.fields[FieldThreatBase].Get(), "Threat Level (Base) is not a valid number. Using 0."),
			PerSpawnGroup: e.atoi(e.fields[FieldThreatPerSpawnGroup].Get(), "Threat Level (Per Spawn Group) is not a valid number. Using 0."),
		},
		MaximumActionPoints: e.atoi(e.fields[FieldMaxActionPoints].Get(), "Maximum Action Points is not a valid number. Using 0."),
		Flavor:              ParseFlavor(e.fields[FieldFlavorText].Get()),
	}
	// A record without a maneuvers list keeps it absent.
	if e.record.Maneuvers != nil {
		out.Maneuvers = make([]enemy.Maneuver, 0, len(e.maneuvers))
	}

	for _, mc := range e.maneuvers {
		id := mc.ID.Get()
		m := enemy.Maneuver{
			ID:          id,
			Timing:      mc.Timing.Get(),
			Cost:        e.atoi(mc.Cost.Get(), fmt.Sprintf("Cost for maneuver '%s' is not a valid number. Using 0.", id)),
			Range:       e.atoi(mc.Range.Get(), fmt.Sprintf("Range for maneuver '%s' is not a valid number. Using 0.", id)),
			Description: strings.TrimSpace(mc.Description.Get()),
		}
		if mc.HasDamage() {
			d := &enemy.Damage{}
			if mc.BaseDamage != nil {
				d.BaseDamage = e.atoi(mc.BaseDamage.Get(), fmt.Sprintf("Base Damage for maneuver '%s' is not a valid number. Using 0.", id))
			}
			if mc.Effect != nil {
				d.Effect = mc.Effect.Get()
			}
			if mc.Formula != nil {
				d.Formula = enemy.StringPtr(mc.Formula.Get())
			}
			m.Damage = d
		}
		out.Maneuvers = append(out.Maneuvers, m)
	}
	return out, nil
}

// CollectAndSave collects the cells and hands the record to the saver. On
// failure the cells and the current record are kept as they are.
func (e *Editor) CollectAndSave() (enemy.Record, error) {
	if e.record == nil {
		e.log.Warnf("save requested with no enemy data displayed")
		return enemy.Record{}, ErrNoRecord
	}
	r, err := e.Collect()
	if err != nil {
		return enemy.Record{}, err
	}
	if e.saver == nil {
		return r, errors.New("statblock editor has no saver")
	}
	if err := e.saver.Save(r); err != nil {
		e.log.Errorf(err, "could not save enemy %q", r.ID)
		return r, fmt.Errorf("save enemy %q: %w", r.ID, err)
	}
	saved := r.Clone()
	e.record = &saved
	return r, nil
}

func (e *Editor) atoi(s, warning string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		e.log.Warnf("%s", warning)
		return 0
	}
	return v
}
