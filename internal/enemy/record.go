package enemy

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
)

// Record is the full statblock of one enemy as stored on disk.
type Record struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	Portrait            string      `json:"portrait"`
	ThreatLevel         ThreatLevel `json:"threatLevel"`
	MaximumActionPoints int         `json:"maximumActionPoints"`
	Maneuvers           []Maneuver  `json:"maneuvers"`
	Flavor              Flavor      `json:"flavor"`
}

type ThreatLevel struct {
	Base          int `json:"base"`
	PerSpawnGroup int `json:"per_spawn_group"`
}

type Maneuver struct {
	ID          string  `json:"id"`
	Timing      string  `json:"timing"`
	Cost        int     `json:"cost"`
	Range       int     `json:"range"`
	Description string  `json:"description"`
	Damage      *Damage `json:"damage,omitempty"`
}

// Damage.Formula is nil when the source document has no formula key;
// consumers branch on its presence.
type Damage struct {
	BaseDamage int     `json:"base_damage"`
	Effect     string  `json:"effect"`
	Formula    *string `json:"formula,omitempty"`
}

type Flavor struct {
	Description string `json:"description"`
	Tactics     string `json:"tactics"`
	Roleplay    string `json:"roleplay"`
}

//go:embed zombie_basic.json
var embeddedDefaultJSON []byte

// Default returns a fresh copy of the bundled zombie statblock.
func Default() Record {
	r, err := Decode(embeddedDefaultJSON)
	if err != nil {
		panic(fmt.Sprintf("bundled enemy record is invalid: %v", err))
	}
	return r
}

// ErrEmptyDocument is returned by Decode for a document that is just null.
var ErrEmptyDocument = errors.New("enemy document is null")

func Decode(data []byte) (Record, error) {
	var r *Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, err
	}
	if r == nil {
		return Record{}, ErrEmptyDocument
	}
	return *r, nil
}

func Encode(r Record) ([]byte, error) {
	return json.MarshalIndent(r, "", "    ")
}

// Clone returns a deep copy that shares no slices or pointers with r.
func (r Record) Clone() Record {
	out := r
	if r.Maneuvers != nil {
		out.Maneuvers = make([]Maneuver, len(r.Maneuvers))
		for i, m := range r.Maneuvers {
			out.Maneuvers[i] = m
			if m.Damage != nil {
				d := *m.Damage
				if m.Damage.Formula != nil {
					f := *m.Damage.Formula
					d.Formula = &f
				}
				out.Maneuvers[i].Damage = &d
			}
		}
	}
	return out
}

// StringPtr is a helper for building Damage.Formula literals.
func StringPtr(s string) *string {
	return &s
}
