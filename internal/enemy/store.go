package enemy

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/renameio/v2"

	"github.com/vcrini/lazynechronica/internal/diag"
)

// DefaultFile is resolved against the working directory.
const DefaultFile = "zombie_data.json"

// Store loads and saves exactly one Record against a document path.
type Store struct {
	path     string
	defaults Record
	log      diag.Sink
}

func NewStore(path string, defaults Record, log diag.Sink) *Store {
	if log == nil {
		log = diag.Nop
	}
	return &Store{path: path, defaults: defaults, log: log}
}

func (s *Store) Path() string {
	return s.path
}

// Load never fails. A missing document is created from the defaults; an
// unreadable or malformed one is left on disk untouched and the defaults are
// returned instead.
func (s *Store) Load() Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			def := s.defaults.Clone()
			if err := s.Save(def); err != nil {
				s.log.Errorf(err, "could not create %s, using default enemy data", s.path)
			} else {
				s.log.Infof("created initial %s", s.path)
			}
			return def
		}
		s.log.Errorf(err, "error loading %s, using default enemy data", s.path)
		return s.defaults.Clone()
	}

	r, err := Decode(data)
	if err != nil {
		s.log.Errorf(err, "error parsing %s, using default enemy data", s.path)
		return s.defaults.Clone()
	}
	s.log.Infof("loaded %s", s.path)
	return r
}

// Save overwrites the document with the whole record. The write goes to a
// temporary sibling first and is renamed into place.
func (s *Store) Save(r Record) error {
	data, err := Encode(r)
	if err != nil {
		s.log.Errorf(err, "could not encode enemy %q", r.ID)
		return fmt.Errorf("encode enemy %q: %w", r.ID, err)
	}
	if err := renameio.WriteFile(s.path, data, 0o644); err != nil {
		s.log.Errorf(err, "could not save %s", s.path)
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	s.log.Infof("enemy data saved successfully to %s", s.path)
	return nil
}
