package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/vcrini/lazynechronica/internal/diag"
)

const DefaultFile = "config.json"

const (
	ModeWindowed   = "Windowed"
	ModeFullscreen = "Fullscreen"
	ModeBorderless = "Borderless Window"
)

var (
	Resolutions = []string{"800x600", "1280x720", "1920x1080"}
	Modes       = []string{ModeWindowed, ModeFullscreen, ModeBorderless}
)

type Settings struct {
	Resolution string `json:"resolution"`
	Mode       string `json:"mode"`
}

func Defaults() Settings {
	return Settings{Resolution: "800x600", Mode: ModeWindowed}
}

// Fullscreen reports whether the mode fills the whole screen.
func (s Settings) Fullscreen() bool {
	return s.Mode == ModeFullscreen || s.Mode == ModeBorderless
}

type Store struct {
	path string
	log  diag.Sink
}

func NewStore(path string, log diag.Sink) *Store {
	if log == nil {
		log = diag.Nop
	}
	return &Store{path: path, log: log}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the defaults when the document is missing or malformed. It
// never writes.
func (s *Store) Load() Settings {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Infof("settings file not found, using default settings")
		} else {
			s.log.Errorf(err, "error loading settings file, using default settings")
		}
		return Defaults()
	}

	var loaded Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		s.log.Errorf(err, "error parsing settings file, using default settings")
		return Defaults()
	}
	def := Defaults()
	if strings.TrimSpace(loaded.Resolution) == "" {
		loaded.Resolution = def.Resolution
	}
	if strings.TrimSpace(loaded.Mode) == "" {
		loaded.Mode = def.Mode
	}
	s.log.Infof("settings loaded successfully")
	return loaded
}

func (s *Store) Save(st Settings) error {
	data, err := json.MarshalIndent(st, "", "    ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.log.Errorf(err, "error saving settings")
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	s.log.Infof("settings saved successfully")
	return nil
}

// ParseResolution splits "WxH" into its two positive integers.
func ParseResolution(res string) (int, int, bool) {
	w, h, ok := strings.Cut(strings.TrimSpace(res), "x")
	if !ok {
		return 0, 0, false
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return 0, 0, false
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}
