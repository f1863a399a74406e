package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Sink receives every observability point of the core packages.
type Sink interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

type Logger struct {
	logger zerolog.Logger
}

func NewLogger(w io.Writer, component string) Logger {
	return Logger{logger: zerolog.New(w).With().Timestamp().Str("component", component).Logger()}
}

// With returns a logger tagged with a different component name.
func (l Logger) With(component string) Logger {
	return Logger{logger: l.logger.With().Str("component", component).Logger()}
}

func (l Logger) Infof(format string, args ...any) {
	l.logger.Info().Msg(fmt.Sprintf(format, args...))
}

func (l Logger) Warnf(format string, args ...any) {
	l.logger.Warn().Msg(fmt.Sprintf(format, args...))
}

func (l Logger) Errorf(err error, format string, args ...any) {
	l.logger.Error().Err(err).Msg(fmt.Sprintf(format, args...))
}

type nop struct{}

func (nop) Infof(string, ...any)         {}
func (nop) Warnf(string, ...any)         {}
func (nop) Errorf(error, string, ...any) {}

// Nop discards everything.
var Nop Sink = nop{}

type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

type Event struct {
	Level   Level
	Message string
	Err     error
}

// Recorder keeps events in memory so tests can assert on them.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Infof(format string, args ...any) {
	r.Events = append(r.Events, Event{Level: LevelInfo, Message: fmt.Sprintf(format, args...)})
}

func (r *Recorder) Warnf(format string, args ...any) {
	r.Events = append(r.Events, Event{Level: LevelWarn, Message: fmt.Sprintf(format, args...)})
}

func (r *Recorder) Errorf(err error, format string, args ...any) {
	r.Events = append(r.Events, Event{Level: LevelError, Message: fmt.Sprintf(format, args...), Err: err})
}

func (r *Recorder) ByLevel(level Level) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Contains reports whether any event at level has a message containing substr.
func (r *Recorder) Contains(level Level, substr string) bool {
	for _, e := range r.ByLevel(level) {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func (r *Recorder) Reset() {
	r.Events = nil
}
