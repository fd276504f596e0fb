// Package logging provides a zerolog-backed implementation of
// engine.Logger, for hosts that want real structured logging instead of
// engine.NopLogger. The engine package itself never imports this package,
// or zerolog, or anything that does I/O: logging is strictly the host's
// concern (SPEC_FULL §9's "ambient logging → sink interface").
package logging

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/duskward/combatant/engine"
)

// Sink adapts a zerolog.Logger to engine.Logger.
type Sink struct {
	log zerolog.Logger
}

// NewSink builds a Sink writing structured (non-console) JSON lines to w.
// Pass os.Stdout for production use; NewConsoleSink is more readable for a
// local terminal.
func NewSink(w *os.File) *Sink {
	return &Sink{log: zerolog.New(w).With().Timestamp().Logger()}
}

// NewConsoleSink builds a Sink with zerolog's human-readable console
// writer, for interactive use (see cmd/decisiond).
func NewConsoleSink(w *os.File) *Sink {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return &Sink{log: zerolog.New(console).With().Timestamp().Logger()}
}

// BeginDecide implements engine.Logger.
func (s *Sink) BeginDecide(phase string) {
	s.log.Debug().Str("phase", phase).Msg("decide: begin")
}

// EndDecide implements engine.Logger.
func (s *Sink) EndDecide(action string, value float64) {
	s.log.Info().Str("action", action).Float64("value", value).Msg("decide: end")
}

var _ engine.Logger = (*Sink)(nil)
