// Package prompt implements the interactive conversion session: ask for a
// value until it parses, ask for a unit once, convert, and hand the result to
// a plotter.
//
// The session is an explicit state machine:
//
//	read_value --invalid number--> read_value
//	read_value --ok--> read_unit --> convert
//	convert --unrecognized unit--> unrecognized (terminal)
//	convert --ok--> plot --ok--> done (terminal)
//	plot --error--> failed (terminal)
//
// End of input or an interrupt at any prompt moves to cancelled.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"

	"github.com/leapstack-labs/tempchart/pkg/temperature"
)

// Prompts and user-facing messages.
const (
	ValuePrompt = "Enter the temperature value: "
	UnitPrompt  = "Enter the unit (Celsius, Fahrenheit, or Kelvin): "

	InvalidNumberMessage = "Invalid temperature value. Please enter a number."
	InvalidUnitMessage   = "Invalid unit. Please use Celsius (C), Fahrenheit (F), or Kelvin (K)."
	errorMessageFormat   = "An error occurred: %v"
)

// LineReader reads one line of input after showing a prompt.
// *readline.Instance satisfies it.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// Plotter displays a finished conversion.
type Plotter interface {
	Plot(conv temperature.Conversion) error
}

// PlotterFunc adapts a function to Plotter.
type PlotterFunc func(conv temperature.Conversion) error

// Plot calls f(conv).
func (f PlotterFunc) Plot(conv temperature.Conversion) error {
	return f(conv)
}

// Options configures a Session.
type Options struct {
	// Out receives the session's messages. Nil discards them.
	Out io.Writer
	// Logger receives a debug record per transition. Nil discards them.
	Logger *slog.Logger
	// DefaultUnit is used when the unit answer is blank. Zero disables it.
	DefaultUnit temperature.Scale
}

// Result is the outcome of a session run.
type Result struct {
	// State is the terminal state the session stopped in.
	State State
	// Conversion is set when State is StateDone.
	Conversion temperature.Conversion
	// Attempts counts the values read, including rejected ones.
	Attempts int
	// Err holds the cause for Unrecognized, Failed and Cancelled.
	Err error
}

// Session is a single interactive conversion.
type Session struct {
	reader  LineReader
	plotter Plotter
	out     io.Writer
	logger  *slog.Logger
	defUnit temperature.Scale
}

// New creates a session reading from reader and plotting through plotter.
func New(reader LineReader, plotter Plotter, opts Options) *Session {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		reader:  reader,
		plotter: plotter,
		out:     out,
		logger:  logger,
		defUnit: opts.DefaultUnit,
	}
}

// Run drives the state machine until it reaches a terminal state. The context
// is checked before every state.
func (s *Session) Run(ctx context.Context) Result {
	var (
		res   Result
		value float64
		unit  string
	)

	state := StateReadValue
	for !state.Terminal() {
		if err := ctx.Err(); err != nil {
			res.Err = err
			state = s.transition(state, StateCancelled, "context done")
			break
		}

		switch state {
		case StateReadValue:
			line, err := s.read(ValuePrompt)
			if err != nil {
				state = s.readFailed(state, err, &res)
				continue
			}
			res.Attempts++
			v, err := temperature.ParseValue(line)
			if err != nil {
				s.report(InvalidNumberMessage)
				s.logger.Debug("rejected value", "input", line, "attempt", res.Attempts)
				state = s.transition(state, StateReadValue, "invalid number")
				continue
			}
			value = v
			state = s.transition(state, StateReadUnit, "value accepted")

		case StateReadUnit:
			line, err := s.read(UnitPrompt)
			if err != nil {
				state = s.readFailed(state, err, &res)
				continue
			}
			unit = line
			if strings.TrimSpace(unit) == "" && s.defUnit.Valid() {
				unit = s.defUnit.Name()
				s.logger.Debug("using default unit", "unit", unit)
			}
			state = s.transition(state, StateConvert, "unit read")

		case StateConvert:
			conv, err := temperature.Convert(value, unit)
			switch {
			case errors.Is(err, temperature.ErrUnrecognizedUnit):
				s.report(InvalidUnitMessage)
				res.Err = err
				state = s.transition(state, StateUnrecognized, "unrecognized unit")
			case err != nil:
				s.report(fmt.Sprintf(errorMessageFormat, err))
				res.Err = err
				state = s.transition(state, StateFailed, "conversion error")
			default:
				res.Conversion = conv
				state = s.transition(state, StatePlot, "converted")
			}

		case StatePlot:
			if err := s.plotter.Plot(res.Conversion); err != nil {
				s.report(fmt.Sprintf(errorMessageFormat, err))
				res.Err = err
				res.Conversion = temperature.Conversion{}
				state = s.transition(state, StateFailed, "plot error")
				continue
			}
			state = s.transition(state, StateDone, "plotted")
		}
	}

	res.State = state
	return res
}

func (s *Session) read(prompt string) (string, error) {
	s.reader.SetPrompt(prompt)
	return s.reader.Readline()
}

// readFailed maps a reader error to the next state. End of input and
// interrupts cancel the session; anything else is reported as a failure.
func (s *Session) readFailed(from State, err error, res *Result) State {
	res.Err = err
	if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		return s.transition(from, StateCancelled, "input closed")
	}
	s.report(fmt.Sprintf(errorMessageFormat, err))
	return s.transition(from, StateFailed, "read error")
}

func (s *Session) transition(from, to State, reason string) State {
	s.logger.Debug("prompt transition", "from", from, "to", to, "reason", reason)
	return to
}

func (s *Session) report(msg string) {
	_, _ = fmt.Fprintln(s.out, msg)
}
