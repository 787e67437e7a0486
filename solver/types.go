package solver

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/solve24/postfix"
)

// DefaultTarget is the value of the classic 24 game.
const DefaultTarget = 24

// ErrNoSolution indicates that no candidate reaches the target.
var ErrNoSolution = errors.New("solver: no solution")

// Option configures Solve.
type Option func(*Options)

// Options holds the configurable parameters of a search.
type Options struct {
	// Target is the integer the expression must evaluate to. Default 24.
	Target int64

	// Logger receives debug-level progress per shape. Defaults to a
	// logger that discards everything.
	Logger *slog.Logger
}

// DefaultOptions returns Options with Target = 24 and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Target: DefaultTarget,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithTarget returns an Option that searches for target instead of 24.
func WithTarget(target int64) Option {
	return func(o *Options) {
		o.Target = target
	}
}

// WithLogger returns an Option that routes search progress to logger.
// A nil logger has no effect.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// Result describes the first candidate found.
type Result struct {
	// Numbers are the inputs, in the order supplied.
	Numbers [postfix.Operands]int64

	// Target is the value reached.
	Target int64

	// Expression is the infix rendering, e.g. "5 * (5 - 1 / 5)".
	Expression string

	// Postfix is the winning candidate, e.g. "1243/-*".
	Postfix postfix.Candidate

	// Shape is the skeleton the candidate came from.
	Shape postfix.Shape

	// Examined counts candidates evaluated, the winner included.
	Examined int
}
