// Package driver defines tunable options, error definitions, and the
// Result types for running a built topology through multiple passes.
package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/glimmer/lights"
	"github.com/katalvlaran/glimmer/trolls"
)

// Sentinel errors for driver execution.
var (
	// ErrNilSystem is returned when Run receives a nil or unwired system.
	ErrNilSystem = errors.New("driver: system is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("driver: invalid option supplied")

	// ErrStepLimit is returned when a run exceeds WithMaxSteps.
	ErrStepLimit = errors.New("driver: step limit exceeded")
)

// Step records one advance of the root unit: the signal it produced
// and the board snapshot taken immediately after.
type Step struct {
	Pass   int
	Signal trolls.Signal
	Lights []lights.Bit
}

// Result holds the outcome of a run: the initial board snapshot and
// every step in emission order. A pass ends at its first Idle signal,
// which is recorded like any other step.
type Result struct {
	Initial []lights.Bit
	Steps   []Step
	Passes  int
}

// Pass returns the steps belonging to pass p (1-based).
func (r *Result) Pass(p int) []Step {
	out := make([]Step, 0, len(r.Steps))
	for _, s := range r.Steps {
		if s.Pass == p {
			out = append(out, s)
		}
	}
	return out
}

// Actives returns the snapshots of every Active step, in order. This
// is the visited-state sequence: Idle steps never change the board.
func (r *Result) Actives() [][]lights.Bit {
	out := make([][]lights.Bit, 0, len(r.Steps))
	for _, s := range r.Steps {
		if s.Signal == trolls.Active {
			out = append(out, s.Lights)
		}
	}
	return out
}

// Option configures Run behavior via functional arguments.
// If an Option is invalid (e.g. zero passes), it is recorded
// internally and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Passes is the number of Idle-terminated passes to perform.
	// The traditional driver runs two: forward, then backward.
	Passes int

	// MaxSteps, if > 0, aborts the run with ErrStepLimit once this
	// many advances have been issued. 0 disables the limit.
	MaxSteps int

	// OnStep is called after every advance with the recorded step.
	// If it returns an error, the run aborts and propagates it.
	OnStep func(Step) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - two passes
//   - no step limit
//   - no-op OnStep hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Passes:   2,
		MaxSteps: 0,
		OnStep:   func(Step) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPasses sets how many Idle-terminated passes to run.
//
//	p >= 1: run p passes
//	p < 1:  invalid option → ErrOptionViolation
func WithPasses(p int) Option {
	return func(o *Options) {
		if p < 1 {
			o.err = fmt.Errorf("%w: Passes must be at least 1 (%d)", ErrOptionViolation, p)
			return
		}
		o.Passes = p
	}
}

// WithMaxSteps bounds the total number of advances across all passes.
//
//	m > 0:  abort with ErrStepLimit beyond m advances
//	m == 0: explicit no limit
//	m < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(m int) Option {
	return func(o *Options) {
		if m < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, m)
			return
		}
		o.MaxSteps = m
	}
}

// WithOnStep registers a callback to run after every advance;
// returning an error from this callback stops the run.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
