// Package driver pulls flip events from a built topology, recording a
// board snapshot after every advance, until a terminal Idle signal
// ends each pass.
//
// The traditional run is two passes: the first walks the traversal
// forward to its resting state, the second walks it back. The driver
// itself holds no generation logic; ordering lives entirely in the
// topology's coupling.
package driver

import (
	"fmt"

	"github.com/katalvlaran/glimmer/trolls"
)

// runner encapsulates mutable run state.
type runner struct {
	sys   *trolls.System
	opts  Options
	res   *Result
	taken int
}

// Run advances sys until Idle, opts.Passes times, applying any number
// of functional Options. Returns ErrNilSystem for an unwired system,
// ErrOptionViolation for bad options, ErrStepLimit when WithMaxSteps
// is exceeded, the context's error on cancellation, or any
// user-supplied hook error. The partial Result is returned alongside
// any mid-run error.
func Run(sys *trolls.System, opts ...Option) (*Result, error) {
	if sys == nil || sys.Root == nil || sys.Board == nil {
		return nil, ErrNilSystem
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := &runner{
		sys:  sys,
		opts: o,
		res: &Result{
			Initial: sys.Snapshot(),
			Passes:  o.Passes,
		},
	}
	return r.res, r.loop()
}

// loop executes every pass in order, stopping at the first error.
func (r *runner) loop() error {
	for pass := 1; pass <= r.opts.Passes; pass++ {
		if err := r.pass(pass); err != nil {
			return err
		}
	}
	return nil
}

// pass advances the system until its first Idle signal, recording
// every step and honoring cancellation, limits, and the OnStep hook.
func (r *runner) pass(pass int) error {
	for {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}
		if r.opts.MaxSteps > 0 && r.taken >= r.opts.MaxSteps {
			return fmt.Errorf("driver: pass %d after %d steps: %w", pass, r.taken, ErrStepLimit)
		}

		sig := r.sys.Advance()
		r.taken++
		st := Step{Pass: pass, Signal: sig, Lights: r.sys.Snapshot()}
		r.res.Steps = append(r.res.Steps, st)
		if err := r.opts.OnStep(st); err != nil {
			return fmt.Errorf("driver: OnStep error at step %d: %w", r.taken, err)
		}
		if sig == trolls.Idle {
			return nil
		}
	}
}
