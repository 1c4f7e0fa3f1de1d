package driver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/glimmer/driver"
	"github.com/katalvlaran/glimmer/lights"
	"github.com/katalvlaran/glimmer/trolls"
)

func mustBuild(t *testing.T, kind trolls.Kind, n int, opts ...trolls.Option) *trolls.System {
	t.Helper()
	sys, err := trolls.Build(kind, n, opts...)
	if err != nil {
		t.Fatalf("Build(%s, %d): %v", kind, n, err)
	}
	return sys
}

func asString(bits []lights.Bit) string {
	buf := make([]byte, len(bits))
	for i, b := range bits {
		buf[i] = '0' + byte(b)
	}
	return string(buf)
}

// TestRun_Errors verifies nil systems and invalid options are rejected.
func TestRun_Errors(t *testing.T) {
	if _, err := driver.Run(nil); !errors.Is(err, driver.ErrNilSystem) {
		t.Errorf("nil system: error = %v; want ErrNilSystem", err)
	}
	if _, err := driver.Run(&trolls.System{}); !errors.Is(err, driver.ErrNilSystem) {
		t.Errorf("unwired system: error = %v; want ErrNilSystem", err)
	}
	sys := mustBuild(t, trolls.Chain, 3)
	if _, err := driver.Run(sys, driver.WithPasses(0)); !errors.Is(err, driver.ErrOptionViolation) {
		t.Errorf("zero passes: error = %v; want ErrOptionViolation", err)
	}
	if _, err := driver.Run(sys, driver.WithMaxSteps(-1)); !errors.Is(err, driver.ErrOptionViolation) {
		t.Errorf("negative limit: error = %v; want ErrOptionViolation", err)
	}
}

// TestRun_TwoPassDefault covers the traditional forward/backward run.
func TestRun_TwoPassDefault(t *testing.T) {
	sys := mustBuild(t, trolls.Chain, 3)
	res, err := driver.Run(sys)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := asString(res.Initial); got != "000" {
		t.Errorf("Initial = %s; want 000", got)
	}
	if res.Passes != 2 {
		t.Errorf("Passes = %d; want 2", res.Passes)
	}
	// 3 active steps + 1 idle per pass for Chain N=3.
	if len(res.Steps) != 8 {
		t.Fatalf("Steps = %d; want 8", len(res.Steps))
	}
	if got := len(res.Actives()); got != 6 {
		t.Errorf("Actives = %d; want 6", got)
	}
	for p := 1; p <= 2; p++ {
		steps := res.Pass(p)
		if len(steps) != 4 {
			t.Fatalf("Pass(%d) = %d steps; want 4", p, len(steps))
		}
		last := steps[len(steps)-1]
		if last.Signal != trolls.Idle {
			t.Errorf("Pass(%d) does not end Idle", p)
		}
	}
	if got := asString(res.Steps[len(res.Steps)-1].Lights); got != "000" {
		t.Errorf("final state = %s; want 000", got)
	}
}

// TestRun_CycleRepeats: after the canonical two passes the system is
// back at its start, so passes three and four replay one and two.
func TestRun_CycleRepeats(t *testing.T) {
	sys := mustBuild(t, trolls.Chain, 2)
	res, err := driver.Run(sys, driver.WithPasses(4))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, s := range res.Pass(3) {
		if want := res.Pass(1)[i]; asString(s.Lights) != asString(want.Lights) || s.Signal != want.Signal {
			t.Fatalf("pass 3 step %d diverged from pass 1", i)
		}
	}
	for i, s := range res.Pass(4) {
		if want := res.Pass(2)[i]; asString(s.Lights) != asString(want.Lights) || s.Signal != want.Signal {
			t.Fatalf("pass 4 step %d diverged from pass 2", i)
		}
	}
}

// TestRun_OnStepAbort propagates hook errors with partial results.
func TestRun_OnStepAbort(t *testing.T) {
	sys := mustBuild(t, trolls.Chain, 3)
	boom := errors.New("boom")
	count := 0
	res, err := driver.Run(sys, driver.WithOnStep(func(driver.Step) error {
		count++
		if count == 2 {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v; want wrapped boom", err)
	}
	if res == nil || len(res.Steps) != 2 {
		t.Errorf("partial result missing: %+v", res)
	}
}

// TestRun_StepLimit aborts runaway runs.
func TestRun_StepLimit(t *testing.T) {
	sys := mustBuild(t, trolls.Chain, 8)
	res, err := driver.Run(sys, driver.WithMaxSteps(3))
	if !errors.Is(err, driver.ErrStepLimit) {
		t.Fatalf("error = %v; want ErrStepLimit", err)
	}
	if len(res.Steps) != 3 {
		t.Errorf("Steps = %d; want 3", len(res.Steps))
	}
}

// TestRun_ContextCancel stops before the first advance.
func TestRun_ContextCancel(t *testing.T) {
	sys := mustBuild(t, trolls.Chain, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := driver.Run(sys, driver.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v; want context.Canceled", err)
	}
	if len(res.Steps) != 0 {
		t.Errorf("Steps = %d; want 0", len(res.Steps))
	}
}

// TestRun_FenceSeedRoundTrip: two passes on a seeded fence return the
// board to its seed.
func TestRun_FenceSeedRoundTrip(t *testing.T) {
	seed := []lights.Bit{0, 0, 0, 1}
	sys := mustBuild(t, trolls.Fence, 4, trolls.WithInitial(seed))
	res, err := driver.Run(sys)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := asString(res.Steps[len(res.Steps)-1].Lights); got != asString(seed) {
		t.Errorf("after two passes board = %s; want %s", got, asString(seed))
	}
}
