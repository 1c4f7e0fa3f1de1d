package lights_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/glimmer/lights"
)

// TestNew_Errors verifies that empty boards are rejected.
func TestNew_Errors(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		if _, err := lights.New(n); !errors.Is(err, lights.ErrEmptyBoard) {
			t.Errorf("New(%d) error = %v; want ErrEmptyBoard", n, err)
		}
	}
}

// TestNewFrom_Errors covers empty and out-of-range snapshots.
func TestNewFrom_Errors(t *testing.T) {
	cases := []struct {
		name string
		bits []lights.Bit
		err  error
	}{
		{"Empty", nil, lights.ErrEmptyBoard},
		{"BadValue", []lights.Bit{0, 2, 1}, lights.ErrBadBit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := lights.NewFrom(tc.bits); !errors.Is(err, tc.err) {
				t.Errorf("NewFrom(%v) error = %v; want %v", tc.bits, err, tc.err)
			}
		})
	}
}

// TestNewFrom_Copies asserts the board never retains the caller's slice.
func TestNewFrom_Copies(t *testing.T) {
	seed := []lights.Bit{1, 0, 1}
	b, err := lights.NewFrom(seed)
	if err != nil {
		t.Fatalf("NewFrom error: %v", err)
	}
	seed[0] = 0
	if b.Bit(1) != lights.On {
		t.Errorf("board shares storage with the input snapshot")
	}
}

// TestSetToggleBit exercises 1-based accessors.
func TestSetToggleBit(t *testing.T) {
	b, err := lights.New(3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	b.Set(2, lights.On)
	if got := b.String(); got != "010" {
		t.Errorf("after Set(2): %q; want %q", got, "010")
	}
	if v := b.Toggle(2); v != lights.Off {
		t.Errorf("Toggle(2) = %d; want Off", v)
	}
	if v := b.Toggle(3); v != lights.On {
		t.Errorf("Toggle(3) = %d; want On", v)
	}
	if got := b.String(); got != "001" {
		t.Errorf("final state %q; want %q", got, "001")
	}
	if b.Bit(3) != lights.On || b.Bit(1) != lights.Off {
		t.Errorf("Bit accessors disagree with String: %q", b.String())
	}
}

// TestSnapshotIsolation asserts snapshots are copies, not views.
func TestSnapshotIsolation(t *testing.T) {
	b, _ := lights.New(2)
	snap := b.Snapshot()
	b.Set(1, lights.On)
	if snap[0] != lights.Off {
		t.Errorf("snapshot mutated by later Set")
	}
	snap[1] = lights.On
	if b.Bit(2) != lights.Off {
		t.Errorf("board mutated through snapshot")
	}
}

// TestResetAndClone covers run-to-run reuse.
func TestResetAndClone(t *testing.T) {
	b, _ := lights.NewFrom([]lights.Bit{1, 1, 0})
	c := b.Clone()
	b.Reset()
	if got := b.String(); got != "000" {
		t.Errorf("Reset: %q; want 000", got)
	}
	if got := c.String(); got != "110" {
		t.Errorf("Clone affected by Reset on origin: %q", got)
	}
}
