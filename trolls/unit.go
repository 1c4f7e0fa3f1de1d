package trolls

import "github.com/katalvlaran/glimmer/lights"

// opcode identifies one atomic step of a unit's compiled program.
type opcode uint8

const (
	// opDrain passes through a child's Active steps one per Advance;
	// the child's terminating Idle is swallowed and execution falls
	// through to the next step within the same Advance call.
	opDrain opcode = iota
	// opForward advances a coupling unit once and returns its signal.
	opForward
	// opSet switches this unit's light on and returns Active.
	opSet
	// opClear switches this unit's light off and returns Active.
	opClear
	// opToggle inverts this unit's light and returns Active.
	opToggle
	// opIdle returns Idle.
	opIdle
)

// step is one program instruction; child is set for opDrain/opForward.
type step struct {
	code  opcode
	child *Troll
}

// Troll is one four-phase unit bound to a single light index. Its
// behavior is a fixed cyclic program compiled at construction time;
// Advance executes it one signal at a time and never fails.
type Troll struct {
	index int
	board *lights.Board
	prog  []step
	pc    int
}

// Index reports the 1-based light index this unit owns.
func (t *Troll) Index() int { return t.index }

// Advance performs exactly one phase transition and reports whether it
// flipped a light. Draining steps recurse into children on the same
// call stack; child pointers never point back toward an ancestor, so
// the recursion is bounded by the topology depth.
func (t *Troll) Advance() Signal {
	for {
		s := &t.prog[t.pc]
		switch s.code {
		case opDrain:
			if s.child.Advance() == Active {
				return Active
			}
			// Child exhausted its matching sub-phase: swallow the Idle
			// and continue with this unit's next step.
			t.step()
		case opForward:
			sig := s.child.Advance()
			t.step()
			return sig
		case opSet:
			t.board.Set(t.index, lights.On)
			t.step()
			return Active
		case opClear:
			t.board.Set(t.index, lights.Off)
			t.step()
			return Active
		case opToggle:
			t.board.Toggle(t.index)
			t.step()
			return Active
		default: // opIdle
			t.step()
			return Idle
		}
	}
}

// step moves the program counter forward, wrapping at the cycle end.
func (t *Troll) step() {
	t.pc++
	if t.pc == len(t.prog) {
		t.pc = 0
	}
}

// Phase order of the shared skeleton. AWAKE0 sets the light, ASLEEP1
// rests, AWAKE1 clears it, ASLEEP0 rests again.
const (
	phaseWakeOn = iota
	phaseRestOn
	phaseWakeOff
	phaseRestOff
	numPhases
)

// phasePlan is the per-phase policy a topology supplies for one unit:
// children drained before the phase action, and (for the rest phases)
// an optional coupling unit whose signal replaces the plain Idle.
type phasePlan struct {
	drains  []*Troll
	forward *Troll
}

// newUnits allocates one unit per board cell into a 1-based table.
// Programs are compiled afterwards so that plans may reference units
// at any index, per the wire-after-allocation construction scheme.
func newUnits(board *lights.Board) []*Troll {
	units := make([]*Troll, board.Len()+1)
	for k := 1; k <= board.Len(); k++ {
		units[k] = &Troll{index: k, board: board}
	}
	return units
}

// compile translates the four phase plans into this unit's cyclic step
// program. When resumed is true the unit starts at AWAKE1 (including
// that phase's drains), replaying the on→off half-cycle first so its
// internal phase agrees with an externally supplied lit cell.
func (t *Troll) compile(plans [numPhases]phasePlan, resumed bool) {
	wakeOff := 0
	for ph := 0; ph < numPhases; ph++ {
		if ph == phaseWakeOff {
			wakeOff = len(t.prog)
		}
		for _, c := range plans[ph].drains {
			t.prog = append(t.prog, step{code: opDrain, child: c})
		}
		switch ph {
		case phaseWakeOn:
			t.prog = append(t.prog, step{code: opSet})
		case phaseWakeOff:
			t.prog = append(t.prog, step{code: opClear})
		default:
			if fw := plans[ph].forward; fw != nil {
				t.prog = append(t.prog, step{code: opForward, child: fw})
			} else {
				t.prog = append(t.prog, step{code: opIdle})
			}
		}
	}
	if resumed {
		t.pc = wakeOff
	}
}

// System bundles a built topology: the root unit driving the traversal
// and the shared board every unit mutates.
type System struct {
	Kind  Kind
	Root  *Troll
	Board *lights.Board
}

// Advance advances the root unit by one step.
func (s *System) Advance() Signal { return s.Root.Advance() }

// Snapshot returns a copy of the current board state.
func (s *System) Snapshot() []lights.Bit { return s.Board.Snapshot() }
