package lights

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for board construction.
var (
	// ErrEmptyBoard indicates a requested board with no cells.
	ErrEmptyBoard = errors.New("lights: board must have at least one cell")

	// ErrBadBit indicates an initial snapshot value other than Off or On.
	ErrBadBit = errors.New("lights: cell value must be 0 or 1")
)

// Bit is the value of one light cell: Off (0) or On (1).
type Bit uint8

const (
	// Off is an unlit cell.
	Off Bit = 0
	// On is a lit cell.
	On Bit = 1
)

// Board is a fixed-length row of binary cells, indexed 1..Len.
// It is not safe for concurrent use; the generator is single-threaded
// by design and all mutation routes through one shared instance.
type Board struct {
	cells []Bit
}

// New returns a Board of n unlit cells.
// Returns ErrEmptyBoard if n < 1.
func New(n int) (*Board, error) {
	if n < 1 {
		return nil, fmt.Errorf("lights: New(%d): %w", n, ErrEmptyBoard)
	}
	return &Board{cells: make([]Bit, n)}, nil
}

// NewFrom returns a Board initialized from the given snapshot.
// The snapshot is copied; later mutation of bits does not affect the
// board. Returns ErrEmptyBoard for an empty snapshot and ErrBadBit for
// any value outside {0, 1}.
func NewFrom(bits []Bit) (*Board, error) {
	if len(bits) == 0 {
		return nil, fmt.Errorf("lights: NewFrom: %w", ErrEmptyBoard)
	}
	cells := make([]Bit, len(bits))
	for i, b := range bits {
		if b != Off && b != On {
			return nil, fmt.Errorf("lights: NewFrom: cell %d holds %d: %w", i+1, b, ErrBadBit)
		}
		cells[i] = b
	}
	return &Board{cells: cells}, nil
}

// Len reports the number of cells.
func (b *Board) Len() int { return len(b.cells) }

// Bit returns the value of cell k (1-based).
func (b *Board) Bit(k int) Bit { return b.cells[k-1] }

// Set writes v into cell k (1-based).
func (b *Board) Set(k int, v Bit) { b.cells[k-1] = v }

// Toggle inverts cell k (1-based) and returns its new value.
func (b *Board) Toggle(k int) Bit {
	b.cells[k-1] ^= 1
	return b.cells[k-1]
}

// Snapshot returns a copy of the current cell values in index order.
func (b *Board) Snapshot() []Bit {
	out := make([]Bit, len(b.cells))
	copy(out, b.cells)
	return out
}

// Reset switches every cell Off, ready for an independent run.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Off
	}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{cells: b.Snapshot()}
}

// String renders the board as a compact bit string, e.g. "010011".
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(len(b.cells))
	for _, c := range b.cells {
		sb.WriteByte('0' + byte(c))
	}
	return sb.String()
}
