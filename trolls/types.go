// Package trolls defines the Signal and Kind enumerations plus the
// functional options accepted by Build.
package trolls

import (
	"fmt"

	"github.com/katalvlaran/glimmer/lights"
)

// Signal is the per-step result of advancing a unit.
type Signal uint8

const (
	// Idle reports an advance that flipped no light.
	Idle Signal = iota
	// Active reports an advance that flipped exactly one light.
	Active
)

// String implements fmt.Stringer.
func (s Signal) String() string {
	if s == Active {
		return "Active"
	}
	return "Idle"
}

// Kind selects one of the six topology constructions.
type Kind uint8

const (
	// Free is the unrestricted variant: every unit toggles freely.
	Free Kind = iota
	// Chain couples unit k to k+1 around the waking phases; root 1.
	Chain
	// ReverseChain couples unit k to k+1 in the sleeping phases; root 1.
	ReverseChain
	// BranchChain merges a 1..M chain and an M+1..N chain at unit 1.
	BranchChain
	// SegmentChain cuts the chain into segments at an endpoint set.
	SegmentChain
	// Fence computes successors from index parity and supports resuming
	// from an initial snapshot.
	Fence
)

// kindNames maps Kind to its canonical CLI spelling.
var kindNames = map[Kind]string{
	Free:         "free",
	Chain:        "chain",
	ReverseChain: "reverse-chain",
	BranchChain:  "branch-chain",
	SegmentChain: "segment-chain",
	Fence:        "fence",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind resolves a canonical kind name (as printed by Kind.String)
// into its Kind. Returns ErrUnknownKind for anything else.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("trolls: %q: %w", name, ErrUnknownKind)
}

// Kinds lists every supported Kind in declaration order.
func Kinds() []Kind {
	return []Kind{Free, Chain, ReverseChain, BranchChain, SegmentChain, Fence}
}

// Option configures Build via functional arguments. Options irrelevant
// to the requested Kind are ignored, mirroring the fixed-at-construction
// policy: nothing an option sets can change after Build returns.
type Option func(*buildOptions)

// buildOptions collects raw parameters; Build validates them against
// the requested kind and light count.
type buildOptions struct {
	branch    int
	endpoints []int
	initial   []lights.Bit
}

// WithBranchIndex sets the split index M for BranchChain: units 1..M
// form the lower segment, units M+1..N the upper one.
func WithBranchIndex(m int) Option {
	return func(o *buildOptions) {
		o.branch = m
	}
}

// WithEndpoints sets the endpoint set E for SegmentChain. Duplicates
// are collapsed and order is irrelevant; the set is copied.
func WithEndpoints(endpoints ...int) Option {
	return func(o *buildOptions) {
		o.endpoints = append([]int(nil), endpoints...)
	}
}

// WithInitial supplies the starting board snapshot for Fence. The
// snapshot is copied and its length must equal the light count passed
// to Build.
func WithInitial(bits []lights.Bit) Option {
	return func(o *buildOptions) {
		o.initial = append([]lights.Bit(nil), bits...)
	}
}
