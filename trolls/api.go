// SPDX-License-Identifier: MIT
// Package: glimmer/trolls
//
// api.go - the single public construction entry point.
//
// Design contract (strict):
//   - One orchestrator: Build(kind, n, opts...). Validates everything,
//     allocates the board, delegates to the impl_*.go constructors.
//   - Constructors receive pre-validated parameters and cannot fail.
//   - Determinism: same kind, n and options ⇒ an identical topology
//     and a byte-for-byte identical flip sequence.
//   - Safety: never panic; report violations as sentinel errors before
//     any Advance is possible.

package trolls

import (
	"fmt"

	"github.com/katalvlaran/glimmer/lights"
)

// Build constructs the requested topology over n lights and returns it
// ready to advance. Options select the BranchChain split index, the
// SegmentChain endpoint set, and the Fence initial snapshot; options
// irrelevant to kind are ignored.
//
// Errors:
//   - ErrBadCount: n < 1.
//   - ErrBranchIndex: BranchChain without 1 ≤ M ≤ n.
//   - ErrNoEndpoints / ErrEndpointRange: SegmentChain set violations.
//   - ErrBadSnapshot / lights.ErrBadBit: Fence snapshot violations.
//   - ErrUnknownKind: kind is not one of the six constructions.
func Build(kind Kind, n int, opts ...Option) (*System, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}
	if n < 1 {
		return nil, fmt.Errorf("trolls: Build(%s, %d): %w", kind, n, ErrBadCount)
	}

	switch kind {
	case Free, Chain, ReverseChain, BranchChain, SegmentChain:
		board, err := lights.New(n)
		if err != nil {
			return nil, fmt.Errorf("trolls: Build(%s): %w", kind, err)
		}
		root, err := buildOn(kind, board, &o)
		if err != nil {
			return nil, err
		}
		return &System{Kind: kind, Root: root, Board: board}, nil

	case Fence:
		board, err := fenceBoard(n, o.initial)
		if err != nil {
			return nil, err
		}
		return &System{Kind: kind, Root: newFence(board), Board: board}, nil

	default:
		return nil, fmt.Errorf("trolls: Build(%d): %w", uint8(kind), ErrUnknownKind)
	}
}

// buildOn dispatches the zero-initial-state kinds after validating
// their kind-specific parameters.
func buildOn(kind Kind, board *lights.Board, o *buildOptions) (*Troll, error) {
	n := board.Len()
	switch kind {
	case Free:
		return newFree(board), nil
	case Chain:
		return newChain(board), nil
	case ReverseChain:
		return newReverseChain(board), nil
	case BranchChain:
		if o.branch < 1 || o.branch > n {
			return nil, fmt.Errorf("trolls: Build(%s): M=%d with n=%d: %w",
				kind, o.branch, n, ErrBranchIndex)
		}
		return newBranchChain(board, o.branch), nil
	default: // SegmentChain
		endpoints, err := normalizeEndpoints(o.endpoints, n)
		if err != nil {
			return nil, err
		}
		return newSegmentChain(board, endpoints), nil
	}
}

// fenceBoard builds the Fence board from the optional initial
// snapshot, defaulting to all-off.
func fenceBoard(n int, initial []lights.Bit) (*lights.Board, error) {
	if initial == nil {
		board, err := lights.New(n)
		if err != nil {
			return nil, fmt.Errorf("trolls: Build(%s): %w", Fence, err)
		}
		return board, nil
	}
	if len(initial) != n {
		return nil, fmt.Errorf("trolls: Build(%s): snapshot length %d, n=%d: %w",
			Fence, len(initial), n, ErrBadSnapshot)
	}
	board, err := lights.NewFrom(initial)
	if err != nil {
		return nil, fmt.Errorf("trolls: Build(%s): %w", Fence, err)
	}
	return board, nil
}
