// SPDX-License-Identifier: MIT
// Package: glimmer/trolls
//
// impl_free.go - the unrestricted variant.
//
// Contract:
//   - Unit k toggles its light on one step and forwards unit k-1's
//     signal on the next; unit 1 emits Idle instead.
//   - Root is unit N. No draining: every unit acts the moment its
//     parent defers to it.
//   - Enumerates the full binary-reflected Gray code: 2^N - 1 active
//     steps per pass, each flipping exactly one light.

package trolls

import "github.com/katalvlaran/glimmer/lights"

// newFree wires the unrestricted topology and returns its root (unit N).
func newFree(board *lights.Board) *Troll {
	n := board.Len()
	units := newUnits(board)
	for k := 1; k <= n; k++ {
		t := units[k]
		t.prog = append(t.prog, step{code: opToggle})
		if k > 1 {
			t.prog = append(t.prog, step{code: opForward, child: units[k-1]})
		} else {
			t.prog = append(t.prog, step{code: opIdle})
		}
	}
	return units[n]
}
