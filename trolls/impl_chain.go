// SPDX-License-Identifier: MIT
// Package: glimmer/trolls
//
// impl_chain.go - the forward chain.
//
// Contract:
//   - Unit k (k < N) drains unit k+1 in AWAKE0 and ASLEEP0; unit N is
//     a leaf whose asleep phases emit Idle directly.
//   - Root is unit 1.
//   - Enumerates the order ideals of the chain poset 1 < 2 < ... < N:
//     lights turn on from index N leftwards, then off in mirror order,
//     2N active steps per full cycle.

package trolls

import "github.com/katalvlaran/glimmer/lights"

// newChain wires the forward chain and returns its root (unit 1).
func newChain(board *lights.Board) *Troll {
	n := board.Len()
	units := newUnits(board)
	for k := 1; k <= n; k++ {
		var plans [numPhases]phasePlan
		if k < n {
			child := units[k+1]
			plans[phaseWakeOn].drains = []*Troll{child}
			plans[phaseRestOff].drains = []*Troll{child}
		}
		units[k].compile(plans, false)
	}
	return units[1]
}
