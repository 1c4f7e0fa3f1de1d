// SPDX-License-Identifier: MIT
// Package: glimmer/trolls
//
// impl_reverse.go - the reverse chain.
//
// Contract:
//   - Same tree shape as the forward chain, but unit k (k < N) drains
//     unit k+1 in ASLEEP1 and AWAKE1 instead of AWAKE0/ASLEEP0.
//   - Root is unit 1.
//   - Shifting the coupling point by one phase makes lights turn on
//     from index 1 rightwards: the visited states are the forward
//     chain's states mirrored across the board.

package trolls

import "github.com/katalvlaran/glimmer/lights"

// newReverseChain wires the reverse chain and returns its root (unit 1).
func newReverseChain(board *lights.Board) *Troll {
	n := board.Len()
	units := newUnits(board)
	for k := 1; k <= n; k++ {
		var plans [numPhases]phasePlan
		if k < n {
			child := units[k+1]
			plans[phaseRestOn].drains = []*Troll{child}
			plans[phaseWakeOff].drains = []*Troll{child}
		}
		units[k].compile(plans, false)
	}
	return units[1]
}
