// SPDX-License-Identifier: MIT
// Package: glimmer/trolls
//
// impl_fence.go - the fence digraph.
//
// Contract:
//   - Successor indices are computed from parity, never stored:
//     kp  = k+1 if k is odd, else k+2
//     kpp = k+2 if k is odd, else k+1
//     A successor beyond N is simply absent.
//   - Unit k drains kp in AWAKE0/ASLEEP0 and kpp in ASLEEP1/AWAKE1.
//     Both successors are strictly greater than k, so the wiring is a
//     layered DAG and Advance never re-enters an ancestor.
//   - Resume: a unit whose light is already on at construction starts
//     its cycle at AWAKE1, replaying the on→off half-cycle first so
//     its phase agrees with the supplied snapshot.
//   - Root is unit 1.

package trolls

import "github.com/katalvlaran/glimmer/lights"

// newFence wires the fence digraph over the (possibly pre-lit) board
// and returns its root (unit 1).
func newFence(board *lights.Board) *Troll {
	n := board.Len()
	units := newUnits(board)
	for k := 1; k <= n; k++ {
		kp, kpp := k+1, k+2
		if k%2 == 0 {
			kp, kpp = k+2, k+1
		}
		var plans [numPhases]phasePlan
		if kp <= n {
			plans[phaseWakeOn].drains = []*Troll{units[kp]}
			plans[phaseRestOff].drains = []*Troll{units[kp]}
		}
		if kpp <= n {
			plans[phaseRestOn].drains = []*Troll{units[kpp]}
			plans[phaseWakeOff].drains = []*Troll{units[kpp]}
		}
		units[k].compile(plans, board.Bit(k) == lights.On)
	}
	return units[1]
}

// FenceSeed returns the striped starting snapshot traditionally used
// for fence runs: blocks of three unlit cells alternating with blocks
// of three lit ones, truncated to n.
func FenceSeed(n int) []lights.Bit {
	seed := make([]lights.Bit, n)
	for i := range seed {
		if (i/3)%2 == 1 {
			seed[i] = lights.On
		}
	}
	return seed
}
