// SPDX-License-Identifier: MIT
// Package: glimmer/trolls
//
// impl_branch.go - two chain segments merged at unit 1.
//
// Contract (split index M, pre-validated 1 ≤ M ≤ N):
//   - Units 1..M-1 drain their successor in AWAKE0/ASLEEP0 (forward
//     style); units M+1..N-1 drain theirs in ASLEEP1/AWAKE1 (reverse
//     style). Units M and N are segment leaves.
//   - When M < N, unit 1 additionally owns the upper segment's root
//     (unit M+1) and drains it in its ASLEEP1 and AWAKE1 phases,
//     merging the two counters into one traversal.
//   - Root is unit 1.

package trolls

import "github.com/katalvlaran/glimmer/lights"

// newBranchChain wires the branch chain and returns its root (unit 1).
func newBranchChain(board *lights.Board, m int) *Troll {
	n := board.Len()
	units := newUnits(board)
	for k := 1; k <= n; k++ {
		var plans [numPhases]phasePlan
		if k < m {
			child := units[k+1]
			plans[phaseWakeOn].drains = []*Troll{child}
			plans[phaseRestOff].drains = []*Troll{child}
		}
		if m < k && k < n {
			child := units[k+1]
			plans[phaseRestOn].drains = []*Troll{child}
			plans[phaseWakeOff].drains = []*Troll{child}
		}
		if k == 1 && m < n {
			upper := units[m+1]
			plans[phaseRestOn].drains = append(plans[phaseRestOn].drains, upper)
			plans[phaseWakeOff].drains = append(plans[phaseWakeOff].drains, upper)
		}
		units[k].compile(plans, false)
	}
	return units[1]
}
