// SPDX-License-Identifier: MIT
// Package: glimmer/trolls
//
// impl_segments.go - independent chain segments cut by an endpoint set.
//
// Contract (endpoint set E, pre-validated non-empty, each e ∈ [1, N]):
//   - For k ∉ E with k < N and k+1 ∉ E, unit k drains unit k+1 in
//     AWAKE0/ASLEEP0, exactly like the forward chain. A successor that
//     is itself an endpoint starts a new segment and is not coupled.
//   - Every endpoint except the smallest forwards its predecessor
//     endpoint's signal in its ASLEEP1 and ASLEEP0 phases instead of
//     emitting Idle, stitching the segments into one traversal.
//   - Root is max(E). The partner of each endpoint is precomputed at
//     construction time; no per-step search happens.

package trolls

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/glimmer/lights"
)

// normalizeEndpoints deduplicates and sorts the raw endpoint set and
// validates every element against the light count.
func normalizeEndpoints(raw []int, n int) ([]int, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("trolls: Build(%s): %w", SegmentChain, ErrNoEndpoints)
	}
	set := treeset.NewWithIntComparator()
	for _, e := range raw {
		if e < 1 || e > n {
			return nil, fmt.Errorf("trolls: Build(%s): endpoint %d with n=%d: %w",
				SegmentChain, e, n, ErrEndpointRange)
		}
		set.Add(e)
	}
	out := make([]int, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(int))
	}
	return out, nil
}

// newSegmentChain wires the multi-endpoint topology and returns its
// root, the unit at the largest endpoint. endpoints must be sorted
// ascending and unique (normalizeEndpoints guarantees both).
func newSegmentChain(board *lights.Board, endpoints []int) *Troll {
	n := board.Len()
	isEndpoint := make(map[int]bool, len(endpoints))
	partner := make(map[int]int, len(endpoints))
	for i, e := range endpoints {
		isEndpoint[e] = true
		if i > 0 {
			partner[e] = endpoints[i-1]
		}
	}

	units := newUnits(board)
	for k := 1; k <= n; k++ {
		var plans [numPhases]phasePlan
		if k < n && !isEndpoint[k+1] {
			child := units[k+1]
			plans[phaseWakeOn].drains = []*Troll{child}
			plans[phaseRestOff].drains = []*Troll{child}
		}
		if p, ok := partner[k]; ok {
			plans[phaseRestOn].forward = units[p]
			plans[phaseRestOff].forward = units[p]
		}
		units[k].compile(plans, false)
	}
	return units[endpoints[len(endpoints)-1]]
}
