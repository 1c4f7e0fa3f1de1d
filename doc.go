// Package glimmer generates Gray-style flip sequences over a shared row
// of binary lights, driven by chains and fences of coupled four-phase
// automata ("trolls").
//
// 🚀 What is glimmer?
//
//	A small, deterministic, pure-Go sequence generator built from one
//	generic automaton and six ways of wiring it together:
//		• Free          — unrestricted toggling: the full 2^N reflected Gray code
//		• Chain         — forward chain, coupling around the waking phases
//		• ReverseChain  — same chain, coupling moved to the sleeping phases
//		• BranchChain   — two chain segments merged at the first unit
//		• SegmentChain  — any number of segments cut by an endpoint set
//		• Fence         — successors computed from index parity, resumable
//		                  from an arbitrary initial snapshot
//
// Every advance of the root unit flips at most one light, and the order
// of flips is a pure function of the chosen topology: the wait/signal
// coupling between parent and child units turns N tiny state machines
// into a single total ordering of events.
//
// Under the hood, everything is organized under three subpackages:
//
//	lights/ — the shared mutable board of binary cells
//	trolls/ — the automaton, the drain combinator, and the six topologies
//	driver/ — multi-pass sequence runner with hooks and cancellation
//
// Quick ASCII example (Chain, N=3):
//
//	000 → 001 → 011 → 111 → 011 → 001 → 000
//
//	each arrow is one Active step; exactly one bit changes per step.
//
// A ready-to-use CLI lives in cmd/glimmer; see the run and batch
// subcommands for tables and YAML scenarios.
//
//	go get github.com/katalvlaran/glimmer
package glimmer
