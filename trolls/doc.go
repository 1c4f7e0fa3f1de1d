// Package trolls implements the coupled four-phase automata that
// generate single-bit flip sequences over a shared lights.Board, and
// the six topologies that wire them together.
//
// Key ideas:
//
//   - One unit ("troll") per light index. Each Advance performs exactly
//     one phase transition and reports a Signal: Active when its step
//     flipped a light, Idle otherwise.
//   - A unit cycles AWAKE0 → ASLEEP1 → AWAKE1 → ASLEEP0: the awake
//     phases write its light (on, then off); the asleep phases emit
//     Idle or forward a coupled unit's signal.
//   - Draining: before acting, a unit may pass through a child's Active
//     steps one per Advance; the child's terminating Idle is swallowed
//     and the parent continues within the same call. This wait/signal
//     protocol is what serializes N independent automata into one
//     deterministic flip ordering.
//   - Each topology compiles, per unit, a fixed step program at
//     construction time (which children are drained in which phase,
//     and whether an asleep phase forwards a coupling unit). The phase
//     skeleton is implemented once; topologies differ only in the
//     programs they emit.
//
// Topologies (Kind):
//
//   - Free: no coupling constraints; root N, forwarding downward.
//     Enumerates the full 2^N binary-reflected Gray code.
//   - Chain: unit k drains k+1 in AWAKE0 and ASLEEP0; root 1.
//   - ReverseChain: draining moved to ASLEEP1 and AWAKE1; visits the
//     Chain states mirrored across the board.
//   - BranchChain(M): units 1..M chain-coupled, units M+1..N
//     reverse-coupled, merged at unit 1.
//   - SegmentChain(E): independent chain segments cut at the endpoint
//     set E; each endpoint after the smallest forwards to its
//     predecessor endpoint; root is max(E).
//   - Fence: successors kp/kpp computed from index parity; accepts an
//     initial snapshot and resumes units whose lights are already on.
//
// Construction is iterative: all units are allocated into an
// index-keyed table, then programs are compiled wiring child pointers
// into existing units. Advance never fails after a successful Build;
// all validation is up-front through sentinel errors (branch with
// errors.Is).
//
// Complexity:
//
//   - Build: O(N) time and space for every kind.
//   - Advance: amortized O(1) steps per emitted signal; the recursion
//     depth is bounded by the topology depth (≤ N).
package trolls
