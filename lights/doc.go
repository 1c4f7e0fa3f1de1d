// Package lights provides the shared mutable board of binary cells that
// every troll in a topology toggles, plus snapshot and reset helpers.
//
// What:
//
//   - Board wraps a fixed-length row of N binary cells, indexed 1..N.
//   - Exactly one owner (the troll bound to an index) is expected to
//     mutate each cell; observers read through Snapshot, which copies.
//   - A Board is created once per run and may be Reset between
//     independent runs.
//
// Why:
//
//   - The board is the single mutation surface of the whole generator:
//     every topology, however wired, expresses its traversal as
//     single-bit changes to one shared Board.
//
// Errors:
//
//   - ErrEmptyBoard: a board must have at least one cell.
//   - ErrBadBit: an initial snapshot holds a value other than 0 or 1.
//
// Cell accessors use 1-based indices to match unit numbering; an index
// outside [1, Len] is a programmer error and panics like any
// out-of-range slice access.
package lights
