package trolls

import "errors"

// Sentinel errors for topology construction. Build fails fast: any
// violation below aborts construction before a single Advance is
// possible, and no partially wired topology is ever returned.
var (
	// ErrBadCount indicates a non-positive light count.
	ErrBadCount = errors.New("trolls: light count must be positive")

	// ErrBranchIndex indicates a BranchChain split index outside [1, N].
	ErrBranchIndex = errors.New("trolls: branch index out of range")

	// ErrNoEndpoints indicates a SegmentChain build without endpoints.
	ErrNoEndpoints = errors.New("trolls: endpoint set is empty")

	// ErrEndpointRange indicates an endpoint outside [1, N].
	ErrEndpointRange = errors.New("trolls: endpoint out of range")

	// ErrBadSnapshot indicates a Fence initial snapshot whose length
	// differs from the light count.
	ErrBadSnapshot = errors.New("trolls: initial snapshot length mismatch")

	// ErrUnknownKind indicates an unrecognized topology kind.
	ErrUnknownKind = errors.New("trolls: unknown topology kind")
)
