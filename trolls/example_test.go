package trolls_test

import (
	"fmt"

	"github.com/katalvlaran/glimmer/lights"
	"github.com/katalvlaran/glimmer/trolls"
)

// ExampleBuild pulls one forward pass by hand: advance until the root
// reports Idle, printing the board after every flip.
func ExampleBuild() {
	sys, err := trolls.Build(trolls.Chain, 3)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	for {
		sig := sys.Advance()
		if sig == trolls.Idle {
			break
		}
		snap := sys.Snapshot()
		buf := make([]byte, len(snap))
		for i, b := range snap {
			buf[i] = '0' + byte(b)
		}
		fmt.Println(string(buf))
	}
	// Output:
	// 001
	// 011
	// 111
}

// ExampleBuild_fence resumes a fence mid-cycle from a snapshot whose
// last light is already on: the first event clears it.
func ExampleBuild_fence() {
	sys, err := trolls.Build(trolls.Fence, 4,
		trolls.WithInitial([]lights.Bit{0, 0, 0, 1}))
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	sys.Advance()
	fmt.Println(sys.Board)
	// Output:
	// 0000
}

// ExampleParseKind resolves CLI spellings into topology kinds.
func ExampleParseKind() {
	kind, err := trolls.ParseKind("segment-chain")
	if err != nil {
		fmt.Println("parse:", err)
		return
	}
	fmt.Println(kind == trolls.SegmentChain)
	// Output:
	// true
}
