// Command glimmer prints the flip sequences produced by the coupled
// troll topologies: pick a kind, a light count, and watch the board.
//
// Usage:
//
//	glimmer run chain -n 3
//	glimmer run segment-chain -n 6 --endpoints 1,3,4
//	glimmer run fence -n 6
//	glimmer batch --config runs.yaml
//	glimmer kinds
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
