// Package fognav is a fog-of-war navigation engine: an agent crosses a partially observed
// grid toward an ordered list of objectives, replanning whenever newly revealed terrain
// invalidates its route, and choosing among terrain unlocks between objectives to keep the
// next leg cheap.
//
// What is inside:
//
//	hashmap/  generic separate-chaining hash map with caller-supplied equality and hashing
//	pqueue/   generic binary heap with a caller-supplied ordering
//	terrain/  the grid: terrain codes, fog-of-war flags, travel times, radius reveal
//	planner/  Dijkstra over the 4-connected grid, tagged Found/Unreachable result
//	whatif/   simulate each offered unlock, commit the cheapest
//	mission/  objectives, events and the executor state machine
//	mapio/    node/edge/objective file parsers, event writer, output diff
//	cmd/      the fognav command
//	examples/ a runnable fog-of-war scenario
//
// Terrain codes:
//
//	0   open, always passable
//	1   blocked, never passable
//	≥2  conditional: looks passable until revealed, then blocked unless unlocked
//
// Quick ASCII example:
//
//	S 0 2 0 T      S = start, T = objective
//	0 0 0 0 0
//
// From S the straight route looks free. One step in, the 2 is revealed as blocked, the
// agent reports "Path is impassable!" and detours through the second row.
//
//	go run ./cmd/fognav nodes.txt edges.txt objectives.txt output.txt
package fognav
