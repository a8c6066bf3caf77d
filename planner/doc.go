// Package planner finds minimum-cost routes across a terrain.Grid.
//
// Overview:
//
//   - Plan runs Dijkstra from a source to a target over the 4-connected grid, with the
//     grid's travel-time table as edge weights.
//   - A neighbor is admitted only if it lies in bounds, is currently Passable, has not been
//     settled (Visited) in this pass, and has a finite travel time from the current cell.
//   - Exploration stops as soon as the target is settled.
//   - The frontier is a pqueue.Queue ordered by ascending cost; best-known costs and
//     predecessors live in hashmap.Map tables keyed by terrain.Coord.
//
// Fog of war:
//
//   - Unknown conditional cells look passable, so a route may cross terrain that later
//     turns out to be blocked. Callers reveal and replan; see package mission.
//   - Source passability is never checked. The agent may stand on a cell it could not enter.
//
// Visited flags:
//
//   - Plan settles cells by setting their Visited flag and never clears it. Callers must
//     call grid.ResetVisited before every Plan.
//
// Result:
//
//   - Route{Status: Found} carries the ordered cells from source to target inclusive and the
//     summed travel time. Source == target yields one cell at cost 0.
//   - Route{Status: Unreachable} carries no cells and Cost == terrain.Infinity.
//   - Among equal-cost routes, which one is returned is unspecified.
//
// Complexity:
//
//   - Time:  O(N log N) with N = W×H (each cell settled once, ≤4 frontier pushes per cell).
//   - Space: O(N).
//
// Errors:
//
//   - ErrNilGrid:           grid is nil.
//   - ErrSourceOutOfBounds: source lies outside the grid.
//   - ErrTargetOutOfBounds: target lies outside the grid.
//   - ErrBadMaxCost:        WithMaxCost received a negative or NaN cap.
package planner
