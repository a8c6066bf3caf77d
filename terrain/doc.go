// Package terrain models a fixed-size 2D land grid under fog of war.
//
// What:
//
//   - Grid owns Width×Height cells (row-major) and a sparse, symmetric table of travel
//     times between coordinate pairs.
//   - Every Cell carries a terrain code, a known flag, a passable flag and a visited flag
//     that the path planner uses as scratch state.
//   - Reveal resolves the true passability of cells inside a Euclidean radius.
//   - OpenType / Restore / Unlock edit passability in bulk for what-if evaluation and for
//     permanent terrain unlocks.
//
// Terrain codes:
//
//   - TypeOpen (0):     always passable, known from the start.
//   - TypeBlocked (1):  never passable, known from the start.
//   - code ≥ 2:         looks passable until revealed, then resolves to impassable.
//
// Travel times:
//
//   - AddTravelTime stores both directions; TravelTime returns Infinity when no entry
//     exists. Infinity is a sentinel for "no edge", never a real distance.
//
// Complexity:
//
//   - Cell, CellAt, InBounds, TravelTime: O(1) (expected, for TravelTime).
//   - Reveal: O(r²).
//   - ResetVisited, OpenType, Unlock: O(W×H).
//
// Errors:
//
//   - ErrBadDimensions:  width or height below 1.
//   - ErrOutOfBounds:    a coordinate lies outside [0,W)×[0,H).
//   - ErrBadTerrainCode: negative terrain code.
//   - ErrNegativeTravelTime:  negative or NaN travel time.
package terrain
