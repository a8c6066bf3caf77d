package terrain

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fognav/hashmap"
)

// NewGrid allocates a width×height grid. Every cell starts as TypeBlocked so that a
// position never declared by AddNode is never walkable.
// Returns ErrBadDimensions if width or height is below 1.
// Complexity: O(W×H) time and memory.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, width, height)
	}
	cells := make([]Cell, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells[y*width+x] = newCell(Coord{X: x, Y: y}, TypeBlocked)
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		cells:  cells,
		times:  hashmap.NewComparable[EdgeKey, float64](4*width*height, HashEdge),
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gr *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < gr.Width && y >= 0 && y < gr.Height
}

// Contains is InBounds for a Coord.
func (gr *Grid) Contains(c Coord) bool { return gr.InBounds(c.X, c.Y) }

// Size returns the number of cells.
func (gr *Grid) Size() int { return len(gr.cells) }

// AddNode sets the terrain code at (x,y) and re-derives the cell flags from it.
// Returns ErrOutOfBounds or ErrBadTerrainCode.
func (gr *Grid) AddNode(x, y, code int) error {
	if !gr.InBounds(x, y) {
		return fmt.Errorf("%w: node %d-%d in %dx%d grid", ErrOutOfBounds, x, y, gr.Width, gr.Height)
	}
	if code < 0 {
		return fmt.Errorf("%w: node %d-%d has code %d", ErrBadTerrainCode, x, y, code)
	}
	gr.cells[y*gr.Width+x] = newCell(Coord{X: x, Y: y}, code)

	return nil
}

// AddTravelTime records t as the travel time from (x1,y1) to (x2,y2) and back.
// A later call for the same pair overwrites the earlier value.
// Returns ErrOutOfBounds or ErrNegativeTravelTime.
func (gr *Grid) AddTravelTime(x1, y1, x2, y2 int, t float64) error {
	if !gr.InBounds(x1, y1) || !gr.InBounds(x2, y2) {
		return fmt.Errorf("%w: edge %d-%d,%d-%d", ErrOutOfBounds, x1, y1, x2, y2)
	}
	if t < 0 || math.IsNaN(t) {
		return fmt.Errorf("%w: edge %d-%d,%d-%d has time %v", ErrNegativeTravelTime, x1, y1, x2, y2, t)
	}
	a, b := Coord{X: x1, Y: y1}, Coord{X: x2, Y: y2}
	gr.times.Put(EdgeKey{From: a, To: b}, t)
	gr.times.Put(EdgeKey{From: b, To: a}, t)

	return nil
}

// TravelTime returns the stored time from a to b, or Infinity when no edge exists.
// Complexity: O(1) expected.
func (gr *Grid) TravelTime(a, b Coord) float64 {
	return gr.times.GetOrDefault(EdgeKey{From: a, To: b}, Infinity)
}

// Cell returns the cell at (x,y), or nil outside the grid.
func (gr *Grid) Cell(x, y int) *Cell {
	if !gr.InBounds(x, y) {
		return nil
	}

	return &gr.cells[y*gr.Width+x]
}

// CellAt is Cell for a Coord.
func (gr *Grid) CellAt(c Coord) *Cell { return gr.Cell(c.X, c.Y) }

// ForEachCell calls fn for every cell in row-major order.
func (gr *Grid) ForEachCell(fn func(c *Cell)) {
	for i := range gr.cells {
		fn(&gr.cells[i])
	}
}

// ResetVisited clears the planner scratch flag on every cell.
// Complexity: O(W×H).
func (gr *Grid) ResetVisited() {
	for i := range gr.cells {
		gr.cells[i].visited = false
	}
}

// Neighbors4 returns the orthogonal offsets in exploration order.
// The returned array is a copy.
func (gr *Grid) Neighbors4() [4][2]int { return neighborOffsets4 }

// PathCost sums the travel times between consecutive cells of path.
// An empty path costs Infinity, a single cell costs 0, and any missing edge makes the
// whole path cost Infinity.
func (gr *Grid) PathCost(path []*Cell) float64 {
	if len(path) == 0 {
		return Infinity
	}
	total := 0.0
	for i := 1; i < len(path); i++ {
		t := gr.TravelTime(path[i-1].pos, path[i].pos)
		if t == Infinity {
			return Infinity
		}
		total += t
	}

	return total
}
