package terrain

// Reveal resolves every still-unknown cell within Euclidean distance radius of center.
// The disc test is the integer form dx²+dy² ≤ r², so no floating point is involved.
// Cells outside the grid are skipped, already-known cells are untouched, and a negative
// radius reveals nothing. Returns the number of newly revealed cells.
// Complexity: O(r²).
func (gr *Grid) Reveal(center Coord, radius int) int {
	if radius < 0 {
		return 0
	}
	r2 := radius * radius
	n := 0
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			c := gr.Cell(center.X+dx, center.Y+dy)
			if c == nil || c.known {
				continue
			}
			c.Reveal()
			n++
		}
	}

	return n
}
