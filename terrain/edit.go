package terrain

// OpenType makes every non-passable cell with the given code passable and returns exactly
// the cells it flipped, for Restore. Cells already passable are left alone.
// Complexity: O(W×H).
func (gr *Grid) OpenType(code int) []*Cell {
	var flipped []*Cell
	for i := range gr.cells {
		c := &gr.cells[i]
		if c.code == code && !c.passable {
			c.passable = true
			flipped = append(flipped, c)
		}
	}

	return flipped
}

// Restore makes the given cells non-passable again. It undoes OpenType.
func (gr *Grid) Restore(cells []*Cell) {
	for _, c := range cells {
		c.passable = false
	}
}

// Unlock permanently turns every cell with the given code into open terrain.
// Unknown cells stay unknown; they reveal as open. Returns the number of cells changed.
// Complexity: O(W×H).
func (gr *Grid) Unlock(code int) int {
	n := 0
	for i := range gr.cells {
		c := &gr.cells[i]
		if c.code == code {
			c.passable = true
			c.code = TypeOpen
			n++
		}
	}

	return n
}
