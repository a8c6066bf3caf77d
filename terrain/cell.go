package terrain

// newCell builds a cell whose flags follow its terrain code:
// codes 0 and 1 are known, codes 0 and ≥2 look passable.
func newCell(pos Coord, code int) Cell {
	return Cell{
		pos:      pos,
		code:     code,
		known:    code == TypeOpen || code == TypeBlocked,
		passable: code == TypeOpen || code >= TypeConditional,
	}
}

// Coord returns the cell position.
func (c *Cell) Coord() Coord { return c.pos }

// X returns the column.
func (c *Cell) X() int { return c.pos.X }

// Y returns the row.
func (c *Cell) Y() int { return c.pos.Y }

// Type returns the terrain code.
func (c *Cell) Type() int { return c.code }

// Known reports whether the true passability has been resolved.
func (c *Cell) Known() bool { return c.known }

// Passable reports the current passability, optimistic for unknown cells.
func (c *Cell) Passable() bool { return c.passable }

// Visited reports whether the current planning pass has settled this cell.
func (c *Cell) Visited() bool { return c.visited }

// SetVisited sets the planner scratch flag.
func (c *Cell) SetVisited(v bool) { c.visited = v }

// SetPassable overrides passability. Used by terrain unlocks.
func (c *Cell) SetPassable(p bool) { c.passable = p }

// SetType replaces the terrain code without touching the flags.
func (c *Cell) SetType(code int) { c.code = code }

// Reveal marks the cell known and pins passability to (code == TypeOpen).
func (c *Cell) Reveal() {
	c.known = true
	c.passable = c.code == TypeOpen
}

// String renders the cell position as "X-Y".
func (c *Cell) String() string { return c.pos.String() }
