package whatif

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/fognav/planner"
	"github.com/katalvlaran/fognav/terrain"
)

// Evaluation is the planned cost of one candidate code.
type Evaluation struct {
	Code int
	Cost float64 // terrain.Infinity when the target stays unreachable
}

// Decision is the outcome of Choose.
type Decision struct {
	Code      int     // winning code; meaningful only when Chosen
	Cost      float64 // winning cost; terrain.Infinity when nothing was chosen
	Chosen    bool
	Evaluated []Evaluation // one per distinct candidate, in input order
}

// Choose evaluates candidates from "from" toward "to" and unlocks the cheapest one.
// Planner errors are wrapped with the candidate code and still match errors.Is.
// Opened cells are restored before returning in every case.
func Choose(gr *terrain.Grid, from, to terrain.Coord, candidates []int) (Decision, error) {
	d := Decision{Cost: terrain.Infinity}
	seen := mapset.New[int]()
	for _, code := range candidates {
		if seen.Has(code) {
			continue
		}
		seen.Put(code)

		cost, err := evaluate(gr, from, to, code)
		if err != nil {
			return Decision{Cost: terrain.Infinity, Evaluated: d.Evaluated}, fmt.Errorf("whatif: candidate %d: %w", code, err)
		}
		d.Evaluated = append(d.Evaluated, Evaluation{Code: code, Cost: cost})
		if cost < d.Cost {
			d.Code, d.Cost, d.Chosen = code, cost, true
		}
	}
	if d.Chosen {
		gr.Unlock(d.Code)
	}

	return d, nil
}

// evaluate plans with every cell of code opened and undoes the opening.
func evaluate(gr *terrain.Grid, from, to terrain.Coord, code int) (float64, error) {
	if gr == nil {
		return 0, planner.ErrNilGrid
	}
	opened := gr.OpenType(code)
	defer gr.Restore(opened)

	gr.ResetVisited()
	r, err := planner.Plan(gr, from, to)
	if err != nil {
		return 0, err
	}

	return r.Cost, nil
}
