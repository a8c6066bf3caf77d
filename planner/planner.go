package planner

import (
	"fmt"
	"math"

	g "github.com/zyedidia/generic"

	"github.com/katalvlaran/fognav/hashmap"
	"github.com/katalvlaran/fognav/pqueue"
	"github.com/katalvlaran/fognav/terrain"
)

// Plan computes a minimum-cost route from source to target on gr.
//
// Preconditions and validation (in order):
//  1. gr must be non-nil (ErrNilGrid).
//  2. MaxCost must be ≥ 0 and not NaN (ErrBadMaxCost).
//  3. source must lie inside gr (ErrSourceOutOfBounds).
//  4. target must lie inside gr (ErrTargetOutOfBounds).
//
// Visited flags on gr are read and set, never cleared; call gr.ResetVisited first.
// An unreachable target is not an error: the Route reports Status Unreachable.
func Plan(gr *terrain.Grid, source, target terrain.Coord, opts ...Option) (Route, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if gr == nil {
		return Route{}, ErrNilGrid
	}
	if cfg.MaxCost < 0 || math.IsNaN(cfg.MaxCost) {
		return Route{}, fmt.Errorf("%w: got %v", ErrBadMaxCost, cfg.MaxCost)
	}
	if !gr.Contains(source) {
		return Route{}, fmt.Errorf("%w: %v in %dx%d grid", ErrSourceOutOfBounds, source, gr.Width, gr.Height)
	}
	if !gr.Contains(target) {
		return Route{}, fmt.Errorf("%w: %v in %dx%d grid", ErrTargetOutOfBounds, target, gr.Width, gr.Height)
	}

	r := newRunner(gr, target, cfg)
	r.init(source)
	if !r.process() {
		return unreachable(), nil
	}

	return r.route(source), nil
}

// frontierItem is a cell and the cost at which it was pushed.
// Stale items are skipped when popped (lazy decrease-key).
type frontierItem struct {
	cell *terrain.Cell
	cost float64
}

// byCost pops the cheapest frontier item first.
var byCost g.LessFn[frontierItem] = func(a, b frontierItem) bool { return a.cost < b.cost }

// runner holds the mutable state for a single planning pass.
type runner struct {
	gr      *terrain.Grid
	target  terrain.Coord
	options Options
	dist    *hashmap.Map[terrain.Coord, float64]
	prev    *hashmap.Map[terrain.Coord, *terrain.Cell]
	pq      *pqueue.Queue[frontierItem]
}

func newRunner(gr *terrain.Grid, target terrain.Coord, cfg Options) *runner {
	capacity := gr.Size()

	return &runner{
		gr:      gr,
		target:  target,
		options: cfg,
		dist:    hashmap.NewComparable[terrain.Coord, float64](capacity, terrain.HashCoord),
		prev:    hashmap.NewComparable[terrain.Coord, *terrain.Cell](capacity, terrain.HashCoord),
		pq:      pqueue.New[frontierItem](capacity, byCost),
	}
}

// init seeds the frontier with the source at cost 0.
func (r *runner) init(source terrain.Coord) {
	r.dist.Put(source, 0)
	r.pq.Add(frontierItem{cell: r.gr.CellAt(source), cost: 0})
}

// process settles cells in ascending cost order until the target is settled (true)
// or the frontier is exhausted or exceeds MaxCost (false).
func (r *runner) process() bool {
	for {
		item, ok := r.pq.Poll()
		if !ok {
			return false
		}
		u := item.cell
		if u.Visited() {
			continue
		}
		if item.cost > r.options.MaxCost {
			return false
		}
		u.SetVisited(true)
		if u.Coord() == r.target {
			return true
		}
		r.relax(u, item.cost)
	}
}

// relax pushes every admissible neighbor of u whose cost strictly improves.
func (r *runner) relax(u *terrain.Cell, du float64) {
	for _, off := range r.gr.Neighbors4() {
		v := r.gr.Cell(u.X()+off[0], u.Y()+off[1])
		if v == nil || !v.Passable() || v.Visited() {
			continue
		}
		w := r.gr.TravelTime(u.Coord(), v.Coord())
		if w == terrain.Infinity {
			continue
		}
		nd := du + w
		if nd > r.options.MaxCost {
			continue
		}
		if nd >= r.dist.GetOrDefault(v.Coord(), terrain.Infinity) {
			continue
		}
		r.dist.Put(v.Coord(), nd)
		r.prev.Put(v.Coord(), u)
		r.pq.Add(frontierItem{cell: v, cost: nd})
	}
}

// route walks predecessors back from the target.
func (r *runner) route(source terrain.Coord) Route {
	var rev []*terrain.Cell
	at := r.gr.CellAt(r.target)
	for {
		rev = append(rev, at)
		if at.Coord() == source {
			break
		}
		at, _ = r.prev.Get(at.Coord())
	}
	cells := make([]*terrain.Cell, len(rev))
	for i, c := range rev {
		cells[len(rev)-1-i] = c
	}

	return Route{
		Status: Found,
		Cells:  cells,
		Cost:   r.dist.GetOrDefault(r.target, terrain.Infinity),
	}
}
