package mission

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/fognav/planner"
	"github.com/katalvlaran/fognav/terrain"
	"github.com/katalvlaran/fognav/whatif"
)

// Executor runs one Mission against one Grid. The grid is mutated: cells are revealed,
// unlocks are applied and Visited flags are overwritten.
type Executor struct {
	gr      *terrain.Grid
	m       Mission
	options Options
	log     *zap.Logger

	ran     bool
	current terrain.Coord
	report  Report
}

// NewExecutor validates the mission against gr and applies opts.
func NewExecutor(gr *terrain.Grid, m Mission, opts ...Option) (*Executor, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := m.Validate(gr); err != nil {
		return nil, err
	}
	switch {
	case cfg.ReplanLimit < 0:
		return nil, ErrBadReplanLimit
	case cfg.ReplanLimit == 0:
		cfg.ReplanLimit = gr.Size()
	}

	return &Executor{
		gr:      gr,
		m:       m,
		options: cfg,
		log:     cfg.Logger.Named("mission").With(zap.Int("objectives", len(m.Objectives))),
		current: m.Start,
	}, nil
}

// Run executes the mission. It may be called once.
func (e *Executor) Run(ctx context.Context) (Report, error) {
	if e.ran {
		return e.report, ErrAlreadyRun
	}
	e.ran = true

	e.gr.Reveal(e.current, e.m.Radius)
	for i := range e.m.Objectives {
		if err := e.runObjective(ctx, i); err != nil {
			e.report.Position = e.current
			return e.report, err
		}
	}
	e.report.Position = e.current

	return e.report, nil
}

// runObjective walks to objective i, then handles its offer.
func (e *Executor) runObjective(ctx context.Context, i int) error {
	obj := e.m.Objectives[i]
	route, err := e.plan(i, obj.Target)
	if err != nil {
		return err
	}

	replans := 0
	for k := 1; k < len(route.Cells); {
		if err = ctx.Err(); err != nil {
			return err
		}
		next := route.Cells[k]
		if err = e.emit(Event{Kind: Move, At: next.Coord()}); err != nil {
			return err
		}
		e.report.Travelled += e.gr.TravelTime(e.current, next.Coord())
		e.current = next.Coord()
		e.gr.Reveal(e.current, e.m.Radius)

		if !blocked(route.Cells[k:]) {
			k++
			continue
		}
		if err = e.emit(Event{Kind: PathBlocked, At: e.current}); err != nil {
			return err
		}
		replans++
		e.report.Replans++
		if replans > e.options.ReplanLimit {
			return fmt.Errorf("%w: objective %d at %v after %d replans", ErrReplanLimit, i+1, obj.Target, e.options.ReplanLimit)
		}
		e.log.Debug("path blocked, replanning",
			zap.Int("objective", i+1),
			zap.Stringer("at", e.current),
			zap.Int("replan", replans),
		)
		if route, err = e.plan(i, obj.Target); err != nil {
			return err
		}
		k = 1
	}

	var decision whatif.Decision
	if i+1 < len(e.m.Objectives) && obj.Offer != nil {
		if decision, err = e.choose(i, obj.Offer); err != nil {
			return err
		}
	}

	e.report.Reached++
	e.log.Info("objective reached",
		zap.Int("objective", i+1),
		zap.Stringer("at", e.current),
		zap.Float64("travelled", e.report.Travelled),
	)
	if err = e.emit(Event{Kind: ObjectiveReached, At: e.current, Objective: i + 1}); err != nil {
		return err
	}
	if decision.Chosen {
		return e.emit(Event{Kind: OptionChosen, At: e.current, Objective: i + 1, Option: decision.Code})
	}

	return nil
}

// plan routes from the current position to target on freshly reset Visited flags.
func (e *Executor) plan(i int, target terrain.Coord) (planner.Route, error) {
	e.gr.ResetVisited()
	route, err := planner.Plan(e.gr, e.current, target)
	if err != nil {
		return route, fmt.Errorf("mission: objective %d: %w", i+1, err)
	}
	if !route.Found() {
		return route, fmt.Errorf("%w: objective %d at %v from %v", ErrObjectiveUnreachable, i+1, target, e.current)
	}

	return route, nil
}

// choose runs the optimizer toward objective i+1 and records the decision.
func (e *Executor) choose(i int, offer []int) (whatif.Decision, error) {
	next := e.m.Objectives[i+1].Target
	d, err := whatif.Choose(e.gr, e.current, next, offer)
	if err != nil {
		return d, fmt.Errorf("mission: objective %d offer: %w", i+1, err)
	}
	for _, ev := range d.Evaluated {
		e.log.Debug("unlock evaluated",
			zap.Int("objective", i+1),
			zap.Int("code", ev.Code),
			zap.Float64("cost", ev.Cost),
		)
	}
	e.report.Decisions = append(e.report.Decisions, d)

	return d, nil
}

// emit records ev and forwards it to the sink.
func (e *Executor) emit(ev Event) error {
	e.report.Events = append(e.report.Events, ev)
	if e.options.Sink == nil {
		return nil
	}
	if err := e.options.Sink(ev); err != nil {
		return fmt.Errorf("mission: event sink: %w", err)
	}

	return nil
}

// blocked reports whether any cell of the remaining route is impassable.
func blocked(rest []*terrain.Cell) bool {
	for _, c := range rest {
		if !c.Passable() {
			return true
		}
	}

	return false
}
