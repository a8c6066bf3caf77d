package mission

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/fognav/terrain"
	"github.com/katalvlaran/fognav/whatif"
)

// Sentinel errors for mission validation and execution.
var (
	// ErrNilGrid indicates that a nil *terrain.Grid was passed to NewExecutor.
	ErrNilGrid = errors.New("mission: grid is nil")
	// ErrBadRadius indicates a negative visibility radius.
	ErrBadRadius = errors.New("mission: radius must be non-negative")
	// ErrStartOutOfBounds indicates a start position outside the grid.
	ErrStartOutOfBounds = errors.New("mission: start out of bounds")
	// ErrTargetOutOfBounds indicates an objective target outside the grid.
	ErrTargetOutOfBounds = errors.New("mission: objective target out of bounds")
	// ErrBadReplanLimit indicates a replan limit below 1.
	ErrBadReplanLimit = errors.New("mission: replan limit must be at least 1")
	// ErrObjectiveUnreachable indicates that no route to an objective exists.
	ErrObjectiveUnreachable = errors.New("mission: objective unreachable")
	// ErrReplanLimit indicates that an objective needed more replans than allowed.
	ErrReplanLimit = errors.New("mission: replan limit exceeded")
	// ErrAlreadyRun indicates a second Run on the same Executor.
	ErrAlreadyRun = errors.New("mission: executor already ran")
)

// Objective is one target in mission order. Offer lists the terrain codes the agent may
// unlock on arrival; nil means no offer.
type Objective struct {
	Target terrain.Coord
	Offer  []int
}

// Mission is the full input for one run.
type Mission struct {
	Radius     int
	Start      terrain.Coord
	Objectives []Objective
}

// Validate checks the mission against gr.
func (m Mission) Validate(gr *terrain.Grid) error {
	if gr == nil {
		return ErrNilGrid
	}
	if m.Radius < 0 {
		return fmt.Errorf("%w: got %d", ErrBadRadius, m.Radius)
	}
	if !gr.Contains(m.Start) {
		return fmt.Errorf("%w: %v", ErrStartOutOfBounds, m.Start)
	}
	for i, o := range m.Objectives {
		if !gr.Contains(o.Target) {
			return fmt.Errorf("%w: objective %d at %v", ErrTargetOutOfBounds, i+1, o.Target)
		}
	}

	return nil
}

// Report summarizes a run. On failure it holds what happened up to the error.
type Report struct {
	Events    []Event
	Decisions []whatif.Decision // one per optimizer invocation, chosen or not
	Replans   int               // across all objectives
	Travelled float64           // summed travel time of every step taken
	Reached   int               // objectives completed
	Position  terrain.Coord     // where the agent stands
}

// Options configures an Executor.
//
// Logger      – receives Debug records for replans and optimizer evaluations and Info
// records for completed objectives. Default zap.NewNop().
// Sink        – called with every event as it happens; a non-nil error stops the run.
// Default nil (events are only collected in the Report).
// ReplanLimit – maximum replans per objective; 0 selects the grid's cell count.
type Options struct {
	Logger      *zap.Logger
	Sink        func(Event) error
	ReplanLimit int
}

// Option represents a functional option for configuring an Executor.
type Option func(*Options)

// WithLogger sets the structured logger. A nil logger keeps the default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSink sets the event sink.
func WithSink(fn func(Event) error) Option {
	return func(o *Options) {
		o.Sink = fn
	}
}

// WithReplanLimit bounds replans per objective. Values below 1 make NewExecutor return
// ErrBadReplanLimit.
func WithReplanLimit(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = -1
		}
		o.ReplanLimit = n
	}
}

// DefaultOptions returns a no-op logger, no sink and the grid-sized replan limit.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}
