package planner

import (
	"errors"

	"github.com/katalvlaran/fognav/terrain"
)

// Sentinel errors returned by Plan.
var (
	// ErrNilGrid indicates that a nil *terrain.Grid was passed to Plan.
	ErrNilGrid = errors.New("planner: grid is nil")

	// ErrSourceOutOfBounds indicates a source coordinate outside the grid.
	ErrSourceOutOfBounds = errors.New("planner: source out of bounds")

	// ErrTargetOutOfBounds indicates a target coordinate outside the grid.
	ErrTargetOutOfBounds = errors.New("planner: target out of bounds")

	// ErrBadMaxCost indicates that MaxCost was set to a negative or NaN value.
	ErrBadMaxCost = errors.New("planner: MaxCost must be non-negative")
)

// Status tags a Route.
type Status int

const (
	// Unreachable means no admissible route connects source and target.
	Unreachable Status = iota
	// Found means Route.Cells holds a complete route.
	Found
)

// String returns "found" or "unreachable".
func (s Status) String() string {
	if s == Found {
		return "found"
	}

	return "unreachable"
}

// Route is the result of a planning pass.
type Route struct {
	Status Status
	Cells  []*terrain.Cell // source..target inclusive; nil when Unreachable
	Cost   float64         // summed travel time; terrain.Infinity when Unreachable
}

// Found reports whether the route exists.
func (r Route) Found() bool { return r.Status == Found }

// Coords returns the route positions in order.
func (r Route) Coords() []terrain.Coord {
	out := make([]terrain.Coord, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = c.Coord()
	}

	return out
}

// unreachable is the canonical "no route" result.
func unreachable() Route {
	return Route{Status: Unreachable, Cost: terrain.Infinity}
}

// Options configures Plan.
//
// MaxCost – frontier entries whose cost exceeds this cap are not expanded, so targets
// farther than MaxCost report Unreachable. Must be ≥ 0. Default terrain.Infinity (no cap).
type Options struct {
	MaxCost float64
}

// Option represents a functional option for configuring Plan.
type Option func(*Options)

// WithMaxCost caps the route cost Plan is willing to explore.
// A negative or NaN cap makes Plan return ErrBadMaxCost.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		o.MaxCost = max
	}
}

// DefaultOptions returns Options with no cost cap.
func DefaultOptions() Options {
	return Options{MaxCost: terrain.Infinity}
}
