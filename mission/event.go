package mission

import (
	"fmt"

	"github.com/katalvlaran/fognav/terrain"
)

// EventKind tags an Event.
type EventKind int

const (
	// Move: the agent stepped onto At.
	Move EventKind = iota
	// PathBlocked: the remaining route crossed a cell that turned out impassable.
	PathBlocked
	// ObjectiveReached: objective number Objective (1-based) is done.
	ObjectiveReached
	// OptionChosen: terrain code Option was unlocked.
	OptionChosen
)

var kindNames = [...]string{"move", "path-blocked", "objective-reached", "option-chosen"}

// String returns a short lowercase name.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}

	return kindNames[k]
}

// Event is one observable step of a run.
type Event struct {
	Kind      EventKind
	At        terrain.Coord
	Objective int
	Option    int
}

// String renders the event as its output line, without the newline.
func (e Event) String() string {
	switch e.Kind {
	case Move:
		return "Moving to " + e.At.String()
	case PathBlocked:
		return "Path is impassable!"
	case ObjectiveReached:
		return fmt.Sprintf("Objective %d reached!", e.Objective)
	case OptionChosen:
		return fmt.Sprintf("Number %d is chosen!", e.Option)
	default:
		return e.Kind.String()
	}
}
