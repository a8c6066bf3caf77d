// Package mission drives an agent through an ordered list of objectives on a
// fog-of-war terrain.Grid.
//
// Lifecycle (one Executor per mission):
//
//  1. Reveal the start cell's radius once.
//  2. For each objective: reset Visited flags and plan from the current cell to the target.
//  3. Walk the route one cell at a time. Each step emits a Move event, moves the agent to
//     the next cell and reveals around it. If any cell from that next cell to the end of the
//     route is now impassable, a PathBlocked event is emitted and the agent replans from
//     where it stands.
//  4. On arrival, if another objective follows and this one carries an offer, the what-if
//     optimizer picks the unlock that most cheapens the next leg (package whatif).
//  5. Emit ObjectiveReached, then OptionChosen when an unlock was applied.
//
// Termination:
//
//   - A plan that reports planner.Unreachable stops the run with ErrObjectiveUnreachable.
//   - Each objective allows at most ReplanLimit replans (default: the grid's cell count, since
//     a replan always follows at least one newly revealed blocked cell). Exceeding it stops
//     the run with ErrReplanLimit.
//   - Run honors ctx cancellation between steps.
//
// Events already handed to the sink stay emitted when Run fails.
package mission
