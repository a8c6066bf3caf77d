// Package whatif picks the terrain unlock that most cheapens the next leg of a mission.
//
// For each distinct candidate terrain code, in input order, Choose temporarily opens every
// cell of that code, plans from the agent position to the next target, records the cost,
// and restores the cells it opened. The cheapest finite candidate wins; on a tie the earlier
// candidate keeps the win. The winner is then unlocked permanently: its cells become open
// terrain (code 0) for the rest of the mission.
//
// When no candidate yields a finite cost, nothing is chosen and the grid is left exactly as
// it was, apart from planner Visited flags.
//
// Complexity: O(k · (W×H + N log N)) for k distinct candidates.
package whatif
