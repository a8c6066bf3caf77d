// Package mapio reads the text inputs of a fog-of-war mission and writes its event log.
//
// Input formats (whitespace separated, blank lines skipped):
//
//	nodes:       "<width> <height>" then one "<x> <y> <code>" per cell
//	edges:       one "<x1>-<y1>,<x2>-<y2> <time>" per pair
//	objectives:  "<radius>", "<startX> <startY>", then one "<x> <y> [code...]" per objective
//
// An objective line with only two fields carries no offer. Malformed lines yield ErrSyntax
// wrapped with the 1-based line number; grid errors such as terrain.ErrOutOfBounds are
// wrapped the same way and still match errors.Is.
//
// Output: EventWriter writes one mission.Event per line. Diff compares two outputs line by
// line, treating a missing line as <EOF>.
package mapio
