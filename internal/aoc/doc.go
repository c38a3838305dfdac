// Package aoc holds the small, domain-free helpers shared by the day modules:
// input splitting and integer scanning, 2D points and directions, rectangular
// grids, a min-priority queue and a handful of integer maths routines.
//
// Nothing in here knows about any particular puzzle. Day packages import it
// for plumbing only and keep their own types to themselves.
package aoc

import "errors"

// ErrNoSolution is returned by a search that exhausted its space without
// finding an answer.
var ErrNoSolution = errors.New("no solution")
