// Package pipemaze solves the pipe maze puzzle: a grid of pipe tiles hides
// one closed loop running through a start tile 'S'.
//
// What it computes:
//
//   - Part 1: how far, along the loop, the farthest loop cell is from 'S'
//     (half the loop length).
//   - Part 2: how many cells the loop encloses.
//
// Packages, leaf to root:
//
//	tile/      — directions, pipe kinds and their static connection tables
//	gridgraph/ — parsing into a padded grid, neighbour arithmetic, regions
//	loop/      — start-tile resolution and the bounded loop walk
//	interior/  — crossing-number scan (rows or columns) and enclosed pockets
//	render/    — styled text drawing of a solved maze
//	maze/      — the parse → resolve → trace → scan pipeline
//
// Quick ASCII example:
//
//	S-7      ┌─┐
//	|.|  →   │I│   loop length 8 → part 1 = 4, part 2 = 1
//	L-J      └─┘
//
// The command lives in cmd/pipemaze:
//
//	go run ./cmd/pipemaze input.txt
package pipemaze
