// Package generator contains the maze generation pipeline: the grid
// carver, the sprawl automaton, and the resumable state machine that
// sequences carving, sprawl growth, and placement passes.
package generator

import (
	"math/rand"

	"mazewright/pkg/engine/world"
)

// CarveResult is the output of one carving pass.
type CarveResult struct {
	Grid *world.Grid

	StartRow int
	StartCol int

	EntranceRow int
	EntranceCol int
	EntranceDir world.Direction

	ExitRow int
	ExitCol int
	ExitDir world.Direction
}

// carver runs one randomized depth-first carving pass over a grid.
type carver struct {
	grid *world.Grid
	rng  *rand.Rand

	bestDist int
	exitRow  int
	exitCol  int
	exitDir  world.Direction
}

// Carve produces a connected, acyclic connectivity grid using a
// randomized depth-first recursive backtracker starting from a random
// cell on the top boundary row. The exit is the boundary cell with the
// greatest carve distance from the start; ties among a cell's boundary
// directions are broken uniformly. A post-pass force-opens the entrance
// bit at the start cell and the exit bit at the recorded exit cell.
//
// The resulting grid is a spanning tree except for the two forced
// boundary openings: exactly one simple path exists between any two cells.
func Carve(rows, cols int, rng *rand.Rand) CarveResult {
	grid := world.NewGrid(rows, cols)

	startRow, startCol := 0, rng.Intn(cols)

	c := &carver{
		grid:     grid,
		rng:      rng,
		bestDist: -1,
	}
	c.visit(startRow, startCol, 0)

	// Forced boundary openings. The start sits on the top row, so north
	// always faces out of the grid.
	grid.Open(startRow, startCol, world.North)
	grid.Open(c.exitRow, c.exitCol, c.exitDir)

	return CarveResult{
		Grid:        grid,
		StartRow:    startRow,
		StartCol:    startCol,
		EntranceRow: startRow,
		EntranceCol: startCol,
		EntranceDir: world.North,
		ExitRow:     c.exitRow,
		ExitCol:     c.exitCol,
		ExitDir:     c.exitDir,
	}
}

// visit carves from one cell, recursing into unvisited neighbours in
// shuffled order, then considers the cell as an exit candidate.
func (c *carver) visit(row, col, dist int) {
	dirs := world.AllDirections()
	c.rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})

	for _, dir := range dirs {
		rowDelta, colDelta := dir.Delta()
		adjRow, adjCol := row+rowDelta, col+colDelta

		if !c.grid.InBounds(adjRow, adjCol) {
			continue
		}
		if c.grid.Mask(adjRow, adjCol) != 0 {
			continue // already visited
		}

		c.grid.Open(row, col, dir)
		c.visit(adjRow, adjCol, dist+1)
	}

	// The farthest boundary cell reached so far becomes the exit
	// candidate once its subtree is exhausted.
	if dist > c.bestDist {
		boundaryDirs := c.grid.BoundaryDirections(row, col)
		if len(boundaryDirs) > 0 {
			c.bestDist = dist
			c.exitRow, c.exitCol = row, col
			c.exitDir = boundaryDirs[c.rng.Intn(len(boundaryDirs))]
		}
	}
}
