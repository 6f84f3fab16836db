// Package nav provides read-only movement queries over a maze for
// locomotion consumers. It never mutates the maze.
package nav

import (
	"mazewright/pkg/engine/world"
)

// NextLeftmost returns the next reachable cell and resulting facing from
// the given cell and incoming facing, preferring the leftmost turn: left,
// then straight, then right, then back the way we came. Returns false
// only for a cell with no open side.
func NextLeftmost(maze *world.Maze, cell *world.Cell, facing world.Direction) (*world.Cell, world.Direction, bool) {
	if cell == nil {
		return nil, facing, false
	}

	order := []world.Direction{
		facing.Left(),
		facing,
		facing.Right(),
		facing.Opposite(),
	}
	for _, dir := range order {
		if next := maze.ConnectedNeighbour(cell, dir); next != nil {
			return next, dir, true
		}
	}
	return nil, facing, false
}

// Walker is a cursor following the leftmost-turn rule, the traversal a
// continuous-movement collaborator drives one cell at a time.
type Walker struct {
	maze   *world.Maze
	cell   *world.Cell
	facing world.Direction
}

// NewWalker creates a walker at the given cell and facing
func NewWalker(maze *world.Maze, cell *world.Cell, facing world.Direction) *Walker {
	return &Walker{
		maze:   maze,
		cell:   cell,
		facing: facing,
	}
}

// Cell returns the walker's current cell
func (w *Walker) Cell() *world.Cell {
	return w.cell
}

// Facing returns the walker's current facing
func (w *Walker) Facing() world.Direction {
	return w.facing
}

// WorldPosition returns the walker's position in world space
func (w *Walker) WorldPosition() (x, y float64) {
	return w.maze.WorldPosition(w.cell.Row, w.cell.Col)
}

// Advance moves the walker one cell by the leftmost-turn rule. Returns
// false if the walker cannot move.
func (w *Walker) Advance() bool {
	next, facing, ok := NextLeftmost(w.maze, w.cell, w.facing)
	if !ok {
		return false
	}
	w.cell = next
	w.facing = facing
	return true
}
