// Package autotile derives per-cell visual connectivity: a theme-clipped
// connectivity mask, and (rotation, tile-index) pairs for floor, ceiling,
// and each wall face, ready for a renderer to consume.
package autotile

import (
	"mazewright/pkg/engine/world"
)

// Canonical floor/ceiling tiles. Masks related by rotation share a tile
// and differ only in rotation, collapsing the 16 raw masks to six tiles.
const (
	TileClosed = iota
	TileDeadEnd
	TileStraight
	TileCorner
	TileTee
	TileCross
)

// Wall tiles indexed by the 2-bit connected-corner value.
const (
	WallPlain = iota
	WallCornerLeft
	WallCornerRight
	WallCornerBoth
)

// Visual is a rotation (quarter turns clockwise) and tile index pair.
type Visual struct {
	Rotation int
	Tile     int
}

// floorTable maps each of the 16 fixed-mask values to its canonical
// visual. Canonical orientations open north: a dead end's opening, a
// straight's axis, a corner's north+east arms, a tee's closed side west.
var floorTable = [16]Visual{
	0:  {0, TileClosed},
	1:  {0, TileDeadEnd},  // N
	2:  {1, TileDeadEnd},  // E
	3:  {0, TileCorner},   // N|E
	4:  {2, TileDeadEnd},  // S
	5:  {0, TileStraight}, // N|S
	6:  {1, TileCorner},   // E|S
	7:  {0, TileTee},      // N|E|S
	8:  {3, TileDeadEnd},  // W
	9:  {3, TileCorner},   // W|N
	10: {1, TileStraight}, // E|W
	11: {3, TileTee},      // W|N|E
	12: {2, TileCorner},   // S|W
	13: {2, TileTee},      // S|W|N
	14: {1, TileTee},      // E|S|W
	15: {0, TileCross},
}

// wallTable maps the 2-bit connected-corner value to a wall tile.
var wallTable = [4]int{
	0: WallPlain,
	1: WallCornerLeft,
	2: WallCornerRight,
	3: WallCornerBoth,
}

// CellVisual is the full visual derivation for one cell.
type CellVisual struct {
	// Fixed is the theme-clipped connectivity mask.
	Fixed uint8
	// Floor and Ceiling share the fixed-mask table.
	Floor   Visual
	Ceiling Visual
	// Walls holds one visual per closed side, indexed by direction
	// ordinal; open sides carry the zero Visual.
	Walls [4]Visual
}

// FixMask clips the raw connectivity mask on theme boundaries: a bit is
// cleared when the neighbour in that direction carries a different theme,
// so a theme boundary always renders as a wall even where the maze graph
// permits passage. Bits facing out of the grid (the forced entrance and
// exit openings) are kept; they render as the boundary corridors.
func FixMask(maze *world.Maze, cell *world.Cell) uint8 {
	fixed := cell.Mask
	for _, dir := range world.AllDirections() {
		if !cell.IsConnected(dir) {
			continue
		}
		neighbour := maze.Neighbour(cell, dir)
		if neighbour != nil && neighbour.Theme != cell.Theme {
			fixed &^= dir.Bit()
		}
	}
	return fixed
}

// FloorVisual looks up the rotation and tile index for a fixed mask.
// Floors and ceilings share the table.
func FloorVisual(fixed uint8) Visual {
	return floorTable[fixed&0x0f]
}

// WallVisual derives the wall tile for one closed side of a cell from
// the 2-bit connected-corner value: bit 0 is set when the fixed mask
// shows connectivity toward the left-hand neighbour direction and that
// neighbour's wall on the same cardinal direction is present; bit 1 is
// the right-hand analogue. Rotation is the wall direction's ordinal.
func WallVisual(maze *world.Maze, cell *world.Cell, dir world.Direction) Visual {
	fixed := FixMask(maze, cell)

	corner := 0
	if connectedCorner(maze, cell, fixed, dir, dir.Left()) {
		corner |= 1
	}
	if connectedCorner(maze, cell, fixed, dir, dir.Right()) {
		corner |= 2
	}

	return Visual{
		Rotation: int(dir),
		Tile:     wallTable[corner],
	}
}

// connectedCorner reports whether the neighbour toward side continues
// this cell's wall on dir: the fixed mask must be open toward side and
// the neighbour's own fixed mask closed on dir.
func connectedCorner(maze *world.Maze, cell *world.Cell, fixed uint8, dir, side world.Direction) bool {
	if fixed&side.Bit() == 0 {
		return false
	}
	neighbour := maze.Neighbour(cell, side)
	if neighbour == nil {
		return false
	}
	return FixMask(maze, neighbour)&dir.Bit() == 0
}

// Compute derives the full visual for a cell: fixed mask, floor and
// ceiling visuals, and one wall visual per closed side.
func Compute(maze *world.Maze, cell *world.Cell) CellVisual {
	fixed := FixMask(maze, cell)

	visual := CellVisual{
		Fixed:   fixed,
		Floor:   FloorVisual(fixed),
		Ceiling: FloorVisual(fixed),
	}
	for _, dir := range world.AllDirections() {
		if fixed&dir.Bit() == 0 {
			visual.Walls[dir] = WallVisual(maze, cell, dir)
		}
	}
	return visual
}
