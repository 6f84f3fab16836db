package autotile

import (
	"testing"

	"mazewright/pkg/engine/world"
)

// crossMaze builds a 3x3 maze with the centre open to all four
// neighbours and nothing else carved.
func crossMaze() *world.Maze {
	grid := world.NewGrid(3, 3)
	for _, dir := range world.AllDirections() {
		grid.Open(1, 1, dir)
	}
	return world.NewMaze(grid, 4.0, 0)
}

func TestFixMaskKeepsSameThemeConnections(t *testing.T) {
	maze := crossMaze()
	centre := maze.CellAt(1, 1)

	if fixed := FixMask(maze, centre); fixed != centre.Mask {
		t.Errorf("fixed mask = %04b, want raw mask %04b for uniform themes", fixed, centre.Mask)
	}
}

func TestFixMaskClipsThemeBoundaries(t *testing.T) {
	maze := crossMaze()
	centre := maze.CellAt(1, 1)
	maze.CellAt(0, 1).Theme = "mossy" // north neighbour

	fixed := FixMask(maze, centre)
	if fixed&world.North.Bit() != 0 {
		t.Error("connection into a differently themed neighbour should be clipped")
	}
	if fixed != centre.Mask&^world.North.Bit() {
		t.Errorf("fixed mask = %04b, want only the north bit cleared", fixed)
	}

	// The boundary clips symmetrically from the neighbour's side too.
	north := maze.CellAt(0, 1)
	if FixMask(maze, north)&world.South.Bit() != 0 {
		t.Error("neighbour's side of the theme boundary should also be clipped")
	}
}

func TestFixMaskKeepsBoundaryOpenings(t *testing.T) {
	// A forced opening faces out of the grid; with no neighbour there is
	// no theme to disagree with, so the bit survives.
	grid := world.NewGrid(2, 2)
	grid.Open(0, 0, world.North)
	maze := world.NewMaze(grid, 4.0, 0)

	cell := maze.CellAt(0, 0)
	if FixMask(maze, cell)&world.North.Bit() == 0 {
		t.Error("an opening facing out of the grid must be kept")
	}
}

func TestFloorVisualCanonicalMasks(t *testing.T) {
	cases := []struct {
		mask uint8
		want Visual
	}{
		{0, Visual{0, TileClosed}},
		{world.North.Bit(), Visual{0, TileDeadEnd}},
		{world.East.Bit(), Visual{1, TileDeadEnd}},
		{world.South.Bit(), Visual{2, TileDeadEnd}},
		{world.West.Bit(), Visual{3, TileDeadEnd}},
		{world.North.Bit() | world.South.Bit(), Visual{0, TileStraight}},
		{world.East.Bit() | world.West.Bit(), Visual{1, TileStraight}},
		{world.North.Bit() | world.East.Bit(), Visual{0, TileCorner}},
		{world.South.Bit() | world.West.Bit(), Visual{2, TileCorner}},
		{world.North.Bit() | world.East.Bit() | world.South.Bit(), Visual{0, TileTee}},
		{0x0f, Visual{0, TileCross}},
	}

	for _, c := range cases {
		if got := FloorVisual(c.mask); got != c.want {
			t.Errorf("mask %04b: visual = %+v, want %+v", c.mask, got, c.want)
		}
	}
}

func TestFloorTableCoversEveryMask(t *testing.T) {
	// Every rotation stays within a quarter-turn range and every tile is
	// one of the six canonical ones.
	for mask := 0; mask < 16; mask++ {
		v := FloorVisual(uint8(mask))
		if v.Rotation < 0 || v.Rotation > 3 {
			t.Errorf("mask %04b: rotation %d out of range", mask, v.Rotation)
		}
		if v.Tile < TileClosed || v.Tile > TileCross {
			t.Errorf("mask %04b: unknown tile %d", mask, v.Tile)
		}
	}
}

func TestWallVisualPlainOnIsolatedCell(t *testing.T) {
	grid := world.NewGrid(1, 1)
	maze := world.NewMaze(grid, 4.0, 0)
	cell := maze.CellAt(0, 0)

	for _, dir := range world.AllDirections() {
		v := WallVisual(maze, cell, dir)
		if v.Tile != WallPlain {
			t.Errorf("wall %v on isolated cell: tile = %d, want WallPlain", dir, v.Tile)
		}
		if v.Rotation != int(dir) {
			t.Errorf("wall %v rotation = %d, want the direction ordinal", dir, v.Rotation)
		}
	}
}

func TestWallVisualCornerAcrossOpenSide(t *testing.T) {
	// Two cells in a row, open to each other, both closed to the north.
	// The boundary between them continues the north wall, so each cell's
	// north wall gains a corner on the side facing its neighbour.
	grid := world.NewGrid(1, 2)
	grid.Open(0, 0, world.East)
	maze := world.NewMaze(grid, 4.0, 0)

	left := maze.CellAt(0, 0)
	right := maze.CellAt(0, 1)

	// For a north wall, East is the right-hand side.
	if v := WallVisual(maze, left, world.North); v.Tile != WallCornerRight {
		t.Errorf("left cell north wall tile = %d, want WallCornerRight", v.Tile)
	}
	if v := WallVisual(maze, right, world.North); v.Tile != WallCornerLeft {
		t.Errorf("right cell north wall tile = %d, want WallCornerLeft", v.Tile)
	}
}

func TestWallVisualNoCornerWhenNeighbourIsOpen(t *testing.T) {
	// The middle cell of a 3-corridor: its neighbours both continue the
	// corridor, so they are closed north too and both corners connect.
	grid := world.NewGrid(1, 3)
	grid.Open(0, 0, world.East)
	grid.Open(0, 1, world.East)
	maze := world.NewMaze(grid, 4.0, 0)

	if v := WallVisual(maze, maze.CellAt(0, 1), world.North); v.Tile != WallCornerBoth {
		t.Errorf("middle cell north wall tile = %d, want WallCornerBoth", v.Tile)
	}
}

func TestComputeFillsClosedSidesOnly(t *testing.T) {
	grid := world.NewGrid(1, 2)
	grid.Open(0, 0, world.East)
	maze := world.NewMaze(grid, 4.0, 0)
	cell := maze.CellAt(0, 0)

	visual := Compute(maze, cell)
	if visual.Fixed != world.East.Bit() {
		t.Errorf("fixed mask = %04b, want only east open", visual.Fixed)
	}
	if visual.Floor != visual.Ceiling {
		t.Error("floor and ceiling share the fixed-mask table")
	}
	if visual.Floor != (Visual{1, TileDeadEnd}) {
		t.Errorf("floor = %+v, want an east-facing dead end", visual.Floor)
	}

	// Open east side keeps the zero visual; closed sides carry walls.
	if visual.Walls[world.East] != (Visual{}) {
		t.Error("open side should carry the zero visual")
	}
	if visual.Walls[world.North].Rotation != int(world.North) {
		t.Error("north wall rotation should match its direction")
	}
}

func TestThemeBoundaryRendersAsWall(t *testing.T) {
	// A theme boundary across an open connection grows walls on both
	// sides even though the maze graph permits passage.
	grid := world.NewGrid(1, 2)
	grid.Open(0, 0, world.East)
	maze := world.NewMaze(grid, 4.0, 0)
	maze.CellAt(0, 1).Theme = "flooded"

	visual := Compute(maze, maze.CellAt(0, 0))
	if visual.Fixed != 0 {
		t.Errorf("fixed mask = %04b, want fully closed at the theme boundary", visual.Fixed)
	}
	if visual.Floor.Tile != TileClosed {
		t.Errorf("floor tile = %d, want TileClosed", visual.Floor.Tile)
	}
}
