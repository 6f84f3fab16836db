// Package world provides generic 2D grid-based maze primitives.
// These are engine-level constructs usable by any tile-based generator.
package world

// DefaultTheme is the theme every cell carries until a sprawl region
// stamps it with a style of its own.
const DefaultTheme = "default"

// Surface identifies which face of a cell a decoration occupies.
type Surface int

// Surface constants
const (
	SurfaceFloor Surface = iota
	SurfaceCeiling
	SurfaceWall
)

// String returns the string representation of a surface
func (s Surface) String() string {
	switch s {
	case SurfaceFloor:
		return "Floor"
	case SurfaceCeiling:
		return "Ceiling"
	case SurfaceWall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// SurfaceSet is a bit-set over surfaces, used by flavour rules that can
// apply to more than one surface at once.
type SurfaceSet uint8

// SurfaceSet bits
const (
	FloorBit   SurfaceSet = 1 << SurfaceFloor
	CeilingBit SurfaceSet = 1 << SurfaceCeiling
	WallBit    SurfaceSet = 1 << SurfaceWall
)

// Has returns true if the set contains the given surface
func (s SurfaceSet) Has(surface Surface) bool {
	return s&(1<<surface) != 0
}

// Cell represents a single cell in the maze grid.
// Connectivity is a 4-bit mask, one bit per cardinal direction, set iff
// the maze is passable toward that neighbour.
type Cell struct {
	Row int
	Col int

	// Mask is the connectivity bitmask (see Direction.Bit).
	Mask uint8

	// Theme is a key into the ruleset's style table. Assigned when a
	// sprawl region completes successfully, DefaultTheme before that.
	Theme string

	// Entrance/Exit mark the two forced boundary openings.
	Entrance bool
	Exit     bool

	// Decoration flags. Set by the placement engine and never cleared
	// for the lifetime of one generation run.
	FloorDecorated   bool
	CeilingDecorated bool
	decoratedWalls   uint8
}

// NewCell creates a new cell at the given position with no connectivity
func NewCell(row, col int) *Cell {
	return &Cell{
		Row:   row,
		Col:   col,
		Theme: DefaultTheme,
	}
}

// IsConnected returns true if the cell is passable toward dir
func (c *Cell) IsConnected(dir Direction) bool {
	return c.Mask&dir.Bit() != 0
}

// Open sets the connectivity bit toward dir
func (c *Cell) Open(dir Direction) {
	c.Mask |= dir.Bit()
}

// OpenCount returns the number of passable sides
func (c *Cell) OpenCount() int {
	n := 0
	for _, dir := range AllDirections() {
		if c.IsConnected(dir) {
			n++
		}
	}
	return n
}

// IsDeadEnd returns true if the cell has exactly one passable side
func (c *Cell) IsDeadEnd() bool {
	return c.OpenCount() == 1
}

// IsStraight returns true if the cell is a straight corridor segment
// (exactly two passable sides, opposite each other)
func (c *Cell) IsStraight() bool {
	return c.Mask == North.Bit()|South.Bit() || c.Mask == East.Bit()|West.Bit()
}

// IsJunction returns true if the cell has three or more passable sides
func (c *Cell) IsJunction() bool {
	return c.OpenCount() >= 3
}

// MarkSurface records a decoration on the given surface. Wall marks need
// a direction; floor/ceiling ignore it. Marks are monotonic.
func (c *Cell) MarkSurface(surface Surface, dir Direction) {
	switch surface {
	case SurfaceFloor:
		c.FloorDecorated = true
	case SurfaceCeiling:
		c.CeilingDecorated = true
	case SurfaceWall:
		c.decoratedWalls |= dir.Bit()
	}
}

// SurfaceDecorated returns true if the given surface already carries a
// decoration. For walls, dir selects which wall face.
func (c *Cell) SurfaceDecorated(surface Surface, dir Direction) bool {
	switch surface {
	case SurfaceFloor:
		return c.FloorDecorated
	case SurfaceCeiling:
		return c.CeilingDecorated
	case SurfaceWall:
		return c.decoratedWalls&dir.Bit() != 0
	default:
		return false
	}
}

// DecoratedWalls returns the directions whose wall face carries a decoration
func (c *Cell) DecoratedWalls() []Direction {
	var dirs []Direction
	for _, dir := range AllDirections() {
		if c.decoratedWalls&dir.Bit() != 0 {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
