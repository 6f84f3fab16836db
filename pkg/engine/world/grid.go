package world

// Grid is a fixed-size rectangular store of connectivity masks.
// It is mutated only while a carver runs; afterwards the maze wraps it
// into addressable cells and the grid itself stays immutable.
type Grid struct {
	masks [][]uint8
	rows  int
	cols  int
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	masks := make([][]uint8, rows)
	for row := range masks {
		masks[row] = make([]uint8, cols)
	}

	return &Grid{
		masks: masks,
		rows:  rows,
		cols:  cols,
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds checks if a row/col position is within grid bounds
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsOnBoundary checks if a position lies on the outer edge of the grid
func (g *Grid) IsOnBoundary(row, col int) bool {
	return g.InBounds(row, col) &&
		(row == 0 || row == g.rows-1 || col == 0 || col == g.cols-1)
}

// BoundaryDirections returns the directions that face out of the grid
// from the given position. Empty for interior cells.
func (g *Grid) BoundaryDirections(row, col int) []Direction {
	var dirs []Direction
	for _, dir := range AllDirections() {
		rowDelta, colDelta := dir.Delta()
		if !g.InBounds(row+rowDelta, col+colDelta) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// Mask returns the connectivity mask at the given position, or zero if
// out of bounds
func (g *Grid) Mask(row, col int) uint8 {
	if !g.InBounds(row, col) {
		return 0
	}
	return g.masks[row][col]
}

// Open opens the connection from the given position toward dir, setting
// the bit on both sides when the neighbour is in bounds. A boundary-facing
// open (entrance/exit) only sets the near side.
func (g *Grid) Open(row, col int, dir Direction) {
	if !g.InBounds(row, col) || !dir.IsValid() {
		return
	}
	g.masks[row][col] |= dir.Bit()

	rowDelta, colDelta := dir.Delta()
	adjRow, adjCol := row+rowDelta, col+colDelta
	if g.InBounds(adjRow, adjCol) {
		g.masks[adjRow][adjCol] |= dir.Opposite().Bit()
	}
}

// IsOpen returns true if the position is passable toward dir
func (g *Grid) IsOpen(row, col int, dir Direction) bool {
	return g.Mask(row, col)&dir.Bit() != 0
}
