package world

// Maze owns the grid-derived cells and exposes coordinate and adjacency
// queries. Its connectivity is fixed at construction; only cell themes and
// decoration flags change afterwards, and only through one generation run.
type Maze struct {
	cells [][]*Cell
	rows  int
	cols  int

	startCell    *Cell
	entranceCell *Cell
	entranceDir  Direction
	exitCell     *Cell
	exitDir      Direction

	// CellSize is the world-space edge length of one cell.
	CellSize float64
	// CorridorLength is the number of cells the entrance/exit corridors
	// extend beyond the maze boundary in world space.
	CorridorLength int
}

// NewMaze wraps a carved grid into addressable cells
func NewMaze(grid *Grid, cellSize float64, corridorLength int) *Maze {
	rows, cols := grid.Rows(), grid.Cols()

	cells := make([][]*Cell, rows)
	for row := 0; row < rows; row++ {
		cells[row] = make([]*Cell, cols)
		for col := 0; col < cols; col++ {
			cell := NewCell(row, col)
			cell.Mask = grid.Mask(row, col)
			cells[row][col] = cell
		}
	}

	return &Maze{
		cells:          cells,
		rows:           rows,
		cols:           cols,
		CellSize:       cellSize,
		CorridorLength: corridorLength,
	}
}

// Rows returns the number of rows in the maze
func (m *Maze) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the maze
func (m *Maze) Cols() int {
	return m.cols
}

// InBounds checks if a row/col position is within maze bounds
func (m *Maze) InBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// CellAt returns the cell at the given position, or nil if out of bounds
func (m *Maze) CellAt(row, col int) *Cell {
	if !m.InBounds(row, col) {
		return nil
	}
	return m.cells[row][col]
}

// Neighbour returns the cell adjacent to c in the given direction,
// regardless of connectivity. Nil at the maze boundary.
func (m *Maze) Neighbour(c *Cell, dir Direction) *Cell {
	if c == nil || !dir.IsValid() {
		return nil
	}
	rowDelta, colDelta := dir.Delta()
	return m.CellAt(c.Row+rowDelta, c.Col+colDelta)
}

// ConnectedNeighbour returns the cell adjacent to c in the given
// direction if the maze is passable toward it, nil otherwise
func (m *Maze) ConnectedNeighbour(c *Cell, dir Direction) *Cell {
	if c == nil || !c.IsConnected(dir) {
		return nil
	}
	return m.Neighbour(c, dir)
}

// StartCell returns the carve start cell
func (m *Maze) StartCell() *Cell {
	return m.startCell
}

// EntranceCell returns the cell carrying the forced entrance opening
func (m *Maze) EntranceCell() *Cell {
	return m.entranceCell
}

// EntranceDirection returns the boundary direction the entrance opens toward
func (m *Maze) EntranceDirection() Direction {
	return m.entranceDir
}

// ExitCell returns the cell carrying the forced exit opening
func (m *Maze) ExitCell() *Cell {
	return m.exitCell
}

// ExitDirection returns the boundary direction the exit opens toward
func (m *Maze) ExitDirection() Direction {
	return m.exitDir
}

// SetStart marks the carve start cell. Returns false if out of bounds.
func (m *Maze) SetStart(row, col int) bool {
	cell := m.CellAt(row, col)
	if cell == nil {
		return false
	}
	m.startCell = cell
	return true
}

// SetEntrance marks the forced entrance opening. Returns false if out of bounds.
func (m *Maze) SetEntrance(row, col int, dir Direction) bool {
	cell := m.CellAt(row, col)
	if cell == nil {
		return false
	}
	cell.Entrance = true
	m.entranceCell = cell
	m.entranceDir = dir
	return true
}

// SetExit marks the forced exit opening. Returns false if out of bounds.
func (m *Maze) SetExit(row, col int, dir Direction) bool {
	cell := m.CellAt(row, col)
	if cell == nil {
		return false
	}
	cell.Exit = true
	m.exitCell = cell
	m.exitDir = dir
	return true
}

// ForEachCell iterates over all cells in the maze, calling the provided
// function for each
func (m *Maze) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			fn(row, col, m.cells[row][col])
		}
	}
}

// CellsWithTheme returns every cell carrying the given theme, in row-major
// order so callers see a stable ordering for a given maze
func (m *Maze) CellsWithTheme(theme string) []*Cell {
	var cells []*Cell
	m.ForEachCell(func(row, col int, cell *Cell) {
		if cell.Theme == theme {
			cells = append(cells, cell)
		}
	})
	return cells
}

// WorldPosition converts a grid coordinate to the world-space centre of
// that cell. Columns grow along x, rows along y.
func (m *Maze) WorldPosition(row, col int) (x, y float64) {
	return (float64(col) + 0.5) * m.CellSize, (float64(row) + 0.5) * m.CellSize
}

// GridCoord converts a world-space position to the grid coordinate of the
// cell containing it
func (m *Maze) GridCoord(x, y float64) (row, col int) {
	return int(y / m.CellSize), int(x / m.CellSize)
}

// Validate checks the maze for structural issues and returns an error
// description or empty string if valid
func (m *Maze) Validate() string {
	if m.rows <= 0 || m.cols <= 0 {
		return "Maze has invalid dimensions"
	}

	if m.startCell == nil {
		return "Maze has no start cell"
	}

	if m.entranceCell == nil {
		return "Maze has no entrance cell"
	}

	if m.exitCell == nil {
		return "Maze has no exit cell"
	}

	entrances, exits := 0, 0
	m.ForEachCell(func(row, col int, cell *Cell) {
		if cell.Entrance {
			entrances++
		}
		if cell.Exit {
			exits++
		}
	})
	if entrances != 1 {
		return "Maze must have exactly one entrance cell"
	}
	if exits != 1 {
		return "Maze must have exactly one exit cell"
	}

	return ""
}
