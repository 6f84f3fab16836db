package world

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// Fixed lookup tables indexed by the direction's ordinal.
var (
	directionNames = [4]string{"North", "East", "South", "West"}

	// Row/col offsets; north is row-1.
	rowDeltas = [4]int{-1, 0, 1, 0}
	colDeltas = [4]int{0, 1, 0, -1}

	leftOf     = [4]Direction{West, North, East, South}
	rightOf    = [4]Direction{East, South, West, North}
	oppositeOf = [4]Direction{South, West, North, East}
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return directionNames[d]
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return oppositeOf[d]
}

// Left returns the direction after a quarter turn counter-clockwise
func (d Direction) Left() Direction {
	if !d.IsValid() {
		return d
	}
	return leftOf[d]
}

// Right returns the direction after a quarter turn clockwise
func (d Direction) Right() Direction {
	if !d.IsValid() {
		return d
	}
	return rightOf[d]
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	if !d.IsValid() {
		return 0, 0
	}
	return rowDeltas[d], colDeltas[d]
}

// Bit returns the connectivity mask bit for this direction
func (d Direction) Bit() uint8 {
	if !d.IsValid() {
		return 0
	}
	return 1 << uint(d)
}

// ParseDirection resolves a direction name (as used in ruleset files).
// Returns false if the name is not a cardinal direction.
func ParseDirection(name string) (Direction, bool) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), true
		}
	}
	return North, false
}
