package generator

import (
	"math/bits"
	"math/rand"
	"testing"

	"mazewright/pkg/engine/world"
)

// reachableCells flood-fills the grid from the carve start and returns
// how many cells it can reach through open connections.
func reachableCells(grid *world.Grid, startRow, startCol int) int {
	visited := make(map[[2]int]bool)
	stack := [][2]int{{startRow, startCol}}

	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[pos] {
			continue
		}
		visited[pos] = true

		for _, dir := range world.AllDirections() {
			if !grid.IsOpen(pos[0], pos[1], dir) {
				continue
			}
			rowDelta, colDelta := dir.Delta()
			adjRow, adjCol := pos[0]+rowDelta, pos[1]+colDelta
			if grid.InBounds(adjRow, adjCol) {
				stack = append(stack, [2]int{adjRow, adjCol})
			}
		}
	}

	return len(visited)
}

func totalMaskBits(grid *world.Grid) int {
	total := 0
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			total += bits.OnesCount8(grid.Mask(row, col))
		}
	}
	return total
}

func TestCarveSpansEveryCell(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	result := Carve(8, 8, rng)

	if got := reachableCells(result.Grid, result.StartRow, result.StartCol); got != 64 {
		t.Errorf("reachable cells = %d, want 64", got)
	}
}

func TestCarveIsSpanningTree(t *testing.T) {
	// A spanning tree over N cells has N-1 internal connections, each
	// setting a bit on both sides, plus one boundary bit each for the
	// forced entrance and exit.
	for seed := int64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		result := Carve(5, 5, rng)

		if got := totalMaskBits(result.Grid); got != 50 {
			t.Errorf("seed %d: total mask bits = %d, want 50", seed, got)
		}
	}
}

func TestCarveEntranceOnTopRow(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	result := Carve(6, 6, rng)

	if result.StartRow != 0 {
		t.Errorf("start row = %d, want 0", result.StartRow)
	}
	if result.EntranceDir != world.North {
		t.Errorf("entrance direction = %v, want North", result.EntranceDir)
	}
	if !result.Grid.IsOpen(result.EntranceRow, result.EntranceCol, world.North) {
		t.Error("entrance cell is not open to the north")
	}
}

func TestCarveExitOnBoundary(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		result := Carve(6, 6, rng)

		if !result.Grid.IsOnBoundary(result.ExitRow, result.ExitCol) {
			t.Errorf("seed %d: exit (%d,%d) is not on the boundary",
				seed, result.ExitRow, result.ExitCol)
		}
		if !result.Grid.IsOpen(result.ExitRow, result.ExitCol, result.ExitDir) {
			t.Errorf("seed %d: exit cell is not open toward %v", seed, result.ExitDir)
		}

		// The forced exit opening must face out of the grid.
		rowDelta, colDelta := result.ExitDir.Delta()
		if result.Grid.InBounds(result.ExitRow+rowDelta, result.ExitCol+colDelta) {
			t.Errorf("seed %d: exit direction %v faces an interior cell", seed, result.ExitDir)
		}
	}
}

func TestCarveIsDeterministic(t *testing.T) {
	first := Carve(10, 10, rand.New(rand.NewSource(42)))
	second := Carve(10, 10, rand.New(rand.NewSource(42)))

	if first.StartCol != second.StartCol {
		t.Fatalf("start columns differ: %d vs %d", first.StartCol, second.StartCol)
	}
	if first.ExitRow != second.ExitRow || first.ExitCol != second.ExitCol {
		t.Fatal("exit cells differ between identically seeded runs")
	}

	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			if first.Grid.Mask(row, col) != second.Grid.Mask(row, col) {
				t.Fatalf("masks differ at (%d,%d)", row, col)
			}
		}
	}
}
