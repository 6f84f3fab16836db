package generator

import (
	"fmt"
	"strings"
	"testing"

	"mazewright/pkg/engine/world"
	"mazewright/pkg/game/rules"
)

func plainRuleset(rows, cols int) *rules.Ruleset {
	return &rules.Ruleset{
		Rows:     rows,
		Cols:     cols,
		CellSize: rules.DefaultCellSize,
		Styles:   map[string]*rules.Style{},
	}
}

func mossyRuleset() *rules.Ruleset {
	rs := plainRuleset(8, 8)
	rs.Styles["mossy"] = &rules.Style{Name: "mossy", Tileset: "mossy"}
	rs.Sprawls = []rules.SprawlRule{
		{Style: "mossy", Size: rules.Range{Min: 4, Max: 6}, Count: rules.Range{Min: 1, Max: 1}, Start: rules.AtMazeStart},
	}
	return rs
}

func TestGenerateProducesValidMaze(t *testing.T) {
	maze, _, err := Generate(plainRuleset(6, 6), 11)
	if err != nil {
		t.Fatal(err)
	}
	if maze == nil {
		t.Fatal("Generate returned no maze")
	}
	if problem := maze.Validate(); problem != "" {
		t.Errorf("generated maze does not validate: %s", problem)
	}
	if maze.Rows() != 6 || maze.Cols() != 6 {
		t.Errorf("maze is %dx%d, want 6x6", maze.Rows(), maze.Cols())
	}
}

func TestGenerationPhasesInOrder(t *testing.T) {
	g, err := New(plainRuleset(5, 5), 1)
	if err != nil {
		t.Fatal(err)
	}

	if g.State() != Idle {
		t.Fatalf("initial state = %v, want Idle", g.State())
	}

	var seen []State
	for {
		seen = append(seen, g.State())
		if !g.Step() {
			break
		}
	}

	// With no sprawl rules each phase takes one step plus the sprawl
	// handoff step.
	want := []State{Idle, RunningSprawls, AddingDecorations, AddingFlavour, Finished}
	if len(seen) != len(want) {
		t.Fatalf("saw states %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("step %d state = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestGenerationTearsDownToIdle(t *testing.T) {
	g, err := New(plainRuleset(5, 5), 2)
	if err != nil {
		t.Fatal(err)
	}

	completed := false
	g.OnComplete = func(m *world.Maze) {
		completed = true
		if m == nil {
			t.Error("OnComplete received a nil maze")
		}
	}
	g.Run()

	if !completed {
		t.Error("OnComplete never fired")
	}
	if g.State() != Idle {
		t.Errorf("state after run = %v, want Idle", g.State())
	}
	if g.Maze() != nil {
		t.Error("maze should be released at teardown")
	}
	if g.Step() {
		t.Error("a torn-down generation must not restart")
	}
}

func TestSprawlStampsThemeOnlyOnSuccess(t *testing.T) {
	maze, _, err := Generate(mossyRuleset(), 21)
	if err != nil {
		t.Fatal(err)
	}

	mossy := maze.CellsWithTheme("mossy")
	if len(mossy) < 4 || len(mossy) > 6 {
		t.Errorf("mossy region spans %d cells, want between 4 and 6", len(mossy))
	}

	// The region seeds at the maze start and grows along connectivity.
	start := maze.StartCell()
	if start.Theme != "mossy" {
		t.Errorf("start cell theme = %q, want mossy", start.Theme)
	}

	// Everything else keeps the default theme.
	defaulted := maze.CellsWithTheme(world.DefaultTheme)
	if len(defaulted)+len(mossy) != maze.Rows()*maze.Cols() {
		t.Errorf("themes cover %d cells, want %d", len(defaulted)+len(mossy), maze.Rows()*maze.Cols())
	}
}

func TestSprawlRuleAbandonedAfterRepeatedFailure(t *testing.T) {
	// A target far beyond the grid's cell count can never succeed; the
	// rule must be abandoned after the retry ceiling rather than spin.
	rs := plainRuleset(3, 3)
	rs.Styles["huge"] = &rules.Style{Name: "huge", Tileset: "huge"}
	rs.Sprawls = []rules.SprawlRule{
		{Style: "huge", Size: rules.Range{Min: 100, Max: 100}, Count: rules.Range{Min: 1, Max: 1}},
	}

	maze, g, err := Generate(rs, 5)
	if err != nil {
		t.Fatal(err)
	}
	if maze == nil {
		t.Fatal("run did not finish")
	}
	if cells := maze.CellsWithTheme("huge"); len(cells) != 0 {
		t.Errorf("abandoned rule stamped %d cells", len(cells))
	}

	abandoned := false
	for _, msg := range g.Messages() {
		if strings.Contains(msg, "abandoned") {
			abandoned = true
		}
	}
	if !abandoned {
		t.Error("expected an abandonment message in the log")
	}
}

func TestSteppedAndContinuousRunsMatch(t *testing.T) {
	masksOf := func(maze *world.Maze) []uint8 {
		var masks []uint8
		maze.ForEachCell(func(row, col int, cell *world.Cell) {
			masks = append(masks, cell.Mask)
		})
		return masks
	}
	themesOf := func(maze *world.Maze) []string {
		var themes []string
		maze.ForEachCell(func(row, col int, cell *world.Cell) {
			themes = append(themes, cell.Theme)
		})
		return themes
	}

	continuous, _, err := Generate(mossyRuleset(), 33)
	if err != nil {
		t.Fatal(err)
	}

	g, err := New(mossyRuleset(), 33)
	if err != nil {
		t.Fatal(err)
	}
	var stepped *world.Maze
	g.OnComplete = func(m *world.Maze) { stepped = m }
	for g.Step() {
	}

	contMasks, stepMasks := masksOf(continuous), masksOf(stepped)
	for i := range contMasks {
		if contMasks[i] != stepMasks[i] {
			t.Fatal("stepped run carved a different maze than the continuous run")
		}
	}
	contThemes, stepThemes := themesOf(continuous), themesOf(stepped)
	for i := range contThemes {
		if contThemes[i] != stepThemes[i] {
			t.Fatal("stepped run stamped different themes than the continuous run")
		}
	}
}

func TestDecoratedRunsAreSeedDeterministic(t *testing.T) {
	// One line per accepted placement, footprints spelled out by grid
	// coordinate so runs over different mazes can never compare equal by
	// pointer accident.
	fingerprint := func(g *Generation) []string {
		var lines []string
		for _, p := range g.Placements() {
			line := fmt.Sprintf("%s %s %q", p.Surface, p.WallDir, p.Texture)
			for _, cell := range p.Cells {
				line += fmt.Sprintf(" (%d,%d)", cell.Row, cell.Col)
			}
			lines = append(lines, line)
		}
		for _, f := range g.FlavourPlacements() {
			lines = append(lines, fmt.Sprintf("flavour %q %d (%d,%d)",
				f.Texture, f.Surfaces, f.Cell.Row, f.Cell.Col))
		}
		return lines
	}

	for seed := int64(1); seed <= 5; seed++ {
		_, first, err := Generate(rules.DefaultRuleset(10, 14), seed)
		if err != nil {
			t.Fatal(err)
		}
		_, second, err := Generate(rules.DefaultRuleset(10, 14), seed)
		if err != nil {
			t.Fatal(err)
		}

		a, b := fingerprint(first), fingerprint(second)
		if len(a) != len(b) {
			t.Fatalf("seed %d: runs placed %d and %d decorations", seed, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("seed %d placement %d differs:\n%s\n%s", seed, i, a[i], b[i])
			}
		}
		if len(a) == 0 {
			t.Fatalf("seed %d: default ruleset placed nothing to compare", seed)
		}
	}
}

func TestDefaultRulesetGenerates(t *testing.T) {
	rs := rules.DefaultRuleset(12, 12)
	maze, g, err := Generate(rs, 99)
	if err != nil {
		t.Fatal(err)
	}
	if problem := maze.Validate(); problem != "" {
		t.Errorf("maze does not validate: %s", problem)
	}

	// Decorations never double-book a surface.
	type face struct {
		cell *world.Cell
		surf world.Surface
		dir  world.Direction
	}
	booked := make(map[face]bool)
	for _, p := range g.Placements() {
		for _, cell := range p.Cells {
			key := face{cell, p.Surface, p.WallDir}
			if booked[key] {
				t.Errorf("surface %v on cell (%d,%d) placed twice", p.Surface, cell.Row, cell.Col)
			}
			booked[key] = true
		}
	}
}

func TestNewRejectsBadRuleset(t *testing.T) {
	if _, err := New(nil, 1); err == nil {
		t.Error("nil ruleset should be rejected")
	}

	rs := plainRuleset(0, 5)
	if _, err := New(rs, 1); err == nil {
		t.Error("zero rows should be rejected")
	}

	rs = plainRuleset(5, 5)
	rs.Sprawls = []rules.SprawlRule{
		{Style: "missing", Size: rules.Range{Min: 1, Max: 1}, Count: rules.Range{Min: 1, Max: 1}},
	}
	if _, err := New(rs, 1); err == nil {
		t.Error("sprawl referencing an unknown style should be rejected")
	}
}
