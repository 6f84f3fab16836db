// Package devtools provides developer tools for inspecting generated
// mazes: a plain-text map dump and an HTML snapshot.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"mazewright/pkg/engine/world"
	"mazewright/pkg/game/autotile"
	"mazewright/pkg/game/renderer"
	"mazewright/pkg/game/renderer/tui"
)

const mapDumpFilename = "maze.txt"

// surfaceSymbol returns the single-character decoration marker for a
// cell: which surfaces carry decorations, or '.' for a bare cell.
func surfaceSymbol(cell *world.Cell) rune {
	floor := cell.FloorDecorated
	ceiling := cell.CeilingDecorated
	walls := len(cell.DecoratedWalls()) > 0

	switch {
	case floor && (ceiling || walls), ceiling && walls:
		return '*'
	case floor:
		return 'F'
	case ceiling:
		return 'C'
	case walls:
		return 'W'
	default:
		return '.'
	}
}

// writePassageMap writes the maze as box-drawing glyphs with the
// entrance and exit overlaid.
func writePassageMap(f *os.File, maze *world.Maze) {
	maze.ForEachCell(func(row, col int, cell *world.Cell) {
		switch {
		case cell.Entrance:
			fmt.Fprint(f, string(tui.IconEntrance))
		case cell.Exit:
			fmt.Fprint(f, string(tui.IconExit))
		default:
			fmt.Fprint(f, string(tui.PassageGlyph(autotile.FixMask(maze, cell))))
		}
		if col == maze.Cols()-1 {
			fmt.Fprintln(f)
		}
	})
}

// writeThemeMap writes one letter per cell: the first rune of its theme
// name, '.' for the default theme.
func writeThemeMap(f *os.File, maze *world.Maze) {
	maze.ForEachCell(func(row, col int, cell *world.Cell) {
		if cell.Theme == world.DefaultTheme {
			fmt.Fprint(f, ".")
		} else {
			fmt.Fprintf(f, "%c", []rune(cell.Theme)[0])
		}
		if col == maze.Cols()-1 {
			fmt.Fprintln(f)
		}
	})
}

// writeDecorationMap writes the per-cell decoration markers.
func writeDecorationMap(f *os.File, maze *world.Maze) {
	maze.ForEachCell(func(row, col int, cell *world.Cell) {
		fmt.Fprintf(f, "%c", surfaceSymbol(cell))
		if col == maze.Cols()-1 {
			fmt.Fprintln(f)
		}
	})
}

// themeCounts tallies cells per theme in sorted name order.
func themeCounts(maze *world.Maze) []string {
	counts := make(map[string]int)
	maze.ForEachCell(func(row, col int, cell *world.Cell) {
		counts[cell.Theme]++
	})

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("  theme: %q cells: %d", name, counts[name]))
	}
	return lines
}

// DumpMazeToFile writes a full debug dump to maze.txt: metadata, legend,
// passage map, theme map, decoration map, and detailed placement lists.
// Format is human- and LLM-readable (sections, key: value, consistent
// structure).
func DumpMazeToFile(v *renderer.View) (string, error) {
	if v == nil || v.Maze == nil {
		return "", fmt.Errorf("no maze")
	}
	maze := v.Maze

	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	entrance := maze.EntranceCell()
	exit := maze.ExitCell()

	// --- Metadata ---
	fmt.Fprintln(f, "=== MAZE DUMP DEBUG (layout, themes, placements) ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "state: %s\n", v.State)
	fmt.Fprintf(f, "grid_rows: %d\n", maze.Rows())
	fmt.Fprintf(f, "grid_cols: %d\n", maze.Cols())
	fmt.Fprintf(f, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(f, "cell_size: %v\n", maze.CellSize)
	fmt.Fprintf(f, "corridor_length: %d\n", maze.CorridorLength)
	if entrance != nil {
		fmt.Fprintf(f, "entrance_cell: %d,%d facing: %s\n", entrance.Row, entrance.Col, maze.EntranceDirection())
	}
	if exit != nil {
		fmt.Fprintf(f, "exit_cell: %d,%d facing: %s\n", exit.Row, exit.Col, maze.ExitDirection())
	}
	fmt.Fprintf(f, "decorations: %d\n", len(v.Placements))
	fmt.Fprintf(f, "flavours: %d\n", len(v.Flavours))
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Themes (cells per theme) ---")
	for _, line := range themeCounts(maze) {
		fmt.Fprintln(f, line)
	}
	fmt.Fprintln(f, "")

	// --- Legend ---
	fmt.Fprintln(f, "--- Legend ---")
	fmt.Fprintf(f, "passage map: box glyphs show open sides, %c = entrance, %c = exit\n", tui.IconEntrance, tui.IconExit)
	fmt.Fprintln(f, "theme map: . = default theme, letter = first rune of theme name")
	fmt.Fprintln(f, "decoration map: . = bare  F = floor  C = ceiling  W = wall  * = multiple surfaces")
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Map (passages) ---")
	writePassageMap(f, maze)
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Map (themes) ---")
	writeThemeMap(f, maze)
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Map (decorated surfaces) ---")
	writeDecorationMap(f, maze)
	fmt.Fprintln(f, "")

	// --- Placements: every accepted decoration with its footprint ---
	fmt.Fprintln(f, "--- Decorations (all with row,col footprints) ---")
	for _, p := range v.Placements {
		fmt.Fprintf(f, "  surface: %s texture: %q length: %d axis: %s", p.Surface, p.Texture, p.Length, p.Axis)
		if p.Surface == world.SurfaceWall {
			fmt.Fprintf(f, " wall: %s", p.WallDir)
		}
		fmt.Fprint(f, " cells:")
		for _, cell := range p.Cells {
			fmt.Fprintf(f, " %d,%d", cell.Row, cell.Col)
		}
		fmt.Fprintln(f)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Flavours (single-cell texture overrides) ---")
	for _, fl := range v.Flavours {
		fmt.Fprintf(f, "  row: %d col: %d texture: %q surfaces:", fl.Cell.Row, fl.Cell.Col, fl.Texture)
		for _, surface := range []world.Surface{world.SurfaceFloor, world.SurfaceCeiling, world.SurfaceWall} {
			if fl.Surfaces.Has(surface) {
				fmt.Fprintf(f, " %s", surface)
			}
		}
		fmt.Fprintln(f)
	}
	fmt.Fprintln(f, "")

	// --- Generation log ---
	fmt.Fprintln(f, "--- Messages ---")
	for _, msg := range v.Messages {
		fmt.Fprintf(f, "  %s\n", msg)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "=== END MAZE DUMP ===")

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
