// Package tui provides a terminal preview renderer for generated mazes.
package tui

import (
	"fmt"
	"sort"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"mazewright/pkg/engine/terminal"
	"mazewright/pkg/engine/world"
	"mazewright/pkg/game/autotile"
	"mazewright/pkg/game/renderer"
)

// Passage glyphs indexed by the fixed connectivity mask
// (north=1, east=2, south=4, west=8).
var passageGlyphs = [16]rune{
	'○', '╵', '╶', '└',
	'╷', '│', '┌', '├',
	'╴', '┘', '─', '┴',
	'┐', '┤', '┬', '┼',
}

// Entrance/exit markers
const (
	IconEntrance = '▼'
	IconExit     = '⌂'
)

// PassageGlyph returns the box-drawing glyph for a fixed connectivity
// mask. Shared with the devtools map dump so both draw the same maze.
func PassageGlyph(fixed uint8) rune {
	return passageGlyphs[fixed&0x0f]
}

// maxMessageLines is how many trailing log lines the preview shows.
const maxMessageLines = 5

// themePalette cycles across non-default themes in sorted name order, so
// the same ruleset always colors the same way.
var themePalette = []color.Style{
	{color.FgGreen},
	{color.FgCyan},
	{color.FgYellow},
	{color.FgMagenta},
	{color.FgRed},
	{color.FgBlue},
}

var (
	colorDefault  color.Style
	colorEndpoint color.Style
	colorSubtle   color.Style
)

// TUIRenderer renders generation previews as colored box-drawing glyphs.
type TUIRenderer struct {
	themeColors map[string]color.Style
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{
		themeColors: make(map[string]color.Style),
	}
}

// Init initializes colors and translations
func (t *TUIRenderer) Init() {
	gotext.Configure("mo", "en_US.utf8", "default")

	colorDefault = color.Style{color.FgGray}
	colorEndpoint = color.Style{color.FgWhite, color.OpBold}
	colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// RenderFrame renders a complete generation view: the maze glyph map,
// the endpoint summary, and the trailing message log
func (t *TUIRenderer) RenderFrame(v *renderer.View) {
	if v == nil || v.Maze == nil {
		fmt.Println(gotext.Get("No maze generated yet"))
		return
	}

	maze := v.Maze
	t.assignThemeColors(maze)

	cols, rows := terminal.FitViewport(maze.Cols(), maze.Rows(), maxMessageLines+6)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			fmt.Print(t.renderCell(maze, maze.CellAt(row, col)))
		}
		fmt.Println()
	}

	entrance := maze.EntranceCell()
	exit := maze.ExitCell()
	fmt.Printf("%s (%d,%d) %s  %s (%d,%d) %s  [%s]\n",
		gotext.Get("Entrance"), entrance.Row, entrance.Col, maze.EntranceDirection(),
		gotext.Get("Exit"), exit.Row, exit.Col, maze.ExitDirection(),
		v.State)
	fmt.Printf("%s: %d  %s: %d\n",
		gotext.Get("Decorations"), len(v.Placements),
		gotext.Get("Flavours"), len(v.Flavours))

	start := len(v.Messages) - maxMessageLines
	if start < 0 {
		start = 0
	}
	for _, msg := range v.Messages[start:] {
		fmt.Println(colorSubtle.Sprint("- " + msg))
	}
}

// renderCell returns the styled glyph for one cell
func (t *TUIRenderer) renderCell(maze *world.Maze, cell *world.Cell) string {
	if cell == nil {
		return " "
	}

	style := t.styleFor(cell.Theme)

	if cell.Entrance {
		return colorEndpoint.Sprint(string(IconEntrance))
	}
	if cell.Exit {
		return colorEndpoint.Sprint(string(IconExit))
	}

	fixed := autotile.FixMask(maze, cell)
	glyph := string(passageGlyphs[fixed&0x0f])

	if cell.FloorDecorated || cell.CeilingDecorated || len(cell.DecoratedWalls()) > 0 {
		decorated := append(color.Style{}, style...)
		decorated = append(decorated, color.OpBold)
		return decorated.Sprint(glyph)
	}
	return style.Sprint(glyph)
}

// CellClaimed prints nothing; stepped TUI previews re-render whole frames
func (t *TUIRenderer) CellClaimed(cell *world.Cell) {}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(msg)
}

// assignThemeColors gives every non-default theme in the maze a stable
// palette entry
func (t *TUIRenderer) assignThemeColors(maze *world.Maze) {
	present := make(map[string]bool)
	maze.ForEachCell(func(row, col int, cell *world.Cell) {
		if cell.Theme != world.DefaultTheme {
			present[cell.Theme] = true
		}
	})

	names := make([]string, 0, len(present))
	for name := range present {
		if _, assigned := t.themeColors[name]; !assigned {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		t.themeColors[name] = themePalette[len(t.themeColors)%len(themePalette)]
	}
}

// styleFor returns the color style for a theme
func (t *TUIRenderer) styleFor(theme string) color.Style {
	if style, found := t.themeColors[theme]; found {
		return style
	}
	return colorDefault
}
