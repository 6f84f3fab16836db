// Package ebitenview provides an Ebiten-based graphical preview that
// steps the generation once per frame, so sprawl growth and placement
// passes can be watched as they happen.
package ebitenview

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mazewright/pkg/engine/input"
	"mazewright/pkg/engine/world"
	"mazewright/pkg/game/autotile"
	"mazewright/pkg/game/devtools"
	"mazewright/pkg/game/generator"
	"mazewright/pkg/game/renderer"
)

const (
	tileSize  = 16
	wallWidth = 2
)

var (
	colorBackground = color.RGBA{18, 18, 24, 255}
	colorWall       = color.RGBA{60, 60, 72, 255}
	colorEndpoint   = color.RGBA{240, 240, 240, 255}
	colorDefault    = color.RGBA{96, 96, 104, 255}

	// themeColors cycles per theme in first-seen order.
	themeColors = []color.RGBA{
		{64, 140, 72, 255},  // green
		{60, 120, 150, 255}, // cyan
		{160, 140, 60, 255}, // yellow
		{140, 80, 150, 255}, // magenta
		{150, 70, 70, 255},  // red
	}
)

// maxStepsPerFrame bounds the speed-up key.
const maxStepsPerFrame = 64

// keyCodes maps Ebiten keys to binding codes for the input stack.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeySpace:     "space",
	ebiten.KeyP:         "p",
	ebiten.KeyN:         "n",
	ebiten.KeyPeriod:    ".",
	ebiten.KeyEnter:     "enter",
	ebiten.KeyEqual:     "=",
	ebiten.KeyMinus:     "-",
	ebiten.KeyArrowUp:   "arrow_up",
	ebiten.KeyArrowDown: "arrow_down",
	ebiten.KeyD:         "d",
	ebiten.KeyH:         "h",
	ebiten.KeyQ:         "q",
	ebiten.KeyEscape:    "escape",
}

// Viewer is an ebiten.Game stepping the generation each frame.
type Viewer struct {
	run  *generator.Generation
	maze *world.Maze
	view *renderer.View
	done bool

	paused        bool
	stepsPerFrame int

	themes map[string]color.RGBA
}

// NewViewer wraps a prepared generation run
func NewViewer(run *generator.Generation) *Viewer {
	v := &Viewer{
		run:           run,
		stepsPerFrame: 1,
		themes:        make(map[string]color.RGBA),
	}
	run.OnComplete = func(m *world.Maze) {
		v.maze = m
		v.view = renderer.Snapshot(run)
	}
	return v
}

// Run opens the preview window and drives the generation to completion,
// one Step per frame
func (v *Viewer) Run() error {
	maze := v.currentMaze()
	width, height := 640, 480
	if maze != nil {
		width, height = maze.Cols()*tileSize, maze.Rows()*tileSize
	}
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("mazewright")
	return ebiten.RunGame(v)
}

// Update handles keyboard intents and advances the generation
// (ebiten interface)
func (v *Viewer) Update() error {
	for key, code := range keyCodes {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		raw := input.RawInput{Device: input.DeviceKeyboard, Code: code, Timestamp: time.Now()}
		if err := v.handleIntent(input.MapToIntent(input.NewDebouncedInput(raw))); err != nil {
			return err
		}
	}

	if v.paused || v.done {
		return nil
	}
	for i := 0; i < v.stepsPerFrame; i++ {
		if !v.run.Step() {
			v.done = true
			break
		}
	}
	return nil
}

// handleIntent applies one high-level input intent to the viewer
func (v *Viewer) handleIntent(intent input.Intent) error {
	switch intent.Action {
	case input.ActionPause:
		v.paused = !v.paused
	case input.ActionStep:
		if v.paused && !v.done && !v.run.Step() {
			v.done = true
		}
	case input.ActionSpeedUp:
		if v.stepsPerFrame < maxStepsPerFrame {
			v.stepsPerFrame *= 2
		}
	case input.ActionSlowDown:
		if v.stepsPerFrame > 1 {
			v.stepsPerFrame /= 2
		}
	case input.ActionDump:
		devtools.DumpMazeToFile(v.currentView())
	case input.ActionSnapshot:
		devtools.SaveSnapshotHTML(v.currentView())
	case input.ActionQuit:
		return ebiten.Termination
	}
	return nil
}

// currentView returns a live snapshot during generation and the
// completion snapshot afterwards
func (v *Viewer) currentView() *renderer.View {
	if v.view != nil {
		return v.view
	}
	return renderer.Snapshot(v.run)
}

// Draw renders the maze as colored quads with walls on the closed sides
// of each cell's fixed mask (ebiten interface)
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	maze := v.currentMaze()
	if maze == nil {
		return
	}

	maze.ForEachCell(func(row, col int, cell *world.Cell) {
		v.drawCell(screen, maze, cell)
	})
}

// Layout sizes the logical screen to the maze (ebiten interface)
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	maze := v.currentMaze()
	if maze == nil {
		return outsideWidth, outsideHeight
	}
	return maze.Cols() * tileSize, maze.Rows() * tileSize
}

// View returns the completion snapshot, nil while the run is still going
func (v *Viewer) View() *renderer.View {
	return v.view
}

// currentMaze returns the in-flight maze during generation and the
// finished maze after teardown
func (v *Viewer) currentMaze() *world.Maze {
	if v.maze != nil {
		return v.maze
	}
	return v.run.Maze()
}

// drawCell fills the cell quad in its theme color and strokes walls on
// the closed sides
func (v *Viewer) drawCell(screen *ebiten.Image, maze *world.Maze, cell *world.Cell) {
	x := float32(cell.Col * tileSize)
	y := float32(cell.Row * tileSize)

	fill := v.themeColor(cell.Theme)
	if cell.Entrance || cell.Exit {
		fill = colorEndpoint
	} else if cell.FloorDecorated {
		fill = lighten(fill)
	}
	vector.DrawFilledRect(screen, x, y, tileSize, tileSize, fill, false)

	fixed := autotile.FixMask(maze, cell)
	if fixed&world.North.Bit() == 0 {
		vector.DrawFilledRect(screen, x, y, tileSize, wallWidth, colorWall, false)
	}
	if fixed&world.South.Bit() == 0 {
		vector.DrawFilledRect(screen, x, y+tileSize-wallWidth, tileSize, wallWidth, colorWall, false)
	}
	if fixed&world.West.Bit() == 0 {
		vector.DrawFilledRect(screen, x, y, wallWidth, tileSize, colorWall, false)
	}
	if fixed&world.East.Bit() == 0 {
		vector.DrawFilledRect(screen, x+tileSize-wallWidth, y, wallWidth, tileSize, colorWall, false)
	}
}

// themeColor assigns palette entries to themes in first-seen order
func (v *Viewer) themeColor(theme string) color.RGBA {
	if theme == world.DefaultTheme {
		return colorDefault
	}
	if c, found := v.themes[theme]; found {
		return c
	}
	c := themeColors[len(v.themes)%len(themeColors)]
	v.themes[theme] = c
	return c
}

// lighten brightens a fill for decorated cells
func lighten(c color.RGBA) color.RGBA {
	bump := func(v uint8) uint8 {
		if v > 215 {
			return 255
		}
		return v + 40
	}
	return color.RGBA{bump(c.R), bump(c.G), bump(c.B), c.A}
}

// Interface glue so the viewer can also serve as the active renderer for
// message output while the window is open.
var _ renderer.Renderer = (*Viewer)(nil)

// Init is a no-op; the window is opened by Run
func (v *Viewer) Init() {}

// RenderFrame is a no-op; the viewer redraws every frame from the run
func (v *Viewer) RenderFrame(view *renderer.View) {}

// CellClaimed is a no-op; claimed cells are visible on the next frame
func (v *Viewer) CellClaimed(cell *world.Cell) {}

// ShowMessage drops messages; the TUI report is printed after the window
// closes
func (v *Viewer) ShowMessage(msg string) {}
