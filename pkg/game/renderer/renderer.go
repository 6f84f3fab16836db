// Package renderer defines the interface between the generation core and
// rendering backends. The core never issues draw calls itself; backends
// consume cell visuals and placement events through this boundary.
package renderer

import (
	"mazewright/pkg/engine/world"
	"mazewright/pkg/game/generator"
	"mazewright/pkg/game/placement"
)

// View is the generation snapshot a backend consumes for one frame.
type View struct {
	Maze       *world.Maze
	State      generator.State
	Placements []placement.Placement
	Flavours   []placement.FlavourPlacement
	Messages   []string
}

// Snapshot builds a view from a generation run
func Snapshot(g *generator.Generation) *View {
	return &View{
		Maze:       g.Maze(),
		State:      g.State(),
		Placements: g.Placements(),
		Flavours:   g.FlavourPlacements(),
		Messages:   g.Messages(),
	}
}

// Renderer defines the interface for rendering backends.
// Implementations can include TUI (terminal), Ebiten, etc.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// RenderFrame renders one complete view of the generation
	RenderFrame(v *View)

	// CellClaimed receives incremental sprawl growth events
	CellClaimed(cell *world.Cell)

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// RenderFrame renders a view using the current renderer
func RenderFrame(v *View) {
	if Current != nil {
		Current.RenderFrame(v)
	}
}

// CellClaimed forwards a sprawl growth event
func CellClaimed(cell *world.Cell) {
	if Current != nil {
		Current.CellClaimed(cell)
	}
}

// ShowMessage displays a message using the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
