package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"mazewright/pkg/engine/input"
	"mazewright/pkg/engine/world"
	"mazewright/pkg/game/assets"
	"mazewright/pkg/game/devtools"
	"mazewright/pkg/game/generator"
	"mazewright/pkg/game/renderer"
	"mazewright/pkg/game/renderer/ebitenview"
	"mazewright/pkg/game/renderer/tui"
	"mazewright/pkg/game/rules"
)

func initGotext() {
	gotext.Configure("mo", "en_US.utf8", "default")
}

// loadRuleset reads the ruleset file, falling back to the built-in
// default ruleset when no file is given
func loadRuleset(path string, rows, cols int) (*rules.Ruleset, error) {
	if path == "" {
		return rules.DefaultRuleset(rows, cols), nil
	}
	return rules.Load(path)
}

// registerAssets registers every tileset and texture the ruleset names,
// so the report only warns about ids the ruleset forgot to declare
func registerAssets(registry *assets.Registry, rs *rules.Ruleset) {
	for _, style := range rs.Styles {
		registry.Register(style.Tileset)
		for _, rule := range style.Decorations {
			registry.Register(rule.Texture)
		}
		for _, rule := range style.Flavours {
			registry.Register(rule.Texture)
		}
	}
}

// runInteractive drives the generation from the keyboard: step, dump,
// snapshot, or quit (which finishes the run without further rendering).
// Returns the number of steps taken.
func runInteractive(run *generator.Generation) int {
	display := tui.New()
	renderer.SetRenderer(display)
	renderer.Init()
	fmt.Println(gotext.Get("Interactive mode: enter steps, d dumps, h saves a snapshot, q finishes"))

	steps := 0
	for {
		switch input.ReadIntent().Action {
		case input.ActionStep:
			if !run.Step() {
				return steps
			}
			steps++
			renderer.RenderFrame(renderer.Snapshot(run))
		case input.ActionDump:
			reportDump(devtools.DumpMazeToFile(renderer.Snapshot(run)))
		case input.ActionSnapshot:
			if name := devtools.SaveSnapshotHTML(renderer.Snapshot(run)); name != "" {
				fmt.Printf("%s: %s\n", gotext.Get("Snapshot saved"), name)
			}
		case input.ActionQuit:
			run.Run()
			return steps
		}
	}
}

func reportDump(path string, err error) {
	if err != nil {
		fmt.Println(color.Yellow.Sprint(err))
		return
	}
	fmt.Printf("%s: %s\n", gotext.Get("Map dumped"), path)
}

func main() {
	rulesetPath := flag.String("ruleset", "", "path to a YAML ruleset file (empty: built-in default)")
	rows := flag.Int("rows", 12, "maze rows for the built-in ruleset")
	cols := flag.Int("cols", 16, "maze cols for the built-in ruleset")
	seed := flag.Int64("seed", 0, "generation seed (0: derive from current time)")
	stepped := flag.Bool("stepped", false, "drive generation one Step call at a time and report the step count")
	interactive := flag.Bool("interactive", false, "step the generation from the keyboard")
	view := flag.String("view", "tui", "preview backend: tui or ebiten")
	dump := flag.Bool("dump", false, "write a maze.txt debug dump after generation")
	snapshot := flag.Bool("snapshot", false, "write an HTML snapshot after generation")
	flag.Parse()

	initGotext()

	rs, err := loadRuleset(*rulesetPath, *rows, *cols)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprint(err))
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	run, err := generator.New(rs, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprint(err))
		os.Exit(1)
	}

	// Snapshot at completion, before the run tears its transient state down.
	var finished *renderer.View
	run.OnComplete = func(m *world.Maze) {
		finished = renderer.Snapshot(run)
	}

	steps := 0
	switch {
	case *view == "ebiten":
		viewer := ebitenview.NewViewer(run)
		renderer.SetRenderer(viewer)
		if err := viewer.Run(); err != nil {
			fmt.Fprintln(os.Stderr, color.Red.Sprint(err))
			os.Exit(1)
		}
		finished = viewer.View()
	case *interactive:
		steps = runInteractive(run)
	case *stepped:
		for run.Step() {
			steps++
		}
	default:
		run.Run()
	}

	if finished == nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprint(gotext.Get("Generation did not finish")))
		os.Exit(1)
	}

	display := tui.New()
	renderer.SetRenderer(display)
	renderer.Init()
	renderer.RenderFrame(finished)

	registry := assets.NewRegistry(func(format string, args ...any) {
		fmt.Println(color.Yellow.Sprintf(format, args...))
	})
	registerAssets(registry, rs)
	for _, p := range finished.Placements {
		registry.ResolveOrDefault(p.Texture)
	}
	for _, f := range finished.Flavours {
		registry.ResolveOrDefault(f.Texture)
	}

	if *dump {
		reportDump(devtools.DumpMazeToFile(finished))
	}
	if *snapshot {
		if name := devtools.SaveSnapshotHTML(finished); name != "" {
			fmt.Printf("%s: %s\n", gotext.Get("Snapshot saved"), name)
		}
	}

	fmt.Printf("%s: %d\n", gotext.Get("Seed"), *seed)
	if *stepped || *interactive {
		fmt.Printf("%s: %d\n", gotext.Get("Steps"), steps)
	}
}
