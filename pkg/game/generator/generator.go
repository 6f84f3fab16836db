package generator

import (
	"fmt"
	"math/rand"
	"sort"

	"mazewright/pkg/engine/world"
	"mazewright/pkg/game/placement"
	"mazewright/pkg/game/rules"
)

// State is one phase of the generation state machine.
type State int

// Generation states
const (
	Idle State = iota
	RunningSprawls
	AddingDecorations
	AddingFlavour
	Finished
)

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case RunningSprawls:
		return "RunningSprawls"
	case AddingDecorations:
		return "AddingDecorations"
	case AddingFlavour:
		return "AddingFlavour"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// maxSprawlFailures is the per-rule retry ceiling before the rule is
// abandoned.
const maxSprawlFailures = 8

// Generation is the resumable stepper sequencing carve, sprawl growth,
// decoration placement, and flavour placement. Step may be driven in a
// tight loop or once per external tick; both produce the same maze for a
// given ruleset and seed.
type Generation struct {
	ruleset *rules.Ruleset
	rng     *rand.Rand
	maze    *world.Maze
	state   State

	// Sprawl phase bookkeeping for the active rule.
	ruleIndex     int
	automaton     *Automaton
	failures      int
	successes     int
	requiredCount int

	placements []placement.Placement
	flavours   []placement.FlavourPlacement
	messages   []string

	// OnCellClaimed fires for every cell a sprawl automaton claims, so
	// observers can render growth incrementally.
	OnCellClaimed func(*world.Cell)
	// OnComplete receives the finished maze before teardown.
	OnComplete func(*world.Maze)
}

// New validates the ruleset and prepares a generation run. Configuration
// errors surface here; generation does not start from a bad ruleset.
func New(ruleset *rules.Ruleset, seed int64) (*Generation, error) {
	if ruleset == nil {
		return nil, fmt.Errorf("generator: nil ruleset")
	}
	if err := ruleset.Validate(); err != nil {
		return nil, err
	}

	return &Generation{
		ruleset: ruleset,
		rng:     rand.New(rand.NewSource(seed)),
		state:   Idle,
	}, nil
}

// State returns the current phase
func (g *Generation) State() State {
	return g.state
}

// Maze returns the maze under construction, nil before the first Step
// and after teardown
func (g *Generation) Maze() *world.Maze {
	return g.maze
}

// Placements returns the accepted decoration placements so far
func (g *Generation) Placements() []placement.Placement {
	return g.placements
}

// FlavourPlacements returns the accepted flavour overrides so far
func (g *Generation) FlavourPlacements() []placement.FlavourPlacement {
	return g.flavours
}

// Messages returns the per-step message log
func (g *Generation) Messages() []string {
	return g.messages
}

// AddMessage appends to the message log
func (g *Generation) AddMessage(format string, args ...any) {
	g.messages = append(g.messages, fmt.Sprintf(format, args...))
}

// Run steps the generation to completion
func (g *Generation) Run() {
	for g.Step() {
	}
}

// Generate runs a full generation to completion and returns the finished
// maze alongside the run for its placements and message log
func Generate(ruleset *rules.Ruleset, seed int64) (*world.Maze, *Generation, error) {
	g, err := New(ruleset, seed)
	if err != nil {
		return nil, nil, err
	}

	var finished *world.Maze
	g.OnComplete = func(m *world.Maze) {
		finished = m
	}
	g.Run()
	return finished, g, nil
}

// Step performs one bounded unit of work and returns whether further
// steps remain. There is no fatal path: every run reaches Finished.
func (g *Generation) Step() bool {
	switch g.state {
	case Idle:
		if g.ruleset == nil {
			return false // already torn down
		}
		g.carve()
		g.state = RunningSprawls
		return true

	case RunningSprawls:
		return g.stepSprawls()

	case AddingDecorations:
		g.placeDecorations()
		g.state = AddingFlavour
		return true

	case AddingFlavour:
		g.placeFlavours()
		g.state = Finished
		return true

	case Finished:
		if g.OnComplete != nil {
			g.OnComplete(g.maze)
		}
		g.teardown()
		return false

	default:
		return false
	}
}

// carve builds the connectivity grid and wraps it into the maze
func (g *Generation) carve() {
	result := Carve(g.ruleset.Rows, g.ruleset.Cols, g.rng)

	maze := world.NewMaze(result.Grid, g.ruleset.CellSize, g.ruleset.CorridorLength)
	maze.SetStart(result.StartRow, result.StartCol)
	maze.SetEntrance(result.EntranceRow, result.EntranceCol, result.EntranceDir)
	maze.SetExit(result.ExitRow, result.ExitCol, result.ExitDir)

	if problem := maze.Validate(); problem != "" {
		panic("Generated invalid maze: " + problem)
	}

	g.maze = maze
	g.AddMessage("carved %dx%d grid, entrance at (%d,%d) %s, exit at (%d,%d) %s",
		g.ruleset.Rows, g.ruleset.Cols,
		result.EntranceRow, result.EntranceCol, result.EntranceDir,
		result.ExitRow, result.ExitCol, result.ExitDir)
}

// stepSprawls advances the active sprawl rule by one automaton step
func (g *Generation) stepSprawls() bool {
	if g.ruleIndex >= len(g.ruleset.Sprawls) {
		g.state = AddingDecorations
		return true
	}

	rule := g.ruleset.Sprawls[g.ruleIndex]

	if g.automaton == nil {
		if g.requiredCount == 0 {
			g.requiredCount = g.sample(rule.Count)
			if g.requiredCount == 0 {
				g.nextSprawlRule()
				return true
			}
		}

		start := g.startCellFor(rule.Start)
		target := g.sample(rule.Size)
		g.automaton = NewAutomaton(g.maze, start, target, g.rng, g.regionOwned, g.OnCellClaimed)
	}

	if g.automaton.Step() {
		return true
	}

	if g.automaton.Success() {
		// Pending region becomes real only now: stamp every claimed
		// cell with the rule's style.
		for _, cell := range g.automaton.Cells() {
			cell.Theme = rule.Style
		}
		g.successes++
		g.AddMessage("sprawl %q grew a region of %d cells (%d/%d)",
			rule.Style, g.automaton.Size(), g.successes, g.requiredCount)
		if g.successes >= g.requiredCount {
			g.nextSprawlRule()
		}
	} else {
		g.failures++
		if g.failures >= maxSprawlFailures {
			g.AddMessage("sprawl %q abandoned after %d failed attempts", rule.Style, g.failures)
			g.nextSprawlRule()
		}
	}
	g.automaton = nil
	return true
}

// nextSprawlRule advances to the next rule and resets its counters
func (g *Generation) nextSprawlRule() {
	g.ruleIndex++
	g.failures = 0
	g.successes = 0
	g.requiredCount = 0
}

// regionOwned reports cells already stamped by a completed region
func (g *Generation) regionOwned(cell *world.Cell) bool {
	return cell.Theme != world.DefaultTheme
}

// startCellFor picks a sprawl seed per the rule's start policy
func (g *Generation) startCellFor(policy rules.StartPolicy) *world.Cell {
	switch policy {
	case rules.AtMazeStart:
		return g.maze.StartCell()
	case rules.AtMazeEnd:
		return g.maze.ExitCell()
	default:
		row := g.rng.Intn(g.maze.Rows())
		col := g.rng.Intn(g.maze.Cols())
		return g.maze.CellAt(row, col)
	}
}

// placeDecorations runs every style's decoration rules over its cells.
// Styles run in sorted name order so a seed fully determines placement.
func (g *Generation) placeDecorations() {
	for _, name := range g.sortedStyleNames() {
		style := g.ruleset.Styles[name]
		cells := g.maze.CellsWithTheme(name)
		if len(cells) == 0 {
			continue
		}

		for _, rule := range style.Decorations {
			candidates := placement.CandidateLocations(g.maze, cells, rule)
			placed := placement.Select(candidates, rule, g.rng, g.AddMessage)
			g.placements = append(g.placements, placed...)
		}
	}
	g.AddMessage("placed %d decorations", len(g.placements))
}

// placeFlavours runs every style's flavour rules over its cells
func (g *Generation) placeFlavours() {
	for _, name := range g.sortedStyleNames() {
		style := g.ruleset.Styles[name]
		cells := g.maze.CellsWithTheme(name)
		if len(cells) == 0 {
			continue
		}

		for _, rule := range style.Flavours {
			placed := placement.SelectFlavours(cells, rule, g.rng, g.AddMessage)
			g.flavours = append(g.flavours, placed...)
		}
	}
	g.AddMessage("placed %d flavour overrides", len(g.flavours))
}

// sortedStyleNames returns the style table keys in a stable order
func (g *Generation) sortedStyleNames() []string {
	names := make([]string, 0, len(g.ruleset.Styles))
	for name := range g.ruleset.Styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sample draws a value uniformly from an inclusive range
func (g *Generation) sample(r rules.Range) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + g.rng.Intn(r.Max-r.Min+1)
}

// teardown releases all transient generation state. The only lifecycle
// teardown point is the Finished to Idle transition.
func (g *Generation) teardown() {
	g.ruleset = nil
	g.maze = nil
	g.automaton = nil
	g.ruleIndex = 0
	g.failures = 0
	g.successes = 0
	g.requiredCount = 0
	g.state = Idle
}
