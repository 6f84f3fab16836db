package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"mazewright/pkg/engine/world"
)

// crawler is a single growth cursor owned by one sprawl automaton run.
// It moves only along existing maze connectivity and is destroyed when
// the run ends.
type crawler struct {
	cell      *world.Cell
	facing    world.Direction
	remaining int
}

// Automaton grows a connected region of exactly targetSize cells from a
// seed cell, one crawler move per Step. It claims cells without stamping
// themes; the caller reads the pending region from Cells once the run
// stops and applies the theme only on success.
type Automaton struct {
	maze *world.Maze
	rng  *rand.Rand

	targetSize int

	// blocked reports cells owned by other regions in the same pass.
	blocked func(*world.Cell) bool
	// onClaim fires for every claimed cell so observers can render
	// incrementally.
	onClaim func(*world.Cell)

	claimed  mapset.Set[*world.Cell]
	cells    []*world.Cell
	crawlers []*crawler

	running bool
	success bool
}

// NewAutomaton creates a sprawl automaton seeded at start. The seed is
// claimed immediately; a seed that is nil or already owned fails the run
// before the first Step.
func NewAutomaton(maze *world.Maze, start *world.Cell, targetSize int, rng *rand.Rand, blocked func(*world.Cell) bool, onClaim func(*world.Cell)) *Automaton {
	a := &Automaton{
		maze:       maze,
		rng:        rng,
		targetSize: targetSize,
		blocked:    blocked,
		onClaim:    onClaim,
		claimed:    mapset.New[*world.Cell](),
		running:    true,
	}

	if start == nil || targetSize < 1 || (blocked != nil && blocked(start)) {
		a.running = false
		return a
	}

	a.claim(start)
	if a.running {
		a.spawnCrawler(start)
	}
	return a
}

// Running returns true while the automaton still has work to do
func (a *Automaton) Running() bool {
	return a.running
}

// Success is the terminal flag: true iff the automaton stopped after
// claiming exactly its target size
func (a *Automaton) Success() bool {
	return a.success
}

// Cells returns the pending region in claim order
func (a *Automaton) Cells() []*world.Cell {
	return a.cells
}

// Size returns the number of cells claimed so far
func (a *Automaton) Size() int {
	return len(a.cells)
}

// Step advances one crawler by one cell. Returns true while the
// automaton is still running.
func (a *Automaton) Step() bool {
	if !a.running {
		return false
	}

	active := a.activeCrawler()
	if active == nil {
		// Every crawler retired before the target was reached and no
		// claimed cell can seed a new one: the region cannot grow.
		a.running = false
		a.success = false
		return false
	}

	dir, ok := a.chooseMove(active)
	if !ok {
		// Crawler is boxed in; retire it and let the next Step pick or
		// spawn another.
		a.retire(active)
		return true
	}

	next := a.maze.ConnectedNeighbour(active.cell, dir)
	active.cell = next
	active.facing = dir
	active.remaining--

	a.claim(next)
	if !a.running {
		return false
	}

	if active.remaining <= 0 {
		a.retire(active)
	}
	return true
}

// claim takes ownership of a cell and notifies the observer
func (a *Automaton) claim(cell *world.Cell) {
	a.claimed.Put(cell)
	a.cells = append(a.cells, cell)
	if a.onClaim != nil {
		a.onClaim(cell)
	}

	if len(a.cells) >= a.targetSize {
		a.running = false
		a.success = true
	}
}

// activeCrawler returns the crawler to advance this step, spawning a new
// one from the claimed region when the current set is exhausted. Returns
// nil when no further growth is possible.
func (a *Automaton) activeCrawler() *crawler {
	if len(a.crawlers) > 0 {
		return a.crawlers[len(a.crawlers)-1]
	}

	// Respawn from the oldest claimed cell that still has an unclaimed
	// connected neighbour. Claim order keeps this deterministic.
	for _, cell := range a.cells {
		if a.hasClaimableNeighbour(cell) {
			return a.spawnCrawler(cell)
		}
	}
	return nil
}

// spawnCrawler adds a crawler at the given cell with a random facing and
// enough step budget to finish the region
func (a *Automaton) spawnCrawler(cell *world.Cell) *crawler {
	c := &crawler{
		cell:      cell,
		facing:    world.Direction(a.rng.Intn(4)),
		remaining: a.targetSize - len(a.cells),
	}
	a.crawlers = append(a.crawlers, c)
	return c
}

// retire removes a crawler from the active set
func (a *Automaton) retire(c *crawler) {
	for i, existing := range a.crawlers {
		if existing == c {
			a.crawlers = append(a.crawlers[:i], a.crawlers[i+1:]...)
			return
		}
	}
}

// chooseMove picks the crawler's next direction: straight ahead when
// possible, otherwise a random turn, mirroring the bias of natural room
// growth.
func (a *Automaton) chooseMove(c *crawler) (world.Direction, bool) {
	if a.claimable(c.cell, c.facing) {
		return c.facing, true
	}

	turns := []world.Direction{c.facing.Left(), c.facing.Right()}
	a.rng.Shuffle(len(turns), func(i, j int) {
		turns[i], turns[j] = turns[j], turns[i]
	})
	for _, dir := range turns {
		if a.claimable(c.cell, dir) {
			return dir, true
		}
	}

	if back := c.facing.Opposite(); a.claimable(c.cell, back) {
		return back, true
	}
	return world.North, false
}

// claimable returns true if the cell's neighbour toward dir is connected,
// unclaimed by this run, and not owned by another region
func (a *Automaton) claimable(cell *world.Cell, dir world.Direction) bool {
	next := a.maze.ConnectedNeighbour(cell, dir)
	if next == nil || a.claimed.Has(next) {
		return false
	}
	return a.blocked == nil || !a.blocked(next)
}

// hasClaimableNeighbour returns true if any connected neighbour of the
// cell can still be claimed
func (a *Automaton) hasClaimableNeighbour(cell *world.Cell) bool {
	for _, dir := range world.AllDirections() {
		if a.claimable(cell, dir) {
			return true
		}
	}
	return false
}
