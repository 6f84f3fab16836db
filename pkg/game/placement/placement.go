// Package placement enumerates and samples rule-constrained decoration
// and flavour placements over themed cell sets.
package placement

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"mazewright/pkg/engine/world"
	"mazewright/pkg/game/rules"
)

// Axis is the orientation of a multi-cell footprint.
type Axis int

// Axis constants
const (
	// AxisNone marks single-cell footprints.
	AxisNone Axis = iota
	// AxisEastWest runs along a grid row.
	AxisEastWest
	// AxisNorthSouth runs along a grid column.
	AxisNorthSouth
)

// String returns the string representation of an axis
func (a Axis) String() string {
	switch a {
	case AxisEastWest:
		return "EastWest"
	case AxisNorthSouth:
		return "NorthSouth"
	default:
		return "None"
	}
}

// Candidate is one valid placement location: a surface anchor, its
// footprint cells, and the orientation axis of the footprint.
type Candidate struct {
	Surface world.Surface
	// WallDir is the wall face for SurfaceWall candidates.
	WallDir world.Direction
	Cells   []*world.Cell
	Axis    Axis
}

// Placement is an accepted decoration candidate, ready to emit to the
// renderer collaborator.
type Placement struct {
	Candidate
	Texture string
	Length  int
}

// Logf receives recoverable placement shortfall messages.
type Logf func(format string, args ...any)

// CandidateLocations enumerates every valid placement location for a
// decoration rule over the given cell set. Footprints longer than one
// cell are built by chaining adjacent same-surface anchors into maximal
// contiguous lines and sliding a window of the required length across
// each line.
func CandidateLocations(maze *world.Maze, cells []*world.Cell, rule rules.DecorationRule) []Candidate {
	eligible := mapset.New[*world.Cell]()
	var valid []*world.Cell
	for _, cell := range cells {
		if rule.Valid == nil || rule.Valid(cell) {
			eligible.Put(cell)
			valid = append(valid, cell)
		}
	}

	if rule.Surface == world.SurfaceWall {
		return wallCandidates(maze, valid, eligible, rule.Length)
	}
	return openCandidates(maze, valid, eligible, rule.Surface, rule.Length)
}

// openCandidates enumerates floor/ceiling placements. Lines chain along
// either grid axis through open connections.
func openCandidates(maze *world.Maze, valid []*world.Cell, eligible mapset.Set[*world.Cell], surface world.Surface, length int) []Candidate {
	var candidates []Candidate

	if length == 1 {
		for _, cell := range valid {
			candidates = append(candidates, Candidate{
				Surface: surface,
				Cells:   []*world.Cell{cell},
				Axis:    AxisNone,
			})
		}
		return candidates
	}

	chains := []struct {
		dir  world.Direction
		axis Axis
	}{
		{world.East, AxisEastWest},
		{world.South, AxisNorthSouth},
	}

	for _, chain := range chains {
		for _, cell := range valid {
			// A maximal line starts where the previous cell along the
			// axis is not part of it.
			if chainable(maze, cell, chain.dir.Opposite(), eligible) {
				continue
			}

			line := []*world.Cell{cell}
			for next := cell; chainable(maze, next, chain.dir, eligible); {
				next = maze.ConnectedNeighbour(next, chain.dir)
				line = append(line, next)
			}

			candidates = append(candidates, slideWindow(line, length, surface, world.North, chain.axis)...)
		}
	}
	return candidates
}

// wallCandidates enumerates wall placements. Each closed side of a cell
// is a wall face; lines chain a shared wall direction across connected
// neighbouring cells.
func wallCandidates(maze *world.Maze, valid []*world.Cell, eligible mapset.Set[*world.Cell], length int) []Candidate {
	var candidates []Candidate

	if length == 1 {
		for _, cell := range valid {
			for _, dir := range world.AllDirections() {
				if !cell.IsConnected(dir) {
					candidates = append(candidates, Candidate{
						Surface: world.SurfaceWall,
						WallDir: dir,
						Cells:   []*world.Cell{cell},
						Axis:    AxisNone,
					})
				}
			}
		}
		return candidates
	}

	for _, wallDir := range world.AllDirections() {
		// Walls on a north/south face line up along the row axis;
		// east/west faces line up along the column axis.
		chainDir := world.East
		axis := AxisEastWest
		if wallDir == world.East || wallDir == world.West {
			chainDir = world.South
			axis = AxisNorthSouth
		}

		for _, cell := range valid {
			if cell.IsConnected(wallDir) {
				continue
			}
			if wallChainable(maze, cell, chainDir.Opposite(), wallDir, eligible) {
				continue
			}

			line := []*world.Cell{cell}
			for next := cell; wallChainable(maze, next, chainDir, wallDir, eligible); {
				next = maze.ConnectedNeighbour(next, chainDir)
				line = append(line, next)
			}

			candidates = append(candidates, slideWindow(line, length, world.SurfaceWall, wallDir, axis)...)
		}
	}
	return candidates
}

// chainable returns true if the cell's neighbour toward dir continues a
// floor/ceiling line: connected and in the eligible set
func chainable(maze *world.Maze, cell *world.Cell, dir world.Direction, eligible mapset.Set[*world.Cell]) bool {
	next := maze.ConnectedNeighbour(cell, dir)
	return next != nil && eligible.Has(next)
}

// wallChainable returns true if the cell's neighbour toward dir continues
// a wall line: connected, eligible, and sharing the wall face
func wallChainable(maze *world.Maze, cell *world.Cell, dir world.Direction, wallDir world.Direction, eligible mapset.Set[*world.Cell]) bool {
	next := maze.ConnectedNeighbour(cell, dir)
	return next != nil && eligible.Has(next) && !next.IsConnected(wallDir)
}

// slideWindow yields one candidate per length-sized window over a line.
// A line shorter than the footprint yields no candidates.
func slideWindow(line []*world.Cell, length int, surface world.Surface, wallDir world.Direction, axis Axis) []Candidate {
	var candidates []Candidate
	for start := 0; start+length <= len(line); start++ {
		footprint := make([]*world.Cell, length)
		copy(footprint, line[start:start+length])
		candidates = append(candidates, Candidate{
			Surface: surface,
			WallDir: wallDir,
			Cells:   footprint,
			Axis:    axis,
		})
	}
	return candidates
}

// Select samples candidates per the rule's selection mode and marks the
// accepted footprints' surfaces. Marks are monotonic, so a surface taken
// by an earlier rule is skipped by every later one in the same pass.
func Select(candidates []Candidate, rule rules.DecorationRule, rng *rand.Rand, logf Logf) []Placement {
	shuffled := make([]Candidate, len(candidates))
	copy(shuffled, candidates)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	switch rule.Mode {
	case rules.ModeCount:
		return selectCount(shuffled, rule, rng, logf)
	default:
		return selectChance(shuffled, rule, rng)
	}
}

// selectChance independently accepts each candidate with the rule's
// probability
func selectChance(candidates []Candidate, rule rules.DecorationRule, rng *rand.Rand) []Placement {
	var placed []Placement
	for _, candidate := range candidates {
		if conflicts(candidate) {
			continue
		}
		if rng.Intn(100) >= rule.Percent {
			continue
		}
		placed = append(placed, accept(candidate, rule.Texture))
	}
	return placed
}

// selectCount takes an exact quantity sampled from the rule's range,
// clamped to the available candidates. Shortfalls below the minimum are
// recoverable: warned and skipped up front, warned when conflicts eat
// into the loop.
func selectCount(candidates []Candidate, rule rules.DecorationRule, rng *rand.Rand, logf Logf) []Placement {
	if len(candidates) < rule.Count.Min {
		if logf != nil {
			logf("placement: %s wants at least %d locations for %q, only %d available; skipping rule",
				rule.Surface, rule.Count.Min, rule.Texture, len(candidates))
		}
		return nil
	}

	max := rule.Count.Max
	if max > len(candidates) {
		max = len(candidates)
	}
	quota := rule.Count.Min
	if max > quota {
		quota += rng.Intn(max - quota + 1)
	}

	var placed []Placement
	for _, candidate := range candidates {
		if len(placed) >= quota {
			break
		}
		if conflicts(candidate) {
			continue
		}
		placed = append(placed, accept(candidate, rule.Texture))
	}

	// Conflicts with earlier placements can use up candidates mid-loop,
	// landing below the minimum even when enough were enumerated up front.
	if len(placed) < rule.Count.Min && logf != nil {
		logf("placement: %s wants at least %d locations for %q, only %d remained free",
			rule.Surface, rule.Count.Min, rule.Texture, len(placed))
	}
	return placed
}

// conflicts returns true if any footprint cell already carries a
// decoration on the candidate's surface
func conflicts(candidate Candidate) bool {
	for _, cell := range candidate.Cells {
		if cell.SurfaceDecorated(candidate.Surface, candidate.WallDir) {
			return true
		}
	}
	return false
}

// accept marks the candidate's footprint and builds its placement event
func accept(candidate Candidate, texture string) Placement {
	for _, cell := range candidate.Cells {
		cell.MarkSurface(candidate.Surface, candidate.WallDir)
	}
	return Placement{
		Candidate: candidate,
		Texture:   texture,
		Length:    len(candidate.Cells),
	}
}
