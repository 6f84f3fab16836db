package placement

import (
	"math/rand"

	"mazewright/pkg/engine/world"
	"mazewright/pkg/game/rules"
)

// FlavourPlacement is an accepted flavour override: a single cell with a
// texture applied to one or more of its surfaces at once.
type FlavourPlacement struct {
	Cell     *world.Cell
	Surfaces world.SurfaceSet
	Texture  string
}

// SelectFlavours runs the single-cell placement path for a flavour rule:
// every validity-passing cell whose targeted surfaces are all still free
// is a candidate, sampled by chance or count like decorations. Wall
// flavours cover every closed wall face of the cell.
func SelectFlavours(cells []*world.Cell, rule rules.FlavourRule, rng *rand.Rand, logf Logf) []FlavourPlacement {
	var candidates []*world.Cell
	for _, cell := range cells {
		if rule.Valid != nil && !rule.Valid(cell) {
			continue
		}
		if flavourConflicts(cell, rule.Surfaces) {
			continue
		}
		candidates = append(candidates, cell)
	}

	shuffled := make([]*world.Cell, len(candidates))
	copy(shuffled, candidates)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	quota := len(shuffled)
	if rule.Mode == rules.ModeCount {
		if len(shuffled) < rule.Count.Min {
			if logf != nil {
				logf("placement: flavour %q wants at least %d cells, only %d available; skipping rule",
					rule.Texture, rule.Count.Min, len(shuffled))
			}
			return nil
		}
		max := rule.Count.Max
		if max > len(shuffled) {
			max = len(shuffled)
		}
		quota = rule.Count.Min
		if max > quota {
			quota += rng.Intn(max - quota + 1)
		}
	}

	var placed []FlavourPlacement
	for _, cell := range shuffled {
		if len(placed) >= quota {
			break
		}
		if rule.Mode == rules.ModeChance && rng.Intn(100) >= rule.Percent {
			continue
		}
		markFlavour(cell, rule.Surfaces)
		placed = append(placed, FlavourPlacement{
			Cell:     cell,
			Surfaces: rule.Surfaces,
			Texture:  rule.Texture,
		})
	}
	return placed
}

// flavourConflicts returns true if any targeted surface of the cell is
// already decorated
func flavourConflicts(cell *world.Cell, surfaces world.SurfaceSet) bool {
	if surfaces.Has(world.SurfaceFloor) && cell.FloorDecorated {
		return true
	}
	if surfaces.Has(world.SurfaceCeiling) && cell.CeilingDecorated {
		return true
	}
	if surfaces.Has(world.SurfaceWall) {
		for _, dir := range world.AllDirections() {
			if !cell.IsConnected(dir) && cell.SurfaceDecorated(world.SurfaceWall, dir) {
				return true
			}
		}
	}
	return false
}

// markFlavour records the override on every targeted surface
func markFlavour(cell *world.Cell, surfaces world.SurfaceSet) {
	if surfaces.Has(world.SurfaceFloor) {
		cell.MarkSurface(world.SurfaceFloor, world.North)
	}
	if surfaces.Has(world.SurfaceCeiling) {
		cell.MarkSurface(world.SurfaceCeiling, world.North)
	}
	if surfaces.Has(world.SurfaceWall) {
		for _, dir := range world.AllDirections() {
			if !cell.IsConnected(dir) {
				cell.MarkSurface(world.SurfaceWall, dir)
			}
		}
	}
}
