package rules

import "mazewright/pkg/engine/world"

// DefaultCellSize is the world-space cell edge used when a ruleset does
// not specify one.
const DefaultCellSize = 4.0

// DefaultRuleset returns a ready-to-run ruleset for previewing without a
// ruleset file: a mossy region near the entrance, a flooded region near
// the exit, and a scattering of rubble in between.
func DefaultRuleset(rows, cols int) *Ruleset {
	anyCell, _ := LookupPredicate("any")
	deadEnd, _ := LookupPredicate("deadEnd")
	straight, _ := LookupPredicate("straight")

	rs := &Ruleset{
		Rows:           rows,
		Cols:           cols,
		CellSize:       DefaultCellSize,
		CorridorLength: 2,
		Styles: map[string]*Style{
			world.DefaultTheme: {
				Name:    world.DefaultTheme,
				Tileset: "stone",
				Decorations: []DecorationRule{
					{
						Surface:   world.SurfaceFloor,
						Mode:      ModeChance,
						Percent:   10,
						Length:    1,
						Texture:   "rubble",
						Valid:     anyCell,
						ValidName: "any",
					},
				},
			},
			"mossy": {
				Name:    "mossy",
				Tileset: "moss",
				Decorations: []DecorationRule{
					{
						Surface:   world.SurfaceWall,
						Mode:      ModeChance,
						Percent:   35,
						Length:    2,
						Texture:   "vines",
						Valid:     anyCell,
						ValidName: "any",
					},
					{
						Surface:   world.SurfaceCeiling,
						Mode:      ModeCount,
						Count:     Range{Min: 1, Max: 3},
						Length:    1,
						Texture:   "roots",
						Valid:     deadEnd,
						ValidName: "deadEnd",
					},
				},
				Flavours: []FlavourRule{
					{
						Surfaces:  world.FloorBit | world.WallBit,
						Mode:      ModeChance,
						Percent:   20,
						Texture:   "overgrown",
						Valid:     anyCell,
						ValidName: "any",
					},
				},
			},
			"flooded": {
				Name:    "flooded",
				Tileset: "water",
				Decorations: []DecorationRule{
					{
						Surface:   world.SurfaceFloor,
						Mode:      ModeChance,
						Percent:   50,
						Length:    2,
						Texture:   "puddle",
						Valid:     straight,
						ValidName: "straight",
					},
				},
			},
		},
		Sprawls: []SprawlRule{
			{Style: "mossy", Size: Range{Min: 6, Max: 10}, Count: Range{Min: 1, Max: 2}, Start: AtMazeStart},
			{Style: "flooded", Size: Range{Min: 4, Max: 8}, Count: Range{Min: 1, Max: 1}, Start: AtMazeEnd},
		},
	}
	return rs
}
