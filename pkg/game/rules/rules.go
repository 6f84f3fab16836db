// Package rules defines the declarative ruleset that drives maze
// generation: grid size, style table, sprawl rules, and the decoration
// and flavour placement rules attached to each style.
package rules

import (
	"fmt"

	"mazewright/pkg/engine/world"
)

// StartPolicy selects where a sprawl region starts growing.
type StartPolicy int

// Start policies
const (
	AtMazeStart StartPolicy = iota
	RandomCell
	AtMazeEnd
)

// String returns the string representation of a start policy
func (p StartPolicy) String() string {
	switch p {
	case AtMazeStart:
		return "atStart"
	case RandomCell:
		return "random"
	case AtMazeEnd:
		return "atEnd"
	default:
		return "unknown"
	}
}

// SelectionMode chooses how placement candidates are sampled.
type SelectionMode int

// Selection modes
const (
	// ModeChance accepts each candidate independently with a percentage.
	ModeChance SelectionMode = iota
	// ModeCount places an exact quantity sampled from a range.
	ModeCount
)

// Range is an inclusive integer range. Min == Max pins the value.
type Range struct {
	Min int
	Max int
}

// Valid returns true if the range is well formed
func (r Range) Valid() bool {
	return r.Min >= 0 && r.Min <= r.Max
}

// DecorationRule places a texture on one surface of one or more
// contiguous cells.
type DecorationRule struct {
	Surface world.Surface
	Mode    SelectionMode
	// Percent is the acceptance chance for ModeChance, 0-100.
	Percent int
	// Count is the placement quantity range for ModeCount.
	Count Range
	// Length is the footprint: the number of contiguous cells covered.
	Length  int
	Texture string
	// Valid filters which cells may anchor this decoration.
	Valid Predicate
	// ValidName is the predicate's registry name, kept for reporting.
	ValidName string
}

// FlavourRule overrides the texture of a single cell on one or more
// surfaces at once. Footprint is always one cell.
type FlavourRule struct {
	Surfaces  world.SurfaceSet
	Mode      SelectionMode
	Percent   int
	Count     Range
	Texture   string
	Valid     Predicate
	ValidName string
}

// SprawlRule grows themed regions of a style.
type SprawlRule struct {
	// Style names an entry in the ruleset's style table.
	Style string
	// Size is the target region size range, sampled per instance.
	Size Range
	// Count is the number of regions to grow, sampled once per rule.
	Count Range
	Start StartPolicy
}

// Style groups a tileset with the placement rules applied to its cells.
type Style struct {
	Name        string
	Tileset     string
	Decorations []DecorationRule
	Flavours    []FlavourRule
}

// Ruleset is the immutable configuration for one generation run.
type Ruleset struct {
	Rows int
	Cols int

	// CellSize is the world-space edge length of one cell.
	CellSize float64
	// CorridorLength is the entrance/exit corridor length in cells.
	CorridorLength int

	// Styles maps style name to its definition. The DefaultTheme style
	// is implicit and may be overridden by an explicit entry.
	Styles map[string]*Style

	// Sprawls is the ordered list of region growth rules.
	Sprawls []SprawlRule
}

// Validate fails fast on a malformed ruleset. Generation must not start
// from a ruleset that does not pass.
func (rs *Ruleset) Validate() error {
	if rs.Rows <= 0 || rs.Cols <= 0 {
		return fmt.Errorf("ruleset: grid size %dx%d must be positive in both dimensions", rs.Rows, rs.Cols)
	}
	if rs.CellSize <= 0 {
		return fmt.Errorf("ruleset: cell size %v must be positive", rs.CellSize)
	}
	if rs.CorridorLength < 0 {
		return fmt.Errorf("ruleset: corridor length %d must not be negative", rs.CorridorLength)
	}

	for name, style := range rs.Styles {
		if style == nil {
			return fmt.Errorf("ruleset: style %q has no definition", name)
		}
		for i, rule := range style.Decorations {
			if err := validateDecoration(rule); err != nil {
				return fmt.Errorf("ruleset: style %q decoration %d: %w", name, i, err)
			}
		}
		for i, rule := range style.Flavours {
			if err := validateFlavour(rule); err != nil {
				return fmt.Errorf("ruleset: style %q flavour %d: %w", name, i, err)
			}
		}
	}

	for i, rule := range rs.Sprawls {
		if _, found := rs.Styles[rule.Style]; !found && rule.Style != world.DefaultTheme {
			return fmt.Errorf("ruleset: sprawl %d references unknown style %q", i, rule.Style)
		}
		if !rule.Size.Valid() || rule.Size.Min < 1 {
			return fmt.Errorf("ruleset: sprawl %d has invalid size range %d..%d", i, rule.Size.Min, rule.Size.Max)
		}
		if !rule.Count.Valid() {
			return fmt.Errorf("ruleset: sprawl %d has invalid count range %d..%d", i, rule.Count.Min, rule.Count.Max)
		}
	}

	return nil
}

func validateDecoration(rule DecorationRule) error {
	if rule.Length < 1 {
		return fmt.Errorf("footprint length %d must be at least 1", rule.Length)
	}
	if rule.Texture == "" {
		return fmt.Errorf("missing texture id")
	}
	return validateSelection(rule.Mode, rule.Percent, rule.Count)
}

func validateFlavour(rule FlavourRule) error {
	if rule.Surfaces == 0 {
		return fmt.Errorf("flavour applies to no surfaces")
	}
	if rule.Texture == "" {
		return fmt.Errorf("missing texture id")
	}
	return validateSelection(rule.Mode, rule.Percent, rule.Count)
}

func validateSelection(mode SelectionMode, percent int, count Range) error {
	switch mode {
	case ModeChance:
		if percent < 0 || percent > 100 {
			return fmt.Errorf("chance %d%% out of range", percent)
		}
	case ModeCount:
		if !count.Valid() {
			return fmt.Errorf("count range %d..%d has min > max or negative min", count.Min, count.Max)
		}
	default:
		return fmt.Errorf("unknown selection mode %d", mode)
	}
	return nil
}
