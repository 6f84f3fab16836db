package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mazewright/pkg/engine/world"
)

// File structs mirror the YAML ruleset shape. They are translated into a
// Ruleset so the rest of the pipeline never sees raw strings.

type rulesetFile struct {
	Rows           int                  `yaml:"rows"`
	Cols           int                  `yaml:"cols"`
	CellSize       float64              `yaml:"cellSize"`
	CorridorLength int                  `yaml:"corridorLength"`
	Styles         map[string]styleFile `yaml:"styles"`
	Sprawls        []sprawlFile         `yaml:"sprawls"`
}

type styleFile struct {
	Tileset     string           `yaml:"tileset"`
	Decorations []decorationFile `yaml:"decorations"`
	Flavours    []flavourFile    `yaml:"flavours"`
}

type decorationFile struct {
	Surface string `yaml:"surface"`
	Mode    string `yaml:"mode"`
	Percent int    `yaml:"percent"`
	Min     int    `yaml:"min"`
	Max     int    `yaml:"max"`
	Length  int    `yaml:"length"`
	Texture string `yaml:"texture"`
	Valid   string `yaml:"valid"`
}

type flavourFile struct {
	Surfaces []string `yaml:"surfaces"`
	Mode     string   `yaml:"mode"`
	Percent  int      `yaml:"percent"`
	Min      int      `yaml:"min"`
	Max      int      `yaml:"max"`
	Texture  string   `yaml:"texture"`
	Valid    string   `yaml:"valid"`
}

type sprawlFile struct {
	Style    string `yaml:"style"`
	MinSize  int    `yaml:"minSize"`
	MaxSize  int    `yaml:"maxSize"`
	MinCount int    `yaml:"minCount"`
	MaxCount int    `yaml:"maxCount"`
	Start    string `yaml:"start"`
}

// Load reads and validates a YAML ruleset file
func Load(path string) (*Ruleset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML ruleset
func Parse(raw []byte) (*Ruleset, error) {
	var file rulesetFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("ruleset: %w", err)
	}

	rs := &Ruleset{
		Rows:           file.Rows,
		Cols:           file.Cols,
		CellSize:       file.CellSize,
		CorridorLength: file.CorridorLength,
		Styles:         make(map[string]*Style, len(file.Styles)),
	}
	if rs.CellSize == 0 {
		rs.CellSize = DefaultCellSize
	}

	for name, sf := range file.Styles {
		style, err := parseStyle(name, sf)
		if err != nil {
			return nil, err
		}
		rs.Styles[name] = style
	}

	for i, sf := range file.Sprawls {
		rule, err := parseSprawl(sf)
		if err != nil {
			return nil, fmt.Errorf("ruleset: sprawl %d: %w", i, err)
		}
		rs.Sprawls = append(rs.Sprawls, rule)
	}

	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return rs, nil
}

func parseStyle(name string, sf styleFile) (*Style, error) {
	style := &Style{
		Name:    name,
		Tileset: sf.Tileset,
	}

	for i, df := range sf.Decorations {
		rule, err := parseDecoration(df)
		if err != nil {
			return nil, fmt.Errorf("ruleset: style %q decoration %d: %w", name, i, err)
		}
		style.Decorations = append(style.Decorations, rule)
	}

	for i, ff := range sf.Flavours {
		rule, err := parseFlavour(ff)
		if err != nil {
			return nil, fmt.Errorf("ruleset: style %q flavour %d: %w", name, i, err)
		}
		style.Flavours = append(style.Flavours, rule)
	}

	return style, nil
}

func parseDecoration(df decorationFile) (DecorationRule, error) {
	var rule DecorationRule

	surface, err := parseSurface(df.Surface)
	if err != nil {
		return rule, err
	}

	mode, err := parseMode(df.Mode)
	if err != nil {
		return rule, err
	}

	valid, err := LookupPredicate(df.Valid)
	if err != nil {
		return rule, err
	}

	length := df.Length
	if length == 0 {
		length = 1
	}

	rule = DecorationRule{
		Surface:   surface,
		Mode:      mode,
		Percent:   df.Percent,
		Count:     Range{Min: df.Min, Max: df.Max},
		Length:    length,
		Texture:   df.Texture,
		Valid:     valid,
		ValidName: df.Valid,
	}
	return rule, nil
}

func parseFlavour(ff flavourFile) (FlavourRule, error) {
	var rule FlavourRule

	var surfaces world.SurfaceSet
	for _, name := range ff.Surfaces {
		surface, err := parseSurface(name)
		if err != nil {
			return rule, err
		}
		surfaces |= 1 << surface
	}

	mode, err := parseMode(ff.Mode)
	if err != nil {
		return rule, err
	}

	valid, err := LookupPredicate(ff.Valid)
	if err != nil {
		return rule, err
	}

	rule = FlavourRule{
		Surfaces:  surfaces,
		Mode:      mode,
		Percent:   ff.Percent,
		Count:     Range{Min: ff.Min, Max: ff.Max},
		Texture:   ff.Texture,
		Valid:     valid,
		ValidName: ff.Valid,
	}
	return rule, nil
}

func parseSprawl(sf sprawlFile) (SprawlRule, error) {
	var rule SprawlRule

	start, err := parseStartPolicy(sf.Start)
	if err != nil {
		return rule, err
	}

	maxCount := sf.MaxCount
	if maxCount == 0 && sf.MinCount == 0 {
		// Unspecified count means exactly one region.
		sf.MinCount, maxCount = 1, 1
	}

	rule = SprawlRule{
		Style: sf.Style,
		Size:  Range{Min: sf.MinSize, Max: sf.MaxSize},
		Count: Range{Min: sf.MinCount, Max: maxCount},
		Start: start,
	}
	return rule, nil
}

func parseSurface(name string) (world.Surface, error) {
	switch name {
	case "floor":
		return world.SurfaceFloor, nil
	case "ceiling":
		return world.SurfaceCeiling, nil
	case "wall":
		return world.SurfaceWall, nil
	default:
		return world.SurfaceFloor, fmt.Errorf("unknown surface %q", name)
	}
}

func parseMode(name string) (SelectionMode, error) {
	switch name {
	case "", "chance":
		return ModeChance, nil
	case "count":
		return ModeCount, nil
	default:
		return ModeChance, fmt.Errorf("unknown selection mode %q", name)
	}
}

func parseStartPolicy(name string) (StartPolicy, error) {
	switch name {
	case "atStart":
		return AtMazeStart, nil
	case "", "random":
		return RandomCell, nil
	case "atEnd":
		return AtMazeEnd, nil
	default:
		return RandomCell, fmt.Errorf("unknown start policy %q", name)
	}
}
