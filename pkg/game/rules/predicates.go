package rules

import (
	"fmt"

	"mazewright/pkg/engine/world"
)

// Predicate filters cells eligible to anchor a placement.
type Predicate func(*world.Cell) bool

// predicateRegistry maps ruleset predicate names to their implementations.
// Ruleset files refer to predicates by name only.
var predicateRegistry = map[string]Predicate{
	"any": func(c *world.Cell) bool {
		return true
	},
	"deadEnd": func(c *world.Cell) bool {
		return c.IsDeadEnd()
	},
	"corridor": func(c *world.Cell) bool {
		return c.OpenCount() == 2
	},
	"straight": func(c *world.Cell) bool {
		return c.IsStraight()
	},
	"junction": func(c *world.Cell) bool {
		return c.IsJunction()
	},
	"undecoratedFloor": func(c *world.Cell) bool {
		return !c.FloorDecorated
	},
}

// LookupPredicate resolves a predicate name from the registry.
// An empty name means "any".
func LookupPredicate(name string) (Predicate, error) {
	if name == "" {
		name = "any"
	}
	p, found := predicateRegistry[name]
	if !found {
		return nil, fmt.Errorf("unknown cell predicate %q", name)
	}
	return p, nil
}

// RegisterPredicate adds a named predicate for ruleset files to use.
// Registering an existing name replaces it.
func RegisterPredicate(name string, p Predicate) {
	predicateRegistry[name] = p
}
