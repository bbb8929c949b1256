package rules

import "github.com/pkg/errors"

// Rule decides whether a cell is alive in the next generation.
type Rule func(neighbors int, alive bool) bool

const (
	ConwayName  = "conway"
	ClassicName = "classic"
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

/*
ApplyClassicRules keeps or brings a cell to life whenever it has exactly two or three
neighbors, whatever its current state. Every other count leaves the cell dead.
*/
func ApplyClassicRules(neighbors int, _ bool) bool {
	return neighbors == 2 || neighbors == 3
}

// Lookup returns the rule registered under name
func Lookup(name string) (Rule, error) {
	switch name {
	case ConwayName:
		return ApplyConwayRules, nil
	case ClassicName:
		return ApplyClassicRules, nil
	}
	return nil, errors.Errorf("[Lookup] unknown rule: %q", name)
}
