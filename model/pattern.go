package model

// Coord addresses a cell by row and column, border included
type Coord struct {
	Row int
	Col int
}

// Pattern is one of the fixed starting arrangements
type Pattern int

const (
	PatternNone Pattern = iota
	PatternLine
	PatternSquare
	PatternStar
	PatternTriangle
)

var patternOffsets = map[Pattern][]Coord{
	PatternLine:     {{10, 8}, {10, 9}, {10, 10}, {10, 11}},
	PatternStar:     {{10, 8}, {11, 8}, {11, 9}, {12, 9}},
	PatternSquare:   {{10, 8}, {10, 9}, {11, 8}, {11, 9}},
	PatternTriangle: {{10, 9}, {11, 8}, {11, 9}, {11, 10}},
}

// Offsets returns a copy of the cells the pattern marks alive
func (p Pattern) Offsets() []Coord {
	return append([]Coord(nil), patternOffsets[p]...)
}

// String returns the label shown under the grid
func (p Pattern) String() string {
	switch p {
	case PatternLine:
		return "Line Pattern"
	case PatternSquare:
		return "Square Pattern"
	case PatternStar:
		return "Star Pattern"
	case PatternTriangle:
		return "Triangle Pattern"
	}
	return ""
}

// PatternForKey maps a selector key (l, s, r, t) to its pattern
func PatternForKey(key byte) (Pattern, bool) {
	switch key {
	case 'l':
		return PatternLine, true
	case 's':
		return PatternStar, true
	case 'r':
		return PatternSquare, true
	case 't':
		return PatternTriangle, true
	}
	return PatternNone, false
}
