package model

import "github.com/sheikhrachel/console-life/rules"

// Size is the playable width and height of a grid
const Size = 20

// Cell is the state of one grid position
type Cell bool

const (
	Dead  Cell = false
	Alive Cell = true
)

// Grid is a Size x Size board surrounded by a one cell border that is always dead,
// so neighbor counting never needs bounds checks.
type Grid struct {
	cells [Size + 2][Size + 2]Cell
}

// NewGrid creates a grid with every cell dead
func NewGrid() *Grid {
	return &Grid{}
}

// Clear sets every cell, border included, to dead
func (g *Grid) Clear() {
	g.cells = [Size + 2][Size + 2]Cell{}
}

// Seed clears the grid and marks the pattern's cells alive
func (g *Grid) Seed(p Pattern) {
	g.Clear()
	for _, c := range patternOffsets[p] {
		g.Set(c.Row, c.Col, Alive)
	}
}

// Set sets an interior cell. Border and out of range coordinates are ignored.
func (g *Grid) Set(row, col int, c Cell) {
	if interior(row, col) {
		g.cells[row][col] = c
	}
}

// Get returns the state of a cell, dead for anything outside the grid
func (g *Grid) Get(row, col int) Cell {
	if row < 0 || row > Size+1 || col < 0 || col > Size+1 {
		return Dead
	}
	return g.cells[row][col]
}

// CountLiveNeighbors counts the living cells among the 8 around an interior cell
func (g *Grid) CountLiveNeighbors(row, col int) int {
	if !interior(row, col) {
		return 0
	}

	count := 0
	for _, c := range [...]Cell{
		// above
		g.cells[row-1][col-1], g.cells[row-1][col], g.cells[row-1][col+1],
		// sides
		g.cells[row][col-1], g.cells[row][col+1],
		// below
		g.cells[row+1][col-1], g.cells[row+1][col], g.cells[row+1][col+1],
	} {
		if c == Alive {
			count++
		}
	}
	return count
}

// NextGeneration returns the next generation under rule, leaving g untouched
func (g *Grid) NextGeneration(rule rules.Rule) *Grid {
	next := NewGrid()
	g.NextGenerationInto(next, rule)
	return next
}

// NextGenerationInto overwrites dst with the next generation of g.
// Every cell is computed from g as it was before the call, even when dst is g.
func (g *Grid) NextGenerationInto(dst *Grid, rule rules.Rule) {
	src := g
	if dst == g {
		snapshot := *g
		src = &snapshot
	}

	dst.Clear()
	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			alive := rule(src.CountLiveNeighbors(row, col), bool(src.cells[row][col]))
			dst.cells[row][col] = Cell(alive)
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range Size + 2 {
		for col := range Size + 2 {
			if g.cells[row][col] == Alive {
				count++
			}
		}
	}
	return
}

// LiveCells lists living cells in row-major order
func (g *Grid) LiveCells() []Coord {
	var live []Coord
	for row := range Size + 2 {
		for col := range Size + 2 {
			if g.cells[row][col] == Alive {
				live = append(live, Coord{Row: row, Col: col})
			}
		}
	}
	return live
}

// Equal reports whether both grids hold the same cells
func (g *Grid) Equal(other *Grid) bool {
	return g.cells == other.cells
}

func interior(row, col int) bool {
	return row >= 1 && row <= Size && col >= 1 && col <= Size
}
