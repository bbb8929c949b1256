package model

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	gridPosAlive = "*"
	gridPosEmpty = " "

	title           = "Game of Life"
	generationLabel = "Generation: "
	prompt          = "Type <Enter> for next gen, l,s,r,t for new pattern, q quits: "

	gridOffsetX = 0
	gridOffsetY = 3

	generationX     = len(generationLabel)
	generationY     = 1
	generationWidth = 6

	separatorY   = Size + gridOffsetY
	promptY      = Size + gridOffsetY + 1
	patternY     = Size + gridOffsetY + 2
	patternWidth = 20
	inputWidth   = 16
)

// Display receives positioned writes. Writes never scroll or wrap.
type Display interface {
	MoveCursorAndWrite(x, y int, content string)
}

// Renderer lays out the game screen on a Display
type Renderer struct {
	display Display
	alive   string
	dead    string
}

// NewRenderer creates a renderer drawing living cells with alive and dead ones with dead.
// Empty glyphs fall back to "*" and " ".
func NewRenderer(display Display, alive, dead string) *Renderer {
	if alive == "" {
		alive = gridPosAlive
	}
	if dead == "" {
		dead = gridPosEmpty
	}
	return &Renderer{display: display, alive: alive, dead: dead}
}

// DrawHeader writes the title, the generation label and the top separator
func (r *Renderer) DrawHeader() {
	r.display.MoveCursorAndWrite(0, 0, title)
	r.display.MoveCursorAndWrite(0, generationY, generationLabel)
	r.display.MoveCursorAndWrite(0, generationY+1, separator())
}

// DrawFrame writes one generation and leaves the cursor at the end of the prompt
func (r *Renderer) DrawFrame(g *Grid, generation int, p Pattern) {
	r.display.MoveCursorAndWrite(generationX, generationY, strings.Repeat(" ", generationWidth))
	r.display.MoveCursorAndWrite(generationX, generationY, strconv.Itoa(generation))

	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			glyph := r.dead
			if g.Get(row, col) == Alive {
				glyph = r.alive
			}
			r.display.MoveCursorAndWrite(col+gridOffsetX, row+gridOffsetY, glyph)
		}
	}

	r.display.MoveCursorAndWrite(0, separatorY, separator())
	r.display.MoveCursorAndWrite(0, patternY, fmt.Sprintf("%-*s", patternWidth, p))
	r.display.MoveCursorAndWrite(0, promptY, prompt+strings.Repeat(" ", inputWidth))
	r.display.MoveCursorAndWrite(len(prompt), promptY, "")
}

func separator() string {
	return strings.Repeat("-", Size)
}
