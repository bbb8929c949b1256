package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uilive"
	"github.com/pkg/errors"
)

// eraseInputLine moves up over the echoed command and clears it, so the next
// repaint starts where the previous frame did.
const eraseInputLine = "\x1b[1A\x1b[2K"

// Live keeps a character canvas of positioned writes and repaints it in place
// through uilive on every flush. It reads commands line by line, which suits
// terminals that cannot be taken over by Screen.
type Live struct {
	writer  *uilive.Writer
	out     io.Writer
	scanner *bufio.Scanner
	canvas  [][]rune
}

// NewLive reads commands from in and paints frames to out
func NewLive(in io.Reader, out io.Writer) *Live {
	writer := uilive.New()
	writer.Out = out
	return &Live{
		writer:  writer,
		out:     out,
		scanner: bufio.NewScanner(in),
	}
}

// MoveCursorAndWrite writes content into the canvas starting at column x of row y
func (l *Live) MoveCursorAndWrite(x, y int, content string) {
	if x < 0 || y < 0 {
		return
	}
	for len(l.canvas) <= y {
		l.canvas = append(l.canvas, nil)
	}

	row := l.canvas[y]
	for _, r := range content {
		for len(row) <= x {
			row = append(row, ' ')
		}
		row[x] = r
		x++
	}
	l.canvas[y] = row
}

// Flush repaints the whole canvas over the previous frame
func (l *Live) Flush() error {
	for _, row := range l.canvas {
		fmt.Fprintln(l.writer, strings.TrimRight(string(row), " "))
	}
	return errors.Wrap(l.writer.Flush(), "[Flush] failed to repaint frame")
}

// ReadLine returns the next line of input, io.EOF once input is exhausted
func (l *Live) ReadLine() (string, error) {
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return "", errors.Wrap(err, "[ReadLine] failed to read input")
		}
		return "", io.EOF
	}
	fmt.Fprint(l.out, eraseInputLine)
	return l.scanner.Text(), nil
}
