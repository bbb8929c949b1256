package terminal

import (
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Screen draws on a full screen tcell terminal and reads commands from its keyboard
type Screen struct {
	screen  tcell.Screen
	style   tcell.Style
	cursorX int
	cursorY int
}

// NewScreen initializes the terminal. Close must be called to restore it.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewScreen] failed to create screen")
	}
	if err = s.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreen] failed to initialize screen")
	}
	return newScreen(s), nil
}

func newScreen(s tcell.Screen) *Screen {
	s.Clear()
	return &Screen{screen: s, style: tcell.StyleDefault}
}

// MoveCursorAndWrite writes content starting at column x of row y and leaves the cursor after it
func (s *Screen) MoveCursorAndWrite(x, y int, content string) {
	for _, r := range content {
		s.screen.SetContent(x, y, r, nil, s.style)
		x++
	}
	s.moveCursor(x, y)
}

// Flush shows everything written since the last flush
func (s *Screen) Flush() error {
	s.screen.Show()
	return nil
}

// ReadLine echoes typed keys at the cursor until Enter.
// Ctrl-C and Esc close the input and return io.EOF.
func (s *Screen) ReadLine() (string, error) {
	var (
		line   []rune
		startX = s.cursorX
		y      = s.cursorY
	)

	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return "", io.EOF

		case *tcell.EventResize:
			s.screen.Sync()

		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				return string(line), nil
			case tcell.KeyCtrlC, tcell.KeyEscape:
				return "", io.EOF
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(line) == 0 {
					break
				}
				line = line[:len(line)-1]
				s.MoveCursorAndWrite(startX+len(line), y, " ")
				s.moveCursor(startX+len(line), y)
			case tcell.KeyRune:
				s.MoveCursorAndWrite(startX+len(line), y, string(ev.Rune()))
				line = append(line, ev.Rune())
			}
			s.screen.Show()
		}
	}
}

// Close restores the terminal
func (s *Screen) Close() {
	s.screen.Fini()
}

func (s *Screen) moveCursor(x, y int) {
	s.cursorX, s.cursorY = x, y
	s.screen.ShowCursor(x, y)
}
