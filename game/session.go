package game

import (
	"io"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/console-life/model"
	"github.com/sheikhrachel/console-life/rules"
	"github.com/sheikhrachel/console-life/utils"
)

// State of the session loop
type State uint8

const (
	AwaitingCommand State = iota
	Seeded
	Terminated
)

func (s State) String() string {
	switch s {
	case AwaitingCommand:
		return "AwaitingCommand"
	case Seeded:
		return "Seeded"
	case Terminated:
		return "Terminated"
	}
	return "Unknown"
}

// Display is where frames are drawn. Flush makes pending writes visible.
type Display interface {
	model.Display
	Flush() error
}

// Input supplies one line per call, blocking until it is available.
// io.EOF ends the session.
type Input interface {
	ReadLine() (string, error)
}

// Session owns both grid buffers and the generation counter
type Session struct {
	current *model.Grid
	next    *model.Grid

	rule     rules.Rule
	display  Display
	input    Input
	renderer *model.Renderer
	logger   *slog.Logger
	stats    *utils.Stats

	aliveGlyph string
	deadGlyph  string

	state      State
	generation int
	pattern    model.Pattern
}

// Option configures a Session
type Option func(*Session)

// WithRule replaces the default Conway rule
func WithRule(rule rules.Rule) Option {
	return func(s *Session) {
		if rule != nil {
			s.rule = rule
		}
	}
}

// WithLogger sets the logger for session events
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithGlyphs sets the strings drawn for living and dead cells
func WithGlyphs(alive, dead string) Option {
	return func(s *Session) {
		s.aliveGlyph, s.deadGlyph = alive, dead
	}
}

// New creates a session waiting for its first command
func New(display Display, input Input, opts ...Option) *Session {
	s := &Session{
		current: model.NewGrid(),
		next:    model.NewGrid(),
		rule:    rules.ApplyConwayRules,
		display: display,
		input:   input,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		stats:   utils.NewStats(),
		state:   AwaitingCommand,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.renderer = model.NewRenderer(display, s.aliveGlyph, s.deadGlyph)
	return s
}

// State returns the current state
func (s *Session) State() State { return s.state }

// Generation returns the number of the generation on screen
func (s *Session) Generation() int { return s.generation }

// Pattern returns the last selected pattern
func (s *Session) Pattern() model.Pattern { return s.pattern }

// Grid returns the active buffer
func (s *Session) Grid() *model.Grid { return s.current }

// Stats returns the running totals for this session
func (s *Session) Stats() *utils.Stats { return s.stats }

// Apply performs the transition for one line of input
func (s *Session) Apply(line string) State {
	if s.state == Terminated {
		return s.state
	}

	cmd := parseCommand(line)
	switch cmd.kind {
	case commandQuit:
		s.terminate("quit")

	case commandSeed:
		s.current.Seed(cmd.pattern)
		s.pattern = cmd.pattern
		s.generation = 1
		s.state = Seeded
		s.stats.Seeded(s.current.CountLivingCells())
		s.logger.Debug("pattern seeded", "pattern", cmd.pattern.String())

	case commandAdvance:
		if s.state != Seeded {
			s.logger.Debug("advance ignored before a pattern is seeded")
			break
		}
		s.current.NextGenerationInto(s.next, s.rule)
		s.current, s.next = s.next, s.current
		s.generation++

		living := s.current.CountLivingCells()
		s.stats.Advanced(living)
		s.logger.Debug("generation advanced", "generation", s.generation, "living", living)

	default:
		s.logger.Debug("command ignored", "input", line)
	}

	return s.state
}

// Run seeds the default pattern and loops on input until quit or end of input
func (s *Session) Run() error {
	s.renderer.DrawHeader()

	line := DefaultCommand
	for s.Apply(line) != Terminated {
		s.renderer.DrawFrame(s.current, s.generation, s.pattern)
		if err := s.display.Flush(); err != nil {
			s.terminate("display error")
			return errors.Wrap(err, "[Run] failed to flush display")
		}

		var err error
		if line, err = s.input.ReadLine(); err != nil {
			if errors.Is(err, io.EOF) {
				s.terminate("input closed")
				return nil
			}
			s.terminate("input error")
			return errors.Wrap(err, "[Run] failed to read command")
		}
	}
	return nil
}

func (s *Session) terminate(reason string) {
	s.state = Terminated
	s.logger.Info("session terminated",
		"reason", reason,
		"generation", s.generation,
		"generations_computed", s.stats.TotalGenerations,
		"patterns_seeded", s.stats.PatternsSeeded,
		"peak_population", s.stats.PeakPopulation,
		"average_population", s.stats.AveragePopulation,
		"runtime", time.Since(s.stats.StartTime))
}
