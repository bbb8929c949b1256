package game

import (
	"bytes"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/console-life/model"
	"github.com/sheikhrachel/console-life/rules"
)

type fakeDisplay struct {
	screen      map[[2]int]rune
	flushes     int
	generations []int
	flushErr    error
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{screen: make(map[[2]int]rune)}
}

func (d *fakeDisplay) MoveCursorAndWrite(x, y int, content string) {
	for _, r := range content {
		d.screen[[2]int{x, y}] = r
		x++
	}
}

func (d *fakeDisplay) Flush() error {
	d.flushes++
	if d.flushErr != nil {
		return d.flushErr
	}
	var sb strings.Builder
	for x := 12; x < 18; x++ {
		sb.WriteRune(d.screen[[2]int{x, 1}])
	}
	gen, _ := strconv.Atoi(strings.TrimSpace(sb.String()))
	d.generations = append(d.generations, gen)
	return nil
}

type scriptedInput struct {
	lines []string
	err   error
}

func (in *scriptedInput) ReadLine() (string, error) {
	if len(in.lines) == 0 {
		if in.err != nil {
			return "", in.err
		}
		return "", io.EOF
	}
	line := in.lines[0]
	in.lines = in.lines[1:]
	return line, nil
}

func seededGrid(p model.Pattern) *model.Grid {
	g := model.NewGrid()
	g.Seed(p)
	return g
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line    string
		kind    commandKind
		pattern model.Pattern
	}{
		{"", commandAdvance, model.PatternNone},
		{"l", commandSeed, model.PatternLine},
		{"s", commandSeed, model.PatternStar},
		{"r", commandSeed, model.PatternSquare},
		{"t", commandSeed, model.PatternTriangle},
		{"triangle", commandSeed, model.PatternTriangle},
		{"L", commandUnknown, model.PatternNone},
		{"q", commandQuit, model.PatternNone},
		{"Quit", commandQuit, model.PatternNone},
		{"z", commandUnknown, model.PatternNone},
		{" ", commandUnknown, model.PatternNone},
	}

	for _, tt := range tests {
		got := parseCommand(tt.line)
		if got.kind != tt.kind || got.pattern != tt.pattern {
			t.Errorf("parseCommand(%q) = %+v, want kind %d pattern %v", tt.line, got, tt.kind, tt.pattern)
		}
	}
}

func TestNewSession(t *testing.T) {
	s := New(newFakeDisplay(), &scriptedInput{})

	if s.State() != AwaitingCommand {
		t.Errorf("state = %v, want AwaitingCommand", s.State())
	}
	if s.Generation() != 0 {
		t.Errorf("generation = %d, want 0", s.Generation())
	}
	if n := s.Grid().CountLivingCells(); n != 0 {
		t.Errorf("new session grid has %d living cells", n)
	}
}

func TestApplyLineAdvanceQuit(t *testing.T) {
	s := New(newFakeDisplay(), &scriptedInput{})

	steps := []struct {
		line       string
		state      State
		generation int
	}{
		{"l", Seeded, 1},
		{"", Seeded, 2},
		{"", Seeded, 3},
		{"q", Terminated, 3},
	}

	want := seededGrid(model.PatternLine)
	for _, step := range steps {
		if got := s.Apply(step.line); got != step.state {
			t.Fatalf("Apply(%q) state = %v, want %v", step.line, got, step.state)
		}
		if s.Generation() != step.generation {
			t.Fatalf("after %q generation = %d, want %d", step.line, s.Generation(), step.generation)
		}
		if step.line == "" {
			want = want.NextGeneration(rules.ApplyConwayRules)
		}
		if !s.Grid().Equal(want) {
			t.Fatalf("after %q grid = %v, want %v", step.line, s.Grid().LiveCells(), want.LiveCells())
		}
	}
}

func TestApplyIgnoresUnknownCommand(t *testing.T) {
	s := New(newFakeDisplay(), &scriptedInput{})

	s.Apply("l")
	afterSeed := *s.Grid()

	if got := s.Apply("z"); got != Seeded {
		t.Fatalf("state after z = %v", got)
	}
	if s.Generation() != 1 || !s.Grid().Equal(&afterSeed) {
		t.Fatalf("z changed the session: generation %d, cells %v", s.Generation(), s.Grid().LiveCells())
	}

	s.Apply("")
	if s.Generation() != 2 {
		t.Errorf("generation = %d, want 2", s.Generation())
	}
	if want := afterSeed.NextGeneration(rules.ApplyConwayRules); !s.Grid().Equal(want) {
		t.Errorf("grid = %v, want %v", s.Grid().LiveCells(), want.LiveCells())
	}
}

func TestApplyAdvanceBeforeSeedIsIgnored(t *testing.T) {
	s := New(newFakeDisplay(), &scriptedInput{})

	if got := s.Apply(""); got != AwaitingCommand {
		t.Errorf("state = %v, want AwaitingCommand", got)
	}
	if s.Generation() != 0 {
		t.Errorf("generation = %d, want 0", s.Generation())
	}
}

func TestApplyReseedResetsGeneration(t *testing.T) {
	s := New(newFakeDisplay(), &scriptedInput{})

	for _, line := range []string{"l", "", "", "", "t"} {
		s.Apply(line)
	}

	if s.Generation() != 1 || s.Pattern() != model.PatternTriangle {
		t.Errorf("generation %d pattern %v, want 1 Triangle", s.Generation(), s.Pattern())
	}
	if !s.Grid().Equal(seededGrid(model.PatternTriangle)) {
		t.Errorf("grid = %v", s.Grid().LiveCells())
	}
}

func TestApplyQuitFromAnyState(t *testing.T) {
	for _, quit := range []string{"q", "Q"} {
		s := New(newFakeDisplay(), &scriptedInput{})
		if got := s.Apply(quit); got != Terminated {
			t.Errorf("Apply(%q) from AwaitingCommand = %v", quit, got)
		}
		if got := s.Apply("l"); got != Terminated {
			t.Errorf("Terminated should be final, got %v", got)
		}
	}
}

func TestSquareStaysStillThroughSession(t *testing.T) {
	s := New(newFakeDisplay(), &scriptedInput{})
	s.Apply("r")
	block := seededGrid(model.PatternSquare)

	for range 6 {
		s.Apply("")
		if !s.Grid().Equal(block) {
			t.Fatalf("generation %d: block changed to %v", s.Generation(), s.Grid().LiveCells())
		}
	}
}

func TestWithRule(t *testing.T) {
	s := New(newFakeDisplay(), &scriptedInput{}, WithRule(rules.ApplyClassicRules))
	s.Apply("r")
	s.Apply("")

	want := seededGrid(model.PatternSquare).NextGeneration(rules.ApplyClassicRules)
	if !s.Grid().Equal(want) {
		t.Errorf("grid = %v, want %v", s.Grid().LiveCells(), want.LiveCells())
	}
}

func TestRun(t *testing.T) {
	display := newFakeDisplay()
	input := &scriptedInput{lines: []string{"", "", "z", "", "s", "", "q"}}
	s := New(display, input)

	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []int{1, 2, 3, 3, 4, 1, 2}
	if len(display.generations) != len(want) {
		t.Fatalf("frames = %v, want %v", display.generations, want)
	}
	for i := range want {
		if display.generations[i] != want[i] {
			t.Fatalf("frames = %v, want %v", display.generations, want)
		}
	}
	if s.State() != Terminated || s.Pattern() != model.PatternStar {
		t.Errorf("state %v pattern %v", s.State(), s.Pattern())
	}
	if got := string([]rune{display.screen[[2]int{0, 0}], display.screen[[2]int{1, 0}]}); got != "Ga" {
		t.Errorf("header not drawn, got %q", got)
	}
}

func TestRunStartsWithLinePattern(t *testing.T) {
	s := New(newFakeDisplay(), &scriptedInput{})

	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.Pattern() != model.PatternLine || s.Generation() != 1 {
		t.Errorf("pattern %v generation %d, want Line 1", s.Pattern(), s.Generation())
	}
	if !s.Grid().Equal(seededGrid(model.PatternLine)) {
		t.Errorf("grid = %v", s.Grid().LiveCells())
	}
	if s.State() != Terminated {
		t.Errorf("state = %v after end of input", s.State())
	}
}

func TestRunErrors(t *testing.T) {
	readErr := errors.New("device gone")
	s := New(newFakeDisplay(), &scriptedInput{err: readErr})
	if err := s.Run(); !errors.Is(err, readErr) {
		t.Errorf("Run read error = %v, want %v", err, readErr)
	}

	flushErr := errors.New("broken pipe")
	display := newFakeDisplay()
	display.flushErr = flushErr
	s = New(display, &scriptedInput{})
	if err := s.Run(); !errors.Is(err, flushErr) {
		t.Errorf("Run flush error = %v, want %v", err, flushErr)
	}
	if s.State() != Terminated {
		t.Errorf("state = %v", s.State())
	}
}

func TestSessionStatsAndLogging(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := New(newFakeDisplay(), &scriptedInput{}, WithLogger(logger))

	for _, line := range []string{"l", "", "z", "", "q"} {
		s.Apply(line)
	}

	stats := s.Stats()
	if stats.PatternsSeeded != 1 || stats.TotalGenerations != 2 {
		t.Errorf("seeded %d generations %d, want 1 and 2", stats.PatternsSeeded, stats.TotalGenerations)
	}
	if stats.PeakPopulation != 6 {
		t.Errorf("peak population = %d, want 6", stats.PeakPopulation)
	}

	for _, want := range []string{"pattern seeded", "generation advanced", "command ignored", "reason=quit"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("log missing %q:\n%s", want, logs.String())
		}
	}
}
