package game

import "github.com/sheikhrachel/console-life/model"

// DefaultCommand selects the Line pattern before any input is read
const DefaultCommand = "l"

type commandKind uint8

const (
	commandUnknown commandKind = iota
	commandSeed
	commandAdvance
	commandQuit
)

type command struct {
	kind    commandKind
	pattern model.Pattern
}

// parseCommand looks only at the first character of line
func parseCommand(line string) command {
	if line == "" {
		return command{kind: commandAdvance}
	}

	key := line[0]
	if key == 'q' || key == 'Q' {
		return command{kind: commandQuit}
	}
	if p, ok := model.PatternForKey(key); ok {
		return command{kind: commandSeed, pattern: p}
	}
	return command{kind: commandUnknown}
}
