package main

import (
	"fmt"

	"github.com/sheikhrachel/console-life/game"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config := loadConfig(configFile)

	logger, closeLog := newLogger(config.LogFile)
	defer closeLog()

	display, input, closeTerminal, err := openTerminal(config)
	if err != nil {
		fmt.Println("Error opening terminal:", err)
		return
	}

	session := game.New(display, input,
		game.WithRule(ruleFor(config)),
		game.WithLogger(logger),
		game.WithGlyphs(config.AliveGlyph, config.DeadGlyph),
	)
	err = session.Run()
	closeTerminal()

	if err != nil {
		logger.Error("session ended with error", "err", err)
		fmt.Println("Error:", err)
	}
}
