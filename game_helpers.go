package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/console-life/game"
	"github.com/sheikhrachel/console-life/rules"
	"github.com/sheikhrachel/console-life/terminal"
	"github.com/sheikhrachel/console-life/utils"
)

// loadConfig reads filename, falling back to defaults when it is missing or invalid
func loadConfig(filename string) utils.Config {
	config, err := utils.LoadConfig(filename)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Println("Error loading configuration:", err)
		}
		fmt.Printf("Using default configuration (%s not usable)\n", filename)
		return utils.DefaultConfig()
	}

	if err = config.Validate(); err != nil {
		fmt.Println("Invalid configuration:", err)
		fmt.Println("Using default configuration")
		return utils.DefaultConfig()
	}
	return config
}

// newLogger writes to path, or discards everything when path is empty
func newLogger(path string) (*slog.Logger, func()) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Println("Error opening log file:", err)
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() {
		if err := f.Close(); err != nil {
			fmt.Println("Error closing log file:", err)
		}
	}
}

// openTerminal sets up the display and input for the configured backend
func openTerminal(config utils.Config) (game.Display, game.Input, func(), error) {
	if config.Display == utils.DisplayLive {
		live := terminal.NewLive(os.Stdin, os.Stdout)
		return live, live, func() {}, nil
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		return nil, nil, nil, err
	}
	return screen, screen, screen.Close, nil
}

// ruleFor resolves the configured rule, Conway's when the name is unknown
func ruleFor(config utils.Config) rules.Rule {
	rule, err := rules.Lookup(config.Rule)
	if err != nil {
		return rules.ApplyConwayRules
	}
	return rule
}
