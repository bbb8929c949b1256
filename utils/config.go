package utils

import (
	"encoding/json"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/console-life/rules"
)

const (
	DisplayTcell = "tcell"
	DisplayLive  = "live"
)

// Config holds the configuration for the game
type Config struct {
	Display    string `json:"display"`
	Rule       string `json:"rule"`
	AliveGlyph string `json:"alive_glyph"`
	DeadGlyph  string `json:"dead_glyph"`
	LogFile    string `json:"log_file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Display:    DisplayTcell,
		Rule:       rules.ConwayName,
		AliveGlyph: "*",
		DeadGlyph:  " ",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks every field names something the game can use
func (c Config) Validate() error {
	if c.Display != DisplayTcell && c.Display != DisplayLive {
		return errors.Errorf("[Validate] unknown display: %q", c.Display)
	}
	if _, err := rules.Lookup(c.Rule); err != nil {
		return errors.Wrap(err, "[Validate] invalid rule")
	}
	if utf8.RuneCountInString(c.AliveGlyph) != 1 || utf8.RuneCountInString(c.DeadGlyph) != 1 {
		return errors.Errorf("[Validate] glyphs must be a single character, got %q and %q", c.AliveGlyph, c.DeadGlyph)
	}
	return nil
}
