// Package config loads touchreplay settings from the environment and
// command-line flags. Flags override environment values.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ErrNoInput is returned when no session script is configured.
var ErrNoInput = errors.New("config: no input session")

// Replay holds touchreplay settings.
type Replay struct {
	Input     string  `env:"TOUCHSTROKE_INPUT"`
	Output    string  `env:"TOUCHSTROKE_OUTPUT" envDefault:"strokes.png"`
	Format    string  `env:"TOUCHSTROKE_FORMAT"`
	Width     int     `env:"TOUCHSTROKE_WIDTH"`
	Height    int     `env:"TOUCHSTROKE_HEIGHT"`
	LineWidth float64 `env:"TOUCHSTROKE_LINE_WIDTH" envDefault:"4"`
	Debug     bool    `env:"TOUCHSTROKE_DEBUG"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads TOUCHSTROKE_* variables from environ, registers flags on fs
// and parses args over them. A nil environ reads the process environment.
// A positional argument is taken as the input when -input is unset.
func Load(fs *flag.FlagSet, args []string, environ map[string]string) (Replay, error) {
	var cfg Replay
	var err error
	if environ == nil {
		err = ParseEnv(&cfg)
	} else {
		err = env.ParseWithOptions(&cfg, env.Options{Environment: environ})
		if err != nil {
			err = fmt.Errorf("parse env: %w", err)
		}
	}
	if err != nil {
		return Replay{}, err
	}

	fs.StringVar(&cfg.Input, "input", cfg.Input, "session script (YAML)")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output file")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: png, bmp, tiff or svg (default: from -output extension)")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "surface width (default: from session)")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "surface height (default: from session)")
	fs.Float64Var(&cfg.LineWidth, "line-width", cfg.LineWidth, "stroke width")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log every event")
	if err := fs.Parse(args); err != nil {
		return Replay{}, err
	}

	if cfg.Input == "" && fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}
	if cfg.Input == "" {
		return Replay{}, ErrNoInput
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return Replay{}, fmt.Errorf("config: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}
