// Package config resolves session settings: built-in defaults, an optional CUE file, then flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"tapebox/pkg/tape"
)

// Schema is the closed shape a config file must unify with.
const Schema = `
tape_size?:    int & >0
history_file?: string
no_color?:     bool
`

type Config struct {
	TapeSize    int    // number of frames on the tape
	HistoryFile string // interactive history, empty disables it
	NoColor     bool   // disable colored output
}

// file mirrors Config with optional fields so absent keys keep their defaults
type file struct {
	TapeSize    *int    `json:"tape_size"`
	HistoryFile *string `json:"history_file"`
	NoColor     *bool   `json:"no_color"`
}

// Default returns the settings used without a config file.
func Default() Config {
	cfg := Config{
		TapeSize: tape.DefaultSize,
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, ".tapebox_history")
	}
	return cfg
}

// Load reads the CUE file at path on top of Default.
// An empty path returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	return Parse(cfg, content, path)
}

// Parse applies CUE source on top of base. name is used in error positions.
func Parse(base Config, src []byte, name string) (Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString("close({" + Schema + "})")
	if err := schema.Err(); err != nil {
		return base, err
	}

	value := ctx.CompileBytes(src, cue.Filename(name))
	if err := value.Err(); err != nil {
		return base, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return base, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var f file
	if err := value.Decode(&f); err != nil {
		return base, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if f.TapeSize != nil {
		base.TapeSize = *f.TapeSize
	}
	if f.HistoryFile != nil {
		base.HistoryFile = *f.HistoryFile
	}
	if f.NoColor != nil {
		base.NoColor = *f.NoColor
	}

	return base, nil
}

var ErrInvalidConfig = errors.New("invalid config")
