package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by the CLI.
const (
	EnvDB         = "COLORDASH_DB"
	EnvFPS        = "COLORDASH_FPS"
	EnvConfig     = "COLORDASH_CONFIG"
	EnvDifficulty = "COLORDASH_DIFFICULTY"
)

// LoadEnv loads KEY=value pairs from the given .env files into the process
// environment. Missing files are skipped; variables already set win.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: failed to load %s: %w", f, err)
		}
	}
	return nil
}

// EnvOverrides holds CLI defaults taken from the environment. Empty or
// zero fields were not set.
type EnvOverrides struct {
	DB         string
	FPS        int
	Config     string
	Difficulty string
}

// ReadEnv collects the COLORDASH_* variables.
func ReadEnv() (EnvOverrides, error) {
	o := EnvOverrides{
		DB:         os.Getenv(EnvDB),
		Config:     os.Getenv(EnvConfig),
		Difficulty: os.Getenv(EnvDifficulty),
	}

	if v := os.Getenv(EnvFPS); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil || fps <= 0 {
			return EnvOverrides{}, fmt.Errorf("%w: %s=%q", ErrOutOfRange, EnvFPS, v)
		}
		o.FPS = fps
	}

	if o.Difficulty != "" {
		if _, err := ParsePreset(o.Difficulty); err != nil {
			return EnvOverrides{}, fmt.Errorf("%s: %w", EnvDifficulty, err)
		}
	}

	return o, nil
}
