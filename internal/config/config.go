package config

import (
	"errors"
	"fmt"
	"hash/maphash"
	"io/fs"
	"math/rand/v2"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Config holds the game settings. Values are layered: defaults, then an
// optional YAML file, then environment variables, then command-line flags.
type Config struct {
	Width       int    `yaml:"width" env:"MINES_WIDTH"`
	Height      int    `yaml:"height" env:"MINES_HEIGHT"`
	MineCount   int    `yaml:"mine_count" env:"MINES_COUNT"`
	Uniform     bool   `yaml:"uniform" env:"MINES_UNIFORM"`
	Seed        uint64 `yaml:"seed" env:"MINES_SEED"` // 0 picks a random seed
	Development bool   `yaml:"development" env:"DEVELOPMENT"`
	LogFile     string `yaml:"log_file" env:"MINES_LOG_FILE"`
}

func Default() Config {
	return Config{
		Width:     16,
		Height:    16,
		MineCount: 32,
		LogFile:   "minesweeper.log",
	}
}

// Load reads the YAML file at path, if any, over the defaults and applies
// environment overrides. A missing file is only an error when path was set
// explicitly.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}

// LoadOptional behaves like [Load] but treats a missing file as empty.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Load("")
	}
	return cfg, err
}

// GameParams converts the config to engine params, clamping the mine count
// into [0, Width*Height]. Dimensions are passed through unchecked so that
// the engine reports them.
func (c Config) GameParams() mines.GameParams {
	return mines.GameParams{
		Width:     c.Width,
		Height:    c.Height,
		MineCount: c.MineCount,
		Uniform:   c.Uniform,
	}.Clamp()
}

// Rand returns the random source for mine placement. A zero Seed gives a
// fresh source on every call.
func (c Config) Rand() *rand.Rand {
	if c.Seed != 0 {
		return rand.New(rand.NewPCG(c.Seed, c.Seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
