// Package config loads the showcase settings file and watches it for edits
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid marks a config that decoded but failed validation
var ErrInvalid = errors.New("invalid config")

// Scenes lists the mountable simulations in showcase order
var Scenes = []string{"fire", "smoke", "water", "cubes"}

// SceneAll mounts every scene in a grid
const SceneAll = "all"

// Config holds showcase settings, simulation constants are not configurable
type Config struct {
	Scene string  `toml:"scene"`
	FPS   int     `toml:"fps"`
	Color string  `toml:"color"` // auto, truecolor or 256
	DPR   float64 `toml:"dpr"`
	Audio Audio   `toml:"audio"`
}

// Audio controls cue playback
type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Default returns the settings used when no file exists
func Default() Config {
	return Config{
		Scene: SceneAll,
		FPS:   60,
		Color: "auto",
		DPR:   1,
		Audio: Audio{Enabled: true, Volume: 0.6},
	}
}

// Load reads path over the defaults, rejecting unknown keys
// A missing file yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML over the defaults and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Default(), fmt.Errorf("config: %w\n%s", err, strict.String())
		}
		return Default(), fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	if c.Scene != SceneAll && !slices.Contains(Scenes, c.Scene) {
		return fmt.Errorf("%w: scene %q", ErrInvalid, c.Scene)
	}
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("%w: fps %d out of [1,240]", ErrInvalid, c.FPS)
	}
	switch c.Color {
	case "auto", "truecolor", "256":
	default:
		return fmt.Errorf("%w: color %q", ErrInvalid, c.Color)
	}
	if c.DPR <= 0 || c.DPR > 2 {
		return fmt.Errorf("%w: dpr %g out of (0,2]", ErrInvalid, c.DPR)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %g out of [0,1]", ErrInvalid, c.Audio.Volume)
	}
	return nil
}

// Marshal encodes c as TOML
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
