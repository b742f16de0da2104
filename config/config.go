// Package config holds the gameplay tuning knobs and their loader.
// Values are read from an optional YAML file layered over the built-in
// defaults, so a partial file only overrides what it names.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the tuning file looked for next to the binary when no
// explicit path is given.
const DefaultPath = "wolfython.yaml"

type Config struct {
	Window  Window  `yaml:"window"`
	Physics Physics `yaml:"physics"`
	Pipes   Pipes   `yaml:"pipes"`
	Audio   Audio   `yaml:"audio"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	// GroundHeight is the height in pixels of the ground strip at the
	// bottom of the window. The ground line sits at Height-GroundHeight.
	GroundHeight int `yaml:"ground_height"`
}

type Physics struct {
	// Gravity is the downward acceleration in px/tick^2.
	Gravity float64 `yaml:"gravity"`
	// MaxFallSpeed is the terminal velocity in px/tick.
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	// JumpImpulse is the velocity applied on a flap (negative = up).
	JumpImpulse float64 `yaml:"jump_impulse"`
	// FlapCooldown is the number of ticks between animation frames.
	FlapCooldown int `yaml:"flap_cooldown"`
}

type Pipes struct {
	// ScrollSpeed is the leftward displacement per tick, shared by
	// pipes and the ground texture.
	ScrollSpeed float64 `yaml:"scroll_speed"`
	// Gap is the vertical opening between a pair's top and bottom pipe.
	Gap float64 `yaml:"gap"`
	// SpawnIntervalMS is the time between pair spawns in milliseconds.
	SpawnIntervalMS int64 `yaml:"spawn_interval_ms"`
	// SpawnOffsetRange bounds the random vertical offset: the pair
	// center is screen mid +/- a uniform value in [-range, +range].
	SpawnOffsetRange int `yaml:"spawn_offset_range"`
}

type Audio struct {
	MusicVolume float64 `yaml:"music_volume"`
	SFXVolume   float64 `yaml:"sfx_volume"`
}

// Default returns the original tuning. Pipe spacing and scroll speed
// together guarantee that two pairs never overlap in x-range on screen,
// which the single-flag score tracker depends on.
func Default() Config {
	return Config{
		Window: Window{
			Width:        864,
			Height:       936,
			Title:        "Wolfython",
			GroundHeight: 168,
		},
		Physics: Physics{
			Gravity:      0.5,
			MaxFallSpeed: 8,
			JumpImpulse:  -10,
			FlapCooldown: 5,
		},
		Pipes: Pipes{
			ScrollSpeed:      4,
			Gap:              150,
			SpawnIntervalMS:  1500,
			SpawnOffsetRange: 100,
		},
		Audio: Audio{
			MusicVolume: 0.7,
			SFXVolume:   0.8,
		},
	}
}

// Load reads the tuning file at path layered over Default. An empty
// path falls back to DefaultPath, and a missing fallback file is not an
// error; an explicit path that cannot be read is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}

	cfg.clamp()
	return cfg, nil
}

// GroundLine is the y coordinate of the top of the ground strip.
func (c Config) GroundLine() float64 {
	return float64(c.Window.Height - c.Window.GroundHeight)
}

func (c *Config) clamp() {
	if c.Audio.MusicVolume < 0 {
		c.Audio.MusicVolume = 0
	}
	if c.Audio.MusicVolume > 1 {
		c.Audio.MusicVolume = 1
	}
	if c.Audio.SFXVolume < 0 {
		c.Audio.SFXVolume = 0
	}
	if c.Audio.SFXVolume > 1 {
		c.Audio.SFXVolume = 1
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		def := Default()
		c.Window.Width = def.Window.Width
		c.Window.Height = def.Window.Height
	}
	if c.Window.GroundHeight < 0 || c.Window.GroundHeight >= c.Window.Height {
		c.Window.GroundHeight = Default().Window.GroundHeight
	}
}
