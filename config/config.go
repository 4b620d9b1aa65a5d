// Package config loads the session configuration from YAML over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-asteroids/constants"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Point is a world position
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) Vec() vmath.Vec2 { return vmath.Vec2{X: p.X, Y: p.Y} }

// AsteroidSpec places one asteroid; its velocity is rolled from the session seed
type AsteroidSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// Config describes one session
type Config struct {
	TickInterval time.Duration  `yaml:"tick_interval"`
	Width        float64        `yaml:"width"`
	Height       float64        `yaml:"height"`
	Seed         uint64         `yaml:"seed"` // 0 picks a time-based seed
	HoldWindow   time.Duration  `yaml:"hold_window"`
	FireHold     time.Duration  `yaml:"fire_hold_window"`
	Audio        bool           `yaml:"audio"`
	Volume       float64        `yaml:"volume"`
	Ship         Point          `yaml:"ship"`
	Asteroids    []AsteroidSpec `yaml:"asteroids"`
}

// Defaults returns the classic layout: one ship, one asteroid in the top-left corner
func Defaults() *Config {
	return &Config{
		TickInterval: constants.GameUpdateInterval,
		Width:        constants.DefaultWidth,
		Height:       constants.DefaultHeight,
		HoldWindow:   constants.InputHoldWindow,
		FireHold:     constants.FireHoldWindow,
		Audio:        true,
		Volume:       constants.AudioMasterVolume,
		Ship:         Point{X: 300, Y: 100},
		Asteroids:    []AsteroidSpec{{X: 30, Y: 40, Radius: 50}},
	}
}

// Load reads path over the defaults; an empty path returns the defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return Defaults(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r over the defaults and validates the result
// Unknown keys are rejected
func Parse(r io.Reader) (*Config, error) {
	cfg := Defaults()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges; every error wraps ErrInvalid
func (c *Config) Validate() error {
	if c.TickInterval < constants.MinUpdateInterval || c.TickInterval > constants.MaxUpdateInterval {
		return fmt.Errorf("%w: tick_interval %v outside [%v, %v]",
			ErrInvalid, c.TickInterval, constants.MinUpdateInterval, constants.MaxUpdateInterval)
	}
	if !positive(c.Width) || !positive(c.Height) {
		return fmt.Errorf("%w: world size %vx%v must be positive", ErrInvalid, c.Width, c.Height)
	}
	// Terminals send no key-up, so a key without a window would stay held forever
	if c.HoldWindow <= 0 {
		return fmt.Errorf("%w: hold_window %v must be positive", ErrInvalid, c.HoldWindow)
	}
	if c.FireHold <= 0 {
		return fmt.Errorf("%w: fire_hold_window %v must be positive", ErrInvalid, c.FireHold)
	}
	if !vmath.IsFinite(c.Volume) || c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: volume %v outside [0, 1]", ErrInvalid, c.Volume)
	}
	if !c.contains(c.Ship.X, c.Ship.Y) {
		return fmt.Errorf("%w: ship (%v, %v) outside world", ErrInvalid, c.Ship.X, c.Ship.Y)
	}
	for i, a := range c.Asteroids {
		if !positive(a.Radius) {
			return fmt.Errorf("%w: asteroids[%d] radius %v must be positive", ErrInvalid, i, a.Radius)
		}
		if !c.contains(a.X, a.Y) {
			return fmt.Errorf("%w: asteroids[%d] (%v, %v) outside world", ErrInvalid, i, a.X, a.Y)
		}
	}
	return nil
}

// Bounds returns the world rectangle
func (c *Config) Bounds() core.Bounds {
	return core.Bounds{Width: c.Width, Height: c.Height}
}

// ResolveSeed returns the configured seed, or one derived from now when unset
func (c *Config) ResolveSeed(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now.UnixNano())
}

func (c *Config) contains(x, y float64) bool {
	return vmath.IsFinite(x) && vmath.IsFinite(y) &&
		x >= 0 && x <= c.Width && y >= 0 && y <= c.Height
}

func positive(v float64) bool {
	return v > 0 && vmath.IsFinite(v)
}
