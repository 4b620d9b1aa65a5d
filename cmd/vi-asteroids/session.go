package main

import (
	"github.com/lixenwraith/vi-asteroids/audio"
	"github.com/lixenwraith/vi-asteroids/config"
	"github.com/lixenwraith/vi-asteroids/engine"
	"github.com/lixenwraith/vi-asteroids/entity"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// buildWorld places the ship and the configured asteroids
// Asteroid velocities are rolled from seed so a session replays identically
func buildWorld(cfg *config.Config, seed uint64) *engine.World {
	rng := vmath.NewFastRand(seed)
	world := engine.NewWorld(cfg.Bounds(), rng, event.NewEventQueue())

	world.AddShip(entity.NewShip(cfg.Ship.Vec()))
	for _, a := range cfg.Asteroids {
		world.Spawn(entity.NewAsteroid(vmath.Vec2{X: a.X, Y: a.Y}, a.Radius, rng))
	}
	return world
}

func audioConfig(cfg *config.Config) *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = cfg.Audio
	ac.MasterVolume = cfg.Volume
	return ac
}
