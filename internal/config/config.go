// Package config provides YAML-based configuration for dungeon generation and
// field of view, with embedded defaults.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds every tunable of a session.
type Config struct {
	// Seed for random number generation. 0 means a time-based seed.
	Seed  int64       `yaml:"seed"`
	Map   MapConfig   `yaml:"map"`
	Rooms RoomsConfig `yaml:"rooms"`
	FOV   FOVConfig   `yaml:"fov"`
}

// MapConfig defines the grid size.
type MapConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RoomsConfig defines room placement and monster density.
type RoomsConfig struct {
	MinSize     int `yaml:"min_size"`
	MaxSize     int `yaml:"max_size"`
	MaxRooms    int `yaml:"max_rooms"`    // Placement attempts
	MaxMonsters int `yaml:"max_monsters"` // Per room
}

// FOVConfig defines the player's field of view.
type FOVConfig struct {
	Radius     int    `yaml:"radius"` // 0 = unlimited
	LightWalls bool   `yaml:"light_walls"`
	Algorithm  string `yaml:"algorithm"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Map: MapConfig{
			Width:  80,
			Height: 45,
		},
		Rooms: RoomsConfig{
			MinSize:     6,
			MaxSize:     10,
			MaxRooms:    30,
			MaxMonsters: 3,
		},
		FOV: FOVConfig{
			Radius:     10,
			LightWalls: true,
			Algorithm:  "basic",
		},
	}
}

// Validate reports the first setting that would produce a broken session.
func (c Config) Validate() error {
	switch {
	case c.Map.Width < 3 || c.Map.Height < 3:
		return fmt.Errorf("%w: map must be at least 3x3, got %dx%d", ErrInvalid, c.Map.Width, c.Map.Height)
	case c.Rooms.MinSize < 3:
		return fmt.Errorf("%w: rooms.min_size must be at least 3, got %d", ErrInvalid, c.Rooms.MinSize)
	case c.Rooms.MaxSize < c.Rooms.MinSize:
		return fmt.Errorf("%w: rooms.max_size %d is below rooms.min_size %d", ErrInvalid, c.Rooms.MaxSize, c.Rooms.MinSize)
	case c.Rooms.MaxRooms < 0:
		return fmt.Errorf("%w: rooms.max_rooms cannot be negative", ErrInvalid)
	case c.Rooms.MaxMonsters < 0:
		return fmt.Errorf("%w: rooms.max_monsters cannot be negative", ErrInvalid)
	case c.FOV.Radius < 0:
		return fmt.Errorf("%w: fov.radius cannot be negative", ErrInvalid)
	}
	if c.FOV.Algorithm != "" && c.FOV.Algorithm != "basic" {
		return fmt.Errorf("%w: unknown fov.algorithm %q", ErrInvalid, c.FOV.Algorithm)
	}
	return nil
}
