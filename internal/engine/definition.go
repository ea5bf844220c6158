package engine

import (
	"fmt"
)

// Definition is the level-load contract: a plain data bundle of entity
// parameters produced by an external level source (static file, generator,
// built-in table). The engine performs no file I/O and does not care where
// the bundle came from.
type Definition struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	BallRadius float64 `yaml:"ball_radius"`

	TimeLimit    float64 `yaml:"time_limit"`    // Seconds; <= 0 means untimed
	PassiveDrain float64 `yaml:"passive_drain"` // Energy per tick-unit, drains regardless of input

	Walls       []WallDef       `yaml:"walls"`
	Surfaces    []SurfaceDef    `yaml:"surfaces"`
	Targets     []TargetDef     `yaml:"targets"`
	PowerUps    []PowerUpDef    `yaml:"powerups"`
	Wells       []WellDef       `yaml:"wells"`
	Teleporters []TeleporterDef `yaml:"teleporters"`
	Pads        []PadDef        `yaml:"bounce_pads"`
}

// PointDef is a bare coordinate pair used in waypoint paths.
type PointDef struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// WallDef describes a wall. A wall with two or more waypoints patrols a
// looped path at the given speed.
type WallDef struct {
	X         float64    `yaml:"x,omitempty"`
	Y         float64    `yaml:"y,omitempty"`
	W         float64    `yaml:"w"`
	H         float64    `yaml:"h"`
	Waypoints []PointDef `yaml:"waypoints,omitempty"`
	Speed     float64    `yaml:"speed,omitempty"`
}

// SurfaceDef describes a friction zone. Either a named preset or an
// explicit friction value; an explicit value wins when both are given.
type SurfaceDef struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	W        float64 `yaml:"w"`
	H        float64 `yaml:"h"`
	Preset   string  `yaml:"preset,omitempty"`
	Friction float64 `yaml:"friction,omitempty"`
	BoostX   float64 `yaml:"boost_x,omitempty"`
	BoostY   float64 `yaml:"boost_y,omitempty"`
}

// TargetDef describes a collection target.
type TargetDef struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Radius   float64 `yaml:"radius,omitempty"`
	Required bool    `yaml:"required"`
	Points   int     `yaml:"points,omitempty"`
}

// PowerUpDef describes a collectible power-up.
type PowerUpDef struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Radius   float64 `yaml:"radius,omitempty"`
	Kind     string  `yaml:"kind"`
	Duration float64 `yaml:"duration,omitempty"` // Seconds; 0 uses the kind's default
}

// WellDef describes a gravity well. Positive strength attracts.
type WellDef struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Radius   float64 `yaml:"radius"`
	Strength float64 `yaml:"strength"`
}

// TeleporterDef describes one end of a teleporter pair.
type TeleporterDef struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Radius   float64 `yaml:"radius,omitempty"`
	Pair     int     `yaml:"pair"`
	Entrance bool    `yaml:"entrance"`
	Cooldown float64 `yaml:"cooldown,omitempty"`
}

// PadDef describes a bounce pad.
type PadDef struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	W        float64 `yaml:"w"`
	H        float64 `yaml:"h"`
	DirX     float64 `yaml:"dir_x"`
	DirY     float64 `yaml:"dir_y"`
	Strength float64 `yaml:"strength,omitempty"`
	Cooldown float64 `yaml:"cooldown,omitempty"`
}

// Validate checks the bundle for hard authoring defects. Soft defects (no
// required targets, unpaired teleporters) are tolerated and logged at
// level construction instead: they degrade play but do not crash it.
func (d *Definition) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("level %q: playfield %gx%g is not positive", d.Name, d.Width, d.Height)
	}
	if d.StartX < 0 || d.StartX > d.Width || d.StartY < 0 || d.StartY > d.Height {
		return fmt.Errorf("level %q: start (%g, %g) outside playfield", d.Name, d.StartX, d.StartY)
	}
	for i, w := range d.Walls {
		if w.W <= 0 || w.H <= 0 {
			return fmt.Errorf("level %q: wall %d has non-positive size", d.Name, i)
		}
		if len(w.Waypoints) == 1 {
			return fmt.Errorf("level %q: wall %d has a single waypoint; movable walls need at least two", d.Name, i)
		}
	}
	for i, s := range d.Surfaces {
		if s.W <= 0 || s.H <= 0 {
			return fmt.Errorf("level %q: surface %d has non-positive size", d.Name, i)
		}
		if s.Preset != "" && s.Friction == 0 {
			if _, ok := PresetFriction(s.Preset); !ok {
				return fmt.Errorf("level %q: surface %d has unknown preset %q", d.Name, i, s.Preset)
			}
		}
	}
	for i, p := range d.PowerUps {
		if _, ok := ParsePowerUpKind(p.Kind); !ok {
			return fmt.Errorf("level %q: powerup %d has unknown kind %q", d.Name, i, p.Kind)
		}
	}
	for i, w := range d.Wells {
		if w.Radius <= 0 {
			return fmt.Errorf("level %q: well %d has non-positive radius", d.Name, i)
		}
	}
	for i, p := range d.Pads {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("level %q: bounce pad %d has non-positive size", d.Name, i)
		}
		if p.DirX == 0 && p.DirY == 0 {
			return fmt.Errorf("level %q: bounce pad %d has zero direction", d.Name, i)
		}
	}
	return nil
}
