// Package config provides YAML-based tuning configuration for the physics
// engine. Values load from disk with embedded defaults as fallback.
package config

// Config is the complete engine tuning bundle.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Energy  EnergyConfig  `yaml:"energy"`
	Effects EffectsConfig `yaml:"effects"`
}

// PhysicsConfig defines the numeric behavior of the ball and obstacles.
// Velocities are in world units per tick-unit; a tick-unit is 1/60 s, so
// per-second rates are value * RateScale.
type PhysicsConfig struct {
	Friction         float64 `yaml:"friction"`           // Ambient per-tick velocity retention (0 < f <= ~1.01)
	MaxSpeed         float64 `yaml:"max_speed"`          // Velocity magnitude ceiling
	StopSpeed        float64 `yaml:"stop_speed"`         // Below this, velocity snaps to zero
	ForceMultiplier  float64 `yaml:"force_multiplier"`   // Base impulse scaling for player input
	StandstillKick   float64 `yaml:"standstill_kick"`    // Extra impulse fraction when starting from rest
	MinForce         float64 `yaml:"min_force"`          // Forces below this magnitude are ignored
	HighSpeedDamping float64 `yaml:"high_speed_damping"` // Extra damping fraction at max speed
	Restitution      float64 `yaml:"restitution"`        // Normal-velocity fraction kept on wall bounce
	PushOutScale     float64 `yaml:"push_out_scale"`     // Penetration resolution scale (>1 avoids re-sticking)
	BoundaryDamping  float64 `yaml:"boundary_damping"`   // Velocity fraction kept on playfield boundary bounce
	MaxWellForce     float64 `yaml:"max_well_force"`     // Clamp on a single gravity well's per-tick force
	MinBounceSpeed   float64 `yaml:"min_bounce_speed"`   // Bounce pads always launch at least this fast
	TeleportBonus    float64 `yaml:"teleport_bonus"`     // Velocity multiplier applied on teleport
	RateScale        float64 `yaml:"rate_scale"`         // dt normalization (ticks per second the constants assume)
}

// EnergyConfig defines the energy-as-resource model gating player input.
type EnergyConfig struct {
	Max       float64 `yaml:"max"`        // Energy capacity
	Regen     float64 `yaml:"regen"`      // Regeneration per tick-unit while idle
	ForceCost float64 `yaml:"force_cost"` // Cost per unit of applied force magnitude
	BrakeCost float64 `yaml:"brake_cost"` // Flat cost of the brake action
}

// EffectsConfig defines power-up effect parameters and durations (seconds).
type EffectsConfig struct {
	SpeedFriction    float64 `yaml:"speed_friction"`    // Friction multiplier while speed boost is active
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Ball motion multiplier while speed boost is active
	TimeFactor       float64 `yaml:"time_factor"`       // Simulation time scale while time dilation is active
	EnergyRefill     float64 `yaml:"energy_refill"`     // Fraction of max energy restored by an energy pickup
	GravityRadius    float64 `yaml:"gravity_radius"`    // Reach of the player gravity field
	GravityStrength  float64 `yaml:"gravity_strength"`  // Pull strength of the player gravity field
	MagnetRadius     float64 `yaml:"magnet_radius"`     // Reach of the target magnet
	MagnetStrength   float64 `yaml:"magnet_strength"`   // Pull strength of the target magnet
	DurationSpeed    float64 `yaml:"duration_speed"`    // Default speed boost duration
	DurationShield   float64 `yaml:"duration_shield"`   // Default shield duration
	DurationGravity  float64 `yaml:"duration_gravity"`  // Default gravity field duration
	DurationTime     float64 `yaml:"duration_time"`     // Default time dilation duration
	DurationMagnetic float64 `yaml:"duration_magnetic"` // Default magnet duration
}

// Default returns the built-in tuning values. These match the embedded
// defaults/physics.yaml and are the fallback when no file can be read.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Friction:         0.99,
			MaxSpeed:         10,
			StopSpeed:        0.05,
			ForceMultiplier:  1.2,
			StandstillKick:   0.3,
			MinForce:         0.5,
			HighSpeedDamping: 0.02,
			Restitution:      0.85,
			PushOutScale:     1.05,
			BoundaryDamping:  0.5,
			MaxWellForce:     5,
			MinBounceSpeed:   3.5,
			TeleportBonus:    1.1,
			RateScale:        60,
		},
		Energy: EnergyConfig{
			Max:       100,
			Regen:     0.5,
			ForceCost: 0.5,
			BrakeCost: 5,
		},
		Effects: EffectsConfig{
			SpeedFriction:    0.995,
			SpeedMultiplier:  1.5,
			TimeFactor:       0.5,
			EnergyRefill:     0.3,
			GravityRadius:    250,
			GravityStrength:  40,
			MagnetRadius:     200,
			MagnetStrength:   6,
			DurationSpeed:    5,
			DurationShield:   8,
			DurationGravity:  6,
			DurationTime:     4,
			DurationMagnetic: 6,
		},
	}
}
