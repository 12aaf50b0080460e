// Package config handles game configuration loading and tuning.
package config

// Config holds all game settings.
type Config struct {
	Graphics Graphics `yaml:"graphics"`
	Game     Game     `yaml:"game"`
	Spawner  Spawner  `yaml:"spawner"`
	Logging  Logging  `yaml:"logging"`
}

// Graphics holds display settings.
type Graphics struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// Game holds the gameplay tuning values.
type Game struct {
	// Variant selects the control scheme: "tilt" or "thrust".
	Variant string `yaml:"variant"`

	// GravityMagnitude is the force applied along the player's down axis
	// while playing (tilt variant).
	GravityMagnitude float64 `yaml:"gravity_magnitude"`

	// ThrustVelocity is the force magnitude applied along the player's
	// backward axis while the pointer is held (thrust variant).
	ThrustVelocity float64 `yaml:"thrust_velocity"`

	// GyroFilterFactor is the per-frame blend factor toward the raw
	// orientation reading, scaled by frame time.
	GyroFilterFactor float64 `yaml:"gyro_filter_factor"`

	// TiltSlerpFactor is the constant per-frame blend of the player's
	// rotation toward the camera roll. Not scaled by frame time.
	TiltSlerpFactor float64 `yaml:"tilt_slerp_factor"`

	// TiltSlerpDtScaled switches the tilt rotation blend to a frame-rate
	// independent mode where TiltSlerpFactor is per second instead of
	// per frame.
	TiltSlerpDtScaled bool `yaml:"tilt_slerp_dt_scaled"`

	// ThrustSlerpRate is the per-second blend of the player's rotation
	// toward the aim direction.
	ThrustSlerpRate float64 `yaml:"thrust_slerp_rate"`

	// CameraLerpFactor is the per-second exponential follow rate of the
	// camera toward the player.
	CameraLerpFactor float64 `yaml:"camera_lerp_factor"`

	ScorePerSecond  float64 `yaml:"score_per_second"`
	MultiplierBands int     `yaml:"multiplier_bands"`
	MaxMultiplier   int     `yaml:"max_multiplier"`

	// BannerHideWait is how long the "new high score" banner stays up
	// after play starts, in seconds of scaled game time.
	BannerHideWait float64 `yaml:"banner_hide_wait"`

	// ReplayLockout is how long replay input is ignored after game over,
	// in seconds of unscaled time.
	ReplayLockout float64 `yaml:"replay_lockout"`
}

// Spawner holds obstacle spawn pacing.
type Spawner struct {
	BaseInterval  float64 `yaml:"base_interval"`  // seconds between spawns at start
	MinInterval   float64 `yaml:"min_interval"`   // floor for the shrinking interval
	IntervalDecay float64 `yaml:"interval_decay"` // multiplier applied per spawn, in (0, 1]
	ObstacleSpeed float64 `yaml:"obstacle_speed"` // world units per second
	PacingScript  string  `yaml:"pacing_script"`  // optional tengo script path
}

// Logging holds logging settings.
type Logging struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns a Config with the shipped tuning.
func Default() *Config {
	return &Config{
		Graphics: Graphics{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Game: Game{
			Variant:          "thrust",
			GravityMagnitude: 420.0,
			ThrustVelocity:   520.0,
			GyroFilterFactor: 12.0,
			TiltSlerpFactor:  0.15,
			ThrustSlerpRate:  10.0,
			CameraLerpFactor: 6.0,
			ScorePerSecond:   10.0,
			MultiplierBands:  3,
			MaxMultiplier:    3,
			BannerHideWait:   2.5,
			ReplayLockout:    1.0,
		},
		Spawner: Spawner{
			BaseInterval:  2.0,
			MinInterval:   0.35,
			IntervalDecay: 0.96,
			ObstacleSpeed: 180.0,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}
