// Package config provides YAML-based configuration loading for the
// defense game.
package config

// DefenseConfig contains all tunable parameters for the defense game.
// The simulation runs in a fixed virtual field measured in abstract units;
// speeds and radii below are expressed in those units.
type DefenseConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Blast     BlastConfig     `yaml:"blast"`
	Launchers LauncherConfig  `yaml:"launchers"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Spawning  SpawningConfig  `yaml:"spawning"`
	Flash     FlashConfig     `yaml:"flash"`
}

// FieldConfig defines the virtual playfield dimensions.
type FieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundMargin float64 `yaml:"ground_margin"` // Distance from bottom edge to the ground line
}

// PhysicsConfig defines projectile speeds in field units per tick.
type PhysicsConfig struct {
	ThreatSpeed      float64 `yaml:"threat_speed"`
	InterceptorSpeed float64 `yaml:"interceptor_speed"`
}

// BlastConfig defines explosion behavior.
type BlastConfig struct {
	MaxRadius     float64 `yaml:"max_radius"`
	GrowthRate    float64 `yaml:"growth_rate"`    // Radius increase per tick while growing
	DurationTicks int     `yaml:"duration_ticks"` // Total lifetime in ticks
}

// LauncherConfig defines launcher parameters.
type LauncherConfig struct {
	StartingAmmo int     `yaml:"starting_ammo"` // Ammo per launcher at level start
	HitRadius    float64 `yaml:"hit_radius"`    // Distance at which a threat destroys a structure
}

// ScoringConfig defines point rewards.
type ScoringConfig struct {
	ThreatReward  int `yaml:"threat_reward"`  // Points per threat destroyed mid-air
	TargetBonus   int `yaml:"target_bonus"`   // End-of-level bonus per surviving city
	LauncherBonus int `yaml:"launcher_bonus"` // End-of-level bonus per surviving launcher
}

// SpawningConfig defines threat spawn pacing.
type SpawningConfig struct {
	InitialInterval int     `yaml:"initial_interval"` // Ticks between spawns at level 1
	MinInterval     int     `yaml:"min_interval"`     // Lower bound for the spawn interval
	IntervalStep    int     `yaml:"interval_step"`    // Interval reduction per level
	EdgeMargin      float64 `yaml:"edge_margin"`      // Horizontal margin for spawn positions
}

// FlashConfig defines the level-transition flash cue.
type FlashConfig struct {
	DurationTicks int `yaml:"duration_ticks"`
}
