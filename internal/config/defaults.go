package config

import (
	_ "embed"
)

//go:embed defaults/defense.yaml
var defaultDefenseYAML []byte

// DefaultDefenseConfig returns the default defense game configuration.
func DefaultDefenseConfig() DefenseConfig {
	return DefenseConfig{
		Field: FieldConfig{
			Width:        800,
			Height:       600,
			GroundMargin: 50,
		},
		Physics: PhysicsConfig{
			ThreatSpeed:      1.5,
			InterceptorSpeed: 5.0,
		},
		Blast: BlastConfig{
			MaxRadius:     60,
			GrowthRate:    2,
			DurationTicks: 45,
		},
		Launchers: LauncherConfig{
			StartingAmmo: 10,
			HitRadius:    20,
		},
		Scoring: ScoringConfig{
			ThreatReward:  25,
			TargetBonus:   100,
			LauncherBonus: 50,
		},
		Spawning: SpawningConfig{
			InitialInterval: 60,
			MinInterval:     30,
			IntervalStep:    5,
			EdgeMargin:      50,
		},
		Flash: FlashConfig{
			DurationTicks: 20,
		},
	}
}
