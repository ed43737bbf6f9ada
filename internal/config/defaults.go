package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default pong configuration, laid out for the
// 128x160 panel.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Screen: ScreenConfig{
			Width:  128,
			Height: 160,
		},
		Field: FieldConfig{
			CenterX:    64,
			CenterY:    88,
			HalfWidth:  54,
			HalfHeight: 66,
		},
		Ball: BallConfig{
			Radius:    4,
			VelocityX: 3,
			VelocityY: 2,
		},
		Paddles: PaddleConfig{
			HalfWidth:  2,
			HalfHeight: 10,
			Offset:     6,
			Speed:      4,
		},
		Divider: DividerConfig{
			Enabled: true,
			Period:  8,
			Gap:     4,
			Phase:   0,
		},
		Tone: ToneConfig{
			InitialPeriod: 1000,
			Rate:          200,
			MinPeriod:     1000,
			MaxPeriod:     4000,
			XOR:           1000,
			ClockHz:       2000000,
			DurationMS:    60,
		},
		Gameplay: GameplayConfig{
			WinScore:   5,
			TickRate:   15,
			ServeDelay: 8,
			CPUSkill:   0.7,
			CPUDead:    3,
		},
		Colors: ColorConfig{
			Background: "blue",
			Ball:       "violet",
			Paddles:    "black",
			Field:      "black",
			Divider:    "white",
			Label:      "gold",
			ScoreFG:    "white",
			ScoreBG:    "black",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pong", "pong-cpu":
		return defaultPongYAML
	default:
		return nil
	}
}
