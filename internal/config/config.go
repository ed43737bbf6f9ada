// Package config provides YAML-based game configuration loading and
// difficulty management for lcd-pong.
package config

// PongConfig contains all configuration for the pong game.
type PongConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Field      FieldConfig      `yaml:"field"`
	Ball       BallConfig       `yaml:"ball"`
	Paddles    PaddleConfig     `yaml:"paddles"`
	Divider    DividerConfig    `yaml:"divider"`
	Tone       ToneConfig       `yaml:"tone"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Colors     ColorConfig      `yaml:"colors"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScreenConfig is the LCD panel size in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FieldConfig places the playing field outline. The fence is the field
// interior, one pixel inside the outline.
type FieldConfig struct {
	CenterX    int `yaml:"center_x"`
	CenterY    int `yaml:"center_y"`
	HalfWidth  int `yaml:"half_width"`
	HalfHeight int `yaml:"half_height"`
}

// BallConfig defines the ball shape and serve velocity (pixels per tick).
type BallConfig struct {
	Radius    int `yaml:"radius"`
	VelocityX int `yaml:"velocity_x"`
	VelocityY int `yaml:"velocity_y"`
}

// PaddleConfig defines both paddles.
type PaddleConfig struct {
	HalfWidth  int `yaml:"half_width"`
	HalfHeight int `yaml:"half_height"`
	Offset     int `yaml:"offset"` // distance of the paddle center from the field edge
	Speed      int `yaml:"speed"`  // pixels per tick while a switch is held
}

// DividerConfig defines the dashed center line.
type DividerConfig struct {
	Enabled bool `yaml:"enabled"`
	Period  int  `yaml:"period"`
	Gap     int  `yaml:"gap"`
	Phase   int  `yaml:"phase"`
}

// ToneConfig defines the buzzer sweep and the speaker timer.
type ToneConfig struct {
	InitialPeriod int `yaml:"initial_period"`
	Rate          int `yaml:"rate"`
	MinPeriod     int `yaml:"min_period"`
	MaxPeriod     int `yaml:"max_period"`
	XOR           int `yaml:"xor"`
	ClockHz       int `yaml:"clock_hz"`    // timer clock the period is counted in
	DurationMS    int `yaml:"duration_ms"` // how long each tone sounds
}

// GameplayConfig defines match rules.
type GameplayConfig struct {
	WinScore   int     `yaml:"win_score"`
	TickRate   int     `yaml:"tick_rate"`
	ServeDelay int     `yaml:"serve_delay"` // ticks the ball rests at the center after a goal
	CPUSkill   float64 `yaml:"cpu_skill"`   // chance per tick the CPU paddle reacts, 0..1
	CPUDead    int     `yaml:"cpu_deadzone"`
}

// ColorConfig holds colors as names, #rrggbb or 0xNNNN RGB565 literals.
type ColorConfig struct {
	Background string `yaml:"background"`
	Ball       string `yaml:"ball"`
	Paddles    string `yaml:"paddles"`
	Field      string `yaml:"field"`
	Divider    string `yaml:"divider"`
	Label      string `yaml:"label"`
	ScoreFG    string `yaml:"score_fg"`
	ScoreBG    string `yaml:"score_bg"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to ball speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
