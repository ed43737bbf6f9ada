package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/lcd-pong/internal/core"
	"gopkg.in/yaml.v3"
)

func TestDefaultPongConfigValid(t *testing.T) {
	if err := DefaultPongConfig().Validate(); err != nil {
		t.Errorf("DefaultPongConfig().Validate() error = %v", err)
	}
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	var cfg PongConfig
	if err := yaml.Unmarshal(GetDefaultYAML("pong"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("embedded YAML differs from DefaultPongConfig():\n%+v\n%+v", cfg, DefaultPongConfig())
	}
	if GetDefaultYAML("snake") != nil {
		t.Error("GetDefaultYAML should return nil for unknown games")
	}
}

func TestResolvePongCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pong.yaml")
	// Partial file: only the overridden keys change.
	data := []byte("gameplay:\n  win_score: 3\nball:\n  velocity_x: 2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := ResolvePong(path)
	if err != nil {
		t.Fatalf("ResolvePong() error = %v", err)
	}
	if src != path {
		t.Errorf("source = %q, expected %q", src, path)
	}
	if cfg.Gameplay.WinScore != 3 || cfg.Ball.VelocityX != 2 {
		t.Errorf("overrides not applied: win_score=%d velocity_x=%d", cfg.Gameplay.WinScore, cfg.Ball.VelocityX)
	}
	if cfg.Ball.Radius != DefaultPongConfig().Ball.Radius || cfg.Tone != DefaultPongConfig().Tone {
		t.Error("keys absent from the file should keep their defaults")
	}
}

func TestResolvePongErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPong(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadPong() with a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ball: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPong(bad); err == nil {
		t.Error("LoadPong() with malformed YAML should fail")
	}
}

func TestResolvePongLocalDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir) // no user config
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "configs", "pong.yaml"), []byte("gameplay:\n  win_score: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, src, err := ResolvePong("")
	if err != nil {
		t.Fatalf("ResolvePong() error = %v", err)
	}
	if src != filepath.Join("configs", "pong.yaml") {
		t.Errorf("source = %q, expected configs/pong.yaml", src)
	}
	if cfg.Gameplay.WinScore != 7 {
		t.Errorf("win_score = %d, expected 7", cfg.Gameplay.WinScore)
	}
}

func TestResolvePongEmbedded(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, src, err := ResolvePong("")
	if err != nil {
		t.Fatalf("ResolvePong() error = %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected %q", src, SourceEmbedded)
	}
	if cfg != DefaultPongConfig() {
		t.Error("embedded config should equal the defaults")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := DefaultPongConfig().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var cfg PongConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Error("marshalled config should decode to the same values")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *PongConfig)
	}{
		{"field off screen", func(c *PongConfig) { c.Field.HalfWidth = 80 }},
		{"ball too fast", func(c *PongConfig) { c.Ball.VelocityX = 5 }},
		{"ball not moving", func(c *PongConfig) { c.Ball.VelocityX = 0 }},
		{"paddle too fast", func(c *PongConfig) { c.Paddles.Speed = 11 }},
		{"paddles overlap", func(c *PongConfig) { c.Paddles.Offset = 60 }},
		{"paddle outside fence", func(c *PongConfig) { c.Paddles.Offset = 1 }},
		{"divider gap", func(c *PongConfig) { c.Divider.Gap = 8 }},
		{"tone bounds", func(c *PongConfig) { c.Tone.MinPeriod = 5000 }},
		{"tone rate", func(c *PongConfig) { c.Tone.Rate = 2000 }},
		{"tone clock", func(c *PongConfig) { c.Tone.ClockHz = 0 }},
		{"win score", func(c *PongConfig) { c.Gameplay.WinScore = 10 }},
		{"tick rate", func(c *PongConfig) { c.Gameplay.TickRate = 0 }},
		{"cpu skill", func(c *PongConfig) { c.Gameplay.CPUSkill = 1.5 }},
		{"progression", func(c *PongConfig) { c.Difficulty.Progression.Type = "random" }},
		{"color", func(c *PongConfig) { c.Colors.Ball = "plaid" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestGeometryHelpers(t *testing.T) {
	cfg := DefaultPongConfig()

	if got := cfg.FieldRegion(); got != core.NewRegion(10, 22, 118, 154) {
		t.Errorf("FieldRegion() = %v", got)
	}
	if got := cfg.Fence(); got != core.NewRegion(11, 23, 117, 153) {
		t.Errorf("Fence() = %v", got)
	}
	left, right := cfg.PaddleX()
	if left != 16 || right != 112 {
		t.Errorf("PaddleX() = %d, %d, expected 16, 112", left, right)
	}
	if p := cfg.ToneParams(); p.Period != 1000 || p.Rate != 200 || p.XOR != 1000 {
		t.Errorf("ToneParams() = %+v", p)
	}
}

func TestPalette(t *testing.T) {
	p, err := DefaultPongConfig().Colors.Palette()
	if err != nil {
		t.Fatalf("Palette() error = %v", err)
	}
	if p.Background != core.ColorBlue || p.Ball != core.ColorViolet || p.Label != core.ColorGold {
		t.Errorf("Palette() = %+v", p)
	}
}

func TestApplyPongPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		level     float64
		velocityX int
	}{
		{DifficultyEasy, true, 0.0, 2},
		{DifficultyNormal, true, 0.3, 3},
		{DifficultyHard, true, 0.7, 4},
		{DifficultyFixed, false, 0.0, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPongConfig()
			ApplyPongPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Ball.VelocityX != tc.velocityX {
				t.Errorf("VelocityX = %d, expected %d", cfg.Ball.VelocityX, tc.velocityX)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s produced an invalid config: %v", tc.preset, err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		ok       bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"hard", DifficultyHard, true},
		{"fixed", DifficultyFixed, true},
		{"insane", "", false},
	}
	for _, tc := range tests {
		got, ok := ParsePreset(tc.in)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParsePreset(%q) = %q, %v, expected %q, %v", tc.in, got, ok, tc.expected, tc.ok)
		}
	}
}
