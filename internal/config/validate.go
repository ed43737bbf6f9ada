package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/lcd-pong/internal/core"
	"github.com/vovakirdan/lcd-pong/internal/tone"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks that the configuration describes a playable layout. The
// per-tick velocities are bounded by the shape sizes so a single reflection
// always brings a shape back inside the fence and the ball cannot skip over
// a paddle.
func (c PongConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return invalid("screen %dx%d", c.Screen.Width, c.Screen.Height)
	}
	field := c.FieldRegion()
	screen := core.NewRegion(0, 0, c.Screen.Width-1, c.Screen.Height-1)
	if c.Field.HalfWidth < 2 || c.Field.HalfHeight < 2 || !field.Within(screen) {
		return invalid("field %v does not fit the %dx%d screen", field, c.Screen.Width, c.Screen.Height)
	}

	fence := c.Fence()
	if c.Ball.Radius < 1 {
		return invalid("ball radius %d", c.Ball.Radius)
	}
	if 2*c.Ball.Radius+1 > fence.Height() || 2*c.Ball.Radius+1 > fence.Width() {
		return invalid("ball radius %d does not fit the fence", c.Ball.Radius)
	}
	if c.Ball.VelocityX <= 0 || c.Ball.VelocityX > c.Ball.Radius {
		return invalid("ball velocity_x %d must be in [1, %d]", c.Ball.VelocityX, c.Ball.Radius)
	}
	if c.Ball.VelocityY < 0 || c.Ball.VelocityY > c.Ball.Radius {
		return invalid("ball velocity_y %d must be in [0, %d]", c.Ball.VelocityY, c.Ball.Radius)
	}

	p := c.Paddles
	if p.HalfWidth < 0 || p.HalfHeight < 1 || 2*p.HalfHeight+1 > fence.Height() {
		return invalid("paddle half size %dx%d", p.HalfWidth, p.HalfHeight)
	}
	if p.Speed <= 0 || p.Speed > p.HalfHeight {
		return invalid("paddle speed %d must be in [1, %d]", p.Speed, p.HalfHeight)
	}
	left, right := c.PaddleX()
	if left-p.HalfWidth < fence.TopLeft.X || right+p.HalfWidth > fence.BotRight.X || left+p.HalfWidth >= right-p.HalfWidth {
		return invalid("paddle offset %d places the paddles outside the fence", p.Offset)
	}

	if c.Divider.Enabled {
		if c.Divider.Period <= 0 || c.Divider.Gap < 0 || c.Divider.Gap >= c.Divider.Period {
			return invalid("divider period %d gap %d", c.Divider.Period, c.Divider.Gap)
		}
	}

	if err := c.ToneParams().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Tone.ClockHz <= 0 || c.Tone.DurationMS < 0 {
		return invalid("tone clock %d Hz duration %d ms", c.Tone.ClockHz, c.Tone.DurationMS)
	}

	g := c.Gameplay
	if g.WinScore < 1 || g.WinScore > 9 {
		return invalid("win_score %d must be in [1, 9]", g.WinScore)
	}
	if g.TickRate <= 0 {
		return invalid("tick_rate %d", g.TickRate)
	}
	if g.ServeDelay < 0 {
		return invalid("serve_delay %d", g.ServeDelay)
	}
	if g.CPUSkill < 0 || g.CPUSkill > 1 {
		return invalid("cpu_skill %.2f must be in [0, 1]", g.CPUSkill)
	}

	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		return invalid("difficulty progression %q", c.Difficulty.Progression.Type)
	}

	if _, err := c.Colors.Palette(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// FieldRegion returns the bounds of the field outline.
func (c PongConfig) FieldRegion() core.Region {
	return core.RegionAround(
		core.V(c.Field.CenterX, c.Field.CenterY),
		core.V(c.Field.HalfWidth, c.Field.HalfHeight),
	)
}

// Fence returns the field interior, one pixel inside the outline stroke.
func (c PongConfig) Fence() core.Region {
	return c.FieldRegion().Inset(1)
}

// PaddleX returns the x coordinates of the left and right paddle centers.
func (c PongConfig) PaddleX() (left, right int) {
	f := c.FieldRegion()
	return f.TopLeft.X + c.Paddles.Offset, f.BotRight.X - c.Paddles.Offset
}

// ToneParams converts the tone section to sweep parameters.
func (c PongConfig) ToneParams() tone.Params {
	return tone.Params{
		Period: c.Tone.InitialPeriod,
		Rate:   c.Tone.Rate,
		Min:    c.Tone.MinPeriod,
		Max:    c.Tone.MaxPeriod,
		XOR:    c.Tone.XOR,
	}
}

// Palette is the resolved set of colors.
type Palette struct {
	Background core.Color
	Ball       core.Color
	Paddles    core.Color
	Field      core.Color
	Divider    core.Color
	Label      core.Color
	ScoreFG    core.Color
	ScoreBG    core.Color
}

// Palette parses every color of the section.
func (c ColorConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		src  string
		dst  *core.Color
	}{
		{"background", c.Background, &p.Background},
		{"ball", c.Ball, &p.Ball},
		{"paddles", c.Paddles, &p.Paddles},
		{"field", c.Field, &p.Field},
		{"divider", c.Divider, &p.Divider},
		{"label", c.Label, &p.Label},
		{"score_fg", c.ScoreFG, &p.ScoreFG},
		{"score_bg", c.ScoreBG, &p.ScoreBG},
	}
	for _, f := range fields {
		col, err := core.ParseColor(f.src)
		if err != nil {
			return p, fmt.Errorf("colors.%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}
