package pong

import (
	"github.com/vovakirdan/lcd-pong/internal/core"
)

const (
	cpuSkillMax   = 0.95 // the ramp stops here
	cpuSkillStep  = 0.02
	cpuSkillEvery = 600 // ticks between skill increases
)

// cpuSwitches replaces the right paddle's switches with the CPU's choice.
// The CPU only chases the ball while it is coming toward the right side and
// otherwise drifts back to the middle. Each tick it reacts with probability
// equal to its skill, which slowly grows during the match.
func (g *Game) cpuSwitches(mask core.SwitchMask) core.SwitchMask {
	up, down := core.ActionRightUp.Switch(), core.ActionRightDown.Switch()
	mask |= core.SwitchMask(1<<up | 1<<down)

	base := g.cfg.Gameplay.CPUSkill
	ramp := float64(g.ticks/cpuSkillEvery) * cpuSkillStep
	skill := base + min(ramp, max(0, cpuSkillMax-base))
	if g.rng.Float64() >= skill {
		return mask
	}

	ball := g.scene.Layer(g.ball)
	target := g.cfg.FieldRegion().Center().Y
	if g.scene.Mobile(g.ballMob).Velocity.X > 0 {
		target = ball.Next.Y
	}

	diff := target - g.scene.Layer(g.rightPaddle).Next.Y
	switch {
	case diff < -g.cfg.Gameplay.CPUDead:
		mask = mask.Press(up)
	case diff > g.cfg.Gameplay.CPUDead:
		mask = mask.Press(down)
	}
	return mask
}
