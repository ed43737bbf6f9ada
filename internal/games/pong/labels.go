package pong

import (
	"fmt"

	"github.com/vovakirdan/lcd-pong/internal/core"
)

const (
	scoreLabel = "SCORE"
	labelY     = 4
)

// scoreText formats the score shown next to the label.
func scoreText(st core.GameState) string {
	return fmt.Sprintf("%d-%d", st.ScoreLeft, st.ScoreRight)
}

// labelX returns where the label starts so that label and score together
// are centered above the field.
func (g *Game) labelX() int {
	t := g.dev.Text
	w := t.Measure(scoreLabel+" ").X + t.Measure(scoreText(core.GameState{})).X
	return core.Max(0, (g.cfg.Screen.Width-w)/2)
}

func (g *Game) drawLabel() {
	t := g.dev.Text
	if t == nil {
		return
	}
	t.DrawText(g.dev.Display, g.labelX(), labelY, scoreLabel, g.palette.Label, g.palette.ScoreBG)
}

func (g *Game) drawScore() {
	t := g.dev.Text
	if t == nil {
		return
	}
	x := g.labelX() + t.Measure(scoreLabel+" ").X
	t.DrawText(g.dev.Display, x, labelY, scoreText(g.shown), g.palette.ScoreFG, g.palette.ScoreBG)
}

// drawWinner announces the winner over the middle of the field.
func (g *Game) drawWinner() {
	t := g.dev.Text
	if t == nil || g.shown.Winner == 0 {
		return
	}
	text := fmt.Sprintf("P%d WINS", g.shown.Winner)
	size := t.Measure(text)
	c := g.cfg.FieldRegion().Center()
	t.DrawText(g.dev.Display, c.X-size.X/2, c.Y-size.Y/2, text, g.palette.ScoreFG, g.palette.ScoreBG)
}
