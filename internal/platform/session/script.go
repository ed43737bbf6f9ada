package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/lcd-pong/internal/core"
)

// Script replays a fixed sequence of switch readings, one per tick, then
// reads all released. It is read by the tick side only.
type Script struct {
	steps []core.SwitchMask
	pos   int
}

// ParseScript parses comma-separated steps of the form SWITCHES[xN].
// SWITCHES lists the closed switches by number (1-4), or "-" for none; N
// repeats the step. "1x5,-x3,24" holds SW1 for five ticks, waits three,
// then closes SW2 and SW4 for one tick.
func ParseScript(src string) (*Script, error) {
	s := &Script{}
	src = strings.TrimSpace(src)
	if src == "" {
		return s, nil
	}
	for _, step := range strings.Split(src, ",") {
		step = strings.TrimSpace(step)
		sw, count := step, 1
		if i := strings.IndexByte(step, 'x'); i >= 0 {
			n, err := strconv.Atoi(step[i+1:])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("script: bad repeat in %q", step)
			}
			sw, count = step[:i], n
		}

		mask := core.AllReleased
		switch sw {
		case "-":
		case "":
			return nil, fmt.Errorf("script: empty step")
		default:
			for _, r := range sw {
				if r < '1' || r > '0'+core.SwitchCount {
					return nil, fmt.Errorf("script: bad switch %q in %q", r, step)
				}
				mask = mask.Press(int(r - '1'))
			}
		}
		for range count {
			s.steps = append(s.steps, mask)
		}
	}
	return s, nil
}

// Len returns the number of scripted ticks.
func (s *Script) Len() int {
	return len(s.steps)
}

// ReadSwitchMask implements core.SwitchReader.
func (s *Script) ReadSwitchMask() core.SwitchMask {
	if s.pos >= len(s.steps) {
		return core.AllReleased
	}
	m := s.steps[s.pos]
	s.pos++
	return m
}
