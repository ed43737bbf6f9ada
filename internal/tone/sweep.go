// Package tone generates the buzzer pitch sweep played on game events.
//
// The sweep keeps a timer period that climbs and falls between two bounds by
// a fixed rate, one step per event. The value sent to the output is the
// period XOR a shaping constant, which scrambles the low bits into the
// characteristic warble of the board buzzer.
package tone

import (
	"fmt"

	"github.com/vovakirdan/lcd-pong/internal/core"
)

// Defaults for the reference board.
const (
	DefaultPeriod = 1000
	DefaultRate   = 200
	DefaultMin    = 1000
	DefaultMax    = 4000
	DefaultXOR    = 1000
)

// Params configures a Sweep.
type Params struct {
	Period int // initial period
	Rate   int // initial step, sign gives the direction
	Min    int
	Max    int
	XOR    int // shaping constant applied to the emitted period
}

// DefaultParams returns the reference board parameters.
func DefaultParams() Params {
	return Params{
		Period: DefaultPeriod,
		Rate:   DefaultRate,
		Min:    DefaultMin,
		Max:    DefaultMax,
		XOR:    DefaultXOR,
	}
}

// Validate checks that the sweep stays within [Min, Max] for any sequence of
// steps.
func (p Params) Validate() error {
	if p.Min <= 0 || p.Min >= p.Max {
		return fmt.Errorf("tone: bounds [%d, %d] are invalid", p.Min, p.Max)
	}
	if p.Period < p.Min || p.Period > p.Max {
		return fmt.Errorf("tone: initial period %d outside [%d, %d]", p.Period, p.Min, p.Max)
	}
	if p.Rate == 0 || 2*core.Abs(p.Rate) > p.Max-p.Min {
		return fmt.Errorf("tone: rate %d must be non-zero and at most %d", p.Rate, (p.Max-p.Min)/2)
	}
	return nil
}

// Sweep is the oscillating period generator. It is not safe for concurrent
// use; the tick handler owns it.
type Sweep struct {
	params Params
	period int
	rate   int
	out    core.ToneOutput
}

// NewSweep creates a sweep driving out. A nil output discards tones.
func NewSweep(p Params, out core.ToneOutput) *Sweep {
	if out == nil {
		out = core.NopTone{}
	}
	return &Sweep{params: p, period: p.Period, rate: p.Rate, out: out}
}

// Period returns the current period before shaping.
func (s *Sweep) Period() int {
	return s.period
}

// Rate returns the current signed step.
func (s *Sweep) Rate() int {
	return s.rate
}

// Advance steps the sweep once and emits the shaped period. When the step
// would leave the bounds the direction reverses and the period is pulled back
// by two steps.
func (s *Sweep) Advance() int {
	s.period += s.rate
	if (s.rate > 0 && s.period > s.params.Max) || (s.rate < 0 && s.period < s.params.Min) {
		s.rate = -s.rate
		s.period += 2 * s.rate
	}
	out := s.period ^ s.params.XOR
	s.out.SetTone(out)
	return out
}

// Reset restores the initial period and rate.
func (s *Sweep) Reset() {
	s.period = s.params.Period
	s.rate = s.params.Rate
}
