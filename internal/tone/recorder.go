package tone

import "sync"

// Recorder is a ToneOutput that remembers every period it was given. The
// headless simulator and tests use it in place of a speaker.
type Recorder struct {
	mu      sync.Mutex
	periods []int
}

// SetTone records period.
func (r *Recorder) SetTone(period int) {
	r.mu.Lock()
	r.periods = append(r.periods, period)
	r.mu.Unlock()
}

// Periods returns a copy of the recorded periods.
func (r *Recorder) Periods() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.periods))
	copy(out, r.periods)
	return out
}

// Len returns the number of recorded tones.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.periods)
}
