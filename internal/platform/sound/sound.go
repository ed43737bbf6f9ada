// Package sound plays tone periods as a square wave through the system
// speaker, the way the board's buzzer timer would.
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/lcd-pong/internal/core"
)

const (
	sampleRate    = beep.SampleRate(48000)
	defaultVolume = 0.15
)

// Options configures the buzzer.
type Options struct {
	ClockHz  int           // timer clock, period ticks per second
	Duration time.Duration // how long each tone sounds
	Volume   float64       // 0..1
}

// Voice is a gated square-wave generator implementing beep.Streamer and
// core.ToneOutput. Each SetTone restarts the gate.
type Voice struct {
	mu        sync.Mutex
	sr        beep.SampleRate
	clockHz   float64
	gate      int
	volume    float64
	freq      float64
	phase     float64
	remaining int
}

// NewVoice creates a silent voice.
func NewVoice(sr beep.SampleRate, opts Options) *Voice {
	if opts.Volume <= 0 || opts.Volume > 1 {
		opts.Volume = defaultVolume
	}
	return &Voice{
		sr:      sr,
		clockHz: float64(opts.ClockHz),
		gate:    sr.N(opts.Duration),
		volume:  opts.Volume,
	}
}

// SetTone starts a tone for a timer period. Zero or negative silences.
func (v *Voice) SetTone(period int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if period <= 0 || v.clockHz <= 0 {
		v.remaining = 0
		return
	}
	v.freq = v.clockHz / float64(period)
	v.remaining = v.gate
}

// Frequency returns the frequency of the last tone in Hz.
func (v *Voice) Frequency() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.freq
}

// Stream fills samples with the square wave, or silence once the gate has
// closed. It never ends.
func (v *Voice) Stream(samples [][2]float64) (n int, ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	step := v.freq / float64(v.sr)
	for i := range samples {
		s := 0.0
		if v.remaining > 0 {
			if v.phase < 0.5 {
				s = v.volume
			} else {
				s = -v.volume
			}
			v.phase += step
			if v.phase >= 1 {
				v.phase -= 1
			}
			v.remaining--
		}
		samples[i][0] = s
		samples[i][1] = s
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (v *Voice) Err() error {
	return nil
}

// Buzzer is a Voice playing on the speaker.
type Buzzer struct {
	*Voice
}

// Open initializes the speaker and starts streaming a silent voice.
func Open(opts Options) (*Buzzer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("sound: cannot init speaker: %w", err)
	}
	v := NewVoice(sampleRate, opts)
	speaker.Play(v)
	return &Buzzer{Voice: v}, nil
}

// Close stops playback and releases the audio device.
func (b *Buzzer) Close() error {
	speaker.Clear()
	speaker.Close()
	return nil
}

// OpenOrSilent opens the buzzer, falling back to a silent output when no
// audio device is available. The returned close function is never nil.
func OpenOrSilent(opts Options, logger *log.Logger) (core.ToneOutput, func()) {
	b, err := Open(opts)
	if err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		}
		return core.NopTone{}, func() {}
	}
	return b, func() { _ = b.Close() }
}
