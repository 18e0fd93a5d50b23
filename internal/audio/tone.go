// Package audio generates the tone that is played while the sound timer is active.
package audio

import (
	"encoding/binary"
	"sync/atomic"
)

// SampleRate is the output sample rate in Hz.
const SampleRate = 44100

// bytesPerSample is the size of a signed 16-bit little endian mono sample.
const bytesPerSample = 2

// amplitude of the square wave, about a quarter of full scale.
const amplitude = 8000

// Tone is an io.Reader producing a square wave while it is gated on and silence
// otherwise. It is read from the audio backend goroutine, gating is safe to call
// from the emulation loop.
type Tone struct {
	active atomic.Bool

	halfPeriod int // samples per half wave
	position   int
}

// NewTone returns a gated off tone of the given frequency in Hz.
func NewTone(frequency int) *Tone {
	halfPeriod := SampleRate / (2 * frequency)
	if halfPeriod < 1 {
		halfPeriod = 1
	}
	return &Tone{
		halfPeriod: halfPeriod,
	}
}

// SetActive gates the tone on or off.
func (t *Tone) SetActive(active bool) {
	t.active.Store(active)
}

// Active returns whether the tone is gated on.
func (t *Tone) Active() bool {
	return t.active.Load()
}

// Read fills p with whole samples. The wave phase only advances while the tone is
// active so that every beep starts at the same phase.
func (t *Tone) Read(p []byte) (int, error) {
	samples := len(p) / bytesPerSample
	active := t.active.Load()
	if !active {
		t.position = 0
	}

	for i := range samples {
		var value int16
		if active {
			value = amplitude
			if (t.position/t.halfPeriod)%2 == 1 {
				value = -amplitude
			}
			t.position++
			if t.position == 2*t.halfPeriod {
				t.position = 0
			}
		}
		binary.LittleEndian.PutUint16(p[i*bytesPerSample:], uint16(value))
	}
	return samples * bytesPerSample, nil
}
