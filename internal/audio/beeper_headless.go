//go:build headless

package audio

import "github.com/retroenv/retrochip8/internal/host"

// Compile-time check to ensure Beeper implements host.Beeper.
var _ host.Beeper = (*Beeper)(nil)

// Beeper is a silent beeper for builds without audio support.
type Beeper struct {
	tone *Tone
}

// NewBeeper returns a beeper that only tracks the gate state.
func NewBeeper(frequency int) (*Beeper, error) {
	return &Beeper{tone: NewTone(frequency)}, nil
}

func (b *Beeper) SetActive(active bool) {
	b.tone.SetActive(active)
}

func (b *Beeper) Close() error {
	return nil
}
