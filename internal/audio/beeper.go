//go:build !headless

package audio

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/retroenv/retrochip8/internal/host"
)

// Compile-time check to ensure Beeper implements host.Beeper.
var _ host.Beeper = (*Beeper)(nil)

// Beeper plays a Tone through the oto audio backend.
type Beeper struct {
	tone   *Tone
	ctx    *oto.Context
	player *oto.Player
	mutex  sync.Mutex
}

// NewBeeper opens the audio device and starts a player for a tone of the given
// frequency. The tone starts gated off.
func NewBeeper(frequency int) (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	tone := NewTone(frequency)
	player := ctx.NewPlayer(tone)
	player.Play()

	return &Beeper{
		tone:   tone,
		ctx:    ctx,
		player: player,
	}, nil
}

// SetActive gates the tone on or off.
func (b *Beeper) SetActive(active bool) {
	b.tone.SetActive(active)
}

// Close stops the player.
func (b *Beeper) Close() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.player == nil {
		return nil
	}
	err := b.player.Close()
	b.player = nil
	if err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
