// Package host implements the frame loop that drives the CHIP-8 core at 60 Hz.
//
// Every frame polls the keypad, executes a configurable number of instructions,
// decrements the timers once, gates the sound tone and presents the framebuffer
// when it changed.
package host

import (
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// FrameRate is the number of frames per second, matching the timer frequency.
const FrameRate = 60

// FrameDuration is the duration of a single frame.
const FrameDuration = time.Second / FrameRate

// Keypad reports the state of the 16 hex keys.
type Keypad interface {
	// PollKeys returns the pressed state of keys 0x0-0xF.
	PollKeys() [chip8.KeyCount]bool
}

// Display presents a packed framebuffer.
type Display interface {
	Render(framebuffer [chip8.FramebufferSize]byte) error
}

// Beeper plays the tone while the sound timer is active.
type Beeper interface {
	SetActive(active bool)
}

// Config controls the frame loop.
type Config struct {
	CyclesPerFrame int // instructions executed per frame
	FrameLimit     int // stop after this many frames, 0 for no limit
}
