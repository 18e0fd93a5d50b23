package host

import (
	"errors"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// mockKeypad returns a fixed key state.
type mockKeypad struct {
	keys  [chip8.KeyCount]bool
	polls int
}

func (m *mockKeypad) PollKeys() [chip8.KeyCount]bool {
	m.polls++
	return m.keys
}

// mockDisplay records rendered frames.
type mockDisplay struct {
	frames [][chip8.FramebufferSize]byte
	err    error
}

func (m *mockDisplay) Render(framebuffer [chip8.FramebufferSize]byte) error {
	if m.err != nil {
		return m.err
	}
	m.frames = append(m.frames, framebuffer)
	return nil
}

// mockBeeper records tone state changes.
type mockBeeper struct {
	changes []bool
}

func (m *mockBeeper) SetActive(active bool) {
	m.changes = append(m.changes, active)
}

var errDisplay = errors.New("display failed")
