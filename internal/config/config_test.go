package config

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestCreateEngine_SeededRandom(t *testing.T) {
	opts := options.Program{Flags: options.Flags{Seed: 42}}

	results := [2]byte{}
	for i := range results {
		m := chip8.New()
		assert.NoError(t, m.Load([]byte{0xC0, 0xFF})) // RND V0, $FF
		e := CreateEngine(log.NewTestLogger(t), m, opts)

		_, err := e.Step()
		assert.NoError(t, err)
		results[i] = m.Register(0)
	}
	assert.Equal(t, results[0], results[1])
}

func TestCreateRunnerConfig(t *testing.T) {
	opts := options.Program{Flags: options.Flags{CyclesPerFrame: 12, Frames: 300}}

	cfg := CreateRunnerConfig(opts)
	assert.Equal(t, 12, cfg.CyclesPerFrame)
	assert.Equal(t, 300, cfg.FrameLimit)
}
