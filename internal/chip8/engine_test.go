package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestEngine_UnknownOpcodes(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
	}{
		{"machine code call", 0x0123},
		{"zero word", 0x0000},
		{"arithmetic 8xy8", 0x8128},
		{"arithmetic 8xyF", 0x812F},
		{"key group", 0xE1FF},
		{"misc group", 0xF1FF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m := newTestEngine(t, tt.opcode)
			before := *m

			effects, err := e.Step()
			assert.True(t, errors.Is(err, ErrUnknownOpcode))
			assert.Equal(t, Effects(0), effects)
			assert.True(t, before == *m)
		})
	}
}

func TestEngine_FaultIsLatched(t *testing.T) {
	e, m := newTestEngine(t, 0x00EE, 0x6001)

	_, err := e.Step()
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.ErrorContains(t, err, "00EE")

	_, err = e.Step()
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.True(t, errors.Is(e.Fault(), ErrStackUnderflow))
	assert.Equal(t, uint16(ProgramStart), m.PC())
	assert.Equal(t, uint64(0), e.Cycles())

	e.Reset()
	assert.NoError(t, e.Fault())
	assert.Equal(t, uint16(ProgramStart), m.PC())
}

func TestEngine_FetchOutOfRange(t *testing.T) {
	e, m := newTestEngine(t)
	m.pc = MaxAddress

	_, err := e.Step()
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))
}

func TestEngine_Effects(t *testing.T) {
	e, m := newTestEngine(t,
		0x6005, // ld v0, 5
		0xF018, // ld st, v0
		0x00E0, // cls
	)

	effects := step(t, e)
	assert.Equal(t, Effects(0), effects)

	effects = step(t, e)
	assert.True(t, effects.Has(EffectSound))
	assert.False(t, effects.Has(EffectRedraw))

	m.soundTimer = 0
	effects = step(t, e)
	assert.True(t, effects.Has(EffectRedraw))
	assert.False(t, effects.Has(EffectSound))
	assert.Equal(t, uint64(3), e.Cycles())
}

func TestEngine_DefaultRandom(t *testing.T) {
	m := New()
	e := NewEngine(log.NewTestLogger(t), m)

	assert.NotNil(t, e.rng)
	assert.True(t, e.Machine() == m)
}

func TestEffects_Has(t *testing.T) {
	effects := EffectRedraw | EffectSound

	assert.True(t, effects.Has(EffectRedraw))
	assert.True(t, effects.Has(EffectSound))
	assert.True(t, effects.Has(EffectRedraw|EffectSound))
	assert.False(t, EffectRedraw.Has(EffectSound))
}
