package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestInput_SkipKey(t *testing.T) {
	tests := []struct {
		name    string
		opcode  uint16
		pressed bool
		skip    bool
	}{
		{"skp pressed", 0xE69E, true, true},
		{"skp released", 0xE69E, false, false},
		{"sknp pressed", 0xE6A1, true, false},
		{"sknp released", 0xE6A1, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m := newTestEngine(t, tt.opcode)
			m.v[6] = 0xB
			assert.NoError(t, m.SetKey(0xB, tt.pressed))

			step(t, e)

			want := uint16(ProgramStart + 2)
			if tt.skip {
				want += 2
			}
			assert.Equal(t, want, m.PC())
		})
	}
}

func TestInput_WaitKey(t *testing.T) {
	e, m := newTestEngine(t, 0xF50A)

	for range 5 {
		effects := step(t, e)
		assert.Equal(t, Effects(0), effects)
		assert.Equal(t, uint16(ProgramStart), m.PC())
		assert.Equal(t, byte(0), m.v[5])
	}

	assert.NoError(t, m.SetKey(0xC, true))
	assert.NoError(t, m.SetKey(0x7, true))
	step(t, e)

	assert.Equal(t, uint16(ProgramStart+2), m.PC())
	assert.Equal(t, byte(0x7), m.v[5])
}
