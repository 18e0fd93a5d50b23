package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	m := New()

	assert.Equal(t, uint16(ProgramStart), m.PC())
	assert.Equal(t, uint16(0), m.I())
	assert.Equal(t, uint8(0), m.SP())
	assert.Equal(t, [RegisterCount]byte{}, m.Registers())
	assert.Equal(t, [FramebufferSize]byte{}, m.Framebuffer())
	assert.Equal(t, byte(0), m.DelayTimer())
	assert.Equal(t, byte(0), m.SoundTimer())

	for address, b := range font {
		assert.Equal(t, b, m.ReadMemory(uint16(address)))
	}
	for address := fontEnd; address < MemorySize; address++ {
		assert.Equal(t, byte(0), m.ReadMemory(uint16(address)))
	}
}

func TestMachine_FontGlyphAddress(t *testing.T) {
	m := New()

	// glyph n starts at 5n, the glyph for 0 is a closed box
	assert.Equal(t, byte(0xF0), m.ReadMemory(0))
	assert.Equal(t, byte(0x20), m.ReadMemory(1*FontGlyphSize))
	assert.Equal(t, byte(0xF0), m.ReadMemory(0xF*FontGlyphSize))
	assert.Equal(t, byte(0x80), m.ReadMemory(0xF*FontGlyphSize+4))
}

func TestMachine_Load(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"empty program", 0, false},
		{"small program", 4, false},
		{"maximum size", MaxProgramSize, false},
		{"too large", MaxProgramSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			program := make([]byte, tt.size)
			for i := range program {
				program[i] = byte(i) | 1
			}

			err := m.Load(program)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrProgramTooLarge))
				assert.Equal(t, byte(0), m.ReadMemory(ProgramStart))
				return
			}

			assert.NoError(t, err)
			for i, b := range program {
				assert.Equal(t, b, m.ReadMemory(uint16(ProgramStart+i)))
			}
		})
	}
}

func TestMachine_Reset(t *testing.T) {
	m := New()
	assert.NoError(t, m.Load([]byte{0x12, 0x34}))
	assert.NoError(t, m.SetKey(3, true))
	m.v[4] = 9
	m.pc = 0x300
	m.soundTimer = 5
	m.togglePixel(1, 1)

	m.Reset()

	assert.Equal(t, uint16(ProgramStart), m.PC())
	assert.Equal(t, byte(0), m.Register(4))
	assert.Equal(t, byte(0), m.SoundTimer())
	assert.False(t, m.Key(3))
	assert.False(t, m.Pixel(1, 1))
	assert.Equal(t, byte(0), m.ReadMemory(ProgramStart))
	assert.Equal(t, font[0], m.ReadMemory(0))
}

func TestMachine_SetKey(t *testing.T) {
	m := New()

	assert.NoError(t, m.SetKey(0xF, true))
	assert.True(t, m.Key(0xF))
	assert.NoError(t, m.SetKey(0xF, false))
	assert.False(t, m.Key(0xF))

	err := m.SetKey(0x10, true)
	assert.True(t, errors.Is(err, ErrInvalidKey))

	assert.NoError(t, m.SetKey(1, true))
	assert.NoError(t, m.SetKey(2, true))
	m.ReleaseKeys()
	assert.False(t, m.Key(1))
	assert.False(t, m.Key(2))
}

func TestMachine_TickTimers(t *testing.T) {
	m := New()
	m.delayTimer = 2
	m.soundTimer = 1

	m.TickTimers()
	assert.Equal(t, byte(1), m.DelayTimer())
	assert.Equal(t, byte(0), m.SoundTimer())

	m.TickTimers()
	m.TickTimers()
	assert.Equal(t, byte(0), m.DelayTimer())
	assert.Equal(t, byte(0), m.SoundTimer())
}

func TestMachine_PixelPacking(t *testing.T) {
	m := New()

	assert.False(t, m.togglePixel(0, 0))
	assert.False(t, m.togglePixel(9, 0))
	assert.False(t, m.togglePixel(63, 31))

	fb := m.Framebuffer()
	assert.Equal(t, byte(0x80), fb[0])
	assert.Equal(t, byte(0x40), fb[1])
	assert.Equal(t, byte(0x01), fb[FramebufferSize-1])

	assert.True(t, m.Pixel(64, 32)) // wraps to 0,0
	assert.True(t, m.togglePixel(0, 0))
	assert.False(t, m.Pixel(0, 0))
}
