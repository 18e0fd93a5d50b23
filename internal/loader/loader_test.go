package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestLoad(t *testing.T) {
	t.Run("load ROM file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x12, 0x34, 0x56, 0x78})

		m := chip8.New()
		err := New(log.NewTestLogger(t)).Load(tmpFile, m)
		assert.NoError(t, err)
		assert.Equal(t, byte(0x12), m.ReadMemory(chip8.ProgramStart))
		assert.Equal(t, byte(0x78), m.ReadMemory(chip8.ProgramStart+3))
		assert.Equal(t, byte(0x00), m.ReadMemory(chip8.ProgramStart+4))
	})

	t.Run("ROM filling the program space", func(t *testing.T) {
		data := make([]byte, chip8.MaxProgramSize)
		data[len(data)-1] = 0xAB
		tmpFile := createTempFile(t, data)

		m := chip8.New()
		err := New(log.NewTestLogger(t)).Load(tmpFile, m)
		assert.NoError(t, err)
		assert.Equal(t, byte(0xAB), m.ReadMemory(chip8.MaxAddress))
	})

	t.Run("ROM too large", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, chip8.MaxProgramSize+1))

		err := New(log.NewTestLogger(t)).Load(tmpFile, chip8.New())
		assert.True(t, errors.Is(err, chip8.ErrProgramTooLarge))
	})

	t.Run("empty ROM", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		err := New(log.NewTestLogger(t)).Load(tmpFile, chip8.New())
		assert.ErrorContains(t, err, "is empty")
	})

	t.Run("missing file", func(t *testing.T) {
		err := New(log.NewTestLogger(t)).Load(filepath.Join(t.TempDir(), "missing.ch8"), chip8.New())
		assert.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.ch8")
	err := os.WriteFile(path, data, 0o600)
	assert.NoError(t, err)
	return path
}
