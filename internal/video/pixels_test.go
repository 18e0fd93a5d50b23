package video

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestExpandRGBA(t *testing.T) {
	var fb [chip8.FramebufferSize]byte
	fb[0] = 0x81                    // pixels 0 and 7 of row 0
	fb[chip8.FramebufferSize-1] = 1 // last pixel

	dst := make([]byte, RGBASize)
	ExpandRGBA(dst, fb, DefaultPalette)

	pixel := func(x, y int) [4]byte {
		offset := (y*chip8.ScreenWidth + x) * 4
		return [4]byte(dst[offset : offset+4])
	}
	on := DefaultPalette.On
	off := DefaultPalette.Off

	assert.Equal(t, [4]byte{on.R, on.G, on.B, on.A}, pixel(0, 0))
	assert.Equal(t, [4]byte{off.R, off.G, off.B, off.A}, pixel(1, 0))
	assert.Equal(t, [4]byte{on.R, on.G, on.B, on.A}, pixel(7, 0))
	assert.Equal(t, [4]byte{off.R, off.G, off.B, off.A}, pixel(8, 0))
	assert.Equal(t, [4]byte{on.R, on.G, on.B, on.A}, pixel(63, 31))
}
