// Package video converts the packed CHIP-8 framebuffer for presentation and
// implements the text based displays.
package video

import (
	"image/color"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Palette is the pair of colors used for unlit and lit pixels.
type Palette struct {
	Off color.RGBA
	On  color.RGBA
}

// DefaultPalette renders lit pixels in a light phosphor tone on a dark background.
var DefaultPalette = Palette{
	Off: color.RGBA{R: 0x10, G: 0x14, B: 0x10, A: 0xFF},
	On:  color.RGBA{R: 0xC8, G: 0xFF, B: 0xC8, A: 0xFF},
}

// RGBASize is the size of an expanded framebuffer in bytes.
const RGBASize = chip8.ScreenWidth * chip8.ScreenHeight * 4

// ExpandRGBA expands the packed framebuffer into dst as 64x32 RGBA pixels.
// dst must be at least RGBASize bytes long.
func ExpandRGBA(dst []byte, framebuffer [chip8.FramebufferSize]byte, palette Palette) {
	for i, packed := range framebuffer {
		for bit := range 8 {
			c := palette.Off
			if packed&(0x80>>bit) != 0 {
				c = palette.On
			}
			offset := (i*8 + bit) * 4
			dst[offset] = c.R
			dst[offset+1] = c.G
			dst[offset+2] = c.B
			dst[offset+3] = c.A
		}
	}
}

// lit returns whether the pixel at x, y of the packed framebuffer is set.
func lit(framebuffer *[chip8.FramebufferSize]byte, x, y int) bool {
	offset := y*chip8.ScreenWidth + x
	return framebuffer[offset/8]&(0x80>>(offset%8)) != 0
}
