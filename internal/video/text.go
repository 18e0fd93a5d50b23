package video

import (
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Half block characters, each text cell shows two pixel rows.
const (
	blockNone   = ' '
	blockUpper  = '▀'
	blockLower  = '▄'
	blockFull   = '█'
	textLineLen = chip8.ScreenWidth + 1
)

// TextRows is the number of text lines of a rendered frame.
const TextRows = chip8.ScreenHeight / 2

// RenderText renders the packed framebuffer as 16 lines of 64 half block characters.
func RenderText(framebuffer [chip8.FramebufferSize]byte) string {
	var sb strings.Builder
	sb.Grow(TextRows * textLineLen * 3)

	for row := 0; row < chip8.ScreenHeight; row += 2 {
		for x := range chip8.ScreenWidth {
			upper := lit(&framebuffer, x, row)
			lower := lit(&framebuffer, x, row+1)
			switch {
			case upper && lower:
				sb.WriteRune(blockFull)
			case upper:
				sb.WriteRune(blockUpper)
			case lower:
				sb.WriteRune(blockLower)
			default:
				sb.WriteRune(blockNone)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
