//go:build !headless

// Package window implements the desktop frontend on top of ebiten.
package window

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/video"
	"github.com/retroenv/retrogolib/log"
)

// Compile-time checks to ensure Window implements the needed interfaces.
var (
	_ ebiten.Game  = (*Window)(nil)
	_ host.Display = (*Window)(nil)
	_ host.Keypad  = (*Window)(nil)
)

// keyboardKeys names the keyboard key of every character used in host.KeyLayout.
var keyboardKeys = map[rune]ebiten.Key{
	'1': ebiten.Key1, '2': ebiten.Key2, '3': ebiten.Key3, '4': ebiten.Key4,
	'q': ebiten.KeyQ, 'w': ebiten.KeyW, 'e': ebiten.KeyE, 'r': ebiten.KeyR,
	'a': ebiten.KeyA, 's': ebiten.KeyS, 'd': ebiten.KeyD, 'f': ebiten.KeyF,
	'z': ebiten.KeyZ, 'x': ebiten.KeyX, 'c': ebiten.KeyC, 'v': ebiten.KeyV,
}

// keyMap maps the hex keys to keyboard keys following host.KeyLayout.
var keyMap = buildKeyMap(host.KeyLayout)

func buildKeyMap(layout [chip8.KeyCount]rune) [chip8.KeyCount]ebiten.Key {
	var keys [chip8.KeyCount]ebiten.Key
	for key, r := range layout {
		keys[key] = keyboardKeys[unicode.ToLower(r)]
	}
	return keys
}

// Window runs the frame loop inside the ebiten game loop and presents the
// framebuffer scaled up in a desktop window.
type Window struct {
	ctx    context.Context
	logger *log.Logger
	runner *host.Runner
	title  string
	scale  int

	pixels []byte
	image  *ebiten.Image
}

// New returns a new window frontend for the runner. The window registers itself as
// keypad and display of the runner. Cancelling the context closes the window.
func New(ctx context.Context, logger *log.Logger, runner *host.Runner, title string, scale int) *Window {
	w := &Window{
		ctx:    ctx,
		logger: logger,
		runner: runner,
		title:  title,
		scale:  scale,
		pixels: make([]byte, video.RGBASize),
	}
	video.ExpandRGBA(w.pixels, [chip8.FramebufferSize]byte{}, video.DefaultPalette)

	runner.SetKeypad(w)
	runner.SetDisplay(w)
	return w
}

// Run opens the window and blocks until it is closed or the context is cancelled,
// ESC is pressed, the frame limit is reached or the engine faults.
func (w *Window) Run() error {
	ebiten.SetWindowSize(chip8.ScreenWidth*w.scale, chip8.ScreenHeight*w.scale)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(host.FrameRate)

	err := ebiten.RunGame(w)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// Update runs one emulation frame per tick.
func (w *Window) Update() error {
	if err := w.ctx.Err(); err != nil {
		w.logger.Debug("Window closed", log.Err(err))
		return ebiten.Termination
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	err := w.runner.Frame()
	if errors.Is(err, host.ErrFrameLimit) {
		w.logger.Debug("Frame limit reached", log.Int("frames", w.runner.Frames()))
		return ebiten.Termination
	}
	return err
}

// Draw uploads the last rendered frame and scales it to the window.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.image == nil {
		w.image = ebiten.NewImage(chip8.ScreenWidth, chip8.ScreenHeight)
	}
	w.image.WritePixels(w.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.scale), float64(w.scale))
	screen.DrawImage(w.image, op)
}

// Layout keeps the logical screen at the scaled emulator resolution, ebiten fits it
// into the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return chip8.ScreenWidth * w.scale, chip8.ScreenHeight * w.scale
}

// Render stores the frame for the next Draw call.
func (w *Window) Render(framebuffer [chip8.FramebufferSize]byte) error {
	video.ExpandRGBA(w.pixels, framebuffer, video.DefaultPalette)
	return nil
}

// PollKeys returns the pressed state of the mapped keyboard keys. All keys are
// released while the window is not focused.
func (w *Window) PollKeys() [chip8.KeyCount]bool {
	var keys [chip8.KeyCount]bool
	if !ebiten.IsFocused() {
		return keys
	}
	for key, k := range keyMap {
		keys[key] = ebiten.IsKeyPressed(k)
	}
	return keys
}
