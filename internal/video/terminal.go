package video

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// ANSI sequences used to redraw the frame in place.
const (
	ansiClear      = "\x1b[2J"
	ansiHome       = "\x1b[H"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
)

// keyHoldFrames is the number of frames a key stays pressed after its character was
// read, terminals do not report key releases.
const keyHoldFrames = 6

// Compile-time checks to ensure Terminal implements the host interfaces.
var (
	_ host.Display = (*Terminal)(nil)
	_ host.Keypad  = (*Terminal)(nil)
)

// Terminal renders frames with half block characters and reads keys from a raw mode
// terminal.
type Terminal struct {
	logger *log.Logger
	out    io.Writer
	ansi   bool
	raw    bool // output post-processing is off, lines need CR LF

	inFd     int
	oldState *term.State

	mu   sync.Mutex
	hold [chip8.KeyCount]int

	quitOnce sync.Once
	done     chan struct{}
}

// NewTerminal returns a terminal display writing to out. ANSI cursor control is used
// when out is a terminal.
func NewTerminal(logger *log.Logger, out *os.File) *Terminal {
	t := &Terminal{
		logger: logger,
		out:    out,
		inFd:   -1,
		done:   make(chan struct{}),
	}

	fd := int(out.Fd())
	if term.IsTerminal(fd) {
		t.ansi = true
		width, height, err := term.GetSize(fd)
		if err == nil && (width < chip8.ScreenWidth || height < TextRows) {
			logger.Warn("Terminal is smaller than the emulated screen",
				log.Int("width", width),
				log.Int("height", height))
		}
	}
	return t
}

// NewTextWriter returns a display that writes every frame as plain text to w.
func NewTextWriter(logger *log.Logger, w io.Writer) *Terminal {
	return &Terminal{
		logger: logger,
		out:    w,
		inFd:   -1,
		done:   make(chan struct{}),
	}
}

// Render writes the frame, redrawing in place when ANSI control is enabled.
func (t *Terminal) Render(framebuffer [chip8.FramebufferSize]byte) error {
	text := RenderText(framebuffer)
	if t.raw {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	if t.ansi {
		text = ansiHome + text
	}
	if _, err := io.WriteString(t.out, text); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// StartInput puts the input terminal into raw mode and starts reading keys from it.
// Pressing ESC or Ctrl+C closes the Done channel.
func (t *Terminal) StartInput(in *os.File) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("input is not a terminal")
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("setting raw mode: %w", err)
	}
	t.inFd = fd
	t.oldState = oldState
	t.raw = true

	if t.ansi {
		_, _ = io.WriteString(t.out, ansiClear+ansiHideCursor)
	}

	go t.readKeys(in)
	return nil
}

// Close restores the terminal state.
func (t *Terminal) Close() error {
	if t.ansi {
		_, _ = io.WriteString(t.out, ansiShowCursor)
	}
	if t.oldState == nil {
		return nil
	}
	err := term.Restore(t.inFd, t.oldState)
	t.oldState = nil
	t.raw = false
	if err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}

// PollKeys returns the held keys and counts down their hold time.
func (t *Terminal) PollKeys() [chip8.KeyCount]bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	var keys [chip8.KeyCount]bool
	for key, frames := range t.hold {
		if frames > 0 {
			keys[key] = true
			t.hold[key]--
		}
	}
	return keys
}

// Done returns a channel that is closed when the user pressed ESC or Ctrl+C.
func (t *Terminal) Done() <-chan struct{} {
	return t.done
}

// readKeys reads input bytes until the reader fails.
func (t *Terminal) readKeys(in io.Reader) {
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			t.handleInput(buf[0])
		}
		if err != nil {
			t.logger.Debug("Terminal input stopped", log.Err(err))
			return
		}
	}
}

// handleInput records a single input byte.
func (t *Terminal) handleInput(b byte) {
	switch b {
	case 0x03, 0x1B: // Ctrl+C, ESC
		t.quitOnce.Do(func() { close(t.done) })
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if key, ok := host.KeyForRune(rune(b)); ok {
		t.hold[key] = keyHoldFrames
	}
}
