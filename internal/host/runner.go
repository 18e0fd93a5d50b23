package host

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// ErrFrameLimit is returned by Frame when the configured frame limit is reached.
var ErrFrameLimit = errors.New("frame limit reached")

// Runner drives an engine one frame at a time.
type Runner struct {
	logger  *log.Logger
	engine  *chip8.Engine
	machine *chip8.Machine
	cfg     Config

	keypad  Keypad
	display Display
	beeper  Beeper

	frames    int
	redraw    bool
	toneState bool
}

// NewRunner returns a new frame runner. The keypad, display and beeper are optional
// and can be set later with SetKeypad, SetDisplay and SetBeeper.
func NewRunner(logger *log.Logger, engine *chip8.Engine, cfg Config) *Runner {
	if cfg.CyclesPerFrame < 1 {
		cfg.CyclesPerFrame = 1
	}
	return &Runner{
		logger:  logger,
		engine:  engine,
		machine: engine.Machine(),
		cfg:     cfg,
		redraw:  true,
	}
}

// SetKeypad replaces the keypad. Keys held through the previous keypad are released.
func (r *Runner) SetKeypad(keypad Keypad) {
	r.keypad = keypad
	r.machine.ReleaseKeys()
}

func (r *Runner) SetDisplay(display Display) {
	r.display = display
}

func (r *Runner) SetBeeper(beeper Beeper) {
	r.beeper = beeper
}

// Frames returns the number of completed frames.
func (r *Runner) Frames() int {
	return r.frames
}

// Frame runs a single frame. Engine faults stop the frame and are returned wrapped,
// the timers are not ticked for a faulted frame.
func (r *Runner) Frame() error {
	if r.cfg.FrameLimit > 0 && r.frames >= r.cfg.FrameLimit {
		return ErrFrameLimit
	}

	if r.keypad != nil {
		for key, pressed := range r.keypad.PollKeys() {
			if err := r.machine.SetKey(byte(key), pressed); err != nil {
				return fmt.Errorf("setting key state: %w", err)
			}
		}
	}

	for range r.cfg.CyclesPerFrame {
		effects, err := r.engine.Step()
		if err != nil {
			r.setTone(false)
			return fmt.Errorf("executing frame %d: %w", r.frames, err)
		}
		if effects.Has(chip8.EffectRedraw) {
			r.redraw = true
		}
	}

	r.machine.TickTimers()
	r.setTone(r.machine.SoundTimer() > 0)

	if r.redraw && r.display != nil {
		if err := r.display.Render(r.machine.Framebuffer()); err != nil {
			return fmt.Errorf("rendering frame: %w", err)
		}
		r.redraw = false
	}

	r.frames++
	return nil
}

// Run calls Frame at the frame rate until the context is cancelled, the frame limit
// is reached or an error occurs. Reaching the frame limit is not an error.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(FrameDuration)
	defer ticker.Stop()

	defer r.setTone(false)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := r.Frame()
		switch {
		case errors.Is(err, ErrFrameLimit):
			r.logger.Debug("Frame limit reached", log.Int("frames", r.frames))
			return nil
		case err != nil:
			return err
		}

		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}
}

// setTone updates the beeper only on state changes.
func (r *Runner) setTone(active bool) {
	if r.beeper == nil || active == r.toneState {
		return
	}
	r.toneState = active
	r.beeper.SetActive(active)
}
