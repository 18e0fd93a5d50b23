// Package emulator wires the machine, the engine and the selected frontend together.
package emulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/video"
	"github.com/retroenv/retrochip8/internal/window"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// Run loads the ROM of the options and runs it with the selected frontend until the
// user quits, the context is cancelled, the frame limit is reached or the engine
// faults.
func Run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	machine := chip8.New()
	if err := loader.New(logger).Load(opts.Input, machine); err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	engine := config.CreateEngine(logger, machine, opts)
	runner := host.NewRunner(logger, engine, config.CreateRunnerConfig(opts))

	if beeper := createBeeper(logger, opts); beeper != nil {
		runner.SetBeeper(beeper)
		defer func() { _ = beeper.Close() }()
	}

	logger.Info("Running ROM",
		log.String("file", opts.Input),
		log.String("frontend", opts.Frontend),
		log.Int("instructions_per_frame", opts.CyclesPerFrame))

	var err error
	switch opts.Frontend {
	case options.FrontendWindow:
		err = window.New(ctx, logger, runner, "retrochip8 - "+opts.Input, opts.Scale).Run()
	case options.FrontendTerminal:
		err = runTerminal(ctx, logger, runner)
	default:
		err = runHeadless(ctx, logger, engine, runner, os.Stdout)
	}

	logger.Debug("Emulation stopped",
		log.Int("frames", runner.Frames()),
		log.Int("instructions", int(engine.Cycles())))
	return err
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))
}

// createBeeper opens the audio output. A missing audio device is not fatal, the
// emulation continues silently.
func createBeeper(logger *log.Logger, opts options.Program) *audio.Beeper {
	if opts.Mute || opts.Frontend == options.FrontendHeadless {
		return nil
	}

	beeper, err := audio.NewBeeper(opts.ToneFrequency)
	if err != nil {
		logger.Warn("Audio output not available", log.Err(err))
		return nil
	}
	return beeper
}

func runTerminal(ctx context.Context, logger *log.Logger, runner *host.Runner) error {
	terminal := video.NewTerminal(logger, os.Stdout)
	defer func() {
		if err := terminal.Close(); err != nil {
			logger.Error("Restoring terminal failed", log.Err(err))
		}
	}()

	if err := terminal.StartInput(os.Stdin); err != nil {
		return fmt.Errorf("starting terminal input: %w", err)
	}
	runner.SetKeypad(terminal)
	runner.SetDisplay(terminal)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-terminal.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	err := runner.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// runHeadless runs without input and writes the final frame as text to out.
func runHeadless(ctx context.Context, logger *log.Logger, engine *chip8.Engine,
	runner *host.Runner, out io.Writer) error {

	err := runner.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("Emulation cancelled")
		err = nil
	}

	framebuffer := engine.Machine().Framebuffer()
	if renderErr := video.NewTextWriter(logger, out).Render(framebuffer); renderErr != nil && err == nil {
		err = renderErr
	}
	return err
}
