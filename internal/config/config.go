// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateEngine creates the execution engine for the machine, using a seeded random
// source and instruction tracing in debug mode.
func CreateEngine(logger *log.Logger, machine *chip8.Machine, opts options.Program) *chip8.Engine {
	return chip8.NewEngine(logger, machine,
		chip8.WithRandom(chip8.NewRandom(opts.Seed)),
		chip8.WithTrace(opts.Debug),
	)
}

// CreateRunnerConfig converts the program options to the frame loop configuration.
func CreateRunnerConfig(opts options.Program) host.Config {
	return host.Config{
		CyclesPerFrame: opts.CyclesPerFrame,
		FrameLimit:     opts.Frames,
	}
}
