// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// maxCyclesPerFrame limits the emulation speed to a sane upper bound.
const maxCyclesPerFrame = 1000

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file to run>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file to run as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	if opts.Frontend == "tty" {
		opts.Frontend = options.FrontendTerminal
	}

	if err := validateFrontend(opts.Frontend); err != nil {
		return err
	}

	if opts.CyclesPerFrame < 1 || opts.CyclesPerFrame > maxCyclesPerFrame {
		return fmt.Errorf("invalid instructions per frame %d, valid range is 1-%d",
			opts.CyclesPerFrame, maxCyclesPerFrame)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("invalid scale %d, must be at least 1", opts.Scale)
	}
	if opts.Frames < 0 {
		return fmt.Errorf("invalid frame limit %d, must not be negative", opts.Frames)
	}
	if opts.ToneFrequency < 20 || opts.ToneFrequency > 20000 {
		return fmt.Errorf("invalid tone frequency %d Hz, valid range is 20-20000", opts.ToneFrequency)
	}
	return nil
}

func validateFrontend(frontend string) error {
	validFrontends := []string{options.FrontendWindow, options.FrontendTerminal, options.FrontendHeadless}
	for _, valid := range validFrontends {
		if frontend == valid {
			return nil
		}
	}

	return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
		frontend, strings.Join(validFrontends, ", "))
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Frontend, "f", options.FrontendWindow, "frontend to use (window/terminal/headless)")
	flags.IntVar(&opts.CyclesPerFrame, "ipf", options.DefaultCyclesPerFrame, "instructions executed per 60 Hz frame")
	flags.IntVar(&opts.Frames, "frames", 0, "stop after this many frames, 0 runs until interrupted")
	flags.Uint64Var(&opts.Seed, "seed", 0, "random generator seed, 0 seeds from the current time")
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "window scale factor")
	flags.IntVar(&opts.ToneFrequency, "tone", options.DefaultToneFrequency, "sound timer tone frequency in Hz")
	flags.BoolVar(&opts.Mute, "mute", false, "disable the sound timer tone")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging and instruction tracing")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
