// Package options contains the program options.
package options

// Frontend names.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

// Default option values.
const (
	DefaultCyclesPerFrame = 1
	DefaultScale          = 10
	DefaultToneFrequency  = 440
)

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input ROM file"`
}

// Flags contains behavior options.
type Flags struct {
	Frontend       string `flag:"f" usage:"frontend: window, terminal, headless" default:"window"`
	CyclesPerFrame int    `flag:"ipf" usage:"instructions executed per 60 Hz frame" default:"1"`
	Frames         int    `flag:"frames" usage:"stop after this many frames, 0 runs until interrupted"`
	Seed           uint64 `flag:"seed" usage:"random generator seed, 0 seeds from the current time"`
	Debug          bool   `flag:"debug" usage:"enable debug logging and instruction tracing"`
	Quiet          bool   `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains video and audio output options.
type OutputFlags struct {
	Scale         int  `flag:"scale" usage:"window scale factor" default:"10"`
	ToneFrequency int  `flag:"tone" usage:"sound timer tone frequency in Hz" default:"440"`
	Mute          bool `flag:"mute" usage:"disable the sound timer tone"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	OutputFlags
}
