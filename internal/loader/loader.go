// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// Loader handles loading ROM files from disk into a machine.
type Loader struct {
	logger *log.Logger
}

// New creates a new ROM loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads the raw ROM file and copies it into the machine memory at the program
// start address. CHIP-8 ROMs have no header, the whole file is program data.
func (l *Loader) Load(path string, machine *chip8.Machine) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, chip8.MaxProgramSize+1))
	if err != nil {
		return fmt.Errorf("reading ROM: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("ROM file %s is empty", path)
	}

	if err := machine.Load(data); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	l.logger.Debug("Loaded ROM",
		log.String("file", path),
		log.Int("size", len(data)),
		log.Hex("crc32", crc32.ChecksumIEEE(data)))
	return nil
}
