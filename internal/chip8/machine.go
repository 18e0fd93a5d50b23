package chip8

import "fmt"

// CHIP-8 memory layout and machine dimensions.
//
//	0x000-0x04F: hex font
//	0x050-0x1FF: reserved interpreter area
//	0x200-0xFFF: program space
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096

	// MaxAddress is the highest valid memory address.
	MaxAddress = MemorySize - 1

	// ProgramStart is the address where programs are loaded and execution begins.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	RegisterCount = 16
	StackSize     = 16
	KeyCount      = 16

	// FlagRegister is the index of VF, which reports carry, borrow and collisions.
	FlagRegister = 0xF

	ScreenWidth  = 64
	ScreenHeight = 32

	// FramebufferSize is the size of the packed framebuffer, 8 pixels per byte.
	FramebufferSize = ScreenWidth * ScreenHeight / 8
)

// Machine contains the complete state of a CHIP-8 virtual machine.
// It performs no validation of instructions, that is the job of the Engine.
type Machine struct {
	memory [MemorySize]byte
	v      [RegisterCount]byte
	i      uint16
	pc     uint16
	stack  [StackSize]uint16
	sp     uint8

	delayTimer byte
	soundTimer byte

	framebuffer [FramebufferSize]byte
	keys        [KeyCount]bool
}

// New returns a new machine in its power-on state.
func New() *Machine {
	m := &Machine{}
	m.Reset()
	return m
}

// Reset zeroes all registers, memory, the stack, timers, the framebuffer and the key
// states, copies the font to the start of memory and sets PC to ProgramStart.
// A previously loaded program is removed.
func (m *Machine) Reset() {
	*m = Machine{}
	copy(m.memory[:], font[:])
	m.pc = ProgramStart
}

// Load copies the program into memory starting at ProgramStart.
func (m *Machine) Load(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%d bytes exceed the maximum of %d bytes: %w",
			len(program), MaxProgramSize, ErrProgramTooLarge)
	}
	copy(m.memory[ProgramStart:], program)
	return nil
}

// SetKey sets the pressed state of the hex key 0x0-0xF.
func (m *Machine) SetKey(key byte, pressed bool) error {
	if int(key) >= KeyCount {
		return fmt.Errorf("key $%02X: %w", key, ErrInvalidKey)
	}
	m.keys[key] = pressed
	return nil
}

// Key returns whether the hex key 0x0-0xF is pressed.
func (m *Machine) Key(key byte) bool {
	return m.keys[key&0x0F]
}

// ReleaseKeys clears the pressed state of all keys.
func (m *Machine) ReleaseKeys() {
	m.keys = [KeyCount]bool{}
}

// TickTimers decrements the delay and sound timers by one, stopping at zero.
// It is called by the host at 60 Hz, between engine cycles.
func (m *Machine) TickTimers() {
	if m.delayTimer > 0 {
		m.delayTimer--
	}
	if m.soundTimer > 0 {
		m.soundTimer--
	}
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// I returns the index register.
func (m *Machine) I() uint16 {
	return m.i
}

// SP returns the stack pointer, the number of return addresses on the stack.
func (m *Machine) SP() uint8 {
	return m.sp
}

// Register returns the value of register Vn.
func (m *Machine) Register(n byte) byte {
	return m.v[n&0x0F]
}

// Registers returns a copy of the register file.
func (m *Machine) Registers() [RegisterCount]byte {
	return m.v
}

func (m *Machine) DelayTimer() byte {
	return m.delayTimer
}

func (m *Machine) SoundTimer() byte {
	return m.soundTimer
}

// ReadMemory returns the byte at the given address, addresses wrap at MemorySize.
func (m *Machine) ReadMemory(address uint16) byte {
	return m.memory[address&MaxAddress]
}

// Framebuffer returns a copy of the packed framebuffer. Pixels are stored row-major,
// 8 pixels per byte with the leftmost pixel in the most significant bit.
func (m *Machine) Framebuffer() [FramebufferSize]byte {
	return m.framebuffer
}

// Pixel returns whether the pixel at the given coordinates is lit.
// Coordinates wrap around the screen edges.
func (m *Machine) Pixel(x, y int) bool {
	index, mask := pixelPosition(x, y)
	return m.framebuffer[index]&mask != 0
}

// togglePixel flips the pixel at the given coordinates and returns whether it was lit
// before the toggle.
func (m *Machine) togglePixel(x, y int) bool {
	index, mask := pixelPosition(x, y)
	lit := m.framebuffer[index]&mask != 0
	m.framebuffer[index] ^= mask
	return lit
}

func (m *Machine) clearScreen() {
	m.framebuffer = [FramebufferSize]byte{}
}

// pixelPosition returns the framebuffer byte index and bit mask of a pixel.
func pixelPosition(x, y int) (int, byte) {
	x = ((x % ScreenWidth) + ScreenWidth) % ScreenWidth
	y = ((y % ScreenHeight) + ScreenHeight) % ScreenHeight
	offset := y*ScreenWidth + x
	return offset / 8, 0x80 >> (offset % 8)
}
