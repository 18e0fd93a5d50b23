// Package chip8 implements the CHIP-8 virtual machine core.
//
// # Machine State
//
// Machine holds the canonical state of the virtual machine:
//   - 4KB of memory (0x000-MaxAddress), the hex font at 0x000-0x04F
//   - 16 general-purpose 8-bit registers V0-VF, VF doubles as flag register
//   - 16-bit index register I and program counter PC (starting at ProgramStart)
//   - a 16 entry call stack with its stack pointer
//   - delay and sound timers
//   - a packed 64x32 monochrome framebuffer
//   - the state of the 16 hex keys
//
// # Execution Engine
//
// Engine executes exactly one instruction per Step call. Every instruction word is
// split into its nibbles and dispatched through lookup tables keyed by the top nibble
// and, for the 0x8, 0xE and 0xF groups, by a sub-selector.
//
// Faults (out of range addresses, stack overflow or underflow, unknown opcodes) are
// fatal for the running program. A faulting instruction leaves the state unchanged and
// the engine returns the same error on every following Step until it is reset.
//
// # Usage Example
//
//	machine := chip8.New()
//	if err := machine.Load(rom); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	engine := chip8.NewEngine(logger, machine)
//
//	for {
//		effects, err := engine.Step()
//		if err != nil {
//			return err
//		}
//		if effects.Has(chip8.EffectRedraw) {
//			render(machine.Framebuffer())
//		}
//	}
//
// Timers are not decremented by the engine, the host calls Machine.TickTimers at 60 Hz.
package chip8
