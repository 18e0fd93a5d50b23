package chip8

import "fmt"

// checkRead verifies that length bytes starting at address are inside memory.
func checkRead(address uint16, length int) error {
	if length > 0 && int(address)+length-1 > MaxAddress {
		return fmt.Errorf("accessing %d bytes at $%04X: %w", length, address, ErrAddressOutOfRange)
	}
	return nil
}

// checkWrite verifies that length bytes starting at address are inside writable memory.
func checkWrite(address uint16, length int) error {
	if err := checkRead(address, length); err != nil {
		return err
	}
	if length > 0 && int(address) < fontEnd {
		return fmt.Errorf("writing %d bytes at $%04X: %w", length, address, ErrReadOnlyAddress)
	}
	return nil
}

// loadIndex handles Annn: I = nnn.
func loadIndex(e *Engine, op Opcode) (Effects, error) {
	e.m.i = op.NNN()
	e.advance()
	return 0, nil
}

// addIndex handles Fx1E: I += Vx without changing VF.
func addIndex(e *Engine, op Opcode) (Effects, error) {
	e.m.i += uint16(e.m.v[op.X()])
	e.advance()
	return 0, nil
}

// loadFontAddress handles Fx29: I = address of the font glyph for Vx.
func loadFontAddress(e *Engine, op Opcode) (Effects, error) {
	e.m.i = uint16(e.m.v[op.X()]) * FontGlyphSize
	e.advance()
	return 0, nil
}

// storeBCD handles Fx33: stores hundreds, tens and units of Vx at I, I+1 and I+2.
func storeBCD(e *Engine, op Opcode) (Effects, error) {
	if err := checkWrite(e.m.i, 3); err != nil {
		return 0, err
	}
	value := e.m.v[op.X()]
	e.m.memory[e.m.i] = value / 100
	e.m.memory[e.m.i+1] = value / 10 % 10
	e.m.memory[e.m.i+2] = value % 10
	e.advance()
	return 0, nil
}

// storeRegisters handles Fx55: copies V0..Vx to memory at I, then I += x+1.
func storeRegisters(e *Engine, op Opcode) (Effects, error) {
	count := int(op.X()) + 1
	if err := checkWrite(e.m.i, count); err != nil {
		return 0, err
	}
	copy(e.m.memory[e.m.i:], e.m.v[:count])
	e.m.i += uint16(count)
	e.advance()
	return 0, nil
}

// loadRegisters handles Fx65: copies memory at I to V0..Vx, then I += x+1.
func loadRegisters(e *Engine, op Opcode) (Effects, error) {
	count := int(op.X()) + 1
	if err := checkRead(e.m.i, count); err != nil {
		return 0, err
	}
	copy(e.m.v[:count], e.m.memory[e.m.i:])
	e.m.i += uint16(count)
	e.advance()
	return 0, nil
}

// loadDelayTimer handles Fx07: Vx = delay timer.
func loadDelayTimer(e *Engine, op Opcode) (Effects, error) {
	e.m.v[op.X()] = e.m.delayTimer
	e.advance()
	return 0, nil
}

// setDelayTimer handles Fx15: delay timer = Vx.
func setDelayTimer(e *Engine, op Opcode) (Effects, error) {
	e.m.delayTimer = e.m.v[op.X()]
	e.advance()
	return 0, nil
}

// setSoundTimer handles Fx18: sound timer = Vx.
func setSoundTimer(e *Engine, op Opcode) (Effects, error) {
	e.m.soundTimer = e.m.v[op.X()]
	e.advance()
	return 0, nil
}
