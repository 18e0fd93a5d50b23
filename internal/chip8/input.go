package chip8

// Key indexes taken from a register use its low nibble.

// skipKeyPressed handles Ex9E: skip the next instruction if key Vx is pressed.
func skipKeyPressed(e *Engine, op Opcode) (Effects, error) {
	e.skipIf(e.m.Key(e.m.v[op.X()]))
	return 0, nil
}

// skipKeyNotPressed handles ExA1: skip the next instruction if key Vx is not pressed.
func skipKeyNotPressed(e *Engine, op Opcode) (Effects, error) {
	e.skipIf(!e.m.Key(e.m.v[op.X()]))
	return 0, nil
}

// waitKey handles Fx0A. While no key is pressed PC is not advanced, so the same
// instruction is fetched again on the next cycle. Otherwise Vx is set to the lowest
// pressed key.
func waitKey(e *Engine, op Opcode) (Effects, error) {
	for key, pressed := range e.m.keys {
		if pressed {
			e.m.v[op.X()] = byte(key)
			e.advance()
			return 0, nil
		}
	}
	return 0, nil
}
