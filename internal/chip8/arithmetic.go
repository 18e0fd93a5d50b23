package chip8

// The flag producing instructions write VF after Vx, so that VF always holds the flag
// even when x is F.

func loadImmediate(e *Engine, op Opcode) (Effects, error) {
	e.m.v[op.X()] = op.KK()
	e.advance()
	return 0, nil
}

// addImmediate wraps around without touching VF.
func addImmediate(e *Engine, op Opcode) (Effects, error) {
	e.m.v[op.X()] += op.KK()
	e.advance()
	return 0, nil
}

func move(e *Engine, op Opcode) (Effects, error) {
	e.m.v[op.X()] = e.m.v[op.Y()]
	e.advance()
	return 0, nil
}

func or(e *Engine, op Opcode) (Effects, error) {
	e.m.v[op.X()] |= e.m.v[op.Y()]
	e.advance()
	return 0, nil
}

func and(e *Engine, op Opcode) (Effects, error) {
	e.m.v[op.X()] &= e.m.v[op.Y()]
	e.advance()
	return 0, nil
}

func xor(e *Engine, op Opcode) (Effects, error) {
	e.m.v[op.X()] ^= e.m.v[op.Y()]
	e.advance()
	return 0, nil
}

// addRegister handles 8xy4, VF is set on carry.
func addRegister(e *Engine, op Opcode) (Effects, error) {
	sum := uint16(e.m.v[op.X()]) + uint16(e.m.v[op.Y()])
	e.setWithFlag(op.X(), byte(sum), sum > 0xFF)
	return 0, nil
}

// subtract handles 8xy5, VF is set when no borrow occurs.
func subtract(e *Engine, op Opcode) (Effects, error) {
	vx, vy := e.m.v[op.X()], e.m.v[op.Y()]
	e.setWithFlag(op.X(), vx-vy, vx >= vy)
	return 0, nil
}

// subtractReverse handles 8xy7, VF is set when no borrow occurs.
func subtractReverse(e *Engine, op Opcode) (Effects, error) {
	vx, vy := e.m.v[op.X()], e.m.v[op.Y()]
	e.setWithFlag(op.X(), vy-vx, vy >= vx)
	return 0, nil
}

// shiftRight handles 8xy6: Vx = Vy >> 1, VF is the shifted out bit.
func shiftRight(e *Engine, op Opcode) (Effects, error) {
	vy := e.m.v[op.Y()]
	e.setWithFlag(op.X(), vy>>1, vy&0x01 != 0)
	return 0, nil
}

// shiftLeft handles 8xyE: Vx = Vy << 1, VF is the shifted out bit.
func shiftLeft(e *Engine, op Opcode) (Effects, error) {
	vy := e.m.v[op.Y()]
	e.setWithFlag(op.X(), vy<<1, vy&0x80 != 0)
	return 0, nil
}

// random handles Cxkk: Vx = random byte AND kk.
func random(e *Engine, op Opcode) (Effects, error) {
	e.m.v[op.X()] = byte(e.rng.Uint32()) & op.KK()
	e.advance()
	return 0, nil
}

// setWithFlag stores the result in Vx, then the flag in VF, and advances PC.
func (e *Engine) setWithFlag(x uint8, result byte, flag bool) {
	e.m.v[x] = result
	e.setFlag(flag)
	e.advance()
}

func (e *Engine) setFlag(flag bool) {
	if flag {
		e.m.v[FlagRegister] = 1
	} else {
		e.m.v[FlagRegister] = 0
	}
}
