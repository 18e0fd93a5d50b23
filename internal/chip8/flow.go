package chip8

import "fmt"

// system handles the 0x0 group: CLS and RET. 0nnn machine code calls are not supported.
func system(e *Engine, op Opcode) (Effects, error) {
	switch op {
	case 0x00E0:
		e.m.clearScreen()
		e.advance()
		return EffectRedraw, nil
	case 0x00EE:
		return 0, e.ret()
	default:
		return 0, ErrUnknownOpcode
	}
}

// ret pops the return address from the stack into PC.
func (e *Engine) ret() error {
	if e.m.sp == 0 {
		return ErrStackUnderflow
	}
	e.m.sp--
	e.m.pc = e.m.stack[e.m.sp]
	return nil
}

// jump handles 1nnn: PC = nnn.
func jump(e *Engine, op Opcode) (Effects, error) {
	e.m.pc = op.NNN()
	return 0, nil
}

// call handles 2nnn: push the address of the next instruction and jump to nnn.
func call(e *Engine, op Opcode) (Effects, error) {
	if int(e.m.sp) >= StackSize {
		return 0, ErrStackOverflow
	}
	e.m.stack[e.m.sp] = e.m.pc + opcodeSize
	e.m.sp++
	e.m.pc = op.NNN()
	return 0, nil
}

// jumpOffset handles Bnnn: PC = nnn + V0.
func jumpOffset(e *Engine, op Opcode) (Effects, error) {
	target := op.NNN() + uint16(e.m.v[0])
	if target > MaxAddress {
		return 0, fmt.Errorf("jump target $%04X: %w", target, ErrAddressOutOfRange)
	}
	e.m.pc = target
	return 0, nil
}

// skipEqualImmediate handles 3xkk.
func skipEqualImmediate(e *Engine, op Opcode) (Effects, error) {
	e.skipIf(e.m.v[op.X()] == op.KK())
	return 0, nil
}

// skipNotEqualImmediate handles 4xkk.
func skipNotEqualImmediate(e *Engine, op Opcode) (Effects, error) {
	e.skipIf(e.m.v[op.X()] != op.KK())
	return 0, nil
}

// skipEqualRegister handles 5xy0.
func skipEqualRegister(e *Engine, op Opcode) (Effects, error) {
	e.skipIf(e.m.v[op.X()] == e.m.v[op.Y()])
	return 0, nil
}

// skipNotEqualRegister handles 9xy0.
func skipNotEqualRegister(e *Engine, op Opcode) (Effects, error) {
	e.skipIf(e.m.v[op.X()] != e.m.v[op.Y()])
	return 0, nil
}
