package chip8

import (
	"fmt"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// Opcode is a 16-bit CHIP-8 instruction word.
//
//	category: bits 15-12
//	x:        bits 11-8
//	y:        bits 7-4
//	n:        bits 3-0
//	kk:       bits 7-0
//	nnn:      bits 11-0
type Opcode uint16

// Category returns the top nibble that selects the instruction group.
func (o Opcode) Category() uint8 {
	return uint8(o >> 12)
}

// X returns the first register operand.
func (o Opcode) X() uint8 {
	return uint8(o>>8) & 0x0F
}

// Y returns the second register operand.
func (o Opcode) Y() uint8 {
	return uint8(o>>4) & 0x0F
}

// N returns the low nibble.
func (o Opcode) N() uint8 {
	return uint8(o) & 0x0F
}

// KK returns the low byte immediate value.
func (o Opcode) KK() uint8 {
	return uint8(o)
}

// NNN returns the 12-bit address.
func (o Opcode) NNN() uint16 {
	return uint16(o) & 0x0FFF
}

func (o Opcode) String() string {
	return fmt.Sprintf("%04X", uint16(o))
}

// Mnemonic returns the instruction name of the opcode as defined by the CHIP-8
// instruction table, or an empty string if the word does not match any instruction.
func (o Opcode) Mnemonic() string {
	w := uint16(o)
	for _, op := range chip8cpu.Opcodes[int(o.Category())] {
		if op.Info.Mask&w == op.Info.Value && op.Instruction != nil {
			return op.Instruction.Name
		}
	}
	return ""
}

// fetch reads the instruction word at the given address.
func (m *Machine) fetch(address uint16) (Opcode, error) {
	if int(address)+opcodeSize-1 > MaxAddress {
		return 0, fmt.Errorf("fetching opcode at $%04X: %w", address, ErrAddressOutOfRange)
	}
	return Opcode(uint16(m.memory[address])<<8 | uint16(m.memory[address+1])), nil
}
