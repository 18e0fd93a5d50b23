package chip8

import "errors"

// Errors returned by the engine and the machine. Engine errors are wrapped with the
// program counter and opcode of the faulting instruction, use errors.Is to match them.
var (
	ErrAddressOutOfRange = errors.New("address out of range")
	ErrReadOnlyAddress   = errors.New("write to read-only font memory")
	ErrStackOverflow     = errors.New("stack overflow")
	ErrStackUnderflow    = errors.New("stack underflow")
	ErrUnknownOpcode     = errors.New("unknown opcode")
	ErrProgramTooLarge   = errors.New("program too large")
	ErrInvalidKey        = errors.New("invalid key")
)
