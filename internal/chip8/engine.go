package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Effects reports observable side effects of executed instructions to the host.
type Effects uint8

const (
	// EffectRedraw signals that the framebuffer changed and needs to be presented.
	EffectRedraw Effects = 1 << iota
	// EffectSound signals that the sound timer is active.
	EffectSound
)

// Has returns whether all effects of f are set.
func (e Effects) Has(f Effects) bool {
	return e&f == f
}

// handler executes a decoded instruction. Handlers validate their operands before
// mutating any state and are responsible for updating PC.
type handler func(e *Engine, op Opcode) (Effects, error)

// Option configures an Engine.
type Option func(*Engine)

// WithRandom sets the random source used by the RND instruction.
func WithRandom(rng RandomSource) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithTrace enables debug logging of every executed instruction.
func WithTrace(enabled bool) Option {
	return func(e *Engine) {
		e.trace = enabled
	}
}

// Engine executes instructions on a Machine, one per Step.
type Engine struct {
	logger *log.Logger
	m      *Machine
	rng    RandomSource
	trace  bool
	fault  error
	cycles uint64
}

// NewEngine returns a new execution engine for the given machine.
// Without WithRandom the random source is seeded from the current time.
func NewEngine(logger *log.Logger, machine *Machine, options ...Option) *Engine {
	e := &Engine{
		logger: logger,
		m:      machine,
	}
	for _, opt := range options {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewRandom(0)
	}
	return e
}

// Machine returns the machine the engine executes on.
func (e *Engine) Machine() *Machine {
	return e.m
}

// Fault returns the error that halted the engine, or nil if it is running.
func (e *Engine) Fault() error {
	return e.fault
}

// Cycles returns the number of successfully executed instructions since the last reset.
func (e *Engine) Cycles() uint64 {
	return e.cycles
}

// Reset resets the machine to its power-on state and clears a latched fault.
func (e *Engine) Reset() {
	e.m.Reset()
	e.fault = nil
	e.cycles = 0
}

// Step executes a single instruction at PC.
// Once an instruction faulted, Step returns the same error until Reset is called.
func (e *Engine) Step() (Effects, error) {
	if e.fault != nil {
		return 0, e.fault
	}

	pc := e.m.pc
	op, err := e.m.fetch(pc)
	if err != nil {
		return e.halt(err)
	}

	if e.trace {
		e.logger.Debug("Executing instruction",
			log.Hex("pc", pc),
			log.String("opcode", op.String()),
			log.String("instruction", op.Mnemonic()))
	}

	effects, err := categoryHandlers[op.Category()](e, op)
	if err != nil {
		return e.halt(fmt.Errorf("executing %s at $%04X: %w", describe(op), pc, err))
	}

	e.cycles++
	if e.m.soundTimer > 0 {
		effects |= EffectSound
	}
	return effects, nil
}

// halt latches the fault that stops the engine.
func (e *Engine) halt(err error) (Effects, error) {
	e.fault = err
	return 0, err
}

// advance moves PC to the next instruction.
func (e *Engine) advance() {
	e.m.pc += opcodeSize
}

// skipIf advances PC to the next instruction, skipping it if the condition is true.
func (e *Engine) skipIf(condition bool) {
	e.advance()
	if condition {
		e.advance()
	}
}

// describe returns the opcode with its mnemonic for error messages.
func describe(op Opcode) string {
	if name := op.Mnemonic(); name != "" {
		return fmt.Sprintf("opcode %s (%s)", op, name)
	}
	return "opcode " + op.String()
}

func unknownOpcode(_ *Engine, _ Opcode) (Effects, error) {
	return 0, ErrUnknownOpcode
}

// categoryHandlers maps the top nibble of an opcode to its handler.
var categoryHandlers = [16]handler{
	0x0: system,
	0x1: jump,
	0x2: call,
	0x3: skipEqualImmediate,
	0x4: skipNotEqualImmediate,
	0x5: skipEqualRegister,
	0x6: loadImmediate,
	0x7: addImmediate,
	0x8: arithmetic,
	0x9: skipNotEqualRegister,
	0xA: loadIndex,
	0xB: jumpOffset,
	0xC: random,
	0xD: draw,
	0xE: keySkip,
	0xF: misc,
}

// arithmeticHandlers maps the low nibble of 8xyn opcodes to its handler.
var arithmeticHandlers = [16]handler{
	0x0: move,
	0x1: or,
	0x2: and,
	0x3: xor,
	0x4: addRegister,
	0x5: subtract,
	0x6: shiftRight,
	0x7: subtractReverse,
	0x8: unknownOpcode,
	0x9: unknownOpcode,
	0xA: unknownOpcode,
	0xB: unknownOpcode,
	0xC: unknownOpcode,
	0xD: unknownOpcode,
	0xE: shiftLeft,
	0xF: unknownOpcode,
}

// keyHandlers maps the low byte of Exkk opcodes to its handler.
var keyHandlers = map[uint8]handler{
	0x9E: skipKeyPressed,
	0xA1: skipKeyNotPressed,
}

// miscHandlers maps the low byte of Fxkk opcodes to its handler.
var miscHandlers = map[uint8]handler{
	0x07: loadDelayTimer,
	0x0A: waitKey,
	0x15: setDelayTimer,
	0x18: setSoundTimer,
	0x1E: addIndex,
	0x29: loadFontAddress,
	0x33: storeBCD,
	0x55: storeRegisters,
	0x65: loadRegisters,
}

func arithmetic(e *Engine, op Opcode) (Effects, error) {
	return arithmeticHandlers[op.N()](e, op)
}

func keySkip(e *Engine, op Opcode) (Effects, error) {
	h, ok := keyHandlers[op.KK()]
	if !ok {
		return 0, ErrUnknownOpcode
	}
	return h(e, op)
}

func misc(e *Engine, op Opcode) (Effects, error) {
	h, ok := miscHandlers[op.KK()]
	if !ok {
		return 0, ErrUnknownOpcode
	}
	return h(e, op)
}
