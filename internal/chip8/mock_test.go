package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/log"
)

// fixedRandom returns a fixed sequence of values, repeating it when exhausted.
type fixedRandom struct {
	values []uint32
	index  int
}

func (r *fixedRandom) Uint32() uint32 {
	v := r.values[r.index%len(r.values)]
	r.index++
	return v
}

// newTestEngine returns an engine with the given instruction words loaded at
// ProgramStart and a random source that always returns 0xFF.
func newTestEngine(t *testing.T, program ...uint16) (*Engine, *Machine) {
	t.Helper()

	data := make([]byte, 0, len(program)*opcodeSize)
	for _, w := range program {
		data = append(data, byte(w>>8), byte(w))
	}

	m := New()
	if err := m.Load(data); err != nil {
		t.Fatalf("loading program: %v", err)
	}

	e := NewEngine(log.NewTestLogger(t), m,
		WithRandom(&fixedRandom{values: []uint32{0xFF}}),
		WithTrace(true))
	return e, m
}

// step executes one instruction and fails the test on error.
func step(t *testing.T, e *Engine) Effects {
	t.Helper()

	effects, err := e.Step()
	if err != nil {
		t.Fatalf("unexpected step error: %v", err)
	}
	return effects
}
