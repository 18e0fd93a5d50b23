package chip8

// spriteWidth is the width of a sprite row in pixels.
const spriteWidth = 8

// draw handles Dxyn: XORs the n byte sprite at I onto the screen at (Vx, Vy).
// Every pixel wraps around the screen edges on its own. VF is set if any lit pixel
// was turned off.
func draw(e *Engine, op Opcode) (Effects, error) {
	height := int(op.N())
	if err := checkRead(e.m.i, height); err != nil {
		return 0, err
	}

	originX := int(e.m.v[op.X()]) % ScreenWidth
	originY := int(e.m.v[op.Y()]) % ScreenHeight
	collision := false

	for row := range height {
		line := e.m.memory[int(e.m.i)+row]
		for col := range spriteWidth {
			if line&(0x80>>col) == 0 {
				continue
			}
			if e.m.togglePixel(originX+col, originY+row) {
				collision = true
			}
		}
	}

	e.setFlag(collision)
	e.advance()
	return EffectRedraw, nil
}
