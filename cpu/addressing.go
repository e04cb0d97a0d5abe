package cpu

// Mode is a tagged addressing mode, one of the thirteen the 6502 supports.
// Operand arity lives on the mode (via operandBytes below), not inferred
// from an instruction function's signature -- the 6502's own silicon fixes
// arity per mode, and this is the language-neutral way to express that
// (spec §9).
type Mode int

const (
	Implied Mode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect // JMP only
	IndirectX
	IndirectY
	Relative
)

// operandBytes gives the number of bytes each mode consumes after the
// opcode byte itself (spec §4.2).
var operandBytes = map[Mode]int{
	Implied:     0,
	Accumulator: 0,
	Immediate:   1,
	ZeroPage:    1,
	ZeroPageX:   1,
	ZeroPageY:   1,
	Absolute:    2,
	AbsoluteX:   2,
	AbsoluteY:   2,
	Indirect:    2,
	IndirectX:   1,
	IndirectY:   1,
	Relative:    1,
}

// fetchByte reads the byte at PC and advances PC by one.
func (c *CPU) fetchByte() byte {
	b := c.Bus.Read8(c.PC)
	c.PC++
	return b
}

// decode consumes the operand bytes for mode and sets c.effAddr to the
// resulting effective address (or, for Accumulator/Implied, leaves it
// unused). It never reads the operand's value itself -- that is
// loadOperand's job -- so that store instructions (STA/STX/STY) never
// perform the read their addressing mode would otherwise imply (spec §4.2).
func (c *CPU) decode(mode Mode) {
	switch mode {
	case Implied, Accumulator:
		// no operand bytes

	case Immediate:
		c.effAddr = c.PC
		c.PC++

	case ZeroPage:
		zp := c.fetchByte()
		c.effAddr = uint16(zp)

	case ZeroPageX:
		zp := c.fetchByte()
		c.effAddr = uint16((zp + c.X) & 0xFF)

	case ZeroPageY:
		zp := c.fetchByte()
		c.effAddr = uint16((zp + c.Y) & 0xFF)

	case Absolute:
		lo := c.fetchByte()
		hi := c.fetchByte()
		c.effAddr = uint16(hi)<<8 | uint16(lo)

	case AbsoluteX:
		lo := c.fetchByte()
		hi := c.fetchByte()
		base := uint16(hi)<<8 | uint16(lo)
		c.effAddr = base + uint16(c.X) // 16-bit add, may wrap at 0xFFFF

	case AbsoluteY:
		lo := c.fetchByte()
		hi := c.fetchByte()
		base := uint16(hi)<<8 | uint16(lo)
		c.effAddr = base + uint16(c.Y)

	case Indirect:
		lo := c.fetchByte()
		hi := c.fetchByte()
		ptr := uint16(hi)<<8 | uint16(lo)
		// the 6502's page-wrap bug (ptr low byte 0xFF reads the high
		// byte from ptr&0xFF00 instead of ptr+1) is explicitly optional
		// to reproduce (spec §9.6); this implementation does not.
		target := uint16(c.Bus.Read8(ptr))
		target |= uint16(c.Bus.Read8(ptr+1)) << 8
		c.effAddr = target

	case IndirectX:
		zp := c.fetchByte()
		ptr := (zp + c.X) & 0xFF
		lo := c.Bus.Read8(uint16(ptr))
		hi := c.Bus.Read8(uint16((ptr + 1) & 0xFF))
		c.effAddr = uint16(hi)<<8 | uint16(lo)

	case IndirectY:
		zp := c.fetchByte()
		lo := c.Bus.Read8(uint16(zp))
		hi := c.Bus.Read8(uint16((zp + 1) & 0xFF))
		base := uint16(hi)<<8 | uint16(lo)
		c.effAddr = base + uint16(c.Y)

	case Relative:
		offset := int8(c.fetchByte())
		// offset is added to PC as it stands after the operand fetch
		c.effAddr = uint16(int32(c.PC) + int32(offset))
	}
}
