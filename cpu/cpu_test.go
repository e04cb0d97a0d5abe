package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nsf6502/mem"
)

func newCPU() *CPU {
	return New(&mem.Bus{})
}

func loadProgram(c *CPU, addr uint16, bytes ...byte) {
	c.WriteBytes(bytes, addr)
	c.PC = addr
}

func TestCarryClearThenLoad(t *testing.T) {
	c := newCPU()
	loadProgram(c, 0x8000, 0x18, 0xA9, 0xFF) // CLC; LDA #$FF
	assert.NoError(t, c.Step())
	assert.NoError(t, c.Step())
	assert.Equal(t, byte(0xFF), c.A)
	assert.True(t, c.Flag(FlagNegative))
	assert.False(t, c.Flag(FlagZero))
	assert.False(t, c.Flag(FlagCarry))
}

func TestANDClearsNegative(t *testing.T) {
	c := newCPU()
	loadProgram(c, 0x8000, 0xA9, 0xAA, 0x29, 0x4C) // LDA #$AA; AND #$4C
	assert.NoError(t, c.Step())
	assert.NoError(t, c.Step())
	assert.Equal(t, byte(0x08), c.A)
	assert.False(t, c.Flag(FlagNegative))
	assert.False(t, c.Flag(FlagZero))
}

func TestIndexedIndirectLoad(t *testing.T) {
	c := newCPU()
	c.Write8(0x3032, 0xA5)
	c.Write8(0x0075, 0x32)
	c.Write8(0x0076, 0x30)
	loadProgram(c, 0x8000, 0xA2, 0x05, 0xA1, 0x70) // LDX #$05; LDA ($70,X)
	assert.NoError(t, c.Step())
	assert.NoError(t, c.Step())
	assert.Equal(t, byte(0xA5), c.A)
}

func TestIndirectYLoad(t *testing.T) {
	c := newCPU()
	c.Write8(0x3553, 0x23)
	c.Write8(0x0070, 0x43)
	c.Write8(0x0071, 0x35)
	loadProgram(c, 0x8000, 0xA0, 0x10, 0xB1, 0x70) // LDY #$10; LDA ($70),Y
	assert.NoError(t, c.Step())
	assert.NoError(t, c.Step())
	assert.Equal(t, byte(0x23), c.A)
}

func TestDecrementMemory(t *testing.T) {
	c := newCPU()
	loadProgram(c, 0x8000,
		0xA9, 0x42, // LDA #$42
		0x8D, 0x00, 0x06, // STA $0600
		0xCE, 0x00, 0x06, // DEC $0600
		0xAD, 0x00, 0x06, // LDA $0600
	)
	for range 4 {
		assert.NoError(t, c.Step())
	}
	assert.Equal(t, byte(0x41), c.A)
}

func TestDEXUnderflow(t *testing.T) {
	c := newCPU()
	loadProgram(c, 0x8000, 0xA2, 0x00, 0xCA) // LDX #$00; DEX
	assert.NoError(t, c.Step())
	assert.NoError(t, c.Step())
	assert.Equal(t, byte(0xFF), c.X)
	assert.True(t, c.Flag(FlagNegative))
	assert.False(t, c.Flag(FlagZero))
}

func TestIndirectJMP(t *testing.T) {
	c := newCPU()
	c.Write8(0x0042, 0x42)
	c.Write8(0x0043, 0x43)
	loadProgram(c, 0x8000, 0x6C, 0x42, 0x00) // JMP ($0042)
	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0x4342), c.PC)
}

func TestUnknownOpcode(t *testing.T) {
	c := newCPU()
	loadProgram(c, 0x8000, 0x02) // never a valid opcode
	err := c.Step()
	assert.Error(t, err)
	var unknown ErrUnknownOpcode
	assert.ErrorAs(t, err, &unknown)
	assert.Equal(t, byte(0x02), unknown.Opcode)
}

func TestCompareDoesNotMutateRegister(t *testing.T) {
	c := newCPU()
	c.Write8(0x0010, 0x05)
	loadProgram(c, 0x8000, 0xA9, 0x05, 0xC5, 0x10) // LDA #$05; CMP $10
	assert.NoError(t, c.Step())
	assert.NoError(t, c.Step())
	assert.Equal(t, byte(0x05), c.A) // unchanged by CMP
	assert.True(t, c.Flag(FlagZero))
	assert.True(t, c.Flag(FlagCarry))
}

func TestRoundTripLoadAndStore(t *testing.T) {
	for v := 0; v <= 0xFF; v++ {
		c := newCPU()
		loadProgram(c, 0x8000,
			0xA9, byte(v), // LDA #v
			0x85, 0x10, // STA $10
			0xA9, 0x00, // LDA #0
			0xA5, 0x10, // LDA $10
		)
		for range 4 {
			assert.NoError(t, c.Step())
		}
		assert.Equal(t, byte(v), c.A)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	c := newCPU()
	values := []byte{0x01, 0x02, 0x03, 0xFF, 0x80}
	for _, v := range values {
		c.push(v)
	}
	var popped []byte
	for range values {
		popped = append(popped, c.pop())
	}
	for i, v := range popped {
		assert.Equal(t, values[len(values)-1-i], v)
	}
}

func TestBranchOffsetArithmetic(t *testing.T) {
	c := newCPU()
	loadProgram(c, 0x8000, 0xA9, 0x00, 0xF0, 0x05) // LDA #$00; BEQ +5
	assert.NoError(t, c.Step())
	pcAfterOperand := c.PC + 2 // BEQ's own PC + its 2 bytes, before the step below
	assert.NoError(t, c.Step())
	assert.Equal(t, pcAfterOperand+5, c.PC)
}

func TestADCCarryAndOverflow(t *testing.T) {
	c := newCPU()
	loadProgram(c, 0x8000, 0xA9, 0x7F, 0x69, 0x01) // LDA #$7F; ADC #$01
	assert.NoError(t, c.Step())
	assert.NoError(t, c.Step())
	assert.Equal(t, byte(0x80), c.A)
	assert.True(t, c.Flag(FlagOverflow))
	assert.True(t, c.Flag(FlagNegative))
	assert.False(t, c.Flag(FlagCarry))
}

func TestInstructionCountIncrements(t *testing.T) {
	c := newCPU()
	loadProgram(c, 0x8000, 0xEA, 0xEA, 0xEA) // NOP x3
	for i := uint64(1); i <= 3; i++ {
		assert.NoError(t, c.Step())
		assert.Equal(t, i, c.InstructionCount())
	}
}

func TestSubscribeNotifiesInOrder(t *testing.T) {
	c := newCPU()
	loadProgram(c, 0x8000, 0xEA)
	var order []int
	c.Subscribe(func(Snapshot) { order = append(order, 1) })
	c.Subscribe(func(Snapshot) { order = append(order, 2) })
	assert.NoError(t, c.Step())
	assert.Equal(t, []int{1, 2}, order)
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	c := newCPU()
	loadProgram(c, 0x8000, 0xEA, 0xEA)
	calls := 0
	id := c.Subscribe(func(Snapshot) { calls++ })
	assert.NoError(t, c.Step())
	c.Unsubscribe(id)
	assert.NoError(t, c.Step())
	assert.Equal(t, 1, calls)
}

func TestZeroPageWrapsWithinPage(t *testing.T) {
	c := newCPU()
	c.Write8(0x0002, 0x99)
	c.X = 0xFF
	loadProgram(c, 0x8000, 0xB5, 0x03) // LDA $03,X -> (0x03+0xFF)&0xFF = 0x02
	assert.NoError(t, c.Step())
	assert.Equal(t, byte(0x99), c.A)
}

func TestThirtyProgram(t *testing.T) {
	// multiplies 10 by 3 via repeated addition, matching the teacher's
	// original smoke test program byte-for-byte.
	program := []byte{
		0xA2, 0x0A, 0x8E, 0x00, 0x00, 0xA2, 0x03, 0x8E,
		0x01, 0x00, 0xAC, 0x00, 0x00, 0xA9, 0x00, 0x18,
		0x6D, 0x01, 0x00, 0x88, 0xD0, 0xFA, 0x8D, 0x02,
		0x00, 0xEA, 0xEA, 0xEA,
	}
	c := newCPU()
	loadProgram(c, 0x8000, program...)

	for range 38 { // through the final STA $0002
		assert.NoError(t, c.Step())
	}

	assert.Equal(t, byte(10), c.Read8(0))
	assert.Equal(t, byte(3), c.Read8(1))
	assert.Equal(t, byte(30), c.Read8(2))
	assert.Equal(t, byte(30), c.A)
}

func TestDisassembleFormatsOperandsByMode(t *testing.T) {
	c := newCPU()
	loadProgram(c, 0x8000,
		0xA9, 0x05, // LDA #$05
		0xAD, 0x00, 0x60, // LDA $6000
		0x10, 0xFE, // BPL -2 (branch to self)
	)

	assert.Equal(t, "a9 05     LDA #$05", c.Disassemble(0x8000))
	assert.Equal(t, "ad 00 60  LDA $6000", c.Disassemble(0x8002))
	assert.Equal(t, "10 fe     BPL $8005", c.Disassemble(0x8005))
}

func TestDisassembleUnknownOpcodeRendersAsByte(t *testing.T) {
	c := newCPU()
	loadProgram(c, 0x8000, 0x02) // not an official opcode
	assert.Equal(t, "02        .byte $02", c.Disassemble(0x8000))
}

func TestInstructionWidthMatchesEncodedOperandSize(t *testing.T) {
	c := newCPU()
	loadProgram(c, 0x8000, 0xA9, 0x05, 0xAD, 0x00, 0x60)
	assert.Equal(t, uint16(2), c.InstructionWidth(0x8000))
	assert.Equal(t, uint16(3), c.InstructionWidth(0x8002))
}
