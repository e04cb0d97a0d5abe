// Package cpu implements the MOS Technology 6502 microprocessor, as used in
// the NES, to the extent required to run an NSF's init/play routines:
// official opcodes only, no cycle accounting, no decimal-mode arithmetic.
package cpu

import (
	"fmt"

	"nsf6502/mem"
)

// CPU is the sole owning aggregate of 6502 register state. It has no memory
// of its own; it reads and writes through a *mem.Bus.
type CPU struct {
	Bus *mem.Bus

	PC uint16
	A  byte
	X  byte
	Y  byte
	SP byte // absolute stack address is 0x0100 | SP
	SR byte // NV-BDIZC

	instructionCount uint64

	// decode state, set by decode() and consumed by the Exec func of the
	// dispatched opcode
	mode    Mode
	effAddr uint16

	observers      map[int]func(Snapshot)
	nextObserverID int
}

// Snapshot is a point-in-time copy of the register file, handed to
// observers and to callers inspecting the CPU between steps.
type Snapshot struct {
	PC uint16
	A  byte
	X  byte
	Y  byte
	SP byte
	SR byte
}

// New returns a CPU wired to bus with every register zeroed except SP, which
// powers up at 0xFF (spec §4.1).
func New(bus *mem.Bus) *CPU {
	return &CPU{
		Bus:       bus,
		SP:        0xFF,
		observers: make(map[int]func(Snapshot)),
	}
}

// Registers returns a snapshot of PC, A, X, Y, SR, SP.
func (c *CPU) Registers() Snapshot {
	return Snapshot{PC: c.PC, A: c.A, X: c.X, Y: c.Y, SP: c.SP, SR: c.SR}
}

// InstructionCount returns the number of instructions executed so far.
func (c *CPU) InstructionCount() uint64 {
	return c.instructionCount
}

// Read8 reads one byte from the bus.
func (c *CPU) Read8(addr uint16) byte {
	return c.Bus.Read8(addr)
}

// Write8 writes one byte to the bus.
func (c *CPU) Write8(addr uint16, v byte) {
	c.Bus.Write8(addr, v)
}

// Fill delegates to the bus; exposed on CPU so callers priming memory don't
// need to reach through to Bus directly.
func (c *CPU) Fill(start, end uint16, v byte) {
	c.Bus.Fill(start, end, v)
}

// WriteBytes delegates to the bus.
func (c *CPU) WriteBytes(data []byte, dest uint16) {
	c.Bus.WriteBytes(data, dest)
}

// push writes v to the stack page at the current SP, then decrements SP,
// wrapping modulo 256.
func (c *CPU) push(v byte) {
	c.Bus.Write8(0x0100|uint16(c.SP), v)
	c.SP--
}

// pop increments SP (wrapping modulo 256), then returns the byte now under
// it.
func (c *CPU) pop() byte {
	c.SP++
	return c.Bus.Read8(0x0100 | uint16(c.SP))
}

// pushWord pushes a 16-bit value high byte first, matching JSR/BRK's stack
// layout (so the matching pop sequence is popWord, which pulls low then
// high).
func (c *CPU) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU) popWord() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

// ErrUnknownOpcode is returned by Step when the fetched byte has no entry in
// the dispatch table. The core treats this as an unrecoverable fault: it
// does not guess, and does not silently continue (spec §7).
type ErrUnknownOpcode struct {
	Opcode byte
	PC     uint16
}

func (e ErrUnknownOpcode) Error() string {
	return fmt.Sprintf("cpu: unknown opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// Step fetches the opcode at PC, consumes its operand bytes per its
// addressing mode, executes it, applies its flag updates, and advances
// InstructionCount by one. It returns ErrUnknownOpcode if the fetched byte
// has no dispatch entry; in that case PC has already been advanced past the
// opcode byte but no operand bytes were consumed and no registers changed.
func (c *CPU) Step() error {
	op := c.Bus.Read8(c.PC)
	c.PC++

	oc, ok := opcodeTable[op]
	if !ok {
		return ErrUnknownOpcode{Opcode: op, PC: c.PC - 1}
	}

	c.mode = oc.Mode
	c.decode(oc.Mode)
	oc.Exec(c)

	c.instructionCount++
	c.notify()
	return nil
}

// loadOperand returns the effective operand byte for the current
// instruction, per the addressing mode set by the most recent decode.
// Accumulator mode reads A directly; every other mode reads through the
// bus at the effective address computed by decode. Immediate mode's
// "effective address" is simply the operand byte's own address in memory,
// so the same code path serves it too.
func (c *CPU) loadOperand() byte {
	if c.mode == Accumulator {
		return c.A
	}
	return c.Bus.Read8(c.effAddr)
}

// storeResult writes b back to wherever the current addressing mode reads
// from: A for Accumulator mode, memory at the effective address otherwise.
// Only "setter" addressing modes are ever used this way; Immediate is
// read-only and no instruction using it calls storeResult.
func (c *CPU) storeResult(b byte) {
	if c.mode == Accumulator {
		c.A = b
		return
	}
	c.Bus.Write8(c.effAddr, b)
}

// Subscribe registers cb to be called, synchronously and in subscription
// order, after every successful Step. It returns an id usable with
// Unsubscribe.
func (c *CPU) Subscribe(cb func(Snapshot)) int {
	id := c.nextObserverID
	c.nextObserverID++
	c.observers[id] = cb
	return id
}

// Unsubscribe removes a previously registered observer. Unsubscribing an
// unknown id is a no-op.
func (c *CPU) Unsubscribe(id int) {
	delete(c.observers, id)
}

func (c *CPU) notify() {
	if len(c.observers) == 0 {
		return
	}
	snap := c.Registers()
	for id := 0; id < c.nextObserverID; id++ {
		if cb, ok := c.observers[id]; ok {
			cb(snap)
		}
	}
}
