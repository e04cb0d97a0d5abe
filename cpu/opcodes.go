package cpu

// Opcode associates a single encoded byte with an addressing mode and a
// semantic operation. Multiple opcodes may share an Exec (e.g. all eight ADC
// opcodes), differing only in how the operand is fetched.
type Opcode struct {
	Mode Mode
	Exec func(*CPU)
	Name string

	// Cycles is carried as reference data only; nothing in this repository
	// reads it (the driver paces auto-step from the NSF header, and the
	// disassembly line omits it) -- this core does not count clock cycles
	// (spec §1, Non-goals).
	Cycles byte
}

// opcodeTable maps all 256 possible byte values to their Opcode, where
// defined. Only the 56 official mnemonics are present; every other byte is
// simply absent from the map, and Step reports ErrUnknownOpcode for it. This
// table registers every one of its entries including 0x00 (BRK) -- a source
// that built this table by testing truthiness of the opcode byte would drop
// 0x00, which is the bug spec §9.5 calls out as not to be reproduced.
var opcodeTable = map[byte]Opcode{
	0x69: {Exec: (*CPU).ADC, Name: "ADC", Cycles: 2, Mode: Immediate},
	0x65: {Exec: (*CPU).ADC, Name: "ADC", Cycles: 3, Mode: ZeroPage},
	0x75: {Exec: (*CPU).ADC, Name: "ADC", Cycles: 4, Mode: ZeroPageX},
	0x6D: {Exec: (*CPU).ADC, Name: "ADC", Cycles: 4, Mode: Absolute},
	0x7D: {Exec: (*CPU).ADC, Name: "ADC", Cycles: 4, Mode: AbsoluteX},
	0x79: {Exec: (*CPU).ADC, Name: "ADC", Cycles: 4, Mode: AbsoluteY},
	0x61: {Exec: (*CPU).ADC, Name: "ADC", Cycles: 6, Mode: IndirectX},
	0x71: {Exec: (*CPU).ADC, Name: "ADC", Cycles: 5, Mode: IndirectY},

	0x29: {Exec: (*CPU).AND, Name: "AND", Cycles: 2, Mode: Immediate},
	0x25: {Exec: (*CPU).AND, Name: "AND", Cycles: 3, Mode: ZeroPage},
	0x35: {Exec: (*CPU).AND, Name: "AND", Cycles: 4, Mode: ZeroPageX},
	0x2D: {Exec: (*CPU).AND, Name: "AND", Cycles: 4, Mode: Absolute},
	0x3D: {Exec: (*CPU).AND, Name: "AND", Cycles: 4, Mode: AbsoluteX},
	0x39: {Exec: (*CPU).AND, Name: "AND", Cycles: 4, Mode: AbsoluteY},
	0x21: {Exec: (*CPU).AND, Name: "AND", Cycles: 6, Mode: IndirectX},
	0x31: {Exec: (*CPU).AND, Name: "AND", Cycles: 5, Mode: IndirectY},

	0x0A: {Exec: (*CPU).ASL, Name: "ASL", Cycles: 2, Mode: Accumulator},
	0x06: {Exec: (*CPU).ASL, Name: "ASL", Cycles: 5, Mode: ZeroPage},
	0x16: {Exec: (*CPU).ASL, Name: "ASL", Cycles: 6, Mode: ZeroPageX},
	0x0E: {Exec: (*CPU).ASL, Name: "ASL", Cycles: 6, Mode: Absolute},
	0x1E: {Exec: (*CPU).ASL, Name: "ASL", Cycles: 7, Mode: AbsoluteX},

	0x24: {Exec: (*CPU).BIT, Name: "BIT", Cycles: 3, Mode: ZeroPage},
	0x2C: {Exec: (*CPU).BIT, Name: "BIT", Cycles: 4, Mode: Absolute},

	0x00: {Exec: (*CPU).BRK, Name: "BRK", Cycles: 7, Mode: Implied},

	0xC9: {Exec: (*CPU).CMP, Name: "CMP", Cycles: 2, Mode: Immediate},
	0xC5: {Exec: (*CPU).CMP, Name: "CMP", Cycles: 3, Mode: ZeroPage},
	0xD5: {Exec: (*CPU).CMP, Name: "CMP", Cycles: 4, Mode: ZeroPageX},
	0xCD: {Exec: (*CPU).CMP, Name: "CMP", Cycles: 4, Mode: Absolute},
	0xDD: {Exec: (*CPU).CMP, Name: "CMP", Cycles: 4, Mode: AbsoluteX},
	0xD9: {Exec: (*CPU).CMP, Name: "CMP", Cycles: 4, Mode: AbsoluteY},
	0xC1: {Exec: (*CPU).CMP, Name: "CMP", Cycles: 6, Mode: IndirectX},
	0xD1: {Exec: (*CPU).CMP, Name: "CMP", Cycles: 5, Mode: IndirectY},

	0xE0: {Exec: (*CPU).CPX, Name: "CPX", Cycles: 2, Mode: Immediate},
	0xE4: {Exec: (*CPU).CPX, Name: "CPX", Cycles: 3, Mode: ZeroPage},
	0xEC: {Exec: (*CPU).CPX, Name: "CPX", Cycles: 4, Mode: Absolute},

	0xC0: {Exec: (*CPU).CPY, Name: "CPY", Cycles: 2, Mode: Immediate},
	0xC4: {Exec: (*CPU).CPY, Name: "CPY", Cycles: 3, Mode: ZeroPage},
	0xCC: {Exec: (*CPU).CPY, Name: "CPY", Cycles: 4, Mode: Absolute},

	0xC6: {Exec: (*CPU).DEC, Name: "DEC", Cycles: 5, Mode: ZeroPage},
	0xD6: {Exec: (*CPU).DEC, Name: "DEC", Cycles: 6, Mode: ZeroPageX},
	0xCE: {Exec: (*CPU).DEC, Name: "DEC", Cycles: 6, Mode: Absolute},
	0xDE: {Exec: (*CPU).DEC, Name: "DEC", Cycles: 7, Mode: AbsoluteX},

	0x49: {Exec: (*CPU).EOR, Name: "EOR", Cycles: 2, Mode: Immediate},
	0x45: {Exec: (*CPU).EOR, Name: "EOR", Cycles: 3, Mode: ZeroPage},
	0x55: {Exec: (*CPU).EOR, Name: "EOR", Cycles: 4, Mode: ZeroPageX},
	0x4D: {Exec: (*CPU).EOR, Name: "EOR", Cycles: 4, Mode: Absolute},
	0x5D: {Exec: (*CPU).EOR, Name: "EOR", Cycles: 4, Mode: AbsoluteX},
	0x59: {Exec: (*CPU).EOR, Name: "EOR", Cycles: 4, Mode: AbsoluteY},
	0x41: {Exec: (*CPU).EOR, Name: "EOR", Cycles: 6, Mode: IndirectX},
	0x51: {Exec: (*CPU).EOR, Name: "EOR", Cycles: 5, Mode: IndirectY},

	0xE6: {Exec: (*CPU).INC, Name: "INC", Cycles: 5, Mode: ZeroPage},
	0xF6: {Exec: (*CPU).INC, Name: "INC", Cycles: 6, Mode: ZeroPageX},
	0xEE: {Exec: (*CPU).INC, Name: "INC", Cycles: 6, Mode: Absolute},
	0xFE: {Exec: (*CPU).INC, Name: "INC", Cycles: 7, Mode: AbsoluteX},

	0x4C: {Exec: (*CPU).JMP, Name: "JMP", Cycles: 3, Mode: Absolute},
	0x6C: {Exec: (*CPU).JMP, Name: "JMP", Cycles: 5, Mode: Indirect},

	0x20: {Exec: (*CPU).JSR, Name: "JSR", Cycles: 6, Mode: Absolute},

	0xA9: {Exec: (*CPU).LDA, Name: "LDA", Cycles: 2, Mode: Immediate},
	0xA5: {Exec: (*CPU).LDA, Name: "LDA", Cycles: 3, Mode: ZeroPage},
	0xB5: {Exec: (*CPU).LDA, Name: "LDA", Cycles: 4, Mode: ZeroPageX},
	0xAD: {Exec: (*CPU).LDA, Name: "LDA", Cycles: 4, Mode: Absolute},
	0xBD: {Exec: (*CPU).LDA, Name: "LDA", Cycles: 4, Mode: AbsoluteX},
	0xB9: {Exec: (*CPU).LDA, Name: "LDA", Cycles: 4, Mode: AbsoluteY},
	0xA1: {Exec: (*CPU).LDA, Name: "LDA", Cycles: 6, Mode: IndirectX},
	0xB1: {Exec: (*CPU).LDA, Name: "LDA", Cycles: 5, Mode: IndirectY},

	0xA2: {Exec: (*CPU).LDX, Name: "LDX", Cycles: 2, Mode: Immediate},
	0xA6: {Exec: (*CPU).LDX, Name: "LDX", Cycles: 3, Mode: ZeroPage},
	0xB6: {Exec: (*CPU).LDX, Name: "LDX", Cycles: 4, Mode: ZeroPageY},
	0xAE: {Exec: (*CPU).LDX, Name: "LDX", Cycles: 4, Mode: Absolute},
	0xBE: {Exec: (*CPU).LDX, Name: "LDX", Cycles: 4, Mode: AbsoluteY},

	0xA0: {Exec: (*CPU).LDY, Name: "LDY", Cycles: 2, Mode: Immediate},
	0xA4: {Exec: (*CPU).LDY, Name: "LDY", Cycles: 3, Mode: ZeroPage},
	0xB4: {Exec: (*CPU).LDY, Name: "LDY", Cycles: 4, Mode: ZeroPageX},
	0xAC: {Exec: (*CPU).LDY, Name: "LDY", Cycles: 4, Mode: Absolute},
	0xBC: {Exec: (*CPU).LDY, Name: "LDY", Cycles: 4, Mode: AbsoluteX},

	0x4A: {Exec: (*CPU).LSR, Name: "LSR", Cycles: 2, Mode: Accumulator},
	0x46: {Exec: (*CPU).LSR, Name: "LSR", Cycles: 5, Mode: ZeroPage},
	0x56: {Exec: (*CPU).LSR, Name: "LSR", Cycles: 6, Mode: ZeroPageX},
	0x4E: {Exec: (*CPU).LSR, Name: "LSR", Cycles: 6, Mode: Absolute},
	0x5E: {Exec: (*CPU).LSR, Name: "LSR", Cycles: 7, Mode: AbsoluteX},

	0xEA: {Exec: (*CPU).NOP, Name: "NOP", Cycles: 2, Mode: Implied},

	0x09: {Exec: (*CPU).ORA, Name: "ORA", Cycles: 2, Mode: Immediate},
	0x05: {Exec: (*CPU).ORA, Name: "ORA", Cycles: 3, Mode: ZeroPage},
	0x15: {Exec: (*CPU).ORA, Name: "ORA", Cycles: 4, Mode: ZeroPageX},
	0x0D: {Exec: (*CPU).ORA, Name: "ORA", Cycles: 4, Mode: Absolute},
	0x1D: {Exec: (*CPU).ORA, Name: "ORA", Cycles: 4, Mode: AbsoluteX},
	0x19: {Exec: (*CPU).ORA, Name: "ORA", Cycles: 4, Mode: AbsoluteY},
	0x01: {Exec: (*CPU).ORA, Name: "ORA", Cycles: 6, Mode: IndirectX},
	0x11: {Exec: (*CPU).ORA, Name: "ORA", Cycles: 5, Mode: IndirectY},

	0x2A: {Exec: (*CPU).ROL, Name: "ROL", Cycles: 2, Mode: Accumulator},
	0x26: {Exec: (*CPU).ROL, Name: "ROL", Cycles: 5, Mode: ZeroPage},
	0x36: {Exec: (*CPU).ROL, Name: "ROL", Cycles: 6, Mode: ZeroPageX},
	0x2E: {Exec: (*CPU).ROL, Name: "ROL", Cycles: 6, Mode: Absolute},
	0x3E: {Exec: (*CPU).ROL, Name: "ROL", Cycles: 7, Mode: AbsoluteX},

	0x6A: {Exec: (*CPU).ROR, Name: "ROR", Cycles: 2, Mode: Accumulator},
	0x66: {Exec: (*CPU).ROR, Name: "ROR", Cycles: 5, Mode: ZeroPage},
	0x76: {Exec: (*CPU).ROR, Name: "ROR", Cycles: 6, Mode: ZeroPageX},
	0x6E: {Exec: (*CPU).ROR, Name: "ROR", Cycles: 6, Mode: Absolute},
	0x7E: {Exec: (*CPU).ROR, Name: "ROR", Cycles: 7, Mode: AbsoluteX},

	0x40: {Exec: (*CPU).RTI, Name: "RTI", Cycles: 6, Mode: Implied},
	0x60: {Exec: (*CPU).RTS, Name: "RTS", Cycles: 6, Mode: Implied},

	0xE9: {Exec: (*CPU).SBC, Name: "SBC", Cycles: 2, Mode: Immediate},
	0xE5: {Exec: (*CPU).SBC, Name: "SBC", Cycles: 3, Mode: ZeroPage},
	0xF5: {Exec: (*CPU).SBC, Name: "SBC", Cycles: 4, Mode: ZeroPageX},
	0xED: {Exec: (*CPU).SBC, Name: "SBC", Cycles: 4, Mode: Absolute},
	0xFD: {Exec: (*CPU).SBC, Name: "SBC", Cycles: 4, Mode: AbsoluteX},
	0xF9: {Exec: (*CPU).SBC, Name: "SBC", Cycles: 4, Mode: AbsoluteY},
	0xE1: {Exec: (*CPU).SBC, Name: "SBC", Cycles: 6, Mode: IndirectX},
	0xF1: {Exec: (*CPU).SBC, Name: "SBC", Cycles: 5, Mode: IndirectY},

	0x85: {Exec: (*CPU).STA, Name: "STA", Cycles: 3, Mode: ZeroPage},
	0x95: {Exec: (*CPU).STA, Name: "STA", Cycles: 4, Mode: ZeroPageX},
	0x8D: {Exec: (*CPU).STA, Name: "STA", Cycles: 4, Mode: Absolute},
	0x9D: {Exec: (*CPU).STA, Name: "STA", Cycles: 5, Mode: AbsoluteX},
	0x99: {Exec: (*CPU).STA, Name: "STA", Cycles: 5, Mode: AbsoluteY},
	0x81: {Exec: (*CPU).STA, Name: "STA", Cycles: 6, Mode: IndirectX},
	0x91: {Exec: (*CPU).STA, Name: "STA", Cycles: 6, Mode: IndirectY},

	0x86: {Exec: (*CPU).STX, Name: "STX", Cycles: 3, Mode: ZeroPage},
	0x96: {Exec: (*CPU).STX, Name: "STX", Cycles: 4, Mode: ZeroPageY},
	0x8E: {Exec: (*CPU).STX, Name: "STX", Cycles: 4, Mode: Absolute},

	0x84: {Exec: (*CPU).STY, Name: "STY", Cycles: 3, Mode: ZeroPage},
	0x94: {Exec: (*CPU).STY, Name: "STY", Cycles: 4, Mode: ZeroPageX},
	0x8C: {Exec: (*CPU).STY, Name: "STY", Cycles: 4, Mode: Absolute},

	// clear/set flag
	0x18: {Exec: (*CPU).CLC, Name: "CLC", Cycles: 2, Mode: Implied},
	0x38: {Exec: (*CPU).SEC, Name: "SEC", Cycles: 2, Mode: Implied},
	0x58: {Exec: (*CPU).CLI, Name: "CLI", Cycles: 2, Mode: Implied},
	0x78: {Exec: (*CPU).SEI, Name: "SEI", Cycles: 2, Mode: Implied},
	0xB8: {Exec: (*CPU).CLV, Name: "CLV", Cycles: 2, Mode: Implied},
	0xD8: {Exec: (*CPU).CLD, Name: "CLD", Cycles: 2, Mode: Implied},
	0xF8: {Exec: (*CPU).SED, Name: "SED", Cycles: 2, Mode: Implied},

	// transfer, increment, decrement
	0xAA: {Exec: (*CPU).TAX, Name: "TAX", Cycles: 2, Mode: Implied},
	0x8A: {Exec: (*CPU).TXA, Name: "TXA", Cycles: 2, Mode: Implied},
	0xCA: {Exec: (*CPU).DEX, Name: "DEX", Cycles: 2, Mode: Implied},
	0xE8: {Exec: (*CPU).INX, Name: "INX", Cycles: 2, Mode: Implied},
	0xA8: {Exec: (*CPU).TAY, Name: "TAY", Cycles: 2, Mode: Implied},
	0x98: {Exec: (*CPU).TYA, Name: "TYA", Cycles: 2, Mode: Implied},
	0x88: {Exec: (*CPU).DEY, Name: "DEY", Cycles: 2, Mode: Implied},
	0xC8: {Exec: (*CPU).INY, Name: "INY", Cycles: 2, Mode: Implied},

	// branch
	0x10: {Exec: (*CPU).BPL, Name: "BPL", Cycles: 2, Mode: Relative},
	0x30: {Exec: (*CPU).BMI, Name: "BMI", Cycles: 2, Mode: Relative},
	0x50: {Exec: (*CPU).BVC, Name: "BVC", Cycles: 2, Mode: Relative},
	0x70: {Exec: (*CPU).BVS, Name: "BVS", Cycles: 2, Mode: Relative},
	0x90: {Exec: (*CPU).BCC, Name: "BCC", Cycles: 2, Mode: Relative},
	0xB0: {Exec: (*CPU).BCS, Name: "BCS", Cycles: 2, Mode: Relative},
	0xD0: {Exec: (*CPU).BNE, Name: "BNE", Cycles: 2, Mode: Relative},
	0xF0: {Exec: (*CPU).BEQ, Name: "BEQ", Cycles: 2, Mode: Relative},

	// stack
	0x9A: {Exec: (*CPU).TXS, Name: "TXS", Cycles: 2, Mode: Implied},
	0xBA: {Exec: (*CPU).TSX, Name: "TSX", Cycles: 2, Mode: Implied},
	0x48: {Exec: (*CPU).PHA, Name: "PHA", Cycles: 3, Mode: Implied},
	0x68: {Exec: (*CPU).PLA, Name: "PLA", Cycles: 4, Mode: Implied},
	0x08: {Exec: (*CPU).PHP, Name: "PHP", Cycles: 3, Mode: Implied},
	0x28: {Exec: (*CPU).PLP, Name: "PLP", Cycles: 4, Mode: Implied},
}
