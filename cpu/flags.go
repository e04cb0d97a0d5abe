package cpu

// Status flag bits of the SR register, 7654 3210 = NV-BDIZC.
//
// https://www.nesdev.org/wiki/Status_flags
const (
	FlagCarry      byte = 1 << iota // C, bit 0
	FlagZero                       // Z, bit 1
	FlagInterrupt                  // I, bit 2
	FlagDecimal                    // D, bit 3 -- tracked, never honoured by ADC/SBC
	FlagBreak                      // B, bit 4 -- only meaningful in a pushed copy of SR
	FlagUnused                     // bit 5 -- read back exactly as written
	FlagOverflow                   // V, bit 6
	FlagNegative                   // N, bit 7
)

// Flag reports whether the given bit(s) of SR are set.
func (c *CPU) Flag(mask byte) bool {
	return c.SR&mask != 0
}

// SetFlag sets or clears the given bit(s) of SR.
func (c *CPU) SetFlag(mask byte, v bool) {
	if v {
		c.SR |= mask
	} else {
		c.SR &^= mask
	}
}

// updateNZ sets N from bit 7 of v and Z from v's zero-ness. This is the
// flag-update rule shared by every load, transfer, logical, and
// increment/decrement operation (spec §4.4).
func (c *CPU) updateNZ(v byte) {
	c.SetFlag(FlagNegative, v&0x80 != 0)
	c.SetFlag(FlagZero, v == 0)
}
