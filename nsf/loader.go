package nsf

import (
	"nsf6502/cpu"
)

// opRTS is the 6502 opcode byte for RTS, used by Runner to recognize the
// moment init hands control back (spec §4.6 step 7, §9.7).
const opRTS = 0x60

// Runner wraps a *cpu.CPU with the NSF "call init, then repeatedly call
// play" convention. This convention is a driver-level hack, not 6502
// behavior, so it lives here rather than inside cpu.CPU.Step (spec §9.7).
type Runner struct {
	CPU          *cpu.CPU
	Header       Header
	initReturned bool
}

// Load validates and parses an NSF file, then arms cpu for a run: it zeroes
// the relevant memory regions, primes the APU registers the NES would have
// initialized, copies the file body to the load address, sets A/X per the
// header, and points PC at the init routine via a synthetic JMP. It returns
// ErrBadMagic without touching cpu if the file isn't a valid NSF (spec §7:
// validate before mutating).
func Load(c *cpu.CPU, data []byte) (*Runner, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	c.Fill(0x0000, 0x0800, 0)
	c.Fill(0x6000, 0x8000, 0)
	c.Fill(0x4000, 0x4014, 0)
	c.Write8(0x4015, 0x0F) // APU status: enable all channels
	c.Write8(0x4017, 0x40) // frame counter mode

	if h.IsPAL() {
		c.X = 1
	} else {
		c.X = 0
	}
	c.A = h.StartingSong - 1

	c.WriteBytes(Body(data), h.LoadAddr)

	c.PC = h.InitAddr

	return &Runner{CPU: c, Header: h}, nil
}

// Step advances the underlying CPU by one instruction. The first time that
// instruction is an RTS (i.e. init has returned), PC is redirected to the
// play routine instead of wherever the empty call stack would have sent it.
// Every subsequent RTS executed by play is left alone -- play is expected to
// loop or return normally on its own terms once it is running.
func (r *Runner) Step() error {
	isInitReturn := !r.initReturned && r.CPU.Read8(r.CPU.PC) == opRTS

	if err := r.CPU.Step(); err != nil {
		return err
	}

	if isInitReturn {
		r.initReturned = true
		r.CPU.PC = r.Header.PlayAddr
	}
	return nil
}
