// Package nsf parses the NES Sound Format container and drives the
// pre-run sequence that hands control from an NSF's init routine to its
// play routine, stepping a *cpu.CPU underneath.
package nsf

import (
	"bytes"
	"fmt"
	"time"

	"nsf6502/bits"
)

// HeaderSize is the fixed 128-byte NSF header; the file body starts here.
const HeaderSize = 0x80

// Magic is the validated prefix of a well-formed NSF file. The full on-disk
// magic is "NESM\x1A", but per spec only the first four bytes are checked.
var Magic = []byte("NESM")

// Header is the parsed 128-byte NSF header (spec §3), bit-exact with the
// on-disk layout.
type Header struct {
	TotalSongs   byte
	StartingSong byte // 1-based
	LoadAddr     uint16
	InitAddr     uint16
	PlayAddr     uint16
	rawName      [32]byte
	rawArtist    [32]byte
	rawCopyright [32]byte
	NTSCSpeedUS  uint16
	BankInit     [8]byte
	PALSpeedUS   uint16
	RegionMode   byte
	ExtraChips   byte
}

// ErrBadMagic is returned by ParseHeader when the file does not start with
// the NSF magic prefix.
type ErrBadMagic struct {
	Got []byte
}

func (e ErrBadMagic) Error() string {
	return fmt.Sprintf("nsf: not an NSF file (magic %q)", e.Got)
}

// ParseHeader reads the 128-byte header from the front of data. It does not
// mutate any interpreter state -- validation happens before anything else
// about the file is trusted (spec §7).
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("nsf: file too short for header (%d bytes)", len(data))
	}
	if !bytes.Equal(data[0:4], Magic) {
		got := append([]byte(nil), data[0:4]...)
		return Header{}, ErrBadMagic{Got: got}
	}

	h := Header{
		TotalSongs:   data[0x06],
		StartingSong: data[0x07],
		LoadAddr:     bits.Word(data[0x09], data[0x08]),
		InitAddr:     bits.Word(data[0x0B], data[0x0A]),
		PlayAddr:     bits.Word(data[0x0D], data[0x0C]),
		NTSCSpeedUS:  bits.Word(data[0x6F], data[0x6E]),
		PALSpeedUS:   bits.Word(data[0x79], data[0x78]),
		RegionMode:   data[0x7A],
		ExtraChips:   data[0x7B],
	}
	copy(h.rawName[:], data[0x0E:0x2E])
	copy(h.rawArtist[:], data[0x2E:0x4E])
	copy(h.rawCopyright[:], data[0x4E:0x6E])
	copy(h.BankInit[:], data[0x70:0x78])

	return h, nil
}

// nulTerminated trims a fixed-width field at its first NUL byte.
func nulTerminated(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// Name returns the NUL-terminated song name field.
func (h Header) Name() string { return nulTerminated(h.rawName[:]) }

// Artist returns the NUL-terminated artist field.
func (h Header) Artist() string { return nulTerminated(h.rawArtist[:]) }

// Copyright returns the NUL-terminated copyright field.
func (h Header) Copyright() string { return nulTerminated(h.rawCopyright[:]) }

// IsPAL reports whether the region/mode bitfield's bit 0 (PAL) is set.
func (h Header) IsPAL() bool { return bits.IsSet(h.RegionMode, bits.I8) }

// IsDualRegion reports whether bit 1 (dual PAL/NTSC support) is set.
func (h Header) IsDualRegion() bool { return bits.IsSet(h.RegionMode, bits.I7) }

// PlaySpeed returns the play-routine tick interval appropriate for the
// header's region: the PAL speed field if IsPAL, the NTSC field otherwise.
// This is a driver pacing knob (spec §6, "auto-step at N Hz"), not
// something the CPU core consults.
func (h Header) PlaySpeed() time.Duration {
	if h.IsPAL() {
		return time.Duration(h.PALSpeedUS) * time.Microsecond
	}
	return time.Duration(h.NTSCSpeedUS) * time.Microsecond
}

// Body returns the file's executable payload, i.e. everything after the
// 128-byte header.
func Body(data []byte) []byte {
	if len(data) <= HeaderSize {
		return nil
	}
	return data[HeaderSize:]
}
