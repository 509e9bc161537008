package cpu

import (
	"fmt"

	"github.com/wdctrace/tracecore/mask"
	"github.com/wdctrace/tracecore/tri"
)

// Flags is the symbolic P register plus the two width flags and the
// emulation-mode flag, each tri-state (spec §3.3). Ported from
// hejops-gone/cpu/cpu.go's Flags struct, which used plain bool fields for
// an always-known 6502; every field here instead carries "unknown" as a
// first-class value.
type Flags struct {
	N, V, D, I, Z, C tri.Bit
	MS, XS, E        tri.Bit
}

// Registers is the complete symbolic register file (spec §3.2), the
// threaded-through owned struct the Design Notes (spec §9) call for in
// place of process-wide globals. The zero value has every field known to be
// zero; NewRegisters returns the all-unknown register file.
type Registers struct {
	A, B   tri.Byte // together form the 16-bit C accumulator when MS=0
	X, Y   tri.Word // width-masked to 8 bits when XS=1
	SL, SH tri.Byte // SH pinned to 0x01 in emulation mode
	PC     tri.Word
	PB, DB tri.Byte
	DP     tri.Word

	Flags Flags
}

// NewRegisters returns an all-unknown register file (the state before any
// reset or explicit initial-state configuration is applied).
func NewRegisters() *Registers {
	return &Registers{
		A: tri.UnknownByte(), B: tri.UnknownByte(),
		X: tri.UnknownWord(), Y: tri.UnknownWord(),
		SL: tri.UnknownByte(), SH: tri.UnknownByte(),
		PC: tri.UnknownWord(),
		PB: tri.UnknownByte(), DB: tri.UnknownByte(),
		DP: tri.UnknownWord(),
		Flags: Flags{
			N: tri.UnknownBit(), V: tri.UnknownBit(), D: tri.UnknownBit(),
			I: tri.UnknownBit(), Z: tri.UnknownBit(), C: tri.UnknownBit(),
			MS: tri.UnknownBit(), XS: tri.UnknownBit(), E: tri.UnknownBit(),
		},
	}
}

// C returns the 16-bit accumulator (A is the low byte, B the high byte).
func (r *Registers) C() tri.Word { return tri.JoinBytes(r.B, r.A) }

// SetC sets A and B from a 16-bit value.
func (r *Registers) SetC(v tri.Word) {
	r.A = v.Lo()
	r.B = v.Hi()
}

// SP returns the 16-bit stack pointer (SH is the high byte, SL the low).
func (r *Registers) SP() tri.Word { return tri.JoinBytes(r.SH, r.SL) }

// SetSP sets SH/SL from a 16-bit value, respecting the emulation-mode pin
// (spec §3.4: "E=1 ⇒ ... SH=1"). When E itself is unknown, SH is left
// unknown rather than guessing the unpinned value (spec §9's documented
// TCS-in-unknown-E open question).
func (r *Registers) SetSP(v tri.Word) {
	r.SL = v.Lo()
	e, ok := r.Flags.E.Value()
	switch {
	case ok && e:
		r.SH = tri.KnownByte(0x01)
	case ok && !e:
		r.SH = v.Hi()
	default:
		r.SH = tri.UnknownByte()
	}
}

// NarrowX clears the high byte of X, used whenever XS transitions to 1
// (spec §3.4: "narrowing an index to 8 bits clears its high byte").
func (r *Registers) NarrowX() {
	if v, ok := r.X.Value(); ok {
		r.X = tri.KnownWord(v & 0x00FF)
	} else {
		r.X = tri.UnknownWord()
	}
}

// NarrowY clears the high byte of Y.
func (r *Registers) NarrowY() {
	if v, ok := r.Y.Value(); ok {
		r.Y = tri.KnownWord(v & 0x00FF)
	} else {
		r.Y = tri.UnknownWord()
	}
}

// SetXS sets the XS flag, narrowing X/Y when it becomes 1 (spec §3.4).
func (r *Registers) SetXS(xs tri.Bit) {
	r.Flags.XS = xs
	if v, ok := xs.Value(); ok && v {
		r.NarrowX()
		r.NarrowY()
	}
}

// SetE sets the emulation flag and enforces its invariant: E=1 forces
// MS=1, XS=1, SH=1 (spec §3.4). Entering emulation mode narrows X/Y and
// pins the stack high byte; leaving it reveals nothing new (spec §4.6).
func (r *Registers) SetE(e tri.Bit) {
	r.Flags.E = e
	if v, ok := e.Value(); ok && v {
		r.Flags.MS = tri.KnownBit(true)
		r.SetXS(tri.KnownBit(true))
		r.SH = tri.KnownByte(0x01)
	}
}

// PByteBit positions within the P status byte (spec §6.3 glossary / NVRB
// DIZC layout, B replaced by X in native mode per 65C816 convention).
const (
	pBitN = mask.I1
	pBitV = mask.I2
	pBitM = mask.I3 // M/unused(1) depending on E
	pBitX = mask.I4 // X/B depending on E
	pBitD = mask.I5
	pBitI = mask.I6
	pBitZ = mask.I7
	pBitC = mask.I8
)

// EncodeP renders the flags as an 8-bit P byte, with unknown bits rendered
// as 0 (callers needing to know whether the byte is fully known should
// check PKnown first).
func (r *Registers) EncodeP() byte {
	var b byte
	set := func(bit tri.Bit, pos byte) {
		if v, ok := bit.Value(); ok && v {
			b |= 1 << (8 - pos)
		}
	}
	set(r.Flags.N, 1)
	set(r.Flags.V, 2)
	set(r.Flags.MS, 3)
	set(r.Flags.XS, 4)
	set(r.Flags.D, 5)
	set(r.Flags.I, 6)
	set(r.Flags.Z, 7)
	set(r.Flags.C, 8)
	return b
}

// PKnown reports whether every flag bit is known.
func (r *Registers) PKnown() bool {
	for _, b := range []tri.Bit{r.Flags.N, r.Flags.V, r.Flags.MS, r.Flags.XS, r.Flags.D, r.Flags.I, r.Flags.Z, r.Flags.C} {
		if !b.Known() {
			return false
		}
	}
	return true
}

// AgreesWithP reports whether a concretely observed P byte (as pushed or
// pulled on the bus) is consistent with every currently-known flag bit
// (spec §3.4: "must agree with every observed P-flags byte").
func (r *Registers) AgreesWithP(p byte) bool {
	check := func(bit tri.Bit, pos mask.ByteIndex) bool {
		v, ok := bit.Value()
		if !ok {
			return true
		}
		got := mask.IsSet(p, pos)
		return got == v
	}
	e, _ := r.Flags.E.Value()
	return check(r.Flags.N, 1) &&
		check(r.Flags.V, 2) &&
		(e || check(r.Flags.MS, 3)) &&
		(e || check(r.Flags.XS, 4)) &&
		check(r.Flags.D, 5) &&
		check(r.Flags.I, 6) &&
		check(r.Flags.Z, 7) &&
		check(r.Flags.C, 8)
}

// SetFromP sets every flag from an observed concrete P byte. In emulation
// mode MS and XS are forced to 1 regardless of bits 3/4, which instead
// carry B and the unused bit (spec §4.4).
func (r *Registers) SetFromP(p byte) {
	r.Flags.N = tri.KnownBit(mask.IsSet(p, 1))
	r.Flags.V = tri.KnownBit(mask.IsSet(p, 2))
	if e, ok := r.Flags.E.Value(); ok && e {
		r.Flags.MS = tri.KnownBit(true)
		r.SetXS(tri.KnownBit(true))
	} else {
		r.Flags.MS = tri.KnownBit(mask.IsSet(p, 3))
		r.SetXS(tri.KnownBit(mask.IsSet(p, 4)))
	}
	r.Flags.D = tri.KnownBit(mask.IsSet(p, 5))
	r.Flags.I = tri.KnownBit(mask.IsSet(p, 6))
	r.Flags.Z = tri.KnownBit(mask.IsSet(p, 7))
	r.Flags.C = tri.KnownBit(mask.IsSet(p, 8))
}

// String renders the fixed-width state dump of spec §6.3.
func (r *Registers) String() string {
	f := func(b tri.Bit) string {
		if v, ok := b.Value(); ok {
			if v {
				return "1"
			}
			return "0"
		}
		return "?"
	}
	return fmt.Sprintf(
		"A=%s%s X=%s Y=%s SP=%s%s N=%s V=%s M=%s X=%s D=%s I=%s Z=%s C=%s E=%s PB=%s DB=%s DP=%s",
		r.B, r.A, r.X, r.Y, r.SH, r.SL,
		f(r.Flags.N), f(r.Flags.V), f(r.Flags.MS), f(r.Flags.XS), f(r.Flags.D), f(r.Flags.I), f(r.Flags.Z), f(r.Flags.C), f(r.Flags.E),
		r.PB, r.DB, r.DP,
	)
}
