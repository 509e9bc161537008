package cpu

import (
	"github.com/wdctrace/tracecore/mask"
	"github.com/wdctrace/tracecore/memory"
	"github.com/wdctrace/tracecore/tri"
)

// opInvalid is the default hook for every byte value the 256-entry table
// doesn't name as a real opcode. The 65C816 never actually traps on an
// invalid opcode (it executes whatever garbage semantics the silicon
// happens to implement); this analyzer instead treats a fetch of one as a
// decoding failure, since a genuine trace should never produce one.
func opInvalid(ex *Executor) {
	ex.Fail = true
	ex.logf("fetched undefined opcode")
}

// opNOP does nothing; the table uses it only for the implied NOP (0xEA).
func opNOP(ex *Executor) {}

// opWDM is the reserved "William D. Mensch" two-byte NOP: the table
// already gives it ModeImmediate8, so its signature byte is consumed as
// an ordinary operand; the hook itself has no semantics.
func opWDM(ex *Executor) {}

// opSTP/opWAI record that the processor has stopped or is waiting for an
// interrupt; the dispatch adapter surfaces these through the Executor's
// Stopped/Waiting flags (spec §6.1) rather than via the register model.
func opSTP(ex *Executor) { ex.Stop() }
func opWAI(ex *Executor) { ex.Wait() }

func opCLC(ex *Executor) { ex.Regs.Flags.C = tri.KnownBit(false) }
func opSEC(ex *Executor) { ex.Regs.Flags.C = tri.KnownBit(true) }
func opCLI(ex *Executor) { ex.Regs.Flags.I = tri.KnownBit(false) }
func opSEI(ex *Executor) { ex.Regs.Flags.I = tri.KnownBit(true) }
func opCLD(ex *Executor) { ex.Regs.Flags.D = tri.KnownBit(false) }
func opSED(ex *Executor) { ex.Regs.Flags.D = tri.KnownBit(true) }
func opCLV(ex *Executor) { ex.Regs.Flags.V = tri.KnownBit(false) }

func opINX(ex *Executor) { ex.Regs.X = incDecIndex(ex, ex.Regs.X, 1) }
func opINY(ex *Executor) { ex.Regs.Y = incDecIndex(ex, ex.Regs.Y, 1) }
func opDEX(ex *Executor) { ex.Regs.X = incDecIndex(ex, ex.Regs.X, -1) }
func opDEY(ex *Executor) { ex.Regs.Y = incDecIndex(ex, ex.Regs.Y, -1) }

func incDecIndex(ex *Executor, reg tri.Word, delta int) tri.Word {
	if ex.WideX() {
		v, ok := reg.Value()
		if !ok {
			setNZWidthReg(ex, tri.UnknownWord(), true)
			return tri.UnknownWord()
		}
		r := tri.KnownWord(uint16(int(v) + delta))
		setNZWidthReg(ex, r, true)
		return r
	}
	v, ok := reg.Lo().Value()
	if !ok {
		setNZWidthReg(ex, tri.UnknownWord(), false)
		return tri.UnknownWord()
	}
	r := tri.KnownWord(uint16(byte(int(v) + delta)))
	setNZWidthReg(ex, r, false)
	return r
}

func setNZWidthReg(ex *Executor, v tri.Word, wide bool) {
	if wide {
		n, z := tri.SetNZ16(v)
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
		return
	}
	n, z := tri.SetNZ8(v.Lo())
	ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
}

// opREP clears the P bits named by a 1 in the immediate operand; opSEP
// sets them, reusing the same bit layout registers.go's EncodeP/SetFromP
// use. Per spec §4.6, the M/X bits are ignored while E=1, since emulation
// mode pins them to 1 regardless.
func opREP(ex *Executor) { applyFlagMask(ex, ex.Operand8(), false) }
func opSEP(ex *Executor) { applyFlagMask(ex, ex.Operand8(), true) }

func applyFlagMask(ex *Executor, operand byte, set bool) {
	e, _ := ex.Regs.Flags.E.Value()
	flip := func(f *tri.Bit, pos mask.ByteIndex) {
		if mask.IsSet(operand, pos) {
			*f = tri.KnownBit(set)
		}
	}
	flip(&ex.Regs.Flags.N, pBitN)
	flip(&ex.Regs.Flags.V, pBitV)
	flip(&ex.Regs.Flags.D, pBitD)
	flip(&ex.Regs.Flags.I, pBitI)
	flip(&ex.Regs.Flags.Z, pBitZ)
	flip(&ex.Regs.Flags.C, pBitC)
	if e {
		return
	}
	if mask.IsSet(operand, pBitM) {
		ex.Regs.Flags.MS = tri.KnownBit(set)
	}
	if mask.IsSet(operand, pBitX) {
		ex.Regs.SetXS(tri.KnownBit(set))
	}
}

// opMVN/opMVP implement the block-move operation (spec §4.6): decrement
// the 16-bit counter in C, move X/Y per XS (incrementing for MVN, the
// "negative"/ascending direction; decrementing for MVP), set DB to the
// destination bank carried as the instruction's second operand byte, and
// back PC up by 3 so the trace repeats the same MVN/MVP until the counter
// underflows past 0xFFFF.
func opMVN(ex *Executor) { blockMove(ex, 1) }
func opMVP(ex *Executor) { blockMove(ex, -1) }

// blockMove's two operand bytes are, in bus order, the destination bank
// then the source bank (the well-known MVN/MVP quirk: the assembler
// mnemonic lists source first, but the encoded bytes are reversed). The
// moved byte itself is the instruction's middle cycle: a read at
// srcBank:X immediately re-surfacing as a write at dstBank:Y.
func blockMove(ex *Executor, dir int) {
	dstBank := ex.Operand8()
	srcBank := byte(ex.Operand16() >> 8)

	data, readOK := ex.NextByte()
	moved, wroteOK := ex.NextByte()
	if readOK && wroteOK && data != moved {
		ex.Fail = true
		ex.logf("block move data mismatch: read %02X wrote %02X", data, moved)
	}
	if x, ok := ex.Regs.X.Value(); ok && readOK {
		ex.Mem.Read(data, mask.Long(srcBank, x), memory.Data)
	}
	if y, ok := ex.Regs.Y.Value(); ok && wroteOK {
		ex.Mem.Write(moved, mask.Long(dstBank, y), memory.Data)
	}

	ex.Regs.DB = tri.KnownByte(dstBank)

	c, cOK := ex.Regs.C().Value()
	if cOK {
		ex.Regs.SetC(tri.KnownWord(c - 1))
	} else {
		ex.Regs.SetC(tri.UnknownWord())
	}

	if ex.WideX() {
		if x, ok := ex.Regs.X.Value(); ok {
			ex.Regs.X = tri.KnownWord(uint16(int(x) + dir))
		}
		if y, ok := ex.Regs.Y.Value(); ok {
			ex.Regs.Y = tri.KnownWord(uint16(int(y) + dir))
		}
	} else {
		if x, ok := ex.Regs.X.Lo().Value(); ok {
			ex.Regs.X = tri.KnownWord(uint16(byte(int(x) + dir)))
		}
		if y, ok := ex.Regs.Y.Lo().Value(); ok {
			ex.Regs.Y = tri.KnownWord(uint16(byte(int(y) + dir)))
		}
	}

	if !cOK || c != 0 {
		pc, ok := ex.Regs.PC.Value()
		if ok {
			ex.Regs.PC = tri.KnownWord(pc - 3)
		}
	}
}
