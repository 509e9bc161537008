package cpu

import (
	"github.com/wdctrace/tracecore/tri"
)

// accRead returns the current accumulator value at the instruction's
// resolved width: the 16-bit C when MS=0, or A alone (zero-extended)
// when MS=1 or unknown.
func accRead(ex *Executor) tri.Word {
	if ex.Wide() {
		return ex.Regs.C()
	}
	return tri.JoinBytes(tri.KnownByte(0), ex.Regs.A)
}

// accWrite stores v back into A (narrow) or A+B (wide), and sets N/Z at
// the resolved width using the width-aware combinators.
func accWrite(ex *Executor, v tri.Word) {
	if ex.Wide() {
		ex.Regs.SetC(v)
		n, z := tri.SetNZ16(v)
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
		return
	}
	ex.Regs.A = v.Lo()
	n, z := tri.SetNZ8(ex.Regs.A)
	ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
}

// dataOperand returns the instruction's memory/immediate operand as a
// tri-state value at the resolved width. Bus data is always concretely
// observed, so this is always Known -- it exists so arithmetic hooks can
// combine it uniformly with the (possibly unknown) register side.
func dataOperand(ex *Executor) tri.Word {
	if ex.Mode() == ModeImmediateM || ex.Mode() == ModeImmediateX {
		if ex.Wide() {
			return tri.KnownWord(ex.Operand16())
		}
		return tri.KnownWord(uint16(ex.Operand8()))
	}
	if ex.Wide() {
		return tri.KnownWord(ex.DataWord())
	}
	return tri.KnownWord(uint16(ex.DataByte()))
}

func setNZWidth(ex *Executor, v tri.Word) {
	if ex.Wide() {
		n, z := tri.SetNZ16(v)
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
		return
	}
	n, z := tri.SetNZ8(v.Lo())
	ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
}

func narrow(v tri.Word, wide bool) tri.Word {
	if wide {
		return v
	}
	return tri.JoinBytes(tri.KnownByte(0), v.Lo())
}

func setPC(ex *Executor, v uint16) { ex.Regs.PC = tri.KnownWord(v) }
func setPB(ex *Executor, v byte)   { ex.Regs.PB = tri.KnownByte(v) }

func signed8(v byte) int { return int(int8(v)) }
func signed16(v uint16) int { return int(int16(v)) }

func wordOf(v uint16) tri.Word { return tri.KnownWord(v) }
func byteOf(v byte) tri.Byte   { return tri.KnownByte(v) }

func nzByte(v byte) (n, z tri.Bit) { return tri.SetNZ8(tri.KnownByte(v)) }
func nzWord(v uint16) (n, z tri.Bit) { return tri.SetNZ16(tri.KnownWord(v)) }
