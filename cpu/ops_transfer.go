package cpu

import "github.com/wdctrace/tracecore/tri"

func opTAX(ex *Executor) {
	c := ex.Regs.C()
	ex.Regs.X = narrow(c, ex.WideX())
	if ex.WideX() {
		n, z := tri.SetNZ16(c)
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
	} else {
		n, z := tri.SetNZ8(c.Lo())
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
	}
}

func opTAY(ex *Executor) {
	c := ex.Regs.C()
	ex.Regs.Y = narrow(c, ex.WideX())
	if ex.WideX() {
		n, z := tri.SetNZ16(c)
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
	} else {
		n, z := tri.SetNZ8(c.Lo())
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
	}
}

func opTXA(ex *Executor) {
	x := ex.Regs.X
	if ex.WideM() {
		ex.Regs.SetC(x)
		n, z := tri.SetNZ16(x)
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
		return
	}
	ex.Regs.A = x.Lo()
	n, z := tri.SetNZ8(x.Lo())
	ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
}

func opTYA(ex *Executor) {
	y := ex.Regs.Y
	if ex.WideM() {
		ex.Regs.SetC(y)
		n, z := tri.SetNZ16(y)
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
		return
	}
	ex.Regs.A = y.Lo()
	n, z := tri.SetNZ8(y.Lo())
	ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
}

func opTSX(ex *Executor) {
	sp := ex.Regs.SP()
	ex.Regs.X = narrow(sp, ex.WideX())
	if ex.WideX() {
		n, z := tri.SetNZ16(sp)
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
	} else {
		n, z := tri.SetNZ8(sp.Lo())
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
	}
}

// opTXS transfers X into SP without touching any flag (6502/65C816
// convention; the stack pointer is never itself N/Z-checked).
func opTXS(ex *Executor) { ex.Regs.SetSP(ex.Regs.X) }

func opTXY(ex *Executor) {
	ex.Regs.Y = ex.Regs.X
	if ex.WideX() {
		n, z := tri.SetNZ16(ex.Regs.Y)
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
	} else {
		n, z := tri.SetNZ8(ex.Regs.Y.Lo())
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
	}
}

func opTYX(ex *Executor) {
	ex.Regs.X = ex.Regs.Y
	if ex.WideX() {
		n, z := tri.SetNZ16(ex.Regs.X)
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
	} else {
		n, z := tri.SetNZ8(ex.Regs.X.Lo())
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
	}
}

// opTCD/opTDC move the full 16-bit accumulator to/from DP, always at full
// width regardless of MS (spec: DP is always 16 bits).
func opTCD(ex *Executor) {
	c := ex.Regs.C()
	ex.Regs.DP = c
	n, z := tri.SetNZ16(c)
	ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
}

func opTDC(ex *Executor) {
	ex.Regs.SetC(ex.Regs.DP)
	n, z := tri.SetNZ16(ex.Regs.DP)
	ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
}

// opTCS/opTSC move the full 16-bit accumulator to/from SP, pinned to
// SH=0x01 in emulation mode via SetSP; TSC does not touch SH's emulation
// pin since it only reads.
func opTCS(ex *Executor) { ex.Regs.SetSP(ex.Regs.C()) }

func opTSC(ex *Executor) {
	sp := ex.Regs.SP()
	ex.Regs.SetC(sp)
	n, z := tri.SetNZ16(sp)
	ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
}

// opXCE exchanges the carry and emulation flags (spec §9's documented open
// question: resolved as a true swap -- old C becomes new E, old E becomes
// new C. SetE(c) narrows MS/XS and pins SH when the new E is known true.
// When C was unknown before the swap, the new E is unknown too, and since
// the caller no longer knows whether emulation mode was just entered or
// left, MS and XS become unknown along with it.
func opXCE(ex *Executor) {
	c := ex.Regs.Flags.C
	e := ex.Regs.Flags.E
	ex.Regs.Flags.C = e
	ex.Regs.SetE(c)
	if !c.Known() {
		ex.Regs.Flags.MS = tri.UnknownBit()
		ex.Regs.SetXS(tri.UnknownBit())
	}
}

// opXBA exchanges A and B, always 8-bit regardless of MS, and sets N/Z
// from the new A (the old B).
func opXBA(ex *Executor) {
	a, b := ex.Regs.A, ex.Regs.B
	ex.Regs.A, ex.Regs.B = b, a
	n, z := tri.SetNZ8(ex.Regs.A)
	ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
}
