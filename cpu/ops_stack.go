package cpu

import (
	"github.com/wdctrace/tracecore/mask"
	"github.com/wdctrace/tracecore/tri"
)

// Push-class hooks verify the register against the observed stack traffic
// and, when the register was unknown, adopt the pushed byte(s) -- the bus
// is authoritative, the same discipline spec §4.6 spells out for stores.
// Each seeks to the instruction's final cycles first: the push bytes are
// anchored to the end of the cycle layout, after any internal cycles.

func opPHA(ex *Executor) {
	if ex.Wide() {
		ex.SeekFromEnd(2)
		if obs, ok := ex.PushTriWord(ex.Regs.C()); ok && !ex.Regs.C().Known() {
			ex.Regs.SetC(tri.KnownWord(obs))
		}
		return
	}
	ex.SeekFromEnd(1)
	if obs, ok := ex.PushTri(ex.Regs.A); ok && !ex.Regs.A.Known() {
		ex.Regs.A = tri.KnownByte(obs)
	}
}

func opPLA(ex *Executor) {
	if ex.Wide() {
		ex.SeekFromEnd(2)
		accWrite(ex, wordOf(ex.PullWord()))
		return
	}
	ex.SeekFromEnd(1)
	accWrite(ex, wordOf(uint16(ex.PullByte())))
}

func opPHP(ex *Executor) {
	ex.SeekFromEnd(1)
	ex.PushP()
}

func opPLP(ex *Executor) {
	ex.SeekFromEnd(1)
	ex.Regs.SetFromP(ex.PullByte())
}

func opPHX(ex *Executor) { pushIndex(ex, &ex.Regs.X) }
func opPHY(ex *Executor) { pushIndex(ex, &ex.Regs.Y) }

func pushIndex(ex *Executor, reg *tri.Word) {
	if ex.Wide() {
		ex.SeekFromEnd(2)
		if obs, ok := ex.PushTriWord(*reg); ok && !reg.Known() {
			*reg = tri.KnownWord(obs)
		}
		return
	}
	ex.SeekFromEnd(1)
	if obs, ok := ex.PushTri(reg.Lo()); ok && !reg.Known() {
		*reg = tri.KnownWord(uint16(obs))
	}
}

func opPLX(ex *Executor) { pullIndex(ex, &ex.Regs.X) }
func opPLY(ex *Executor) { pullIndex(ex, &ex.Regs.Y) }

func pullIndex(ex *Executor, reg *tri.Word) {
	var v tri.Word
	if ex.Wide() {
		ex.SeekFromEnd(2)
		v = wordOf(ex.PullWord())
	} else {
		ex.SeekFromEnd(1)
		v = wordOf(uint16(ex.PullByte()))
	}
	*reg = narrow(v, ex.Wide())
	setNZWidth(ex, v)
}

func opPHB(ex *Executor) {
	ex.SeekFromEnd(1)
	if obs, ok := ex.PushTri(ex.Regs.DB); ok && !ex.Regs.DB.Known() {
		ex.Regs.DB = tri.KnownByte(obs)
	}
}

func opPLB(ex *Executor) {
	ex.SeekFromEnd(1)
	v := ex.PullByte()
	ex.Regs.DB = byteOf(v)
	n, z := nzByte(v)
	ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
}

func opPHD(ex *Executor) {
	ex.SeekFromEnd(2)
	if obs, ok := ex.PushTriWord(ex.Regs.DP); ok && !ex.Regs.DP.Known() {
		ex.Regs.DP = tri.KnownWord(obs)
	}
}

func opPLD(ex *Executor) {
	ex.SeekFromEnd(2)
	v := ex.PullWord()
	ex.Regs.DP = wordOf(v)
	n, z := nzWord(v)
	ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
}

func opPHK(ex *Executor) {
	ex.SeekFromEnd(1)
	if obs, ok := ex.PushTri(ex.Regs.PB); ok && !ex.Regs.PB.Known() {
		ex.Regs.PB = tri.KnownByte(obs)
	}
}

// opPEA pushes the 16-bit immediate operand directly -- it never touches a
// register, making it the one stack push whose value is always known.
func opPEA(ex *Executor) {
	ex.SeekFromEnd(2)
	ex.PushTriWord(tri.KnownWord(ex.Operand16()))
}

// opPEI pushes the direct-page pointer word whose bytes the bus already
// surfaced during the pointer phase.
func opPEI(ex *Executor) {
	ex.SeekFromEnd(2)
	v := tri.UnknownWord()
	if len(ex.ptrBytes) == 2 {
		v = tri.KnownWord(mask.Word(ex.ptrBytes[1], ex.ptrBytes[0]))
	}
	ex.PushTriWord(v)
}

// opPER pushes PC + the signed 16-bit operand + 3 (the PER instruction's
// own length), mirroring BRL's target computation without branching.
func opPER(ex *Executor) {
	ex.SeekFromEnd(2)
	v := tri.UnknownWord()
	if pc, ok := ex.Regs.PC.Value(); ok {
		v = tri.KnownWord(uint16(int(pc) + 3 + signed16(ex.Operand16())))
	}
	ex.PushTriWord(v)
}
