package cpu

import (
	"github.com/wdctrace/tracecore/mask"
	"github.com/wdctrace/tracecore/memory"
	"github.com/wdctrace/tracecore/tri"
)

func opJMP(ex *Executor) {
	switch ex.Mode() {
	case ModeAbsolute:
		setPC(ex, ex.Operand16())
	case ModeAbsoluteIndirect, ModeAbsoluteIndirectX:
		// the new PC arrives on the instruction's last two cycles
		ex.SeekFromEnd(2)
		lo, loOK := ex.NextByte()
		hi, hiOK := ex.NextByte()
		if !loOK || !hiOK {
			return
		}
		if ptr, ok := ex.EA(); ok {
			ex.Mem.Read(lo, ptr, memory.Pointer)
			ex.Mem.Read(hi, ptr+1, memory.Pointer)
		}
		setPC(ex, mask.Word(hi, lo))
	}
}

func opJML(ex *Executor) {
	switch ex.Mode() {
	case ModeAbsoluteLong:
		setPC(ex, ex.Operand16())
		setPB(ex, ex.OperandBank())
	case ModeAbsoluteIndirectLong:
		ex.SeekFromEnd(3)
		lo, _ := ex.NextByte()
		hi, _ := ex.NextByte()
		bk, bkOK := ex.NextByte()
		if !bkOK {
			return
		}
		if ptr, ok := ex.EA(); ok {
			ex.Mem.Read(lo, ptr, memory.Pointer)
			ex.Mem.Read(hi, ptr+1, memory.Pointer)
			ex.Mem.Read(bk, ptr+2, memory.Pointer)
		}
		setPC(ex, mask.Word(hi, lo))
		setPB(ex, bk)
	}
}

func opJSR(ex *Executor) {
	// the pushed return address points at the instruction's last byte, per
	// 6502 convention
	ret := tri.UnknownWord()
	if pc, ok := ex.Regs.PC.Value(); ok {
		ret = tri.KnownWord(pc + 2)
	}
	switch ex.Mode() {
	case ModeAbsolute:
		ex.SeekFromEnd(2)
		ex.PushTriWord(ret)
		setPC(ex, ex.Operand16())
	case ModeAbsoluteIndirectX:
		if ex.splitOperand {
			// pushes come between the two operand fetches; the high
			// operand byte follows them
			ex.PushTriWord(ret)
			if b, ok := ex.NextByte(); ok {
				if pc, pcOK := ex.Regs.PC.Value(); pcOK {
					if pb, pbOK := ex.Regs.PB.Value(); pbOK {
						ex.Mem.Read(b, mask.Long(pb, pc+2), memory.Instr)
					}
				}
				ex.operand16 = mask.Word(b, ex.operand)
			}
		} else {
			ex.PushTriWord(ret)
		}
		ex.SeekFromEnd(2)
		lo, loOK := ex.NextByte()
		hi, hiOK := ex.NextByte()
		if !loOK || !hiOK {
			return
		}
		if pb, ok := ex.Regs.PB.Value(); ok {
			if x, xOK := ex.Regs.X.Value(); xOK {
				ptr := mask.Long(pb, ex.operand16+x)
				ex.Mem.Read(lo, ptr, memory.Pointer)
				ex.Mem.Read(hi, ptr+1, memory.Pointer)
			}
		}
		setPC(ex, mask.Word(hi, lo))
	}
}

func opJSL(ex *Executor) {
	ret := tri.UnknownWord()
	if pc, ok := ex.Regs.PC.Value(); ok {
		ret = tri.KnownWord(pc + 3)
	}
	if ex.splitOperand {
		// PB is pushed right after the 16-bit operand halves; the bank
		// operand byte arrives only after an internal cycle
		ex.PushTri(ex.Regs.PB)
		ex.NextByte()
		if b, ok := ex.NextByte(); ok {
			if pc, pcOK := ex.Regs.PC.Value(); pcOK {
				if pb, pbOK := ex.Regs.PB.Value(); pbOK {
					ex.Mem.Read(b, mask.Long(pb, pc+3), memory.Instr)
				}
			}
			ex.operandBank = b
		}
		ex.PushTriWord(ret)
	} else {
		ex.PushTri(ex.Regs.PB)
		ex.PushTriWord(ret)
	}
	setPC(ex, ex.Operand16())
	setPB(ex, ex.OperandBank())
}

func opRTS(ex *Executor) {
	ex.SeekFromEnd(3)
	ret := ex.PullWord()
	setPC(ex, ret+1)
}

func opRTL(ex *Executor) {
	ex.SeekFromEnd(3)
	ret := ex.PullWord()
	pb := ex.PullByte()
	setPC(ex, ret+1)
	setPB(ex, pb)
}

func opRTI(ex *Executor) {
	e, eKnown := ex.Regs.Flags.E.Value()
	native := eKnown && !e
	if native {
		ex.SeekFromEnd(4)
	} else {
		ex.SeekFromEnd(3)
	}
	p := ex.PullByte()
	ex.Regs.SetFromP(p)
	pc := ex.PullWord()
	setPC(ex, pc)
	if native {
		setPB(ex, ex.PullByte())
	}
}

// readVector fetches the two-byte little-endian vector at addr straight
// off the bus (it is not a stack access), tagging it Data.
func readVector(ex *Executor, addr uint32) uint16 {
	lo, _ := ex.NextByte()
	hi, _ := ex.NextByte()
	ex.Mem.Read(lo, addr, memory.Data)
	ex.Mem.Read(hi, addr+1, memory.Data)
	return uint16(hi)<<8 | uint16(lo)
}

// opBRK/opCOP are the software-interrupt entries: push PB (native mode
// only), PC+2, and P, then force I=1, D=0 and load PC from the matching
// vector -- in emulation mode the BRK/IRQ vector that hardware IRQs also
// use.
func opBRK(ex *Executor) { softInterrupt(ex, 0xFFE6, 0xFFFE) }
func opCOP(ex *Executor) { softInterrupt(ex, 0xFFE4, 0xFFF4) }

func softInterrupt(ex *Executor, nativeVec, emVec uint32) {
	e, eKnown := ex.Regs.Flags.E.Value()
	native := eKnown && !e
	ret := tri.UnknownWord()
	if pc, ok := ex.Regs.PC.Value(); ok {
		ret = tri.KnownWord(pc + 2)
	}
	if native {
		ex.PushTri(ex.Regs.PB)
	}
	ex.PushTriWord(ret)
	ex.PushP()
	ex.Regs.Flags.I = tri.KnownBit(true)
	ex.Regs.Flags.D = tri.KnownBit(false)
	setPB(ex, 0)
	vector := emVec
	if native {
		vector = nativeVec
	}
	setPC(ex, readVector(ex, vector))
}
