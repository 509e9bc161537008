package cpu

import "github.com/wdctrace/tracecore/tri"

func opLDA(ex *Executor) { accWrite(ex, dataOperand(ex)) }

func opLDX(ex *Executor) {
	v := dataOperand(ex)
	ex.Regs.X = narrow(v, ex.Wide())
	setNZWidth(ex, v)
}

func opLDY(ex *Executor) {
	v := dataOperand(ex)
	ex.Regs.Y = narrow(v, ex.Wide())
	setNZWidth(ex, v)
}

// opSTA treats the observed bus value as authoritative: a known A is
// verified against it, but an unknown A adopts the observed value instead
// of leaving the shadow cell (and A itself) untouched (spec §4.6).
func opSTA(ex *Executor) {
	acc := accRead(ex)
	if ex.Wide() {
		if v, ok := acc.Value(); ok {
			ex.WriteWord(v)
			return
		}
		if v, ok := ex.ObservedWriteWord(); ok {
			ex.Regs.SetC(tri.KnownWord(v))
		}
		return
	}
	if v, ok := acc.Lo().Value(); ok {
		ex.WriteByte(v)
		return
	}
	if v, ok := ex.ObservedWriteByte(); ok {
		ex.Regs.A = tri.KnownByte(v)
	}
}

func opSTX(ex *Executor) {
	if ex.Wide() {
		if v, ok := ex.Regs.X.Value(); ok {
			ex.WriteWord(v)
			return
		}
		if v, ok := ex.ObservedWriteWord(); ok {
			ex.Regs.X = tri.KnownWord(v)
		}
		return
	}
	if v, ok := ex.Regs.X.Lo().Value(); ok {
		ex.WriteByte(v)
		return
	}
	if v, ok := ex.ObservedWriteByte(); ok {
		ex.Regs.X = tri.KnownWord(uint16(v))
	}
}

func opSTY(ex *Executor) {
	if ex.Wide() {
		if v, ok := ex.Regs.Y.Value(); ok {
			ex.WriteWord(v)
			return
		}
		if v, ok := ex.ObservedWriteWord(); ok {
			ex.Regs.Y = tri.KnownWord(v)
		}
		return
	}
	if v, ok := ex.Regs.Y.Lo().Value(); ok {
		ex.WriteByte(v)
		return
	}
	if v, ok := ex.ObservedWriteByte(); ok {
		ex.Regs.Y = tri.KnownWord(uint16(v))
	}
}

// opSTZ stores zero, regardless of accumulator width, the one store whose
// value is never actually in question.
func opSTZ(ex *Executor) {
	if ex.Wide() {
		ex.WriteWord(0)
		return
	}
	ex.WriteByte(0)
}
