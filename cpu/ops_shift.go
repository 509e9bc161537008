package cpu

import "github.com/wdctrace/tracecore/tri"

func opASL(ex *Executor) {
	if ex.Mode() == ModeAccumulator {
		acc := accRead(ex)
		if ex.Wide() {
			r, c := tri.Asl16(acc)
			accWrite(ex, r)
			ex.Regs.Flags.C = c
		} else {
			r, c := tri.Asl8(acc.Lo())
			ex.Regs.A = r
			n, z := tri.SetNZ8(r)
			ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
			ex.Regs.Flags.C = c
		}
		return
	}
	if ex.Wide() {
		r, c := tri.Asl16(tri.KnownWord(ex.DataWord()))
		ex.Regs.Flags.C = c
		setNZWidth(ex, r)
		ex.WriteWord(r.MustWord())
	} else {
		r, c := tri.Asl8(tri.KnownByte(ex.DataByte()))
		ex.Regs.Flags.C = c
		n, z := tri.SetNZ8(r)
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
		ex.WriteByte(r.MustByte())
	}
}

func opLSR(ex *Executor) {
	if ex.Mode() == ModeAccumulator {
		acc := accRead(ex)
		if ex.Wide() {
			r, c := tri.Lsr16(acc)
			accWrite(ex, r)
			ex.Regs.Flags.C = c
		} else {
			r, c := tri.Lsr8(acc.Lo())
			ex.Regs.A = r
			n, z := tri.SetNZ8(r)
			ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
			ex.Regs.Flags.C = c
		}
		return
	}
	if ex.Wide() {
		r, c := tri.Lsr16(tri.KnownWord(ex.DataWord()))
		ex.Regs.Flags.C = c
		setNZWidth(ex, r)
		ex.WriteWord(r.MustWord())
	} else {
		r, c := tri.Lsr8(tri.KnownByte(ex.DataByte()))
		ex.Regs.Flags.C = c
		n, z := tri.SetNZ8(r)
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
		ex.WriteByte(r.MustByte())
	}
}

func opROL(ex *Executor) {
	if ex.Mode() == ModeAccumulator {
		acc := accRead(ex)
		if ex.Wide() {
			r, c := tri.Rol16(acc, ex.Regs.Flags.C)
			accWrite(ex, r)
			ex.Regs.Flags.C = c
		} else {
			r, c := tri.Rol8(acc.Lo(), ex.Regs.Flags.C)
			ex.Regs.A = r
			n, z := tri.SetNZ8(r)
			ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
			ex.Regs.Flags.C = c
		}
		return
	}
	if ex.Wide() {
		r, c := tri.Rol16(tri.KnownWord(ex.DataWord()), ex.Regs.Flags.C)
		setNZWidth(ex, r)
		ex.Regs.Flags.C = c
		if v, ok := r.Value(); ok {
			ex.WriteWord(v)
		}
	} else {
		r, c := tri.Rol8(tri.KnownByte(ex.DataByte()), ex.Regs.Flags.C)
		n, z := tri.SetNZ8(r)
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
		ex.Regs.Flags.C = c
		if v, ok := r.Value(); ok {
			ex.WriteByte(v)
		}
	}
}

func opROR(ex *Executor) {
	if ex.Mode() == ModeAccumulator {
		acc := accRead(ex)
		if ex.Wide() {
			r, c := tri.Ror16(acc, ex.Regs.Flags.C)
			accWrite(ex, r)
			ex.Regs.Flags.C = c
		} else {
			r, c := tri.Ror8(acc.Lo(), ex.Regs.Flags.C)
			ex.Regs.A = r
			n, z := tri.SetNZ8(r)
			ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
			ex.Regs.Flags.C = c
		}
		return
	}
	if ex.Wide() {
		r, c := tri.Ror16(tri.KnownWord(ex.DataWord()), ex.Regs.Flags.C)
		setNZWidth(ex, r)
		ex.Regs.Flags.C = c
		if v, ok := r.Value(); ok {
			ex.WriteWord(v)
		}
	} else {
		r, c := tri.Ror8(tri.KnownByte(ex.DataByte()), ex.Regs.Flags.C)
		n, z := tri.SetNZ8(r)
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
		ex.Regs.Flags.C = c
		if v, ok := r.Value(); ok {
			ex.WriteByte(v)
		}
	}
}

func opINC(ex *Executor) { incDecMem(ex, 1) }
func opDEC(ex *Executor) { incDecMem(ex, -1) }

func incDecMem(ex *Executor, delta int) {
	if ex.Mode() == ModeAccumulator {
		acc := accRead(ex)
		if ex.Wide() {
			r := tri.KnownWord(0)
			if v, ok := acc.Value(); ok {
				r = tri.KnownWord(uint16(int(v) + delta))
			} else {
				r = tri.UnknownWord()
			}
			accWrite(ex, r)
		} else {
			v, ok := acc.Lo().Value()
			var r tri.Byte
			if ok {
				r = tri.KnownByte(byte(int(v) + delta))
			} else {
				r = tri.UnknownByte()
			}
			ex.Regs.A = r
			n, z := tri.SetNZ8(r)
			ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
		}
		return
	}
	if ex.Wide() {
		r := uint16(int(ex.DataWord()) + delta)
		setNZWidth(ex, tri.KnownWord(r))
		ex.WriteWord(r)
	} else {
		r := byte(int(ex.DataByte()) + delta)
		n, z := tri.SetNZ8(tri.KnownByte(r))
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
		ex.WriteByte(r)
	}
}

// opTSB sets Z from (acc AND mem) and ORs acc into mem, without touching N
// or C (spec/65C816 convention, ported in spirit from hejops-gone's BIT
// handling of the Z flag).
func opTSB(ex *Executor) {
	acc := accRead(ex)
	if ex.Wide() {
		mem := tri.KnownWord(ex.DataWord())
		_, z := tri.SetNZ16(tri.AndWord(acc, mem))
		ex.Regs.Flags.Z = z
		if v, ok := tri.OrWord(mem, acc).Value(); ok {
			ex.WriteWord(v)
		} else {
			ex.ObservedWriteWord()
		}
		return
	}
	mem := tri.KnownByte(ex.DataByte())
	_, z := tri.SetNZ8(tri.And8(acc.Lo(), mem))
	ex.Regs.Flags.Z = z
	if v, ok := tri.Or8(mem, acc.Lo()).Value(); ok {
		ex.WriteByte(v)
	} else {
		ex.ObservedWriteByte()
	}
}

// opTRB clears the bits of mem that are set in acc, setting Z the same way
// TSB does.
func opTRB(ex *Executor) {
	acc := accRead(ex)
	if ex.Wide() {
		mem := tri.KnownWord(ex.DataWord())
		_, z := tri.SetNZ16(tri.AndWord(acc, mem))
		ex.Regs.Flags.Z = z
		notAcc := tri.UnknownWord()
		if v, ok := acc.Value(); ok {
			notAcc = tri.KnownWord(^v)
		}
		if v, ok := tri.AndWord(mem, notAcc).Value(); ok {
			ex.WriteWord(v)
		} else {
			ex.ObservedWriteWord()
		}
		return
	}
	mem := tri.KnownByte(ex.DataByte())
	_, z := tri.SetNZ8(tri.And8(acc.Lo(), mem))
	ex.Regs.Flags.Z = z
	notAcc := tri.UnknownByte()
	if v, ok := acc.Lo().Value(); ok {
		notAcc = tri.KnownByte(^v)
	}
	if v, ok := tri.And8(mem, notAcc).Value(); ok {
		ex.WriteByte(v)
	} else {
		ex.ObservedWriteByte()
	}
}
