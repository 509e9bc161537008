package cpu

import "github.com/wdctrace/tracecore/tri"

// decimalAdd8 implements the 6502-family BCD adjustment for an 8-bit ADC,
// ported from hejops-gone/cpu/instructions.go's ADC decimal branch and
// widened to also report the decimal carry-out.
func decimalAdd8(a, b byte, carryIn bool) (sum byte, carryOut bool) {
	c := 0
	if carryIn {
		c = 1
	}
	lo := int(a&0x0F) + int(b&0x0F) + c
	hi := int(a>>4) + int(b>>4)
	if lo > 9 {
		lo -= 10
		hi++
	}
	if hi > 9 {
		hi -= 10
		carryOut = true
	}
	return byte(hi<<4 | (lo & 0x0F)), carryOut
}

func decimalSub8(a, b byte, carryIn bool) (diff byte, carryOut bool) {
	borrow := 0
	if !carryIn {
		borrow = 1
	}
	lo := int(a&0x0F) - int(b&0x0F) - borrow
	hi := int(a>>4) - int(b>>4)
	if lo < 0 {
		lo += 10
		hi--
	}
	carryOut = true
	if hi < 0 {
		hi += 10
		carryOut = false
	}
	return byte(hi<<4 | (lo & 0x0F)), carryOut
}

// overflow8/overflow16 compute the signed-overflow (V) flag for an add,
// unknown unless every input is known.
func overflow8(a, b, sum tri.Byte) tri.Bit {
	av, aok := a.Value()
	bv, bok := b.Value()
	sv, sok := sum.Value()
	if !aok || !bok || !sok {
		return tri.UnknownBit()
	}
	return tri.KnownBit((av^sv)&(bv^sv)&0x80 != 0)
}

func overflow16(a, b, sum tri.Word) tri.Bit {
	av, aok := a.Value()
	bv, bok := b.Value()
	sv, sok := sum.Value()
	if !aok || !bok || !sok {
		return tri.UnknownBit()
	}
	return tri.KnownBit((av^sv)&(bv^sv)&0x8000 != 0)
}

func opADC(ex *Executor) {
	data := dataOperand(ex)
	acc := accRead(ex)
	decimal, dKnown := ex.Regs.Flags.D.Value()

	if ex.Wide() {
		sum, carry := tri.AddWord(acc, data, ex.Regs.Flags.C)
		v := overflow16(acc, data, sum)
		if dKnown && decimal {
			if av, aok := acc.Value(); aok {
				if dv, dok := data.Value(); dok {
					if cv, cok := ex.Regs.Flags.C.Value(); cok {
						lo, c1 := decimalAdd8(byte(av), byte(dv), cv)
						hi, c2 := decimalAdd8(byte(av>>8), byte(dv>>8), c1)
						sum = tri.KnownWord(uint16(hi)<<8 | uint16(lo))
						carry = tri.KnownBit(c2)
					}
				}
			}
		}
		accWrite(ex, sum)
		ex.Regs.Flags.C = carry
		ex.Regs.Flags.V = v
		return
	}

	a8 := acc.Lo()
	d8 := data.Lo()
	sum, carry := tri.Add8(a8, d8, ex.Regs.Flags.C)
	v := overflow8(a8, d8, sum)
	if dKnown && decimal {
		if av, aok := a8.Value(); aok {
			if dv, dok := d8.Value(); dok {
				if cv, cok := ex.Regs.Flags.C.Value(); cok {
					s, c := decimalAdd8(av, dv, cv)
					sum = tri.KnownByte(s)
					carry = tri.KnownBit(c)
				}
			}
		}
	}
	ex.Regs.A = sum
	n, z := tri.SetNZ8(sum)
	ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
	ex.Regs.Flags.C = carry
	ex.Regs.Flags.V = v
}

func opSBC(ex *Executor) {
	data := dataOperand(ex)
	acc := accRead(ex)
	decimal, dKnown := ex.Regs.Flags.D.Value()

	if ex.Wide() {
		dv, dok := data.Value()
		var inv tri.Word
		if dok {
			inv = tri.KnownWord(^dv)
		} else {
			inv = tri.UnknownWord()
		}
		sum, carry := tri.AddWord(acc, inv, ex.Regs.Flags.C)
		v := overflow16(acc, inv, sum)
		if dKnown && decimal {
			if av, aok := acc.Value(); aok && dok {
				if cv, cok := ex.Regs.Flags.C.Value(); cok {
					lo, c1 := decimalSub8(byte(av), byte(dv), cv)
					hi, c2 := decimalSub8(byte(av>>8), byte(dv>>8), c1)
					sum = tri.KnownWord(uint16(hi)<<8 | uint16(lo))
					carry = tri.KnownBit(c2)
				}
			}
		}
		accWrite(ex, sum)
		ex.Regs.Flags.C = carry
		ex.Regs.Flags.V = v
		return
	}

	a8 := acc.Lo()
	d8 := data.Lo()
	dv, dok := d8.Value()
	var inv tri.Byte
	if dok {
		inv = tri.KnownByte(^dv)
	} else {
		inv = tri.UnknownByte()
	}
	sum, carry := tri.Add8(a8, inv, ex.Regs.Flags.C)
	v := overflow8(a8, inv, sum)
	if dKnown && decimal {
		if av, aok := a8.Value(); aok && dok {
			if cv, cok := ex.Regs.Flags.C.Value(); cok {
				s, c := decimalSub8(av, dv, cv)
				sum = tri.KnownByte(s)
				carry = tri.KnownBit(c)
			}
		}
	}
	ex.Regs.A = sum
	n, z := tri.SetNZ8(sum)
	ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
	ex.Regs.Flags.C = carry
	ex.Regs.Flags.V = v
}

func opAND(ex *Executor) {
	data := dataOperand(ex)
	acc := accRead(ex)
	if ex.Wide() {
		accWrite(ex, tri.AndWord(acc, data))
		return
	}
	r := tri.And8(acc.Lo(), data.Lo())
	ex.Regs.A = r
	n, z := tri.SetNZ8(r)
	ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
}

func opORA(ex *Executor) {
	data := dataOperand(ex)
	acc := accRead(ex)
	if ex.Wide() {
		accWrite(ex, tri.OrWord(acc, data))
		return
	}
	r := tri.Or8(acc.Lo(), data.Lo())
	ex.Regs.A = r
	n, z := tri.SetNZ8(r)
	ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
}

func opEOR(ex *Executor) {
	data := dataOperand(ex)
	acc := accRead(ex)
	if ex.Wide() {
		accWrite(ex, tri.XorWord(acc, data))
		return
	}
	r := tri.Xor8(acc.Lo(), data.Lo())
	ex.Regs.A = r
	n, z := tri.SetNZ8(r)
	ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
}

// opBIT handles both its memory forms (which set N/V from the operand and
// Z from the AND) and its immediate form (spec/6502 convention: immediate
// BIT only ever sets Z, leaving N/V untouched).
func opBIT(ex *Executor) {
	data := dataOperand(ex)
	acc := accRead(ex)
	if ex.Mode() == ModeImmediateM {
		if ex.Wide() {
			_, z := tri.SetNZ16(tri.AndWord(acc, data))
			ex.Regs.Flags.Z = z
		} else {
			_, z := tri.SetNZ8(tri.And8(acc.Lo(), data.Lo()))
			ex.Regs.Flags.Z = z
		}
		return
	}
	if ex.Wide() {
		_, z := tri.SetNZ16(tri.AndWord(acc, data))
		ex.Regs.Flags.Z = z
		if dv, ok := data.Value(); ok {
			ex.Regs.Flags.N = tri.KnownBit(dv&0x8000 != 0)
			ex.Regs.Flags.V = tri.KnownBit(dv&0x4000 != 0)
		} else {
			ex.Regs.Flags.N = tri.UnknownBit()
			ex.Regs.Flags.V = tri.UnknownBit()
		}
		return
	}
	_, z := tri.SetNZ8(tri.And8(acc.Lo(), data.Lo()))
	ex.Regs.Flags.Z = z
	if dv, ok := data.Lo().Value(); ok {
		ex.Regs.Flags.N = tri.KnownBit(dv&0x80 != 0)
		ex.Regs.Flags.V = tri.KnownBit(dv&0x40 != 0)
	} else {
		ex.Regs.Flags.N = tri.UnknownBit()
		ex.Regs.Flags.V = tri.UnknownBit()
	}
}

func compare(ex *Executor, reg tri.Word, wide bool) {
	data := dataOperand(ex)
	inv := tri.UnknownWord()
	if dv, ok := data.Value(); ok {
		inv = tri.KnownWord(^dv)
	}
	diff, carry := tri.AddWord(narrow(reg, wide), narrow(inv, wide), tri.KnownBit(true))
	ex.Regs.Flags.C = carry
	if wide {
		n, z := tri.SetNZ16(diff)
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
	} else {
		n, z := tri.SetNZ8(diff.Lo())
		ex.Regs.Flags.N, ex.Regs.Flags.Z = n, z
		// at 8 bits the carry out is bit 8 of the zero-extended sum
		if dv, ok := diff.Value(); ok {
			ex.Regs.Flags.C = tri.KnownBit(dv&0x100 != 0)
		}
	}
}

func opCMP(ex *Executor) { compare(ex, accRead(ex), ex.Wide()) }
func opCPX(ex *Executor) { compare(ex, ex.Regs.X, ex.Wide()) }
func opCPY(ex *Executor) { compare(ex, ex.Regs.Y, ex.Wide()) }
