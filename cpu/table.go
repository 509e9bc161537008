package cpu

// Hook performs an opcode's symbolic semantics against the executor's
// current operand and effective address, updating Regs and/or issuing the
// data-phase memory check through ex.Mem. Ported in spirit from
// hejops-gone/cpu/instructions.go's per-opcode closures, widened from
// "always-known 6502 byte in, byte out" to tri-state 65C816 registers.
type Hook func(ex *Executor)

// Entry is one row of the 256-entry instruction table (spec §4.1/§4.3).
// M1/M2/X1 record membership in the cycle-extra-cost mnemonic sets spec
// §4.3 names; cycles.go reads them to compute the width-dependent extra
// cycle(s) rather than baking width logic into the table itself.
type Entry struct {
	Mnemonic   string
	Mode       Mode
	Base       int // base cycle count at minimum widths, 0 extra pages/branches
	Kind       OpKind
	NewOp      bool // not present on the 6502 the teacher's table was built for
	M1, M2, X1 bool
	Hook       Hook
}

// Table is the full 256-entry opcode table, indexed by opcode byte.
var Table [256]Entry

func op(code byte, mnem string, mode Mode, base int, kind OpKind, newOp bool, m1, m2, x1 bool, hook Hook) {
	Table[code] = Entry{Mnemonic: mnem, Mode: mode, Base: base, Kind: kind, NewOp: newOp, M1: m1, M2: m2, X1: x1, Hook: hook}
}

func init() {
	for i := range Table {
		Table[i] = Entry{Mnemonic: "???", Mode: ModeImplied, Base: 0, Kind: OpOther, Hook: opInvalid}
	}

	op(0x00, "BRK", ModeImmediate8, 7, OpOther, false, false, false, false, opBRK)
	op(0x01, "ORA", ModeDirectIndirectX, 6, OpRead, false, true, false, false, opORA)
	op(0x02, "COP", ModeImmediate8, 7, OpOther, true, false, false, false, opCOP)
	op(0x03, "ORA", ModeStackRelative, 4, OpRead, true, true, false, false, opORA)
	op(0x04, "TSB", ModeDirect, 5, OpRMW, true, false, true, false, opTSB)
	op(0x05, "ORA", ModeDirect, 3, OpRead, false, true, false, false, opORA)
	op(0x06, "ASL", ModeDirect, 5, OpRMW, false, false, true, false, opASL)
	op(0x07, "ORA", ModeDirectIndirectLong, 6, OpRead, true, true, false, false, opORA)
	op(0x08, "PHP", ModeImplied, 3, OpOther, false, false, false, false, opPHP)
	op(0x09, "ORA", ModeImmediateM, 2, OpRead, false, true, false, false, opORA)
	op(0x0A, "ASL", ModeAccumulator, 2, OpRMW, false, false, false, false, opASL)
	op(0x0B, "PHD", ModeImplied, 4, OpOther, true, false, false, false, opPHD)
	op(0x0C, "TSB", ModeAbsolute, 6, OpRMW, true, false, true, false, opTSB)
	op(0x0D, "ORA", ModeAbsolute, 4, OpRead, false, true, false, false, opORA)
	op(0x0E, "ASL", ModeAbsolute, 6, OpRMW, false, false, true, false, opASL)
	op(0x0F, "ORA", ModeAbsoluteLong, 5, OpRead, true, true, false, false, opORA)

	op(0x10, "BPL", ModeRelative8, 2, OpBranch, false, false, false, false, opBPL)
	op(0x11, "ORA", ModeDirectIndirectY, 5, OpRead, false, true, false, false, opORA)
	op(0x12, "ORA", ModeDirectIndirect, 5, OpRead, true, true, false, false, opORA)
	op(0x13, "ORA", ModeStackRelativeIndirectY, 7, OpRead, true, true, false, false, opORA)
	op(0x14, "TRB", ModeDirect, 5, OpRMW, true, false, true, false, opTRB)
	op(0x15, "ORA", ModeDirectX, 4, OpRead, false, true, false, false, opORA)
	op(0x16, "ASL", ModeDirectX, 6, OpRMW, false, false, true, false, opASL)
	op(0x17, "ORA", ModeDirectIndirectLongY, 6, OpRead, true, true, false, false, opORA)
	op(0x18, "CLC", ModeImplied, 2, OpOther, false, false, false, false, opCLC)
	op(0x19, "ORA", ModeAbsoluteY, 4, OpRead, false, true, false, false, opORA)
	op(0x1A, "INC", ModeAccumulator, 2, OpRMW, true, false, false, false, opINC)
	op(0x1B, "TCS", ModeImplied, 2, OpOther, true, false, false, false, opTCS)
	op(0x1C, "TRB", ModeAbsolute, 6, OpRMW, true, false, true, false, opTRB)
	op(0x1D, "ORA", ModeAbsoluteX, 4, OpRead, false, true, false, false, opORA)
	op(0x1E, "ASL", ModeAbsoluteX, 7, OpRMW, false, false, true, false, opASL)
	op(0x1F, "ORA", ModeAbsoluteLongX, 5, OpRead, true, true, false, false, opORA)

	op(0x20, "JSR", ModeAbsolute, 6, OpOther, false, false, false, false, opJSR)
	op(0x21, "AND", ModeDirectIndirectX, 6, OpRead, false, true, false, false, opAND)
	op(0x22, "JSL", ModeAbsoluteLong, 8, OpOther, true, false, false, false, opJSL)
	op(0x23, "AND", ModeStackRelative, 4, OpRead, true, true, false, false, opAND)
	op(0x24, "BIT", ModeDirect, 3, OpRead, false, true, false, false, opBIT)
	op(0x25, "AND", ModeDirect, 3, OpRead, false, true, false, false, opAND)
	op(0x26, "ROL", ModeDirect, 5, OpRMW, false, false, true, false, opROL)
	op(0x27, "AND", ModeDirectIndirectLong, 6, OpRead, true, true, false, false, opAND)
	op(0x28, "PLP", ModeImplied, 4, OpOther, false, false, false, false, opPLP)
	op(0x29, "AND", ModeImmediateM, 2, OpRead, false, true, false, false, opAND)
	op(0x2A, "ROL", ModeAccumulator, 2, OpRMW, false, false, false, false, opROL)
	op(0x2B, "PLD", ModeImplied, 5, OpOther, true, false, false, false, opPLD)
	op(0x2C, "BIT", ModeAbsolute, 4, OpRead, false, true, false, false, opBIT)
	op(0x2D, "AND", ModeAbsolute, 4, OpRead, false, true, false, false, opAND)
	op(0x2E, "ROL", ModeAbsolute, 6, OpRMW, false, false, true, false, opROL)
	op(0x2F, "AND", ModeAbsoluteLong, 5, OpRead, true, true, false, false, opAND)

	op(0x30, "BMI", ModeRelative8, 2, OpBranch, false, false, false, false, opBMI)
	op(0x31, "AND", ModeDirectIndirectY, 5, OpRead, false, true, false, false, opAND)
	op(0x32, "AND", ModeDirectIndirect, 5, OpRead, true, true, false, false, opAND)
	op(0x33, "AND", ModeStackRelativeIndirectY, 7, OpRead, true, true, false, false, opAND)
	op(0x34, "BIT", ModeDirectX, 4, OpRead, true, true, false, false, opBIT)
	op(0x35, "AND", ModeDirectX, 4, OpRead, false, true, false, false, opAND)
	op(0x36, "ROL", ModeDirectX, 6, OpRMW, false, false, true, false, opROL)
	op(0x37, "AND", ModeDirectIndirectLongY, 6, OpRead, true, true, false, false, opAND)
	op(0x38, "SEC", ModeImplied, 2, OpOther, false, false, false, false, opSEC)
	op(0x39, "AND", ModeAbsoluteY, 4, OpRead, false, true, false, false, opAND)
	op(0x3A, "DEC", ModeAccumulator, 2, OpRMW, true, false, false, false, opDEC)
	op(0x3B, "TSC", ModeImplied, 2, OpOther, true, false, false, false, opTSC)
	op(0x3C, "BIT", ModeAbsoluteX, 4, OpRead, true, true, false, false, opBIT)
	op(0x3D, "AND", ModeAbsoluteX, 4, OpRead, false, true, false, false, opAND)
	op(0x3E, "ROL", ModeAbsoluteX, 7, OpRMW, false, false, true, false, opROL)
	op(0x3F, "AND", ModeAbsoluteLongX, 5, OpRead, true, true, false, false, opAND)

	op(0x40, "RTI", ModeImplied, 6, OpOther, false, false, false, false, opRTI)
	op(0x41, "EOR", ModeDirectIndirectX, 6, OpRead, false, true, false, false, opEOR)
	op(0x42, "WDM", ModeImmediate8, 2, OpOther, true, false, false, false, opWDM)
	op(0x43, "EOR", ModeStackRelative, 4, OpRead, true, true, false, false, opEOR)
	op(0x44, "MVP", ModeBlockMove, 7, OpOther, true, false, false, false, opMVP)
	op(0x45, "EOR", ModeDirect, 3, OpRead, false, true, false, false, opEOR)
	op(0x46, "LSR", ModeDirect, 5, OpRMW, false, false, true, false, opLSR)
	op(0x47, "EOR", ModeDirectIndirectLong, 6, OpRead, true, true, false, false, opEOR)
	op(0x48, "PHA", ModeImplied, 3, OpOther, false, true, false, false, opPHA)
	op(0x49, "EOR", ModeImmediateM, 2, OpRead, false, true, false, false, opEOR)
	op(0x4A, "LSR", ModeAccumulator, 2, OpRMW, false, false, false, false, opLSR)
	op(0x4B, "PHK", ModeImplied, 3, OpOther, true, false, false, false, opPHK)
	op(0x4C, "JMP", ModeAbsolute, 3, OpOther, false, false, false, false, opJMP)
	op(0x4D, "EOR", ModeAbsolute, 4, OpRead, false, true, false, false, opEOR)
	op(0x4E, "LSR", ModeAbsolute, 6, OpRMW, false, false, true, false, opLSR)
	op(0x4F, "EOR", ModeAbsoluteLong, 5, OpRead, true, true, false, false, opEOR)

	op(0x50, "BVC", ModeRelative8, 2, OpBranch, false, false, false, false, opBVC)
	op(0x51, "EOR", ModeDirectIndirectY, 5, OpRead, false, true, false, false, opEOR)
	op(0x52, "EOR", ModeDirectIndirect, 5, OpRead, true, true, false, false, opEOR)
	op(0x53, "EOR", ModeStackRelativeIndirectY, 7, OpRead, true, true, false, false, opEOR)
	op(0x54, "MVN", ModeBlockMove, 7, OpOther, true, false, false, false, opMVN)
	op(0x55, "EOR", ModeDirectX, 4, OpRead, false, true, false, false, opEOR)
	op(0x56, "LSR", ModeDirectX, 6, OpRMW, false, false, true, false, opLSR)
	op(0x57, "EOR", ModeDirectIndirectLongY, 6, OpRead, true, true, false, false, opEOR)
	op(0x58, "CLI", ModeImplied, 2, OpOther, false, false, false, false, opCLI)
	op(0x59, "EOR", ModeAbsoluteY, 4, OpRead, false, true, false, false, opEOR)
	op(0x5A, "PHY", ModeImplied, 3, OpOther, false, false, false, true, opPHY)
	op(0x5B, "TCD", ModeImplied, 2, OpOther, true, false, false, false, opTCD)
	op(0x5C, "JML", ModeAbsoluteLong, 4, OpOther, true, false, false, false, opJML)
	op(0x5D, "EOR", ModeAbsoluteX, 4, OpRead, false, true, false, false, opEOR)
	op(0x5E, "LSR", ModeAbsoluteX, 7, OpRMW, false, false, true, false, opLSR)
	op(0x5F, "EOR", ModeAbsoluteLongX, 5, OpRead, true, true, false, false, opEOR)

	op(0x60, "RTS", ModeImplied, 6, OpOther, false, false, false, false, opRTS)
	op(0x61, "ADC", ModeDirectIndirectX, 6, OpRead, false, true, false, false, opADC)
	op(0x62, "PER", ModeRelative16, 6, OpOther, true, false, false, false, opPER)
	op(0x63, "ADC", ModeStackRelative, 4, OpRead, true, true, false, false, opADC)
	op(0x64, "STZ", ModeDirect, 3, OpWrite, true, true, false, false, opSTZ)
	op(0x65, "ADC", ModeDirect, 3, OpRead, false, true, false, false, opADC)
	op(0x66, "ROR", ModeDirect, 5, OpRMW, false, false, true, false, opROR)
	op(0x67, "ADC", ModeDirectIndirectLong, 6, OpRead, true, true, false, false, opADC)
	op(0x68, "PLA", ModeImplied, 4, OpOther, false, true, false, false, opPLA)
	op(0x69, "ADC", ModeImmediateM, 2, OpRead, false, true, false, false, opADC)
	op(0x6A, "ROR", ModeAccumulator, 2, OpRMW, false, false, false, false, opROR)
	op(0x6B, "RTL", ModeImplied, 6, OpOther, true, false, false, false, opRTL)
	op(0x6C, "JMP", ModeAbsoluteIndirect, 5, OpOther, false, false, false, false, opJMP)
	op(0x6D, "ADC", ModeAbsolute, 4, OpRead, false, true, false, false, opADC)
	op(0x6E, "ROR", ModeAbsolute, 6, OpRMW, false, false, true, false, opROR)
	op(0x6F, "ADC", ModeAbsoluteLong, 5, OpRead, true, true, false, false, opADC)

	op(0x70, "BVS", ModeRelative8, 2, OpBranch, false, false, false, false, opBVS)
	op(0x71, "ADC", ModeDirectIndirectY, 5, OpRead, false, true, false, false, opADC)
	op(0x72, "ADC", ModeDirectIndirect, 5, OpRead, true, true, false, false, opADC)
	op(0x73, "ADC", ModeStackRelativeIndirectY, 7, OpRead, true, true, false, false, opADC)
	op(0x74, "STZ", ModeDirectX, 4, OpWrite, true, true, false, false, opSTZ)
	op(0x75, "ADC", ModeDirectX, 4, OpRead, false, true, false, false, opADC)
	op(0x76, "ROR", ModeDirectX, 6, OpRMW, false, false, true, false, opROR)
	op(0x77, "ADC", ModeDirectIndirectLongY, 6, OpRead, true, true, false, false, opADC)
	op(0x78, "SEI", ModeImplied, 2, OpOther, false, false, false, false, opSEI)
	op(0x79, "ADC", ModeAbsoluteY, 4, OpRead, false, true, false, false, opADC)
	op(0x7A, "PLY", ModeImplied, 4, OpOther, false, false, false, true, opPLY)
	op(0x7B, "TDC", ModeImplied, 2, OpOther, true, false, false, false, opTDC)
	op(0x7C, "JMP", ModeAbsoluteIndirectX, 6, OpOther, true, false, false, false, opJMP)
	op(0x7D, "ADC", ModeAbsoluteX, 4, OpRead, false, true, false, false, opADC)
	op(0x7E, "ROR", ModeAbsoluteX, 7, OpRMW, false, false, true, false, opROR)
	op(0x7F, "ADC", ModeAbsoluteLongX, 5, OpRead, true, true, false, false, opADC)

	op(0x80, "BRA", ModeRelative8, 3, OpBranch, true, false, false, false, opBRA)
	op(0x81, "STA", ModeDirectIndirectX, 6, OpWrite, false, true, false, false, opSTA)
	op(0x82, "BRL", ModeRelative16, 4, OpOther, true, false, false, false, opBRL)
	op(0x83, "STA", ModeStackRelative, 4, OpWrite, true, true, false, false, opSTA)
	op(0x84, "STY", ModeDirect, 3, OpWrite, false, false, false, true, opSTY)
	op(0x85, "STA", ModeDirect, 3, OpWrite, false, true, false, false, opSTA)
	op(0x86, "STX", ModeDirect, 3, OpWrite, false, false, false, true, opSTX)
	op(0x87, "STA", ModeDirectIndirectLong, 6, OpWrite, true, true, false, false, opSTA)
	op(0x88, "DEY", ModeImplied, 2, OpOther, false, false, false, false, opDEY)
	op(0x89, "BIT", ModeImmediateM, 2, OpOther, false, true, false, false, opBIT)
	op(0x8A, "TXA", ModeImplied, 2, OpOther, false, false, false, false, opTXA)
	op(0x8B, "PHB", ModeImplied, 3, OpOther, true, false, false, false, opPHB)
	op(0x8C, "STY", ModeAbsolute, 4, OpWrite, false, false, false, true, opSTY)
	op(0x8D, "STA", ModeAbsolute, 4, OpWrite, false, true, false, false, opSTA)
	op(0x8E, "STX", ModeAbsolute, 4, OpWrite, false, false, false, true, opSTX)
	op(0x8F, "STA", ModeAbsoluteLong, 5, OpWrite, true, true, false, false, opSTA)

	op(0x90, "BCC", ModeRelative8, 2, OpBranch, false, false, false, false, opBCC)
	op(0x91, "STA", ModeDirectIndirectY, 6, OpWrite, false, true, false, false, opSTA)
	op(0x92, "STA", ModeDirectIndirect, 5, OpWrite, true, true, false, false, opSTA)
	op(0x93, "STA", ModeStackRelativeIndirectY, 7, OpWrite, true, true, false, false, opSTA)
	op(0x94, "STY", ModeDirectX, 4, OpWrite, false, false, false, true, opSTY)
	op(0x95, "STA", ModeDirectX, 4, OpWrite, false, true, false, false, opSTA)
	op(0x96, "STX", ModeDirectY, 4, OpWrite, false, false, false, true, opSTX)
	op(0x97, "STA", ModeDirectIndirectLongY, 6, OpWrite, true, true, false, false, opSTA)
	op(0x98, "TYA", ModeImplied, 2, OpOther, false, false, false, false, opTYA)
	op(0x99, "STA", ModeAbsoluteY, 5, OpWrite, false, true, false, false, opSTA)
	op(0x9A, "TXS", ModeImplied, 2, OpOther, false, false, false, false, opTXS)
	op(0x9B, "TXY", ModeImplied, 2, OpOther, true, false, false, false, opTXY)
	op(0x9C, "STZ", ModeAbsolute, 4, OpWrite, true, true, false, false, opSTZ)
	op(0x9D, "STA", ModeAbsoluteX, 5, OpWrite, false, true, false, false, opSTA)
	op(0x9E, "STZ", ModeAbsoluteX, 5, OpWrite, true, true, false, false, opSTZ)
	op(0x9F, "STA", ModeAbsoluteLongX, 5, OpWrite, true, true, false, false, opSTA)

	op(0xA0, "LDY", ModeImmediateX, 2, OpOther, false, false, false, true, opLDY)
	op(0xA1, "LDA", ModeDirectIndirectX, 6, OpRead, false, true, false, false, opLDA)
	op(0xA2, "LDX", ModeImmediateX, 2, OpOther, false, false, false, true, opLDX)
	op(0xA3, "LDA", ModeStackRelative, 4, OpRead, true, true, false, false, opLDA)
	op(0xA4, "LDY", ModeDirect, 3, OpRead, false, false, false, true, opLDY)
	op(0xA5, "LDA", ModeDirect, 3, OpRead, false, true, false, false, opLDA)
	op(0xA6, "LDX", ModeDirect, 3, OpRead, false, false, false, true, opLDX)
	op(0xA7, "LDA", ModeDirectIndirectLong, 6, OpRead, true, true, false, false, opLDA)
	op(0xA8, "TAY", ModeImplied, 2, OpOther, false, false, false, false, opTAY)
	op(0xA9, "LDA", ModeImmediateM, 2, OpRead, false, true, false, false, opLDA)
	op(0xAA, "TAX", ModeImplied, 2, OpOther, false, false, false, false, opTAX)
	op(0xAB, "PLB", ModeImplied, 4, OpOther, true, false, false, false, opPLB)
	op(0xAC, "LDY", ModeAbsolute, 4, OpRead, false, false, false, true, opLDY)
	op(0xAD, "LDA", ModeAbsolute, 4, OpRead, false, true, false, false, opLDA)
	op(0xAE, "LDX", ModeAbsolute, 4, OpRead, false, false, false, true, opLDX)
	op(0xAF, "LDA", ModeAbsoluteLong, 5, OpRead, true, true, false, false, opLDA)

	op(0xB0, "BCS", ModeRelative8, 2, OpBranch, false, false, false, false, opBCS)
	op(0xB1, "LDA", ModeDirectIndirectY, 5, OpRead, false, true, false, false, opLDA)
	op(0xB2, "LDA", ModeDirectIndirect, 5, OpRead, true, true, false, false, opLDA)
	op(0xB3, "LDA", ModeStackRelativeIndirectY, 7, OpRead, true, true, false, false, opLDA)
	op(0xB4, "LDY", ModeDirectX, 4, OpRead, false, false, false, true, opLDY)
	op(0xB5, "LDA", ModeDirectX, 4, OpRead, false, true, false, false, opLDA)
	op(0xB6, "LDX", ModeDirectY, 4, OpRead, false, false, false, true, opLDX)
	op(0xB7, "LDA", ModeDirectIndirectLongY, 6, OpRead, true, true, false, false, opLDA)
	op(0xB8, "CLV", ModeImplied, 2, OpOther, false, false, false, false, opCLV)
	op(0xB9, "LDA", ModeAbsoluteY, 4, OpRead, false, true, false, false, opLDA)
	op(0xBA, "TSX", ModeImplied, 2, OpOther, false, false, false, false, opTSX)
	op(0xBB, "TYX", ModeImplied, 2, OpOther, true, false, false, false, opTYX)
	op(0xBC, "LDY", ModeAbsoluteX, 4, OpRead, false, false, false, true, opLDY)
	op(0xBD, "LDA", ModeAbsoluteX, 4, OpRead, false, true, false, false, opLDA)
	op(0xBE, "LDX", ModeAbsoluteY, 4, OpRead, false, false, false, true, opLDX)
	op(0xBF, "LDA", ModeAbsoluteLongX, 5, OpRead, true, true, false, false, opLDA)

	op(0xC0, "CPY", ModeImmediateX, 2, OpOther, false, false, false, true, opCPY)
	op(0xC1, "CMP", ModeDirectIndirectX, 6, OpRead, false, true, false, false, opCMP)
	op(0xC2, "REP", ModeImmediate8, 3, OpOther, true, false, false, false, opREP)
	op(0xC3, "CMP", ModeStackRelative, 4, OpRead, true, true, false, false, opCMP)
	op(0xC4, "CPY", ModeDirect, 3, OpRead, false, false, false, true, opCPY)
	op(0xC5, "CMP", ModeDirect, 3, OpRead, false, true, false, false, opCMP)
	op(0xC6, "DEC", ModeDirect, 5, OpRMW, false, false, true, false, opDEC)
	op(0xC7, "CMP", ModeDirectIndirectLong, 6, OpRead, true, true, false, false, opCMP)
	op(0xC8, "INY", ModeImplied, 2, OpOther, false, false, false, false, opINY)
	op(0xC9, "CMP", ModeImmediateM, 2, OpRead, false, true, false, false, opCMP)
	op(0xCA, "DEX", ModeImplied, 2, OpOther, false, false, false, false, opDEX)
	op(0xCB, "WAI", ModeImplied, 3, OpOther, true, false, false, false, opWAI)
	op(0xCC, "CPY", ModeAbsolute, 4, OpRead, false, false, false, true, opCPY)
	op(0xCD, "CMP", ModeAbsolute, 4, OpRead, false, true, false, false, opCMP)
	op(0xCE, "DEC", ModeAbsolute, 6, OpRMW, false, false, true, false, opDEC)
	op(0xCF, "CMP", ModeAbsoluteLong, 5, OpRead, true, true, false, false, opCMP)

	op(0xD0, "BNE", ModeRelative8, 2, OpBranch, false, false, false, false, opBNE)
	op(0xD1, "CMP", ModeDirectIndirectY, 5, OpRead, false, true, false, false, opCMP)
	op(0xD2, "CMP", ModeDirectIndirect, 5, OpRead, true, true, false, false, opCMP)
	op(0xD3, "CMP", ModeStackRelativeIndirectY, 7, OpRead, true, true, false, false, opCMP)
	op(0xD4, "PEI", ModeDirectIndirect, 6, OpOther, true, false, false, false, opPEI)
	op(0xD5, "CMP", ModeDirectX, 4, OpRead, false, true, false, false, opCMP)
	op(0xD6, "DEC", ModeDirectX, 6, OpRMW, false, false, true, false, opDEC)
	op(0xD7, "CMP", ModeDirectIndirectLongY, 6, OpRead, true, true, false, false, opCMP)
	op(0xD8, "CLD", ModeImplied, 2, OpOther, false, false, false, false, opCLD)
	op(0xD9, "CMP", ModeAbsoluteY, 4, OpRead, false, true, false, false, opCMP)
	op(0xDA, "PHX", ModeImplied, 3, OpOther, false, false, false, true, opPHX)
	op(0xDB, "STP", ModeImplied, 3, OpOther, true, false, false, false, opSTP)
	op(0xDC, "JML", ModeAbsoluteIndirectLong, 6, OpOther, true, false, false, false, opJML)
	op(0xDD, "CMP", ModeAbsoluteX, 4, OpRead, false, true, false, false, opCMP)
	op(0xDE, "DEC", ModeAbsoluteX, 7, OpRMW, false, false, true, false, opDEC)
	op(0xDF, "CMP", ModeAbsoluteLongX, 5, OpRead, true, true, false, false, opCMP)

	op(0xE0, "CPX", ModeImmediateX, 2, OpOther, false, false, false, true, opCPX)
	op(0xE1, "SBC", ModeDirectIndirectX, 6, OpRead, false, true, false, false, opSBC)
	op(0xE2, "SEP", ModeImmediate8, 3, OpOther, true, false, false, false, opSEP)
	op(0xE3, "SBC", ModeStackRelative, 4, OpRead, true, true, false, false, opSBC)
	op(0xE4, "CPX", ModeDirect, 3, OpRead, false, false, false, true, opCPX)
	op(0xE5, "SBC", ModeDirect, 3, OpRead, false, true, false, false, opSBC)
	op(0xE6, "INC", ModeDirect, 5, OpRMW, false, false, true, false, opINC)
	op(0xE7, "SBC", ModeDirectIndirectLong, 6, OpRead, true, true, false, false, opSBC)
	op(0xE8, "INX", ModeImplied, 2, OpOther, false, false, false, false, opINX)
	op(0xE9, "SBC", ModeImmediateM, 2, OpRead, false, true, false, false, opSBC)
	op(0xEA, "NOP", ModeImplied, 2, OpOther, false, false, false, false, opNOP)
	op(0xEB, "XBA", ModeImplied, 3, OpOther, true, false, false, false, opXBA)
	op(0xEC, "CPX", ModeAbsolute, 4, OpRead, false, false, false, true, opCPX)
	op(0xED, "SBC", ModeAbsolute, 4, OpRead, false, true, false, false, opSBC)
	op(0xEE, "INC", ModeAbsolute, 6, OpRMW, false, false, true, false, opINC)
	op(0xEF, "SBC", ModeAbsoluteLong, 5, OpRead, true, true, false, false, opSBC)

	op(0xF0, "BEQ", ModeRelative8, 2, OpBranch, false, false, false, false, opBEQ)
	op(0xF1, "SBC", ModeDirectIndirectY, 5, OpRead, false, true, false, false, opSBC)
	op(0xF2, "SBC", ModeDirectIndirect, 5, OpRead, true, true, false, false, opSBC)
	op(0xF3, "SBC", ModeStackRelativeIndirectY, 7, OpRead, true, true, false, false, opSBC)
	op(0xF4, "PEA", ModeAbsolute, 5, OpOther, true, false, false, false, opPEA)
	op(0xF5, "SBC", ModeDirectX, 4, OpRead, false, true, false, false, opSBC)
	op(0xF6, "INC", ModeDirectX, 6, OpRMW, false, false, true, false, opINC)
	op(0xF7, "SBC", ModeDirectIndirectLongY, 6, OpRead, true, true, false, false, opSBC)
	op(0xF8, "SED", ModeImplied, 2, OpOther, false, false, false, false, opSED)
	op(0xF9, "SBC", ModeAbsoluteY, 4, OpRead, false, true, false, false, opSBC)
	op(0xFA, "PLX", ModeImplied, 4, OpOther, false, false, false, true, opPLX)
	op(0xFB, "XCE", ModeImplied, 2, OpOther, true, false, false, false, opXCE)
	op(0xFC, "JSR", ModeAbsoluteIndirectX, 8, OpOther, true, false, false, false, opJSR)
	op(0xFD, "SBC", ModeAbsoluteX, 4, OpRead, false, true, false, false, opSBC)
	op(0xFE, "INC", ModeAbsoluteX, 7, OpRMW, false, false, true, false, opINC)
	op(0xFF, "SBC", ModeAbsoluteLongX, 5, OpRead, true, true, false, false, opSBC)
}
