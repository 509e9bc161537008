package cpu

import (
	"github.com/wdctrace/tracecore/mask"
	"github.com/wdctrace/tracecore/memory"
	"github.com/wdctrace/tracecore/sample"
	"github.com/wdctrace/tracecore/tri"
)

// Executor threads the register file and the shadow memory model through
// one instruction's worth of symbolic execution (spec §4.5), the same
// "single owned struct, no package globals" shape hejops-gone/cpu/cpu.go
// uses for its Cpu type. It never invents bus data: every byte it reasons
// about came from a sample already captured in the trace window.
type Executor struct {
	Regs *Registers
	Mem  *memory.Shadow
	Logf func(format string, args ...any)
	Fail bool

	win    sample.Window
	base   int
	count  int // total cycle count from the sync hints, or -1
	cursor int

	entry Entry
	mode  Mode
	wide  bool // this instruction's operand/data width, resolved for M1/M2/X1 entries

	operand     byte
	operand16   uint16
	operandBank byte // third byte of a 24-bit long operand, when present
	ea          uint32
	eaValid     bool

	ptrBytes   []byte // observed indirect-pointer bytes, in bus order
	dataBytes  []byte // observed read-phase bytes, in bus (little-endian) order
	writeBytes []byte // observed write-phase bytes

	// 0x22/0xFC interleave their operand fetches with stack pushes; when a
	// sync hint pins the cycle count, the hook takes over the later operand
	// bytes itself.
	splitOperand bool

	branchTaken bool
	pageCrossed bool
	stopped     bool
	waiting     bool

	instr Instr
}

// Instr is the record of one decoded instruction (spec §3.6): the opcode,
// its operand bytes, and the program counter / bank at fetch time.
type Instr struct {
	Opcode      byte
	Operands    [3]byte
	NumOperands int
	PC          tri.Word
	PB          tri.Byte
}

// Disassemble renders the recorded instruction (spec §6.1's
// disassemble(out_buffer, instr)).
func (i Instr) Disassemble() string {
	pc, ok := i.PC.Value()
	return Disassemble(Table[i.Opcode], i.Operands[:i.NumOperands], pc, ok)
}

func (ex *Executor) logf(format string, args ...any) {
	if ex.Logf != nil {
		ex.Logf(format, args...)
	}
	if ex.Mem != nil && ex.Mem.Logf != nil {
		ex.Mem.Logf(format, args...)
	}
}

func (ex *Executor) wideM() bool {
	v, ok := ex.Regs.Flags.MS.Value()
	return ok && !v
}

func (ex *Executor) wideX() bool {
	v, ok := ex.Regs.Flags.XS.Value()
	return ok && !v
}

var errShortWindow = stepError("window ended mid-instruction")

type stepError string

func (e stepError) Error() string { return string(e) }

// directPageMode reports whether mode addresses through the Direct Page
// register (spec §4.2's wrap rules and §4.3's rule-5 penalty both key off
// this set).
func directPageMode(m Mode) bool {
	switch m {
	case ModeDirect, ModeDirectX, ModeDirectY, ModeDirectIndirect, ModeDirectIndirectX,
		ModeDirectIndirectY, ModeDirectIndirectLong, ModeDirectIndirectLongY:
		return true
	}
	return false
}

// Step executes one instruction starting at sample index idx within w,
// returning the number of samples consumed (spec §4.5's eleven steps,
// folded into this method plus the per-opcode Hook it dispatches to).
//
// When the window carries a sync hint past idx, the instruction's true
// cycle count is known and the data/write/RMW bytes are extracted at their
// real cycle offsets, with the internal (IO) cycles skipped over. Without
// a hint the stream is treated as packed: every sample is a meaningful bus
// byte and the phases follow each other directly.
func (ex *Executor) Step(w sample.Window, idx int) (consumed int, err error) {
	op, ok := w.At(idx)
	if !ok {
		return 0, errShortWindow
	}
	ex.win = w
	ex.base = idx
	ex.count = w.InstructionEnd(idx)

	ex.reconcileE(op) // step 1

	ex.entry = Table[op.Data]
	ex.mode = ex.entry.Mode
	ex.ptrBytes = nil
	ex.dataBytes = nil
	ex.writeBytes = nil
	ex.splitOperand = false
	ex.branchTaken = false
	ex.pageCrossed = false

	switch {
	case ex.entry.M1 || ex.entry.M2:
		ex.wide = ex.wideM()
	case ex.entry.X1:
		ex.wide = ex.wideX()
	default:
		ex.wide = false
	}

	fetchPC, pcKnown := ex.Regs.PC.Value()
	fetchPB, pbKnown := ex.Regs.PB.Value()
	if pcKnown && pbKnown {
		ex.Mem.Read(op.Data, mask.Long(fetchPB, fetchPC), memory.Fetch)
	}

	operandWide := (ex.mode == ModeImmediateM && ex.wide) || (ex.mode == ModeImmediateX && ex.wide)
	size := Len(ex.mode, operandWide) // step 3

	operandCount := size - 1
	if ex.count > 0 {
		// JSL pushes PB between its second and third operand fetches; JSR
		// (abs,X) pushes the return address between its first and second.
		// The hooks collect the remaining operand bytes at the right cycles.
		switch {
		case ex.entry.Mnemonic == "JSL" && ex.mode == ModeAbsoluteLong:
			operandCount = 2
			ex.splitOperand = true
		case ex.entry.Mnemonic == "JSR" && ex.mode == ModeAbsoluteIndirectX:
			operandCount = 1
			ex.splitOperand = true
		}
	}

	cursor := idx + 1
	operandBytes := make([]byte, 0, 3)
	for i := 0; i < operandCount; i++ {
		s, ok := w.At(cursor)
		if !ok {
			return cursor - idx, errShortWindow
		}
		if pcKnown && pbKnown {
			ex.Mem.Read(s.Data, mask.Long(fetchPB, fetchPC+uint16(1+i)), memory.Instr)
		}
		operandBytes = append(operandBytes, s.Data)
		cursor++
	}
	ex.loadOperand(operandBytes)

	ptrCount := pointerByteCount(ex.mode)
	if ptrCount > 0 {
		if ex.count > 0 {
			// internal cycles sit between the operand fetch and the pointer
			// reads: one for a non-page-aligned DP, one for the X / S add.
			if dp, ok := ex.Regs.DP.Value(); ok && byte(dp) != 0 && directPageMode(ex.mode) {
				cursor++
			}
			switch ex.mode {
			case ModeDirectIndirectX, ModeStackRelativeIndirectY:
				cursor++
			}
		}
		ex.ptrBytes = make([]byte, 0, ptrCount)
		for i := 0; i < ptrCount; i++ {
			s, ok := w.At(cursor)
			if !ok {
				return cursor - idx, errShortWindow
			}
			ex.ptrBytes = append(ex.ptrBytes, s.Data)
			cursor++
		}
	}

	ex.computeEA(operandBytes, ex.ptrBytes) // steps 4-7 (includes MEM_POINTER indirection)

	dataWidth := 1
	if ex.wide && ex.mode != ModeImmediateM && ex.mode != ModeImmediateX {
		dataWidth = 2
	}

	// Immediate operands carry their own data: the bytes already consumed
	// as the operand above are the value, with no further data-phase read
	// on the bus. Accumulator-implied RMW variants never touch the bus at
	// all past the opcode fetch.
	immediate := ex.mode == ModeImmediateM || ex.mode == ModeImmediateX || ex.mode == ModeImmediate8

	switch {
	case ex.mode == ModeAccumulator || immediate:
	case ex.entry.Kind == OpRead:
		if ex.count > 0 {
			cursor = idx + ex.count - dataWidth
		}
		for i := 0; i < dataWidth; i++ {
			s, ok := w.At(cursor)
			if !ok {
				return cursor - idx, errShortWindow
			}
			ex.dataBytes = append(ex.dataBytes, s.Data)
			cursor++
		}
		ex.checkReadData()
	case ex.entry.Kind == OpRMW:
		// spec §4.5 step 6: the RMW read sits a fixed distance before the
		// write-back, with an internal cycle (two at 16-bit width) between.
		if ex.count > 0 {
			var rdAt, wrAt []int
			if dataWidth == 2 {
				rdAt = []int{ex.count - 5, ex.count - 4}
				wrAt = []int{ex.count - 1, ex.count - 2} // writes descend: high byte first
			} else {
				rdAt = []int{ex.count - 3}
				wrAt = []int{ex.count - 1}
			}
			for _, off := range rdAt {
				s, ok := w.At(idx + off)
				if !ok {
					return cursor - idx, errShortWindow
				}
				ex.dataBytes = append(ex.dataBytes, s.Data)
			}
			for _, off := range wrAt {
				s, ok := w.At(idx + off)
				if !ok {
					return cursor - idx, errShortWindow
				}
				ex.writeBytes = append(ex.writeBytes, s.Data)
			}
			ex.checkReadData()
			cursor = idx + ex.count
		} else {
			for i := 0; i < dataWidth; i++ {
				s, ok := w.At(cursor)
				if !ok {
					return cursor - idx, errShortWindow
				}
				ex.dataBytes = append(ex.dataBytes, s.Data)
				cursor++
			}
			ex.checkReadData()
			for i := 0; i < dataWidth; i++ {
				s, ok := w.At(cursor)
				if !ok {
					return cursor - idx, errShortWindow
				}
				ex.writeBytes = append(ex.writeBytes, s.Data)
				cursor++
			}
		}
	case ex.entry.Kind == OpWrite:
		if ex.count > 0 {
			cursor = idx + ex.count - dataWidth
		}
		for i := 0; i < dataWidth; i++ {
			s, ok := w.At(cursor)
			if !ok {
				return cursor - idx, errShortWindow
			}
			ex.writeBytes = append(ex.writeBytes, s.Data)
			cursor++
		}
	}

	ex.cursor = cursor

	if ex.entry.Hook != nil {
		ex.entry.Hook(ex) // steps 9-10 (semantics plus write-back verification)
	}

	// a taken branch spends one internal cycle, two if it crosses a page in
	// emulation mode; without a sync hint those cycles must be consumed here
	if ex.count < 0 && ex.entry.Kind == OpBranch && ex.branchTaken {
		ex.cursor++
		if e, ok := ex.Regs.Flags.E.Value(); ok && e && ex.pageCrossed {
			ex.cursor++
		}
	}
	if ex.count > 0 {
		ex.cursor = idx + ex.count
	}

	if !ex.jumped() { // step 11
		if pc, ok := ex.Regs.PC.Value(); ok {
			ex.Regs.PC = tri.KnownWord(pc + uint16(size))
		} else {
			ex.Regs.PC = tri.UnknownWord()
		}
	}

	ex.instr = Instr{Opcode: op.Data, NumOperands: size - 1}
	ex.instr.PC = tri.UnknownWord()
	if pcKnown {
		ex.instr.PC = tri.KnownWord(fetchPC)
	}
	ex.instr.PB = tri.UnknownByte()
	if pbKnown {
		ex.instr.PB = tri.KnownByte(fetchPB)
	}
	if size > 1 {
		ex.instr.Operands[0] = ex.operand
	}
	if size > 2 {
		ex.instr.Operands[1] = byte(ex.operand16 >> 8)
	}
	if size > 3 {
		ex.instr.Operands[2] = ex.operandBank
	}

	return ex.cursor - idx, nil
}

// LastInstr returns the record of the most recently decoded instruction.
func (ex *Executor) LastInstr() Instr { return ex.instr }

// NextByte consumes and returns the next unconsumed bus sample, for hooks
// that touch memory beyond their fixed operand/data phase (stack pushes
// and pulls, whose count depends on the opcode, not the addressing mode).
func (ex *Executor) NextByte() (byte, bool) {
	s, ok := ex.win.At(ex.cursor)
	if !ok {
		return 0, false
	}
	ex.cursor++
	return s.Data, true
}

// SeekFromEnd positions the cursor k cycles before the instruction's end,
// for hooks whose bus traffic is anchored to the final cycles (pushes,
// pulls, indirect-jump pointer fetches). A no-op when the cycle count is
// unknown: packed streams have no internal cycles to skip over.
func (ex *Executor) SeekFromEnd(k int) {
	if ex.count > 0 {
		ex.cursor = ex.base + ex.count - k
	}
}

// PushTri verifies a computed (possibly unknown) byte against the next
// observed push cycle, imprints the observed byte into the stack shadow,
// decrements SP, and returns what the bus carried. An unknown SP skips the
// shadow entirely and stays unknown.
func (ex *Executor) PushTri(v tri.Byte) (byte, bool) {
	observed, ok := ex.NextByte()
	if !ok {
		return 0, false
	}
	if want, known := v.Value(); known && observed != want {
		ex.Fail = true
		ex.logf("stack push mismatch: computed %02X observed %02X", want, observed)
	}
	if sp, ok := ex.Regs.SP().Value(); ok {
		ex.Mem.Write(observed, uint32(sp), memory.Stack)
		ex.Regs.SetSP(tri.KnownWord(sp - 1))
	}
	return observed, true
}

// PushTriWord pushes high byte first, matching pull order (low then high).
func (ex *Executor) PushTriWord(v tri.Word) (uint16, bool) {
	hi, _ := ex.PushTri(v.Hi())
	lo, ok := ex.PushTri(v.Lo())
	return mask.Word(hi, lo), ok
}

// PullByte increments SP and reads the byte now on top of the stack.
func (ex *Executor) PullByte() byte {
	var addr uint32
	haveSP := false
	if sp, ok := ex.Regs.SP().Value(); ok {
		ex.Regs.SetSP(tri.KnownWord(sp + 1))
		if sp2, ok2 := ex.Regs.SP().Value(); ok2 {
			addr = uint32(sp2)
			haveSP = true
		}
	}
	observed, ok := ex.NextByte()
	if !ok {
		return 0
	}
	if haveSP {
		ex.Mem.Read(observed, addr, memory.Stack)
	}
	return observed
}

// PullWord is PullByte's 16-bit counterpart (low byte first off the stack).
func (ex *Executor) PullWord() uint16 {
	lo := ex.PullByte()
	hi := ex.PullByte()
	return mask.Word(hi, lo)
}

func (ex *Executor) jumped() bool {
	switch ex.entry.Mnemonic {
	case "JMP", "JML", "JSR", "JSL", "RTS", "RTL", "RTI", "BRK", "COP", "BRA", "BRL":
		return true
	case "BPL", "BMI", "BVC", "BVS", "BCC", "BCS", "BNE", "BEQ":
		return ex.branchTaken
	}
	return false
}

func (ex *Executor) reconcileE(s sample.Sample) {
	switch s.E {
	case sample.EZero:
		if v, ok := ex.Regs.Flags.E.Value(); ok && v {
			ex.Fail = true
			ex.logf("E-pin mismatch: tracked E=1, observed E=0")
			return
		}
		ex.Regs.SetE(tri.KnownBit(false))
	case sample.EOne:
		if v, ok := ex.Regs.Flags.E.Value(); ok && !v {
			ex.Fail = true
			ex.logf("E-pin mismatch: tracked E=0, observed E=1")
			return
		}
		ex.Regs.SetE(tri.KnownBit(true))
	}
}

func (ex *Executor) loadOperand(b []byte) {
	ex.operand = 0
	ex.operand16 = 0
	ex.operandBank = 0
	if len(b) > 0 {
		ex.operand = b[0]
	}
	if len(b) > 1 {
		ex.operand16 = mask.Word(b[1], b[0])
	} else if len(b) == 1 {
		ex.operand16 = uint16(b[0])
	}
	if len(b) > 2 {
		ex.operandBank = b[2]
	}
}

// checkReadData feeds the observed read-phase bytes through the shadow
// model for consistency checking (spec §4.5 step 8). It runs
// automatically for every OpRead/OpRMW entry, before the Hook is invoked,
// so hooks only ever consume already-validated data via DataByte/DataWord.
func (ex *Executor) checkReadData() {
	if !ex.eaValid || len(ex.dataBytes) == 0 {
		return
	}
	ex.Mem.Read(ex.dataBytes[0], ex.ea, memory.Data)
	if len(ex.dataBytes) > 1 {
		ex.Mem.Read(ex.dataBytes[1], ex.ea+1, memory.Data)
	}
}

// pointerByteCount returns how many additional bus bytes mode's indirect
// pointer structure occupies (spec §4.5 step 5: "for modes that indirect
// through memory, issues MEM_POINTER reads at the exact pointer
// addresses"). Zero for every mode that doesn't indirect through memory.
func pointerByteCount(mode Mode) int {
	switch mode {
	case ModeDirectIndirectX, ModeDirectIndirectY, ModeDirectIndirect, ModeStackRelativeIndirectY:
		return 2
	case ModeDirectIndirectLong, ModeDirectIndirectLongY:
		return 3
	}
	return 0
}

// pointerAddrs resolves the bus addresses the low/high pointer bytes were
// read from, applying the §4.2 page-wrap rules: the documented (direct,X)
// quirk (DP.low != 0) never wraps the low-byte address but always wraps
// the high byte's +1 within the low byte's page; the general direct-page
// wrap (E=1, DP page-aligned, not newop) wraps both bytes within the page.
// Long (3-byte) pointers are always newop opcodes, so neither wrap rule
// ever applies to them and the bank byte simply follows at base+2.
func (ex *Executor) pointerAddrs(base uint16, quirkX bool) (loAddr, hiAddr uint32) {
	dp, dpOK := ex.Regs.DP.Value()
	e, eOK := ex.Regs.Flags.E.Value()

	if quirkX && eOK && e && dpOK && dp&0xFF != 0 {
		return uint32(base), uint32((base & 0xFF00) | ((base + 1) & 0xFF))
	}
	if eOK && e && dpOK && dp&0xFF == 0 && !ex.entry.NewOp {
		page := base & 0xFF00
		return uint32(base), uint32(page | ((base + 1) & 0xFF))
	}
	return uint32(base), uint32(base + 1)
}

// computeEA resolves the effective address for modes that address memory
// (spec §4.5 steps 4-7), including the documented (dp,X) zero-page wrap
// quirk. Any unknown PB/DB/DP/X/Y component the mode depends on leaves the
// address unresolved; hooks must check EA() before touching memory.
// ptrBytes carries the raw bus-observed pointer bytes already consumed by
// Step for modes that indirect through memory (pointerByteCount > 0); its
// content is authoritative regardless of whether the pointer's own
// address is resolvable.
func (ex *Executor) computeEA(operandBytes []byte, ptrBytes []byte) {
	ex.eaValid = false
	dp, dpKnown := ex.Regs.DP.Value()
	db, dbKnown := ex.Regs.DB.Value()
	pb, pbKnown := ex.Regs.PB.Value()
	x, xKnown := ex.Regs.X.Value()
	y, yKnown := ex.Regs.Y.Value()

	set := func(addr uint32) {
		ex.ea = addr
		ex.eaValid = true
	}
	long24 := func() uint32 {
		return uint32(ex.operand16) | uint32(ex.operandBank)<<16
	}

	switch ex.mode {
	case ModeDirect:
		if dpKnown {
			set(uint32(dp + uint16(ex.operand)))
		}
	case ModeDirectX:
		if dpKnown && xKnown {
			set(uint32(dp + uint16(ex.operand) + x))
		}
	case ModeDirectY:
		if dpKnown && yKnown {
			set(uint32(dp + uint16(ex.operand) + y))
		}
	case ModeAbsolute:
		if dbKnown {
			set(mask.Long(db, ex.operand16))
		}
	case ModeAbsoluteX:
		if dbKnown && xKnown {
			ex.pageCrossed = crossesPage(ex.operand16, byte(x))
			set(mask.Long(db, ex.operand16+x))
		}
	case ModeAbsoluteY:
		if dbKnown && yKnown {
			ex.pageCrossed = crossesPage(ex.operand16, byte(y))
			set(mask.Long(db, ex.operand16+y))
		}
	case ModeAbsoluteLong:
		set(long24())
	case ModeAbsoluteLongX:
		if xKnown {
			set(long24() + uint32(x))
		}
	case ModeStackRelative:
		if sp, ok := ex.Regs.SP().Value(); ok {
			set(uint32(sp + uint16(ex.operand)))
		}
	case ModeDirectIndirectX:
		if len(ptrBytes) == 2 {
			lo, hi := ptrBytes[0], ptrBytes[1]
			if dpKnown && xKnown {
				base := dp + uint16(ex.operand) + x
				loAddr, hiAddr := ex.pointerAddrs(base, true)
				ex.Mem.Read(lo, loAddr, memory.Pointer)
				ex.Mem.Read(hi, hiAddr, memory.Pointer)
			}
			if dbKnown {
				set(mask.Long(db, mask.Word(hi, lo)))
			}
		}
	case ModeDirectIndirectY:
		if len(ptrBytes) == 2 {
			lo, hi := ptrBytes[0], ptrBytes[1]
			if dpKnown {
				base := dp + uint16(ex.operand)
				loAddr, hiAddr := ex.pointerAddrs(base, false)
				ex.Mem.Read(lo, loAddr, memory.Pointer)
				ex.Mem.Read(hi, hiAddr, memory.Pointer)
			}
			if yKnown && dbKnown {
				base := mask.Word(hi, lo)
				ex.pageCrossed = crossesPage(base, byte(y))
				set(mask.Long(db, base+y))
			}
		}
	case ModeDirectIndirect:
		if len(ptrBytes) == 2 {
			lo, hi := ptrBytes[0], ptrBytes[1]
			if dpKnown {
				base := dp + uint16(ex.operand)
				loAddr, hiAddr := ex.pointerAddrs(base, false)
				ex.Mem.Read(lo, loAddr, memory.Pointer)
				ex.Mem.Read(hi, hiAddr, memory.Pointer)
			}
			if dbKnown {
				set(mask.Long(db, mask.Word(hi, lo)))
			}
		}
	case ModeDirectIndirectLong:
		if len(ptrBytes) == 3 {
			lo, hi, bk := ptrBytes[0], ptrBytes[1], ptrBytes[2]
			if dpKnown {
				base := uint32(dp + uint16(ex.operand))
				ex.Mem.Read(lo, base, memory.Pointer)
				ex.Mem.Read(hi, base+1, memory.Pointer)
				ex.Mem.Read(bk, base+2, memory.Pointer)
			}
			set(mask.Long(bk, mask.Word(hi, lo)))
		}
	case ModeDirectIndirectLongY:
		if len(ptrBytes) == 3 {
			lo, hi, bk := ptrBytes[0], ptrBytes[1], ptrBytes[2]
			if dpKnown {
				base := uint32(dp + uint16(ex.operand))
				ex.Mem.Read(lo, base, memory.Pointer)
				ex.Mem.Read(hi, base+1, memory.Pointer)
				ex.Mem.Read(bk, base+2, memory.Pointer)
			}
			if yKnown {
				set(mask.Long(bk, mask.Word(hi, lo)) + uint32(y))
			}
		}
	case ModeStackRelativeIndirectY:
		if len(ptrBytes) == 2 {
			lo, hi := ptrBytes[0], ptrBytes[1]
			if sp, ok := ex.Regs.SP().Value(); ok {
				base := sp + uint16(ex.operand)
				loAddr, hiAddr := ex.pointerAddrs(base, false)
				ex.Mem.Read(lo, loAddr, memory.Pointer)
				ex.Mem.Read(hi, hiAddr, memory.Pointer)
			}
			if yKnown && dbKnown {
				set(mask.Long(db, mask.Word(hi, lo)+y))
			}
		}
	case ModeAbsoluteIndirect:
		if pbKnown {
			set(mask.Long(pb, ex.operand16))
		}
	case ModeAbsoluteIndirectX:
		if !ex.splitOperand && pbKnown && xKnown {
			set(mask.Long(pb, ex.operand16+x))
		}
	case ModeAbsoluteIndirectLong:
		set(uint32(ex.operand16))
	}
}

// EA returns the effective address computed for this instruction and
// whether it could be resolved.
func (ex *Executor) EA() (uint32, bool) { return ex.ea, ex.eaValid }

// Operand8 returns the low operand byte (immediate-8, or an addressing
// mode's displacement/offset byte).
func (ex *Executor) Operand8() byte { return ex.operand }

// Operand16 returns the full raw operand word as read off the bus.
func (ex *Executor) Operand16() uint16 { return ex.operand16 }

// OperandBank returns the third byte of a 24-bit long operand.
func (ex *Executor) OperandBank() byte { return ex.operandBank }

// Wide reports whether this instruction's register-width-dependent
// operand/data access is 16-bit (spec §4.3's M1/M2/X1 width dependency).
func (ex *Executor) Wide() bool { return ex.wide }

// WideM/WideX report the current accumulator/index width directly from the
// flags, for opcodes (transfers, TCD/TDC/TCS/TSC) whose operand width
// isn't one of the table's cycle-cost M1/M2/X1 sets but still depends on
// MS/XS.
func (ex *Executor) WideM() bool { return ex.wideM() }
func (ex *Executor) WideX() bool { return ex.wideX() }

// DataByte returns the single observed read-phase byte (already validated
// against the shadow model).
func (ex *Executor) DataByte() byte {
	if len(ex.dataBytes) == 0 {
		return 0
	}
	return ex.dataBytes[0]
}

// DataWord returns the 16-bit observed read-phase value.
func (ex *Executor) DataWord() uint16 {
	if len(ex.dataBytes) < 2 {
		return uint16(ex.DataByte())
	}
	return mask.Word(ex.dataBytes[1], ex.dataBytes[0])
}

// WriteByte checks a hook-computed byte against the observed write-phase
// byte (spec §4.5 step 10's write-back verification) and imprints the
// observed value into the shadow model.
func (ex *Executor) WriteByte(computed byte) {
	if !ex.eaValid || len(ex.writeBytes) == 0 {
		return
	}
	if ex.writeBytes[0] != computed {
		ex.Fail = true
		ex.logf("write mismatch at %06X: computed %02X observed %02X", ex.ea, computed, ex.writeBytes[0])
	}
	ex.Mem.Write(ex.writeBytes[0], ex.ea, memory.Data)
}

// WriteWord is WriteByte's 16-bit counterpart.
func (ex *Executor) WriteWord(computed uint16) {
	if !ex.eaValid || len(ex.writeBytes) < 2 {
		return
	}
	hi, lo := mask.SplitWord(computed)
	observed := mask.Word(ex.writeBytes[1], ex.writeBytes[0])
	if observed != computed {
		ex.Fail = true
		ex.logf("write mismatch at %06X: computed %02X%02X observed %04X", ex.ea, hi, lo, observed)
	}
	ex.Mem.Write(ex.writeBytes[0], ex.ea, memory.Data)
	ex.Mem.Write(ex.writeBytes[1], ex.ea+1, memory.Data)
}

// ObservedWriteByte returns the write-phase byte the bus actually carried,
// for stores whose source register is still unknown: spec §4.6 says such
// a store "adopts the observed value" rather than leaving the register
// (and the shadow cell) untouched.
func (ex *Executor) ObservedWriteByte() (byte, bool) {
	if !ex.eaValid || len(ex.writeBytes) == 0 {
		return 0, false
	}
	ex.Mem.Write(ex.writeBytes[0], ex.ea, memory.Data)
	return ex.writeBytes[0], true
}

// ObservedWriteWord is ObservedWriteByte's 16-bit counterpart.
func (ex *Executor) ObservedWriteWord() (uint16, bool) {
	if !ex.eaValid || len(ex.writeBytes) < 2 {
		return 0, false
	}
	ex.Mem.Write(ex.writeBytes[0], ex.ea, memory.Data)
	ex.Mem.Write(ex.writeBytes[1], ex.ea+1, memory.Data)
	return mask.Word(ex.writeBytes[1], ex.writeBytes[0]), true
}

// SetBranchTaken records a conditional branch's outcome so Step can apply
// the correct PC update and cycle extras.
func (ex *Executor) SetBranchTaken(taken bool) { ex.branchTaken = taken }

// PageCrossed reports whether the resolved address computation crossed a
// page boundary.
func (ex *Executor) PageCrossed() bool { return ex.pageCrossed }

// Mode returns the addressing mode of the instruction being executed.
func (ex *Executor) Mode() Mode { return ex.mode }

// Kind returns the bus-behavior classification of the instruction being
// executed.
func (ex *Executor) Kind() OpKind { return ex.entry.Kind }

// Stop / Wait record STP/WAI so the dispatch adapter can surface them.
func (ex *Executor) Stop()         { ex.stopped = true }
func (ex *Executor) Wait()         { ex.waiting = true }
func (ex *Executor) Stopped() bool { return ex.stopped }
func (ex *Executor) Waiting() bool { return ex.waiting }
