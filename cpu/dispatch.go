package cpu

import (
	"github.com/wdctrace/tracecore/mask"
	"github.com/wdctrace/tracecore/memory"
	"github.com/wdctrace/tracecore/sample"
	"github.com/wdctrace/tracecore/tri"
)

// InitialState is the enumerated initial-state configuration of spec §6.2:
// each field is either a known value or left nil ("unspecified"), in which
// case the corresponding register/flag stays unknown. Providing EFlag
// additionally selects the emulation-mode invariants through Registers.SetE.
type InitialState struct {
	EFlag  *bool
	SPReg  *uint16
	PBReg  *byte
	DBReg  *byte
	DPReg  *uint16
	MSFlag *bool
	XSFlag *bool
}

// Dispatch adapts an Executor to the generic CPU-emulator contract of spec
// §6.1, the seam external drivers (the sample-source front end, CLI, and
// sibling CPU-family emulators this module explicitly leaves out of scope)
// plug into. It owns no state beyond the Executor and the Shadow it wraps.
type Dispatch struct {
	ex *Executor
}

// NewDispatch constructs a Dispatch around a fresh, all-unknown register
// file and the given memory model.
func NewDispatch(mem *memory.Shadow, logf func(format string, args ...any)) *Dispatch {
	return &Dispatch{ex: &Executor{Regs: NewRegisters(), Mem: mem, Logf: logf}}
}

// Init applies an InitialState, overriding whichever registers/flags it
// names on top of an otherwise all-unknown register file (spec §6.1's
// init(args)).
func (d *Dispatch) Init(cfg InitialState) {
	r := NewRegisters()
	if cfg.EFlag != nil {
		r.SetE(tri.KnownBit(*cfg.EFlag))
	}
	if cfg.MSFlag != nil {
		r.Flags.MS = tri.KnownBit(*cfg.MSFlag)
	}
	if cfg.XSFlag != nil {
		r.SetXS(tri.KnownBit(*cfg.XSFlag))
	}
	if cfg.SPReg != nil {
		r.SetSP(tri.KnownWord(*cfg.SPReg))
	}
	if cfg.PBReg != nil {
		r.PB = tri.KnownByte(*cfg.PBReg)
	}
	if cfg.DBReg != nil {
		r.DB = tri.KnownByte(*cfg.DBReg)
	}
	if cfg.DPReg != nil {
		r.DP = tri.KnownWord(*cfg.DPReg)
	}
	d.ex.Regs = r
}

// MatchInterrupt wraps MatchInterrupt against the dispatch's current
// register file (spec §6.1's match_interrupt(samples, n)).
func (d *Dispatch) MatchInterrupt(w sample.Window, idx int, currentOpcode byte) bool {
	return MatchInterrupt(d.ex.Regs, w, idx, currentOpcode)
}

// CountCycles implements both of spec §4.3's operation modes. When w
// carries a sync hint beyond idx, the distance to it is ground truth: the
// prediction is checked against it (logging a mismatch), the observed
// count is fed back into the width flags (spec §4.5 step 2), and the
// observed count is returned. Without a hint, the predicted count is
// returned, or 1 if the prediction itself is unknown (spec §6.1's
// count_cycles(samples, intr_seen)); intrSeen does not otherwise change
// the arithmetic, since an interrupt entry's own cycle count is fixed by
// Interrupt, not predicted.
func (d *Dispatch) CountCycles(w sample.Window, idx int, intrSeen bool) int {
	op, ok := w.At(idx)
	if !ok {
		return 1
	}
	entry := Table[op.Data]
	r := d.ex.Regs
	predicted := d.predict(w, idx, entry, r.Flags.MS, r.Flags.XS)

	if n := w.InstructionEnd(idx); n >= 0 {
		if !predicted.Contains(n) {
			d.ex.logf("cycle count mismatch at opcode %02X: predicted %v observed %d", op.Data, predicted, n)
		}
		d.inferWidths(w, idx, entry, n)
		return n
	}
	if n, known := predicted.Value(); known {
		return n
	}
	return 1
}

// predict is the full per-instruction cycle prediction: the table rules of
// PredictCycles plus the Direct-Page penalty and, for branches, the
// taken/not-taken resolution against the tracked flags (spec §4.3 rules
// 5-8, which need register and sample-window state the table alone cannot
// supply).
func (d *Dispatch) predict(w sample.Window, idx int, entry Entry, ms, xs tri.Bit) Cycles {
	if entry.Kind == OpBranch {
		return d.predictBranch(w, idx, entry)
	}
	r := d.ex.Regs
	c := PredictCycles(entry, ms, xs, r.Flags.E, d.crossBit(w, idx, entry, xs))
	dp, dpKnown := r.DP.Value()
	return AddDPPenalty(c, dpKnown, dpKnown && byte(dp) != 0, entry.Mode)
}

// crossBit resolves whether entry's indexed address computation crosses a
// page, from the operand bytes in the window, the index registers, and --
// for (d),Y -- the shadow model's belief about the direct-page pointer.
// In 16-bit index mode the penalty is always incurred (spec §4.3 rule 6).
func (d *Dispatch) crossBit(w sample.Window, idx int, entry Entry, xs tri.Bit) tri.Bit {
	if entry.Kind != OpRead {
		return tri.KnownBit(false)
	}
	r := d.ex.Regs
	switch entry.Mode {
	case ModeAbsoluteX, ModeAbsoluteY:
		lo, ok1 := w.At(idx + 1)
		hi, ok2 := w.At(idx + 2)
		if !ok1 || !ok2 {
			return tri.UnknownBit()
		}
		base := mask.Word(hi.Data, lo.Data)
		reg := r.X
		if entry.Mode == ModeAbsoluteY {
			reg = r.Y
		}
		rv, rok := reg.Value()
		eightBit, xok := xs.Value()
		switch {
		case xok && !eightBit:
			return tri.KnownBit(true)
		case xok && eightBit:
			if rok {
				return tri.KnownBit(crossesPage(base, byte(rv)))
			}
			return tri.UnknownBit()
		default:
			// width unknown: a low-byte cross pays the penalty either way
			if rok && crossesPage(base, byte(rv)) {
				return tri.KnownBit(true)
			}
			return tri.UnknownBit()
		}
	case ModeDirectIndirectY:
		y, yok := r.Y.Value()
		if !yok {
			return tri.UnknownBit()
		}
		dp, dpok := r.DP.Value()
		op, opok := w.At(idx + 1)
		if !dpok || !opok {
			return tri.UnknownBit()
		}
		ptr := dp + uint16(op.Data)
		lo, lok := d.ex.Mem.Peek(uint32(ptr))
		hi, hok := d.ex.Mem.Peek(uint32(ptr + 1))
		if !lok || !hok {
			return tri.UnknownBit()
		}
		return tri.KnownBit(crossesPage(mask.Word(hi, lo), byte(y)))
	}
	return tri.KnownBit(false)
}

// predictBranch resolves spec §4.3 rule 8: a not-taken branch is 2 cycles,
// taken is 3, taken crossing a page in emulation mode is 4. Taken-ness is
// decided from the branch's own flag, or unconditionally for BRA.
func (d *Dispatch) predictBranch(w sample.Window, idx int, entry Entry) Cycles {
	r := d.ex.Regs
	taken, known := branchFlag(r, entry.Mnemonic)
	if !known {
		return unknownCycles(2, 4)
	}
	if !taken {
		return knownCycles(2)
	}
	em, emok := r.Flags.E.Value()
	if emok && !em {
		return knownCycles(3)
	}
	pc, pcok := r.PC.Value()
	op, opok := w.At(idx + 1)
	if !emok || !pcok || !opok {
		return unknownCycles(3, 4)
	}
	next := pc + 2
	target := uint16(int(next) + signed8(op.Data))
	if next&0xFF00 != target&0xFF00 {
		return knownCycles(4)
	}
	return knownCycles(3)
}

// branchFlag resolves a branch mnemonic's taken-ness against the tracked
// flags; known is false when the deciding flag is itself unknown.
func branchFlag(r *Registers, mnemonic string) (taken, known bool) {
	switch mnemonic {
	case "BRA":
		return true, true
	case "BPL":
		v, ok := r.Flags.N.Value()
		return !v, ok
	case "BMI":
		v, ok := r.Flags.N.Value()
		return v, ok
	case "BVC":
		v, ok := r.Flags.V.Value()
		return !v, ok
	case "BVS":
		v, ok := r.Flags.V.Value()
		return v, ok
	case "BCC":
		v, ok := r.Flags.C.Value()
		return !v, ok
	case "BCS":
		v, ok := r.Flags.C.Value()
		return v, ok
	case "BNE":
		v, ok := r.Flags.Z.Value()
		return !v, ok
	case "BEQ":
		v, ok := r.Flags.Z.Value()
		return v, ok
	}
	return false, false
}

// inferWidths implements spec §4.5 step 2: when the observed cycle count
// exceeds the 8-bit-width prediction for a width-sensitive opcode, the
// relevant width flag must be 0 (16-bit); otherwise 1. Only meaningful in
// native mode -- emulation pins both widths already.
func (d *Dispatch) inferWidths(w sample.Window, idx int, entry Entry, actual int) {
	r := d.ex.Regs
	if e, ok := r.Flags.E.Value(); !ok || e {
		return
	}
	if (entry.M1 || entry.M2) && !r.Flags.MS.Known() {
		if n8, ok := d.predict(w, idx, entry, tri.KnownBit(true), r.Flags.XS).Value(); ok {
			r.Flags.MS = tri.KnownBit(actual <= n8)
		}
	}
	if entry.X1 && !r.Flags.XS.Known() {
		if n8, ok := d.predict(w, idx, entry, r.Flags.MS, tri.KnownBit(true)).Value(); ok {
			r.SetXS(tri.KnownBit(actual <= n8))
		}
	}
}

// Reset re-initializes the register file from the reset vector captured in
// w (spec §6.1's reset(samples, n, out_instr)).
func (d *Dispatch) Reset(w sample.Window) { d.ex.Reset(w) }

// Interrupt executes a recognized interrupt entry starting at idx (spec
// §6.1's interrupt(samples, n, out_instr)).
func (d *Dispatch) Interrupt(w sample.Window, idx int, native, isBRK, isCOP bool) (consumed int) {
	return d.ex.Interrupt(w, idx, native, isBRK, isCOP)
}

// Emulate executes one ordinary instruction starting at idx (spec §6.1's
// emulate(samples, n, out_instr)); the out_instr record is retrievable
// afterward via LastInstr.
func (d *Dispatch) Emulate(w sample.Window, idx int) (consumed int, err error) {
	return d.ex.Step(w, idx)
}

// LastInstr returns the record of the instruction most recently decoded by
// Emulate, Interrupt, or Reset (spec §3.6's instruction record, the
// out_instr of spec §6.1).
func (d *Dispatch) LastInstr() Instr { return d.ex.LastInstr() }

// Disassemble renders the instruction at idx without executing it (spec
// §6.1's disassemble(out_buffer, instr) / §6.4), returning its text and
// byte length.
func (d *Dispatch) Disassemble(w sample.Window, idx int) (text string, length int, err error) {
	op, ok := w.At(idx)
	if !ok {
		return "", 0, errShortWindow
	}
	entry := Table[op.Data]

	wide := false
	switch {
	case entry.M1 || entry.M2:
		wide = d.ex.wideM()
	case entry.X1:
		wide = d.ex.wideX()
	}
	operandWide := (entry.Mode == ModeImmediateM && wide) || (entry.Mode == ModeImmediateX && wide)
	n := Len(entry.Mode, operandWide)

	operand := make([]byte, 0, n-1)
	for i := 1; i < n; i++ {
		s, ok := w.At(idx + i)
		if !ok {
			return "", 0, errShortWindow
		}
		operand = append(operand, s.Data)
	}

	pc, pcKnown := d.ex.Regs.PC.Value()
	return Disassemble(entry, operand, pc, pcKnown), n, nil
}

// GetPC/GetPB expose the tracked program counter and bank (spec §6.1's
// get_PC()/get_PB()).
func (d *Dispatch) GetPC() (uint16, bool) { return d.ex.Regs.PC.Value() }
func (d *Dispatch) GetPB() (byte, bool)   { return d.ex.Regs.PB.Value() }

// ReadMemory exposes the shadow model's current belief about addr without
// a consistency check (spec §6.1's read_memory(addr)).
func (d *Dispatch) ReadMemory(addr uint32) (byte, bool) { return d.ex.Mem.Peek(addr) }

// GetState renders the fixed-width state-string dump of spec §6.1's
// get_state(buffer) / §6.3.
func (d *Dispatch) GetState() string { return d.ex.Regs.String() }

// GetAndClearFail reports and clears the combined failure flag from both
// the executor's own checks (write-back/P-byte/E-pin mismatches) and the
// memory model's consistency checks (spec §6.1's
// get_and_clear_fail()/§7).
func (d *Dispatch) GetAndClearFail() bool {
	memFail := d.ex.Mem.GetAndClearFail()
	f := d.ex.Fail || memFail
	d.ex.Fail = false
	return f
}

// Stopped/Waiting surface STP/WAI so a caller can suspend dispatching.
func (d *Dispatch) Stopped() bool { return d.ex.Stopped() }
func (d *Dispatch) Waiting() bool { return d.ex.Waiting() }
