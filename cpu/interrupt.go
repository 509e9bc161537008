package cpu

import (
	"github.com/wdctrace/tracecore/mask"
	"github.com/wdctrace/tracecore/memory"
	"github.com/wdctrace/tracecore/sample"
	"github.com/wdctrace/tracecore/tri"
)

// flagsAgreeExceptMX reports whether every currently-known N/V/D/I/Z/C bit
// matches p's layout, ignoring the M/X (bits 3/4) positions -- those carry
// the unused/B pattern during interrupt entry, not the width flags, so
// MatchInterrupt checks them separately.
func flagsAgreeExceptMX(r *Registers, p byte) bool {
	check := func(bit tri.Bit, pos mask.ByteIndex) bool {
		v, ok := bit.Value()
		if !ok {
			return true
		}
		return mask.IsSet(p, pos) == v
	}
	return check(r.Flags.N, pBitN) &&
		check(r.Flags.V, pBitV) &&
		check(r.Flags.D, pBitD) &&
		check(r.Flags.I, pBitI) &&
		check(r.Flags.Z, pBitZ) &&
		check(r.Flags.C, pBitC)
}

// MatchInterrupt implements the spec's 7-sample interrupt-entry heuristic
// (spec §4.4). w must have at least 7 samples available from idx. When the
// R/W line was captured for cycles 2-4 (index 1..3), three consecutive
// writes identify an interrupt -- unless the instruction already being
// decoded is BRK or COP, which declare themselves as software interrupts
// through the ordinary opcode path instead. Without R/W information, the
// match instead compares cycles 2-3 against the tracked PC and cycle 4's
// bits 5:4 against the fixed "unused=1,B=0" break-byte pattern, requiring
// every other currently-known flag to agree with the rest of that byte.
func MatchInterrupt(r *Registers, w sample.Window, idx int, currentOpcode byte) bool {
	samples := make([]sample.Sample, 0, 7)
	for i := 0; i < 7; i++ {
		s, ok := w.At(idx + i)
		if !ok {
			return false
		}
		samples = append(samples, s)
	}

	haveRWN := samples[1].RWN != sample.RWUnknown &&
		samples[2].RWN != sample.RWUnknown &&
		samples[3].RWN != sample.RWUnknown

	if haveRWN {
		if currentOpcode == 0x00 || currentOpcode == 0x02 {
			return false
		}
		return samples[1].RWN == sample.RWWrite &&
			samples[2].RWN == sample.RWWrite &&
			samples[3].RWN == sample.RWWrite
	}

	pc, pcKnown := r.PC.Value()
	if !pcKnown {
		return false
	}
	pcHi, pcLo := mask.SplitWord(pc)
	if samples[1].Data != pcHi || samples[2].Data != pcLo {
		return false
	}
	breakByte := samples[3].Data
	if !mask.IsSet(breakByte, pBitM) || mask.IsSet(breakByte, pBitX) {
		return false
	}
	return flagsAgreeExceptMX(r, breakByte)
}

// PushP pushes the P byte, validating the observed byte bit-by-bit against
// every currently-known flag rather than against a rendered EncodeP value
// (whose unknown-bit-as-0 convention would manufacture mismatches), then
// re-derives every flag from the observed byte -- the bus is authoritative
// (spec §4.4: "validate P against the model and set all flags from it").
// AgreesWithP skips the M/X bit positions in emulation mode, where they
// carry the unused/B pattern instead of the width flags.
func (ex *Executor) PushP() {
	observed, ok := ex.NextByte()
	if !ok {
		return
	}
	if !ex.Regs.AgreesWithP(observed) {
		ex.Fail = true
		ex.logf("P push disagrees with tracked flags: observed %02X", observed)
	}
	if sp, ok := ex.Regs.SP().Value(); ok {
		ex.Mem.Write(observed, uint32(sp), memory.Stack)
		ex.Regs.SetSP(tri.KnownWord(sp - 1))
	}
	ex.Regs.SetFromP(observed)
}

// Interrupt executes an interrupt-entry sequence already recognized by
// MatchInterrupt, starting at sample index idx (spec §4.4). native governs
// whether PB is pushed (native mode's 8-cycle layout) or not (emulation's
// 7-cycle layout); isBRK/isCOP record whether this entry is actually the
// synchronous BRK/COP path, whose PC must be adjusted past the signature
// byte the caller already decoded. Layout: one dead/signature cycle, the
// push sequence, one idle cycle, and the two-byte vector on the final two
// cycles -- the same total (8 native, 7 emulation) the heuristic above
// assumes.
func (ex *Executor) Interrupt(w sample.Window, idx int, native, isBRK, isCOP bool) (consumed int) {
	ex.win = w
	ex.base = idx
	ex.count = -1
	ex.cursor = idx + 1

	op, _ := w.At(idx)
	intPC := ex.Regs.PC
	intPB := ex.Regs.PB

	pcT := intPC
	if isBRK || isCOP {
		if pc, ok := pcT.Value(); ok {
			pcT = tri.KnownWord(pc + 2)
		} else {
			pcT = tri.UnknownWord()
		}
	}

	if native {
		ex.PushTri(ex.Regs.PB)
	}
	ex.PushTriWord(pcT)
	ex.PushP()

	ex.NextByte() // idle cycle between the pushes and the vector fetch

	// the vector occupies the final two cycles, n-2 and n-1
	vecLo, _ := ex.NextByte()
	vecHi, _ := ex.NextByte()
	ex.Regs.PC = tri.KnownWord(mask.Word(vecHi, vecLo))
	ex.Regs.PB = tri.KnownByte(0)
	ex.Regs.Flags.I = tri.KnownBit(true)
	ex.Regs.Flags.D = tri.KnownBit(false)

	// the record names the interrupted instruction, not the entry sequence
	ex.instr = Instr{Opcode: op.Data, PC: intPC, PB: intPB}

	return ex.cursor - idx
}

// Reset re-initializes the register file to the post-reset invariants
// (spec §4.4): A, X, Y, the stack pointer, and N/V/C/Z are wiped to
// unknown; I=1, D=0, DP=0, PB=0, E=1 (which in turn forces MS=XS=1 and
// SH=0x01 through SetE/SetSP's invariants). PC is read directly from the
// last two samples of w, the reset vector the trace already captured.
func (ex *Executor) Reset(w sample.Window) {
	ex.Regs.A = tri.UnknownByte()
	ex.Regs.B = tri.UnknownByte()
	ex.Regs.X = tri.UnknownWord()
	ex.Regs.Y = tri.UnknownWord()
	ex.Regs.SL = tri.UnknownByte()
	ex.Regs.Flags.N = tri.UnknownBit()
	ex.Regs.Flags.V = tri.UnknownBit()
	ex.Regs.Flags.C = tri.UnknownBit()
	ex.Regs.Flags.Z = tri.UnknownBit()
	ex.Regs.Flags.I = tri.KnownBit(true)
	ex.Regs.Flags.D = tri.KnownBit(false)
	ex.Regs.DP = tri.KnownWord(0)
	ex.Regs.PB = tri.KnownByte(0)
	ex.Regs.SetE(tri.KnownBit(true))

	if n := w.Len(); n >= 2 {
		lo, _ := w.At(n - 2)
		hi, _ := w.At(n - 1)
		ex.Regs.PC = tri.KnownWord(mask.Word(hi.Data, lo.Data))
	} else {
		ex.Regs.PC = tri.UnknownWord()
	}

	ex.instr = Instr{PC: ex.Regs.PC, PB: tri.KnownByte(0)}
	ex.stopped = false
	ex.waiting = false
	ex.Fail = false
}
