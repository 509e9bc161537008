package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wdctrace/tracecore/memory"
	"github.com/wdctrace/tracecore/sample"
	"github.com/wdctrace/tracecore/tri"
)

func newTestExecutor() *Executor {
	regs := NewRegisters()
	regs.Flags.MS = tri.KnownBit(true)
	regs.Flags.XS = tri.KnownBit(true)
	regs.Flags.E = tri.KnownBit(true)
	regs.PC = tri.KnownWord(0x8000)
	regs.PB = tri.KnownByte(0)
	regs.DB = tri.KnownByte(0)
	regs.DP = tri.KnownWord(0)
	regs.SetSP(tri.KnownWord(0x01FF))
	return &Executor{Regs: regs, Mem: memory.NewShadow(0x10000, nil)}
}

// A regression test for the bug where Step consumed a phantom extra data
// byte past an immediate operand (OpRead's data phase doesn't apply to
// immediate addressing, since the operand already is the data).
func TestStepLDAImmediateConsumesOnlyItsOwnBytes(t *testing.T) {
	ex := newTestExecutor()
	w := sample.NewWindow([]sample.Sample{
		{Data: 0xA9, Type: sample.Opcode},
		{Data: 0x7F, Type: sample.Instr},
		{Data: 0xEA, Type: sample.Opcode}, // next instruction, must be untouched
	})
	consumed, err := ex.Step(w, 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, consumed)
	v, ok := ex.Regs.A.Value()
	assert.True(t, ok)
	assert.Equal(t, byte(0x7F), v)
}

func TestStepAdvancesPCByInstructionLength(t *testing.T) {
	ex := newTestExecutor()
	w := sample.NewWindow([]sample.Sample{
		{Data: 0xA9, Type: sample.Opcode},
		{Data: 0x01, Type: sample.Instr},
	})
	_, err := ex.Step(w, 0)
	assert.NoError(t, err)
	pc, ok := ex.Regs.PC.Value()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x8002), pc)
}

func TestStepSTADirectWritesShadowAndMatches(t *testing.T) {
	ex := newTestExecutor()
	ex.Regs.A = tri.KnownByte(0x42)
	w := sample.NewWindow([]sample.Sample{
		{Data: 0x85, Type: sample.Opcode},
		{Data: 0x10, Type: sample.Instr},
		{Data: 0x42, Type: sample.Last},
	})
	consumed, err := ex.Step(w, 0)
	assert.NoError(t, err)
	assert.Equal(t, 3, consumed)
	assert.False(t, ex.Fail)
	v, ok := ex.Mem.Peek(0x0010)
	assert.True(t, ok)
	assert.Equal(t, byte(0x42), v)
}

func TestStepSTADirectMismatchSetsFail(t *testing.T) {
	ex := newTestExecutor()
	ex.Regs.A = tri.KnownByte(0x42)
	w := sample.NewWindow([]sample.Sample{
		{Data: 0x85, Type: sample.Opcode},
		{Data: 0x10, Type: sample.Instr},
		{Data: 0x99, Type: sample.Last},
	})
	_, err := ex.Step(w, 0)
	assert.NoError(t, err)
	assert.True(t, ex.Fail)
}

func TestStepSTADirectAdoptsObservedValueWhenAUnknown(t *testing.T) {
	ex := newTestExecutor()
	// A left unknown.
	w := sample.NewWindow([]sample.Sample{
		{Data: 0x85, Type: sample.Opcode},
		{Data: 0x10, Type: sample.Instr},
		{Data: 0x55, Type: sample.Last},
	})
	_, err := ex.Step(w, 0)
	assert.NoError(t, err)
	assert.False(t, ex.Fail)
	v, ok := ex.Regs.A.Value()
	assert.True(t, ok)
	assert.Equal(t, byte(0x55), v)
}

func TestStepShortWindowReportsError(t *testing.T) {
	ex := newTestExecutor()
	w := sample.NewWindow([]sample.Sample{{Data: 0xA9, Type: sample.Opcode}})
	_, err := ex.Step(w, 0)
	assert.Error(t, err)
}

// STA dp is 3 cycles but only 2 bytes long; PC must advance by the byte
// length, not by the samples consumed.
func TestStepAdvancesPCByByteLengthNotCycleCount(t *testing.T) {
	ex := newTestExecutor()
	ex.Regs.A = tri.KnownByte(0x42)
	w := sample.NewWindow([]sample.Sample{
		{Data: 0x85, Type: sample.Opcode},
		{Data: 0x10, Type: sample.Instr},
		{Data: 0x42, Type: sample.Last},
	})
	consumed, err := ex.Step(w, 0)
	assert.NoError(t, err)
	assert.Equal(t, 3, consumed)
	pc, ok := ex.Regs.PC.Value()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x8002), pc)
}

// With a sync hint pinning the cycle count, an RMW's read and write-back
// bytes are extracted at their real cycle offsets: read at n-3, internal,
// write at n-1.
func TestStepRMWExtractsReadAndWriteAtCycleOffsets(t *testing.T) {
	ex := newTestExecutor()
	w := sample.NewWindow([]sample.Sample{
		{Data: 0xEE, Type: sample.Opcode}, // INC $2010
		{Data: 0x10, Type: sample.Instr},
		{Data: 0x20, Type: sample.Instr},
		{Data: 0x41, Type: sample.Unknown}, // data read
		{Data: 0x00, Type: sample.Unknown}, // internal cycle
		{Data: 0x42, Type: sample.Last},    // write-back
	})
	consumed, err := ex.Step(w, 0)
	assert.NoError(t, err)
	assert.Equal(t, 6, consumed)
	assert.False(t, ex.Fail)
	v, ok := ex.Mem.Peek(0x2010)
	assert.True(t, ok)
	assert.Equal(t, byte(0x42), v)
}

// TSB with an unknown accumulator cannot compute the write-back; it adopts
// the observed byte instead of failing (or worse).
func TestStepTSBUnknownAccumulatorAdoptsObservedWrite(t *testing.T) {
	ex := newTestExecutor()
	w := sample.NewWindow([]sample.Sample{
		{Data: 0x04, Type: sample.Opcode}, // TSB $10
		{Data: 0x10, Type: sample.Instr},
		{Data: 0x33, Type: sample.Unknown}, // data read
		{Data: 0x00, Type: sample.Unknown}, // internal cycle
		{Data: 0x37, Type: sample.Last},    // write-back
	})
	consumed, err := ex.Step(w, 0)
	assert.NoError(t, err)
	assert.Equal(t, 5, consumed)
	assert.False(t, ex.Fail)
	v, ok := ex.Mem.Peek(0x0010)
	assert.True(t, ok)
	assert.Equal(t, byte(0x37), v)
	assert.False(t, ex.Regs.Flags.Z.Known())
}

// PHA with an unknown accumulator still consumes its push cycle, adopts
// the pushed byte, and moves the stack pointer.
func TestStepPHAUnknownAccumulatorAdoptsPushedByte(t *testing.T) {
	ex := newTestExecutor()
	w := sample.NewWindow([]sample.Sample{
		{Data: 0x48, Type: sample.Opcode},
		{Data: 0x00, Type: sample.Unknown}, // internal cycle
		{Data: 0x77, Type: sample.Last},    // push
	})
	consumed, err := ex.Step(w, 0)
	assert.NoError(t, err)
	assert.Equal(t, 3, consumed)
	assert.False(t, ex.Fail)
	a, ok := ex.Regs.A.Value()
	assert.True(t, ok)
	assert.Equal(t, byte(0x77), a)
	v, ok := ex.Mem.Peek(0x01FF)
	assert.True(t, ok)
	assert.Equal(t, byte(0x77), v)
	sp, ok := ex.Regs.SP().Value()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x01FE), sp)
}

// JSR with an unknown PC must not manufacture a push mismatch; the return
// address simply cannot be verified.
func TestStepJSRUnknownPCDoesNotFail(t *testing.T) {
	ex := newTestExecutor()
	ex.Regs.PC = tri.UnknownWord()
	w := sample.NewWindow([]sample.Sample{
		{Data: 0x20, Type: sample.Opcode}, // JSR $3000
		{Data: 0x00, Type: sample.Instr},
		{Data: 0x30, Type: sample.Instr},
		{Data: 0x00, Type: sample.Unknown}, // internal cycle
		{Data: 0x80, Type: sample.Unknown}, // push PCH
		{Data: 0x02, Type: sample.Last},    // push PCL
	})
	consumed, err := ex.Step(w, 0)
	assert.NoError(t, err)
	assert.Equal(t, 6, consumed)
	assert.False(t, ex.Fail)
	pc, ok := ex.Regs.PC.Value()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x3000), pc)
}

// A taken branch consumes its internal cycle even without a sync hint.
func TestStepTakenBranchConsumesExtraCycle(t *testing.T) {
	ex := newTestExecutor()
	w := sample.NewWindow([]sample.Sample{
		{Data: 0x80}, // BRA $FE: branch to self
		{Data: 0xFE},
		{Data: 0x00},
	})
	consumed, err := ex.Step(w, 0)
	assert.NoError(t, err)
	assert.Equal(t, 3, consumed)
	pc, ok := ex.Regs.PC.Value()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x8000), pc)
}

func TestStepRecordsInstruction(t *testing.T) {
	ex := newTestExecutor()
	w := sample.NewWindow([]sample.Sample{
		{Data: 0xA9, Type: sample.Opcode},
		{Data: 0x7F, Type: sample.Instr},
	})
	_, err := ex.Step(w, 0)
	assert.NoError(t, err)
	i := ex.LastInstr()
	assert.Equal(t, byte(0xA9), i.Opcode)
	assert.Equal(t, 1, i.NumOperands)
	assert.Equal(t, byte(0x7F), i.Operands[0])
	pc, ok := i.PC.Value()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x8000), pc)
	assert.Equal(t, "LDA #$7F", i.Disassemble())
}
