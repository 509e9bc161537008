package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wdctrace/tracecore/memory"
	"github.com/wdctrace/tracecore/sample"
	"github.com/wdctrace/tracecore/tri"
)

// Multi-instruction traces walked end to end, checking the symbolic state
// after each step the way hejops-gone/cpu/cpu_test.go walks its 6502
// programs.

func newTraceExecutor() *Executor {
	regs := NewRegisters()
	regs.SetE(tri.KnownBit(true))
	return &Executor{Regs: regs, Mem: memory.NewShadow(0x10000, nil)}
}

func stepAll(t *testing.T, ex *Executor, w sample.Window) {
	t.Helper()
	for idx := 0; idx < w.Len(); {
		consumed, err := ex.Step(w, idx)
		assert.NoError(t, err)
		if consumed == 0 {
			t.Fatal("step made no progress")
		}
		idx += consumed
	}
}

func TestTraceLoadThenStoreImprintsShadow(t *testing.T) {
	ex := newTraceExecutor()
	ex.Regs.DB = tri.KnownByte(0)
	w := sample.NewWindow([]sample.Sample{
		{Data: 0xA9, Type: sample.Opcode}, // LDA #$42
		{Data: 0x42, Type: sample.Instr},
		{Data: 0x8D, Type: sample.Opcode}, // STA $2000
		{Data: 0x00, Type: sample.Instr},
		{Data: 0x20, Type: sample.Instr},
		{Data: 0x42, Type: sample.Last},
	})
	stepAll(t, ex, w)

	assert.False(t, ex.Fail)
	a, ok := ex.Regs.A.Value()
	assert.True(t, ok)
	assert.Equal(t, byte(0x42), a)
	z, _ := ex.Regs.Flags.Z.Value()
	assert.False(t, z)
	n, _ := ex.Regs.Flags.N.Value()
	assert.False(t, n)
	v, ok := ex.Mem.Peek(0x2000)
	assert.True(t, ok)
	assert.Equal(t, byte(0x42), v)
}

func TestTraceADCSignedOverflow(t *testing.T) {
	ex := newTraceExecutor()
	ex.Regs.Flags.C = tri.KnownBit(false)
	w := sample.NewWindow([]sample.Sample{
		{Data: 0xA9, Type: sample.Opcode}, // LDA #$80
		{Data: 0x80, Type: sample.Instr},
		{Data: 0x69, Type: sample.Opcode}, // ADC #$80
		{Data: 0x80, Type: sample.Instr},
	})
	stepAll(t, ex, w)

	a, ok := ex.Regs.A.Value()
	assert.True(t, ok)
	assert.Equal(t, byte(0x00), a)
	c, _ := ex.Regs.Flags.C.Value()
	assert.True(t, c)
	v, _ := ex.Regs.Flags.V.Value()
	assert.True(t, v)
	z, _ := ex.Regs.Flags.Z.Value()
	assert.True(t, z)
	n, _ := ex.Regs.Flags.N.Value()
	assert.False(t, n)
}

func TestTraceCLCXCEEntersNativeMode(t *testing.T) {
	ex := newTraceExecutor()
	w := sample.NewWindow([]sample.Sample{
		{Data: 0x18, Type: sample.Opcode}, // CLC
		{Data: 0xFB, Type: sample.Opcode}, // XCE
	})
	stepAll(t, ex, w)

	e, ok := ex.Regs.Flags.E.Value()
	assert.True(t, ok)
	assert.False(t, e)
	c, ok := ex.Regs.Flags.C.Value()
	assert.True(t, ok)
	assert.True(t, c) // the old E=1
	ms, _ := ex.Regs.Flags.MS.Value()
	assert.True(t, ms) // widths stay 8-bit until the next REP
	xs, _ := ex.Regs.Flags.XS.Value()
	assert.True(t, xs)
}

func TestTraceREPThenWideLoad(t *testing.T) {
	ex := newTraceExecutor()
	ex.Regs.SetE(tri.KnownBit(false))
	ex.Regs.Flags.MS = tri.KnownBit(true)
	ex.Regs.SetXS(tri.KnownBit(true))
	w := sample.NewWindow([]sample.Sample{
		{Data: 0xC2, Type: sample.Opcode}, // REP #$30
		{Data: 0x30, Type: sample.Instr},
		{Data: 0x00, Type: sample.Unknown}, // internal cycle
		{Data: 0xA9, Type: sample.Opcode},  // LDA #$1234
		{Data: 0x34, Type: sample.Instr},
		{Data: 0x12, Type: sample.Instr},
	})
	stepAll(t, ex, w)

	ms, ok := ex.Regs.Flags.MS.Value()
	assert.True(t, ok)
	assert.False(t, ms)
	xs, _ := ex.Regs.Flags.XS.Value()
	assert.False(t, xs)
	a, ok := ex.Regs.A.Value()
	assert.True(t, ok)
	assert.Equal(t, byte(0x34), a)
	b, ok := ex.Regs.B.Value()
	assert.True(t, ok)
	assert.Equal(t, byte(0x12), b)
	z, _ := ex.Regs.Flags.Z.Value()
	assert.False(t, z)
	n, _ := ex.Regs.Flags.N.Value()
	assert.False(t, n)
}

// Storing then loading a register back round-trips the known value without
// perturbing the other registers.
func TestTraceStoreLoadRoundTrip(t *testing.T) {
	ex := newTraceExecutor()
	ex.Regs.DB = tri.KnownByte(0)
	ex.Regs.X = tri.KnownWord(0x05)
	w := sample.NewWindow([]sample.Sample{
		{Data: 0xA9, Type: sample.Opcode}, // LDA #$9C
		{Data: 0x9C, Type: sample.Instr},
		{Data: 0x8D, Type: sample.Opcode}, // STA $1234
		{Data: 0x34, Type: sample.Instr},
		{Data: 0x12, Type: sample.Instr},
		{Data: 0x9C, Type: sample.Last},
		{Data: 0xA9, Type: sample.Opcode}, // LDA #$00
		{Data: 0x00, Type: sample.Instr},
		{Data: 0xAD, Type: sample.Opcode}, // LDA $1234
		{Data: 0x34, Type: sample.Instr},
		{Data: 0x12, Type: sample.Instr},
		{Data: 0x9C, Type: sample.Last},
	})
	stepAll(t, ex, w)

	assert.False(t, ex.Fail)
	a, ok := ex.Regs.A.Value()
	assert.True(t, ok)
	assert.Equal(t, byte(0x9C), a)
	x, ok := ex.Regs.X.Value()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x05), x)
}

// Two conflicting reads at the same address fail exactly once and keep the
// first value.
func TestTraceConflictingReadsFailOnce(t *testing.T) {
	ex := newTraceExecutor()
	ex.Regs.DB = tri.KnownByte(0)
	w := sample.NewWindow([]sample.Sample{
		{Data: 0xAD, Type: sample.Opcode}, // LDA $1234 -> 0x11
		{Data: 0x34, Type: sample.Instr},
		{Data: 0x12, Type: sample.Instr},
		{Data: 0x11, Type: sample.Last},
		{Data: 0xAD, Type: sample.Opcode}, // LDA $1234 -> 0x22, conflicting
		{Data: 0x34, Type: sample.Instr},
		{Data: 0x12, Type: sample.Instr},
		{Data: 0x22, Type: sample.Last},
	})
	stepAll(t, ex, w)

	assert.True(t, ex.Mem.GetAndClearFail())
	assert.False(t, ex.Mem.Fail())
	v, ok := ex.Mem.Peek(0x1234)
	assert.True(t, ok)
	assert.Equal(t, byte(0x11), v)
}
