package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wdctrace/tracecore/memory"
	"github.com/wdctrace/tracecore/sample"
	"github.com/wdctrace/tracecore/tri"
)

func TestPredictCyclesWidensWhenMIsUnknown(t *testing.T) {
	c := PredictCycles(Table[0xA9], tri.UnknownBit(), tri.KnownBit(true), tri.KnownBit(true), tri.KnownBit(false))
	assert.False(t, c.Known())
	lo, hi := c.Range()
	assert.Equal(t, 2, lo)
	assert.Equal(t, 3, hi)
}

func TestPredictCyclesCollapsesWhenMIsKnown(t *testing.T) {
	c := PredictCycles(Table[0xA9], tri.KnownBit(true), tri.KnownBit(true), tri.KnownBit(true), tri.KnownBit(false))
	n, ok := c.Value()
	assert.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestPredictCyclesIndexCrossPageAddsOneForReads(t *testing.T) {
	c := PredictCycles(Table[0xBD], tri.KnownBit(true), tri.KnownBit(true), tri.KnownBit(true), tri.KnownBit(true)) // LDA abs,X
	n, ok := c.Value()
	assert.True(t, ok)
	assert.Equal(t, 5, n) // base 4 + 1 page-cross
}

func TestPredictCyclesUnknownCrossWidensReads(t *testing.T) {
	c := PredictCycles(Table[0xBD], tri.KnownBit(true), tri.KnownBit(true), tri.KnownBit(true), tri.UnknownBit())
	assert.False(t, c.Known())
	lo, hi := c.Range()
	assert.Equal(t, 4, lo)
	assert.Equal(t, 5, hi)
}

func TestPredictCyclesWritesNeverPayCrossPenalty(t *testing.T) {
	c := PredictCycles(Table[0x9D], tri.KnownBit(true), tri.KnownBit(true), tri.KnownBit(true), tri.KnownBit(true)) // STA abs,X
	n, ok := c.Value()
	assert.True(t, ok)
	assert.Equal(t, 5, n) // the table base; no +1
}

func TestCyclesStringFormatsExactAndRange(t *testing.T) {
	assert.Equal(t, "2", knownCycles(2).String())
	assert.Equal(t, "2-3", unknownCycles(2, 3).String())
}

func TestCyclesContainsRespectsRange(t *testing.T) {
	c := unknownCycles(2, 3)
	assert.True(t, c.Contains(2))
	assert.True(t, c.Contains(3))
	assert.False(t, c.Contains(4))
}

func newNativeDispatch() *Dispatch {
	d := NewDispatch(memory.NewShadow(0x10000, nil), nil)
	r := d.ex.Regs
	r.Flags.E = tri.KnownBit(false)
	r.Flags.MS = tri.KnownBit(true)
	r.SetXS(tri.KnownBit(true))
	r.DP = tri.KnownWord(0)
	r.DB = tri.KnownByte(0)
	return d
}

func TestPredictBranchTakenConsumesThreeCycles(t *testing.T) {
	d := NewDispatch(memory.NewShadow(0x10000, nil), nil)
	r := d.ex.Regs
	r.Flags.E = tri.KnownBit(true)
	r.PC = tri.KnownWord(0x8000)
	w := sample.NewWindow([]sample.Sample{{Data: 0x80}, {Data: 0xFE}}) // BRA $FE: an infinite loop
	c := d.predict(w, 0, Table[0x80], r.Flags.MS, r.Flags.XS)
	n, ok := c.Value()
	assert.True(t, ok)
	assert.Equal(t, 3, n)
}

func TestPredictBranchPageCrossInEmulationConsumesFour(t *testing.T) {
	d := NewDispatch(memory.NewShadow(0x10000, nil), nil)
	r := d.ex.Regs
	r.Flags.E = tri.KnownBit(true)
	r.PC = tri.KnownWord(0x80F0) // next=0x80F2, +0x20 lands at 0x8112
	w := sample.NewWindow([]sample.Sample{{Data: 0x80}, {Data: 0x20}})
	c := d.predict(w, 0, Table[0x80], r.Flags.MS, r.Flags.XS)
	n, ok := c.Value()
	assert.True(t, ok)
	assert.Equal(t, 4, n)
}

func TestPredictBranchNotTakenIsTwoCycles(t *testing.T) {
	d := NewDispatch(memory.NewShadow(0x10000, nil), nil)
	r := d.ex.Regs
	r.Flags.Z = tri.KnownBit(false)
	w := sample.NewWindow([]sample.Sample{{Data: 0xF0}, {Data: 0x10}}) // BEQ with Z=0
	c := d.predict(w, 0, Table[0xF0], r.Flags.MS, r.Flags.XS)
	n, ok := c.Value()
	assert.True(t, ok)
	assert.Equal(t, 2, n)
}

// (d),Y reads: the predictor is exact when Y and the shadow's pointer are
// both known, and unknown when Y is unknown.
func TestPredictDirectIndirectYUsesShadowPointer(t *testing.T) {
	d := newNativeDispatch()
	r := d.ex.Regs
	d.ex.Mem.Read(0xF0, 0x0010, memory.Data) // pointer low
	d.ex.Mem.Read(0x20, 0x0011, memory.Data) // pointer high: base 0x20F0

	r.Y = tri.KnownWord(0x20) // 0x20F0+0x20 crosses into 0x2110
	w := sample.NewWindow([]sample.Sample{{Data: 0xB1}, {Data: 0x10}}) // LDA ($10),Y
	c := d.predict(w, 0, Table[0xB1], r.Flags.MS, r.Flags.XS)
	n, ok := c.Value()
	assert.True(t, ok)
	assert.Equal(t, 6, n) // base 5 + 1 page-cross

	r.Y = tri.UnknownWord()
	c = d.predict(w, 0, Table[0xB1], r.Flags.MS, r.Flags.XS)
	assert.False(t, c.Known())
}

func TestCountCyclesInfersWideAccumulatorFromObservedCount(t *testing.T) {
	d := newNativeDispatch()
	d.ex.Regs.Flags.MS = tri.UnknownBit()
	w := sample.NewWindow([]sample.Sample{
		{Data: 0xA9, Type: sample.Opcode},
		{Data: 0x34, Type: sample.Instr},
		{Data: 0x12, Type: sample.Instr},
		{Data: 0xEA, Type: sample.Opcode},
	})
	assert.Equal(t, 3, d.CountCycles(w, 0, false))
	ms, ok := d.ex.Regs.Flags.MS.Value()
	assert.True(t, ok)
	assert.False(t, ms) // 3 cycles for LDA # means a 16-bit accumulator
}

func TestCountCyclesInfersNarrowIndexFromObservedCount(t *testing.T) {
	d := newNativeDispatch()
	d.ex.Regs.SetXS(tri.UnknownBit())
	w := sample.NewWindow([]sample.Sample{
		{Data: 0xA2, Type: sample.Opcode},
		{Data: 0x10, Type: sample.Instr},
		{Data: 0xEA, Type: sample.Opcode},
	})
	assert.Equal(t, 2, d.CountCycles(w, 0, false))
	xs, ok := d.ex.Regs.Flags.XS.Value()
	assert.True(t, ok)
	assert.True(t, xs)
}
