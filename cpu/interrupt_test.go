package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wdctrace/tracecore/mask"
	"github.com/wdctrace/tracecore/memory"
	"github.com/wdctrace/tracecore/sample"
	"github.com/wdctrace/tracecore/tri"
)

func TestMatchInterruptRecognizesWriteTriplet(t *testing.T) {
	r := NewRegisters()
	w := sample.NewWindow([]sample.Sample{
		{Data: 0x00, RWN: sample.RWRead},
		{Data: 0x80, RWN: sample.RWWrite},
		{Data: 0x00, RWN: sample.RWWrite},
		{Data: 0x30, RWN: sample.RWWrite},
		{Data: 0x00, RWN: sample.RWRead},
		{Data: 0xE6, RWN: sample.RWRead},
		{Data: 0xFF, RWN: sample.RWRead},
	})
	assert.True(t, MatchInterrupt(r, w, 0, 0xEA))
}

func TestMatchInterruptExcludesBRKAndCOPEvenWithWriteTriplet(t *testing.T) {
	r := NewRegisters()
	w := sample.NewWindow([]sample.Sample{
		{RWN: sample.RWRead}, {RWN: sample.RWWrite}, {RWN: sample.RWWrite}, {RWN: sample.RWWrite},
		{RWN: sample.RWRead}, {RWN: sample.RWRead}, {RWN: sample.RWRead},
	})
	assert.False(t, MatchInterrupt(r, w, 0, 0x00))
	assert.False(t, MatchInterrupt(r, w, 0, 0x02))
}

func TestMatchInterruptWithoutRWUsesPCAndBreakByte(t *testing.T) {
	r := NewRegisters()
	r.PC = tri.KnownWord(0x1234)
	r.Flags.N = tri.KnownBit(false)
	r.Flags.C = tri.KnownBit(true)
	pcHi, pcLo := mask.SplitWord(0x1234)
	// bit5 (M/unused) set, bit4 (X/B) clear, bit7 (N) clear, bit0 (C) set.
	breakByte := byte(0x21)
	w := sample.NewWindow([]sample.Sample{
		{},
		{Data: pcHi},
		{Data: pcLo},
		{Data: breakByte},
		{}, {}, {},
	})
	assert.True(t, MatchInterrupt(r, w, 0, 0xEA))
}

func TestMatchInterruptRejectsPCMismatch(t *testing.T) {
	r := NewRegisters()
	r.PC = tri.KnownWord(0x1234)
	w := sample.NewWindow([]sample.Sample{
		{}, {Data: 0xFF}, {Data: 0xFF}, {Data: 0x21}, {}, {}, {},
	})
	assert.False(t, MatchInterrupt(r, w, 0, 0xEA))
}

func TestMatchInterruptRejectsShortWindow(t *testing.T) {
	r := NewRegisters()
	w := sample.NewWindow([]sample.Sample{{}, {}, {}})
	assert.False(t, MatchInterrupt(r, w, 0, 0xEA))
}

func TestResetReadsVectorFromLastTwoSamplesAndWipesState(t *testing.T) {
	ex := &Executor{Regs: NewRegisters(), Mem: memory.NewShadow(0x10000, nil)}
	ex.Regs.A = tri.KnownByte(0x11)
	w := sample.NewWindow([]sample.Sample{
		{}, {}, {}, {}, {},
		{Data: 0x00},
		{Data: 0x80},
	})
	ex.Reset(w)

	pc, ok := ex.Regs.PC.Value()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x8000), pc)

	_, aKnown := ex.Regs.A.Value()
	assert.False(t, aKnown)

	i, ok := ex.Regs.Flags.I.Value()
	assert.True(t, ok)
	assert.True(t, i)

	d, ok := ex.Regs.Flags.D.Value()
	assert.True(t, ok)
	assert.False(t, d)

	e, ok := ex.Regs.Flags.E.Value()
	assert.True(t, ok)
	assert.True(t, e)
}

func TestInterruptNativeModePushesPBPCAndPThenLoadsVector(t *testing.T) {
	ex := &Executor{Regs: NewRegisters(), Mem: memory.NewShadow(0x10000, nil)}
	ex.Regs.PC = tri.KnownWord(0x1234)
	ex.Regs.PB = tri.KnownByte(0x00)
	ex.Regs.SetSP(tri.KnownWord(0x01FF))

	w := sample.NewWindow([]sample.Sample{
		{},           // dead cycle, not consumed by Interrupt directly
		{Data: 0x00}, // PB push
		{Data: 0x12}, // PC hi
		{Data: 0x34}, // PC lo
		{Data: 0x00}, // P push
		{},           // idle cycle
		{Data: 0x00}, // vector lo
		{Data: 0x80}, // vector hi
	})

	consumed := ex.Interrupt(w, 0, true, false, false)
	assert.Equal(t, 8, consumed)
	assert.False(t, ex.Fail)

	pc, ok := ex.Regs.PC.Value()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x8000), pc)

	pb, ok := ex.Regs.PB.Value()
	assert.True(t, ok)
	assert.Equal(t, byte(0), pb)

	i, _ := ex.Regs.Flags.I.Value()
	assert.True(t, i)
}
