package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wdctrace/tracecore/tri"
)

func TestXCESwapsKnownCarryAndEmulation(t *testing.T) {
	ex := &Executor{Regs: NewRegisters()}
	ex.Regs.Flags.C = tri.KnownBit(true)
	ex.Regs.Flags.E = tri.KnownBit(false)
	opXCE(ex)

	e, ok := ex.Regs.Flags.E.Value()
	assert.True(t, ok)
	assert.True(t, e) // old C becomes new E

	c, ok := ex.Regs.Flags.C.Value()
	assert.True(t, ok)
	assert.False(t, c) // old E becomes new C

	ms, ok := ex.Regs.Flags.MS.Value()
	assert.True(t, ok)
	assert.True(t, ms) // entering emulation mode pins MS/XS
}

func TestXCEWithUnknownCarryLeavesWidthFlagsUnknown(t *testing.T) {
	ex := &Executor{Regs: NewRegisters()}
	ex.Regs.Flags.C = tri.UnknownBit()
	ex.Regs.Flags.E = tri.KnownBit(false)
	opXCE(ex)

	assert.False(t, ex.Regs.Flags.E.Known())
	assert.False(t, ex.Regs.Flags.MS.Known())
	assert.False(t, ex.Regs.Flags.XS.Known())
}

func TestTCSLeavesStackHighByteUnknownWhenEUnknown(t *testing.T) {
	ex := &Executor{Regs: NewRegisters()}
	ex.Regs.A = tri.KnownByte(0xFF)
	ex.Regs.B = tri.KnownByte(0x01)
	opTCS(ex)

	assert.False(t, ex.Regs.SH.Known())
	lo, ok := ex.Regs.SL.Value()
	assert.True(t, ok)
	assert.Equal(t, byte(0xFF), lo)
}

func TestTCSPinsStackHighByteInEmulationMode(t *testing.T) {
	ex := &Executor{Regs: NewRegisters()}
	ex.Regs.Flags.E = tri.KnownBit(true)
	ex.Regs.A = tri.KnownByte(0x00)
	ex.Regs.B = tri.KnownByte(0x02)
	opTCS(ex)

	sh, ok := ex.Regs.SH.Value()
	assert.True(t, ok)
	assert.Equal(t, byte(0x01), sh)
}
