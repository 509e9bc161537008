package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wdctrace/tracecore/tri"
)

func TestStateStringAllUnknown(t *testing.T) {
	r := NewRegisters()
	assert.Equal(t,
		"A=???? X=???? Y=???? SP=???? N=? V=? M=? X=? D=? I=? Z=? C=? E=? PB=?? DB=?? DP=????",
		r.String())
}

func TestStateStringKnownValues(t *testing.T) {
	r := NewRegisters()
	r.A = tri.KnownByte(0x34)
	r.B = tri.KnownByte(0x12)
	r.X = tri.KnownWord(0x00FF)
	r.Y = tri.KnownWord(0xBEEF)
	r.SetE(tri.KnownBit(true))
	r.SetSP(tri.KnownWord(0x01FD))
	r.Flags.N = tri.KnownBit(true)
	r.Flags.V = tri.KnownBit(false)
	r.Flags.D = tri.KnownBit(false)
	r.Flags.I = tri.KnownBit(true)
	r.Flags.Z = tri.KnownBit(false)
	r.Flags.C = tri.KnownBit(true)
	r.PB = tri.KnownByte(0x00)
	r.DB = tri.KnownByte(0x7E)
	r.DP = tri.KnownWord(0x0100)
	assert.Equal(t,
		"A=1234 X=00FF Y=00EF SP=01FD N=1 V=0 M=1 X=1 D=0 I=1 Z=0 C=1 E=1 PB=00 DB=7E DP=0100",
		r.String())
}

func TestSetEForcesEmulationInvariants(t *testing.T) {
	r := NewRegisters()
	r.X = tri.KnownWord(0x1234)
	r.Y = tri.KnownWord(0xABCD)
	r.SetE(tri.KnownBit(true))

	ms, _ := r.Flags.MS.Value()
	assert.True(t, ms)
	xs, _ := r.Flags.XS.Value()
	assert.True(t, xs)
	sh, _ := r.SH.Value()
	assert.Equal(t, byte(0x01), sh)
	x, _ := r.X.Value()
	assert.Equal(t, uint16(0x34), x) // narrowed
	y, _ := r.Y.Value()
	assert.Equal(t, uint16(0xCD), y)
}

func TestAgreesWithPSkipsWidthBitsInEmulationMode(t *testing.T) {
	r := NewRegisters()
	r.SetE(tri.KnownBit(true)) // pins MS=XS=1
	r.Flags.C = tri.KnownBit(true)
	// bit4 (B position) clear, as a hardware interrupt pushes it
	assert.True(t, r.AgreesWithP(0x21))
	// but a disagreeing C is still caught
	assert.False(t, r.AgreesWithP(0x20))
}

func TestSetFromPForcesWidthsInEmulationMode(t *testing.T) {
	r := NewRegisters()
	r.SetE(tri.KnownBit(true))
	r.SetFromP(0x00) // M/X bits clear on the bus
	ms, _ := r.Flags.MS.Value()
	assert.True(t, ms)
	xs, _ := r.Flags.XS.Value()
	assert.True(t, xs)
}
