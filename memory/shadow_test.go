package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadImprintsUnknownCell(t *testing.T) {
	s := NewShadow(0x10000, nil)
	s.Read(0x42, 0x2000, Data)
	v, ok := s.Peek(0x2000)
	assert.True(t, ok)
	assert.Equal(t, byte(0x42), v)
	assert.False(t, s.Fail())
}

func TestReadMismatchSetsFailOnce(t *testing.T) {
	s := NewShadow(0x10000, nil)
	s.Read(0x42, 0x2000, Data)
	s.Read(0x43, 0x2000, Data)
	assert.True(t, s.GetAndClearFail())
	// earlier value is retained
	v, _ := s.Peek(0x2000)
	assert.Equal(t, byte(0x42), v)
	// the flag stays clear after GetAndClearFail
	assert.False(t, s.Fail())
}

func TestBeebSidewaysROMBankSelect(t *testing.T) {
	m := NewMachine(HostBeeb)
	m.RomLatch = 3
	s := NewShadow(0x10000, m)

	s.Write(0xAA, 0x8000, Data)
	ignored := s.Write(0xBB, 0x8000, Data)
	_ = ignored

	m.RomLatch = 7
	s.Read(0x00, 0x8000, Data) // different bank, shadow starts unknown
	v, ok := s.Peek(0x8000)
	assert.True(t, ok)
	assert.Equal(t, byte(0x00), v)
}

func TestBeebIOWindowSkipsCheck(t *testing.T) {
	m := NewMachine(HostBeeb)
	s := NewShadow(0x10000, m)
	s.Read(0x01, 0xFE00, Data)
	s.Read(0x02, 0xFE00, Data)
	assert.False(t, s.Fail())
	_, ok := s.Peek(0xFE00)
	assert.False(t, ok)
}

func TestMasterHazelOverlay(t *testing.T) {
	m := NewMachine(HostMaster)
	m.AccconLatch = 0x08 // Hazel selected
	s := NewShadow(0x10000, m)
	s.Write(0x55, 0xC100, Data)
	v, ok := s.Peek(0xC100)
	assert.True(t, ok)
	assert.Equal(t, byte(0x55), v)
}

func TestAtomShadowBoundary(t *testing.T) {
	m := NewMachine(HostAtom)
	s := NewShadow(0x10000, m)
	s.Read(0x10, 0x9000, Data)
	s.Read(0x11, 0x9000, Data)
	assert.True(t, s.Fail())
}

func TestBlitterBootModeRemap(t *testing.T) {
	m := NewMachine(HostBlitter)
	m.BootMode = 0x20
	s := NewShadow(0x1000000, m)
	s.Write(0x99, 0x1234, Data) // remapped to bank 0xFF
	v, ok := s.Peek(0xFF1234)
	assert.True(t, ok)
	assert.Equal(t, byte(0x99), v)
}

func TestBeebRomLatchTracksWrites(t *testing.T) {
	m := NewMachine(HostBeeb)
	s := NewShadow(0x10000, m)
	s.Write(0x0C, 0xFE30, Data)
	assert.Equal(t, byte(0x0C), m.RomLatch)
	// the latch itself sits in the I/O window and is never modelled
	_, ok := s.Peek(0xFE30)
	assert.False(t, ok)
}

func TestMasterAccconLatchTracksWrites(t *testing.T) {
	m := NewMachine(HostMaster)
	s := NewShadow(0x10000, m)
	s.Write(0x08, 0xFE34, Data)
	assert.Equal(t, byte(0x08), m.AccconLatch)

	// with Hazel now selected, C000 reads land in the overlay
	s.Write(0x55, 0xC100, Data)
	v, ok := s.Peek(0xC100)
	assert.True(t, ok)
	assert.Equal(t, byte(0x55), v)
}

func TestElkRomLatchAddress(t *testing.T) {
	m := NewMachine(HostElk)
	s := NewShadow(0x10000, m)
	s.Write(0x05, 0xFE05, Data)
	assert.Equal(t, byte(0x05), m.RomLatch)
}

func TestBlitterBootModeLatchTracksWrites(t *testing.T) {
	m := NewMachine(HostBlitter)
	s := NewShadow(0x1000000, m)
	s.Write(0x20, 0xFFFE31, Data)
	assert.Equal(t, byte(0x20), m.BootMode)
	s.Write(0x99, 0x1234, Data) // now remapped to bank 0xFF
	v, ok := s.Peek(0xFF1234)
	assert.True(t, ok)
	assert.Equal(t, byte(0x99), v)
}

func TestMasterBankLabels(t *testing.T) {
	m := NewMachine(HostMaster)
	m.RomLatch = 0x0A
	assert.Equal(t, "A:", m.BankLabel(0x9000))
	m.AccconLatch = 0x08
	assert.Equal(t, "H:", m.BankLabel(0xC500))
	m.AccconLatch = 0x04
	assert.Equal(t, "S:", m.BankLabel(0x3000))
	assert.Equal(t, "  ", m.BankLabel(0x0100))
}

func TestFormatAddrPadsToAddressWidth(t *testing.T) {
	m := NewMachine(HostFlat)
	assert.Equal(t, "  001234", FormatAddr(m, 0x1234, 6))
	assert.Equal(t, "  1234", FormatAddr(m, 0x1234, 4))
}
