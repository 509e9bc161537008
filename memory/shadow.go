// Package memory implements the shadow model of observed memory contents
// (spec §4.7): a tri-state byte array, the per-host overlay mappings of
// spec §4.7/§12, and the access-kind knobs of spec §6.5. It never
// originates data — it only checks observed data against what it has
// already seen.
package memory

import "fmt"

// cell is a tri-state shadow byte. -1 means unknown; 0..255 means known,
// ported directly from original_source/src/memory.c's int8_t array
// (negative = unknown).
type cell int16

const unknownCell cell = -1

// Shadow is the flat shadow array plus the active Machine overlay and the
// modelling/logging knobs. Size is the address space in bytes (0x10000 for
// every host except Blitter, which is 24-bit / 0x1000000).
type Shadow struct {
	ram     []cell
	machine *Machine

	Model     KindMask // which kinds are modelled (stored/checked) at all
	LogReads  KindMask // which kinds print a line on read
	LogWrites KindMask // which kinds print a line on write

	// Logf receives one line per logged access or failure (spec §10.3);
	// nil discards it.
	Logf func(format string, args ...any)

	fail bool
}

// NewShadow allocates a Shadow of the given address-space size for the
// given Machine (nil means flat RAM / HostFlat).
func NewShadow(size int, m *Machine) *Shadow {
	if m == nil {
		m = NewMachine(HostFlat)
	}
	ram := make([]cell, size)
	for i := range ram {
		ram[i] = unknownCell
	}
	return &Shadow{
		ram:       ram,
		machine:   m,
		Model:     AllKinds,
		LogReads:  0,
		LogWrites: AllKinds,
	}
}

// Machine returns the Shadow's active Machine.
func (s *Shadow) Machine() *Machine { return s.machine }

// Fail reports whether a consistency check has failed since the last
// GetAndClearFail.
func (s *Shadow) Fail() bool { return s.fail }

// GetAndClearFail returns and clears the failure flag (spec §6.1/§7).
func (s *Shadow) GetAndClearFail() bool {
	f := s.fail
	s.fail = false
	return f
}

func (s *Shadow) logf(format string, args ...any) {
	if s.Logf != nil {
		s.Logf(format, args...)
	}
}

func (s *Shadow) cellAt(t target) *cell {
	if t.region != nil {
		return &t.region.cells[t.offset]
	}
	idx := int(t.flatEA) % len(s.ram)
	return &s.ram[idx]
}

// Read checks an observed read of data at ea, tagged with kind. If the
// shadow already holds a known, differing byte at ea, it logs a mismatch
// and sets the failure flag; otherwise it imprints data into the shadow.
// I/O windows and un-modelled kinds are never checked.
func (s *Shadow) Read(data byte, ea uint32, kind Kind) {
	t := s.machine.translate(ea, kind)
	if s.LogReads.Has(kind) {
		s.logf("rd %s %06X = %02X", kind, ea, data)
	}
	if t.skip || !s.Model.Has(kind) {
		return
	}
	c := s.cellAt(t)
	if *c != unknownCell && byte(*c) != data {
		s.fail = true
		s.logf("memory modelling failed at %06X: expected %02X actual %02X", ea, byte(*c), data)
		return
	}
	*c = cell(data)
}

// Write updates the shadow at ea with data, tagged with kind. Writable-ROM
// overlays report ignored=true (spec §4.7: "for machines with
// writable-ROM semantics it may return ignored").
func (s *Shadow) Write(data byte, ea uint32, kind Kind) (ignored bool) {
	s.machine.writeLatch(ea, data)
	t := s.machine.translate(ea, kind)
	if s.LogWrites.Has(kind) {
		suffix := ""
		if t.ignore {
			suffix = " (ignored)"
		}
		s.logf("wr %s %06X = %02X%s", kind, ea, data, suffix)
	}
	if t.ignore {
		return true
	}
	if t.skip || !s.Model.Has(kind) {
		return false
	}
	c := s.cellAt(t)
	*c = cell(data)
	return false
}

// Peek returns the shadow's current belief about the byte at ea (value,
// known) without performing a consistency check; used by ReadMemory in the
// dispatch adapter (spec §6.1).
func (s *Shadow) Peek(ea uint32) (byte, bool) {
	t := s.machine.translate(ea, Data)
	c := s.cellAt(t)
	if *c == unknownCell {
		return 0, false
	}
	return byte(*c), true
}

// FormatAddr renders ea as a bank-labelled, fixed-width hex address, ported
// from original_source/src/memory.c's write_bankid/write_addr (spec §12).
func FormatAddr(m *Machine, ea uint32, addrDigits int) string {
	label := "  "
	if m != nil {
		label = m.BankLabel(ea)
	}
	return fmt.Sprintf("%s%0*X", label, addrDigits, ea)
}
