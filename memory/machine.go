package memory

import "fmt"

// Host identifies which 65C816 host system's memory map the Machine
// emulates (spec §4.7). Ported from original_source/src/memory.c's
// per-machine latches (rom_latch, acccon_latch, boot_mode, vdu_op), which
// are owned here by the Machine value instead of as C file-scope globals
// (spec Design Note §9).
type Host int

const (
	// HostFlat is a plain flat RAM machine (the default).
	HostFlat Host = iota
	HostBeeb
	HostMaster
	HostElk
	HostAtom
	HostMEK6800D2
	HostBlitter
	HostPET
)

// region is a named backing store for an overlay (sideways ROM bank, Andy,
// Lynne, Hazel, ...). cells use the same -1-is-unknown sentinel as the main
// shadow array (spec §4.7, original_source/src/memory.c's init_ram).
type region struct {
	name  string
	base  uint32 // ea this region starts at when selected
	cells []cell
}

func newRegion(name string, base uint32, size int) *region {
	c := make([]cell, size)
	for i := range c {
		c[i] = unknownCell
	}
	return &region{name: name, base: base, cells: c}
}

// Machine holds the latches and overlay regions for one host system. The
// zero value is HostFlat.
type Machine struct {
	Host Host

	RomLatch    byte // sideways ROM bank select (Beeb/Master/Elk)
	AccconLatch byte // Master ACCCON register
	BootMode    byte // Blitter boot-mode latch

	// VduOp records whether the most recent FETCH originated from the
	// video-driver code region (spec glossary: "VDU op"); it influences
	// Lynne (shadow RAM) selection on the Master.
	VduOp bool

	swrom [16]*region // 16 KiB sideways ROM banks, Beeb/Master/Elk/Blitter
	andy  *region     // 4 KiB, Master, 0x8000-0x8FFF
	lynne *region     // 20 KiB, Master, 0x3000-0x7FFF
	hazel *region     // 8 KiB, Master MOS overlay, 0xC000-0xDFFF

	// RomsDir is recognized only by the PET backend (spec §6.5): a
	// directory of ROM images to preload into fixed banks.
	RomsDir string
	petROMs map[uint32]*region
}

// NewMachine constructs a Machine for the given host, allocating whatever
// overlay regions that host needs.
func NewMachine(host Host) *Machine {
	m := &Machine{Host: host}
	switch host {
	case HostBeeb, HostElk:
		for i := range m.swrom {
			m.swrom[i] = newRegion("rom", 0x8000, 0x4000)
		}
	case HostMaster:
		for i := range m.swrom {
			m.swrom[i] = newRegion("rom", 0x8000, 0x4000)
		}
		m.andy = newRegion("andy", 0x8000, 0x1000)
		m.lynne = newRegion("lynne", 0x3000, 0x5000)
		m.hazel = newRegion("hazel", 0xC000, 0x2000)
	case HostBlitter:
		for i := range m.swrom {
			m.swrom[i] = newRegion("rom", 0xFF8000, 0x4000)
		}
	case HostPET:
		m.petROMs = make(map[uint32]*region)
	}
	return m
}

// LoadPETROM installs a ROM image at a fixed bank base address, as read
// from m.RomsDir by an external loader (spec §6.5: "ROM images optionally
// pre-loaded from a directory into fixed banks").
func (m *Machine) LoadPETROM(base uint32, data []byte) {
	r := newRegion("rom", base, len(data))
	for i, b := range data {
		r.cells[i] = cell(b)
	}
	m.petROMs[base] = r
}

// writeLatch observes writes to the machine's paging registers and updates
// the latches before the shadow ever sees the access (ported from
// original_source/src/memory.c's set_rom_latch/set_acccon_latch hooks in
// its machine write handlers). On the Beeb and Master the latch addresses
// sit inside the I/O window, so the write itself is never modelled; the Elk
// and Blitter maps have no I/O window, so there the write also lands in the
// shadow like any other RAM write.
func (m *Machine) writeLatch(ea uint32, data byte) {
	switch m.Host {
	case HostBeeb:
		if ea == 0xFE30 {
			m.RomLatch = data
		}
	case HostMaster:
		switch ea {
		case 0xFE30:
			m.RomLatch = data
		case 0xFE34:
			m.AccconLatch = data
		}
	case HostElk:
		if ea == 0xFE05 {
			m.RomLatch = data
		}
	case HostBlitter:
		switch ea {
		case 0xFFFE30:
			m.RomLatch = data
		case 0xFFFE31:
			m.BootMode = data
		}
	}
}

// target describes where an access should land: either the main RAM shadow
// (region == nil) or a specific overlay region, plus whether this access
// should be excluded from consistency checking (I/O window).
type target struct {
	region *region
	offset uint32
	flatEA uint32 // effective address to use when region == nil
	skip   bool   // excluded from consistency checking (I/O window)
	ignore bool   // write should be reported as "ignored" (ROM)
}

// translate maps an effective address (plus the access kind, for the
// Master's VduOp-dependent Lynne selection) to a target backing store.
func (m *Machine) translate(ea uint32, kind Kind) target {
	switch m.Host {
	case HostBeeb:
		return m.translateBeeb(ea)
	case HostMaster:
		return m.translateMaster(ea, kind)
	case HostElk:
		return m.translateElk(ea)
	case HostAtom:
		return m.translateAtom(ea)
	case HostMEK6800D2:
		return m.translateMEK(ea)
	case HostBlitter:
		return m.translateBlitter(ea)
	case HostPET:
		return m.translatePET(ea)
	default:
		return target{flatEA: ea}
	}
}

func (m *Machine) translateBeeb(ea uint32) target {
	if ea >= 0xFC00 && ea <= 0xFEFF {
		return target{skip: true, flatEA: ea}
	}
	if ea >= 0x8000 && ea <= 0xBFFF {
		bank := m.RomLatch & 0x0F
		r := m.swrom[bank]
		return target{region: r, offset: ea - r.base, ignore: true}
	}
	return target{flatEA: ea}
}

func (m *Machine) translateMaster(ea uint32, kind Kind) target {
	if ea >= 0xFC00 && ea <= 0xFEFF {
		return target{skip: true, flatEA: ea}
	}

	if kind == Fetch {
		m.VduOp = ea >= 0xC000 && ea <= 0xDFFF && m.AccconLatch&0x08 == 0
	}

	// Hazel: MOS overlay at C000-DFFF, ACCCON bit 3, latch at FE34.
	if ea >= 0xC000 && ea <= 0xDFFF && m.AccconLatch&0x08 != 0 {
		r := m.hazel
		return target{region: r, offset: ea - r.base}
	}

	// Lynne: shadow RAM at 3000-7FFF, ACCCON bit 2 (or bit 1 for VDU
	// fetches).
	shadowSelected := m.AccconLatch&0x04 != 0 || (m.VduOp && m.AccconLatch&0x02 != 0)
	if ea >= 0x3000 && ea <= 0x7FFF && shadowSelected {
		r := m.lynne
		return target{region: r, offset: ea - r.base}
	}

	// Andy: 4 KiB at 8000-8FFF, latch bit 7 set.
	if ea >= 0x8000 && ea <= 0x8FFF && m.RomLatch&0x80 != 0 {
		r := m.andy
		return target{region: r, offset: ea - r.base}
	}

	if ea >= 0x8000 && ea <= 0xBFFF {
		bank := m.RomLatch & 0x0F
		r := m.swrom[bank]
		return target{region: r, offset: ea - r.base, ignore: true}
	}
	return target{flatEA: ea}
}

func (m *Machine) translateElk(ea uint32) target {
	if ea >= 0x8000 && ea <= 0xBFFF {
		bank := m.RomLatch & 0x0F
		r := m.swrom[bank]
		return target{region: r, offset: ea - r.base, ignore: true}
	}
	return target{flatEA: ea}
}

func (m *Machine) translateAtom(ea uint32) target {
	if ea < 0xA000 {
		return target{flatEA: ea}
	}
	return target{skip: true, flatEA: ea}
}

func (m *Machine) translateMEK(ea uint32) target {
	if ea <= 0x1FFF {
		return target{flatEA: ea}
	}
	if ea >= 0xA000 && ea <= 0xAFFF {
		return target{flatEA: ea}
	}
	return target{skip: true, flatEA: ea}
}

func (m *Machine) translateBlitter(ea uint32) target {
	// Bit 5 of the boot-mode latch at FFFE31 remaps bank-0 accesses to
	// bank 0xFF.
	if m.BootMode&0x20 != 0 && ea>>16 == 0 {
		ea = ea&0xFFFF | 0xFF0000
	}
	if ea >= 0xFF8000 && ea <= 0xFFBFFF {
		bank := m.RomLatch & 0x0F
		r := m.swrom[bank]
		return target{region: r, offset: ea - r.base, ignore: true}
	}
	return target{flatEA: ea}
}

func (m *Machine) translatePET(ea uint32) target {
	switch {
	case ea >= 0xE810 && ea <= 0xE82F,
		ea >= 0xE840 && ea <= 0xE84F,
		ea >= 0xE880 && ea <= 0xE88F:
		return target{skip: true}
	}
	for base, r := range m.petROMs {
		if ea >= base && ea < base+uint32(len(r.cells)) {
			return target{region: r, offset: ea - base, ignore: true}
		}
	}
	return target{flatEA: ea}
}

// BankLabel renders the short label original_source/src/memory.c's bank_id
// string carried for ea's page — which overlay (if any) currently backs it
// (spec §12 supplement). Sideways ROM pages get their selected bank digit,
// matching memory.c's set_rom_latch labelling.
func (m *Machine) BankLabel(ea uint32) string {
	t := m.translate(ea, Data)
	if t.region == nil {
		return "  "
	}
	switch t.region {
	case m.andy:
		return "R:"
	case m.lynne:
		return "S:"
	case m.hazel:
		return "H:"
	}
	for _, r := range m.swrom {
		if t.region == r {
			return fmt.Sprintf("%X:", m.RomLatch&0x0F)
		}
	}
	return "  "
}
