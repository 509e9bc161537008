package memory

import (
	"os"
	"path/filepath"
	"sort"
)

// LoadPETROMsDir loads every file in dir into the Machine's fixed PET ROM
// banks, ordered by filename and packed consecutively starting at base
// (spec §6.5, §4.7: "ROM images optionally pre-loaded from a directory into
// fixed banks"). It is a no-op if m is not a PET machine.
func LoadPETROMsDir(m *Machine, dir string, base uint32) error {
	if m.Host != HostPET {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	addr := base
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		m.LoadPETROM(addr, data)
		addr += uint32(len(data))
	}
	m.RomsDir = dir
	return nil
}
