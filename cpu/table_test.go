package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableEveryOpcodeIsDefined(t *testing.T) {
	for i := range Table {
		e := Table[i]
		assert.NotEqualf(t, "???", e.Mnemonic, "opcode %02X left undefined", i)
		assert.NotNilf(t, e.Hook, "opcode %02X has no hook", i)
	}
}

func TestTableSEPIsWiredToItsOwnHook(t *testing.T) {
	e := Table[0xE2]
	assert.Equal(t, "SEP", e.Mnemonic)
	assert.Equal(t, ModeImmediate8, e.Mode)
}

func TestTableEveryEntryHasAValidInstructionLength(t *testing.T) {
	for i := range Table {
		e := Table[i]
		n := Len(e.Mode, false)
		assert.Truef(t, n >= 1 && n <= 4, "opcode %02X length %d out of range", i, n)
		wide := Len(e.Mode, true)
		assert.Truef(t, wide >= n, "opcode %02X widened length %d shorter than base %d", i, wide, n)
	}
}

// Every opcode disassembles under its declared mode, and the text leads
// with the table's mnemonic.
func TestTableEveryOpcodeDisassembles(t *testing.T) {
	for i := range Table {
		e := Table[i]
		n := Len(e.Mode, false)
		operand := make([]byte, n-1)
		text := Disassemble(e, operand, 0x8000, true)
		assert.Truef(t, len(text) >= len(e.Mnemonic) && text[:len(e.Mnemonic)] == e.Mnemonic,
			"opcode %02X disassembly %q does not lead with %q", i, text, e.Mnemonic)
	}
}

func TestTableWidthAnnotationsFollowMnemonicSets(t *testing.T) {
	m1 := map[string]bool{"ADC": true, "AND": true, "BIT": true, "CMP": true, "EOR": true,
		"LDA": true, "ORA": true, "PHA": true, "PLA": true, "SBC": true, "STA": true, "STZ": true}
	m2 := map[string]bool{"ASL": true, "DEC": true, "INC": true, "LSR": true,
		"ROL": true, "ROR": true, "TSB": true, "TRB": true}
	x1 := map[string]bool{"CPX": true, "CPY": true, "LDX": true, "LDY": true,
		"PHX": true, "PHY": true, "PLX": true, "PLY": true, "STX": true, "STY": true}
	for i := range Table {
		e := Table[i]
		assert.Equalf(t, m1[e.Mnemonic], e.M1, "opcode %02X (%s) M1", i, e.Mnemonic)
		wantM2 := m2[e.Mnemonic] && e.Mode != ModeAccumulator
		assert.Equalf(t, wantM2, e.M2, "opcode %02X (%s) M2", i, e.Mnemonic)
		assert.Equalf(t, x1[e.Mnemonic], e.X1, "opcode %02X (%s) X1", i, e.Mnemonic)
	}
}
