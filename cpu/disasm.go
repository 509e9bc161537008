package cpu

import (
	"fmt"

	"github.com/wdctrace/tracecore/mask"
)

// Disassemble renders one instruction's mnemonic and operand per its
// addressing mode's template (spec §6.4), grounded on
// n-ulricksen-nes/nes/cpuDisassembler.go's per-mode switch and widened to
// the 65C816's larger mode set. operand carries the instruction's already-
// decoded operand bytes in bus order, not including the opcode itself; its
// length should match Len(entry.Mode, wide)-1 for a well-formed instruction.
// pc is the address of the opcode byte, used to render branch targets;
// when pc is unknown, branches fall back to a signed-offset form instead
// of a resolved address.
func Disassemble(entry Entry, operand []byte, pc uint16, pcKnown bool) string {
	mnem := entry.Mnemonic
	switch entry.Mode {
	case ModeImplied, ModeAccumulator:
		return mnem
	case ModeImmediateM, ModeImmediateX, ModeImmediate8:
		// the 16-bit immediate variant is selected purely by how many
		// operand bytes were actually decoded, per spec §6.4.
		switch len(operand) {
		case 2:
			return fmt.Sprintf("%s #$%04X", mnem, word01(operand))
		case 1:
			return fmt.Sprintf("%s #$%02X", mnem, operand[0])
		default:
			return mnem
		}
	case ModeDirect:
		return fmt.Sprintf("%s $%02X", mnem, byte0(operand))
	case ModeDirectX:
		return fmt.Sprintf("%s $%02X,X", mnem, byte0(operand))
	case ModeDirectY:
		return fmt.Sprintf("%s $%02X,Y", mnem, byte0(operand))
	case ModeDirectIndirect:
		return fmt.Sprintf("%s ($%02X)", mnem, byte0(operand))
	case ModeDirectIndirectX:
		return fmt.Sprintf("%s ($%02X,X)", mnem, byte0(operand))
	case ModeDirectIndirectY:
		return fmt.Sprintf("%s ($%02X),Y", mnem, byte0(operand))
	case ModeDirectIndirectLong:
		return fmt.Sprintf("%s [$%02X]", mnem, byte0(operand))
	case ModeDirectIndirectLongY:
		return fmt.Sprintf("%s [$%02X],Y", mnem, byte0(operand))
	case ModeAbsolute:
		return fmt.Sprintf("%s $%04X", mnem, word01(operand))
	case ModeAbsoluteX:
		return fmt.Sprintf("%s $%04X,X", mnem, word01(operand))
	case ModeAbsoluteY:
		return fmt.Sprintf("%s $%04X,Y", mnem, word01(operand))
	case ModeAbsoluteLong:
		return fmt.Sprintf("%s $%02X%04X", mnem, byte2(operand), word01(operand))
	case ModeAbsoluteLongX:
		return fmt.Sprintf("%s $%02X%04X,X", mnem, byte2(operand), word01(operand))
	case ModeAbsoluteIndirect:
		return fmt.Sprintf("%s ($%04X)", mnem, word01(operand))
	case ModeAbsoluteIndirectX:
		return fmt.Sprintf("%s ($%04X,X)", mnem, word01(operand))
	case ModeAbsoluteIndirectLong:
		return fmt.Sprintf("%s [$%04X]", mnem, word01(operand))
	case ModeStackRelative:
		return fmt.Sprintf("%s $%02X,S", mnem, byte0(operand))
	case ModeStackRelativeIndirectY:
		return fmt.Sprintf("%s ($%02X,S),Y", mnem, byte0(operand))
	case ModeRelative8:
		return fmt.Sprintf("%s %s", mnem, branchTarget8(operand, pc, pcKnown))
	case ModeRelative16:
		return fmt.Sprintf("%s %s", mnem, branchTarget16(operand, pc, pcKnown))
	case ModeBlockMove:
		if len(operand) >= 2 {
			// the encoded byte order is destination,source; render it the
			// same way to match what's actually on the bus.
			return fmt.Sprintf("%s $%02X,$%02X", mnem, operand[0], operand[1])
		}
		return mnem
	default:
		return mnem
	}
}

func byte0(b []byte) byte {
	if len(b) > 0 {
		return b[0]
	}
	return 0
}

func byte2(b []byte) byte {
	if len(b) > 2 {
		return b[2]
	}
	return 0
}

func word01(b []byte) uint16 {
	switch {
	case len(b) > 1:
		return mask.Word(b[1], b[0])
	case len(b) == 1:
		return uint16(b[0])
	default:
		return 0
	}
}

func pcOffsetString(off int) string {
	if off >= 0 {
		return fmt.Sprintf("pc+%d", off)
	}
	return fmt.Sprintf("pc-%d", -off)
}

func branchTarget8(operand []byte, pc uint16, pcKnown bool) string {
	off := signed8(byte0(operand))
	if !pcKnown {
		return pcOffsetString(off)
	}
	return fmt.Sprintf("$%04X", uint16(int(pc)+2+off))
}

func branchTarget16(operand []byte, pc uint16, pcKnown bool) string {
	off := signed16(word01(operand))
	if !pcKnown {
		return pcOffsetString(off)
	}
	return fmt.Sprintf("$%04X", uint16(int(pc)+3+off))
}
