package cpu

import (
	"fmt"

	"github.com/wdctrace/tracecore/tri"
)

// Cycles is a predicted cycle count that can itself be unknown, when the
// prediction depends on a flag the analyzer hasn't pinned down yet (spec
// §4.3: "a cycle count prediction can itself be unknown"). It deliberately
// is not a tri.Byte: cycle counts run past 255 is impossible per
// instruction, but the "plus or minus one depending on page crossing"
// shape is closer to an interval than a single unknown byte.
type Cycles struct {
	min, max int
	unknown  bool
}

func knownCycles(n int) Cycles { return Cycles{min: n, max: n} }

func unknownCycles(lo, hi int) Cycles { return Cycles{min: lo, max: hi, unknown: true} }

// Known reports whether the prediction pins down a single exact count.
func (c Cycles) Known() bool { return !c.unknown }

// Value returns the exact count and true if Known, else (0, false).
func (c Cycles) Value() (int, bool) {
	if c.unknown {
		return 0, false
	}
	return c.min, true
}

// Range returns the inclusive [min,max] the count could fall in.
func (c Cycles) Range() (int, int) { return c.min, c.max }

// Contains reports whether an observed cycle count n is consistent with
// the prediction.
func (c Cycles) Contains(n int) bool { return n >= c.min && n <= c.max }

func (c Cycles) String() string {
	if c.min == c.max {
		return fmt.Sprintf("%d", c.min)
	}
	return fmt.Sprintf("%d-%d", c.min, c.max)
}

// crossesPage reports whether adding offset to base crosses a 256-byte
// page boundary, the classic 6502-family "+1 cycle" condition the teacher
// models in hejops-gone/cpu/cpu.go's page-boundary check, generalized here
// to take an arbitrary 16-bit base (dp,X / abs,Y / etc. all reuse it).
func crossesPage(base uint16, offset uint8) bool {
	return (base & 0xFF00) != ((base + uint16(offset)) & 0xFF00)
}

// PredictCycles implements spec §4.3's contribution rules for entry, given
// the current best knowledge of the M/X width flags, emulation mode, and
// whether the indexed address computation crosses a page (itself tri-state:
// unknown when the base or the index register is unknown). Each unknown
// input whose value affects the count widens the prediction into an
// interval instead of collapsing it to a guess.
func PredictCycles(e Entry, ms, xs, em tri.Bit, cross tri.Bit) Cycles {
	base := e.Base

	widen := func(extra int, known tri.Bit) Cycles {
		if v, ok := known.Value(); ok {
			if v {
				return knownCycles(base)
			}
			return knownCycles(base + extra)
		}
		return unknownCycles(base, base+extra)
	}

	c := knownCycles(base)
	switch {
	case e.M1:
		c = widen(1, ms)
	case e.M2:
		// M2 opcodes cost +2 when MS=0, except the accumulator-implied
		// variant (spec §4.3 rule 2's carve-out), which this table
		// already gives a flat 2-cycle Base with M2 left false.
		c = widen(2, ms)
	case e.X1:
		c = widen(1, xs)
	}

	// page-cross penalty on indexed reads only; writes never incur it
	switch e.Mode {
	case ModeAbsoluteX, ModeAbsoluteY, ModeDirectIndirectY:
		if e.Kind == OpRead {
			if v, ok := cross.Value(); ok {
				if v {
					c.min++
					c.max++
				}
			} else {
				c.unknown = true
				c.max++
			}
		}
	}

	if e.Mnemonic == "RTI" {
		// rule 4: native mode also pulls PB, one cycle more than emulation.
		c = widen(1, em)
	}

	if e.Kind == OpBranch {
		// taken/not-taken and page crossing are resolved by the dispatch
		// adapter's branch predictor once the flag and target are known.
		if e.Mnemonic == "BRA" {
			c = unknownCycles(base, base+1)
		} else {
			c = unknownCycles(base, base+2)
		}
	}

	return c
}

// AddDPPenalty folds in rule 5: one extra cycle whenever DP's low byte is
// nonzero and the mode indexes off Direct Page.
func AddDPPenalty(c Cycles, dpLowKnown bool, dpLowNonzero bool, mode Mode) Cycles {
	if !directPageMode(mode) {
		return c
	}
	if !dpLowKnown {
		return unknownCycles(c.min, c.max+1)
	}
	if dpLowNonzero {
		c.min++
		c.max++
	}
	return c
}

