// Package sample defines the bus-sample stream the core consumes. The
// sample source itself (parsing a logic-analyzer capture file into this
// stream) is an external collaborator, out of scope for this module; the
// core only ever reads through the bounded, read-only Window below.
package sample

// Type is the sync hint a capture front-end may attach to a Sample.
type Type int

const (
	// Unknown means the capture carries no sync information for this cycle.
	Unknown Type = iota
	// Opcode marks a sample believed to be an opcode fetch.
	Opcode
	// Last marks the final cycle of an instruction.
	Last
	// Instr marks an operand byte of the current instruction.
	Instr
)

// RWState is the observed state of the R/W control line.
type RWState int

const (
	// RWUnknown means the R/W line was not captured for this cycle.
	RWUnknown RWState = iota
	RWRead
	RWWrite
)

// EState is the observed state of the external E (emulation) pin.
type EState int

const (
	// EUnknown means the E pin was not captured for this cycle.
	EUnknown EState = iota
	EZero
	EOne
)

// Sample is one bus-cycle observation: a data byte plus optional control
// line states (spec §3.5).
type Sample struct {
	Data byte
	Type Type
	RWN  RWState
	E    EState
}

// Window is the bounded, read-only view over the externally-owned sample
// queue (spec §5): the core never consumes past the reported count, and
// never mutates the queue. Depth must be at least the longest possible
// instruction cycle count (8, for a native-mode interrupt entry).
type Window struct {
	samples []Sample
}

// NewWindow wraps a slice of samples (owned by the caller) as a Window.
func NewWindow(samples []Sample) Window {
	return Window{samples: samples}
}

// Len reports how many samples are currently available in the window.
func (w Window) Len() int { return len(w.samples) }

// At returns the sample at index i (0-based from the window's current
// front) and whether i was in range.
func (w Window) At(i int) (Sample, bool) {
	if i < 0 || i >= len(w.samples) {
		return Sample{}, false
	}
	return w.samples[i], true
}

// InstructionEnd returns the cycle count of the instruction starting at
// idx according to the stream's sync hints: an Opcode-marked sample begins
// the next instruction, a Last-marked sample is this instruction's final
// cycle. Returns -1 when no hint is present within the window.
func (w Window) InstructionEnd(idx int) int {
	for i := idx + 1; i < len(w.samples); i++ {
		switch w.samples[i].Type {
		case Opcode:
			return i - idx
		case Last:
			return i - idx + 1
		}
	}
	return -1
}
