package tri

// The SetNZ* combinators implement the width-aware N/Z flag update rule of
// spec §4.6 ("set_NZ(value) at the chosen width"). Each returns the new N
// and Z flags for a given value; callers assign them onto their own flag
// struct. They never mutate their arguments.

// SetNZ8 computes N/Z for an 8-bit value.
func SetNZ8(v Byte) (n, z Bit) {
	val, ok := v.Value()
	if !ok {
		return UnknownBit(), UnknownBit()
	}
	return KnownBit(val&0x80 != 0), KnownBit(val == 0)
}

// SetNZ16 computes N/Z for a 16-bit value.
func SetNZ16(v Word) (n, z Bit) {
	val, ok := v.Value()
	if !ok {
		return UnknownBit(), UnknownBit()
	}
	return KnownBit(val&0x8000 != 0), KnownBit(val == 0)
}

// SetNZAB computes N/Z for the 16-bit C accumulator built from its A (low)
// and B (high) halves, without requiring the caller to have already joined
// them into a Word — narrow inference still applies: if B is known non-zero
// while A is unknown, Z is known false even though the exact C value is not.
func SetNZAB(a, b Byte) (n, z Bit) {
	word := JoinBytes(b, a)
	if word.Known() {
		return SetNZ16(word)
	}
	// Narrow inference: N is the top bit of B if B is known; Z requires
	// both halves to be known-zero.
	if bv, ok := b.Value(); ok {
		n = KnownBit(bv&0x80 != 0)
	} else {
		n = UnknownBit()
	}
	aZero, aOK := NarrowZero(a)
	bZero, bOK := NarrowZero(b)
	if aOK && bOK {
		z = KnownBit(aZero && bZero)
	} else if (aOK && !aZero) || (bOK && !bZero) {
		z = KnownBit(false)
	} else {
		z = UnknownBit()
	}
	return n, z
}

// SetNZUnknownWidth implements the "unknown-width" rule of spec §4.6: when
// the operating width (MS or XS) itself is unknown, N is unknown (it depends
// on which bit is the sign bit), but Z can still sometimes be inferred from
// the low byte alone — a low byte known to be non-zero makes Z known-false
// regardless of width or the high byte.
func SetNZUnknownWidth(low Byte) (n, z Bit) {
	n = UnknownBit()
	lowZero, ok := NarrowZero(low)
	if ok && !lowZero {
		return n, KnownBit(false)
	}
	return n, UnknownBit()
}
