package solidbrush

import "math"

// Half is an IEEE 754 binary16 value stored as raw bits. Vertex colors use
// half precision: brush strokes never need more than ~3 decimal digits of
// color resolution, and three halves fit the 48-byte packed layout where
// three float32s would not.
type Half uint16

// Half bit-field masks.
const (
	halfSignMask = 0x8000
	halfExpMask  = 0x7c00
	halfMantMask = 0x03ff

	// HalfMax is the largest finite half value, 65504.
	HalfMax = 65504
)

// HalfFromFloat32 converts f to half precision, rounding to nearest with ties
// to even. Values beyond +/-65504 become infinities; NaN payloads keep their
// top mantissa bits.
func HalfFromFloat32(f float32) Half {
	b := math.Float32bits(f)
	sign := uint16((b >> 16) & halfSignMask)
	exp := int32((b >> 23) & 0xff)
	mant := b & 0x007fffff

	if exp == 0xff { // Inf or NaN
		if mant == 0 {
			return Half(sign | halfExpMask)
		}
		nan := uint16(mant >> 13)
		if nan == 0 {
			nan = 1 // keep NaN from collapsing to Inf
		}
		return Half(sign | halfExpMask | nan)
	}

	// Re-bias from float32 (127) to half (15).
	e := exp - 127 + 15
	switch {
	case e >= 0x1f: // overflow
		return Half(sign | halfExpMask)

	case e <= 0: // subnormal or zero
		if e < -10 {
			return Half(sign) // underflow to signed zero
		}
		m := mant | 0x00800000 // restore the implicit leading bit
		shift := uint32(14 - e)
		h := uint16(m >> shift)
		round := uint32(1) << (shift - 1)
		if m&round != 0 && (m&(round-1) != 0 || h&1 != 0) {
			h++
		}
		return Half(sign | h)
	}

	h := uint16(e)<<10 | uint16(mant>>13)
	if mant&0x1000 != 0 && (mant&0x0fff != 0 || h&1 != 0) {
		h++ // mantissa carry rolls into the exponent, overflowing to Inf correctly
	}
	return Half(sign | h)
}

// Float32 converts h back to single precision. The conversion is exact:
// every half value is representable as a float32.
func (h Half) Float32() float32 {
	sign := uint32(h&halfSignMask) << 16
	exp := uint32(h>>10) & 0x1f
	mant := uint32(h & halfMantMask)

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign) // signed zero
		}
		// Normalize the subnormal.
		e := uint32(127 - 15 + 1)
		for mant&0x400 == 0 {
			mant <<= 1
			e--
		}
		mant &= halfMantMask
		return math.Float32frombits(sign | e<<23 | mant<<13)

	case 0x1f:
		return math.Float32frombits(sign | 0x7f800000 | mant<<13)
	}

	return math.Float32frombits(sign | (exp-15+127)<<23 | mant<<13)
}

// IsNaN reports whether h is a NaN.
func (h Half) IsNaN() bool {
	return h&halfExpMask == halfExpMask && h&halfMantMask != 0
}

// IsInf reports whether h is an infinity.
func (h Half) IsInf() bool {
	return h&halfExpMask == halfExpMask && h&halfMantMask == 0
}

// HalfColor packs an RGB triple into the half-precision vertex color format.
func HalfColor(r, g, b float32) [3]Half {
	return [3]Half{HalfFromFloat32(r), HalfFromFloat32(g), HalfFromFloat32(b)}
}
